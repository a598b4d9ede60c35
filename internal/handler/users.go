// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

import (
	"context"
	"net/http"
	"net/url"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/olegiv/veracity-admin/internal/api"
	"github.com/olegiv/veracity-admin/internal/middleware"
	"github.com/olegiv/veracity-admin/internal/model"
	"github.com/olegiv/veracity-admin/internal/render"
	"github.com/olegiv/veracity-admin/internal/service"
	"github.com/olegiv/veracity-admin/internal/uikit"
)

// User detail tabs.
const (
	TabProfile  = "profile"
	TabPosts    = "posts"
	TabActivity = "activity"
	TabEvents   = "events"
)

// UsersHandler handles the user directory and user detail routes.
type UsersHandler struct {
	directory *service.DirectoryService
	content   *service.ContentService
	events    *service.EventService
	renderer  *render.Renderer
}

// NewUsersHandler creates a new UsersHandler.
func NewUsersHandler(directory *service.DirectoryService, content *service.ContentService, events *service.EventService, renderer *render.Renderer) *UsersHandler {
	return &UsersHandler{
		directory: directory,
		content:   content,
		events:    events,
		renderer:  renderer,
	}
}

// UsersListData holds data for the user directory template.
type UsersListData struct {
	Users      []model.User
	Total      int
	Status     string
	Search     string
	Statuses   []string
	Roles      []string
	Pagination uikit.Pagination
}

// List handles GET /users - the paginated, filterable user directory.
// Status filter and search term live in the URL query so filtered
// views survive reloads and can be shared.
func (h *UsersHandler) List(w http.ResponseWriter, r *http.Request) {
	page := uikit.ParsePageParam(r)
	status := r.URL.Query().Get("status")
	search := strings.TrimSpace(r.URL.Query().Get("search"))

	// An unknown status filter falls back to no filter rather than a
	// backend validation error.
	if status != "" && !model.IsValidUserStatus(status) {
		status = ""
	}

	result, page, err := h.fetchUsersPage(r.Context(), page, status, search)
	if err != nil {
		logAndInternalError(w, "failed to list users", "error", err)
		return
	}

	data := UsersListData{
		Users:      result.Users,
		Total:      result.Total,
		Status:     status,
		Search:     search,
		Statuses:   model.ValidUserStatuses,
		Roles:      model.ValidUserRoles,
		Pagination: uikit.BuildPagination(page, result.Total, UsersPerPage, RouteUsers, r.URL.Query()),
	}

	if err := h.renderer.Render(w, r, "console/users", render.TemplateData{
		Title:  "Users",
		Active: "users",
		Admin:  middleware.GetAdmin(r),
		Data:   data,
	}); err != nil {
		logAndInternalError(w, "failed to render users list", "error", err)
	}
}

// fetchUsersPage fetches a directory page, clamping the page number
// when it runs past the last page (a filter change can strand a deep
// page link). Returns the result and the effective page.
func (h *UsersHandler) fetchUsersPage(ctx context.Context, page int, status, search string) (*model.PaginatedUsers, int, error) {
	result, err := h.directory.ListUsers(ctx, api.UsersParams{
		Offset: uikit.Offset(page, UsersPerPage),
		Limit:  UsersPerPage,
		Status: status,
		Search: search,
	})
	if err != nil {
		return nil, page, err
	}

	if len(result.Users) == 0 && result.Total > 0 && page > 1 {
		page, _ = uikit.NormalizePagination(page, result.Total, UsersPerPage)
		result, err = h.directory.ListUsers(ctx, api.UsersParams{
			Offset: uikit.Offset(page, UsersPerPage),
			Limit:  UsersPerPage,
			Status: status,
			Search: search,
		})
		if err != nil {
			return nil, page, err
		}
	}

	return result, page, nil
}

// UserDetailData holds data for the user detail template.
type UserDetailData struct {
	User       *model.User
	Tab        string
	Posts      []model.Post
	Activity   []model.UserActivity
	Events     []model.UserEventRelation
	Statuses   []string
	Roles      []string
	Pagination uikit.Pagination
}

// Detail handles GET /users/{id} - the user profile with the posts,
// activity and events tabs. Each tab paginates independently; switching
// tabs drops the page parameter.
func (h *UsersHandler) Detail(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	tab := r.URL.Query().Get("tab")
	if !validTab(tab) {
		tab = TabProfile
	}

	user, err := h.directory.GetUser(r.Context(), id)
	if err != nil {
		if isNotFound(err) {
			flashError(w, r, h.renderer, redirectUsers, "User not found")
			return
		}
		logAndInternalError(w, "failed to load user", "error", err, "user_id", id)
		return
	}

	data := UserDetailData{
		User:     user,
		Tab:      tab,
		Statuses: model.ValidUserStatuses,
		Roles:    model.ValidUserRoles,
	}

	page := uikit.ParsePageParam(r)
	params := api.PageParams{
		Offset: uikit.Offset(page, UserTabPerPage),
		Limit:  UserTabPerPage,
	}
	tabURL := RouteUsers + "/" + url.PathEscape(id)

	switch tab {
	case TabPosts:
		posts, err := h.content.ListUserPosts(r.Context(), id, params)
		if err != nil {
			logAndInternalError(w, "failed to load user posts", "error", err, "user_id", id)
			return
		}
		data.Posts = posts.Posts
		data.Pagination = uikit.BuildPagination(page, posts.Total, UserTabPerPage, tabURL, r.URL.Query())
	case TabActivity:
		activity, err := h.content.ListUserActivity(r.Context(), id, params)
		if err != nil {
			logAndInternalError(w, "failed to load user activity", "error", err, "user_id", id)
			return
		}
		data.Activity = activity.Activities
		data.Pagination = uikit.BuildPagination(page, activity.Total, UserTabPerPage, tabURL, r.URL.Query())
	case TabEvents:
		events, err := h.events.ListUserEvents(r.Context(), id, params)
		if err != nil {
			logAndInternalError(w, "failed to load user events", "error", err, "user_id", id)
			return
		}
		data.Events = events.Events
		data.Pagination = uikit.BuildPagination(page, events.Total, UserTabPerPage, tabURL, r.URL.Query())
	}

	if err := h.renderer.Render(w, r, "console/user_detail", render.TemplateData{
		Title:  user.FullName(),
		Active: "users",
		Admin:  middleware.GetAdmin(r),
		Data:   data,
	}); err != nil {
		logAndInternalError(w, "failed to render user detail", "error", err, "user_id", id)
	}
}

// UpdateStatus handles POST /users/{id}/status. HTML forms can't send
// PATCH; the service issues the PATCH against the backend. A "return"
// field sends the admin back to where the action was triggered (the
// dashboard preview uses it).
func (h *UsersHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	back := userActionRedirect(r, id)

	if !parseFormOrRedirect(w, r, h.renderer, back) {
		return
	}
	back = localRedirectTarget(r.FormValue("return"), back)

	status := r.FormValue("status")
	if err := h.directory.UpdateUserStatus(r.Context(), id, status); err != nil {
		backendErrorRedirect(w, r, h.renderer, back, "failed to update user status", err)
		return
	}

	flashSuccess(w, r, h.renderer, back, "User status updated")
}

// UpdateRole handles POST /users/{id}/role.
func (h *UsersHandler) UpdateRole(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	back := userActionRedirect(r, id)

	if !parseFormOrRedirect(w, r, h.renderer, back) {
		return
	}
	back = localRedirectTarget(r.FormValue("return"), back)

	role := r.FormValue("role")
	if err := h.directory.UpdateUserRole(r.Context(), id, role); err != nil {
		backendErrorRedirect(w, r, h.renderer, back, "failed to update user role", err)
		return
	}

	flashSuccess(w, r, h.renderer, back, "User role updated")
}

func userActionRedirect(r *http.Request, id string) string {
	if id == "" {
		return redirectUsers
	}
	return RouteUsers + "/" + url.PathEscape(id)
}

func validTab(tab string) bool {
	switch tab {
	case TabProfile, TabPosts, TabActivity, TabEvents:
		return true
	}
	return false
}
