// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

import (
	"net/http"
	"strings"

	"github.com/olegiv/veracity-admin/internal/api"
	"github.com/olegiv/veracity-admin/internal/middleware"
	"github.com/olegiv/veracity-admin/internal/model"
	"github.com/olegiv/veracity-admin/internal/render"
	"github.com/olegiv/veracity-admin/internal/service"
	"github.com/olegiv/veracity-admin/internal/uikit"
)

// ModeratorsHandler handles the owner-only moderator management routes.
type ModeratorsHandler struct {
	moderators *service.ModeratorService
	renderer   *render.Renderer
}

// NewModeratorsHandler creates a new ModeratorsHandler.
func NewModeratorsHandler(moderators *service.ModeratorService, renderer *render.Renderer) *ModeratorsHandler {
	return &ModeratorsHandler{
		moderators: moderators,
		renderer:   renderer,
	}
}

// ModeratorsListData holds data for the moderators template.
type ModeratorsListData struct {
	Moderators []model.Moderator
	Total      int
	Search     string
	Pagination uikit.Pagination
}

// List handles GET /moderators. The owner record renders without a
// delete control; the template checks IsOwner per row.
func (h *ModeratorsHandler) List(w http.ResponseWriter, r *http.Request) {
	page := uikit.ParsePageParam(r)
	search := strings.TrimSpace(r.URL.Query().Get("search"))

	result, err := h.moderators.ListModerators(r.Context(), api.ModeratorsParams{
		Offset: uikit.Offset(page, ModeratorsPerPage),
		Limit:  ModeratorsPerPage,
		Search: search,
	})
	if err != nil {
		logAndInternalError(w, "failed to list moderators", "error", err)
		return
	}

	data := ModeratorsListData{
		Moderators: result.Moderators,
		Total:      result.Total,
		Search:     search,
		Pagination: uikit.BuildPagination(page, result.Total, ModeratorsPerPage, RouteModerators, r.URL.Query()),
	}

	if err := h.renderer.Render(w, r, "console/moderators", render.TemplateData{
		Title:  "Moderators",
		Active: "moderators",
		Admin:  middleware.GetAdmin(r),
		Data:   data,
	}); err != nil {
		logAndInternalError(w, "failed to render moderators list", "error", err)
	}
}

// Create handles POST /moderators - adds a moderator account.
func (h *ModeratorsHandler) Create(w http.ResponseWriter, r *http.Request) {
	if !parseFormOrRedirect(w, r, h.renderer, redirectModerators) {
		return
	}

	email := strings.TrimSpace(r.FormValue("email"))
	password := r.FormValue("password")

	mod, err := h.moderators.CreateModerator(r.Context(), email, password)
	if err != nil {
		backendErrorRedirect(w, r, h.renderer, redirectModerators, "failed to create moderator", err)
		return
	}

	flashSuccess(w, r, h.renderer, redirectModerators, "Moderator "+mod.Email+" created")
}

// Delete handles POST /moderators/delete. The target is identified by
// email; deleting the signed-in owner's own account is refused before
// the backend is asked.
func (h *ModeratorsHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if !parseFormOrRedirect(w, r, h.renderer, redirectModerators) {
		return
	}

	email := strings.TrimSpace(r.FormValue("email"))
	if email == "" {
		flashError(w, r, h.renderer, redirectModerators, "Moderator email is required")
		return
	}

	mod := model.Moderator{Email: email, Role: r.FormValue("role")}
	if mod.Role == "" {
		mod.Role = model.AdminRoleModerator
	}
	if admin := middleware.GetAdmin(r); admin != nil && strings.EqualFold(email, admin.Email) {
		// This route is owner-only, so the signed-in admin is the owner.
		mod.Role = admin.Role
	}

	if err := h.moderators.DeleteModerator(r.Context(), mod); err != nil {
		backendErrorRedirect(w, r, h.renderer, redirectModerators, "failed to delete moderator", err)
		return
	}

	flashSuccess(w, r, h.renderer, redirectModerators, "Moderator "+email+" deleted")
}
