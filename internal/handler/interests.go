// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/olegiv/veracity-admin/internal/api"
	"github.com/olegiv/veracity-admin/internal/middleware"
	"github.com/olegiv/veracity-admin/internal/model"
	"github.com/olegiv/veracity-admin/internal/render"
	"github.com/olegiv/veracity-admin/internal/service"
	"github.com/olegiv/veracity-admin/internal/uikit"
)

// InterestsHandler handles the interest taxonomy routes.
type InterestsHandler struct {
	interests *service.InterestService
	renderer  *render.Renderer
}

// NewInterestsHandler creates a new InterestsHandler.
func NewInterestsHandler(interests *service.InterestService, renderer *render.Renderer) *InterestsHandler {
	return &InterestsHandler{
		interests: interests,
		renderer:  renderer,
	}
}

// InterestsListData holds data for the interests template.
type InterestsListData struct {
	Interests  []model.Interest
	Total      int
	Search     string
	Pagination uikit.Pagination
}

// List handles GET /interests.
func (h *InterestsHandler) List(w http.ResponseWriter, r *http.Request) {
	page := uikit.ParsePageParam(r)
	search := strings.TrimSpace(r.URL.Query().Get("search"))

	result, err := h.interests.ListInterests(r.Context(), api.InterestsParams{
		Offset: uikit.Offset(page, InterestsPerPage),
		Limit:  InterestsPerPage,
		Search: search,
	})
	if err != nil {
		logAndInternalError(w, "failed to list interests", "error", err)
		return
	}

	data := InterestsListData{
		Interests:  result.Interests,
		Total:      result.Total,
		Search:     search,
		Pagination: uikit.BuildPagination(page, result.Total, InterestsPerPage, RouteInterests, r.URL.Query()),
	}

	if err := h.renderer.Render(w, r, "console/interests", render.TemplateData{
		Title:  "Interests",
		Active: "interests",
		Admin:  middleware.GetAdmin(r),
		Data:   data,
	}); err != nil {
		logAndInternalError(w, "failed to render interests list", "error", err)
	}
}

// Create handles POST /interests - adds an interest to the taxonomy.
func (h *InterestsHandler) Create(w http.ResponseWriter, r *http.Request) {
	if !parseFormOrRedirect(w, r, h.renderer, redirectInterests) {
		return
	}

	name := strings.TrimSpace(r.FormValue("name"))
	interest, err := h.interests.CreateInterest(r.Context(), name)
	if err != nil {
		backendErrorRedirect(w, r, h.renderer, redirectInterests, "failed to create interest", err)
		return
	}

	flashSuccess(w, r, h.renderer, redirectInterests, "Interest \""+interest.Name+"\" created")
}

// Update handles POST /interests/{id} - renames an interest.
func (h *InterestsHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if !parseFormOrRedirect(w, r, h.renderer, redirectInterests) {
		return
	}

	name := strings.TrimSpace(r.FormValue("name"))
	if err := h.interests.UpdateInterest(r.Context(), id, name); err != nil {
		backendErrorRedirect(w, r, h.renderer, redirectInterests, "failed to rename interest", err)
		return
	}

	flashSuccess(w, r, h.renderer, redirectInterests, "Interest renamed")
}

// Delete handles POST /interests/{id}/delete.
func (h *InterestsHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.interests.DeleteInterest(r.Context(), id); err != nil {
		backendErrorRedirect(w, r, h.renderer, redirectInterests, "failed to delete interest", err)
		return
	}

	flashSuccess(w, r, h.renderer, redirectInterests, "Interest deleted")
}
