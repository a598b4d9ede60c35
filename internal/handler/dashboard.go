// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

import (
	"net/http"

	"github.com/olegiv/veracity-admin/internal/middleware"
	"github.com/olegiv/veracity-admin/internal/render"
	"github.com/olegiv/veracity-admin/internal/service"
)

// DashboardHandler handles the console landing page.
type DashboardHandler struct {
	dashboard *service.DashboardService
	renderer  *render.Renderer
}

// NewDashboardHandler creates a new DashboardHandler.
func NewDashboardHandler(dashboard *service.DashboardService, renderer *render.Renderer) *DashboardHandler {
	return &DashboardHandler{
		dashboard: dashboard,
		renderer:  renderer,
	}
}

// Home handles GET / and shows the user status counters with a
// pending-approval preview. Preview rows carry quick approve and
// deactivate actions that return here.
func (h *DashboardHandler) Home(w http.ResponseWriter, r *http.Request) {
	data, err := h.dashboard.Load(r.Context())
	if err != nil {
		logAndInternalError(w, "failed to load dashboard", "error", err)
		return
	}

	if err := h.renderer.Render(w, r, "console/dashboard", render.TemplateData{
		Title:  "Dashboard",
		Active: "dashboard",
		Admin:  middleware.GetAdmin(r),
		Data:   data,
	}); err != nil {
		logAndInternalError(w, "failed to render dashboard", "error", err)
	}
}
