package handler

import (
	"net/http"
)

// DashboardHandler serves the signed-in profile page.
type DashboardHandler struct{}

// NewDashboardHandler creates a new DashboardHandler.
func NewDashboardHandler() *DashboardHandler { return &DashboardHandler{} }

// Show serves GET /dashboard. RequireAuth guarantees a user on the context.
func (h *DashboardHandler) Show(w http.ResponseWriter, r *http.Request) {
	render(w, "dashboard.html", newBasePage(r, nil))
}
