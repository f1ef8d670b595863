package handler

import (
	"net/http"

	"github.com/nebula-platform/nebula/internal/auth"
	"github.com/nebula-platform/nebula/internal/metrics"
	"github.com/nebula-platform/nebula/internal/routes"
)

// HomeHandler serves the public landing page.
type HomeHandler struct{}

// NewHomeHandler creates a new HomeHandler.
func NewHomeHandler() *HomeHandler { return &HomeHandler{} }

// Index serves GET /. Authenticated users are redirected to /dashboard.
func (h *HomeHandler) Index(w http.ResponseWriter, r *http.Request) {
	if auth.UserFromContext(r.Context()) != nil {
		http.Redirect(w, r, "/dashboard", http.StatusFound)
		return
	}
	metrics.PageViewsTotal.WithLabelValues(routes.Home.String()).Inc()
	render(w, "home.html", newBasePage(r, nil))
}
