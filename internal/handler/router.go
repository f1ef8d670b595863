package handler

import (
	"io/fs"
	"net/http"

	"github.com/alexedwards/scs/v2"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/nebula-platform/nebula/internal/api"
	"github.com/nebula-platform/nebula/internal/auth"
	"github.com/nebula-platform/nebula/internal/metrics"
	"github.com/nebula-platform/nebula/internal/routes"
	"github.com/nebula-platform/nebula/internal/store"
	"github.com/nebula-platform/nebula/web"
)

// Deps holds all dependencies required to build the HTTP router.
type Deps struct {
	SessionManager *scs.SessionManager
	AuthMiddleware *auth.Middleware
	Tokens         *auth.TokenManager
	UserStore      store.UserStoreIface
}

// NewRouter assembles the full chi router. Named routes (shell pages, static
// assets, metrics, and the API mount) register before the catch-all, so the
// catch-all only ever sees paths outside the route set and coerces them to
// the default route.
func NewRouter(deps Deps) http.Handler {
	r := chi.NewRouter()

	// Standard middleware
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.RealIP)
	r.Use(deps.SessionManager.LoadAndSave)

	// Static assets (embedded). Use fs.Sub so the file server sees
	// css/app.css directly, not static/css/... paths.
	staticSub, err := fs.Sub(web.StaticFS, "static")
	if err != nil {
		panic("failed to sub static FS: " + err.Error())
	}
	r.Handle("/static/*", http.StripPrefix("/static", http.FileServerFS(staticSub)))

	r.Handle("/metrics", promhttp.Handler())

	// Public shell pages. OptionalUser lets them redirect signed-in users
	// to the dashboard without requiring auth.
	home := NewHomeHandler()
	login := NewLoginHandler(deps.UserStore, deps.SessionManager)
	signup := NewSignupHandler(deps.UserStore)

	r.Group(func(r chi.Router) {
		r.Use(deps.AuthMiddleware.OptionalUser)
		r.Get(routes.Home.Path(), home.Index)
		r.Get(routes.Login.Path(), login.Show)
		r.Post(routes.Login.Path(), login.Submit)
		r.Get(routes.Signup.Path(), signup.Show)
		r.Post(routes.Signup.Path(), signup.Submit)
	})

	r.Post("/auth/logout", login.Logout)

	// Authenticated pages
	dashboard := NewDashboardHandler()
	r.Group(func(r chi.Router) {
		r.Use(deps.AuthMiddleware.RequireAuth)
		r.Get("/dashboard", dashboard.Show)
	})

	// Admin pages (require admin role)
	admin := NewAdminHandler(deps.UserStore)
	r.Group(func(r chi.Router) {
		r.Use(deps.AuthMiddleware.RequireAuth)
		r.Use(deps.AuthMiddleware.RequireRole("admin"))
		r.Get("/admin/users", admin.Users)
	})

	// API sub-router at /api, registered before the catch-all.
	bearerMiddleware := auth.NewBearerTokenMiddleware(deps.Tokens, deps.UserStore)
	apiRouter := api.NewAPIRouter(api.Deps{
		BearerMiddleware: bearerMiddleware,
		Tokens:           deps.Tokens,
		UserStore:        deps.UserStore,
	})
	r.Mount("/api", apiRouter)

	// Catch-all: every path outside the route set is coerced to the default
	// route with a redirect rather than a 404, keeping the shell's address
	// space closed.
	r.NotFound(redirectToDefault)

	return r
}

// redirectToDefault sends unrecognized paths to the default shell route.
func redirectToDefault(w http.ResponseWriter, r *http.Request) {
	route, _ := routes.Normalize(r.URL.Path)
	metrics.ShellRedirectsTotal.Inc()
	http.Redirect(w, r, route.Path(), http.StatusFound)
}
