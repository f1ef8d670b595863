package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/nebula-platform/nebula/internal/auth"
	"github.com/nebula-platform/nebula/internal/store"
)

// Deps holds all dependencies required to build the API router.
type Deps struct {
	BearerMiddleware *auth.BearerTokenMiddleware
	Tokens           *auth.TokenManager
	UserStore        store.UserStoreIface
}

// NewAPIRouter creates a chi sub-router for /api. Registration and the token
// endpoints are public; everything else requires a Bearer access token. All
// responses are application/json.
func NewAPIRouter(deps Deps) chi.Router {
	r := chi.NewRouter()

	r.Use(jsonContentType)

	users := newUsersHandler(deps.UserStore)
	tokens := newTokensHandler(deps.Tokens, deps.UserStore)

	// Public endpoints
	r.Post("/user/register", users.Register)
	r.Post("/auth/login", tokens.Login)
	r.Post("/auth/refresh", tokens.Refresh)

	// Bearer-protected endpoints
	r.Group(func(r chi.Router) {
		r.Use(deps.BearerMiddleware.Authenticate)
		r.Get("/profile", users.Profile)
		r.Post("/auth/logout", tokens.Logout)
	})

	return r
}

// jsonContentType is a middleware that sets Content-Type: application/json on all responses.
func jsonContentType(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		next.ServeHTTP(w, r)
	})
}
