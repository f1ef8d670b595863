package auth

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/nebula-platform/nebula/internal/store"
)

// BearerTokenMiddleware authenticates API requests via a JWT Bearer access
// token. It ignores web session cookies; API callers must present a token.
type BearerTokenMiddleware struct {
	tokens *TokenManager
	users  store.UserStoreIface
}

// NewBearerTokenMiddleware creates a new BearerTokenMiddleware.
func NewBearerTokenMiddleware(tm *TokenManager, us store.UserStoreIface) *BearerTokenMiddleware {
	return &BearerTokenMiddleware{tokens: tm, users: us}
}

// Authenticate extracts and verifies a Bearer access token.
// When valid it injects the token owner's *store.User into the request context;
// otherwise it returns 401 with {"error": "unauthorized"}.
func (m *BearerTokenMiddleware) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if !strings.HasPrefix(authHeader, "Bearer ") {
			writeUnauthorized(w)
			return
		}
		token := strings.TrimPrefix(authHeader, "Bearer ")
		if token == "" {
			writeUnauthorized(w)
			return
		}

		userID, err := m.tokens.ParseAccess(token)
		if err != nil {
			writeUnauthorized(w)
			return
		}

		// A valid token can outlive its user record.
		user, err := m.users.GetByID(r.Context(), userID)
		if err != nil {
			writeUnauthorized(w)
			return
		}

		ctx := context.WithValue(r.Context(), UserContextKey, user)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// writeUnauthorized writes a 401 JSON response with {"error": "unauthorized"}.
func writeUnauthorized(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	json.NewEncoder(w).Encode(map[string]string{"error": "unauthorized"})
}
