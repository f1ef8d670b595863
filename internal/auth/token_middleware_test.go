package auth_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/nebula-platform/nebula/internal/auth"
	"github.com/nebula-platform/nebula/internal/store"
	"github.com/nebula-platform/nebula/internal/testutil"
)

type bearerEnv struct {
	mw     *auth.BearerTokenMiddleware
	tokens *auth.TokenManager
	user   *store.User
}

func newBearerEnv(t *testing.T) *bearerEnv {
	t.Helper()
	db := testutil.NewTestDB(t)
	us := store.NewUserStore(db, "")

	u, err := us.Create(context.Background(), store.Registration{
		FirstName: "Test",
		LastName:  "User",
		Email:     "test@example.com",
		Username:  "test",
		Password:  "a-strong-password",
	})
	if err != nil {
		t.Fatalf("seed user: %v", err)
	}

	tm := auth.NewTokenManager(testSecret, 30*time.Minute, time.Hour)
	return &bearerEnv{mw: auth.NewBearerTokenMiddleware(tm, us), tokens: tm, user: u}
}

// serve runs a request through Authenticate into a handler that records the
// context user.
func (e *bearerEnv) serve(t *testing.T, authorization string) (*httptest.ResponseRecorder, *store.User) {
	t.Helper()
	var got *store.User
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = auth.UserFromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if authorization != "" {
		req.Header.Set("Authorization", authorization)
	}
	w := httptest.NewRecorder()
	e.mw.Authenticate(next).ServeHTTP(w, req)
	return w, got
}

func TestAuthenticate_ValidToken(t *testing.T) {
	env := newBearerEnv(t)
	pair, err := env.tokens.GeneratePair(env.user.ID)
	if err != nil {
		t.Fatalf("generate pair: %v", err)
	}

	w, got := env.serve(t, "Bearer "+pair.AccessToken)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	if got == nil || got.ID != env.user.ID {
		t.Errorf("context user = %+v, want seeded user", got)
	}
}

func TestAuthenticate_Rejections(t *testing.T) {
	env := newBearerEnv(t)
	pair, err := env.tokens.GeneratePair(env.user.ID)
	if err != nil {
		t.Fatalf("generate pair: %v", err)
	}

	orphan := auth.NewTokenManager(testSecret, time.Minute, time.Hour)
	orphanPair, err := orphan.GeneratePair("no-such-user")
	if err != nil {
		t.Fatalf("generate orphan pair: %v", err)
	}

	tests := []struct {
		name          string
		authorization string
	}{
		{"missing header", ""},
		{"not bearer", "Basic dXNlcjpwYXNz"},
		{"empty token", "Bearer "},
		{"garbage token", "Bearer garbage"},
		{"refresh token", "Bearer " + pair.RefreshToken},
		{"deleted user", "Bearer " + orphanPair.AccessToken},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, got := env.serve(t, tt.authorization)
			if w.Code != http.StatusUnauthorized {
				t.Errorf("status = %d, want 401", w.Code)
			}
			if got != nil {
				t.Errorf("context user = %+v, want nil", got)
			}
			if !strings.Contains(w.Body.String(), "unauthorized") {
				t.Errorf("body = %q, want unauthorized error", w.Body.String())
			}
		})
	}
}
