package api_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/nebula-platform/nebula/internal/api"
	"github.com/nebula-platform/nebula/internal/auth"
	"github.com/nebula-platform/nebula/internal/store"
	"github.com/nebula-platform/nebula/internal/testutil"
)

// testEnv holds the router, stores, and token manager for API tests.
type testEnv struct {
	Router    http.Handler
	UserStore *store.UserStore
	Tokens    *auth.TokenManager
}

// newTestEnv creates an in-memory SQLite test database, runs migrations,
// and wires up the full API router with a real store and token manager.
func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	db := testutil.NewTestDB(t)

	us := store.NewUserStore(db, "")
	tm := auth.NewTokenManager("api-test-secret", 30*time.Minute, 7*24*time.Hour)
	bearerMW := auth.NewBearerTokenMiddleware(tm, us)

	router := api.NewAPIRouter(api.Deps{
		BearerMiddleware: bearerMW,
		Tokens:           tm,
		UserStore:        us,
	})
	return &testEnv{Router: router, UserStore: us, Tokens: tm}
}

// seedUser registers a user directly through the store.
func seedUser(t *testing.T, env *testEnv, email, username, password string) *store.User {
	t.Helper()
	u, err := env.UserStore.Create(context.Background(), store.Registration{
		FirstName: "Test",
		LastName:  "User",
		Email:     email,
		Username:  username,
		Password:  password,
	})
	if err != nil {
		t.Fatalf("seed user: %v", err)
	}
	return u
}

// postJSON performs a JSON POST against the API router.
func postJSON(t *testing.T, env *testEnv, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	buf, err := json.Marshal(body)
	if err != nil {
		t.Fatalf("marshal body: %v", err)
	}
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(buf))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	env.Router.ServeHTTP(w, req)
	return w
}

// getAuthed performs a GET with a Bearer token.
func getAuthed(t *testing.T, env *testEnv, path, token string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	env.Router.ServeHTTP(w, req)
	return w
}

// decode unmarshals a recorded JSON response body into v.
func decode(t *testing.T, w *httptest.ResponseRecorder, v any) {
	t.Helper()
	if err := json.Unmarshal(w.Body.Bytes(), v); err != nil {
		t.Fatalf("decode response %q: %v", w.Body.String(), err)
	}
}
