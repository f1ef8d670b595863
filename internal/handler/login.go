package handler

import (
	"errors"
	"net/http"

	"github.com/alexedwards/scs/v2"

	"github.com/nebula-platform/nebula/internal/auth"
	"github.com/nebula-platform/nebula/internal/metrics"
	"github.com/nebula-platform/nebula/internal/routes"
	"github.com/nebula-platform/nebula/internal/store"
)

// LoginHandler serves the login form and processes submissions.
type LoginHandler struct {
	users    store.UserStoreIface
	sessions *scs.SessionManager
}

// NewLoginHandler creates a new LoginHandler.
func NewLoginHandler(us store.UserStoreIface, sm *scs.SessionManager) *LoginHandler {
	return &LoginHandler{users: us, sessions: sm}
}

type loginForm struct {
	Email string
}

type loginPage struct {
	BasePage
	Form loginForm
}

// Show serves GET /login.
func (h *LoginHandler) Show(w http.ResponseWriter, r *http.Request) {
	if auth.UserFromContext(r.Context()) != nil {
		http.Redirect(w, r, "/dashboard", http.StatusFound)
		return
	}
	metrics.PageViewsTotal.WithLabelValues(routes.Login.String()).Inc()
	render(w, "login.html", loginPage{BasePage: newBasePage(r, nil)})
}

// Submit serves POST /login. Empty fields re-render the form with a status
// message and never reach the store.
func (h *LoginHandler) Submit(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "bad request", http.StatusBadRequest)
		return
	}
	email := r.PostFormValue("email")
	password := r.PostFormValue("password")

	form := loginForm{Email: email}

	if email == "" || password == "" {
		render(w, "login.html", loginPage{
			BasePage: newBasePage(r, &Flash{Type: "error", Message: "Please fill in both email and password."}),
			Form:     form,
		})
		return
	}

	user, err := h.users.Authenticate(r.Context(), email, password)
	if err != nil {
		if errors.Is(err, store.ErrInvalidCredentials) {
			metrics.LoginsTotal.WithLabelValues("invalid").Inc()
			render(w, "login.html", loginPage{
				BasePage: newBasePage(r, &Flash{Type: "error", Message: "Invalid email or password."}),
				Form:     form,
			})
			return
		}
		metrics.LoginsTotal.WithLabelValues("error").Inc()
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	// Rotate the session token on privilege change.
	if err := h.sessions.RenewToken(r.Context()); err != nil {
		http.Error(w, "session error", http.StatusInternalServerError)
		return
	}
	h.sessions.Put(r.Context(), auth.SessionUserIDKey, user.ID)
	h.sessions.Put(r.Context(), auth.SessionRoleKey, user.Role)
	metrics.LoginsTotal.WithLabelValues("ok").Inc()

	redirect := r.URL.Query().Get("redirect")
	if redirect == "" || redirect[0] != '/' {
		redirect = routes.Home.Path()
	}
	http.Redirect(w, r, redirect, http.StatusFound)
}

// Logout serves POST /auth/logout: destroys the session and returns to /login.
func (h *LoginHandler) Logout(w http.ResponseWriter, r *http.Request) {
	if err := h.sessions.Destroy(r.Context()); err != nil {
		http.Error(w, "logout error", http.StatusInternalServerError)
		return
	}
	http.Redirect(w, r, routes.Login.Path(), http.StatusFound)
}
