package handler

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/nebula-platform/nebula/internal/auth"
	"github.com/nebula-platform/nebula/internal/metrics"
	"github.com/nebula-platform/nebula/internal/routes"
	"github.com/nebula-platform/nebula/internal/store"
)

// SignupHandler serves the signup form and processes registrations.
type SignupHandler struct {
	users store.UserStoreIface
}

// NewSignupHandler creates a new SignupHandler.
func NewSignupHandler(us store.UserStoreIface) *SignupHandler {
	return &SignupHandler{users: us}
}

type signupForm struct {
	FirstName string
	LastName  string
	Email     string
	Username  string
}

type signupPage struct {
	BasePage
	Form signupForm
}

// Show serves GET /signup.
func (h *SignupHandler) Show(w http.ResponseWriter, r *http.Request) {
	if auth.UserFromContext(r.Context()) != nil {
		http.Redirect(w, r, "/dashboard", http.StatusFound)
		return
	}
	metrics.PageViewsTotal.WithLabelValues(routes.Signup.String()).Inc()
	render(w, "signup.html", signupPage{BasePage: newBasePage(r, nil)})
}

// Submit serves POST /signup. Validation failures re-render the form with a
// status message and never reach the store; the success status names the
// registered email.
func (h *SignupHandler) Submit(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "bad request", http.StatusBadRequest)
		return
	}

	form := signupForm{
		FirstName: r.PostFormValue("firstname"),
		LastName:  r.PostFormValue("lastname"),
		Email:     r.PostFormValue("email"),
		Username:  r.PostFormValue("username"),
	}
	password := r.PostFormValue("password")
	confirm := r.PostFormValue("confirm")

	fail := func(msg string) {
		render(w, "signup.html", signupPage{
			BasePage: newBasePage(r, &Flash{Type: "error", Message: msg}),
			Form:     form,
		})
	}

	if form.FirstName == "" || form.LastName == "" || form.Email == "" ||
		form.Username == "" || password == "" || confirm == "" {
		fail("Please fill in all fields.")
		return
	}
	if password != confirm {
		fail("Passwords do not match.")
		return
	}

	user, err := h.users.Create(r.Context(), store.Registration{
		FirstName: form.FirstName,
		LastName:  form.LastName,
		Email:     form.Email,
		Username:  form.Username,
		Password:  password,
	})
	switch {
	case errors.Is(err, store.ErrDuplicateEmail):
		metrics.RegistrationsTotal.WithLabelValues("duplicate").Inc()
		fail("An account already exists for this email.")
		return
	case errors.Is(err, store.ErrDuplicateUsername):
		metrics.RegistrationsTotal.WithLabelValues("duplicate").Inc()
		fail("That username is already taken.")
		return
	case err != nil:
		metrics.RegistrationsTotal.WithLabelValues("error").Inc()
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	metrics.RegistrationsTotal.WithLabelValues("ok").Inc()
	render(w, "signup.html", signupPage{
		BasePage: newBasePage(r, &Flash{
			Type:    "success",
			Message: fmt.Sprintf("Successfully registered %s. You can log in now.", user.Email),
		}),
	})
}
