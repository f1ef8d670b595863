package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/nebula-platform/nebula/internal/auth"
	"github.com/nebula-platform/nebula/internal/metrics"
	"github.com/nebula-platform/nebula/internal/store"
)

// usersHandler provides REST handlers for user endpoints.
type usersHandler struct {
	users store.UserStoreIface
}

func newUsersHandler(us store.UserStoreIface) *usersHandler {
	return &usersHandler{users: us}
}

// Register creates a new account.
// POST /api/user/register
func (h *usersHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", "bad_request")
		return
	}
	if req.FirstName == "" || req.LastName == "" || req.Email == "" ||
		req.Username == "" || req.Password == "" {
		writeError(w, http.StatusBadRequest, "all fields are required", "bad_request")
		return
	}

	_, err := h.users.Create(r.Context(), store.Registration{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Username:  req.Username,
		Password:  req.Password,
	})
	switch {
	case errors.Is(err, store.ErrDuplicateEmail):
		metrics.RegistrationsTotal.WithLabelValues("duplicate").Inc()
		writeJSON(w, http.StatusConflict, ResultResponse{
			Result:  false,
			Message: "an user already exist in this email",
		})
		return
	case errors.Is(err, store.ErrDuplicateUsername):
		metrics.RegistrationsTotal.WithLabelValues("duplicate").Inc()
		writeJSON(w, http.StatusConflict, ResultResponse{
			Result:  false,
			Message: "username is already taken",
		})
		return
	case err != nil:
		metrics.RegistrationsTotal.WithLabelValues("error").Inc()
		writeError(w, http.StatusInternalServerError, "internal error", "internal")
		return
	}

	metrics.RegistrationsTotal.WithLabelValues("ok").Inc()
	writeJSON(w, http.StatusCreated, ResultResponse{
		Result:  true,
		Message: "successfully registered",
	})
}

// Profile returns the authenticated caller's profile.
// GET /api/profile
func (h *usersHandler) Profile(w http.ResponseWriter, r *http.Request) {
	user := auth.UserFromContext(r.Context())
	if user == nil {
		writeError(w, http.StatusUnauthorized, "unauthorized", "unauthorized")
		return
	}

	writeJSON(w, http.StatusOK, &ProfileResponse{
		ID:        user.ID,
		FirstName: user.FirstName,
		LastName:  user.LastName,
		Email:     user.Email,
		Username:  user.Username,
		Role:      user.Role,
		CreatedAt: user.CreatedAt,
	})
}
