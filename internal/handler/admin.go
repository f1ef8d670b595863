package handler

import (
	"net/http"

	"github.com/nebula-platform/nebula/internal/store"
)

// AdminHandler serves admin-only screens.
type AdminHandler struct {
	users store.UserStoreIface
}

// NewAdminHandler creates a new AdminHandler.
func NewAdminHandler(us store.UserStoreIface) *AdminHandler {
	return &AdminHandler{users: us}
}

type adminUsersPage struct {
	BasePage
	Users []*store.User
}

// Users serves GET /admin/users.
func (h *AdminHandler) Users(w http.ResponseWriter, r *http.Request) {
	users, err := h.users.ListAll(r.Context())
	if err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	render(w, "admin/users.html", adminUsersPage{
		BasePage: newBasePage(r, nil),
		Users:    users,
	})
}
