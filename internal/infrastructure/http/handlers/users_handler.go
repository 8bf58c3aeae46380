package handlers

import (
	"net/http"

	"github.com/Sloan357/task-management-api/internal/application/ports"
	"github.com/Sloan357/task-management-api/internal/application/user"
	"github.com/Sloan357/task-management-api/internal/infrastructure/http/middleware"
)

// UsersHandler handles /api/users/*. Requires bearer auth.
type UsersHandler struct {
	users         ports.UserRepository
	deleteAccount *user.DeleteAccount
}

func NewUsersHandler(users ports.UserRepository, deleteAccount *user.DeleteAccount) *UsersHandler {
	return &UsersHandler{users: users, deleteAccount: deleteAccount}
}

// Me handles GET /api/users/me.
func (h *UsersHandler) Me(w http.ResponseWriter, r *http.Request) {
	requester, ok := middleware.UserFromContext(r.Context())
	if !ok {
		writeErr(w, http.StatusUnauthorized, "", "unauthorized")
		return
	}
	u, err := h.users.GetByID(r.Context(), requester)
	if err != nil {
		writeErr(w, http.StatusInternalServerError, "", "internal error")
		return
	}
	if u == nil {
		writeErr(w, http.StatusNotFound, "", "user not found")
		return
	}
	writeJSON(w, http.StatusOK, userResponse{
		ID:        u.ID.String(),
		Username:  u.Username,
		Email:     u.Email,
		CreatedAt: u.CreatedAt.Format(timeFormat),
		UpdatedAt: u.UpdatedAt.Format(timeFormat),
	})
}

// DeleteMe handles DELETE /api/users/me: removes the account and
// everything it owns.
func (h *UsersHandler) DeleteMe(w http.ResponseWriter, r *http.Request) {
	requester, ok := middleware.UserFromContext(r.Context())
	if !ok {
		writeErr(w, http.StatusUnauthorized, "", "unauthorized")
		return
	}
	if err := h.deleteAccount.Execute(r.Context(), requester); err != nil {
		writeDomainErr(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
