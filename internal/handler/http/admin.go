package http

import (
	"net/http"

	"github.com/MKhiriev/go-blog-keeper/internal/logger"
)

func (h *Handler) allUsers(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	users, err := h.services.AdminService.ListUsers(ctx)
	if err != nil {
		log.Err(err).Msg("listing users failed")
		h.writeFailure(w, r, err)
		return
	}

	h.writeSuccess(w, http.StatusOK, "users listed", users)
}

func (h *Handler) deleteUser(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, err := idFromURL(r)
	if err != nil {
		h.writeFailure(w, r, err)
		return
	}

	if err := h.services.AdminService.DeleteUser(ctx, userID); err != nil {
		log.Err(err).Int64("id", userID).Msg("user deletion failed")
		h.writeFailure(w, r, err)
		return
	}

	h.writeSuccess(w, http.StatusOK, "user deleted", nil)
}
