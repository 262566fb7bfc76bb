package http

import (
	"encoding/json"
	"net/http"

	"github.com/MKhiriev/go-blog-keeper/internal/logger"
	"github.com/MKhiriev/go-blog-keeper/models"
	"github.com/go-chi/chi/v5"
)

func (h *Handler) forgotPassword(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.ForgotPasswordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		h.writeBadRequest(w, "Invalid JSON was passed")
		return
	}

	secret, err := h.services.ResetService.RequestReset(ctx, req.Email)
	if err != nil {
		log.Err(err).Msg("reset request failed")
		h.writeFailure(w, r, err)
		return
	}

	// the plaintext secret is returned for out-of-band delivery and is the
	// only time it leaves the server; storage holds just the digest
	h.writeSuccess(w, http.StatusOK, "reset token issued", models.ResetTokenResponse{
		ResetToken: secret,
	})
}

func (h *Handler) verifyResetToken(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	secret := chi.URLParam(r, "token")

	user, err := h.services.ResetService.VerifyResetToken(ctx, secret)
	if err != nil {
		log.Err(err).Msg("reset token verification failed")
		h.writeFailure(w, r, err)
		return
	}

	h.writeSuccess(w, http.StatusOK, "reset token is valid", models.VerifyResetTokenResponse{
		Email: user.Email,
	})
}

func (h *Handler) resetPassword(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.ResetPasswordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		h.writeBadRequest(w, "Invalid JSON was passed")
		return
	}

	user, err := h.services.ResetService.CompleteReset(ctx, req.Token, req.Password)
	if err != nil {
		log.Err(err).Msg("password reset failed")
		h.writeFailure(w, r, err)
		return
	}

	// the reset secret is the sole credential here, so a fresh session token
	// is issued immediately after the password change
	token, err := h.services.AuthService.CreateToken(ctx, user)
	if err != nil {
		log.Err(err).Msg("creation of token failed")
		h.writeFailure(w, r, err)
		return
	}

	h.writeSuccess(w, http.StatusOK, "password has been reset", authResponse(user, token))
}
