package http

import (
	"encoding/json"
	"net/http"

	"github.com/MKhiriev/go-blog-keeper/internal/logger"
	"github.com/MKhiriev/go-blog-keeper/internal/utils"
	"github.com/MKhiriev/go-blog-keeper/models"
)

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		h.writeBadRequest(w, "Invalid JSON was passed")
		return
	}

	registeredUser, err := h.services.AuthService.RegisterUser(ctx, req)
	if err != nil {
		log.Err(err).Msg("user registration failed")
		h.writeFailure(w, r, err)
		return
	}

	token, err := h.services.AuthService.CreateToken(ctx, registeredUser)
	if err != nil {
		log.Err(err).Msg("creation of token failed")
		h.writeFailure(w, r, err)
		return
	}

	h.writeSuccess(w, http.StatusCreated, "user registered", authResponse(registeredUser, token))
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		h.writeBadRequest(w, "Invalid JSON was passed")
		return
	}

	foundUser, err := h.services.AuthService.Login(ctx, req)
	if err != nil {
		log.Err(err).Msg("user login failed")
		h.writeFailure(w, r, err)
		return
	}

	log.Debug().Int64("id", foundUser.UserID).Msg("user successfully logged in")

	token, err := h.services.AuthService.CreateToken(ctx, foundUser)
	if err != nil {
		log.Err(err).Msg("creation of token failed")
		h.writeFailure(w, r, err)
		return
	}

	h.writeSuccess(w, http.StatusOK, "login successful", authResponse(foundUser, token))
}

func (h *Handler) updateProfile(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	identity, ok := utils.GetIdentityFromContext(ctx)
	if !ok {
		writeUnauthorized(w, ErrEmptyToken)
		return
	}

	var req models.UpdateProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		h.writeBadRequest(w, "Invalid JSON was passed")
		return
	}

	updatedUser, err := h.services.AuthService.UpdateProfile(ctx, identity.UserID, req)
	if err != nil {
		log.Err(err).Int64("id", identity.UserID).Msg("profile update failed")
		h.writeFailure(w, r, err)
		return
	}

	// a fresh token so that future requests carry the updated account state
	token, err := h.services.AuthService.CreateToken(ctx, updatedUser)
	if err != nil {
		log.Err(err).Msg("creation of token failed")
		h.writeFailure(w, r, err)
		return
	}

	h.writeSuccess(w, http.StatusOK, "profile updated", authResponse(updatedUser, token))
}

// authResponse builds the public account payload with a session token.
func authResponse(user models.User, token models.Token) models.AuthResponse {
	return models.AuthResponse{
		ID:    user.UserID,
		Name:  user.Name,
		Email: user.Email,
		Role:  user.Role,
		Token: token.SignedString,
	}
}
