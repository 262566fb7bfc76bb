package http

import (
	"context"
	"net/http"
	"strings"

	"github.com/MKhiriev/go-blog-keeper/internal/logger"
	"github.com/MKhiriev/go-blog-keeper/internal/utils"
	"github.com/MKhiriev/go-blog-keeper/models"
)

// auth is an HTTP middleware that enforces JWT-based authentication.
//
// It inspects the incoming "Authorization" header, extracts the bearer token,
// validates it via [service.AuthService.ParseToken], and re-fetches the
// account behind the token's subject claim. On success the caller's
// [models.Identity] — carrying the account's current role, not the claim
// embedded in the token — is stored in the request context before delegating
// to the next handler.
//
// The middleware rejects requests with HTTP 401 Unauthorized in the
// following cases:
//   - The "Authorization" header is absent ([ErrEmptyAuthorizationHeader]).
//   - The header value cannot be parsed as a bearer token
//     ([ErrInvalidAuthorizationHeader] or [ErrEmptyToken]).
//   - The token is expired, tampered with, or otherwise invalid
//     ([service.ErrTokenIsExpiredOrInvalid]).
//   - The account behind the token no longer exists ([ErrAccountNotFound]).
//
// All rejection events are logged using the context-scoped logger obtained
// via [logger.FromRequest].
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			log.Err(ErrEmptyAuthorizationHeader).Send()
			writeUnauthorized(w, ErrEmptyAuthorizationHeader)
			return
		}

		tokenString, err := getTokenFromAuthHeader(authHeader)
		if err != nil {
			log.Err(err).Send()
			writeUnauthorized(w, err)
			return
		}

		ctx := r.Context()
		token, err := h.services.AuthService.ParseToken(ctx, tokenString)
		if err != nil {
			log.Err(err).Msg("error occurred during parsing token")
			writeUnauthorized(w, err)
			return
		}

		// Re-fetch the account so that a deleted user or a changed role takes
		// effect immediately rather than at token expiry.
		user, err := h.services.AuthService.GetUser(ctx, token.UserID)
		if err != nil {
			log.Err(err).Int64("id", token.UserID).Msg("account behind token no longer exists")
			writeUnauthorized(w, ErrAccountNotFound)
			return
		}

		ctx = context.WithValue(ctx, utils.IdentityCtxKey, models.Identity{
			UserID: user.UserID,
			Role:   user.Role,
		})

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// requireRole is an HTTP middleware that gates a route group behind a role.
// It must run after [Handler.auth]: the identity is read from the request
// context and compared against the required role; a mismatch produces
// HTTP 403 Forbidden with [ErrAdminRequired].
func (h *Handler) requireRole(role models.Role) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			log := logger.FromRequest(r)

			identity, ok := utils.GetIdentityFromContext(r.Context())
			if !ok || identity.Role != role {
				log.Error().
					Int64("id", identity.UserID).
					Str("role", string(identity.Role)).
					Str("required", string(role)).
					Msg("insufficient role for route")
				h.writeFailure(w, r, ErrAdminRequired)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// getTokenFromAuthHeader extracts the bearer token string from a raw
// "Authorization" HTTP header value.
//
// The header is expected to follow the standard format:
//
//	Authorization: <scheme> <token>
//
// It returns the following sentinel errors:
//   - [ErrInvalidAuthorizationHeader] — if the header contains fewer than
//     two space-separated parts (i.e. the token is missing entirely) or the
//     scheme is anything other than "Bearer".
//   - [ErrEmptyToken] — if the second part exists but is an empty string.
func getTokenFromAuthHeader(authHeader string) (string, error) {
	parts := strings.Split(authHeader, " ")
	if len(parts) < 2 || parts[0] != "Bearer" {
		return "", ErrInvalidAuthorizationHeader
	}

	tokenString := parts[1]
	if tokenString == "" {
		return "", ErrEmptyToken
	}

	return tokenString, nil
}
