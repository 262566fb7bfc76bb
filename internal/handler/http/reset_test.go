package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/MKhiriev/go-blog-keeper/internal/service"
	"github.com/MKhiriev/go-blog-keeper/internal/store"
	"github.com/MKhiriev/go-blog-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// serveWithRouter runs the request through the full router so that URL
// parameters like {token} are populated.
func serveWithRouter(h *Handler, req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	h.Init().ServeHTTP(rec, req)
	return rec
}

func TestForgotPassword_Success(t *testing.T) {
	reset := &mockResetService{
		requestResetFn: func(_ context.Context, email string) (string, error) {
			assert.Equal(t, "alice@example.com", email)
			return "plaintext-secret", nil
		},
	}

	h := newTestHandler(t, &service.Services{ResetService: reset})
	body := jsonBody(t, models.ForgotPasswordRequest{Email: "alice@example.com"})
	req := httptest.NewRequest(http.MethodPost, "/api/auth/forgot-password", strings.NewReader(body))
	rec := httptest.NewRecorder()

	h.forgotPassword(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	env := decodeEnvelope(t, rec)
	assert.True(t, env.Status)
	assert.Contains(t, rec.Body.String(), "plaintext-secret")
}

func TestForgotPassword_UnknownEmail(t *testing.T) {
	reset := &mockResetService{
		requestResetFn: func(_ context.Context, _ string) (string, error) {
			return "", store.ErrNoUserWasFound
		},
	}

	h := newTestHandler(t, &service.Services{ResetService: reset})
	body := jsonBody(t, models.ForgotPasswordRequest{Email: "ghost@example.com"})
	req := httptest.NewRequest(http.MethodPost, "/api/auth/forgot-password", strings.NewReader(body))
	rec := httptest.NewRecorder()

	h.forgotPassword(rec, req)

	require.Equal(t, http.StatusNotFound, rec.Code)
	env := decodeEnvelope(t, rec)
	assert.False(t, env.Status)
}

func TestVerifyResetToken_Success(t *testing.T) {
	reset := &mockResetService{
		verifyResetTokenFn: func(_ context.Context, secret string) (models.User, error) {
			assert.Equal(t, "deadbeef", secret)
			return models.User{UserID: 1, Email: "alice@example.com"}, nil
		},
	}

	h := newTestHandler(t, &service.Services{ResetService: reset})
	req := httptest.NewRequest(http.MethodGet, "/api/auth/verify-reset-token/deadbeef", nil)

	rec := serveWithRouter(h, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "alice@example.com")
}

func TestVerifyResetToken_InvalidOrExpired(t *testing.T) {
	reset := &mockResetService{
		verifyResetTokenFn: func(_ context.Context, _ string) (models.User, error) {
			return models.User{}, service.ErrResetTokenInvalidOrExpired
		},
	}

	h := newTestHandler(t, &service.Services{ResetService: reset})
	req := httptest.NewRequest(http.MethodGet, "/api/auth/verify-reset-token/wrong", nil)

	rec := serveWithRouter(h, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	env := decodeEnvelope(t, rec)
	assert.False(t, env.Status)
	require.NotNil(t, env.Error)
	assert.Equal(t, service.ErrResetTokenInvalidOrExpired.Error(), env.Error.Message)
}

func TestResetPassword_Success(t *testing.T) {
	reset := &mockResetService{
		completeResetFn: func(_ context.Context, secret, newPassword string) (models.User, error) {
			assert.Equal(t, "deadbeef", secret)
			assert.Equal(t, "new-password", newPassword)
			return models.User{UserID: 1, Email: "alice@example.com", Role: models.RoleUser}, nil
		},
	}
	auth := &mockAuthService{
		createTokenFn: func(_ context.Context, user models.User) (models.Token, error) {
			return stubToken("fresh.session.jwt"), nil
		},
	}

	h := newTestHandler(t, &service.Services{ResetService: reset, AuthService: auth})
	body := jsonBody(t, models.ResetPasswordRequest{Token: "deadbeef", Password: "new-password"})
	req := httptest.NewRequest(http.MethodPost, "/api/auth/reset-password", strings.NewReader(body))
	rec := httptest.NewRecorder()

	h.resetPassword(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "fresh.session.jwt")
}

func TestResetPassword_ConsumedToken(t *testing.T) {
	reset := &mockResetService{
		completeResetFn: func(_ context.Context, _, _ string) (models.User, error) {
			return models.User{}, service.ErrResetTokenInvalidOrExpired
		},
	}

	h := newTestHandler(t, &service.Services{ResetService: reset})
	body := jsonBody(t, models.ResetPasswordRequest{Token: "used-up", Password: "new-password"})
	req := httptest.NewRequest(http.MethodPost, "/api/auth/reset-password", strings.NewReader(body))
	rec := httptest.NewRecorder()

	h.resetPassword(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	env := decodeEnvelope(t, rec)
	assert.False(t, env.Status)
	require.NotNil(t, env.Error)
	assert.Equal(t, service.ErrResetTokenInvalidOrExpired.Error(), env.Error.Message)
}
