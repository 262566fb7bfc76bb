// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/go-blog-keeper/internal/logger"
	"github.com/MKhiriev/go-blog-keeper/internal/service"
	"github.com/MKhiriev/go-blog-keeper/models"
	"github.com/stretchr/testify/require"
)

// ─────────────────────────────────────────────
// Mock services
// ─────────────────────────────────────────────

// mockAuthService implements service.AuthService for unit tests.
// Each method field can be overridden per test case.
type mockAuthService struct {
	registerUserFn  func(ctx context.Context, req models.RegisterRequest) (models.User, error)
	loginFn         func(ctx context.Context, req models.LoginRequest) (models.User, error)
	updateProfileFn func(ctx context.Context, userID int64, req models.UpdateProfileRequest) (models.User, error)
	getUserFn       func(ctx context.Context, userID int64) (models.User, error)
	createTokenFn   func(ctx context.Context, user models.User) (models.Token, error)
	parseTokenFn    func(ctx context.Context, tokenString string) (models.Token, error)
}

func (m *mockAuthService) RegisterUser(ctx context.Context, req models.RegisterRequest) (models.User, error) {
	return m.registerUserFn(ctx, req)
}

func (m *mockAuthService) Login(ctx context.Context, req models.LoginRequest) (models.User, error) {
	return m.loginFn(ctx, req)
}

func (m *mockAuthService) UpdateProfile(ctx context.Context, userID int64, req models.UpdateProfileRequest) (models.User, error) {
	return m.updateProfileFn(ctx, userID, req)
}

func (m *mockAuthService) GetUser(ctx context.Context, userID int64) (models.User, error) {
	return m.getUserFn(ctx, userID)
}

func (m *mockAuthService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	return m.createTokenFn(ctx, user)
}

func (m *mockAuthService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	return m.parseTokenFn(ctx, tokenString)
}

// mockResetService implements service.ResetService for unit tests.
type mockResetService struct {
	requestResetFn     func(ctx context.Context, email string) (string, error)
	verifyResetTokenFn func(ctx context.Context, secret string) (models.User, error)
	completeResetFn    func(ctx context.Context, secret, newPassword string) (models.User, error)
}

func (m *mockResetService) RequestReset(ctx context.Context, email string) (string, error) {
	return m.requestResetFn(ctx, email)
}

func (m *mockResetService) VerifyResetToken(ctx context.Context, secret string) (models.User, error) {
	return m.verifyResetTokenFn(ctx, secret)
}

func (m *mockResetService) CompleteReset(ctx context.Context, secret, newPassword string) (models.User, error) {
	return m.completeResetFn(ctx, secret, newPassword)
}

// mockPostService implements service.PostService for unit tests.
type mockPostService struct {
	createPostFn        func(ctx context.Context, identity models.Identity, post models.Post) (models.Post, error)
	getPostFn           func(ctx context.Context, postID int64) (models.Post, error)
	listPostsFn         func(ctx context.Context) ([]models.Post, error)
	listUserPostsFn     func(ctx context.Context, userID int64) ([]models.Post, error)
	updatePostFn        func(ctx context.Context, identity models.Identity, postID int64, update models.PostUpdate) (models.Post, error)
	deletePostFn        func(ctx context.Context, identity models.Identity, postID int64) error
	listAllPostsFn      func(ctx context.Context) ([]models.Post, error)
	deletePostByAdminFn func(ctx context.Context, postID int64) error
}

func (m *mockPostService) CreatePost(ctx context.Context, identity models.Identity, post models.Post) (models.Post, error) {
	return m.createPostFn(ctx, identity, post)
}

func (m *mockPostService) GetPost(ctx context.Context, postID int64) (models.Post, error) {
	return m.getPostFn(ctx, postID)
}

func (m *mockPostService) ListPosts(ctx context.Context) ([]models.Post, error) {
	return m.listPostsFn(ctx)
}

func (m *mockPostService) ListUserPosts(ctx context.Context, userID int64) ([]models.Post, error) {
	return m.listUserPostsFn(ctx, userID)
}

func (m *mockPostService) UpdatePost(ctx context.Context, identity models.Identity, postID int64, update models.PostUpdate) (models.Post, error) {
	return m.updatePostFn(ctx, identity, postID, update)
}

func (m *mockPostService) DeletePost(ctx context.Context, identity models.Identity, postID int64) error {
	return m.deletePostFn(ctx, identity, postID)
}

func (m *mockPostService) ListAllPosts(ctx context.Context) ([]models.Post, error) {
	return m.listAllPostsFn(ctx)
}

func (m *mockPostService) DeletePostByAdmin(ctx context.Context, postID int64) error {
	return m.deletePostByAdminFn(ctx, postID)
}

// mockAdminService implements service.AdminService for unit tests.
type mockAdminService struct {
	listUsersFn  func(ctx context.Context) ([]models.User, error)
	deleteUserFn func(ctx context.Context, userID int64) error
}

func (m *mockAdminService) ListUsers(ctx context.Context) ([]models.User, error) {
	return m.listUsersFn(ctx)
}

func (m *mockAdminService) DeleteUser(ctx context.Context, userID int64) error {
	return m.deleteUserFn(ctx, userID)
}

// ─────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────

// newTestHandler builds a Handler with the given mocks; nil mocks are left
// out and panic on use, making unexpected service calls visible.
func newTestHandler(t *testing.T, svcs *service.Services) *Handler {
	t.Helper()
	return NewHandler(svcs, logger.Nop())
}

// jsonBody serialises v to a JSON request body string.
func jsonBody(t *testing.T, v any) string {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return string(b)
}

// decodeEnvelope parses the recorded response body as the uniform envelope.
func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) models.Envelope {
	t.Helper()
	var env models.Envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	return env
}

// stubToken returns a models.Token with the given signed string.
func stubToken(signed string) models.Token {
	return models.Token{SignedString: signed}
}
