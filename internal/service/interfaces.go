package service

import (
	"context"

	"github.com/MKhiriev/go-blog-keeper/models"
)

type AuthService interface {
	RegisterUser(ctx context.Context, req models.RegisterRequest) (models.User, error)
	Login(ctx context.Context, req models.LoginRequest) (models.User, error)
	UpdateProfile(ctx context.Context, userID int64, req models.UpdateProfileRequest) (models.User, error)
	GetUser(ctx context.Context, userID int64) (models.User, error)
	CreateToken(ctx context.Context, user models.User) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

// ResetService drives the single-use password reset lifecycle: issue a
// secret, optionally verify it, consume it exactly once.
type ResetService interface {
	// RequestReset issues a fresh reset secret for the account with the
	// given email, replacing any pending one. The returned plaintext secret
	// is shown to the caller exactly once; only its digest is stored.
	RequestReset(ctx context.Context, email string) (string, error)

	// VerifyResetToken checks a secret without consuming it and returns the
	// owning account's email. Safe to call repeatedly.
	VerifyResetToken(ctx context.Context, secret string) (models.User, error)

	// CompleteReset consumes the secret: sets the new password and clears
	// the pending token in one atomic step, then returns the updated user.
	// A second completion with the same secret fails.
	CompleteReset(ctx context.Context, secret, newPassword string) (models.User, error)
}

// PostService enforces post ownership: mutating an existing post requires
// the caller to own it. Admin variants skip the ownership check and are
// reachable only behind the admin role middleware.
type PostService interface {
	CreatePost(ctx context.Context, identity models.Identity, post models.Post) (models.Post, error)
	GetPost(ctx context.Context, postID int64) (models.Post, error)
	ListPosts(ctx context.Context) ([]models.Post, error)
	ListUserPosts(ctx context.Context, userID int64) ([]models.Post, error)
	UpdatePost(ctx context.Context, identity models.Identity, postID int64, update models.PostUpdate) (models.Post, error)
	DeletePost(ctx context.Context, identity models.Identity, postID int64) error

	ListAllPosts(ctx context.Context) ([]models.Post, error)
	DeletePostByAdmin(ctx context.Context, postID int64) error
}

type AdminService interface {
	ListUsers(ctx context.Context) ([]models.User, error)
	DeleteUser(ctx context.Context, userID int64) error
}
