package store

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

import (
	"context"
	"time"

	"github.com/MKhiriev/go-blog-keeper/models"
)

// UserRepository is the credential store: it persists user identity,
// password hashes, roles, and pending reset token digests. Pure data access;
// all policy decisions live in the service layer.
type UserRepository interface {
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	FindUserByEmail(ctx context.Context, email string) (models.User, error)
	FindUserByID(ctx context.Context, userID int64) (models.User, error)
	UpdateProfile(ctx context.Context, userID int64, name, email string) (models.User, error)
	UpdatePassword(ctx context.Context, userID int64, passwordHash string) error

	// SetResetToken stores the digest and expiry of a freshly generated
	// reset secret, silently overwriting any pending one.
	SetResetToken(ctx context.Context, userID int64, tokenHash string, expiry time.Time) error

	// FindUserByResetToken returns the user whose pending reset token digest
	// matches tokenHash and has not yet expired. The lookup does not consume
	// the token.
	FindUserByResetToken(ctx context.Context, tokenHash string) (models.User, error)

	// CompletePasswordReset atomically sets the new password hash and clears
	// both reset token columns for the user matching tokenHash with an
	// unexpired token. The single UPDATE keyed by the token digest is what
	// serializes concurrent completions: at most one call observes a row.
	CompletePasswordReset(ctx context.Context, tokenHash, passwordHash string) (models.User, error)

	ListUsers(ctx context.Context) ([]models.User, error)
	DeleteUser(ctx context.Context, userID int64) error
}

// PostRepository persists blog posts, the resource protected by the
// ownership checks. Ownership itself is enforced by the service layer.
type PostRepository interface {
	CreatePost(ctx context.Context, post models.Post) (models.Post, error)
	FindPostByID(ctx context.Context, postID int64) (models.Post, error)
	FindAllPosts(ctx context.Context) ([]models.Post, error)
	FindPostsByUser(ctx context.Context, userID int64) ([]models.Post, error)
	UpdatePost(ctx context.Context, postID int64, update models.PostUpdate) (models.Post, error)
	DeletePost(ctx context.Context, postID int64) error
}

// ErrorClassificator reports whether a failed database operation is worth
// retrying. Implemented for PostgreSQL by [PostgresErrorClassifier].
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}
