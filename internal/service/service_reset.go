package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-blog-keeper/internal/config"
	"github.com/MKhiriev/go-blog-keeper/internal/logger"
	"github.com/MKhiriev/go-blog-keeper/internal/store"
	"github.com/MKhiriev/go-blog-keeper/internal/utils"
	"github.com/MKhiriev/go-blog-keeper/models"
)

// resetService is the concrete implementation of ResetService.
//
// Reset secrets are random, short-lived and single-use. Only the SHA-256
// digest of a secret is ever persisted, so a database leak does not expose
// usable tokens. Issuing a new secret replaces the pending one; completing a
// reset consumes it atomically in the store.
type resetService struct {
	userRepository store.UserRepository

	// resetTokenDuration is how long an issued secret stays accepted.
	resetTokenDuration time.Duration

	// bcryptCost is the work factor used when hashing the replacement password.
	bcryptCost int

	logger *logger.Logger
}

// NewResetService constructs a ResetService on top of the given
// UserRepository with timings from cfg.
func NewResetService(userRepository store.UserRepository, cfg config.Auth, logger *logger.Logger) ResetService {
	return &resetService{
		userRepository:     userRepository,
		resetTokenDuration: cfg.ResetTokenDuration,
		bcryptCost:         cfg.BcryptCost,
		logger:             logger,
	}
}

// RequestReset starts a password reset for the account registered under
// email. It generates a fresh high-entropy secret, stores its digest and
// expiry on the user row (overwriting any pending secret) and returns the
// plaintext secret for out-of-band delivery.
//
// An unknown email surfaces as a wrapped store.ErrNoUserWasFound.
func (r *resetService) RequestReset(ctx context.Context, email string) (string, error) {
	log := logger.FromContext(ctx)

	email = normalizeEmail(email)
	if email == "" {
		return "", ErrInvalidDataProvided
	}

	user, err := r.userRepository.FindUserByEmail(ctx, email)
	if err != nil {
		log.Err(err).Str("email", email).Msg("reset requested for unknown email")
		return "", fmt.Errorf("user search by email failed: %w", err)
	}

	secret, digest, err := utils.NewResetSecret()
	if err != nil {
		log.Err(err).Msg("reset secret generation failed")
		return "", fmt.Errorf("reset secret generation failed: %w", err)
	}

	expiry := time.Now().Add(r.resetTokenDuration)
	if err := r.userRepository.SetResetToken(ctx, user.UserID, digest, expiry); err != nil {
		log.Err(err).Int64("id", user.UserID).Msg("storing reset token failed")
		return "", fmt.Errorf("storing reset token failed: %w", err)
	}

	return secret, nil
}

// VerifyResetToken checks that secret matches a pending, unexpired reset
// token and returns the owning user. The token is not consumed; the call is
// idempotent and may be repeated until the token expires or is used.
//
// Wrong, expired and already consumed secrets all map to
// ErrResetTokenInvalidOrExpired — indistinguishable on purpose.
func (r *resetService) VerifyResetToken(ctx context.Context, secret string) (models.User, error) {
	log := logger.FromContext(ctx)

	if secret == "" {
		return models.User{}, ErrInvalidDataProvided
	}

	user, err := r.userRepository.FindUserByResetToken(ctx, utils.HashResetSecret(secret))
	if err != nil {
		if errors.Is(err, store.ErrResetTokenNotFound) {
			return models.User{}, ErrResetTokenInvalidOrExpired
		}
		log.Err(err).Msg("reset token lookup failed")
		return models.User{}, fmt.Errorf("reset token lookup failed: %w", err)
	}

	return user, nil
}

// CompleteReset consumes the secret and replaces the account password.
//
// The new password is hashed here; the store then performs a single atomic
// update keyed by the token digest that sets the hash and clears the pending
// token. Exactly one completion can win: a replay of the same secret, an
// expired token and a never-issued token all come back as
// ErrResetTokenInvalidOrExpired.
func (r *resetService) CompleteReset(ctx context.Context, secret, newPassword string) (models.User, error) {
	log := logger.FromContext(ctx)

	if secret == "" || newPassword == "" {
		return models.User{}, ErrInvalidDataProvided
	}

	passwordHash, err := utils.HashPassword(newPassword, r.bcryptCost)
	if err != nil {
		log.Err(err).Msg("password hashing failed")
		return models.User{}, fmt.Errorf("password hashing failed: %w", err)
	}

	user, err := r.userRepository.CompletePasswordReset(ctx, utils.HashResetSecret(secret), passwordHash)
	if err != nil {
		if errors.Is(err, store.ErrResetTokenNotFound) {
			return models.User{}, ErrResetTokenInvalidOrExpired
		}
		log.Err(err).Msg("password reset completion failed")
		return models.User{}, fmt.Errorf("password reset completion failed: %w", err)
	}

	return user, nil
}
