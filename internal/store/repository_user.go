package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-blog-keeper/internal/logger"
	"github.com/MKhiriev/go-blog-keeper/models"
	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgerrcode"
)

// userRepository is the PostgreSQL-backed implementation of [UserRepository].
// It handles account creation, credential lookup, and the reset token
// columns of the "users" table.
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of database interactions.
type userRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewUserRepository constructs a [UserRepository] backed by the provided
// database connection and logger.
func NewUserRepository(db *DB, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		db:     db,
		logger: logger,
	}
}

// scanUser reads a full users row (see userColumns) into a models.User.
// The reset columns are nullable and scanned through pointer destinations.
func scanUser(row *sql.Row) (models.User, error) {
	var user models.User
	err := row.Scan(
		&user.UserID,
		&user.Name,
		&user.Email,
		&user.PasswordHash,
		&user.Role,
		&user.ResetTokenHash,
		&user.ResetTokenExpiry,
		&user.CreatedAt,
	)
	return user, err
}

// CreateUser persists a new user record and returns the fully populated
// [models.User] with server-assigned fields (UserID, CreatedAt).
//
// Error handling:
//   - PostgreSQL unique_violation (23505) → [ErrEmailAlreadyExists];
//     the failed insert leaves existing rows untouched.
//   - Any other driver-level error → wrapped as "unexpected DB error".
func (r *userRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, createUser, user.Name, user.Email, user.PasswordHash, user.Role)

	created, err := scanUser(row)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error creating user")

		switch postgresError(err) {
		case pgerrcode.UniqueViolation:
			return models.User{}, ErrEmailAlreadyExists
		default:
			return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
		}
	}

	return created, nil
}

// FindUserByEmail retrieves the user record whose email matches the given
// (already normalized) address.
//
// Returns [ErrNoUserWasFound] when no row matches.
func (r *userRepository) FindUserByEmail(ctx context.Context, email string) (models.User, error) {
	log := logger.FromContext(ctx)

	user, err := scanUser(r.db.QueryRowContext(ctx, findUserByEmail, email))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, ErrNoUserWasFound
		}
		log.Err(err).Str("func", "*userRepository.FindUserByEmail").Msg("error finding user by email")
		return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return user, nil
}

// FindUserByID retrieves the user record with the given identifier.
//
// Returns [ErrNoUserWasFound] when no row matches — notably when a token's
// subject refers to an account deleted after issuance.
func (r *userRepository) FindUserByID(ctx context.Context, userID int64) (models.User, error) {
	log := logger.FromContext(ctx)

	user, err := scanUser(r.db.QueryRowContext(ctx, findUserByID, userID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, ErrNoUserWasFound
		}
		log.Err(err).Str("func", "*userRepository.FindUserByID").Msg("error finding user by id")
		return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return user, nil
}

// UpdateProfile applies a partial update of the user's name and email.
// Empty arguments leave the corresponding column untouched; the password and
// reset columns are never touched here.
//
// The UPDATE statement is built dynamically with squirrel and returns the
// refreshed row. An email collision maps to [ErrEmailAlreadyExists].
func (r *userRepository) UpdateProfile(ctx context.Context, userID int64, name, email string) (models.User, error) {
	log := logger.FromContext(ctx)

	builder := sq.Update(models.User{}.TableName()).PlaceholderFormat(sq.Dollar)
	if name != "" {
		builder = builder.Set("name", name)
	}
	if email != "" {
		builder = builder.Set("email", email)
	}
	if name == "" && email == "" {
		// nothing to change, return the current row
		return r.FindUserByID(ctx, userID)
	}

	query, args, err := builder.
		Where(sq.Eq{"user_id": userID}).
		Suffix("RETURNING " + userColumns).
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "*userRepository.UpdateProfile").Msg("error building update query")
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	user, err := scanUser(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, ErrNoUserWasFound
		}
		log.Err(err).Str("func", "*userRepository.UpdateProfile").Msg("error updating profile")

		switch postgresError(err) {
		case pgerrcode.UniqueViolation:
			return models.User{}, ErrEmailAlreadyExists
		default:
			return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
		}
	}

	return user, nil
}

// UpdatePassword replaces the stored password hash for the given user.
// Used by reset-independent password changes; the reset flow goes through
// [CompletePasswordReset] instead.
func (r *userRepository) UpdatePassword(ctx context.Context, userID int64, passwordHash string) error {
	log := logger.FromContext(ctx)

	result, err := r.db.ExecContext(ctx, updatePassword, passwordHash, userID)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.UpdatePassword").Msg("error updating password")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrNoUserWasFound
	}

	return nil
}

// SetResetToken stores the digest and expiry of a freshly generated reset
// secret on the user's row, overwriting any pending token so that only the
// latest secret remains valid.
func (r *userRepository) SetResetToken(ctx context.Context, userID int64, tokenHash string, expiry time.Time) error {
	log := logger.FromContext(ctx)

	result, err := r.db.ExecContext(ctx, setResetToken, tokenHash, expiry, userID)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.SetResetToken").Msg("error storing reset token")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrNoUserWasFound
	}

	return nil
}

// FindUserByResetToken looks up the user carrying the given token digest
// with an expiry still in the future. The token is not consumed; the lookup
// is idempotent.
//
// Returns [ErrResetTokenNotFound] for a wrong, expired, or already consumed
// token — the three cases are indistinguishable on purpose.
func (r *userRepository) FindUserByResetToken(ctx context.Context, tokenHash string) (models.User, error) {
	log := logger.FromContext(ctx)

	user, err := scanUser(r.db.QueryRowContext(ctx, findUserByResetToken, tokenHash))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, ErrResetTokenNotFound
		}
		log.Err(err).Str("func", "*userRepository.FindUserByResetToken").Msg("error finding user by reset token")
		return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return user, nil
}

// CompletePasswordReset consumes a reset token: in a single UPDATE it sets
// the new password hash and clears both reset columns for the row whose
// token digest matches and has not expired.
//
// Because the WHERE clause re-checks the digest and expiry, two concurrent
// completions racing on the same token are serialized by the database row
// lock and only one of them observes a matching row; the loser gets
// [ErrResetTokenNotFound].
func (r *userRepository) CompletePasswordReset(ctx context.Context, tokenHash, passwordHash string) (models.User, error) {
	log := logger.FromContext(ctx)

	user, err := scanUser(r.db.QueryRowContext(ctx, completePasswordReset, passwordHash, tokenHash))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, ErrResetTokenNotFound
		}
		log.Err(err).Str("func", "*userRepository.CompletePasswordReset").Msg("error completing password reset")
		return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return user, nil
}

// ListUsers returns every account without credential material (no password
// hash, no reset token digest).
func (r *userRepository) ListUsers(ctx context.Context) ([]models.User, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.QueryContext(ctx, listUsers)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.ListUsers").Msg("error listing users")
		return nil, fmt.Errorf("unexpected DB error: %w", err)
	}
	defer rows.Close()

	users := make([]models.User, 0)
	for rows.Next() {
		var user models.User
		if err := rows.Scan(&user.UserID, &user.Name, &user.Email, &user.Role, &user.CreatedAt); err != nil {
			log.Err(err).Str("func", "*userRepository.ListUsers").Msg("error scanning user row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		users = append(users, user)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return users, nil
}

// DeleteUser removes the account with the given identifier.
//
// Returns [ErrNoUserWasFound] when no row was deleted.
func (r *userRepository) DeleteUser(ctx context.Context, userID int64) error {
	log := logger.FromContext(ctx)

	result, err := r.db.ExecContext(ctx, deleteUser, userID)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.DeleteUser").Msg("error deleting user")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrNoUserWasFound
	}

	return nil
}
