package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-blog-keeper/internal/logger"
	"github.com/MKhiriev/go-blog-keeper/internal/store"
	"github.com/MKhiriev/go-blog-keeper/models"
)

// adminService is the concrete implementation of AdminService. Role checks
// happen in the middleware; by the time these methods run the caller is
// already known to be an admin.
type adminService struct {
	userRepository store.UserRepository
	logger         *logger.Logger
}

// NewAdminService constructs an AdminService on top of the given
// UserRepository.
func NewAdminService(userRepository store.UserRepository, logger *logger.Logger) AdminService {
	return &adminService{
		userRepository: userRepository,
		logger:         logger,
	}
}

// ListUsers returns every account without credential material.
func (a *adminService) ListUsers(ctx context.Context) ([]models.User, error) {
	log := logger.FromContext(ctx)

	users, err := a.userRepository.ListUsers(ctx)
	if err != nil {
		log.Err(err).Msg("listing users failed")
		return nil, fmt.Errorf("listing users failed: %w", err)
	}

	return users, nil
}

// DeleteUser removes the account with the given identifier along with its
// posts (cascade in the schema). Tokens already issued to the deleted account
// die on the next request, when the middleware fails to re-fetch the user.
func (a *adminService) DeleteUser(ctx context.Context, userID int64) error {
	log := logger.FromContext(ctx)

	if err := a.userRepository.DeleteUser(ctx, userID); err != nil {
		log.Err(err).Int64("id", userID).Msg("user deletion ended with error")
		return fmt.Errorf("user deletion ended with error: %w", err)
	}

	return nil
}
