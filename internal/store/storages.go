package store

import (
	"context"

	"github.com/MKhiriev/go-blog-keeper/internal/config"
	"github.com/MKhiriev/go-blog-keeper/internal/logger"
)

// Storages bundles every repository backed by the shared database
// connection. It is the single unit handed to the service layer.
type Storages struct {
	UserRepository UserRepository
	PostRepository PostRepository

	// DB is the underlying connection, exposed so that the caller can run
	// migrations and close the pool on shutdown.
	DB *DB
}

// NewStorages connects to PostgreSQL and constructs all repositories on top
// of the shared connection.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	db, err := NewConnectPostgres(ctx, cfg.DB, log)
	if err != nil {
		return nil, err
	}

	return &Storages{
		UserRepository: NewUserRepository(db, log),
		PostRepository: NewPostRepository(db, log),
		DB:             db,
	}, nil
}
