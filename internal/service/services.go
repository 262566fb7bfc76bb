package service

import (
	"github.com/MKhiriev/go-blog-keeper/internal/config"
	"github.com/MKhiriev/go-blog-keeper/internal/logger"
	"github.com/MKhiriev/go-blog-keeper/internal/store"
)

type Services struct {
	AuthService  AuthService
	ResetService ResetService
	PostService  PostService
	AdminService AdminService
}

func NewServices(storages *store.Storages, cfg config.StructuredConfig, logger *logger.Logger) *Services {
	return &Services{
		AuthService:  NewAuthService(storages.UserRepository, cfg.Auth, logger),
		ResetService: NewResetService(storages.UserRepository, cfg.Auth, logger),
		PostService:  NewPostService(storages.PostRepository, logger),
		AdminService: NewAdminService(storages.UserRepository, logger),
	}
}
