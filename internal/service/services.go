package service

import (
	"github.com/MKhiriev/go-bookmark-keeper/internal/config"
	"github.com/MKhiriev/go-bookmark-keeper/internal/logger"
	"github.com/MKhiriev/go-bookmark-keeper/internal/store"
)

type Services struct {
	AuthService     AuthService
	UserService     UserService
	BookmarkService BookmarkService
}

func NewServices(storages *store.Storages, cfg *config.StructuredConfig, logger *logger.Logger) *Services {
	return &Services{
		AuthService:     NewAuthService(storages.UserRepository, cfg.Auth, logger),
		UserService:     NewUserService(storages.UserRepository, logger),
		BookmarkService: NewBookmarkService(storages.BookmarkRepository, logger),
	}
}
