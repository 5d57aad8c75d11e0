package http

import (
	"github.com/MKhiriev/go-bookmark-keeper/internal/logger"
	"github.com/MKhiriev/go-bookmark-keeper/internal/service"
)

// Handler owns the HTTP transport: route registration, middleware, and the
// request handlers that translate between JSON and the service layer.
type Handler struct {
	services *service.Services

	logger *logger.Logger
}

func NewHandler(services *service.Services, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services: services,
		logger:   logger,
	}
}
