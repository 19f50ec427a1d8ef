package http

import (
	"github.com/sravani-k-5/vidspark-backend/internal/config"
	"github.com/sravani-k-5/vidspark-backend/internal/logger"
	"github.com/sravani-k-5/vidspark-backend/internal/service"
)

type Handler struct {
	services *service.Services

	cfg config.Server

	logger *logger.Logger
}

func NewHandler(services *service.Services, cfg config.Server, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services: services,
		cfg:      cfg,
		logger:   logger,
	}
}
