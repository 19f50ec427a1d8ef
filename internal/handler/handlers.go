package handler

import (
	"github.com/sravani-k-5/vidspark-backend/internal/config"
	"github.com/sravani-k-5/vidspark-backend/internal/handler/http"
	"github.com/sravani-k-5/vidspark-backend/internal/logger"
	"github.com/sravani-k-5/vidspark-backend/internal/service"
)

type Handlers struct {
	HTTP *http.Handler
}

func NewHandlers(services *service.Services, cfg config.Server, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	if cfg.HTTPAddress == "" {
		return nil, errNoHandlersAreCreated
	}

	return &Handlers{
		HTTP: http.NewHandler(services, cfg, logger),
	}, nil
}
