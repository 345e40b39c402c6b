package http

import (
	"context"

	"github.com/skti-dev/bncc-backend/internal/config"
	"github.com/skti-dev/bncc-backend/internal/logger"
	"github.com/skti-dev/bncc-backend/internal/service"
)

// Pinger reports whether the storage backend is reachable. Satisfied by
// *store.DB; the health endpoint depends on nothing else from the store.
type Pinger interface {
	Ping(ctx context.Context) error
}

type Handler struct {
	services *service.Services

	pinger Pinger

	cfg config.App

	logger *logger.Logger
}

func NewHandler(services *service.Services, pinger Pinger, cfg config.App, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services: services,
		pinger:   pinger,
		cfg:      cfg,
		logger:   logger,
	}
}
