package http

import (
	"github.com/ekondratev/meetsync/internal/logger"
	"github.com/ekondratev/meetsync/internal/service"
)

type Handler struct {
	engine  service.DeltaSyncEngine
	version string

	logger *logger.Logger
}

func NewHandler(engine service.DeltaSyncEngine, version string, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		engine:  engine,
		version: version,
		logger:  logger,
	}
}
