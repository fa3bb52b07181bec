package http

import (
	"github.com/MKhiriev/dingus-admin/internal/config"
	"github.com/MKhiriev/dingus-admin/internal/logger"
	"github.com/MKhiriev/dingus-admin/internal/service"
	"github.com/MKhiriev/dingus-admin/internal/utils"
)

type Handler struct {
	services *service.Services

	assignmentsPath string
	configPath      string
	traceIDs        *utils.UUIDGenerator

	logger *logger.Logger
}

func NewHandler(services *service.Services, cfg *config.ServerConfig, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:        services,
		assignmentsPath: cfg.AssignmentsPath,
		configPath:      cfg.ConfigPath,
		traceIDs:        utils.NewUUIDGenerator(),
		logger:          logger,
	}
}
