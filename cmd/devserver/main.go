package main

import (
	"context"
	"fmt"
	"os"

	"github.com/MKhiriev/dingus-admin/internal/config"
	"github.com/MKhiriev/dingus-admin/internal/handler"
	"github.com/MKhiriev/dingus-admin/internal/logger"
	"github.com/MKhiriev/dingus-admin/internal/server"
	"github.com/MKhiriev/dingus-admin/internal/service"
	"github.com/MKhiriev/dingus-admin/internal/store"
	"github.com/MKhiriev/dingus-admin/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	fmt.Println(models.NewAppBuildInfo(buildVersion, buildDate, buildCommit))

	log := logger.NewLogger("devserver")
	cfg, err := config.GetServerConfig(os.Args[1:])
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Debug().Any("config", cfg).Msg("received configs")

	services := service.NewServices(store.NewMemoryStorages(), log)

	handlers, err := handler.NewHandlers(services, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	if err = srv.RunServer(context.Background()); err != nil {
		log.Fatal().Err(err).Msg("server stopped with error")
	}
}
