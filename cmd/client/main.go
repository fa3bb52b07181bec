package main

import (
	"context"
	"fmt"
	"os"

	"github.com/MKhiriev/dingus-admin/internal/client"
	"github.com/MKhiriev/dingus-admin/internal/config"
	"github.com/MKhiriev/dingus-admin/internal/logger"
	"github.com/MKhiriev/dingus-admin/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	fmt.Println(buildInfo)

	cfg, err := config.GetClientConfig(os.Args[1:])
	if err != nil {
		logger.NewLogger("dingus-admin").Fatal().Err(err).Msg("error getting configs")
	}

	log := logger.NewFileLogger("dingus-admin", cfg.Log.FilePath)
	log.Debug().Any("config", cfg).Msg("received configs")

	app, err := client.NewApp(cfg, buildInfo, log)
	if err != nil {
		log.Fatal().Err(err).Msg("init client app error")
	}

	if err = app.Run(context.Background()); err != nil {
		log.Fatal().Err(err).Msg("client run error")
	}
}
