package main

import (
	"context"
	"fmt"

	"github.com/sravani-k-5/vidspark-backend/internal/config"
	"github.com/sravani-k-5/vidspark-backend/internal/handler"
	"github.com/sravani-k-5/vidspark-backend/internal/logger"
	"github.com/sravani-k-5/vidspark-backend/internal/server"
	"github.com/sravani-k-5/vidspark-backend/internal/service"
	"github.com/sravani-k-5/vidspark-backend/internal/store"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	stampedVersion := buildVersion
	printBuildInfo()

	cfg, err := config.GetStructuredConfig()
	if err != nil {
		logger.NewLogger("vidspark-server").Fatal().Err(err).Msg("error getting configs")
	}

	level, err := logger.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logger.NewLogger("vidspark-server").Fatal().Err(err).Msg("invalid log level")
	}
	log := logger.NewLogger("vidspark-server", logger.WithLevel(level))

	if stampedVersion != "" && cfg.App.Version == config.DefaultVersion {
		cfg.App.Version = stampedVersion
	}

	log.Debug().
		Str("address", cfg.Server.HTTPAddress).
		Str("bucket", cfg.Storage.Objects.Bucket).
		Str("region", cfg.Storage.Objects.Region).
		Dur("query_timeout", cfg.Storage.DB.QueryTimeout).
		Dur("request_timeout", cfg.Server.RequestTimeout).
		Msg("received configs")

	storages, err := store.NewStorages(context.Background(), cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}
	defer storages.Close()

	services, err := service.NewServices(storages, *cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	handlers, err := handler.NewHandlers(services, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}

	if buildDate == "" {
		buildDate = "N/A"
	}

	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
