package main

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-bookmark-keeper/internal/config"
	handler "github.com/MKhiriev/go-bookmark-keeper/internal/handler/http"
	"github.com/MKhiriev/go-bookmark-keeper/internal/logger"
	"github.com/MKhiriev/go-bookmark-keeper/internal/server"
	"github.com/MKhiriev/go-bookmark-keeper/internal/service"
	"github.com/MKhiriev/go-bookmark-keeper/internal/store"
	"github.com/MKhiriev/go-bookmark-keeper/migrations"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("go-bookmark-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Debug().Any("config", cfg).Msg("received configs")

	ctx := context.Background()

	storages, err := store.NewStorages(ctx, cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}
	defer storages.Close()

	if err := migrations.Migrate(storages.DB.DB, cfg.Storage.DB.Driver); err != nil {
		log.Fatal().Err(err).Msg("error running migrations")
	}

	services := service.NewServices(storages, cfg, log)
	handlers := handler.NewHandler(services, log)

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
