package main

import (
	"context"
	"fmt"
	"time"

	"github.com/azimovr/go-user-admin/internal/config"
	"github.com/azimovr/go-user-admin/internal/handler"
	"github.com/azimovr/go-user-admin/internal/logger"
	"github.com/azimovr/go-user-admin/internal/server"
	"github.com/azimovr/go-user-admin/internal/service"
	"github.com/azimovr/go-user-admin/internal/store"
	"github.com/azimovr/go-user-admin/internal/workers"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("user-admin-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Debug().Any("config", cfg).Msg("received configs")

	storages, err := store.NewStorages(context.Background(), cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}

	imageCleanup := workers.NewImageCleanupWorker(storages.ImageStorage, log)
	imageCleanup.Run()

	services := service.NewServices(storages, imageCleanup, cfg, log)

	handlers, err := handler.NewHandlers(services, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()

	// drain queued image deletions before letting go of the storages
	imageCleanup.Stop()

	closeCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := storages.Close(closeCtx); err != nil {
		log.Err(err).Msg("error closing storages")
	}
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
