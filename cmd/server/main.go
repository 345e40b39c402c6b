package main

import (
	"context"
	"fmt"

	"github.com/skti-dev/bncc-backend/internal/config"
	handler "github.com/skti-dev/bncc-backend/internal/handler/http"
	"github.com/skti-dev/bncc-backend/internal/logger"
	"github.com/skti-dev/bncc-backend/internal/server"
	"github.com/skti-dev/bncc-backend/internal/service"
	"github.com/skti-dev/bncc-backend/internal/store"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("bncc-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	ctx := context.Background()

	db, err := store.NewConnectMongo(ctx, cfg.Storage.Mongo, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error connecting to mongodb")
	}
	defer func() {
		if err := db.Close(context.Background()); err != nil {
			log.Error().Err(err).Msg("error disconnecting from mongodb")
		}
	}()

	storages := store.NewStorages(db, cfg.Storage.Mongo, log)
	services := service.NewServices(storages, cfg.App, log)
	handlers := handler.NewHandler(services, db, cfg.App, log)

	srv, err := server.NewServer(handlers.Init(), cfg.Server, log)
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
