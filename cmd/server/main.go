package main

import (
	"context"
	"fmt"

	"github.com/agiletrack/sprint-roi/internal/config"
	httphandler "github.com/agiletrack/sprint-roi/internal/handler/http"
	"github.com/agiletrack/sprint-roi/internal/logger"
	"github.com/agiletrack/sprint-roi/internal/server"
	"github.com/agiletrack/sprint-roi/internal/service"
	"github.com/agiletrack/sprint-roi/internal/store"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("sprint-roi-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Debug().Any("config", cfg).Msg("received configs")

	db, err := store.NewConnectPostgres(context.Background(), cfg.Storage.DB, log.GetChildLogger())
	if err != nil {
		log.Fatal().Err(err).Msg("error connecting to database")
	}

	if err := db.Migrate(); err != nil {
		log.Fatal().Err(err).Msg("error applying migrations")
	}

	storages := store.NewStorages(db, log.GetChildLogger())
	services := service.NewServices(storages, *cfg, log.GetChildLogger())
	handler := httphandler.NewHandler(services, log.GetChildLogger())

	srv, err := server.NewServer(handler.Init(), cfg.Server, log.GetChildLogger())
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
