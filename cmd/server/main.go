package main

import (
	"context"
	"fmt"

	"github.com/MKhiriev/messagely/internal/adapter"
	"github.com/MKhiriev/messagely/internal/config"
	"github.com/MKhiriev/messagely/internal/handler"
	"github.com/MKhiriev/messagely/internal/logger"
	"github.com/MKhiriev/messagely/internal/server"
	"github.com/MKhiriev/messagely/internal/service"
	"github.com/MKhiriev/messagely/internal/store"
	"github.com/MKhiriev/messagely/internal/workers"
	"github.com/MKhiriev/messagely/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	fmt.Print(buildInfo)

	cfg, err := config.GetStructuredConfig()
	if err != nil {
		logger.NewLogger("messagely-server", "").Fatal().Err(err).Msg("error getting configs")
	}

	log := logger.NewLogger("messagely-server", cfg.App.LogLevel)
	log.Debug().Str("driver", cfg.Storage.DB.Driver).Str("address", cfg.Server.HTTPAddress).Msg("received configs")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	db, err := store.NewConnect(ctx, cfg.Storage.DB, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error connecting to database")
	}
	defer db.Close()

	if err = db.Migrate(); err != nil {
		log.Fatal().Err(err).Msg("error applying migrations")
	}

	storages := store.NewStorages(db)

	sender, err := adapter.NewSMSSender(cfg.Notifier, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating sms sender")
	}

	notificationWorker := workers.NewNotificationWorker(storages.UserRepository, sender, cfg.Notifier, cfg.Workers, log)
	backgroundWorkers := workers.NewWorkers(notificationWorker)
	backgroundWorkers.Run(ctx)

	services, err := service.NewServices(storages, notificationWorker, cfg, buildInfo, log)
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

	// workers must stop before the deferred db.Close
	cancel()
	backgroundWorkers.Wait()
}
