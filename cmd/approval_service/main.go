package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"applicant_review_system/configs"
	"applicant_review_system/internal/announce"
	"applicant_review_system/internal/api/router"
	"applicant_review_system/internal/db"
	"applicant_review_system/internal/db/repositories"
	"applicant_review_system/internal/di"
	"applicant_review_system/internal/dispatch"
	"applicant_review_system/internal/services"
	"applicant_review_system/internal/tally"

	"github.com/go-co-op/gocron"
	"github.com/go-pg/pg/v10"
	"go.uber.org/zap"
)

type stores struct {
	applicants repositories.ApplicantRepository
	commands   repositories.CommandRepository
	database   *pg.DB
}

func main() {
	config, err := configs.LoadApprovalServiceConfig()
	logger := di.NewLogger(config.Logger, config.App)
	defer func() { _ = logger.Sync() }()

	if err != nil {
		logger.Fatalw("failed to load config", "error", err)
	}
	logger.Info("config loaded")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	logger.Infow("starting store", "driver", config.Store.Driver)
	store, err := newStores(ctx, config, logger)
	if err != nil {
		logger.Fatalw("failed to start store", "error", err)
	}
	if store.database != nil {
		defer store.database.Close()
	}
	logger.Info("store started")

	logger.Info("initializing services")
	initializer := services.NewStudentInitializer(config.Services.StudentInitializerURL, config.Services.OutboundTimeout)
	notifier := services.NewNotifier(config.Services.NotifierURL, config.Services.OutboundTimeout)
	admins := services.NewAdminDirectory(
		config.Services.AdminDirectoryURL,
		config.Services.OutboundTimeout,
		config.Tally.FallbackAdminCount,
		logger,
	)

	dispatcher := dispatch.NewDispatcher(initializer, notifier, store.commands, buildAnnouncers(config, logger), logger)
	relay := dispatch.NewRelay(initializer, notifier, store.commands, config.Relay.BatchSize, config.Relay.MaxAttempts, logger)

	approvals := services.NewApprovalService(
		store.applicants,
		admins,
		dispatcher,
		tally.NewEngine(config.Tally.VerdictOnce),
		config.Tally.MaxWriteRetries,
		logger,
	)
	students := services.NewStudentService(store.applicants, logger)

	scheduler := gocron.NewScheduler(time.UTC)
	_, err = scheduler.Every(config.Relay.Interval).SingletonMode().Do(func() {
		if err := relay.RunOnce(ctx); err != nil {
			logger.Errorw("relay run failed", "error", err)
		}
	})
	if err != nil {
		logger.Fatalw("failed to schedule relay", "error", err)
	}
	scheduler.StartAsync()
	defer scheduler.Stop()

	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", config.HTTP.Port),
		Handler:           router.NewRouter(approvals, students, logger),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.Infow("http server listening", "addr", server.Addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Errorw("http server failed", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), config.HTTP.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Errorw("failed to shut down http server", "error", err)
	}
}

func newStores(ctx context.Context, config configs.ApprovalServiceConfig, logger *zap.SugaredLogger) (stores, error) {
	switch config.Store.Driver {
	case configs.StoreDriverMemory:
		logger.Info("using in-memory store, records are lost on restart")
		return stores{
			applicants: repositories.NewInMemoryApplicantRepository(),
			commands:   repositories.NewInMemoryCommandRepository(),
		}, nil
	case configs.StoreDriverPostgres:
		database, err := db.StartDB(ctx, config.DB, logger)
		if err != nil {
			return stores{}, err
		}
		return stores{
			applicants: repositories.NewApplicantRepository(database),
			commands:   repositories.NewCommandRepository(database),
			database:   database,
		}, nil
	default:
		return stores{}, fmt.Errorf("unknown store driver %q", config.Store.Driver)
	}
}

func buildAnnouncers(config configs.ApprovalServiceConfig, logger *zap.SugaredLogger) []announce.Announcer {
	var announcers []announce.Announcer

	if config.Telegram.Enabled() {
		announcers = append(announcers, announce.NewTelegramAnnouncer(
			config.Telegram.Token,
			config.Telegram.AdminChatID,
			config.Services.OutboundTimeout,
		))
		logger.Info("telegram announcer enabled")
	}

	if config.Discord.Enabled() {
		discord, err := announce.NewDiscordAnnouncer(config.Discord.Token, config.Discord.ChannelID)
		if err != nil {
			logger.Errorw("failed to create discord announcer", "error", err)
		} else {
			announcers = append(announcers, discord)
			logger.Info("discord announcer enabled")
		}
	}

	return announcers
}
