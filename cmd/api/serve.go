package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/spf13/cobra"

	"landing_backend/internal/app"
	"landing_backend/internal/middleware"
	"landing_backend/pkg/cron"
	"landing_backend/pkg/email"
)

func cmdServe(cmd *cobra.Command, args []string) error {
	cfg, log, err := setup(true)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	be, err := startBackend(ctx, cfg.Database, log, openBackend)
	if err != nil {
		return err
	}
	defer func() {
		closeCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := be.store.Close(closeCtx); err != nil {
			log.WithError(err).Warn("could not close database")
		}
	}()

	files, err := openFiles(ctx, cfg)
	if err != nil {
		return err
	}

	transport, err := email.NewTransport(cfg.Email)
	if err != nil {
		return err
	}
	dispatcher, err := email.NewDispatcher(transport, cfg.Email.From, cfg.Email.SupportEmail)
	if err != nil {
		return err
	}

	var sessionStorage fiber.Storage
	if cfg.Session.RedisURL != "" {
		redisStorage, err := middleware.OpenRedisStorage(ctx, cfg.Session.RedisURL, "session:")
		if err != nil {
			return err
		}
		defer redisStorage.Close()
		sessionStorage = redisStorage
	}

	sweeper, err := cron.InitStagingSweepCron(cfg.Upload.SweepSchedule, files, cfg.Upload.StagingTTL, log)
	if err != nil {
		return err
	}
	defer sweeper.Stop()

	server := app.New(app.Deps{
		Config:   cfg,
		Log:      log,
		Store:    be.store,
		Files:    files,
		Notifier: dispatcher,
		Sessions: middleware.NewSessionStore(cfg.Session, sessionStorage),
	})

	go func() {
		<-ctx.Done()
		log.Info("shutting down")
		if err := server.ShutdownWithTimeout(15 * time.Second); err != nil {
			log.WithError(err).Warn("shutdown did not complete")
		}
	}()

	log.Infof("Server is running on port %s", cfg.Server.Port)
	return server.Listen(":" + cfg.Server.Port)
}
