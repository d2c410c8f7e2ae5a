package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	httpadapter "github.com/tonandton/report-tracking/internal/adapter/http"
	"github.com/tonandton/report-tracking/internal/adapter/http/handlers"
	"github.com/tonandton/report-tracking/internal/app"
	"github.com/tonandton/report-tracking/internal/app/scheduler"
	"github.com/tonandton/report-tracking/internal/config"
	"github.com/tonandton/report-tracking/pkg/translator"
)

const shutdownTimeout = 10 * time.Second

func main() {
	logger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	// Make zap available to packages that log through zap.L().
	zap.ReplaceGlobals(logger)
	defer func() {
		if err := logger.Sync(); err != nil {
			zap.L().Debug("failed to sync logger", zap.Error(err))
		}
	}()

	cfg := config.LoadConfig()

	translator.InitTranslator(translator.Config{
		TranslationFolder:  cfg.TranslationFolder,
		SupportedLanguages: []string{translator.LanguageEn, translator.LanguageTh},
	})

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	application, err := app.New(ctx, cfg)
	if err != nil {
		logger.Fatal("failed to initialise application", zap.Error(err))
	}
	defer func() {
		if err := application.Close(); err != nil {
			logger.Warn("failed to close database connection", zap.Error(err))
		}
	}()

	if cfg.ResetDaySchedule != "" {
		resetScheduler, err := scheduler.NewResetScheduler(scheduler.Config{
			Schedule: cfg.ResetDaySchedule,
			Location: application.Location,
			Timeout:  cfg.ResetDayTimeout,
			Archive:  application.Archive,
			Logger:   logger.Named("scheduler"),
		})
		if err != nil {
			logger.Fatal("invalid reset day schedule", zap.String("schedule", cfg.ResetDaySchedule), zap.Error(err))
		}
		resetScheduler.Start()
		defer func() {
			stopCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
			defer cancel()
			resetScheduler.Stop(stopCtx)
		}()
	}

	router, err := httpadapter.NewRouter(cfg, logger, httpadapter.Handlers{
		Health:  handlers.NewHealthHandler(application.DB),
		Tasks:   handlers.NewTaskHandler(application.Tasks),
		Reports: handlers.NewReportHandler(application.Reports),
		History: handlers.NewHistoryHandler(application.Archive),
	})
	if err != nil {
		logger.Fatal("failed to build router", zap.Error(err))
	}

	server := &http.Server{
		Addr:              ":" + cfg.AppPort,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		logger.Info("starting server",
			zap.String("addr", server.Addr),
			zap.String("db_driver", cfg.DbDriver),
			zap.String("time_zone", application.Location.String()),
		)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("could not start server", zap.Error(err))
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Warn("graceful shutdown failed", zap.Error(err))
	}
}
