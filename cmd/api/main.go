package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog/log"

	"github.com/GoSim-25-26J-441/portfolio-backend/config"
	"github.com/GoSim-25-26J-441/portfolio-backend/internal/bootstrap"
	projectrepo "github.com/GoSim-25-26J-441/portfolio-backend/internal/projects/repository"
	"github.com/GoSim-25-26J-441/portfolio-backend/internal/seed"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}

	logger := bootstrap.NewLogger(cfg.App)
	bootstrap.SetGinMode(cfg.App.Environment)

	ctx := context.Background()
	db, err := bootstrap.OpenDB(ctx, &cfg.Database)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to open database")
	}
	defer db.Close()

	if cfg.Seed.OnStartup {
		items, err := seed.Resolve(cfg.Seed.File)
		if err != nil {
			logger.Fatal().Err(err).Str("file", cfg.Seed.File).Msg("failed to read seed file")
		}
		seed.NewLoader(projectrepo.NewProjectRepository(db), logger).Run(ctx, items)
	}

	r := bootstrap.BuildRouter(bootstrap.RouterDeps{
		Config: cfg,
		DB:     db,
		Log:    logger,
	})

	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      r,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	go func() {
		logger.Info().
			Str("port", cfg.Server.Port).
			Str("db_driver", cfg.Database.Driver).
			Str("env", cfg.App.Environment).
			Msg("server listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal().Err(err).Msg("server error")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info().Msg("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("forced shutdown")
	}
}
