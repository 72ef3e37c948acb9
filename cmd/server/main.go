package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/lifeline-app/backend/internal/config"
	"github.com/lifeline-app/backend/internal/flow"
	httpapi "github.com/lifeline-app/backend/internal/http"
	"github.com/lifeline-app/backend/internal/master"
	"github.com/lifeline-app/backend/internal/store"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	zerolog.TimeFieldFormat = time.RFC3339
	level, _ := zerolog.ParseLevel(cfg.LogLevel)
	logger := log.Level(level).With().Str("service", "lifeline-backend").Logger()

	ctx := context.Background()

	var st store.Store
	if cfg.DatabaseURL == "" {
		st = store.NewMemory()
		logger.Info().Msg("no DATABASE_URL set, using in-memory store")
	} else {
		pg, err := store.NewPostgres(ctx, cfg.DatabaseURL)
		if err != nil {
			logger.Fatal().Err(err).Msg("failed to connect db")
		}
		st = pg
	}
	defer st.Close()

	masterSvc := master.NewService(st, logger)
	if err := masterSvc.Load(ctx); err != nil {
		logger.Fatal().Err(err).Msg("failed to load master record")
	}

	sessions := flow.NewService(st, logger)

	router := httpapi.Router(cfg, st, masterSvc, sessions, logger)

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		logger.Info().Str("port", cfg.Port).Msg("server started")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal().Err(err).Msg("server error")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	ctxShutdown, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	_ = srv.Shutdown(ctxShutdown)
	logger.Info().Msg("server stopped")
}
