package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/deppfellow/wheelspec/internal/config"
	"github.com/deppfellow/wheelspec/internal/database"
	"github.com/deppfellow/wheelspec/internal/handler"
	"github.com/deppfellow/wheelspec/internal/logger"
	"github.com/deppfellow/wheelspec/internal/repository"
	"github.com/deppfellow/wheelspec/internal/router"
	"github.com/deppfellow/wheelspec/internal/server"
	"github.com/deppfellow/wheelspec/internal/service"
)

// DefaultContextTimeout is the number of seconds in-flight requests get
// to finish on shutdown.
const DefaultContextTimeout = 30

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		fmt.Fprintln(os.Stderr, "failed to load config:", err)
		os.Exit(1)
	}

	if err := run(cfg); err != nil {
		os.Exit(1)
	}
}

// run serves until SIGINT/SIGTERM or a listener failure. Deferred cleanup
// completes before it returns.
func run(cfg *config.Config) error {
	loggerService := logger.NewLoggerService(cfg.Observability)
	defer loggerService.Shutdown()

	log := logger.NewLoggerWithService(cfg.Observability, loggerService)

	if err := database.Migrate(context.Background(), &log, cfg); err != nil {
		log.Error().Err(err).Msg("failed to migrate database")
		return err
	}

	srv, err := server.New(cfg, &log, loggerService)
	if err != nil {
		log.Error().Err(err).Msg("failed to initialize server")
		return err
	}

	repos := repository.NewRepositories(srv)

	services, err := service.NewService(srv, repos)
	if err != nil {
		log.Error().Err(err).Msg("could not create services")
		_ = srv.Shutdown(context.Background())
		return err
	}

	handlers := handler.NewHandlers(srv, services)

	r := router.NewRouter(srv, handlers)

	srv.SetupHTTPServer(r)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	serverErr := make(chan error, 1)
	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	var startErr error
	select {
	case <-ctx.Done():
		log.Info().Msg("shutting down server")
	case startErr = <-serverErr:
		log.Error().Err(startErr).Msg("failed to start server")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), DefaultContextTimeout*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server forced to shutdown")
		return errors.Join(startErr, err)
	}
	if startErr != nil {
		return startErr
	}

	log.Info().Msg("server exited properly")
	return nil
}
