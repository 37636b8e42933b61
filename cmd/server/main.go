package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/venuedesk/venuedesk/internal/api"
	"github.com/venuedesk/venuedesk/internal/config"
	"github.com/venuedesk/venuedesk/internal/factory"
	"github.com/venuedesk/venuedesk/internal/web"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Set up logging with JSON output (text in dev mode)
	var handler slog.Handler
	if cfg.Dev {
		handler = slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug})
	} else {
		handler = slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo})
	}
	logger := slog.New(handler)
	slog.SetDefault(logger)

	// Create application factory
	app, err := factory.New(factory.Config{
		Logger:   logger,
		Storage:  cfg.Storage,
		Identity: cfg.Identity,
	})
	if err != nil {
		logger.Error("failed to create application", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Hydrate the session before serving any consumers
	app.Sessions.Hydrate(context.Background())

	// Create API router
	apiRouter := api.NewRouter(api.RouterConfig{
		Logger:   logger,
		Sessions: app.Sessions,
		Backend:  string(cfg.Storage.Backend),
	})

	// Create web router
	webRouter, err := web.NewRouter(web.RouterConfig{
		Logger:       logger,
		Sessions:     app.Sessions,
		Interactions: app.Interactions,
	})
	if err != nil {
		logger.Error("failed to create web router", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Combine routers
	mux := http.NewServeMux()
	mux.Handle("/api/", apiRouter)
	mux.Handle("/", webRouter)

	// Create server
	server := api.NewServer(mux, api.ServerConfig{
		Host:            cfg.HTTP.Host,
		Port:            cfg.HTTP.Port,
		ReadTimeout:     cfg.HTTP.ReadTimeout,
		WriteTimeout:    cfg.HTTP.WriteTimeout,
		ShutdownTimeout: cfg.HTTP.ShutdownTimeout,
	}, logger)

	// Handle graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh
		logger.Info("shutdown signal received")
		cancel()
	}()

	// Start server in goroutine
	errCh := make(chan error, 1)
	go func() {
		errCh <- server.Start()
	}()

	logger.Info("server started",
		slog.String("addr", server.Addr()),
		slog.String("backend", string(cfg.Storage.Backend)))

	// Wait for shutdown or error
	select {
	case err := <-errCh:
		if err != nil {
			logger.Error("server error", slog.String("error", err.Error()))
			os.Exit(1)
		}
	case <-ctx.Done():
		if err := server.Shutdown(context.Background()); err != nil {
			logger.Error("shutdown error", slog.String("error", err.Error()))
			os.Exit(1)
		}
	}

	logger.Info("server stopped")
}
