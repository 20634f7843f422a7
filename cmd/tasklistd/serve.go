package main

import (
	"context"
	"fmt"
	"os"

	gfshutdown "github.com/gelmium/graceful-shutdown"

	"tasklist/internal/auth"
	"tasklist/internal/config"
	"tasklist/internal/domain"
	"tasklist/internal/httpapi"
	"tasklist/internal/logging"
	"tasklist/internal/services"
)

// runServe wires the application together and serves until interrupted.
func runServe() error {
	cfg, err := config.NewLoader().Load()
	if err != nil {
		return fmt.Errorf("loading configuration: %w", err)
	}

	logger := logging.New(cfg.Logging.Level, cfg.Logging.Format)

	repo, err := config.CreateRepository(cfg)
	if err != nil {
		return fmt.Errorf("creating repository: %w", err)
	}

	clock := domain.SystemClock{}
	taskService := services.NewTaskService(repo, clock)

	sessions := auth.NewSessionManager(auth.SessionConfig{
		SecretKey: cfg.Auth.SessionSecret,
		TokenTTL:  cfg.Auth.SessionTTL,
		Issuer:    cfg.Auth.Issuer,
	}, clock)

	github := auth.NewGitHubClient(auth.GitHubConfig{
		ClientID:     cfg.Auth.GitHubClientID,
		ClientSecret: cfg.Auth.GitHubClientSecret,
	})

	server := httpapi.New(cfg.Server, taskService, sessions, github, logger)

	go func() {
		logger.Info("starting server", "addr", cfg.Server.Addr, "db", cfg.GetDatabasePath())
		if err := server.Listen(cfg.Server.Addr); err != nil {
			logger.Error("server stopped", "error", err)
		}
	}()

	// Graceful shutdown: stop accepting requests, then close the store.
	wait := gfshutdown.GracefulShutdown(
		context.Background(),
		cfg.Server.ShutdownTimeout,
		map[string]gfshutdown.Operation{
			"http-server": func(ctx context.Context) error {
				logger.Info("shutting down server")
				return server.Shutdown(ctx)
			},
			"database": func(ctx context.Context) error {
				return repo.Close()
			},
		},
	)

	exitCode := <-wait
	logger.Info("server exited", "code", exitCode)
	os.Exit(exitCode)
	return nil
}
