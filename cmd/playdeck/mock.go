// Copyright (c) 2026 Playdeck. All rights reserved.
// Author: minh.vo.dev@gmail.com

package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/minhvo-dev/playdeck/internal/mockapi"
	"github.com/minhvo-dev/playdeck/internal/platform/constants"
	"github.com/minhvo-dev/playdeck/internal/platform/sec"
)

// mockCommand runs the built-in mock platform API with graceful shutdown.
func (application *app) mockCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "mock",
		Short: "Serve a self-contained mock of the platform admin API",
		Long: "Mock starts an in-process imitation of the platform admin API with seeded demo data.\n" +
			"Login with " + mockapi.DemoAdminEmail + " / " + mockapi.DemoAdminPassword + ".",
		RunE: func(cmd *cobra.Command, args []string) error {
			return application.runMock(cmd.Context())
		},
	}
}

func (application *app) runMock(ctx context.Context) error {
	log := application.log
	cfg := application.cfg

	store, err := mockapi.NewSeededStore()
	if err != nil {
		return fmt.Errorf("seeding mock store: %w", err)
	}

	tokens := sec.NewTokenService(cfg.MockSecret, constants.AuthIssuer)

	// Root context for background middleware workers (rate limit cleanup).
	serverCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	server := mockapi.NewServer(serverCtx, cfg, log, store, tokens)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGTERM, syscall.SIGINT)

	serverErr := make(chan error, 1)
	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	// Block until OS signal or server error.
	select {
	case sig := <-quit:
		log.Info("shutdown signal received", slog.String("signal", sig.String()))
	case err := <-serverErr:
		log.Error("server startup error", slog.Any("error", err))
		return err
	}

	log.Info("shutting down server", slog.Duration("timeout", constants.ShutdownTimeout))
	if err := server.Shutdown(constants.ShutdownTimeout); err != nil {
		log.Error("shutdown error", slog.Any("error", err))
		return err
	}

	log.Info("server stopped cleanly")
	return nil
}
