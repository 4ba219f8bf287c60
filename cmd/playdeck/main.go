// Copyright (c) 2026 Playdeck. All rights reserved.
// Author: minh.vo.dev@gmail.com

// Command playdeck is the Playdeck admin console.
//
// # Startup Sequence
//
//  1. Initialize structured logger.
//  2. Load configuration from environment variables.
//  3. Wire the credential store, HTTP client, and slice services.
//  4. Dispatch the requested subcommand.
//
// No business logic lives here. All wiring is explicit constructor injection.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/minhvo-dev/playdeck/internal/core/dashboard"
	"github.com/minhvo-dev/playdeck/internal/core/post"
	"github.com/minhvo-dev/playdeck/internal/core/report"
	"github.com/minhvo-dev/playdeck/internal/core/session"
	"github.com/minhvo-dev/playdeck/internal/core/user"
	"github.com/minhvo-dev/playdeck/internal/notify"
	"github.com/minhvo-dev/playdeck/internal/platform/config"
	"github.com/minhvo-dev/playdeck/internal/platform/constants"
	"github.com/minhvo-dev/playdeck/internal/platform/credential"
	"github.com/minhvo-dev/playdeck/internal/platform/httpclient"
)

// app bundles the wired console services for the command handlers.
type app struct {
	cfg      *config.Config
	log      *slog.Logger
	notifier *notify.Notifier

	session   *session.Service
	users     *user.Service
	posts     *post.Service
	reports   *report.Service
	dashboard *dashboard.Service
}

// newApp performs the full constructor-injection wiring.
func newApp() (*app, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	level := slog.LevelInfo
	if cfg.Debug {
		level = slog.LevelDebug
	}
	log := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})).With(slog.String("app", constants.AppName))
	slog.SetDefault(log)

	tokenPath, err := cfg.CredentialPath()
	if err != nil {
		return nil, err
	}
	creds := credential.NewStore(tokenPath)

	// Toasts go straight to stderr as they are pushed, so mutation feedback
	// shows up even when a command then fails.
	notifier := notify.New(printToast)

	client := httpclient.New(cfg.APIBaseURL, cfg.HTTPTimeout, creds, log)

	return &app{
		cfg:       cfg,
		log:       log,
		notifier:  notifier,
		session:   session.NewService(client, creds, notifier, log),
		users:     user.NewService(user.NewAPIStore(client), notifier, log),
		posts:     post.NewService(post.NewAPIStore(client), notifier, log),
		reports:   report.NewService(report.NewAPIStore(client), notifier, log),
		dashboard: dashboard.NewService(dashboard.NewAPIStore(client), log),
	}, nil
}

// printToast renders a notification to stderr.
func printToast(n notify.Notification) {
	fmt.Fprintf(os.Stderr, "[%s] %s\n", n.Severity, n.Message)
}

func main() {
	root := &cobra.Command{
		Use:           "playdeck",
		Short:         "Admin console for the Playdeck social learning platform",
		Long:          "Playdeck inspects and moderates platform users, posts, comments, and abuse reports through the remote admin API.",
		Version:       constants.AppVersion,
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	application, err := newApp()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}

	root.AddCommand(
		application.loginCommand(),
		application.logoutCommand(),
		application.verifyCommand(),
		application.statsCommand(),
		application.usersCommand(),
		application.postsCommand(),
		application.commentsCommand(),
		application.reportsCommand(),
		application.mockCommand(),
	)

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}
