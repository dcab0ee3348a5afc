/*
 * Copyright 2026 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/flamego/csrf"
	"github.com/flamego/flamego"
	"github.com/flamego/session"
	"github.com/flamego/template"
	"github.com/urfave/cli/v3"

	"github.com/metabolx/metabolx/backend"
	"github.com/metabolx/metabolx/chat"
	"github.com/metabolx/metabolx/dashboard"
	"github.com/metabolx/metabolx/db"
	"github.com/metabolx/metabolx/routes"
	"github.com/metabolx/metabolx/static"
	"github.com/metabolx/metabolx/templates"
)

var CmdStart = &cli.Command{
	Name:    "start",
	Aliases: []string{"run"},
	Usage:   "Start the web server",
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:  "port",
			Value: "8080",
			Usage: "the web server port",
		},
		backendURLFlag(),
		requestTimeoutFlag(),
		&cli.StringFlag{
			Name:    "database-url",
			Sources: cli.EnvVars("DATABASE_URL"),
			Usage:   "PostgreSQL connection string for chat history and sessions (optional)",
		},
		&cli.StringFlag{
			Name:    "csrf-secret",
			Sources: cli.EnvVars("CSRF_SECRET"),
			Usage:   "secret used to sign CSRF tokens",
		},
		&cli.IntFlag{
			Name:  "chat-history-limit",
			Value: 50,
			Usage: "number of chat messages kept per conversation (0 keeps all)",
		},
		&cli.StringFlag{
			Name:    "chart-assets-host",
			Sources: cli.EnvVars("CHART_ASSETS_HOST"),
			Usage:   "base URL the dashboard charts load echarts from (defaults to the public CDN)",
		},
		&cli.BoolFlag{
			Name:  "dev",
			Value: false,
			Usage: "enables development mode (for templates)",
		},
	},
	Action: start,
}

// webConfig is everything the web application needs from the outside.
type webConfig struct {
	CSRFSecret   string
	Analyzer     routes.ReportAnalyzer
	Replier      chat.Replier
	Emailer      routes.ReportSender
	Simulator    routes.ScenarioSimulator
	History      chat.HistoryStore
	Dashboard    dashboard.Context
	Session      session.Options
	TemplatesDev bool
}

func start(ctx context.Context, cmd *cli.Command) error {
	csrfSecret := cmd.String("csrf-secret")
	if csrfSecret == "" {
		return errCSRFSecretRequired
	}

	client, err := backendClient(cmd)
	if err != nil {
		return err
	}

	limit := int(cmd.Int("chat-history-limit"))

	config := webConfig{
		CSRFSecret:   csrfSecret,
		Analyzer:     client,
		Replier:      client,
		Emailer:      client,
		Simulator:    client,
		History:      chat.NewMemoryStore(limit),
		Dashboard:    dashboard.NewContext(),
		TemplatesDev: cmd.Bool("dev"),
	}
	config.Dashboard.AssetsHost = cmd.String("chart-assets-host")

	if databaseURL := cmd.String("database-url"); databaseURL != "" {
		appLogger.Info("Connecting to database")

		if err := db.Init(ctx, databaseURL); err != nil {
			return fmt.Errorf("failed to initialize database: %w", err)
		}
		defer db.Close()

		appLogger.Info("Syncing database schema")

		if err := db.SyncSchema(ctx, databaseURL); err != nil {
			return fmt.Errorf("failed to sync schema: %w", err)
		}

		config.History = db.NewChatHistoryStore(limit)
		config.Session = session.Options{
			Initer: db.SessionIniter(),
			Config: db.SessionStoreConfig{},
		}
	} else {
		appLogger.Warn("DATABASE_URL not set, chat history and sessions are kept in memory")
	}

	f := newWebApp(config)

	port := cmd.String("port")
	srv := &http.Server{
		Addr:              fmt.Sprintf("0.0.0.0:%s", port),
		Handler:           f,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		// Report analysis may take as long as the backend does.
		WriteTimeout: 0,
		ErrorLog:     requestStdLogger,
	}

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		appLogger.Info("Starting web server", "port", port, "backend", client.BaseURL())
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("web server failed: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	appLogger.Info("Shutting down web server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	return srv.Shutdown(shutdownCtx)
}

func newWebApp(config webConfig) *flamego.Flame {
	if config.TemplatesDev {
		flamego.SetEnv(flamego.EnvTypeDev)
	} else {
		flamego.SetEnv(flamego.EnvTypeProd)
	}

	f := flamego.New()
	f.Use(flamego.Recovery())
	f.Use(routes.RequestLogger)

	fs, err := template.EmbedFS(templates.Templates, ".", []string{".html"})
	if err != nil {
		panic(err)
	}

	f.Use(flamego.Static(flamego.StaticOptions{
		FileSystem: http.FS(static.Static),
	}))
	f.Use(session.Sessioner(config.Session))
	f.Use(csrf.Csrfer(csrf.Options{
		Secret: config.CSRFSecret,
	}))
	f.Use(template.Templater(template.Options{
		FileSystem: fs,
	}))

	widget := routes.NewChatWidget(config.History, config.Replier, nil)
	orchestrator := dashboard.NewOrchestrator(config.Dashboard)

	f.Use(routes.NoCacheHeaders())
	f.Use(routes.CSRFInjector())
	f.Use(routes.FlashInjector())
	f.Use(routes.SiteTitleInjector())
	f.Use(routes.CurrentPathInjector())

	f.Get("/", widget.Inject(), routes.ReportForm)
	f.Get("/dashboard", widget.Inject(), routes.ViewDashboard(orchestrator))
	f.Get("/dashboard/qr", routes.DashboardQRCode)

	f.Group("", func() {
		f.Post("/report", routes.SubmitReport(config.Analyzer))
		f.Post("/dashboard/email", routes.EmailDashboardReport(config.Emailer))
		f.Post("/dashboard/simulate", routes.SimulateScenario(config.Simulator))

		f.Group("/chat", func() {
			f.Post("/send", widget.Send)
			f.Post("/toggle", widget.Toggle)
			f.Post("/emoji-picker", widget.ToggleEmojiPicker)
			f.Post("/emoji", widget.InsertEmoji)
			f.Post("/suggest", widget.Suggest)
			f.Post("/quick-reply", widget.QuickReply)
			f.Post("/clear", widget.Clear)
		})
	}, csrf.Validate)

	webLogger.Debug("Routes registered")

	return f
}

var (
	_ routes.ReportAnalyzer    = (*backend.Client)(nil)
	_ routes.ReportSender      = (*backend.Client)(nil)
	_ routes.ScenarioSimulator = (*backend.Client)(nil)
)
