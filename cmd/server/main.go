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

	"github.com/labstack/echo/v4"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"landing/internal/content"
	"landing/internal/export"
	"landing/internal/handlers"
	"landing/internal/store"
	"landing/internal/version"
	"landing/internal/views"
	"landing/pkg/config"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var contentPath string

	loadConfig := func() (config.Config, error) {
		cfg := config.FromEnv()
		if contentPath != "" {
			cfg.ContentPath = contentPath
		}
		return cfg, cfg.Validate()
	}

	serve := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP server",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			return runServer(cmd.Context(), cfg)
		},
	}

	var outDir string
	exportCmd := &cobra.Command{
		Use:   "export",
		Short: "Render the site into a directory for static hosting",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			site, err := content.LoadOrDefault(cfg.ContentPath)
			if err != nil {
				return err
			}
			site = site.WithWidget(cfg.ElevenLabsAgentID, cfg.ElevenLabsScriptURL)
			files, err := export.Write(cmd.Context(), outDir, site, export.Options{
				BaseURL:   cfg.SiteBaseURL,
				Navigator: views.NavigatorFor(cfg.NotFoundNavigator),
			})
			if err != nil {
				return err
			}
			for _, f := range files {
				fmt.Fprintln(cmd.OutOrStdout(), f)
			}
			return nil
		},
	}
	exportCmd.Flags().StringVarP(&outDir, "out", "o", "dist", "output directory")

	root := &cobra.Command{
		Use:          "landing",
		Short:        "Marketing site server",
		Version:      version.Version,
		SilenceUsage: true,
		RunE:         serve.RunE,
	}
	root.PersistentFlags().StringVar(&contentPath, "content", "", "YAML content file (overrides CONTENT_PATH)")
	root.AddCommand(serve, exportCmd)
	return root
}

func runServer(parent context.Context, cfg config.Config) error {
	if parent == nil {
		parent = context.Background()
	}
	log, err := handlers.NewLogger(cfg.LogLevel)
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	site, err := content.LoadOrDefault(cfg.ContentPath)
	if err != nil {
		log.Error("content load failed", zap.String("path", cfg.ContentPath), zap.Error(err))
		return err
	}

	db, err := store.Open(cfg.DatabaseURL)
	if err != nil {
		log.Error("database open failed", zap.Error(err))
		return err
	}
	defer db.Close()
	if err := db.RunEmbeddedMigrations(parent); err != nil {
		log.Error("migrations failed", zap.Error(err))
		return err
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	// Basic server-level timeouts via stdlib server
	srv := &http.Server{
		Addr:              cfg.Address(),
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 10 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	h := handlers.RegisterRoutes(e, cfg, site, db, log)
	defer h.Close()

	ctx, stop := signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Info("listening",
			zap.String("version", version.Version),
			zap.String("addr", cfg.Address()),
			zap.Bool("db", db.Connected()),
			zap.String("not_found_mode", cfg.NotFoundMode),
		)
		if err := e.StartServer(srv); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("server error", zap.Error(err))
			return err
		}
		return nil
	})
	if cfg.ContentWatch && cfg.ContentPath != "" {
		g.Go(func() error {
			return content.Watch(gctx, cfg.ContentPath, 250*time.Millisecond,
				func(s content.Site) {
					h.SetSite(s)
					log.Info("content reloaded", zap.String("path", cfg.ContentPath))
				},
				func(err error) {
					log.Warn("content reload failed", zap.String("path", cfg.ContentPath), zap.Error(err))
				},
			)
		})
	}
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		log.Info("shutting down")
		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Error("shutdown failed", zap.Error(err))
			return err
		}
		return nil
	})
	return g.Wait()
}
