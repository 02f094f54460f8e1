package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/SnakeO/dominion-llc/internal/assets"
	"github.com/SnakeO/dominion-llc/internal/catalog"
	"github.com/SnakeO/dominion-llc/internal/config"
	handlersPkg "github.com/SnakeO/dominion-llc/internal/handlers"
	mw "github.com/SnakeO/dominion-llc/internal/middleware"
	"github.com/SnakeO/dominion-llc/internal/observability"
)

// siteFlags are the command-line overrides shared by serve and validate.
type siteFlags struct {
	envFile   string
	addr      string
	templates string
	public    string
	catalog   string
	folders   string
	dev       bool
}

func (f *siteFlags) register(cmd *cobra.Command, withServer bool) {
	fs := cmd.Flags()
	fs.StringVar(&f.envFile, "env-file", ".env", "dotenv file read before the process environment")
	fs.StringVar(&f.catalog, "catalog", "", "catalog YAML file")
	fs.StringVar(&f.folders, "folders", "", "folder map YAML file")
	if !withServer {
		return
	}
	fs.StringVar(&f.addr, "addr", "", "HTTP listen address")
	fs.StringVar(&f.templates, "templates", "", "templates directory")
	fs.StringVar(&f.public, "public", "", "public assets directory")
	fs.BoolVar(&f.dev, "dev", false, "reparse templates on every request")
}

// load resolves configuration, letting explicitly set flags win.
func (f *siteFlags) load(cmd *cobra.Command) (config.Config, error) {
	cfg, err := config.Load(config.WithEnvFile(f.envFile))
	if err != nil {
		return config.Config{}, err
	}
	fs := cmd.Flags()
	if fs.Changed("addr") {
		cfg.Server.Addr = f.addr
	}
	if fs.Changed("templates") {
		cfg.Site.TemplatesDir = f.templates
	}
	if fs.Changed("public") {
		cfg.Site.PublicDir = f.public
	}
	if fs.Changed("catalog") {
		cfg.Site.CatalogFile = f.catalog
	}
	if fs.Changed("folders") {
		cfg.Site.FoldersFile = f.folders
	}
	if fs.Changed("dev") {
		cfg.Site.DevMode = f.dev
	}
	return cfg, nil
}

func newServeCmd() *cobra.Command {
	var flags siteFlags
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the listings and property pages",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := flags.load(cmd)
			if err != nil {
				return err
			}
			return runServe(cmd.Context(), cfg)
		},
	}
	flags.register(cmd, true)
	return cmd
}

func runServe(ctx context.Context, cfg config.Config) error {
	log, err := observability.NewLogger(cfg.Log.Level)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer func() { _ = log.Sync() }()

	if err := setup(cfg, log); err != nil {
		log.Error("startup failed", zap.Error(err))
		return err
	}

	srv := &http.Server{
		Addr:              cfg.Server.Addr,
		Handler:           newRouter(log, requestTimeout(cfg.Server.WriteTimeout)),
		ReadHeaderTimeout: cfg.Server.ReadHeaderTimeout,
		ReadTimeout:       cfg.Server.ReadTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		IdleTimeout:       cfg.Server.IdleTimeout,
	}

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		defer close(errCh)
		log.Info("web listening",
			zap.String("addr", srv.Addr),
			zap.Bool("dev_mode", devMode),
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err, ok := <-errCh:
		if ok {
			return fmt.Errorf("listen: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	log.Info("shutting down", zap.Duration("timeout", cfg.Server.ShutdownTimeout))
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}

// setup loads the folder map and catalog and fills the package globals the
// handlers read. A catalog that fails validation aborts startup.
func setup(cfg config.Config, log *zap.Logger) error {
	templatesDir = cfg.Site.TemplatesDir
	publicDir = cfg.Site.PublicDir
	devMode = cfg.Site.DevMode
	site = cfg.Site
	analytics = handlersPkg.AnalyticsFromConfig(cfg.Analytics)

	fm, err := assets.Load(cfg.Site.FoldersFile)
	if err != nil {
		return fmt.Errorf("load folder map: %w", err)
	}
	cat, err := catalog.Load(cfg.Site.CatalogFile, fm)
	if err != nil {
		return fmt.Errorf("load catalog: %w", err)
	}
	folders, listings = fm, cat
	log.Info("catalog loaded",
		zap.String("catalog", cfg.Site.CatalogFile),
		zap.String("folders", cfg.Site.FoldersFile),
		zap.Int("properties", cat.Len()),
	)

	if !devMode {
		tc, err := parseTemplates()
		if err != nil {
			return fmt.Errorf("parse templates: %w", err)
		}
		tmplCache = tc
	}
	return nil
}

// defaultRequestTimeout bounds handlers when the server has no write timeout.
const defaultRequestTimeout = 30 * time.Second

// requestTimeout leaves a tenth of the write timeout for writing the 504.
func requestTimeout(write time.Duration) time.Duration {
	if write <= 0 {
		return defaultRequestTimeout
	}
	return write - write/10
}

// newRouter builds the full handler chain used by serve.
func newRouter(log *zap.Logger, timeout time.Duration) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	// RealIP trusts X-Forwarded-For; deploy only behind a proxy that sets it.
	r.Use(middleware.RealIP)
	r.Use(mw.HTMX)
	r.Use(mw.Logger(log))
	r.Use(middleware.Recoverer)
	r.Use(middleware.Compress(5))
	r.Use(middleware.Timeout(timeout))
	mountRoutes(r)
	return r
}

func mountRoutes(r chi.Router) {
	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		_, _ = io.WriteString(w, "ok")
	})

	r.Handle("/assets/*", http.StripPrefix("/assets", mw.AssetsWithCache(filepath.Join(publicDir, "assets"))))

	r.Get("/", ListingsHandler)
	r.Get("/index.html", redirectHome)
	r.Get("/listings/grid", ListingsGridFrag)
	r.Get("/property", PropertyHandler)
	r.Get("/property.html", PropertyHandler)
}

// redirectHome sends legacy /index.html links to the listings page, keeping
// any filter query.
func redirectHome(w http.ResponseWriter, r *http.Request) {
	target := "/"
	if r.URL.RawQuery != "" {
		target += "?" + r.URL.RawQuery
	}
	http.Redirect(w, r, target, http.StatusMovedPermanently)
}
