package ui

import (
	"context"
	"embed"
	"fmt"
	"html/template"
	"io/fs"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"launchdash/domain/launch"
	"launchdash/internal"
	"launchdash/internal/callbacks"
	"launchdash/internal/controls"
)

//go:embed templates/* static/* content/*
var embeddedFiles embed.FS

// App represents the dashboard web application
type App struct {
	router    *chi.Mux
	api       *Server
	table     *launch.Table
	registry  *controls.Registry
	templates *template.Template
	about     template.HTML
	logger    *internal.Logger
	server    *http.Server
	config    Config
}

// Config holds web application configuration
type Config struct {
	Port           string
	GinMode        string
	AllowedOrigins []string
}

// NewApp creates the web application over a loaded launch table
func NewApp(config Config, table *launch.Table, registry *controls.Registry, dispatcher *callbacks.Dispatcher, logger *internal.Logger) (*App, error) {
	if logger == nil {
		logger = internal.NewNopLogger()
	}

	templates, err := parseTemplates()
	if err != nil {
		return nil, err
	}
	about, err := renderAbout()
	if err != nil {
		return nil, err
	}

	app := &App{
		router:    chi.NewRouter(),
		table:     table,
		registry:  registry,
		templates: templates,
		about:     about,
		logger:    logger,
		config:    config,
		api: NewServer(table, registry, dispatcher, logger, ServerOptions{
			GinMode:        config.GinMode,
			AllowedOrigins: config.AllowedOrigins,
		}),
	}

	app.setupMiddleware()
	app.setupRoutes()

	return app, nil
}

// setupMiddleware configures HTTP middleware
func (a *App) setupMiddleware() {
	a.router.Use(middleware.RealIP)
	a.router.Use(middleware.Recoverer)
	a.router.Use(middleware.Compress(5))
}

// setupRoutes configures the application routes
func (a *App) setupRoutes() {
	a.router.Get("/", a.handleIndex)

	staticFS, _ := fs.Sub(embeddedFiles, "static")
	a.router.Handle("/static/*", http.StripPrefix("/static/", http.FileServer(http.FS(staticFS))))

	// The gin engine routes on the full /api/... path
	a.router.Handle("/api", a.api.Handler())
	a.router.Handle("/api/*", a.api.Handler())
}

// Handler exposes the router, mainly for tests
func (a *App) Handler() http.Handler {
	return a.router
}

// Start listens on the configured port until Shutdown is called
func (a *App) Start() error {
	a.server = &http.Server{
		Addr:              ":" + a.config.Port,
		Handler:           a.router,
		ReadHeaderTimeout: 10 * time.Second,
	}
	a.logger.Info("Starting launch dashboard on http://localhost:%s", a.config.Port)
	if err := a.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("server failed: %w", err)
	}
	return nil
}

// Shutdown drains in-flight requests
func (a *App) Shutdown(ctx context.Context) error {
	if a.server == nil {
		return nil
	}
	return a.server.Shutdown(ctx)
}
