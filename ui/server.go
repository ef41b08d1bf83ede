package ui

import (
	"net/http"

	"launchdash/domain/core"
	"launchdash/domain/launch"
	"launchdash/internal"
	"launchdash/internal/callbacks"
	"launchdash/internal/controls"
	"launchdash/internal/errors"

	"github.com/gin-gonic/gin"
)

// ServerOptions configures the JSON API
type ServerOptions struct {
	GinMode        string
	AllowedOrigins []string
}

// Server serves the dashboard JSON API under /api
type Server struct {
	router     *gin.Engine
	table      *launch.Table
	registry   *controls.Registry
	dispatcher *callbacks.Dispatcher
	logger     *internal.Logger
	options    ServerOptions
}

// NewServer creates the API server over the loaded table
func NewServer(table *launch.Table, registry *controls.Registry, dispatcher *callbacks.Dispatcher, logger *internal.Logger, options ServerOptions) *Server {
	if options.GinMode != "" {
		gin.SetMode(options.GinMode)
	}
	if logger == nil {
		logger = internal.NewNopLogger()
	}
	s := &Server{
		router:     gin.New(),
		table:      table,
		registry:   registry,
		dispatcher: dispatcher,
		logger:     logger,
		options:    options,
	}
	s.setupMiddleware()
	s.setupRoutes()
	return s
}

// setupRoutes configures the API routes
func (s *Server) setupRoutes() {
	api := s.router.Group("/api")
	api.GET("/health", s.handleHealth)
	api.GET("/layout", s.handleLayout)

	// One endpoint per output region, plus the dispatch endpoint the page uses on control changes
	api.GET("/charts/:output", s.handleChart)
	api.POST("/callbacks", s.handleCallback)
}

// Handler exposes the gin engine for mounting
func (s *Server) Handler() http.Handler {
	return s.router
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"records": s.table.Len(),
		"sites":   len(s.table.Sites()),
	})
}

// writeError maps input errors to 400 and everything else to 500
func (s *Server) writeError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	code := errors.GetCode(err)
	if core.IsInputError(err) || code == errors.CodeInvalidInput {
		status = http.StatusBadRequest
		code = errors.CodeInvalidInput
	} else if code == "UNKNOWN" {
		code = errors.CodeInternalError
	}
	if status >= http.StatusInternalServerError {
		s.logger.Error("[API] %s %s failed: %v", c.Request.Method, c.Request.URL.Path, err)
	}
	c.AbortWithStatusJSON(status, gin.H{"error": err.Error(), "code": code})
}
