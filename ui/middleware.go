package ui

import (
	"launchdash/ui/middleware"

	"github.com/gin-gonic/gin"
)

// setupMiddleware configures Gin middleware for the JSON API
func (s *Server) setupMiddleware() {
	s.router.Use(middleware.RequestID())
	s.router.Use(middleware.AccessLog(s.logger))
	s.router.Use(gin.Recovery())
	s.router.Use(middleware.CORS(s.options.AllowedOrigins))
}
