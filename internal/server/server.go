// Package server provides the HTTP API: session lifecycle, field edits,
// extraction runs and report export.
package server

import (
	"context"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/radiolabs/psmareport/internal/form"
	"github.com/radiolabs/psmareport/internal/pipeline"
	"github.com/radiolabs/psmareport/internal/schema"
)

// Config holds HTTP server configuration.
type Config struct {
	Host string
	Port int
}

// session is one live report form. runMu serializes extraction runs so two
// concurrent extracts cannot interleave on the same form.
type session struct {
	id      string
	state   *form.State
	created time.Time
	runMu   sync.Mutex
}

// Server provides HTTP endpoints for psmareport.
type Server struct {
	echo   *echo.Echo
	reg    *schema.Registry
	runner *pipeline.Runner
	logger *zap.Logger
	config Config

	mu       sync.RWMutex
	sessions map[string]*session
}

// NewServer creates a new HTTP server.
func NewServer(reg *schema.Registry, runner *pipeline.Runner, logger *zap.Logger, cfg Config) (*Server, error) {
	if reg == nil {
		return nil, fmt.Errorf("schema registry required")
	}
	if runner == nil {
		return nil, fmt.Errorf("pipeline runner required")
	}
	if logger == nil {
		return nil, fmt.Errorf("logger is required")
	}
	if cfg.Port == 0 {
		cfg.Port = 8094
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(middleware.Recover())
	e.Use(middleware.RequestID())
	e.Use(func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			err := next(c)
			logger.Info("http request",
				zap.String("method", c.Request().Method),
				zap.String("uri", c.Request().RequestURI),
				zap.Int("status", c.Response().Status),
				zap.Duration("duration", time.Since(start)),
				zap.String("request_id", c.Response().Header().Get(echo.HeaderXRequestID)),
			)
			return err
		}
	})

	s := &Server{
		echo:     e,
		reg:      reg,
		runner:   runner,
		logger:   logger,
		config:   cfg,
		sessions: make(map[string]*session),
	}
	s.registerRoutes()
	return s, nil
}

func (s *Server) registerRoutes() {
	s.echo.GET("/health", s.handleHealth)
	s.echo.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	v1 := s.echo.Group("/api/v1")
	v1.GET("/schema", s.handleSchema)
	v1.POST("/sessions", s.handleCreateSession)
	v1.GET("/sessions", s.handleListSessions)
	v1.GET("/sessions/:id", s.handleGetSession)
	v1.DELETE("/sessions/:id", s.handleDeleteSession)
	v1.PATCH("/sessions/:id/fields/:key", s.handlePatchField)
	v1.POST("/sessions/:id/extract", s.handleExtract)
	v1.GET("/sessions/:id/export", s.handleExport)
}

// HealthResponse is the response body for GET /health.
type HealthResponse struct {
	Status string `json:"status"`
}

func (s *Server) handleHealth(c echo.Context) error {
	return c.JSON(http.StatusOK, HealthResponse{Status: "ok"})
}

func (s *Server) session(c echo.Context) (*session, error) {
	id := c.Param("id")
	s.mu.RLock()
	sess, ok := s.sessions[id]
	s.mu.RUnlock()
	if !ok {
		return nil, echo.NewHTTPError(http.StatusNotFound, fmt.Sprintf("session %s not found", id))
	}
	return sess, nil
}

// Start starts the HTTP server.
func (s *Server) Start() error {
	addr := fmt.Sprintf("%s:%d", s.config.Host, s.config.Port)
	s.logger.Info("starting http server", zap.String("addr", addr))
	return s.echo.Start(addr)
}

// Shutdown gracefully shuts down the server.
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("shutting down http server")
	return s.echo.Shutdown(ctx)
}

// newSessionID is swapped in tests for determinism.
var newSessionID = func() string { return uuid.NewString() }
