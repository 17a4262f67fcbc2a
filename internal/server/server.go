// Package server exposes the calculation engine over an HTTP JSON API:
// full and per-phase calculations, dropdown options backed by the
// factors workbook, calculation history, health, and metrics.
package server

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"github.com/EriikGabriel/bio-calc-sub000/internal/coeff"
	"github.com/EriikGabriel/bio-calc-sub000/internal/history"
	"github.com/EriikGabriel/bio-calc-sub000/internal/sheet"
)

// Options wires the server's collaborators. Source and History may be
// nil: calculations then run on default coefficients only and history
// endpoints report the feature as unavailable. The core calculators
// never depend on either.
type Options struct {
	Coefficients coeff.Set
	Source       *sheet.Source
	Resolver     *sheet.CoefficientResolver
	History      *history.Store
	OptionsSheet string
	DevMode      bool
	Logger       zerolog.Logger
}

// Server is the HTTP API over the calculation engine.
type Server struct {
	router       *gin.Engine
	coefficients coeff.Set
	resolver     *sheet.CoefficientResolver
	source       *sheet.Source
	history      *history.Store
	optionsSheet string
	logger       zerolog.Logger
}

// New builds a Server with its routes registered.
func New(opts Options) *Server {
	if !opts.DevMode {
		gin.SetMode(gin.ReleaseMode)
	}

	s := &Server{
		router:       gin.New(),
		coefficients: opts.Coefficients,
		resolver:     opts.Resolver,
		source:       opts.Source,
		history:      opts.History,
		optionsSheet: opts.OptionsSheet,
		logger:       opts.Logger,
	}

	s.router.Use(gin.Recovery(), s.requestLogger(), corsMiddleware())
	s.setupRoutes()
	return s
}

func (s *Server) setupRoutes() {
	s.router.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	s.router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := s.router.Group("/api")
	{
		api.POST("/calculate", s.handleCalculate)
		api.POST("/calculate/agricultural", s.handleAgricultural)
		api.POST("/calculate/industrial", s.handleIndustrial)
		api.POST("/calculate/distribution", s.handleDistribution)

		api.GET("/options/:kind", s.handleOptions)

		api.POST("/history", s.handleSaveHistory)
		api.GET("/history", s.handleListHistory)
		api.GET("/history/:id", s.handleGetHistory)
	}
}

// Handler returns the underlying HTTP handler. The entrypoint mounts
// it on its own http.Server to keep control of graceful shutdown;
// tests mount it on httptest servers.
func (s *Server) Handler() http.Handler {
	return s.router
}

// requestLogger logs one line per request with status and latency.
func (s *Server) requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		s.logger.Info().
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Int("status", c.Writer.Status()).
			Dur("elapsed", time.Since(start)).
			Msg("request")
	}
}

func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Content-Type, Authorization")
		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	}
}
