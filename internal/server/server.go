// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package server exposes the question-generation pipeline over HTTP: paper
// search, question generation, an image proxy, and the PK rating endpoints.
package server

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Ben-noncodingceo/graph-IBO-problem-maker/internal/ai"
	"github.com/Ben-noncodingceo/graph-IBO-problem-maker/internal/figure"
	"github.com/Ben-noncodingceo/graph-IBO-problem-maker/internal/rating"
	"github.com/Ben-noncodingceo/graph-IBO-problem-maker/internal/search"
	"github.com/Ben-noncodingceo/graph-IBO-problem-maker/pkg/types"
)

const defaultHTTPTimeout = 20 * time.Second

// Server wires the pipeline components behind the REST API.
type Server struct {
	cfg     types.AppConfig
	log     *zap.Logger
	search  *search.Service
	ratings *rating.Store
	keys    map[string]string
	client  *http.Client

	// NewAIClient builds the per-request LLM client. Tests substitute a
	// stub here.
	NewAIClient func(model ai.ModelType, apiKey string) (ai.Client, error)
}

// New assembles a Server from its collaborators. keys holds secrets
// loaded at startup, consulted when a request carries no x-api-key.
func New(cfg types.AppConfig, svc *search.Service, ratings *rating.Store, keys map[string]string, log *zap.Logger) *Server {
	timeout := cfg.HTTP.Timeout
	if timeout <= 0 {
		timeout = defaultHTTPTimeout
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Server{
		cfg:         cfg,
		log:         log,
		search:      svc,
		ratings:     ratings,
		keys:        keys,
		client:      &http.Client{Timeout: timeout},
		NewAIClient: ai.New,
	}
}

// Router builds the gin engine with all routes registered.
func (s *Server) Router() *gin.Engine {
	r := gin.New()
	r.Use(s.requestLogger(), gin.Recovery())
	r.Use(cors.New(cors.Config{
		AllowOrigins:  []string{"*"},
		AllowMethods:  []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:  []string{"Content-Type", "x-model-type", "x-api-key"},
		ExposeHeaders: []string{"Content-Length"},
		MaxAge:        12 * time.Hour,
	}))

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.Group("/api")
	{
		api.POST("/search_paper", s.searchPaper)
		api.POST("/generate_questions", s.generateQuestions)
		api.GET("/proxy_image", s.proxyImage)

		pk := api.Group("/pk")
		{
			pk.POST("/start", s.pkStart)
			pk.POST("/rate", s.pkRate)
			pk.GET("/history", s.pkHistory)
		}
	}
	return r
}

// Run serves the API until the listener fails.
func (s *Server) Run() error {
	addr := s.cfg.Server.Addr
	if addr == "" {
		addr = ":8787"
	}
	s.log.Info("serving API", zap.String("addr", addr))
	return s.Router().Run(addr)
}

func (s *Server) requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		s.log.Info("request",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("elapsed", time.Since(start)),
		)
	}
}

func (s *Server) resolver() *figure.Resolver {
	return &figure.Resolver{Client: s.client, HTTP: s.cfg.HTTP}
}
