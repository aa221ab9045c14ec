// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package server

import (
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Ben-noncodingceo/graph-IBO-problem-maker/internal/ai"
	"github.com/Ben-noncodingceo/graph-IBO-problem-maker/internal/httputil"
	"github.com/Ben-noncodingceo/graph-IBO-problem-maker/internal/question"
	"github.com/Ben-noncodingceo/graph-IBO-problem-maker/internal/rating"
	"github.com/Ben-noncodingceo/graph-IBO-problem-maker/internal/secrets"
	"github.com/Ben-noncodingceo/graph-IBO-problem-maker/pkg/types"
)

type searchRequest struct {
	Subject  string   `json:"subject" binding:"required"`
	Keywords []string `json:"keywords"`
}

func (s *Server) searchPaper(c *gin.Context) {
	var req searchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body: " + err.Error()})
		return
	}

	papers, err := s.search.SearchPapers(c.Request.Context(), req.Subject, req.Keywords)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"papers": papers})
}

func (s *Server) generateQuestions(c *gin.Context) {
	var req types.GenerationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body: " + err.Error()})
		return
	}
	if req.Mode == "" {
		req.Mode = types.ModeText
	}
	if req.Language == "" {
		req.Language = types.LangZH
	}

	model, apiKey := s.resolveCredentials(c)
	if apiKey == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("missing API key for model %s", model)})
		return
	}

	client, err := s.NewAIClient(model, apiKey)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	gen := &question.Generator{Client: client, Resolver: s.resolver()}
	result, err := gen.Generate(c.Request.Context(), req)
	if err != nil {
		var genErr *question.GenerationError
		if errors.As(err, &genErr) {
			s.log.Warn("generation failed", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": genErr.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	// An image request that degraded to text gets one round of alternate
	// papers before the caller sees the result.
	if req.Mode == types.ModeImage && result.Meta.ModeUsed == types.ModeText {
		gen.RetryWithAlternates(c.Request.Context(), s.search, req.Subject, req.Paper, result)
	}

	c.JSON(http.StatusOK, result)
}

// resolveCredentials picks the model and key for one generation request:
// headers first, then stored secrets, then the configured default key.
func (s *Server) resolveCredentials(c *gin.Context) (ai.ModelType, string) {
	model := ai.ModelType(c.GetHeader("x-model-type"))
	if model == "" {
		model = ai.ModelType(s.cfg.AI.ModelType)
	}
	if model == "" {
		model = ai.ModelGemini
	}

	apiKey := c.GetHeader("x-api-key")
	if apiKey == "" {
		apiKey = secrets.APIKeyFor(s.keys, string(model))
	}
	if apiKey == "" && string(model) == s.cfg.AI.ModelType {
		apiKey = s.cfg.AI.APIKey
	}
	return model, apiKey
}

// allowedImageTypes are the content types the proxy will relay.
var allowedImageTypes = map[string]bool{
	"image/jpeg":    true,
	"image/png":     true,
	"image/webp":    true,
	"image/svg+xml": true,
}

func (s *Server) proxyImage(c *gin.Context) {
	raw := c.Query("url")
	u, err := url.Parse(raw)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") {
		c.JSON(http.StatusBadRequest, gin.H{"error": "url must be an absolute http or https URL"})
		return
	}

	resp, err := httputil.Get(c.Request.Context(), s.client, raw, s.cfg.HTTP.UserAgent, 0)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": "upstream fetch failed"})
		return
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		c.JSON(http.StatusBadGateway, gin.H{"error": fmt.Sprintf("upstream returned HTTP %d", resp.StatusCode)})
		return
	}

	contentType := resp.Header.Get("Content-Type")
	base, _, _ := strings.Cut(contentType, ";")
	if !allowedImageTypes[strings.TrimSpace(base)] {
		c.JSON(http.StatusUnsupportedMediaType, gin.H{"error": fmt.Sprintf("unsupported content type %q", contentType)})
		return
	}

	c.Header("Cache-Control", "public, max-age=3600")
	c.DataFromReader(http.StatusOK, resp.ContentLength, contentType, resp.Body, nil)
}

type pkStartRequest struct {
	Questions []types.Question `json:"questions"`
	Keyword   string           `json:"keyword"`
}

func (s *Server) pkStart(c *gin.Context) {
	var req pkStartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body: " + err.Error()})
		return
	}

	left, right, err := rating.StartPair(req.Questions, req.Keyword)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"left": left, "right": right})
}

func (s *Server) pkRate(c *gin.Context) {
	var ev rating.Event
	if err := c.ShouldBindJSON(&ev); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body: " + err.Error()})
		return
	}

	if err := s.ratings.Rate(c.Request.Context(), ev); err != nil {
		if errors.Is(err, rating.ErrUnknownRatingType) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		s.log.Error("storing rating", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "storing rating failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

func (s *Server) pkHistory(c *gin.Context) {
	kind := c.DefaultQuery("kind", "good")

	entries, err := s.ratings.History(c.Request.Context(), kind)
	if err != nil {
		if errors.Is(err, rating.ErrUnknownRatingType) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		s.log.Error("querying rating history", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "querying history failed"})
		return
	}
	if entries == nil {
		entries = []rating.HistoryEntry{}
	}
	c.JSON(http.StatusOK, gin.H{"history": entries})
}
