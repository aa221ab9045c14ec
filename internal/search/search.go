// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package search finds candidate research papers for a subject. The real
// backend queries the SerpApi Google Scholar engine; without a key, or
// when the API fails, search degrades to deterministic sample papers so
// the rest of the pipeline keeps working.
package search

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/Ben-noncodingceo/graph-IBO-problem-maker/pkg/types"
)

// Backend queries a single paper source. Implemented by SerpAPIBackend
// and by test mocks.
type Backend interface {
	Name() string
	Search(ctx context.Context, query string, cfg types.SearchConfig) ([]types.Paper, error)
}

// Service is the paper-search collaborator consumed by generation and the
// HTTP server.
type Service struct {
	Backend Backend
	Cfg     types.SearchConfig
	Log     io.Writer
}

// New builds a Service. A SerpApi backend is wired only when a key is
// configured.
func New(cfg types.SearchConfig, client *http.Client, w io.Writer) *Service {
	s := &Service{Cfg: cfg, Log: w}
	if cfg.SerpAPIKey != "" {
		s.Backend = &SerpAPIBackend{APIKey: cfg.SerpAPIKey, Client: client}
	}
	return s
}

// SearchPapers queries the backend for papers matching the subject and
// keywords. Backend failure is not fatal: the sample set is returned so
// callers always have candidates to work with.
func (s *Service) SearchPapers(ctx context.Context, subject string, keywords []string) ([]types.Paper, error) {
	query := buildQuery(subject, keywords)

	if s.Backend != nil {
		papers, err := s.Backend.Search(ctx, query, s.Cfg)
		if err == nil && len(papers) > 0 {
			return papers, nil
		}
		if err != nil {
			fmt.Fprintf(s.log(), "warning: %s search failed, using sample papers: %v\n", s.Backend.Name(), err)
		}
	}

	return samplePapers(subject), nil
}

func buildQuery(subject string, keywords []string) string {
	parts := []string{subject}
	parts = append(parts, keywords...)
	parts = append(parts, "biology research paper")
	return strings.Join(parts, " ")
}

func (s *Service) log() io.Writer {
	if s.Log != nil {
		return s.Log
	}
	return io.Discard
}

// samplePapers returns the offline fallback set for a subject.
func samplePapers(subject string) []types.Paper {
	return []types.Paper{
		{
			Title:   fmt.Sprintf("Recent Advances in %s: A Comprehensive Review", subject),
			Link:    "https://example.com/paper1",
			Snippet: fmt.Sprintf("This paper discusses the latest mechanisms discovered in %s, focusing on molecular pathways...", subject),
			Year:    "2023",
			Authors: "Smith J., Doe A.",
		},
		{
			Title:   fmt.Sprintf("Novel Mechanisms in %s Regulation", subject),
			Link:    "https://example.com/paper2",
			Snippet: fmt.Sprintf("We identify a key regulatory protein involved in the %s process, demonstrating its role in...", subject),
			Year:    "2024",
			Authors: "Wang L., Chen Y.",
		},
		{
			Title:   fmt.Sprintf("Structural Analysis of Complexes in %s", subject),
			Link:    "https://example.com/paper3",
			Snippet: "Cryo-EM structures reveal the detailed architecture of the complex, shedding light on function...",
			Year:    "2022",
			Authors: "Muller H., et al.",
		},
	}
}
