// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package search

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"regexp"
	"strconv"
	"strings"

	"github.com/Ben-noncodingceo/graph-IBO-problem-maker/internal/httputil"
	"github.com/Ben-noncodingceo/graph-IBO-problem-maker/pkg/types"
)

// serpAPIBase is the SerpApi endpoint. Package-level var for test
// substitution.
var serpAPIBase = "https://serpapi.com/search"

const defaultNumResults = 5

// minYear restricts Scholar results to reasonably recent papers.
const minYear = "2015"

var yearPattern = regexp.MustCompile(`\d{4}`)

// SerpAPIBackend queries the SerpApi Google Scholar engine.
type SerpAPIBackend struct {
	APIKey string
	Client *http.Client
}

func (b *SerpAPIBackend) Name() string { return "google_scholar" }

type serpResponse struct {
	OrganicResults []serpResult `json:"organic_results"`
}

type serpResult struct {
	Title           string `json:"title"`
	Link            string `json:"link"`
	Snippet         string `json:"snippet"`
	PublicationInfo struct {
		Summary string `json:"summary"`
	} `json:"publication_info"`
}

// Search runs one Scholar query and maps organic results to Papers.
func (b *SerpAPIBackend) Search(ctx context.Context, query string, cfg types.SearchConfig) ([]types.Paper, error) {
	u, err := url.Parse(serpAPIBase)
	if err != nil {
		return nil, fmt.Errorf("parsing search endpoint: %w", err)
	}

	num := cfg.MaxResults
	if num <= 0 {
		num = defaultNumResults
	}

	q := u.Query()
	q.Set("engine", "google_scholar")
	q.Set("q", query)
	q.Set("api_key", b.APIKey)
	q.Set("num", strconv.Itoa(num))
	q.Set("as_ylo", minYear)
	u.RawQuery = q.Encode()

	resp, err := httputil.Get(ctx, b.Client, u.String(), cfg.UserAgent, 0)
	if err != nil {
		return nil, fmt.Errorf("scholar request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("scholar API returned HTTP %d", resp.StatusCode)
	}

	var sr serpResponse
	if err := json.NewDecoder(resp.Body).Decode(&sr); err != nil {
		return nil, fmt.Errorf("parsing scholar response: %w", err)
	}

	papers := make([]types.Paper, 0, len(sr.OrganicResults))
	for _, r := range sr.OrganicResults {
		papers = append(papers, types.Paper{
			Title:   r.Title,
			Link:    r.Link,
			Snippet: r.Snippet,
			Year:    summaryYear(r.PublicationInfo.Summary),
			Authors: summaryAuthors(r.PublicationInfo.Summary),
		})
	}
	return papers, nil
}

// summaryYear pulls the first 4-digit year out of a publication-info
// summary like "A Smith, B Jones - Nature, 2021 - nature.com".
func summaryYear(summary string) string {
	if m := yearPattern.FindString(summary); m != "" {
		return m
	}
	return "Recent"
}

func summaryAuthors(summary string) string {
	if before, _, ok := strings.Cut(summary, "-"); ok {
		if a := strings.TrimSpace(before); a != "" {
			return a
		}
	}
	return "Unknown"
}
