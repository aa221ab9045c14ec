// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package scrape fetches paper landing pages and extracts candidate figure
// URLs using ordered regex heuristics.
package scrape

import "strings"

const doiPrefix = "https://doi.org/"

// Sanitize normalizes a paper link before use. It trims whitespace, strips
// stray backticks around the URL (LLM-polluted strings sometimes carry
// them), and removes a single trailing slash after a DOI resolver prefix
// because the slash breaks redirection on some resolvers. Sanitize never
// fails and is idempotent.
func Sanitize(link string) string {
	s := strings.TrimSpace(link)
	s = strings.Trim(s, "`")
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, doiPrefix) && strings.HasSuffix(s, "/") {
		s = strings.TrimSuffix(s, "/")
	}
	return s
}
