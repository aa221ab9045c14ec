// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package scrape

import (
	"net/url"
	"regexp"
	"strings"
)

// ImageExtractor locates a representative image URL in page HTML. The
// returned URL is resolved against baseURL when possible. Implementations
// report ok=false when no usable image was found.
//
// The default implementation is regex-based for portability; a real HTML
// parser can be substituted without touching callers.
type ImageExtractor interface {
	ExtractImage(html, baseURL string) (string, bool)
}

// HeuristicExtractor applies fixed-priority regex heuristics:
// og:image meta, twitter:image meta, first <img> inside the first
// <figure> block, then the first <img> anywhere (data: URIs rejected).
// First match wins.
type HeuristicExtractor struct{}

// Meta tag patterns tolerate attribute order variance and both quote
// styles, so each heuristic tries name-then-content and content-then-name.
var (
	ogImageAfter   = regexp.MustCompile(`(?i)<meta[^>]*\bproperty\s*=\s*["']og:image["'][^>]*\bcontent\s*=\s*["']([^"'>]+)["']`)
	ogImageBefore  = regexp.MustCompile(`(?i)<meta[^>]*\bcontent\s*=\s*["']([^"'>]+)["'][^>]*\bproperty\s*=\s*["']og:image["']`)
	twImageAfter   = regexp.MustCompile(`(?i)<meta[^>]*\bname\s*=\s*["']twitter:image["'][^>]*\bcontent\s*=\s*["']([^"'>]+)["']`)
	twImageBefore  = regexp.MustCompile(`(?i)<meta[^>]*\bcontent\s*=\s*["']([^"'>]+)["'][^>]*\bname\s*=\s*["']twitter:image["']`)
	figureImagePat = regexp.MustCompile(`(?is)<figure.*?<img[^>]*\bsrc\s*=\s*["']([^"'>]+)["'].*?</figure>`)
	firstImagePat  = regexp.MustCompile(`(?i)<img[^>]*\bsrc\s*=\s*["']([^"'>]+)["']`)
)

// ExtractImage runs the heuristics in priority order and resolves the
// winner against baseURL.
func (HeuristicExtractor) ExtractImage(html, baseURL string) (string, bool) {
	heuristics := []func(string) (string, bool){
		extractOGImage,
		extractTwitterImage,
		extractFigureImage,
		extractFirstImage,
	}
	for _, h := range heuristics {
		if src, ok := h(html); ok {
			return ResolveURL(baseURL, src), true
		}
	}
	return "", false
}

func extractOGImage(html string) (string, bool) {
	return firstSubmatch(html, ogImageAfter, ogImageBefore)
}

func extractTwitterImage(html string) (string, bool) {
	return firstSubmatch(html, twImageAfter, twImageBefore)
}

func extractFigureImage(html string) (string, bool) {
	return firstSubmatch(html, figureImagePat)
}

// extractFirstImage takes the first <img> src in the document. Inline
// data: URIs are unusable as figures and reject the heuristic outright.
func extractFirstImage(html string) (string, bool) {
	src, ok := firstSubmatch(html, firstImagePat)
	if !ok || strings.HasPrefix(src, "data:") {
		return "", false
	}
	return src, true
}

func firstSubmatch(html string, patterns ...*regexp.Regexp) (string, bool) {
	for _, p := range patterns {
		if m := p.FindStringSubmatch(html); m != nil {
			return m[1], true
		}
	}
	return "", false
}

// ResolveURL resolves src against base to produce an absolute URL. When
// resolution fails it returns src unchanged rather than erroring.
func ResolveURL(base, src string) string {
	b, err := url.Parse(base)
	if err != nil {
		return src
	}
	resolved, err := b.Parse(src)
	if err != nil {
		return src
	}
	return resolved.String()
}
