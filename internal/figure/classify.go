// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package figure decides whether an image-mode request can be honored:
// it attempts figure extraction on the paper's landing page and classifies
// any failure into a stable reason code.
package figure

import "strings"

// Reason codes surfaced to callers when figure extraction fails.
const (
	ReasonPDFOnly = "pdf-only"
	Reason404     = "404"
	Reason403     = "403"
	ReasonTimeout = "timeout"
	ReasonDNS     = "dns error"
	ReasonNoImage = "no-image"
	ReasonNetwork = "network"
	ReasonUnknown = "unknown"
)

// Classify maps a raw extraction failure message to one of the fixed
// reason codes by case-insensitive substring match, first match wins.
// An empty input means no failure occurred and yields an empty output.
func Classify(raw string) string {
	if raw == "" {
		return ""
	}
	r := strings.ToLower(raw)
	switch {
	case strings.Contains(r, "non-html"):
		return ReasonPDFOnly
	case strings.Contains(r, "404"):
		return Reason404
	case strings.Contains(r, "403"):
		return Reason403
	case strings.Contains(r, "timeout"):
		return ReasonTimeout
	case strings.Contains(r, "enotfound"), strings.Contains(r, "dns"):
		return ReasonDNS
	case strings.Contains(r, "no image tag"):
		return ReasonNoImage
	case strings.Contains(r, "failed to fetch"):
		return ReasonNetwork
	default:
		return ReasonUnknown
	}
}
