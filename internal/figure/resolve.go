// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package figure

import (
	"context"
	"net/http"

	"github.com/Ben-noncodingceo/graph-IBO-problem-maker/internal/scrape"
	"github.com/Ben-noncodingceo/graph-IBO-problem-maker/pkg/types"
)

// Resolution is the outcome of one figure-extraction pass. Extraction
// failures are values, not errors: a failed pass carries the raw reason
// while FigureURL stays empty. The record lives only for the duration of
// one generation call.
type Resolution struct {
	// FigureURL is the absolute image URL, set only on success.
	FigureURL string

	// FigureSource is the page the figure was found on.
	FigureSource string

	// FailReason is the raw, unclassified failure message. Classify turns
	// it into a stable reason code.
	FailReason string
}

// Found reports whether the pass produced a usable figure.
func (r Resolution) Found() bool { return r.FigureURL != "" }

// Resolver performs figure extraction for image-mode requests.
type Resolver struct {
	Client    *http.Client
	Extractor scrape.ImageExtractor
	HTTP      types.HTTPConfig
}

// Resolve attempts figure extraction when image mode is requested and the
// paper has a usable link; any other mode skips extraction entirely and
// returns a zero Resolution. Fetch failures, non-HTML landing pages, and
// pages without a usable image all downgrade to a recorded reason; Resolve
// never returns an error.
func (r *Resolver) Resolve(ctx context.Context, mode types.Mode, link string) Resolution {
	if mode != types.ModeImage || link == "" {
		return Resolution{}
	}

	html, err := scrape.FetchHTML(ctx, r.Client, link, r.HTTP)
	if err != nil {
		return Resolution{FailReason: "fetch error: " + err.Error()}
	}
	if html == "" {
		return Resolution{FailReason: "non-html content"}
	}

	src, ok := r.extractor().ExtractImage(html, link)
	if !ok {
		return Resolution{FailReason: "no image tag found"}
	}
	return Resolution{FigureURL: src, FigureSource: link}
}

func (r *Resolver) extractor() scrape.ImageExtractor {
	if r.Extractor != nil {
		return r.Extractor
	}
	return scrape.HeuristicExtractor{}
}
