// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines shared data structures for the question pipeline:
// papers returned by search, generation requests and results, and the
// configuration blocks consumed by each stage.
package types

// Paper is a candidate research paper returned by the search collaborator.
// It is immutable once returned: generation reads it and discards it.
type Paper struct {
	// Title is the paper title as returned by the source.
	Title string `json:"title" yaml:"title"`

	// Link is the landing-page URL. May be empty for some sources.
	Link string `json:"link" yaml:"link"`

	// Snippet is a short abstract or search-result excerpt.
	Snippet string `json:"snippet" yaml:"snippet"`

	// Year is the publication year, or "Recent" when the source did not
	// report one.
	Year string `json:"year,omitempty" yaml:"year,omitempty"`

	// Authors is a display string ("Smith J., Doe A."), not a parsed list.
	Authors string `json:"authors,omitempty" yaml:"authors,omitempty"`
}
