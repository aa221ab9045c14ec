// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// Mode is the flavor of question requested: text-only, image/figure-based,
// or numeric-data analysis.
type Mode string

const (
	ModeText     Mode = "text"
	ModeImage    Mode = "image"
	ModeAnalysis Mode = "analysis"
)

// Language selects the output language for generated questions.
type Language string

const (
	LangZH Language = "zh"
	LangEN Language = "en"
)

// GenerationRequest is a single-use, caller-constructed request for one
// batch of questions.
type GenerationRequest struct {
	Paper    Paper    `json:"paper"`
	Subject  string   `json:"subject"`
	Mode     Mode     `json:"mode"`
	Language Language `json:"language"`
}

// Question is one multiple-choice practice question. IDs follow the form
// T-YYYYMMDD-XXXX and are unique only within one GenerationResult.
type Question struct {
	ID         string `json:"id" yaml:"id"`
	Type       string `json:"type" yaml:"type"`
	Difficulty string `json:"difficulty" yaml:"difficulty"`

	// Context is the passage or figure description shown to the student.
	Context string `json:"context,omitempty" yaml:"context,omitempty"`

	// Scenario is the question stem.
	Scenario string `json:"scenario" yaml:"scenario"`

	// Options holds exactly four answer choices, A through D.
	Options []string `json:"options" yaml:"options"`

	// CorrectAnswer is one of "A", "B", "C", "D".
	CorrectAnswer string `json:"correctAnswer" yaml:"correct_answer"`

	Explanation string `json:"explanation" yaml:"explanation"`

	// FigureURL and FigureSource are set uniformly across a batch when a
	// figure was extracted, and absent otherwise.
	FigureURL    string `json:"figureUrl,omitempty" yaml:"figure_url,omitempty"`
	FigureSource string `json:"figureSource,omitempty" yaml:"figure_source,omitempty"`

	// PaperURL is the (sanitized) link of the paper the batch came from.
	PaperURL string `json:"paperUrl,omitempty" yaml:"paper_url,omitempty"`
}

// Meta describes what a generation call actually produced. ModeUsed may
// differ from the requested mode when figure extraction degraded the
// request to text.
type Meta struct {
	ModeUsed Mode `json:"modeUsed" yaml:"mode_used"`

	// ImageFailReason is a classified reason code, set only when image
	// mode was requested but not achieved.
	ImageFailReason string `json:"imageFailReason,omitempty" yaml:"image_fail_reason,omitempty"`
}

// GenerationResult is the output of one generation call: an ordered batch
// of questions plus provenance metadata.
type GenerationResult struct {
	Questions []Question `json:"questions" yaml:"questions"`
	Meta      Meta       `json:"meta" yaml:"meta"`
}
