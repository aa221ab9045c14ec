// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package question

import (
	"bytes"
	"text/template"

	"github.com/Ben-noncodingceo/graph-IBO-problem-maker/internal/figure"
	"github.com/Ben-noncodingceo/graph-IBO-problem-maker/pkg/types"
)

// generationPromptTmpl is the prompt sent to the LLM for one batch. The
// mode instruction reflects the *achieved* extraction state, never the
// requested one: the model must not be told to describe a figure that
// could not be found, and must not invent one when a real figure exists.
var generationPromptTmpl = template.Must(template.New("generation").Parse(`Role: You are an expert Biology Olympiad (IBO) question setter.
Task: Create 3 high-quality IBO-level multiple-choice questions based on the provided research paper summary.

Paper Title: {{.Title}}
Paper Snippet: {{.Snippet}}
Subject: {{.Subject}}
Generation Mode: {{.Mode}}

Specific Instructions:
{{.ModeInstruction}}

General Requirements:
1. Generate 3 questions with increasing difficulty: Easy, Medium, Hard.
2. Each question must have a clear scenario/stem, 4 options (A, B, C, D), one correct answer, and a detailed explanation.
3. The explanation must reference the scientific logic.
4. Write all question text in {{.OutputLanguage}}.
5. Output STRICTLY in valid JSON format array. Do not include markdown formatting (like ` + "```json" + `).

Output Schema:
[
  {
    "difficulty": "Easy",
    "context": "The summary, dataset, or figure description...",
    "scenario": "Question stem...",
    "options": ["Option A", "Option B", "Option C", "Option D"],
    "correctAnswer": "A",
    "explanation": "..."
  }
]
`))

var figureInstructionTmpl = template.Must(template.New("figure").Parse(`MODE: IMAGE/CHART (EXISTING FIGURE)
1. A real figure from this paper's landing page is available at: {{.FigureURL}}
2. Provide a "context" field: a concise description (50-150 words) of what this figure most plausibly shows given the paper summary, including axes labels or key legend info necessary to interpret it. Describe the existing figure; do NOT invent a different one.
3. The questions MUST require analyzing the described figure logic.`))

const analysisInstruction = `MODE: DATA ANALYSIS
1. Provide a "context" field: a small quantitative dataset (described in text, e.g. a table of measurements, rates, or percentages) consistent with the paper's findings.
2. The questions MUST require numeric reasoning over this dataset: comparisons, ratios, or simple calculations.`

const textInstruction = `MODE: TEXT ONLY
1. Provide a "context" field: A detailed summary (50-300 words) of the paper's key findings, methodology, or theoretical background.
2. This text MUST provide enough information for a student to deduce the correct answers without prior specific knowledge of this exact paper.`

type promptData struct {
	Title           string
	Snippet         string
	Subject         string
	Mode            types.Mode
	ModeInstruction string
	OutputLanguage  string
}

// buildPrompt renders the generation prompt for the achieved state: the
// existing-figure variant when extraction succeeded, otherwise the
// analysis or text variant matching the originally requested mode.
func buildPrompt(req types.GenerationRequest, res figure.Resolution) (string, error) {
	var instruction string
	switch {
	case res.Found():
		var buf bytes.Buffer
		if err := figureInstructionTmpl.Execute(&buf, res); err != nil {
			return "", err
		}
		instruction = buf.String()
	case req.Mode == types.ModeAnalysis:
		instruction = analysisInstruction
	default:
		instruction = textInstruction
	}

	lang := "English"
	if req.Language == types.LangZH {
		lang = "Simplified Chinese"
	}

	var buf bytes.Buffer
	err := generationPromptTmpl.Execute(&buf, promptData{
		Title:           req.Paper.Title,
		Snippet:         req.Paper.Snippet,
		Subject:         req.Subject,
		Mode:            req.Mode,
		ModeInstruction: instruction,
		OutputLanguage:  lang,
	})
	if err != nil {
		return "", err
	}
	return buf.String(), nil
}
