// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package question turns one research paper into a batch of IBO-style
// multiple-choice questions: it resolves the effective generation mode,
// sends exactly one chat request, parses the response tolerantly, and
// stamps identity and provenance onto each question.
package question

import (
	"context"
	"time"

	"github.com/Ben-noncodingceo/graph-IBO-problem-maker/internal/ai"
	"github.com/Ben-noncodingceo/graph-IBO-problem-maker/internal/figure"
	"github.com/Ben-noncodingceo/graph-IBO-problem-maker/internal/scrape"
	"github.com/Ben-noncodingceo/graph-IBO-problem-maker/pkg/types"
)

const questionType = "Multiple Choice"

// Generator assembles question batches. Now and Base are test hooks for
// the clock and the batch ID base; nil means real clock and random base.
type Generator struct {
	Client   ai.Client
	Resolver *figure.Resolver

	Now  func() time.Time
	Base func() int
}

// Generate produces one batch of questions from the paper. Mode resolution
// happens before prompting so the prompt truthfully matches what the
// student will see; the returned Meta records what was actually produced.
// LLM and parse failures surface as *GenerationError.
func (g *Generator) Generate(ctx context.Context, req types.GenerationRequest) (*types.GenerationResult, error) {
	link := scrape.Sanitize(req.Paper.Link)

	res := g.resolver().Resolve(ctx, req.Mode, link)

	prompt, err := buildPrompt(req, res)
	if err != nil {
		return nil, &GenerationError{Message: "building prompt", Err: err}
	}

	raw, err := g.Client.Chat(ctx, []ai.Message{{Role: "user", Content: prompt}})
	if err != nil {
		return nil, &GenerationError{Message: "AI request failed", Err: err}
	}

	qs, err := ParseQuestions(raw)
	if err != nil {
		return nil, err
	}

	paperURL := link
	if paperURL == "" {
		paperURL = req.Paper.Link
	}

	date := g.now()
	base := g.base()
	for i := range qs {
		qs[i].ID = MakeID(date, base, i)
		qs[i].Type = questionType
		qs[i].PaperURL = paperURL
		if res.Found() {
			qs[i].FigureURL = res.FigureURL
			qs[i].FigureSource = res.FigureSource
		}
	}

	meta := types.Meta{}
	switch {
	case res.Found():
		meta.ModeUsed = types.ModeImage
	case req.Mode == types.ModeAnalysis:
		meta.ModeUsed = types.ModeAnalysis
	default:
		meta.ModeUsed = types.ModeText
	}
	if req.Mode == types.ModeImage && !res.Found() {
		meta.ImageFailReason = figure.Classify(res.FailReason)
	}

	return &types.GenerationResult{Questions: qs, Meta: meta}, nil
}

func (g *Generator) resolver() *figure.Resolver {
	if g.Resolver != nil {
		return g.Resolver
	}
	return &figure.Resolver{}
}

func (g *Generator) now() time.Time {
	if g.Now != nil {
		return g.Now()
	}
	return time.Now()
}

func (g *Generator) base() int {
	if g.Base != nil {
		return g.Base()
	}
	return RandomBase()
}
