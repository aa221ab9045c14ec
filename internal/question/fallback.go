// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package question

import (
	"context"
	"net/url"
	"sort"
	"strings"

	"github.com/Ben-noncodingceo/graph-IBO-problem-maker/pkg/types"
)

// PaperSearcher finds alternate candidate papers for fallback figure
// extraction.
type PaperSearcher interface {
	SearchPapers(ctx context.Context, subject string, keywords []string) ([]types.Paper, error)
}

// preferredHosts ranks fallback candidates: journal platforms known to
// serve scrapable landing pages come first.
var preferredHosts = []string{
	"arxiv.org",
	"ncbi.nlm.nih.gov",
	"biorxiv.org",
	"nature.com",
	"sciencedirect.com",
	"springer.com",
}

// unrankedScore is shared by unlisted domains and unparseable URLs.
const unrankedScore = 999

const maxFallbackAttempts = 10

func hostScore(link string) int {
	u, err := url.Parse(link)
	if err != nil || u.Host == "" {
		return unrankedScore
	}
	for i, h := range preferredHosts {
		if strings.Contains(u.Host, h) {
			return i
		}
	}
	return unrankedScore
}

// RankCandidates stable-sorts papers by host preference, ascending. Ties
// keep their original relative order.
func RankCandidates(papers []types.Paper) []types.Paper {
	ranked := make([]types.Paper, len(papers))
	copy(ranked, papers)
	sort.SliceStable(ranked, func(i, j int) bool {
		return hostScore(ranked[i].Link) < hostScore(ranked[j].Link)
	})
	return ranked
}

// RetryWithAlternates is the caller-level fallback for image requests that
// degraded to text: it re-searches with the original paper's title as a
// keyword, walks at most 10 ranked candidates with one extraction attempt
// each, and on success overwrites every question's figure fields and
// resets the metadata. On exhaustion it records "fallback exhausted" and
// leaves the mode as text. Search failure means no alternates available.
func (g *Generator) RetryWithAlternates(ctx context.Context, searcher PaperSearcher, subject string, paper types.Paper, result *types.GenerationResult) {
	var alternates []types.Paper
	if searcher != nil {
		if alts, err := searcher.SearchPapers(ctx, subject, []string{paper.Title}); err == nil {
			alternates = alts
		}
	}

	ranked := RankCandidates(alternates)
	if len(ranked) > maxFallbackAttempts {
		ranked = ranked[:maxFallbackAttempts]
	}

	for _, cand := range ranked {
		res := g.resolver().Resolve(ctx, types.ModeImage, cand.Link)
		if !res.Found() {
			continue
		}
		for i := range result.Questions {
			result.Questions[i].FigureURL = res.FigureURL
			result.Questions[i].FigureSource = res.FigureSource
		}
		result.Meta = types.Meta{ModeUsed: types.ModeImage}
		return
	}

	if result.Meta.ImageFailReason != "" {
		result.Meta.ImageFailReason += "; fallback exhausted"
	} else {
		result.Meta.ImageFailReason = "fallback exhausted"
	}
}
