// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package rating

import (
	"errors"
	"math/rand/v2"
	"strings"

	"github.com/Ben-noncodingceo/graph-IBO-problem-maker/pkg/types"
)

// ErrNotEnoughQuestions is returned when fewer than two candidates match
// a pairing request.
var ErrNotEnoughQuestions = errors.New("not enough questions to form a pair")

var difficultyOrder = []string{"Easy", "Medium", "Hard"}

// StartPair picks two questions to compare. Candidates are filtered by
// keyword (matched against context and scenario, case-insensitive), then
// the first difficulty bucket holding at least two questions is used;
// when no bucket qualifies, two distinct questions are drawn from the
// whole filtered set.
func StartPair(questions []types.Question, keyword string) (types.Question, types.Question, error) {
	filtered := questions
	if keyword != "" {
		needle := strings.ToLower(keyword)
		filtered = nil
		for _, q := range questions {
			if strings.Contains(strings.ToLower(q.Context), needle) ||
				strings.Contains(strings.ToLower(q.Scenario), needle) {
				filtered = append(filtered, q)
			}
		}
	}
	if len(filtered) < 2 {
		return types.Question{}, types.Question{}, ErrNotEnoughQuestions
	}

	buckets := make(map[string][]types.Question)
	for _, q := range filtered {
		buckets[q.Difficulty] = append(buckets[q.Difficulty], q)
	}
	for _, d := range difficultyOrder {
		if b := buckets[d]; len(b) >= 2 {
			return pickTwo(b)
		}
	}
	return pickTwo(filtered)
}

func pickTwo(qs []types.Question) (types.Question, types.Question, error) {
	i := rand.IntN(len(qs))
	j := rand.IntN(len(qs) - 1)
	if j >= i {
		j++
	}
	return qs[i], qs[j], nil
}
