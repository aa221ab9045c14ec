// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package question

import (
	"encoding/json"
	"strings"

	"github.com/Ben-noncodingceo/graph-IBO-problem-maker/pkg/types"
)

// ParseQuestions parses a raw LLM response as a JSON array of questions.
// Models are told not to fence their output but frequently do anyway, so
// parsing is tolerant: strip a surrounding Markdown code fence, try a
// direct parse, then salvage the first-'['-to-last-']' substring. Only
// when all of that fails does the response count as non-JSON.
func ParseQuestions(raw string) ([]types.Question, error) {
	s := stripFence(strings.TrimSpace(raw))

	var qs []types.Question
	if err := json.Unmarshal([]byte(s), &qs); err == nil {
		return qs, nil
	}

	start := strings.Index(s, "[")
	end := strings.LastIndex(s, "]")
	if start >= 0 && end > start {
		if err := json.Unmarshal([]byte(s[start:end+1]), &qs); err == nil {
			return qs, nil
		}
	}

	return nil, &GenerationError{Message: "AI returned non-JSON content"}
}

func stripFence(s string) string {
	if strings.HasPrefix(s, "```json") {
		s = strings.TrimPrefix(s, "```json")
	} else if strings.HasPrefix(s, "```") {
		s = strings.TrimPrefix(s, "```")
	}
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}
