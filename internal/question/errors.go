// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package question

// GenerationError is a hard failure of one generation request. LLM and
// parse failures always surface as GenerationError; no partial question
// set is returned on this path. Figure-extraction failures never take
// this form — they degrade the mode instead.
type GenerationError struct {
	Message string
	Err     error
}

func (e *GenerationError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *GenerationError) Unwrap() error { return e.Err }
