// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package ai wraps the supported LLM providers behind a single chat
// contract. Question assembly depends only on Client; which provider is
// wired in is decided per request.
package ai

import (
	"context"
	"fmt"
)

// Message is a single chat turn.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Client is the single-method LLM contract. Chat sends one conversation
// and returns the raw text completion; a non-success upstream status is a
// hard error.
type Client interface {
	Chat(ctx context.Context, messages []Message) (string, error)
}

// ModelType identifies a supported provider.
type ModelType string

const (
	ModelGemini   ModelType = "gemini"
	ModelOpenAI   ModelType = "openai"
	ModelDeepSeek ModelType = "deepseek"
	ModelDoubao   ModelType = "doubao"
	ModelTongyi   ModelType = "tongyi"
)

// New returns a Client for the model type. Every provider except Gemini
// speaks the OpenAI chat-completions shape and differs only in base URL
// and default model.
func New(model ModelType, apiKey string) (Client, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("API key for %s is missing", model)
	}
	switch model {
	case ModelOpenAI:
		return NewOpenAICompatible(apiKey, "", "gpt-4o"), nil
	case ModelDeepSeek:
		return NewOpenAICompatible(apiKey, "https://api.deepseek.com", "deepseek-chat"), nil
	case ModelDoubao:
		return NewOpenAICompatible(apiKey, "https://ark.cn-beijing.volces.com/api/v3", "doubao-pro-32k"), nil
	case ModelTongyi:
		return NewOpenAICompatible(apiKey, "https://dashscope.aliyuncs.com/compatible-mode/v1", "qwen-turbo"), nil
	case ModelGemini:
		return &GeminiClient{APIKey: apiKey}, nil
	default:
		return nil, fmt.Errorf("unsupported model type %q", model)
	}
}
