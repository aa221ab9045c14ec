// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package ai

import (
	"context"
	"fmt"

	openai "github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
)

// OpenAICompatible implements Client on top of the official openai-go SDK.
// DeepSeek, Doubao (ARK), and Tongyi expose the same chat-completions
// shape, so one implementation with a base-URL override covers them all.
type OpenAICompatible struct {
	Model string
	opts  []option.RequestOption
}

// NewOpenAICompatible builds a client for the given key, optional base URL
// (empty means api.openai.com), and model name.
func NewOpenAICompatible(apiKey, baseURL, model string) *OpenAICompatible {
	opts := []option.RequestOption{option.WithAPIKey(apiKey)}
	if baseURL != "" {
		opts = append(opts, option.WithBaseURL(baseURL))
	}
	return &OpenAICompatible{Model: model, opts: opts}
}

// Chat sends one chat-completion request and returns the first choice.
func (c *OpenAICompatible) Chat(ctx context.Context, messages []Message) (string, error) {
	client := openai.NewClient(c.opts...)

	msgs := make([]openai.ChatCompletionMessageParamUnion, 0, len(messages))
	for _, m := range messages {
		switch m.Role {
		case "system":
			msgs = append(msgs, openai.SystemMessage(m.Content))
		case "assistant":
			msgs = append(msgs, openai.ChatCompletionMessageParamOfAssistant(m.Content))
		default:
			msgs = append(msgs, openai.UserMessage(m.Content))
		}
	}

	resp, err := client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model:    openai.ChatModel(c.Model),
		Messages: msgs,
	})
	if err != nil {
		return "", fmt.Errorf("chat completion (%s): %w", c.Model, err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("chat completion (%s): empty choices", c.Model)
	}
	return resp.Choices[0].Message.Content, nil
}
