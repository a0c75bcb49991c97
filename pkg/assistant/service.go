package assistant

import (
	"context"
	"fmt"
	"log/slog"

	openai "github.com/sashabaranov/go-openai"
)

const systemPrompt = "You are a helpful travel planner."

const promptPreamble = "You are a helpful travel planner in Australia, based on the answers to the " +
	"questions below, construct a travel plan for the user.\n"

// Service proxies a single natural-language prompt to the chat completion
// API. It keeps no state between calls.
type Service struct {
	client *openai.Client
	model  string
}

// Option defines configuration options for the assistant service
type Option func(*Service)

// WithModel overrides the default chat model
func WithModel(model string) Option {
	return func(s *Service) {
		if model != "" {
			s.model = model
		}
	}
}

// NewService creates a new assistant service
func NewService(client *openai.Client, opts ...Option) *Service {
	s := &Service{
		client: client,
		model:  openai.GPT3Dot5Turbo,
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Ask forwards the prompt, framed as a travel-planning request, and returns
// the generated reply.
func (s *Service) Ask(ctx context.Context, prompt string) (string, error) {
	resp, err := s.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: s.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: promptPreamble + prompt},
		},
	})
	if err != nil {
		slog.Error("Chat completion request failed", "error", err)
		return "", fmt.Errorf("chat completion request failed: %w", err)
	}

	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("chat completion returned no choices")
	}

	return resp.Choices[0].Message.Content, nil
}
