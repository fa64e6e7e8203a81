// Package llm adapts OpenAI-compatible chat completion APIs to the
// triage LLMPort, with circuit-breaker protection and a secondary
// fallback model.
package llm

import (
	"context"
	"errors"
	"time"

	"github.com/sony/gobreaker"
	openai "github.com/sashabaranov/go-openai"

	"worker_server/core/port/out"
)

// caller is the minimal surface this adapter needs from an openai.Client,
// narrowed so tests can fake it without a live API key.
type caller interface {
	CreateChatCompletion(ctx context.Context, req openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error)
}

// backend pairs a client with the model it serves.
type backend struct {
	client caller
	model  string
	cb     *gobreaker.CircuitBreaker
}

// OpenAILLM implements out.LLMPort. Generate tries the primary backend,
// then the secondary, before the caller (Drafter) falls back to a
// template — never a third in-process retry loop.
type OpenAILLM struct {
	primary   *backend
	secondary *backend
}

func newBackend(name, apiKey, model string) *backend {
	if apiKey == "" {
		return nil
	}
	return &backend{
		client: openai.NewClient(apiKey),
		model:  model,
		cb: gobreaker.NewCircuitBreaker(gobreaker.Settings{
			Name:        name,
			MaxRequests: 1,
			Timeout:     30 * time.Second,
			ReadyToTrip: func(c gobreaker.Counts) bool { return c.ConsecutiveFailures >= 5 },
		}),
	}
}

// New builds an adapter from config.Config's OpenAI fields. secondary may
// be a zero-value (empty apiKey), in which case only primary is used.
func New(primaryAPIKey, primaryModel, secondaryAPIKey, secondaryModel string) *OpenAILLM {
	return &OpenAILLM{
		primary:   newBackend("llm-primary", primaryAPIKey, primaryModel),
		secondary: newBackend("llm-secondary", secondaryAPIKey, secondaryModel),
	}
}

// Generate implements out.LLMPort.
func (o *OpenAILLM) Generate(ctx context.Context, prompt string, timeout time.Duration) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	if o.primary != nil {
		if text, err := o.primary.complete(ctx, prompt); err == nil {
			return text, nil
		}
	}
	if o.secondary != nil {
		if text, err := o.secondary.complete(ctx, prompt); err == nil {
			return text, nil
		}
	}
	return "", errors.New("llm: no backend available")
}

func (b *backend) complete(ctx context.Context, prompt string) (string, error) {
	res, err := b.cb.Execute(func() (interface{}, error) {
		return b.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
			Model: b.model,
			Messages: []openai.ChatCompletionMessage{
				{Role: openai.ChatMessageRoleUser, Content: prompt},
			},
		})
	})
	if err != nil {
		return "", err
	}
	resp := res.(openai.ChatCompletionResponse)
	if len(resp.Choices) == 0 {
		return "", errors.New("llm: empty response")
	}
	return resp.Choices[0].Message.Content, nil
}

var _ out.LLMPort = (*OpenAILLM)(nil)
