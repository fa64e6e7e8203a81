package llm

import (
	"context"
	"errors"
	"testing"
	"time"

	openai "github.com/sashabaranov/go-openai"
	"github.com/sony/gobreaker"
)

type fakeCaller struct {
	resp openai.ChatCompletionResponse
	err  error
}

func (f fakeCaller) CreateChatCompletion(ctx context.Context, req openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error) {
	return f.resp, f.err
}

func testBackend(name string, c caller) *backend {
	return &backend{
		client: c,
		model:  "test-model",
		cb: gobreaker.NewCircuitBreaker(gobreaker.Settings{
			Name:        name,
			MaxRequests: 1,
			Timeout:     time.Second,
			ReadyToTrip: func(counts gobreaker.Counts) bool { return counts.ConsecutiveFailures >= 5 },
		}),
	}
}

func TestGenerateUsesPrimaryWhenItSucceeds(t *testing.T) {
	primary := testBackend("primary", fakeCaller{resp: openai.ChatCompletionResponse{
		Choices: []openai.ChatCompletionChoice{{Message: openai.ChatCompletionMessage{Content: "primary reply"}}},
	}})
	secondary := testBackend("secondary", fakeCaller{resp: openai.ChatCompletionResponse{
		Choices: []openai.ChatCompletionChoice{{Message: openai.ChatCompletionMessage{Content: "secondary reply"}}},
	}})
	o := &OpenAILLM{primary: primary, secondary: secondary}

	text, err := o.Generate(context.Background(), "hello", time.Second)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if text != "primary reply" {
		t.Fatalf("expected primary reply, got %q", text)
	}
}

func TestGenerateFallsBackToSecondaryOnPrimaryError(t *testing.T) {
	primary := testBackend("primary", fakeCaller{err: errors.New("rate limited")})
	secondary := testBackend("secondary", fakeCaller{resp: openai.ChatCompletionResponse{
		Choices: []openai.ChatCompletionChoice{{Message: openai.ChatCompletionMessage{Content: "secondary reply"}}},
	}})
	o := &OpenAILLM{primary: primary, secondary: secondary}

	text, err := o.Generate(context.Background(), "hello", time.Second)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if text != "secondary reply" {
		t.Fatalf("expected secondary reply, got %q", text)
	}
}

func TestGenerateErrorsWhenBothBackendsFail(t *testing.T) {
	primary := testBackend("primary", fakeCaller{err: errors.New("down")})
	o := &OpenAILLM{primary: primary}

	_, err := o.Generate(context.Background(), "hello", time.Second)
	if err == nil {
		t.Fatal("expected an error when no backend is available")
	}
}

func TestGenerateErrorsOnEmptyChoices(t *testing.T) {
	primary := testBackend("primary", fakeCaller{resp: openai.ChatCompletionResponse{}})
	o := &OpenAILLM{primary: primary}

	_, err := o.Generate(context.Background(), "hello", time.Second)
	if err == nil {
		t.Fatal("expected an error on an empty choices response")
	}
}

func TestNewSkipsSecondaryWhenAPIKeyEmpty(t *testing.T) {
	o := New("key", "gpt-4", "", "")
	if o.secondary != nil {
		t.Fatal("expected secondary backend to be nil with an empty API key")
	}
	if o.primary == nil {
		t.Fatal("expected primary backend to be built")
	}
}
