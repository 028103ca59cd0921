package generator

import (
	"context"
	"errors"
	"io"
	"os"
	"strings"
	"testing"
	"time"

	"slack-daily-agent/pkg/logger"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
)

func TestMain(m *testing.M) {
	logger.Init("error", "", io.Discard)
	os.Exit(m.Run())
}

type fakeAPI struct {
	calls  int
	params anthropic.MessageNewParams
	resp   *anthropic.Message
	err    error
}

func (f *fakeAPI) New(ctx context.Context, params anthropic.MessageNewParams, opts ...option.RequestOption) (*anthropic.Message, error) {
	f.calls++
	f.params = params
	return f.resp, f.err
}

func textMessage(text string) *anthropic.Message {
	return &anthropic.Message{
		Content: []anthropic.ContentBlockUnion{
			{Type: "text", Text: text},
		},
	}
}

func TestDisabledWithoutKey(t *testing.T) {
	api := &fakeAPI{resp: textMessage("should not be used")}
	g := New("")
	g.api = api

	if g.Enabled() {
		t.Error("Expected generator disabled without API key")
	}

	if _, ok := g.GenerateJoke(context.Background()); ok {
		t.Error("Expected joke generation unavailable when disabled")
	}
	if _, ok := g.GenerateTrivia(context.Background()); ok {
		t.Error("Expected trivia generation unavailable when disabled")
	}
	if api.calls != 0 {
		t.Errorf("Expected no provider calls when disabled, got %d", api.calls)
	}
}

func TestGenerateJokeSuccess(t *testing.T) {
	api := &fakeAPI{resp: textMessage("  Why did the robot cross the road? 🤖  ")}
	g := New("", WithMessagesAPI(api))

	joke, ok := g.GenerateJoke(context.Background())
	if !ok {
		t.Fatal("Expected joke generation to succeed")
	}
	if joke != "Why did the robot cross the road? 🤖" {
		t.Errorf("Expected trimmed joke text, got %q", joke)
	}
	if api.calls != 1 {
		t.Errorf("Expected 1 provider call, got %d", api.calls)
	}
}

func TestGenerateFailureReturnsUnavailable(t *testing.T) {
	api := &fakeAPI{err: errors.New("network down")}
	g := New("", WithMessagesAPI(api))

	if _, ok := g.GenerateJoke(context.Background()); ok {
		t.Error("Expected joke generation to report unavailable on provider error")
	}
	if _, ok := g.GenerateTrivia(context.Background()); ok {
		t.Error("Expected trivia generation to report unavailable on provider error")
	}
}

func TestGenerateEmptyResponse(t *testing.T) {
	api := &fakeAPI{resp: &anthropic.Message{}}
	g := New("", WithMessagesAPI(api))

	if _, ok := g.GenerateJoke(context.Background()); ok {
		t.Error("Expected empty provider response to count as failure")
	}

	api.resp = textMessage("   ")
	if _, ok := g.GenerateTrivia(context.Background()); ok {
		t.Error("Expected whitespace-only response to count as failure")
	}
}

func TestRequestParameters(t *testing.T) {
	api := &fakeAPI{resp: textMessage("a fact")}
	now := time.Date(2026, 8, 31, 9, 0, 0, 0, time.UTC)
	g := New("", WithMessagesAPI(api), WithNow(func() time.Time { return now }))

	g.GenerateTrivia(context.Background())

	if api.params.MaxTokens != maxTokens {
		t.Errorf("Expected max tokens %d, got %d", maxTokens, api.params.MaxTokens)
	}
	if got := api.params.Temperature.Or(0); got != triviaTemperature {
		t.Errorf("Expected trivia temperature %v, got %v", triviaTemperature, got)
	}
	if len(api.params.Messages) != 1 {
		t.Fatalf("Expected 1 message, got %d", len(api.params.Messages))
	}

	g.GenerateJoke(context.Background())
	if got := api.params.Temperature.Or(0); got != jokeTemperature {
		t.Errorf("Expected joke temperature %v, got %v", jokeTemperature, got)
	}
}

func TestPromptsIncludeDate(t *testing.T) {
	if !strings.Contains(jokePrompt("2026-08-31"), "2026-08-31") {
		t.Error("Expected joke prompt to include the date")
	}
	if !strings.Contains(triviaPrompt("2026-08-31"), "2026-08-31") {
		t.Error("Expected trivia prompt to include the date")
	}
	if !strings.Contains(jokePrompt("2026-08-31"), "280 characters") {
		t.Error("Expected joke prompt to carry the length ceiling")
	}
}
