package generator

import (
	"context"
	"fmt"
	"strings"
	"time"

	"slack-daily-agent/pkg/logger"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
)

const (
	model     = anthropic.ModelClaude3_7SonnetLatest
	maxTokens = 150

	jokeTemperature   = 0.8
	triviaTemperature = 0.7
)

// MessagesAPI is the slice of the Anthropic client the generator needs.
type MessagesAPI interface {
	New(ctx context.Context, params anthropic.MessageNewParams, opts ...option.RequestOption) (*anthropic.Message, error)
}

// Generator produces short jokes and trivia facts via the Anthropic Messages
// API. When no API key is configured it is permanently disabled and every
// call reports unavailable without touching the network.
type Generator struct {
	api     MessagesAPI
	enabled bool
	now     func() time.Time
}

type Option func(*Generator)

func WithMessagesAPI(api MessagesAPI) Option {
	return func(g *Generator) {
		g.api = api
		g.enabled = api != nil
	}
}

func WithNow(now func() time.Time) Option {
	return func(g *Generator) {
		g.now = now
	}
}

func New(apiKey string, opts ...Option) *Generator {
	g := &Generator{now: time.Now}

	if apiKey != "" {
		client := anthropic.NewClient(option.WithAPIKey(apiKey))
		g.api = &client.Messages
		g.enabled = true
	}

	for _, opt := range opts {
		opt(g)
	}

	return g
}

func (g *Generator) Enabled() bool {
	return g.enabled
}

// GenerateJoke asks for a single workplace-appropriate science/tech joke.
// Returns false when generation is disabled or the provider call fails.
func (g *Generator) GenerateJoke(ctx context.Context) (string, bool) {
	return g.generate(ctx, jokePrompt(g.today()), jokeTemperature, "joke")
}

// GenerateTrivia asks for a single science/tech trivia fact.
func (g *Generator) GenerateTrivia(ctx context.Context) (string, bool) {
	return g.generate(ctx, triviaPrompt(g.today()), triviaTemperature, "trivia")
}

func (g *Generator) generate(ctx context.Context, prompt string, temperature float64, kind string) (string, bool) {
	if !g.enabled {
		return "", false
	}

	resp, err := g.api.New(ctx, anthropic.MessageNewParams{
		Model:       model,
		MaxTokens:   maxTokens,
		Temperature: anthropic.Float(temperature),
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(prompt)),
		},
	})
	if err != nil {
		logger.Error("AI generation failed",
			logger.Err(err),
			logger.String("kind", kind),
		)
		return "", false
	}

	if len(resp.Content) == 0 {
		logger.Error("AI generation returned no content", logger.String("kind", kind))
		return "", false
	}

	text := strings.TrimSpace(resp.Content[0].Text)
	if text == "" {
		logger.Error("AI generation returned empty text", logger.String("kind", kind))
		return "", false
	}

	logger.Debug("Generated AI content",
		logger.String("kind", kind),
		logger.String("text", text),
	)
	return text, true
}

func (g *Generator) today() string {
	return g.now().Format("2006-01-02")
}

func jokePrompt(date string) string {
	return fmt.Sprintf(`Generate a single, short science/tech joke that would be appropriate for a workplace Slack channel.
Today's date: %s, what has happened in science/tech history today?
If there is no specific science/tech related joke for the day, just return a random joke.

Requirements:
- Clean and workplace-appropriate
- Science or tech-related
- Include a relevant emoji
- Maximum 280 characters
- Format as a complete joke (setup + punchline)

Just return the joke, no extra text.`, date)
}

func triviaPrompt(date string) string {
	return fmt.Sprintf(`Generate a single, interesting science/tech trivia fact that would be engaging for developers.
Today's date: %s, what has happened in science/tech history today?
If there is no specific science/tech history today, just return a random trivia fact.

Requirements:
- Science/tech history related
- Factually accurate and verifiable
- Interesting and not widely known, but not too obscure
- Maximum 280 characters
- Include relevant context/numbers when applicable

Just return the trivia fact, no extra text.`, date)
}
