package selector

import (
	"context"
	"math/rand/v2"

	"slack-daily-agent/internal/content"
	"slack-daily-agent/pkg/logger"
)

// jokeProbability is the fixed joke/trivia split: 60% jokes, 40% trivia.
const jokeProbability = 0.6

// Generator is the AI content source the selector prefers when available.
type Generator interface {
	Enabled() bool
	GenerateJoke(ctx context.Context) (string, bool)
	GenerateTrivia(ctx context.Context) (string, bool)
}

// Selector produces exactly one message per call: an AI-generated joke or
// trivia fact when possible, a static fallback of the same kind otherwise.
type Selector struct {
	library *content.Library
	gen     Generator
	rand    *rand.Rand
}

type Option func(*Selector)

func WithRand(r *rand.Rand) Option {
	return func(s *Selector) {
		s.rand = r
	}
}

func New(library *content.Library, gen Generator, opts ...Option) *Selector {
	s := &Selector{
		library: library,
		gen:     gen,
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Select returns a non-empty message. It never fails: when every dynamic
// path is unavailable the static fallback is unconditional. The joke/trivia
// draw happens once; a failed AI call falls back to the same kind.
func (s *Selector) Select(ctx context.Context) string {
	kind := content.KindTrivia
	if s.roll() < jokeProbability {
		kind = content.KindJoke
	}

	if s.gen != nil && s.gen.Enabled() {
		var text string
		var ok bool

		if kind == content.KindJoke {
			text, ok = s.gen.GenerateJoke(ctx)
		} else {
			text, ok = s.gen.GenerateTrivia(ctx)
		}

		if ok {
			logger.Info("Generated AI content", logger.String("kind", string(kind)))
			return text
		}

		logger.Warn("AI generation failed, using fallback", logger.String("kind", string(kind)))
	}

	selected := s.library.PickFallback(kind)
	logger.Info("Using fallback content", logger.String("kind", string(kind)))
	return selected
}

func (s *Selector) roll() float64 {
	if s.rand != nil {
		return s.rand.Float64()
	}
	return rand.Float64()
}
