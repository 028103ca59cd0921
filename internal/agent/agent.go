package agent

import (
	"context"
	"fmt"

	"slack-daily-agent/internal/config"
	"slack-daily-agent/internal/content"
	"slack-daily-agent/internal/generator"
	"slack-daily-agent/internal/scheduler"
	"slack-daily-agent/internal/selector"
	"slack-daily-agent/internal/sender"
	"slack-daily-agent/pkg/logger"
)

// Agent is the composition root: it owns the configuration and wires the
// content library, generator, selector, sender and scheduler together.
type Agent struct {
	cfg       *config.Config
	gen       selector.Generator
	sel       *selector.Selector
	snd       sender.ChannelSender
	sched     *scheduler.Scheduler
	channelID string
}

type Option func(*Agent)

func WithGenerator(gen selector.Generator) Option {
	return func(a *Agent) {
		a.gen = gen
	}
}

func WithSender(snd sender.ChannelSender) Option {
	return func(a *Agent) {
		a.snd = snd
	}
}

func New(cfg *config.Config, opts ...Option) (*Agent, error) {
	if cfg.Slack.BotToken == "" || cfg.Slack.TeamID == "" {
		return nil, fmt.Errorf("slack credentials are required")
	}

	a := &Agent{
		cfg:       cfg,
		channelID: cfg.Slack.DefaultChannelID,
	}

	for _, opt := range opts {
		opt(a)
	}

	if a.gen == nil {
		a.gen = generator.New(cfg.Anthropic.APIKey)
	}
	if a.snd == nil {
		a.snd = sender.NewMCP(cfg.Slack)
	}
	a.sel = selector.New(content.NewLibrary(), a.gen)

	sched, err := scheduler.New(cfg.Schedule.Time)
	if err != nil {
		return nil, err
	}
	a.sched = sched

	return a, nil
}

// SetChannel overrides the destination channel for this run.
func (a *Agent) SetChannel(channelID string) {
	a.channelID = channelID
	logger.Info("Using custom channel", logger.String("channel", channelID))
}

// SendDaily selects one message and delivers it. A delivery failure is
// logged and otherwise ignored: the next scheduled tick is the retry.
func (a *Agent) SendDaily(ctx context.Context) {
	message := a.sel.Select(ctx)

	if !a.snd.Deliver(ctx, a.channelID, message) {
		logger.Warn("Failed to send message, will retry tomorrow")
	}
}

// Run sends once immediately and then daily at the configured time,
// blocking until ctx is cancelled.
func (a *Agent) Run(ctx context.Context) error {
	logger.Info("Agent started, sending daily messages",
		logger.String("channel", a.channelID),
		logger.String("schedule_time", a.cfg.Schedule.Time),
	)

	return a.sched.Run(ctx, func() {
		a.SendDaily(ctx)
	})
}

// TestGeneration exercises both generator operations directly, bypassing
// the selector and delivery. Nothing is sent. Either result may be empty
// when generation is disabled or failed.
func (a *Agent) TestGeneration(ctx context.Context) (joke, trivia string) {
	joke, jokeOK := a.gen.GenerateJoke(ctx)
	trivia, triviaOK := a.gen.GenerateTrivia(ctx)

	if jokeOK {
		logger.Info("AI joke", logger.String("text", joke))
	}
	if triviaOK {
		logger.Info("AI trivia", logger.String("text", trivia))
	}
	if !jokeOK && !triviaOK {
		logger.Warn("AI generation failed or not available")
	}

	return joke, trivia
}
