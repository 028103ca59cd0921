package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"slack-daily-agent/internal/agent"
	"slack-daily-agent/internal/config"
	"slack-daily-agent/internal/health"
	"slack-daily-agent/pkg/logger"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

func NewRootCmd() *cobra.Command {
	var (
		testSend bool
		testAI   bool
		channel  string
		schedule string
		verbose  bool
	)

	cmd := &cobra.Command{
		Use:           "agent",
		Short:         "Slack daily agent — sends AI-generated jokes and trivia",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			godotenv.Load()

			cfg, err := config.Load()
			if err != nil {
				if errors.Is(err, config.ErrEmptyBotToken) || errors.Is(err, config.ErrEmptyTeamID) {
					fmt.Fprintf(os.Stderr, "Error: %v\n", err)
				} else {
					fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
				}
				os.Exit(1)
			}

			if verbose {
				cfg.App.LogLevel = "debug"
			}
			if schedule != "" {
				cfg.Schedule.Time = schedule
			}

			logger.Init(cfg.App.LogLevel, cfg.App.LogFile, nil)
			logger.Info("Starting slack-daily-agent",
				logger.String("app", cfg.App.Name),
				logger.Bool("ai_generation", cfg.UseAIGeneration()),
			)
			if !cfg.UseAIGeneration() {
				logger.Warn("ANTHROPIC_API_KEY not found - using fallback jokes/trivia")
			}

			ag, err := agent.New(cfg)
			if err != nil {
				fmt.Fprintf(os.Stderr, "Failed to create agent: %v\n", err)
				os.Exit(1)
			}

			if channel != "" {
				ag.SetChannel(channel)
			}

			ctx, cancel := context.WithCancel(context.Background())
			defer cancel()

			switch {
			case testSend:
				logger.Info("Testing Slack agent...")
				ag.SendDaily(ctx)

			case testAI:
				logger.Info("Testing AI generation...")
				joke, trivia := ag.TestGeneration(ctx)
				if joke != "" {
					fmt.Fprintf(cmd.OutOrStdout(), "AI Joke: %s\n", joke)
				}
				if trivia != "" {
					fmt.Fprintf(cmd.OutOrStdout(), "AI Trivia: %s\n", trivia)
				}

			default:
				quit := make(chan os.Signal, 1)
				signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
				go func() {
					<-quit
					logger.Info("Agent stopped by user")
					cancel()
				}()

				healthServer := health.New(cfg.Health)
				healthServer.Start()
				logger.Info("Health server starting", logger.Int("port", cfg.Health.Port))

				if err := ag.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
					logger.Error("Scheduler error", logger.Err(err))
				}

				shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
				defer shutdownCancel()
				if err := healthServer.Shutdown(shutdownCtx); err != nil {
					logger.Error("Error shutting down health server", logger.Err(err))
				}

				logger.Info("Agent stopped gracefully")
			}

			return nil
		},
	}

	cmd.Flags().BoolVar(&testSend, "test", false, "Send a test message immediately")
	cmd.Flags().BoolVar(&testAI, "test-ai", false, "Test AI generation without sending to Slack")
	cmd.Flags().StringVar(&channel, "channel", "", "Override channel ID")
	cmd.Flags().StringVar(&schedule, "time", "", "Daily schedule time (HH:MM format, default: 09:00)")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")

	return cmd
}

func main() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
