package config

import (
	"errors"
	"testing"
)

func setRequired(t *testing.T) {
	t.Helper()
	t.Setenv("CONFIG_PATH", "/nonexistent/config.yaml")
	t.Setenv("SLACK_BOT_TOKEN", "test-token")
	t.Setenv("SLACK_TEAM_ID", "test-team")
	t.Setenv("ANTHROPIC_API_KEY", "")
}

func TestLoadMissingBotToken(t *testing.T) {
	setRequired(t)
	t.Setenv("SLACK_BOT_TOKEN", "")

	_, err := Load()
	if !errors.Is(err, ErrEmptyBotToken) {
		t.Errorf("Expected ErrEmptyBotToken, got %v", err)
	}
}

func TestLoadMissingTeamID(t *testing.T) {
	setRequired(t)
	t.Setenv("SLACK_TEAM_ID", "")

	_, err := Load()
	if !errors.Is(err, ErrEmptyTeamID) {
		t.Errorf("Expected ErrEmptyTeamID, got %v", err)
	}
}

func TestLoadDefaults(t *testing.T) {
	setRequired(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if cfg.Schedule.Time != "09:00" {
		t.Errorf("Expected default schedule time '09:00', got '%s'", cfg.Schedule.Time)
	}
	if cfg.App.LogLevel != "info" {
		t.Errorf("Expected default log level 'info', got '%s'", cfg.App.LogLevel)
	}
	if cfg.App.LogFile != "slack_agent.log" {
		t.Errorf("Expected default log file 'slack_agent.log', got '%s'", cfg.App.LogFile)
	}
	if cfg.Health.Port != 8080 {
		t.Errorf("Expected default health port 8080, got %d", cfg.Health.Port)
	}
}

func TestUseAIGenerationDisabledWithoutKey(t *testing.T) {
	setRequired(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if cfg.UseAIGeneration() {
		t.Error("Expected AI generation disabled without ANTHROPIC_API_KEY")
	}
}

func TestUseAIGenerationEnabledWithKey(t *testing.T) {
	setRequired(t)
	t.Setenv("ANTHROPIC_API_KEY", "test-key")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if !cfg.UseAIGeneration() {
		t.Error("Expected AI generation enabled with ANTHROPIC_API_KEY")
	}
}

func TestLoadChannelOverrides(t *testing.T) {
	setRequired(t)
	t.Setenv("DEFAULT_CHANNEL_ID", "C123")
	t.Setenv("SLACK_CHANNEL_IDS", "C123,C456")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if cfg.Slack.DefaultChannelID != "C123" {
		t.Errorf("Expected default channel 'C123', got '%s'", cfg.Slack.DefaultChannelID)
	}
	if cfg.Slack.ChannelIDs != "C123,C456" {
		t.Errorf("Expected channel allow-list 'C123,C456', got '%s'", cfg.Slack.ChannelIDs)
	}
}
