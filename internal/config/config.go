package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

var (
	ErrEmptyBotToken = errors.New("SLACK_BOT_TOKEN environment variable is required")
	ErrEmptyTeamID   = errors.New("SLACK_TEAM_ID environment variable is required")
)

type Config struct {
	App       AppConfig       `yaml:"app"`
	Slack     SlackConfig     `yaml:"slack"`
	Anthropic AnthropicConfig `yaml:"anthropic"`
	Schedule  ScheduleConfig  `yaml:"schedule"`
	Health    HealthConfig    `yaml:"health"`
}

type AppConfig struct {
	Name     string `yaml:"name" env:"APP_NAME" env-default:"slack-daily-agent"`
	LogLevel string `yaml:"log_level" env:"LOG_LEVEL" env-default:"info"`
	LogFile  string `yaml:"log_file" env:"LOG_FILE" env-default:"slack_agent.log"`
}

type SlackConfig struct {
	BotToken string `yaml:"bot_token" env:"SLACK_BOT_TOKEN"`
	TeamID   string `yaml:"team_id" env:"SLACK_TEAM_ID"`
	// Comma-separated channel allow-list, forwarded to the delivery
	// subprocess untouched.
	ChannelIDs       string `yaml:"channel_ids" env:"SLACK_CHANNEL_IDS"`
	DefaultChannelID string `yaml:"default_channel_id" env:"DEFAULT_CHANNEL_ID"`
}

type AnthropicConfig struct {
	APIKey string `yaml:"api_key" env:"ANTHROPIC_API_KEY"`
}

type ScheduleConfig struct {
	Time string `yaml:"time" env:"SCHEDULE_TIME" env-default:"09:00"`
}

type HealthConfig struct {
	Port     int    `yaml:"port" env:"HEALTH_PORT" env-default:"8080"`
	Endpoint string `yaml:"endpoint" env:"HEALTH_ENDPOINT" env-default:"/healthz"`
}

func Load() (*Config, error) {
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "configs/config.yaml"
	}

	var cfg Config

	if _, err := os.Stat(configPath); err == nil {
		if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
			return nil, fmt.Errorf("failed to read config from %s: %w", configPath, err)
		}
	} else if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("failed to read environment: %w", err)
	}

	// Environment wins over the file.
	cleanenv.ReadEnv(&cfg)

	if cfg.Slack.BotToken == "" {
		return nil, ErrEmptyBotToken
	}

	if cfg.Slack.TeamID == "" {
		return nil, ErrEmptyTeamID
	}

	return &cfg, nil
}

// UseAIGeneration reports whether AI content generation is enabled for the
// lifetime of the process. Decided once at startup by key presence.
func (c *Config) UseAIGeneration() bool {
	return c.Anthropic.APIKey != ""
}
