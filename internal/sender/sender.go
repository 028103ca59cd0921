package sender

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"os"
	"os/exec"
	"strings"
	"time"

	"slack-daily-agent/internal/config"
	"slack-daily-agent/pkg/logger"
)

// DeliverTimeout bounds a single delivery attempt, including process spawn.
const DeliverTimeout = 30 * time.Second

// ChannelSender delivers one message to one channel. Implementations never
// return an error: every failure mode degrades to false.
type ChannelSender interface {
	Deliver(ctx context.Context, channelID, text string) bool
}

// rpcRequest is the JSON-RPC 2.0 envelope the Slack MCP server expects on
// stdin.
type rpcRequest struct {
	JSONRPC string    `json:"jsonrpc"`
	ID      int64     `json:"id"`
	Method  string    `json:"method"`
	Params  rpcParams `json:"params"`
}

type rpcParams struct {
	Name      string          `json:"name"`
	Arguments postMessageArgs `json:"arguments"`
}

type postMessageArgs struct {
	ChannelID string `json:"channel_id"`
	Text      string `json:"text"`
}

// MCP posts messages by spawning the Slack MCP server and writing a single
// tools/call request to its stdin. Credentials travel in the child process
// environment, never on the command line.
type MCP struct {
	cfg     config.SlackConfig
	command string
	args    []string
	timeout time.Duration
	now     func() time.Time
}

type Option func(*MCP)

// WithCommand replaces the spawned command (used by tests).
func WithCommand(name string, args ...string) Option {
	return func(s *MCP) {
		s.command = name
		s.args = args
	}
}

func WithTimeout(d time.Duration) Option {
	return func(s *MCP) {
		s.timeout = d
	}
}

func NewMCP(cfg config.SlackConfig, opts ...Option) *MCP {
	s := &MCP{
		cfg:     cfg,
		command: "npx",
		args:    []string{"-y", "@modelcontextprotocol/server-slack"},
		timeout: DeliverTimeout,
		now:     time.Now,
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Deliver runs the MCP server with a single post-message request and waits
// for it to exit. The process is killed once the timeout elapses.
func (s *MCP) Deliver(ctx context.Context, channelID, text string) bool {
	logger.Info("Sending message",
		logger.String("channel", channelID),
		logger.String("text", text),
	)

	payload, err := json.Marshal(s.request(channelID, text))
	if err != nil {
		logger.Error("Failed to encode delivery request", logger.Err(err))
		return false
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, s.command, s.args...)
	cmd.Env = s.env()
	cmd.Stdin = strings.NewReader(string(payload) + "\n")

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err = cmd.Run()

	if errors.Is(ctx.Err(), context.DeadlineExceeded) {
		logger.Error("Delivery request timeout",
			logger.Duration("timeout", s.timeout),
			logger.String("channel", channelID),
		)
		return false
	}

	if err != nil {
		logger.Error("Delivery process failed",
			logger.Err(err),
			logger.String("stderr", strings.TrimSpace(stderr.String())),
		)
		return false
	}

	logger.Info("Message sent successfully", logger.String("channel", channelID))
	return true
}

func (s *MCP) request(channelID, text string) rpcRequest {
	return rpcRequest{
		JSONRPC: "2.0",
		ID:      s.now().Unix(),
		Method:  "tools/call",
		Params: rpcParams{
			Name: "slack_post_message",
			Arguments: postMessageArgs{
				ChannelID: channelID,
				Text:      text,
			},
		},
	}
}

func (s *MCP) env() []string {
	env := []string{
		"SLACK_BOT_TOKEN=" + s.cfg.BotToken,
		"SLACK_TEAM_ID=" + s.cfg.TeamID,
		"SLACK_CHANNEL_IDS=" + s.cfg.ChannelIDs,
	}

	for _, key := range []string{"PATH", "HOME", "NODE_PATH"} {
		env = append(env, key+"="+os.Getenv(key))
	}

	return env
}
