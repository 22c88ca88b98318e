// Package playerctl implements the player query interface on top of the
// playerctl command-line utility.
package playerctl

import (
	"context"
	"fmt"
	"os/exec"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/genricoloni/polyplay/internal/domain"
)

// metadataFormat yields the comma record: title, artist(s), url.
const metadataFormat = "{{title}},{{artist}},{{xesam:url}}"

// commandTimeout caps each playerctl invocation so a wedged utility can
// never hang the poll loop.
const commandTimeout = 2 * time.Second

// commandRunner abstracts process invocation for tests
type commandRunner interface {
	// Run executes the binary with args and returns its combined output
	Run(ctx context.Context, name string, args ...string) ([]byte, error)
}

type execRunner struct{}

func (execRunner) Run(ctx context.Context, name string, args ...string) ([]byte, error) {
	return exec.CommandContext(ctx, name, args...).CombinedOutput()
}

// Client queries players by shelling out to playerctl
type Client struct {
	logger *zap.Logger
	runner commandRunner
}

// NewClient creates a playerctl-backed client. It fails fast when the
// binary is not installed rather than erroring on every tick.
func NewClient(logger *zap.Logger) (*Client, error) {
	if _, err := exec.LookPath("playerctl"); err != nil {
		return nil, fmt.Errorf("playerctl not found in PATH: %w", err)
	}
	return &Client{logger: logger, runner: execRunner{}}, nil
}

func (c *Client) run(ctx context.Context, args ...string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, commandTimeout)
	defer cancel()

	out, err := c.runner.Run(ctx, "playerctl", args...)
	trimmed := strings.TrimSpace(string(out))
	if err != nil {
		c.logger.Debug("playerctl invocation failed",
			zap.Strings("args", args),
			zap.String("output", trimmed),
			zap.Error(err))
		return trimmed, fmt.Errorf("playerctl %s: %w (output: %s)",
			strings.Join(args, " "), err, trimmed)
	}
	return trimmed, nil
}

// ListPlayers returns the identifiers of all available players. No
// players at all is an empty slice, not an error: playerctl reports
// that case as "No players found" with a non-zero exit.
func (c *Client) ListPlayers(ctx context.Context) ([]string, error) {
	out, err := c.run(ctx, "-l")
	if err != nil {
		if strings.Contains(out, "No players found") {
			return nil, nil
		}
		return nil, err
	}
	if out == "" {
		return nil, nil
	}
	return strings.Split(out, "\n"), nil
}

// Status returns the playback status of the named player
func (c *Client) Status(ctx context.Context, player string) (domain.PlaybackStatus, error) {
	out, err := c.run(ctx, "-p", player, "status")
	if err != nil {
		return domain.StatusUnknown, err
	}
	return domain.ParseStatus(out), nil
}

// Metadata returns the raw comma-delimited record for the named player
func (c *Client) Metadata(ctx context.Context, player string) (string, error) {
	return c.run(ctx, "-p", player, "metadata", "--format", metadataFormat)
}
