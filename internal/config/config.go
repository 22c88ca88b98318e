// Package config loads the static module configuration. It is read once
// at startup from a TOML file and never re-read at runtime.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"time"

	"github.com/BurntSushi/toml"
	"go.uber.org/multierr"
	"go.uber.org/zap"
)

const (
	defaultScrollWidth = 15
	defaultIntervalMS  = 300
	defaultText        = "no player"
	errorText          = "error"

	// DefaultIconKey must always be present in PlayerIcons; it is the
	// fallback for any program without its own entry.
	DefaultIconKey = "default"
)

// Format tags only accept lowercase hex colors.
var colorPattern = regexp.MustCompile(`^#[0-9a-f]{6}$`)

// ControlIcons holds the glyphs for the transport controls
type ControlIcons struct {
	Play     string `toml:"play"`
	Pause    string `toml:"pause"`
	Previous string `toml:"previous"`
	Next     string `toml:"next"`
}

// AppConfig holds the full module configuration
type AppConfig struct {
	// Color applied to icons, separator and controls (lowercase hex)
	Color string `toml:"color"`
	// ScrollWidth is the marquee window length in runes, excluding
	// icons and controls
	ScrollWidth int `toml:"scroll_width"`
	// IntervalMS is the poll interval in milliseconds; it also sets the
	// scrolling speed
	IntervalMS int `toml:"interval_ms"`
	// ASCIIOnly replaces non-ASCII titles/artists with ErrorText
	ASCIIOnly bool `toml:"ascii_only"`
	// DefaultText shows when no player is active
	DefaultText string `toml:"default_text"`
	// ErrorText substitutes for malformed or rejected metadata
	ErrorText string `toml:"error_text"`
	// Backend selects the player query implementation: "playerctl"
	// (default) or "dbus"
	Backend string `toml:"backend"`
	// Controls are the transport glyphs
	Controls ControlIcons `toml:"control_icons"`
	// PlayerIcons maps program names to icons; the "default" entry is
	// mandatory
	PlayerIcons map[string]string `toml:"player_icons"`
}

// Interval returns the poll interval as a duration
func (c *AppConfig) Interval() time.Duration {
	return time.Duration(c.IntervalMS) * time.Millisecond
}

// Default returns the built-in configuration
func Default() *AppConfig {
	return &AppConfig{
		Color:       "#000000",
		ScrollWidth: defaultScrollWidth,
		IntervalMS:  defaultIntervalMS,
		DefaultText: defaultText,
		ErrorText:   errorText,
		Backend:     "playerctl",
		Controls: ControlIcons{
			Play:     "󰐊",
			Pause:    "",
			Previous: "󰒮",
			Next:     "󰒭",
		},
		PlayerIcons: map[string]string{
			"firefox":      " ",
			"brave":        " ",
			"vlc":          "󰕼 ",
			"spotify":      " ",
			DefaultIconKey: " ",
		},
	}
}

// Load reads the configuration file and validates it. The path comes
// from POLYPLAY_CONFIG or falls back to the XDG location; a missing
// file yields the defaults. File values are overlaid onto the defaults,
// so partial configs are fine.
func Load(logger *zap.Logger) (*AppConfig, error) {
	cfg := Default()

	path := os.Getenv("POLYPLAY_CONFIG")
	if path == "" {
		home, err := os.UserHomeDir()
		if err == nil {
			path = filepath.Join(home, ".config", "polyplay", "config.toml")
		}
	}

	if path != "" {
		if _, err := os.Stat(path); err == nil {
			if _, err := toml.DecodeFile(path, cfg); err != nil {
				return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
			}
			logger.Info("Configuration loaded", zap.String("path", path))
		} else {
			logger.Info("No config file found, using defaults", zap.String("path", path))
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	logger.Info("Configuration ready",
		zap.Int("scrollWidth", cfg.ScrollWidth),
		zap.Duration("interval", cfg.Interval()),
		zap.String("backend", cfg.Backend),
		zap.Bool("asciiOnly", cfg.ASCIIOnly))

	return cfg, nil
}

// Validate checks the configuration once at load time, so lookups at
// render time can assume a well-formed icon table. All problems are
// reported together.
func (c *AppConfig) Validate() error {
	var errs error

	if !colorPattern.MatchString(c.Color) {
		errs = multierr.Append(errs, fmt.Errorf("color %q must be lowercase hex like #a1b2c3", c.Color))
	}
	if c.ScrollWidth < 1 {
		errs = multierr.Append(errs, fmt.Errorf("scroll_width must be positive, got %d", c.ScrollWidth))
	}
	if c.IntervalMS < 1 {
		errs = multierr.Append(errs, fmt.Errorf("interval_ms must be positive, got %d", c.IntervalMS))
	}
	if _, ok := c.PlayerIcons[DefaultIconKey]; !ok {
		errs = multierr.Append(errs, fmt.Errorf("player_icons must contain a %q entry", DefaultIconKey))
	}
	if c.Backend != "playerctl" && c.Backend != "dbus" {
		errs = multierr.Append(errs, fmt.Errorf("backend must be \"playerctl\" or \"dbus\", got %q", c.Backend))
	}
	if c.Controls.Play == "" || c.Controls.Pause == "" || c.Controls.Previous == "" || c.Controls.Next == "" {
		errs = multierr.Append(errs, fmt.Errorf("control_icons must define play, pause, previous and next"))
	}

	return errs
}
