package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/multierr"
	"go.uber.org/zap"
)

func TestDefaultIsValid(t *testing.T) {
	require.NoError(t, Default().Validate())
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	t.Setenv("POLYPLAY_CONFIG", filepath.Join(t.TempDir(), "nope.toml"))

	cfg, err := Load(zap.NewNop())
	require.NoError(t, err)
	assert.Equal(t, 15, cfg.ScrollWidth)
	assert.Equal(t, 300*time.Millisecond, cfg.Interval())
	assert.Equal(t, "playerctl", cfg.Backend)
}

func TestLoad_PartialFileOverlaysDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	body := `
color = "#aabbcc"
scroll_width = 20
ascii_only = true

[player_icons]
default = "x"
mpv = "m"
`
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	t.Setenv("POLYPLAY_CONFIG", path)

	cfg, err := Load(zap.NewNop())
	require.NoError(t, err)
	assert.Equal(t, "#aabbcc", cfg.Color)
	assert.Equal(t, 20, cfg.ScrollWidth)
	assert.True(t, cfg.ASCIIOnly)
	// Untouched sections keep their defaults.
	assert.Equal(t, 300, cfg.IntervalMS)
	assert.Equal(t, "󰐊", cfg.Controls.Play)
	assert.Equal(t, "m", cfg.PlayerIcons["mpv"])
}

func TestLoad_InvalidTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("color = #oops"), 0o644))
	t.Setenv("POLYPLAY_CONFIG", path)

	_, err := Load(zap.NewNop())
	assert.Error(t, err)
}

func TestValidate_CollectsAllProblems(t *testing.T) {
	cfg := Default()
	cfg.Color = "#ABCDEF" // uppercase rejected
	cfg.ScrollWidth = 0
	cfg.Backend = "mpd"
	delete(cfg.PlayerIcons, DefaultIconKey)

	err := cfg.Validate()
	require.Error(t, err)
	assert.Len(t, multierr.Errors(err), 4)
}

func TestValidate_MissingControlGlyph(t *testing.T) {
	cfg := Default()
	cfg.Controls.Pause = ""
	assert.Error(t, cfg.Validate())
}
