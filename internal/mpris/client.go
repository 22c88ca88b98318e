// Package mpris implements the player query interface directly over the
// D-Bus MPRIS protocol, as an alternative to shelling out to playerctl.
package mpris

import (
	"context"
	"fmt"
	"strings"

	"github.com/godbus/dbus/v5"
	"go.uber.org/zap"

	"github.com/genricoloni/polyplay/internal/domain"
)

const (
	busPrefix  = "org.mpris.MediaPlayer2."
	objectPath = "/org/mpris/MediaPlayer2"

	statusProp   = "org.mpris.MediaPlayer2.Player.PlaybackStatus"
	metadataProp = "org.mpris.MediaPlayer2.Player.Metadata"
)

// Client queries players via the session bus. Identifiers are the bus
// name suffix after the MPRIS prefix (e.g. "spotify",
// "firefox.instance_1_23"), matching what playerctl reports, so the two
// backends are interchangeable.
type Client struct {
	logger *zap.Logger
	conn   DBusClient
}

// NewClient creates an MPRIS client connected to the session bus
func NewClient(logger *zap.Logger) (*Client, error) {
	conn, err := NewStdDBusClient()
	if err != nil {
		return nil, fmt.Errorf("session bus connection failed: %w", err)
	}
	logger.Info("MPRIS backend connected to session bus")
	return &Client{logger: logger, conn: conn}, nil
}

// Close releases the bus connection
func (c *Client) Close() error {
	return c.conn.Close()
}

// ListPlayers returns the identifiers of all MPRIS players on the bus
func (c *Client) ListPlayers(_ context.Context) ([]string, error) {
	names, err := c.conn.ListNames()
	if err != nil {
		return nil, fmt.Errorf("failed to list bus names: %w", err)
	}

	var players []string
	for _, name := range names {
		if strings.HasPrefix(name, busPrefix) {
			players = append(players, strings.TrimPrefix(name, busPrefix))
		}
	}
	return players, nil
}

// Status returns the playback status of the named player
func (c *Client) Status(_ context.Context, player string) (domain.PlaybackStatus, error) {
	variant, err := c.conn.GetProperty(busPrefix+player, objectPath, statusProp)
	if err != nil {
		return domain.StatusUnknown, fmt.Errorf("failed to get playback status: %w", err)
	}
	status, ok := variant.Value().(string)
	if !ok {
		return domain.StatusUnknown, fmt.Errorf("invalid playback status format")
	}
	return domain.ParseStatus(status), nil
}

// Metadata builds the comma-delimited record (title, artists..., url)
// from the player's MPRIS metadata map, the same shape the playerctl
// format string produces.
func (c *Client) Metadata(_ context.Context, player string) (string, error) {
	variant, err := c.conn.GetProperty(busPrefix+player, objectPath, metadataProp)
	if err != nil {
		return "", fmt.Errorf("failed to get metadata: %w", err)
	}

	// SAFE CAST: Some players may return nil or unexpected types if not
	// playing anything.
	metadata, ok := variant.Value().(map[string]dbus.Variant)
	if !ok {
		return "", fmt.Errorf("metadata variant is not a map")
	}

	fields := []string{stringValue(metadata, "xesam:title")}
	fields = append(fields, artistValues(metadata)...)
	fields = append(fields, stringValue(metadata, "xesam:url"))
	return strings.Join(fields, ","), nil
}

func stringValue(metadata map[string]dbus.Variant, key string) string {
	if v, ok := metadata[key]; ok {
		if s, ok := v.Value().(string); ok {
			return s
		}
	}
	return ""
}

// artistValues extracts the artist list. MPRIS specifies an array of
// strings but some non-compliant players send a bare string.
func artistValues(metadata map[string]dbus.Variant) []string {
	v, ok := metadata["xesam:artist"]
	if !ok {
		return []string{""}
	}
	switch artists := v.Value().(type) {
	case []string:
		if len(artists) > 0 {
			return artists
		}
	case string:
		return []string{artists}
	}
	return []string{""}
}
