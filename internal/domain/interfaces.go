package domain

import "context"

// PlayerController defines the interface for querying the external
// media-control layer. Implementations exist for the playerctl CLI and
// for direct MPRIS access over D-Bus.
//
// All three methods may fail at any time (player vanished between
// calls, utility missing, bus gone); callers must degrade to placeholder
// output instead of propagating.
//
//go:generate mockgen -destination=mocks/controller_mock.go -package=mocks github.com/genricoloni/polyplay/internal/domain PlayerController
type PlayerController interface {
	// ListPlayers returns the identifiers of all currently known
	// players. An empty slice (not an error) means no players exist.
	ListPlayers(ctx context.Context) ([]string, error)

	// Status returns the playback status of the named player
	Status(ctx context.Context, player string) (PlaybackStatus, error)

	// Metadata returns the raw comma-delimited metadata record for the
	// named player: title, one or more artist fields, then the track URL.
	Metadata(ctx context.Context, player string) (string, error)
}
