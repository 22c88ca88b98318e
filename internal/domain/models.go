package domain

// PlaybackStatus represents the current state of a media player
type PlaybackStatus string

const (
	// StatusPlaying indicates the media is currently playing
	StatusPlaying PlaybackStatus = "Playing"
	// StatusPaused indicates the media is paused
	StatusPaused PlaybackStatus = "Paused"
	// StatusStopped indicates the media is stopped
	StatusStopped PlaybackStatus = "Stopped"
	// StatusUnknown covers any status string the backend reports that we
	// do not recognize. Unknown never counts as playing.
	StatusUnknown PlaybackStatus = "Unknown"
)

// ParseStatus maps a raw backend status string onto the closed enum.
// Unrecognized strings become StatusUnknown so that new backend statuses
// fail safe instead of silently mis-comparing.
func ParseStatus(raw string) PlaybackStatus {
	switch raw {
	case "Playing":
		return StatusPlaying
	case "Paused":
		return StatusPaused
	case "Stopped":
		return StatusStopped
	default:
		return StatusUnknown
	}
}

// Player is one externally-tracked media source.
//
// Name is the backend identifier (e.g. "spotify" or
// "firefox.instance_1_23") and is stable for as long as the source
// exists. DisplayText and ScrollOffset are the marquee state cached
// across ticks, so a player keeps its last rendered text while another
// player is active.
type Player struct {
	Name         string
	Status       PlaybackStatus
	DisplayText  string
	ScrollOffset int
}

// Playing reports whether the player is actively playing media
func (p *Player) Playing() bool {
	return p.Status == StatusPlaying
}

// CycleDirection is a request to change the active player, produced by
// the SIGUSR1/SIGUSR2 handlers and consumed by the engine loop.
type CycleDirection int

const (
	// CycleForward advances the active-player index
	CycleForward CycleDirection = iota
	// CycleBackward moves the active-player index back
	CycleBackward
)
