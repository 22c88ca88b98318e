// Package selector picks the single active player out of the registry.
// The choice is always explicit: cycling moves the index, and nothing
// ever switches automatically to whichever player started playing.
package selector

import (
	"github.com/genricoloni/polyplay/internal/domain"
	"github.com/genricoloni/polyplay/internal/registry"
)

// Selector maintains the active-player index over a borrowed registry.
// Cycling leaves the index unbounded on purpose; Current clamps it back
// into range, which is also what restores the invariant after the
// registry shrinks underneath a stale index.
type Selector struct {
	registry *registry.Registry
	index    int
}

// New creates a selector over the given registry
func New(reg *registry.Registry) *Selector {
	return &Selector{registry: reg}
}

// Current resolves the index to the active player.
//
// An empty registry resets the index and yields nil. A single player is
// always the active one. Otherwise the index wraps via modulo when it
// has run past the end and snaps to the last position when negative.
func (s *Selector) Current() *domain.Player {
	n := s.registry.Len()
	if n < 1 {
		s.index = 0
		return nil
	}
	if n == 1 {
		s.index = 0
		return s.registry.At(0)
	}

	if s.index >= n-1 {
		s.index = s.index % n
	}
	if s.index < 0 {
		s.index = n - 1
	}
	return s.registry.At(s.index)
}

// Cycle moves the index one step in the given direction. With one or no
// players there is nothing to cycle through and the index resets to 0.
func (s *Selector) Cycle(direction domain.CycleDirection) {
	if s.registry.Len() <= 1 {
		s.index = 0
		return
	}
	if direction == domain.CycleForward {
		s.index++
	} else {
		s.index--
	}
}
