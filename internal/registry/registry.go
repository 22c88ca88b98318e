// Package registry tracks the set of live players across ticks,
// reconciling it against each fresh backend snapshot.
package registry

import (
	"context"

	"go.uber.org/zap"

	"github.com/genricoloni/polyplay/internal/domain"
)

// Registry owns the ordered sequence of tracked players. Order is
// significant: the active-player index maps positions to players, and
// reconciliation never reorders survivors.
type Registry struct {
	logger     *zap.Logger
	controller domain.PlayerController
	players    []*domain.Player
}

// New creates an empty registry backed by the given controller, which
// is consulted for the status of newly discovered players.
func New(logger *zap.Logger, controller domain.PlayerController) *Registry {
	return &Registry{
		logger:     logger,
		controller: controller,
	}
}

// Reconcile updates the tracked set to match the snapshot of currently
// available identifiers.
//
// Tracked players absent from the snapshot are dropped, along with
// their cached marquee state. Survivors keep their relative order and
// are never recreated. Unseen identifiers are appended at the end,
// except ones that are already Stopped at discovery: a browser keeps
// its player alive (as Stopped) after the media tab closes, and those
// should not occupy a slot until they actually start playing. A
// status-query failure at discovery counts as absent for this tick;
// the identifier is re-evaluated on the next snapshot.
//
// Reconciling the same snapshot twice is a no-op the second time.
func (r *Registry) Reconcile(ctx context.Context, snapshot []string) {
	available := make(map[string]bool, len(snapshot))
	for _, name := range snapshot {
		available[name] = true
	}

	tracked := make(map[string]bool, len(r.players))
	kept := r.players[:0]
	for _, p := range r.players {
		if !available[p.Name] {
			r.logger.Debug("Player removed", zap.String("player", p.Name))
			continue
		}
		kept = append(kept, p)
		tracked[p.Name] = true
	}
	r.players = kept

	for _, name := range snapshot {
		if tracked[name] {
			continue
		}
		status, err := r.controller.Status(ctx, name)
		if err != nil {
			r.logger.Debug("Status query failed for new player, skipping this tick",
				zap.String("player", name),
				zap.Error(err))
			continue
		}
		if status == domain.StatusStopped {
			// Exists but never started playing; do not track it.
			continue
		}
		r.players = append(r.players, &domain.Player{Name: name, Status: status})
		tracked[name] = true
		r.logger.Info("Player added",
			zap.String("player", name),
			zap.String("status", string(status)))
	}
}

// Players returns the tracked players in registry order. The slice is
// shared; callers must not reorder it.
func (r *Registry) Players() []*domain.Player {
	return r.players
}

// Len returns the number of tracked players
func (r *Registry) Len() int {
	return len(r.players)
}

// At returns the player at position i
func (r *Registry) At(i int) *domain.Player {
	return r.players[i]
}
