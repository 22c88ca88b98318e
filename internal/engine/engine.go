// Package engine drives the poll loop: once per tick it reconciles the
// player set, resolves the active player, advances the marquee and
// writes one bar line. It runs until its context is cancelled and no
// failure along the way is allowed to stop it.
package engine

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/genricoloni/polyplay/internal/config"
	"github.com/genricoloni/polyplay/internal/domain"
	"github.com/genricoloni/polyplay/internal/marquee"
	"github.com/genricoloni/polyplay/internal/registry"
	"github.com/genricoloni/polyplay/internal/render"
	"github.com/genricoloni/polyplay/internal/selector"
	"github.com/genricoloni/polyplay/internal/track"
)

// cycleBuffer bounds how many queued cycle requests survive between two
// ticks; at 300ms per tick anything beyond a handful is scroll spam.
const cycleBuffer = 16

// Engine owns the loop state. Cycle requests from the signal handlers
// arrive on a buffered channel and are drained at the top of each tick,
// so the selector index is only ever touched from the loop goroutine.
type Engine struct {
	logger     *zap.Logger
	cfg        *config.AppConfig
	controller domain.PlayerController
	renderer   *render.Renderer
	registry   *registry.Registry
	selector   *selector.Selector
	cycles     chan domain.CycleDirection
	cancel     context.CancelFunc
	done       chan struct{}
}

// New creates an engine wired to the given controller and renderer
func New(
	logger *zap.Logger,
	cfg *config.AppConfig,
	controller domain.PlayerController,
	renderer *render.Renderer,
) *Engine {
	reg := registry.New(logger, controller)
	return &Engine{
		logger:     logger,
		cfg:        cfg,
		controller: controller,
		renderer:   renderer,
		registry:   reg,
		selector:   selector.New(reg),
		cycles:     make(chan domain.CycleDirection, cycleBuffer),
		done:       make(chan struct{}),
	}
}

// Cycle enqueues an active-player change. Safe to call from any
// goroutine at any time; when the queue is full the request is dropped,
// which for scroll events is indistinguishable from scrolling slightly
// less.
func (e *Engine) Cycle(direction domain.CycleDirection) {
	select {
	case e.cycles <- direction:
	default:
	}
}

// Start launches the poll loop in a goroutine and returns immediately
func (e *Engine) Start(ctx context.Context) error {
	loopCtx, cancel := context.WithCancel(context.WithoutCancel(ctx))
	e.cancel = cancel
	e.logger.Info("Engine starting",
		zap.Duration("interval", e.cfg.Interval()),
		zap.Int("scrollWidth", e.cfg.ScrollWidth))
	go e.runLoop(loopCtx)
	return nil
}

// Stop cancels the loop and waits for the in-flight tick to finish
func (e *Engine) Stop(ctx context.Context) error {
	if e.cancel != nil {
		e.cancel()
	}
	select {
	case <-e.done:
	case <-ctx.Done():
		return ctx.Err()
	}
	e.logger.Info("Engine stopped")
	return nil
}

func (e *Engine) runLoop(ctx context.Context) {
	defer close(e.done)

	ticker := time.NewTicker(e.cfg.Interval())
	defer ticker.Stop()

	// First line immediately; the bar should not stay blank for a tick.
	e.tick(ctx)
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			e.tick(ctx)
		}
	}
}

// tick runs one full cycle: drain pending cycle requests, reconcile,
// select, refresh the active player, scroll, render.
func (e *Engine) tick(ctx context.Context) {
	e.drainCycles()

	snapshot, err := e.controller.ListPlayers(ctx)
	if err != nil {
		// Treat every player as absent for this tick; the default line
		// renders below and the registry rebuilds once the backend is
		// reachable again.
		e.logger.Warn("Failed to list players", zap.Error(err))
		snapshot = nil
	}
	e.registry.Reconcile(ctx, snapshot)

	active := e.selector.Current()
	if active == nil {
		e.writeLine(e.renderer.DefaultSegments(marquee.Center(e.cfg.DefaultText, e.cfg.ScrollWidth)))
		return
	}

	e.refreshStatus(ctx, active)

	// A frozen player renders its cached text; don't query metadata for
	// a window that won't move.
	var text string
	if active.Playing() || active.DisplayText == "" {
		text = e.trackText(ctx, active)
	}
	marquee.Update(active, text, e.cfg.ScrollWidth)
	e.writeLine(e.renderer.PlayerSegments(active))
}

func (e *Engine) drainCycles() {
	for {
		select {
		case direction := <-e.cycles:
			e.selector.Cycle(direction)
		default:
			return
		}
	}
}

// refreshStatus updates the active player's status in place. On failure
// the status degrades to Unknown, which freezes the marquee and shows
// the play control until the next successful query.
func (e *Engine) refreshStatus(ctx context.Context, p *domain.Player) {
	status, err := e.controller.Status(ctx, p.Name)
	if err != nil {
		e.logger.Debug("Status refresh failed",
			zap.String("player", p.Name),
			zap.Error(err))
		status = domain.StatusUnknown
	}
	p.Status = status
}

// trackText fetches and interprets the active player's metadata. Any
// failure, query or parse, yields the centered error placeholder
// instead.
func (e *Engine) trackText(ctx context.Context, p *domain.Player) string {
	record, err := e.controller.Metadata(ctx, p.Name)
	if err != nil {
		e.logger.Debug("Metadata query failed",
			zap.String("player", p.Name),
			zap.Error(err))
		return marquee.Center(e.cfg.ErrorText, e.cfg.ScrollWidth)
	}

	info, err := track.Parse(record)
	if err != nil {
		e.logger.Debug("Malformed metadata record",
			zap.String("player", p.Name),
			zap.String("record", record))
		return marquee.Center(e.cfg.ErrorText, e.cfg.ScrollWidth)
	}

	return info.Display(track.Options{
		ASCIIOnly:   e.cfg.ASCIIOnly,
		Placeholder: e.cfg.ErrorText,
	})
}

func (e *Engine) writeLine(seg render.Segments) {
	if err := e.renderer.Write(seg); err != nil {
		e.logger.Warn("Failed to write output line", zap.Error(err))
	}
}
