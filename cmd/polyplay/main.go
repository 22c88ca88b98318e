package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
	"go.uber.org/zap"

	"github.com/genricoloni/polyplay/internal/config"
	"github.com/genricoloni/polyplay/internal/domain"
	"github.com/genricoloni/polyplay/internal/engine"
	"github.com/genricoloni/polyplay/internal/mpris"
	"github.com/genricoloni/polyplay/internal/playerctl"
	"github.com/genricoloni/polyplay/internal/render"
)

// AppOptions is the full dependency graph, exported so tests can run
// fx.ValidateApp against it.
var AppOptions = fx.Options(
	fx.Provide(
		newLogger,
		config.Load,
		newController,
		newRenderer,
		engine.New,
	),
	fx.Invoke(registerHooks),
)

func main() {
	app := fx.New(
		// Logger configuration
		fx.WithLogger(func(log *zap.Logger) fxevent.Logger {
			return &fxevent.ZapLogger{Logger: log}
		}),

		AppOptions,
	)

	// Handle graceful shutdown
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	// Start the application
	if err := app.Start(ctx); err != nil {
		panic(err)
	}

	// Wait for termination signal
	<-ctx.Done()

	// Stop the application gracefully
	if err := app.Stop(context.Background()); err != nil {
		panic(err)
	}
}

// newLogger creates a new zap logger instance. Production config logs
// to stderr, which matters here: stdout carries nothing but the bar
// line.
func newLogger() (*zap.Logger, error) {
	logger, err := zap.NewProduction()
	if err != nil {
		return nil, err
	}
	return logger, nil
}

// newController selects the player query backend from configuration
func newController(logger *zap.Logger, cfg *config.AppConfig) (domain.PlayerController, error) {
	switch cfg.Backend {
	case "dbus":
		return mpris.NewClient(logger)
	case "playerctl":
		return playerctl.NewClient(logger)
	default:
		return nil, fmt.Errorf("unknown backend %q", cfg.Backend)
	}
}

// newRenderer creates the bar-line renderer writing to stdout
func newRenderer(logger *zap.Logger, cfg *config.AppConfig) *render.Renderer {
	return render.New(logger, cfg, os.Stdout)
}

// registerHooks sets up application lifecycle hooks and the cycle
// signals
func registerHooks(lc fx.Lifecycle, logger *zap.Logger, e *engine.Engine) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			notifyCycleSignals(e)
			logger.Info("polyplay started")
			return e.Start(ctx)
		},
		OnStop: func(ctx context.Context) error {
			logger.Info("Shutting down")
			return e.Stop(ctx)
		},
	})
}

// notifyCycleSignals forwards SIGUSR1/SIGUSR2 to the engine as cycle
// requests. The handler goroutine only enqueues; all index mutation
// happens inside the engine's own tick.
func notifyCycleSignals(e *engine.Engine) {
	ch := make(chan os.Signal, 4)
	signal.Notify(ch, syscall.SIGUSR1, syscall.SIGUSR2)
	go func() {
		for sig := range ch {
			if sig == syscall.SIGUSR2 {
				e.Cycle(domain.CycleBackward)
			} else {
				e.Cycle(domain.CycleForward)
			}
		}
	}()
}
