// Package render assembles the single polybar line: colored icon,
// actionized marquee text, separator and clickable transport controls,
// using polybar format tags for color and click/scroll actions.
package render

import (
	"fmt"
	"io"
	"os"
	"strings"

	"go.uber.org/zap"

	"github.com/genricoloni/polyplay/internal/config"
	"github.com/genricoloni/polyplay/internal/domain"
)

// Trigger selects which polybar action index a command binds to
type Trigger int

// polybar action indices, see the Formatting wiki page
const (
	LeftClick Trigger = iota + 1
	MiddleClick
	RightClick
	ScrollUp
	ScrollDown
	DoubleLeftClick
	DoubleMiddleClick
	DoubleRightClick
)

// Signal numbers for the cycle controls (SIGUSR1/SIGUSR2 on Linux);
// the emitted kill commands are executed by polybar, not by us.
const (
	sigCycleForward  = 10
	sigCycleBackward = 12
)

// Colorize wraps s in polybar foreground color tags
func Colorize(s, color string) string {
	return fmt.Sprintf("%%{F%s} %s %%{F-}", color, s)
}

// Actionize makes s clickable: command runs when the trigger fires.
// Actions nest, so it can be applied to an already actionized string.
func Actionize(s, command string, trigger Trigger) string {
	return fmt.Sprintf("%%{A%d:%s:}%s%%{A}", trigger, command, s)
}

// Segments is the ordered tuple a tick produces for the bar
type Segments struct {
	Icon      string
	Text      string
	Separator string
	Previous  string
	PlayPause string
	Next      string
}

// Line joins the segments in display order
func (s Segments) Line() string {
	return s.Icon + s.Text + s.Separator + s.Previous + s.PlayPause + s.Next
}

// Renderer turns players into bar lines and writes one per tick
type Renderer struct {
	logger *zap.Logger
	cfg    *config.AppConfig
	out    io.Writer
	pid    int
}

// New creates a renderer writing to out. The renderer embeds its own
// PID into the cycle actions so scrolling on the module signals this
// process.
func New(logger *zap.Logger, cfg *config.AppConfig, out io.Writer) *Renderer {
	return &Renderer{
		logger: logger,
		cfg:    cfg,
		out:    out,
		pid:    os.Getpid(),
	}
}

// Icon resolves the colored icon for a player identifier. The program
// name is everything before the first dot; unknown programs fall back
// to the default entry. An identifier too short to name a program is an
// input error for this player and also gets the default icon.
func (r *Renderer) Icon(identifier string) string {
	program, _, _ := strings.Cut(identifier, ".")
	if len(program) < 2 {
		r.logger.Warn("Cannot derive program name from identifier, using default icon",
			zap.String("identifier", identifier))
		program = config.DefaultIconKey
	}
	icon, ok := r.cfg.PlayerIcons[program]
	if !ok {
		icon = r.cfg.PlayerIcons[config.DefaultIconKey]
	}
	return Colorize(icon, r.cfg.Color)
}

// control builds one colored clickable transport glyph
func (r *Renderer) control(glyph, player, verb string) string {
	command := fmt.Sprintf("playerctl -p %s %s", player, verb)
	return Colorize(Actionize(glyph, command, LeftClick), r.cfg.Color)
}

// PlayerSegments builds the tuple for the active player. The marquee
// text carries the cycle actions: scroll down on the module cycles
// forward, scroll up cycles backward.
func (r *Renderer) PlayerSegments(p *domain.Player) Segments {
	text := Actionize(p.DisplayText, fmt.Sprintf("kill -%d %d", sigCycleForward, r.pid), ScrollDown)
	text = Actionize(text, fmt.Sprintf("kill -%d %d", sigCycleBackward, r.pid), ScrollUp)

	playPause := r.control(r.cfg.Controls.Pause, p.Name, "pause")
	if !p.Playing() {
		playPause = r.control(r.cfg.Controls.Play, p.Name, "play")
	}

	return Segments{
		Icon:      r.Icon(p.Name),
		Text:      text,
		Separator: Colorize("|", r.cfg.Color),
		Previous:  r.control(r.cfg.Controls.Previous, p.Name, "previous"),
		PlayPause: playPause,
		Next:      r.control(r.cfg.Controls.Next, p.Name, "next"),
	}
}

// DefaultSegments builds the no-active-player tuple: centered default
// text and inert controls. Clicking the icon still cycles, which is
// how users pull a just-excluded player back once it starts.
func (r *Renderer) DefaultSegments(centeredText string) Segments {
	icon := Colorize(r.cfg.PlayerIcons[config.DefaultIconKey], r.cfg.Color)
	icon = Actionize(icon, fmt.Sprintf("kill -%d %d", sigCycleForward, r.pid), LeftClick)

	return Segments{
		Icon:      icon,
		Text:      centeredText,
		Separator: Colorize("|", r.cfg.Color),
		Previous:  Colorize(r.cfg.Controls.Previous, r.cfg.Color),
		PlayPause: Colorize(r.cfg.Controls.Play, r.cfg.Color),
		Next:      Colorize(r.cfg.Controls.Next, r.cfg.Color),
	}
}

// Write emits exactly one line and flushes it so the bar updates
// immediately.
func (r *Renderer) Write(s Segments) error {
	if _, err := fmt.Fprintln(r.out, s.Line()); err != nil {
		return fmt.Errorf("failed to write bar line: %w", err)
	}
	if f, ok := r.out.(interface{ Flush() error }); ok {
		if err := f.Flush(); err != nil {
			return fmt.Errorf("failed to flush bar line: %w", err)
		}
	}
	return nil
}
