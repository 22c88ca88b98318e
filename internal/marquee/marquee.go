// Package marquee implements the fixed-width scrolling window shown in
// the status bar. Scroll state lives on the Player so each player keeps
// its own position and last rendered text while another one is active.
package marquee

import (
	"strings"

	"github.com/genricoloni/polyplay/internal/domain"
)

// separator keeps the wrapped start of the text from butting directly
// against its end.
const separator = "  "

// Center pads or truncates text so it sits in the middle of a
// width-column window.
//
// Text at least width runes long is truncated to exactly width. Shorter
// text gets (width-len)/2 spaces on the left and width-len-left-1 on the
// right; the trailing column is intentionally left unreserved, so padded
// output is one rune short of width. Existing bar layouts depend on that
// exact shape, so it is preserved as-is.
func Center(text string, width int) string {
	runes := []rune(text)
	if len(runes) >= width {
		return string(runes[:width])
	}
	left := (width - len(runes)) / 2
	right := width - left - len(runes) - 1
	if right < 0 {
		right = 0
	}
	return strings.Repeat(" ", left) + text + strings.Repeat(" ", right)
}

// Update advances the player's marquee by one tick and returns the text
// to display.
//
// A player that is not playing is frozen: its cached text is returned
// unchanged. The only exception is a player that has never rendered
// anything (first tick while already paused); that one gets a centered,
// non-scrolling rendering cached once.
//
// A playing player scrolls: the window [offset, offset+width) is cut out
// of text+separator, wrapping around to the start when the window runs
// past the end, and the offset advances by one for the next tick. The
// result is cached on the player so cycling away and back resumes where
// it left off.
func Update(p *domain.Player, text string, width int) string {
	if !p.Playing() {
		if p.DisplayText == "" {
			p.DisplayText = Center(text, width)
		}
		return p.DisplayText
	}

	full := []rune(text + separator)
	n := len(full)
	if p.ScrollOffset >= n {
		// Text shrank since last tick; re-enter the cycle cleanly.
		p.ScrollOffset = 0
	}

	end := p.ScrollOffset + width
	if end > n {
		end = n
	}
	window := full[p.ScrollOffset:end]
	if len(window) < width {
		// Wrap-around continuation from the start of the string.
		window = append(window, full[:(p.ScrollOffset+width)%n]...)
	}

	p.ScrollOffset = (p.ScrollOffset + 1) % n
	p.DisplayText = string(window)
	return p.DisplayText
}
