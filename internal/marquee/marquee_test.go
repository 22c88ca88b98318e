package marquee

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/genricoloni/polyplay/internal/domain"
)

func TestCenter(t *testing.T) {
	tests := []struct {
		name  string
		text  string
		width int
		want  string
	}{
		{
			// Padded output is one column short of width: 2 left, 1 right.
			name:  "Shorter Than Width",
			text:  "abc",
			width: 7,
			want:  "  abc ",
		},
		{
			name:  "Exact Width",
			text:  "abcdefg",
			width: 7,
			want:  "abcdefg",
		},
		{
			name:  "Longer Than Width Truncates",
			text:  "abcdefghij",
			width: 7,
			want:  "abcdefg",
		},
		{
			name:  "One Short Of Width",
			text:  "abcdef",
			width: 7,
			want:  "abcdef",
		},
		{
			name:  "Empty Text",
			text:  "",
			width: 4,
			want:  "   ",
		},
		{
			name:  "Non ASCII Runes",
			text:  "été",
			width: 7,
			want:  "  été ",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Center(tt.text, tt.width))
		})
	}
}

func TestUpdate_ScrollWindow(t *testing.T) {
	p := &domain.Player{Name: "spotify", Status: domain.StatusPlaying}
	const width = 5

	// "abcdefgh" + two-space separator, n = 10
	got := Update(p, "abcdefgh", width)
	assert.Equal(t, "abcde", got)
	assert.Equal(t, 1, p.ScrollOffset)

	got = Update(p, "abcdefgh", width)
	assert.Equal(t, "bcdef", got)
}

func TestUpdate_WrapAround(t *testing.T) {
	p := &domain.Player{
		Name:         "spotify",
		Status:       domain.StatusPlaying,
		ScrollOffset: 7,
	}

	// full = "abcdefgh  " (n=10). Window [7:12] clips to "gh " and is
	// completed with full[0:2] = "ab".
	got := Update(p, "abcdefgh", 5)
	assert.Equal(t, "gh ab", got)
	assert.Equal(t, 8, p.ScrollOffset)
}

func TestUpdate_FixedLengthAndPeriodicity(t *testing.T) {
	const (
		text  = "Song Title - Artist"
		width = 15
	)
	n := len(text) + len(separator)

	p := &domain.Player{Name: "vlc", Status: domain.StatusPlaying}
	for i := 0; i < n; i++ {
		got := Update(p, text, width)
		require.Len(t, []rune(got), width, "tick %d", i)
	}
	// One full cycle returns the offset to its starting position.
	assert.Equal(t, 0, p.ScrollOffset)
}

func TestUpdate_PausedFreezesText(t *testing.T) {
	p := &domain.Player{Name: "firefox.instance42", Status: domain.StatusPlaying}
	Update(p, "abcdefgh", 5)
	frozen := Update(p, "abcdefgh", 5)
	offset := p.ScrollOffset

	p.Status = domain.StatusPaused
	for i := 0; i < 3; i++ {
		assert.Equal(t, frozen, Update(p, "abcdefgh", 5))
	}
	assert.Equal(t, offset, p.ScrollOffset, "offset must not advance while paused")
}

func TestUpdate_FirstTickWhilePaused(t *testing.T) {
	// Module started while the player was already paused: no cached text
	// yet, so a centered still frame is rendered once and then frozen.
	p := &domain.Player{Name: "vlc", Status: domain.StatusPaused}
	got := Update(p, "abc", 7)
	assert.Equal(t, "  abc ", got)
	assert.Equal(t, "  abc ", Update(p, "zzz", 7), "cached frame wins on later ticks")
}

func TestUpdate_UnknownStatusDoesNotScroll(t *testing.T) {
	p := &domain.Player{Name: "vlc", Status: domain.StatusUnknown, DisplayText: "cached"}
	assert.Equal(t, "cached", Update(p, "abcdefgh", 5))
	assert.Zero(t, p.ScrollOffset)
}

func TestUpdate_TextShrankBelowOffset(t *testing.T) {
	p := &domain.Player{
		Name:         "vlc",
		Status:       domain.StatusPlaying,
		ScrollOffset: 40,
	}
	// full = "abc  " (n=5); the stale offset restarts from the top.
	got := Update(p, "abc", 4)
	assert.Equal(t, "abc ", got)
	assert.Equal(t, 1, p.ScrollOffset)
}
