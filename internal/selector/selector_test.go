package selector

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/genricoloni/polyplay/internal/domain"
	"github.com/genricoloni/polyplay/internal/registry"
)

// staticController admits every identifier as Playing so tests can
// shape the registry through plain snapshots.
type staticController struct{}

func (staticController) ListPlayers(context.Context) ([]string, error) {
	return nil, errors.New("not used")
}

func (staticController) Status(context.Context, string) (domain.PlaybackStatus, error) {
	return domain.StatusPlaying, nil
}

func (staticController) Metadata(context.Context, string) (string, error) {
	return "", errors.New("not used")
}

func newRegistry(t *testing.T, players ...string) *registry.Registry {
	t.Helper()
	r := registry.New(zap.NewNop(), staticController{})
	r.Reconcile(context.Background(), players)
	require.Equal(t, len(players), r.Len())
	return r
}

func TestCurrent_EmptyRegistry(t *testing.T) {
	s := New(newRegistry(t))
	s.index = 5
	assert.Nil(t, s.Current())
	assert.Zero(t, s.index)
}

func TestCurrent_SinglePlayerAlwaysSelected(t *testing.T) {
	s := New(newRegistry(t, "spotify"))
	s.index = 3
	p := s.Current()
	require.NotNil(t, p)
	assert.Equal(t, "spotify", p.Name)
	assert.Zero(t, s.index)
}

func TestCurrent_Clamping(t *testing.T) {
	tests := []struct {
		name  string
		index int
		want  string
	}{
		{name: "In Range", index: 1, want: "b"},
		{name: "Past End Wraps Modulo", index: 4, want: "b"},
		{name: "At End Wraps", index: 3, want: "a"},
		{name: "Negative Snaps To Last", index: -1, want: "c"},
		{name: "Very Negative Snaps To Last", index: -7, want: "c"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := New(newRegistry(t, "a", "b", "c"))
			s.index = tt.index
			p := s.Current()
			require.NotNil(t, p)
			assert.Equal(t, tt.want, p.Name)
		})
	}
}

func TestCycle_WrapsThroughAllPlayers(t *testing.T) {
	s := New(newRegistry(t, "a", "b", "c"))

	seen := []string{s.Current().Name}
	for i := 0; i < 3; i++ {
		s.Cycle(domain.CycleForward)
		seen = append(seen, s.Current().Name)
	}
	assert.Equal(t, []string{"a", "b", "c", "a"}, seen)
}

func TestCycle_BackwardFromFirst(t *testing.T) {
	s := New(newRegistry(t, "a", "b", "c"))
	require.Equal(t, "a", s.Current().Name)

	s.Cycle(domain.CycleBackward)
	assert.Equal(t, "c", s.Current().Name)
}

func TestCycle_NoOpWithOneOrNoPlayers(t *testing.T) {
	s := New(newRegistry(t, "only"))
	s.Cycle(domain.CycleForward)
	assert.Zero(t, s.index)
	assert.Equal(t, "only", s.Current().Name)

	empty := New(newRegistry(t))
	empty.Cycle(domain.CycleBackward)
	assert.Zero(t, empty.index)
	assert.Nil(t, empty.Current())
}

func TestCurrent_RegistryShrinkUnderStaleIndex(t *testing.T) {
	reg := registry.New(zap.NewNop(), staticController{})
	reg.Reconcile(context.Background(), []string{"a", "b", "c"})
	s := New(reg)

	s.Cycle(domain.CycleForward)
	s.Cycle(domain.CycleForward)
	require.Equal(t, "c", s.Current().Name)

	// Two players vanish; the stale index must clamp, never go out of
	// range.
	reg.Reconcile(context.Background(), []string{"b"})
	p := s.Current()
	require.NotNil(t, p)
	assert.Equal(t, "b", p.Name)
}
