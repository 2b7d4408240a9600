package main

import (
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/deadchannel/config"
	"github.com/lixenwraith/deadchannel/engine"
	"github.com/lixenwraith/deadchannel/input"
)

func newTestGame(t *testing.T, opts options) *game {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, screen.Init())
	screen.SetSize(80, 25)
	t.Cleanup(screen.Fini)

	if opts.seed == 0 {
		opts.seed = 7
	}
	g, err := newGame(opts, config.Default(), screen, zerolog.Nop())
	require.NoError(t, err)
	return g
}

func TestResolveTimeline(t *testing.T) {
	tl, err := resolveTimeline("", true, zerolog.Nop())
	require.NoError(t, err)
	assert.Nil(t, tl)

	tl, err = resolveTimeline("", false, zerolog.Nop())
	require.NoError(t, err)
	assert.Positive(t, tl.Len())

	_, err = resolveTimeline("missing.toml", false, zerolog.Nop())
	assert.Error(t, err)

	_, err = resolveTimeline("no_such_stage", false, zerolog.Nop())
	assert.Error(t, err)
}

func TestGameEndlessWithoutStage(t *testing.T) {
	g := newTestGame(t, options{endless: true})
	assert.True(t, g.world.Tuning.Endless)
}

func TestGameQuitKey(t *testing.T) {
	g := newTestGame(t, options{})
	now := time.Now()

	for _, in := range g.mapper.Key(tcell.KeyRune, 'w', now) {
		assert.True(t, g.apply(in))
	}
	assert.Len(t, g.pending, 1)

	quit := g.mapper.Key(tcell.KeyEscape, 0, now)
	require.Len(t, quit, 1)
	assert.False(t, g.apply(quit[0]))
}

func TestGameStepAdvancesAndReleases(t *testing.T) {
	g := newTestGame(t, options{})
	start := time.Now()

	g.apply(input.Intent{Type: input.IntentMove, Pressed: true, DX: 1})
	state := g.step(start)
	assert.Equal(t, engine.Running, state)
	assert.Equal(t, int64(1), g.world.Frame)
	assert.Empty(t, g.pending)
	assert.Positive(t, g.world.Player().Velocity.X)
}

func TestGameMetaIntentsStayOutOfSimulation(t *testing.T) {
	g := newTestGame(t, options{})
	assert.True(t, g.apply(input.Intent{Type: input.IntentToggleMute, Pressed: true}))
	assert.Empty(t, g.pending)
	assert.False(t, g.apply(input.Intent{Type: input.IntentQuit, Pressed: true}))
}

func TestGameKeepsDrawingAfterGameOver(t *testing.T) {
	g := newTestGame(t, options{endless: true})
	g.world.Player().Combat.Life = 0
	g.world.End()

	g.step(time.Now())
	assert.Equal(t, engine.Ended, g.director.State())
	assert.NotPanics(t, func() { g.step(time.Now()) })
}

func TestGameReleasesHeldKeysOnResizeAndFocusLoss(t *testing.T) {
	g := newTestGame(t, options{})
	now := time.Now()

	g.mapper.Key(tcell.KeyRune, 'd', now)
	require.True(t, g.mapper.Held(input.ActionRight))
	g.pending = g.pending[:0]

	assert.True(t, g.handleEvent(tcell.NewEventResize(100, 30), now))
	assert.False(t, g.mapper.Held(input.ActionRight))
	require.Len(t, g.pending, 1)
	assert.False(t, g.pending[0].Pressed)

	g.pending = g.pending[:0]
	g.mapper.Key(tcell.KeyRune, 'd', now)
	assert.True(t, g.handleEvent(tcell.NewEventFocus(true), now))
	assert.True(t, g.mapper.Held(input.ActionRight))

	assert.True(t, g.handleEvent(tcell.NewEventFocus(false), now))
	assert.False(t, g.mapper.Held(input.ActionRight))
	require.Len(t, g.pending, 1)
	assert.Equal(t, input.IntentMove, g.pending[0].Type)
}
