package render

import (
	"strings"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/deadchannel/component"
	"github.com/lixenwraith/deadchannel/engine"
	"github.com/lixenwraith/deadchannel/event"
	"github.com/lixenwraith/deadchannel/vmath"
)

func newTestScreen(t *testing.T) tcell.Screen {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, screen.Init())
	screen.SetSize(80, 25)
	t.Cleanup(screen.Fini)
	return screen
}

func newTestWorld() *engine.World {
	return engine.NewWorld(engine.WorldConfig{Width: 800, Height: 600, Seed: 1, Tuning: engine.DefaultTuning()})
}

func runeAt(s tcell.Screen, x, y int) rune {
	r, _, _, _ := s.GetContent(x, y)
	return r
}

func rowText(s tcell.Screen, y int) string {
	cols, _ := s.Size()
	var b strings.Builder
	for x := 0; x < cols; x++ {
		b.WriteRune(runeAt(s, x, y))
	}
	return b.String()
}

func TestRendererDrawsEntities(t *testing.T) {
	screen := newTestScreen(t)
	w := newTestWorld()
	enemy := engine.NewEnemyEntity(vmath.V(400, 300), vmath.V(32, 32), vmath.Vec2{}, 1, component.BehaviorStraight)
	w.Spawn(w.Enemies, enemy)
	heal := engine.NewPowerUpEntity("kit", vmath.V(600, 100), vmath.V(24, 24), vmath.Vec2{},
		component.PowerUp{Kind: component.PowerUpHeal, Heal: 1, RemainingMs: 100})
	w.Spawn(w.PowerUps, heal)

	r := NewRenderer(screen)
	r.Draw(w, time.Now())

	// 800x600 onto 80x24 play cells: 10 x 25 pixels per cell
	assert.Equal(t, '→', runeAt(screen, 1, 12), "player faces right")
	assert.Contains(t, enemyGlyphs, runeAt(screen, 40, 12))
	assert.Equal(t, '+', runeAt(screen, 60, 4))
	assert.Contains(t, rowText(screen, 24), "XP 000000")
	assert.Equal(t, 10, strings.Count(rowText(screen, 24), "♥"))
}

func TestRendererPlayerDrawnLast(t *testing.T) {
	screen := newTestScreen(t)
	w := newTestWorld()
	ship := w.Player()
	w.Spawn(w.PlayerFire, engine.NewProjectileEntity("player_fire", ship.Position, vmath.V(8, 4), vmath.Vec2{},
		component.Projectile{MaxDistance: component.Unlimited}))
	ship.Heading = 90

	NewRenderer(screen).Draw(w, time.Now())
	assert.Equal(t, '↓', runeAt(screen, 1, 12))
}

func TestRendererSkipsDeadAndOffscreen(t *testing.T) {
	screen := newTestScreen(t)
	w := newTestWorld()
	dead := w.Spawn(w.Enemies, engine.NewEnemyEntity(vmath.V(400, 300), vmath.V(32, 32), vmath.Vec2{}, 1, component.BehaviorStraight))
	dead.Kill()
	w.Spawn(w.Enemies, engine.NewEnemyEntity(vmath.V(820, 300), vmath.V(32, 32), vmath.Vec2{}, 1, component.BehaviorStraight))

	assert.NotPanics(t, func() { NewRenderer(screen).Draw(w, time.Now()) })
	assert.NotContains(t, enemyGlyphs, runeAt(screen, 40, 12))
}

func TestBackgroundScrolls(t *testing.T) {
	screen := newTestScreen(t)
	w := newTestWorld()
	r := NewRenderer(screen)

	r.Draw(w, time.Now())
	before := rowText(screen, 0)

	for range 20 {
		w.Background.Scroll(1, 64)
	}
	r.Draw(w, time.Now())
	after := rowText(screen, 0)

	assert.NotEqual(t, before, after)
	assert.Equal(t, strings.TrimSpace(rowText(screen, 1)), "", "odd rows stay blank")
}

func TestSpriteCache(t *testing.T) {
	c := NewSpriteCache()
	a := engine.NewEnemyEntity(vmath.Vec2{}, vmath.V(32, 32), vmath.Vec2{}, 1, component.BehaviorStraight)
	a.Sprite = "enemy1.png"
	b := engine.NewEnemyEntity(vmath.Vec2{}, vmath.V(32, 32), vmath.Vec2{}, 1, component.BehaviorFast)
	b.Sprite = "enemy1.png"

	first := c.Get(a)
	second := c.Get(b)
	assert.Equal(t, first, second)
	assert.Equal(t, 1, c.Misses())

	c.Get(engine.NewProjectileEntity("player_fire", vmath.Vec2{}, vmath.V(1, 1), vmath.Vec2{}, component.Projectile{}))
	assert.Equal(t, 1, c.Misses(), "built-in sprites are preloaded")
}

func TestSpriteGlyphFrames(t *testing.T) {
	s := Sprite{Frames: playerFrames}
	assert.Equal(t, '→', s.Glyph(0))
	assert.Equal(t, '↘', s.Glyph(45))
	assert.Equal(t, '↑', s.Glyph(270))
	assert.Equal(t, '↗', s.Glyph(359))
	assert.Equal(t, '?', Sprite{}.Glyph(0))
}

func TestHUDTrackBoxAnimation(t *testing.T) {
	screen := newTestScreen(t)
	w := newTestWorld()
	r := NewRenderer(screen)
	start := time.Now()

	r.HUD().HandleEvent(event.GameEvent{
		Type:    event.EventTrackStarted,
		Payload: &event.TrackPayload{Info: map[string][]string{"artist": {"Unit"}, "title": {"Carrier"}}},
	}, start)

	r.Draw(w, start.Add(time.Second))
	assert.Contains(t, rowText(screen, 1), "♪ Carrier")
	assert.Contains(t, rowText(screen, 2), "Unit")

	// Halfway through the slide-in only part of the box is visible
	r.Draw(w, start.Add(100*time.Millisecond))
	assert.NotContains(t, rowText(screen, 1), "♪ Carrier")
	assert.Contains(t, rowText(screen, 0), "┌")

	r.Draw(w, start.Add(4*time.Second))
	assert.NotContains(t, rowText(screen, 0), "┌")
	assert.False(t, r.HUD().track.active)
}

func TestTrackSlide(t *testing.T) {
	start := time.Unix(100, 0)
	tests := []struct {
		at   time.Duration
		want float64
	}{
		{0, 0},
		{100 * time.Millisecond, 0.5},
		{200 * time.Millisecond, 1},
		{3100 * time.Millisecond, 1},
		{3300 * time.Millisecond, 0.5},
		{3500 * time.Millisecond, 0},
	}
	for _, tt := range tests {
		box := trackBox{lines: []string{"x"}, started: start, active: true}
		assert.InDelta(t, tt.want, box.slide(start.Add(tt.at)), 1e-9, "at %v", tt.at)
	}
}

func TestHUDExperienceCachedText(t *testing.T) {
	screen := newTestScreen(t)
	w := newTestWorld()
	h := NewHUD()

	h.Draw(screen, w, time.Now())
	h.Draw(screen, w, time.Now())
	assert.Equal(t, 1, h.xpRenders)

	w.Player().Player.Experience = 42
	h.Draw(screen, w, time.Now())
	assert.Equal(t, 2, h.xpRenders)
	assert.Contains(t, rowText(screen, 24), "XP 000042")
}

func TestHUDWeaponAndBanner(t *testing.T) {
	screen := newTestScreen(t)
	w := newTestWorld()
	pl := w.Player().Player
	pl.Inventory.Acquire(component.NewSecondaryWeapon(component.WeaponSpec{
		Kind: component.WeaponCharged, Name: "lance", Ammo: 3, MaxAmmo: 5, CooldownMs: 100, MaxChargeMs: 400,
	}))
	w.Player().Combat.Life = 7
	h := NewHUD()

	h.HandleEvent(event.GameEvent{Type: event.EventGameOver, Payload: &event.GameOverPayload{Frame: 99, Experience: 12}}, time.Now())
	h.Draw(screen, w, time.Now())

	status := rowText(screen, 24)
	assert.Contains(t, status, "lance 3/5")
	assert.Contains(t, status, "⚡")
	assert.Contains(t, rowText(screen, 12), "GAME OVER  XP 12")

	_, _, style, _ := screen.GetContent(8, 24)
	fg, _, _ := style.Decompose()
	assert.Equal(t, RgbLifeLost, fg, "eighth pip is spent")
}
