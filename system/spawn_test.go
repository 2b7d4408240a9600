package system

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/deadchannel/component"
	"github.com/lixenwraith/deadchannel/event"
	"github.com/lixenwraith/deadchannel/stage"
	"github.com/lixenwraith/deadchannel/vmath"
)

func TestSpawnTimelineEvents(t *testing.T) {
	w := newTestWorld()
	tl := stage.NewTimeline([]stage.Event{
		{Frame: 0, Kind: stage.KindBackground, TypeID: "background", Background: &stage.Background{Image: "nebula"}},
		{Frame: 0, Kind: stage.KindEnemy, TypeID: "enemy", Enemy: &stage.Enemy{
			Image: "drone", Y: 120, Speed: vmath.V(-2, 0), Heading: 180, HeadingRate: 3, Life: 2,
			Behavior: component.BehaviorZigzag,
		}},
		{Frame: 0, Kind: stage.KindPowerUp, TypeID: "first_aid_kit", PowerUp: &stage.PowerUp{
			Image: "kit", Y: 200, Speed: vmath.V(-1, 0),
			Effect: component.PowerUp{Kind: component.PowerUpHeal, TypeID: "first_aid_kit", Heal: 2},
		}},
		{Frame: 5, Kind: stage.KindEnemy, TypeID: "enemy", Enemy: &stage.Enemy{
			Image: "drone", Y: 300, Life: 1, Behavior: component.BehaviorStraight,
		}},
	})
	s := NewSpawnSystem(w, tl)
	s.Update()

	assert.Equal(t, "nebula", w.Background.Image)
	enemies := w.Enemies.Live()
	require.Len(t, enemies, 1)
	e := enemies[0]
	assert.Equal(t, vmath.V(816, 120), e.Position)
	assert.Equal(t, vmath.V(-2, 0), e.Velocity)
	assert.Equal(t, 180, e.Heading)
	assert.Equal(t, 3, e.HeadingRate)
	assert.Equal(t, 2, e.Combat.Life)
	assert.Equal(t, "drone", e.Sprite)

	pus := w.PowerUps.Live()
	require.Len(t, pus, 1)
	assert.Equal(t, w.Tuning.PowerUpLifetimeMs, pus[0].PowerUp.RemainingMs)
	assert.Equal(t, 1, tl.Len())

	types := eventTypes(w.Events)
	assert.Contains(t, types, event.EventBackgroundChanged)
	assert.NotContains(t, types, event.EventStageCleared)
}

func TestSpawnStageClearedOnce(t *testing.T) {
	w := newTestWorld()
	tl := stage.NewTimeline([]stage.Event{
		{Frame: 0, Kind: stage.KindBackground, TypeID: "background", Background: &stage.Background{Image: "a"}},
	})
	s := NewSpawnSystem(w, tl)

	s.Update()
	s.Update()

	var cleared int
	for _, tp := range eventTypes(w.Events) {
		if tp == event.EventStageCleared {
			cleared++
		}
	}
	assert.Equal(t, 1, cleared)
}

func TestSpawnEnemyFireResetsCounter(t *testing.T) {
	w := newTestWorld()
	for i := range 20 {
		addEnemy(w, vmath.V(600, float64(20+25*i)), 1, component.BehaviorStraight)
	}
	s := NewSpawnSystem(w, nil).(*SpawnSystem)

	s.fireTicks = 5
	s.Update()
	assert.Equal(t, 6, s.fireTicks)
	assert.Equal(t, 0, w.EnemyFire.Len())

	s.fireTicks = 30
	s.Update()
	assert.Equal(t, 0, s.fireTicks)
	assert.Positive(t, w.EnemyFire.Len())
	for _, b := range w.EnemyFire.Live() {
		assert.Equal(t, vmath.V(-8, 0), b.Velocity)
	}
}

func TestSpawnEndless(t *testing.T) {
	w := newTestWorld()
	w.Tuning.Endless = true
	s := NewSpawnSystem(w, nil)

	for range 10 {
		if w.Enemies.LiveCount() > 0 {
			break
		}
		s.Update()
	}
	require.Positive(t, w.Enemies.LiveCount())
	e := w.Enemies.Live()[0]
	assert.Equal(t, 1, e.Combat.Life)
	assert.GreaterOrEqual(t, e.Position.Y, 16.0)
	assert.LessOrEqual(t, e.Position.Y, 584.0)
}

func TestSpawnEndlessCrowdCap(t *testing.T) {
	w := newTestWorld()
	w.Tuning.Endless = true
	for i := range 5 {
		addEnemy(w, vmath.V(600, float64(50+100*i)), 1, component.BehaviorStraight)
	}
	s := NewSpawnSystem(w, nil)
	for range 200 {
		s.Update()
	}
	assert.Equal(t, 5, w.Enemies.LiveCount())
}
