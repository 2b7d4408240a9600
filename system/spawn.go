package system

import (
	"github.com/lixenwraith/deadchannel/component"
	"github.com/lixenwraith/deadchannel/engine"
	"github.com/lixenwraith/deadchannel/event"
	"github.com/lixenwraith/deadchannel/parameter"
	"github.com/lixenwraith/deadchannel/stage"
	"github.com/lixenwraith/deadchannel/vmath"
)

// SpawnSystem consumes the stage timeline, rolls enemy fire and feeds endless mode
type SpawnSystem struct {
	world    *engine.World
	timeline *stage.Timeline

	// fireTicks counts ticks since the last enemy fire check
	fireTicks int
	cleared   bool
}

// NewSpawnSystem builds the spawner; timeline may be nil for a pure endless run
func NewSpawnSystem(world *engine.World, timeline *stage.Timeline) engine.System {
	return &SpawnSystem{world: world, timeline: timeline}
}

func (s *SpawnSystem) Name() string { return "spawn" }

func (s *SpawnSystem) Priority() int { return parameter.PrioritySpawn }

func (s *SpawnSystem) Update() {
	w := s.world

	if s.timeline != nil {
		for _, ev := range s.timeline.Pop(w.Frame) {
			s.spawn(ev)
		}
	}

	s.enemyFire()

	if w.Tuning.Endless {
		s.spawnRandom()
	}

	if s.timeline != nil && !s.cleared && s.timeline.Len() == 0 && w.Enemies.LiveCount() == 0 {
		s.cleared = true
		w.Emit(event.EventStageCleared, nil)
		w.Log.Info().Int64("frame", w.Frame).Msg("stage cleared")
	}
}

// spawn instantiates one timeline event; payloads were validated at load
func (s *SpawnSystem) spawn(ev stage.Event) {
	w := s.world
	switch ev.Kind {
	case stage.KindBackground:
		w.Background.Image = ev.Background.Image
		w.Emit(event.EventBackgroundChanged, &event.BackgroundPayload{Image: ev.Background.Image})

	case stage.KindEnemy:
		spec := ev.Enemy
		e := spawnEnemy(w, spec.Image, spec.Y, spec.Speed, spec.Life, spec.Behavior)
		e.Heading = spec.Heading
		e.HeadingRate = spec.HeadingRate

	case stage.KindPowerUp:
		spec := ev.PowerUp
		spawnPowerUp(w, spec.Image, spec.Y, spec.Speed, spec.HeadingRate, spec.Effect)
	}
}

// enemyFire lets each live enemy roll a shot once a fresh random threshold is passed
func (s *SpawnSystem) enemyFire() {
	w := s.world
	s.fireTicks++
	if s.fireTicks <= w.Rng.Range(parameter.EnemyFireThresholdMin, parameter.EnemyFireThresholdMax) {
		return
	}
	w.Enemies.Each(func(e *engine.Entity) {
		if w.Rng.Range(0, parameter.EnemyFireRollMax) > parameter.EnemyFireRollAbove {
			fireEnemyBullet(w, e)
		}
	})
	s.fireTicks = 0
}

// spawnRandom adds an enemy with a random behavior and height
// The chance shrinks with the live enemy count and reaches zero at EndlessRollMax/EndlessCrowdFactor
func (s *SpawnSystem) spawnRandom() {
	w := s.world
	r := w.Rng.Range(0, parameter.EndlessRollMax)
	if r <= parameter.EndlessCrowdFactor*w.Enemies.LiveCount() {
		return
	}

	b := component.Behaviors[w.Rng.Intn(len(component.Behaviors))]
	half := parameter.EnemyHeight / 2
	y := float64(w.Rng.Range(half, int(w.Field.Height())-half))
	spawnEnemy(w, "", y, vmath.Vec2{}, parameter.EnemyDefaultLife, b)
}
