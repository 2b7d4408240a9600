package engine

import (
	"github.com/rs/zerolog"

	"github.com/lixenwraith/deadchannel/event"
	"github.com/lixenwraith/deadchannel/input"
	"github.com/lixenwraith/deadchannel/parameter"
	"github.com/lixenwraith/deadchannel/vmath"
)

// Background is the scrolling backdrop state
type Background struct {
	Image  string
	Offset int
}

// Scroll moves the backdrop left, wrapping once past one tile width
func (b *Background) Scroll(step, tileWidth int) {
	b.Offset -= step
	if tileWidth > 0 && b.Offset < -tileWidth {
		b.Offset += tileWidth
	}
}

// Tuning is the gameplay configuration snapshot, read-only during a run
type Tuning struct {
	PlayerLife         int
	PlayerAcceleration float64
	RotationStep       int
	PrimaryThresholdMs int
	PrimarySpeed       float64
	EnemyBulletSpeed   float64
	PowerUpLifetimeMs  int
	Endless            bool
}

// DefaultTuning returns the built-in tuning
func DefaultTuning() Tuning {
	return Tuning{
		PlayerLife:         parameter.PlayerLife,
		PlayerAcceleration: parameter.PlayerAcceleration,
		RotationStep:       parameter.PlayerRotationStep,
		PrimaryThresholdMs: parameter.PrimaryThresholdMs,
		PrimarySpeed:       parameter.PrimarySpeed,
		EnemyBulletSpeed:   parameter.EnemyBulletSpeed,
		PowerUpLifetimeMs:  parameter.PowerUpLifetimeMs,
	}
}

// WorldConfig parameterizes NewWorld
type WorldConfig struct {
	Width, Height float64
	Seed          uint64
	Tuning        Tuning
	Events        *event.EventQueue
	Log           zerolog.Logger
}

// World owns every entity group and the per-run simulation state
// Single-threaded: only the Director and its systems mutate it, renderers read it between ticks
type World struct {
	Field  vmath.Box
	Tuning Tuning

	Players    *Group
	Enemies    *Group
	EnemyFire  *Group
	PlayerFire *Group
	PowerUps   *Group

	Background Background

	// Frame is the timeline index of the tick in progress
	Frame int64

	// ElapsedMs and Intents are the inputs of the tick in progress
	ElapsedMs int
	Intents   []input.Intent

	Rng    *vmath.FastRand
	Events *event.EventQueue
	Log    zerolog.Logger

	player *Entity
	nextID EntityID
	ended  bool
}

// NewWorld creates an empty world with the player spawned at the left center
func NewWorld(cfg WorldConfig) *World {
	if cfg.Width <= 0 {
		cfg.Width = parameter.DefaultFieldWidth
	}
	if cfg.Height <= 0 {
		cfg.Height = parameter.DefaultFieldHeight
	}
	if cfg.Events == nil {
		cfg.Events = event.NewEventQueue()
	}

	w := &World{
		Field:      vmath.Rect(cfg.Width, cfg.Height),
		Tuning:     cfg.Tuning,
		Players:    NewGroup("player"),
		Enemies:    NewGroup("enemies"),
		EnemyFire:  NewGroup("enemies_fire"),
		PlayerFire: NewGroup("fire"),
		PowerUps:   NewGroup("powerups"),
		Rng:        vmath.NewFastRand(cfg.Seed),
		Events:     cfg.Events,
		Log:        cfg.Log,
		nextID:     1,
	}

	size := vmath.V(parameter.PlayerWidth, parameter.PlayerHeight)
	pos := vmath.V(size.X/2, cfg.Height/2)
	w.player = w.Spawn(w.Players, NewPlayerEntity(pos, size, cfg.Tuning.PlayerLife))

	return w
}

// Player returns the player entity
func (w *World) Player() *Entity {
	return w.player
}

// Groups returns every group in the stable draw and update order
func (w *World) Groups() []*Group {
	return []*Group{w.PlayerFire, w.EnemyFire, w.Enemies, w.PowerUps, w.Players}
}

// Spawn assigns a fresh ID and adds e to g
func (w *World) Spawn(g *Group, e *Entity) *Entity {
	e.ID = w.nextID
	w.nextID++
	g.Add(e)
	return e
}

// End marks the run as finished; the Director observes it after the current system
func (w *World) End() {
	w.ended = true
}

func (w *World) Ended() bool {
	return w.ended
}

// Emit pushes a game event stamped with the current frame
func (w *World) Emit(t event.EventType, payload any) {
	if w.Events == nil {
		return
	}
	w.Events.Push(event.GameEvent{Type: t, Frame: w.Frame, Payload: payload})
}
