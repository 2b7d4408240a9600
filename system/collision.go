package system

import (
	"github.com/lixenwraith/deadchannel/engine"
	"github.com/lixenwraith/deadchannel/event"
	"github.com/lixenwraith/deadchannel/parameter"
)

// CollisionSystem resolves group contacts in fixed order:
// player vs enemy fire, player vs power-ups, player vs enemies, player fire vs enemies
// A player death ends the run before any later phase runs
// Enemies never collide with each other
type CollisionSystem struct {
	world *engine.World
}

func NewCollisionSystem(world *engine.World) engine.System {
	return &CollisionSystem{world: world}
}

func (s *CollisionSystem) Name() string { return "collision" }

func (s *CollisionSystem) Priority() int { return parameter.PriorityCollision }

func (s *CollisionSystem) Update() {
	w := s.world
	ship := w.Player()
	if !ship.Alive() {
		return
	}

	if s.crash(ship, w.EnemyFire) {
		return
	}
	s.pickups(ship)
	if s.crash(ship, w.Enemies) {
		return
	}
	s.volley()
}

// crash destroys every member of g touching the ship and applies one hit if any touched
// Returns true when the hit killed the player
func (s *CollisionSystem) crash(ship *engine.Entity, g *engine.Group) bool {
	w := s.world
	box := ship.Box()

	touched := false
	g.Each(func(e *engine.Entity) {
		if !box.Intersects(e.Box()) {
			return
		}
		touched = true
		e.Kill()
		if e.Kind == engine.KindEnemy {
			w.Emit(event.EventEnemyDestroyed, &event.EnemyDestroyedPayload{X: e.Position.X, Y: e.Position.Y})
		}
	})
	if !touched {
		return false
	}

	dead := ship.Combat.Hit()
	w.Emit(event.EventPlayerHit, &event.PlayerHitPayload{Life: ship.Combat.Life})
	if dead {
		ship.Kill()
		w.End()
	}
	return dead
}

// pickups applies every touched power-up; only accepted ones are consumed
func (s *CollisionSystem) pickups(ship *engine.Entity) {
	w := s.world
	box := ship.Box()

	w.PowerUps.Each(func(e *engine.Entity) {
		pu := e.PowerUp
		if !box.Intersects(e.Box()) {
			pu.Touching = false
			return
		}
		payload := &event.PowerUpPayload{Kind: pu.TypeID}
		if applyPowerUp(w, ship, pu) {
			e.Kill()
			w.Emit(event.EventPowerUpConsumed, payload)
			return
		}
		if !pu.Touching {
			w.Emit(event.EventPowerUpRejected, payload)
		}
		pu.Touching = true
	})
}

// volley resolves player fire against enemies
// Every touching bullet dies, every distinct touched enemy takes exactly one hit,
// experience grows by the number of distinct enemies hit
func (s *CollisionSystem) volley() {
	w := s.world
	enemies := w.Enemies.Live()
	if len(enemies) == 0 {
		return
	}

	hit := make([]bool, len(enemies))
	w.PlayerFire.Each(func(b *engine.Entity) {
		box := b.Box()
		touched := false
		for i, e := range enemies {
			if box.Intersects(e.Box()) {
				hit[i] = true
				touched = true
			}
		}
		if touched {
			b.Kill()
		}
	})

	count := 0
	for i, e := range enemies {
		if !hit[i] {
			continue
		}
		count++
		if e.Combat.Hit() {
			e.Kill()
			w.Emit(event.EventEnemyDestroyed, &event.EnemyDestroyedPayload{X: e.Position.X, Y: e.Position.Y})
		}
	}
	if count == 0 {
		return
	}

	pl := w.Player().Player
	pl.Experience += count
	w.Emit(event.EventExperienceChanged, &event.ExperiencePayload{Experience: pl.Experience, Delta: count})
}
