package system

import (
	"github.com/lixenwraith/deadchannel/component"
	"github.com/lixenwraith/deadchannel/engine"
	"github.com/lixenwraith/deadchannel/event"
	"github.com/lixenwraith/deadchannel/parameter"
)

// MotionSystem advances the background and every live entity by one tick
// Per-kind policy runs first (enemy behavior, homing pursuit), then kinematics, then
// per-kind bookkeeping (travel distance, pickup lifetime) and the field bounds rule
type MotionSystem struct {
	world *engine.World
}

func NewMotionSystem(world *engine.World) engine.System {
	return &MotionSystem{world: world}
}

func (s *MotionSystem) Name() string { return "motion" }

func (s *MotionSystem) Priority() int { return parameter.PriorityMotion }

type pendingSpawn struct {
	group  *engine.Group
	entity *engine.Entity
}

func (s *MotionSystem) Update() {
	w := s.world
	ms := w.ElapsedMs
	ship := w.Player()
	bounds := w.Field.Expand(parameter.TileSize)

	w.Background.Scroll(parameter.BackgroundScrollStep, parameter.BackgroundTileWidth)
	ship.Player.Inventory.Cool(ms)

	var pending []pendingSpawn
	for _, g := range w.Groups() {
		g.Each(func(e *engine.Entity) {
			switch e.Kind {
			case engine.KindEnemy:
				steerEnemy(e, ship)
			case engine.KindProjectile:
				if e.Projectile.Variant == component.ProjectileHoming {
					steerHoming(e, w.Enemies)
				}
			}

			e.Rotate()
			delta := e.Integrate(ms)

			switch e.Kind {
			case engine.KindPlayer:
				e.Position = e.Position.Add(e.Box().ClampInto(w.Field))
				return
			case engine.KindProjectile:
				if e.Projectile.Travel(delta.Len()) {
					if e.Projectile.Variant == component.ProjectileFragmenting {
						for _, f := range burst(e) {
							pending = append(pending, pendingSpawn{group: g, entity: f})
						}
						w.Emit(event.EventFragmentBurst, nil)
					}
					e.Kill()
					return
				}
			case engine.KindPowerUp:
				if e.PowerUp.Age(ms) {
					e.Kill()
					return
				}
			}

			if e.Box().Outside(bounds) {
				e.Kill()
			}
		})
	}

	// Fragments join after the sweep and first move on the next tick
	for _, p := range pending {
		w.Spawn(p.group, p.entity)
	}
}
