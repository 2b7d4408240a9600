package system

import (
	"github.com/lixenwraith/deadchannel/component"
	"github.com/lixenwraith/deadchannel/engine"
	"github.com/lixenwraith/deadchannel/event"
	"github.com/lixenwraith/deadchannel/parameter"
	"github.com/lixenwraith/deadchannel/vmath"
)

func newTestWorld() *engine.World {
	return engine.NewWorld(engine.WorldConfig{
		Width:  800,
		Height: 600,
		Seed:   42,
		Tuning: engine.DefaultTuning(),
		Events: event.NewEventQueue(),
	})
}

func addEnemy(w *engine.World, pos vmath.Vec2, life int, b component.Behavior) *engine.Entity {
	e := engine.NewEnemyEntity(pos, vmath.V(parameter.EnemyWidth, parameter.EnemyHeight), vmath.Vec2{}, life, b)
	return w.Spawn(w.Enemies, e)
}

func addBullet(w *engine.World, g *engine.Group, pos, velocity vmath.Vec2) *engine.Entity {
	b := engine.NewProjectileEntity("test", pos, vmath.V(parameter.BulletWidth, parameter.BulletHeight), velocity,
		component.Projectile{Variant: component.ProjectilePlain, MaxDistance: component.Unlimited})
	return w.Spawn(g, b)
}

func eventTypes(q *event.EventQueue) []event.EventType {
	var out []event.EventType
	for _, ev := range q.Consume() {
		out = append(out, ev.Type)
	}
	return out
}
