package system

import (
	"github.com/lixenwraith/deadchannel/component"
	"github.com/lixenwraith/deadchannel/engine"
	"github.com/lixenwraith/deadchannel/parameter"
	"github.com/lixenwraith/deadchannel/vmath"
)

// steerEnemy advances the behavior counter and applies the periodic velocity policy
// Straight, fast and diagonal enemies keep their spawn velocity
func steerEnemy(e *engine.Entity, target *engine.Entity) {
	en := e.Enemy
	en.Counter++

	switch en.Behavior {
	case component.BehaviorZigzag:
		if en.Counter%parameter.EnemyZigzagPeriod == 0 {
			en.ZigzagUp = !en.ZigzagUp
		}
		vy := float64(parameter.EnemyZigzagSpeedY)
		if en.ZigzagUp {
			vy = -vy
		}
		e.Velocity = vmath.V(-en.CruiseSpeed, vy)

	case component.BehaviorSeeking:
		vy := 0.0
		if en.Counter%parameter.EnemySeekingPeriod == 0 && target != nil {
			switch {
			case e.Position.Y < target.Position.Y:
				vy = parameter.EnemySeekingSpeedY
			case e.Position.Y > target.Position.Y:
				vy = -parameter.EnemySeekingSpeedY
			}
		}
		e.Velocity = vmath.V(-en.CruiseSpeed, vy)
	}
}

// fireEnemyBullet spawns one bullet from e into the enemy-fire group
// The bullet inherits the enemy velocity with the horizontal component doubled
func fireEnemyBullet(w *engine.World, e *engine.Entity) {
	v := vmath.V(e.Velocity.X*2, e.Velocity.Y)
	if v.IsZero() {
		v = vmath.V(-w.Tuning.EnemyBulletSpeed, 0)
	}
	size := vmath.V(parameter.BulletWidth, parameter.BulletHeight)
	b := engine.NewProjectileEntity("enemy_fire", e.Position, size, v, component.Projectile{
		Variant:     component.ProjectilePlain,
		MaxDistance: component.Unlimited,
	})
	w.Spawn(w.EnemyFire, b)
}

// spawnEnemy places an enemy just beyond the right edge of the field
func spawnEnemy(w *engine.World, sprite string, y float64, velocity vmath.Vec2, life int, b component.Behavior) *engine.Entity {
	size := vmath.V(parameter.EnemyWidth, parameter.EnemyHeight)
	pos := vmath.V(w.Field.Right+size.X/2, y)
	e := engine.NewEnemyEntity(pos, size, velocity, life, b)
	if sprite != "" {
		e.Sprite = sprite
	}
	return w.Spawn(w.Enemies, e)
}
