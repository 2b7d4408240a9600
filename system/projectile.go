package system

import (
	"github.com/lixenwraith/deadchannel/component"
	"github.com/lixenwraith/deadchannel/engine"
	"github.com/lixenwraith/deadchannel/parameter"
	"github.com/lixenwraith/deadchannel/vmath"
)

// acquireTarget returns the nearest live enemy by Manhattan distance
// Ties keep the first enemy in group order
func acquireTarget(from vmath.Vec2, enemies *engine.Group) *engine.Entity {
	var best *engine.Entity
	bestDist := 0.0
	enemies.Each(func(e *engine.Entity) {
		d := from.Manhattan(e.Position)
		if best == nil || d < bestDist {
			best, bestDist = e, d
		}
	})
	return best
}

// steerHoming re-targets when needed and points the velocity at the target
// Without a target the missile keeps its current velocity
func steerHoming(e *engine.Entity, enemies *engine.Group) {
	p := e.Projectile

	var target *engine.Entity
	if p.TargetID != 0 {
		target = enemies.Find(engine.EntityID(p.TargetID))
	}
	if target == nil {
		target = acquireTarget(e.Position, enemies)
		if target == nil {
			p.TargetID = 0
			return
		}
		p.TargetID = uint64(target.ID)
	}

	if v, ok := vmath.Pursue(e.Position, target.Position, p.Speed); ok {
		e.Velocity = v
	}
}

// burst builds the fragments of an exhausted grenade, evenly spread from 0 degrees
// Fragments are plain projectiles, fragmentation is one level deep
func burst(e *engine.Entity) []*engine.Entity {
	p := e.Projectile
	n := p.FragmentCount
	if n <= 0 {
		return nil
	}

	size := vmath.V(parameter.FragmentSize, parameter.FragmentSize)
	out := make([]*engine.Entity, 0, n)
	for i := range n {
		angle := 360 * float64(i) / float64(n)
		v := vmath.FromHeading(angle, p.FragmentSpeed)
		out = append(out, engine.NewProjectileEntity("fragment", e.Position, size, v, component.Projectile{
			Variant:     component.ProjectilePlain,
			MaxDistance: component.Unlimited,
		}))
	}
	return out
}
