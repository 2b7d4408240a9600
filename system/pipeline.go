package system

import (
	"github.com/lixenwraith/deadchannel/engine"
	"github.com/lixenwraith/deadchannel/stage"
)

// NewDirector wires the full tick pipeline over world
func NewDirector(world *engine.World, timeline *stage.Timeline) *engine.Director {
	d := engine.NewDirector(world)
	d.AddSystem(
		NewIntentSystem(world),
		NewWeaponSystem(world),
		NewMotionSystem(world),
		NewCollisionSystem(world),
		NewSpawnSystem(world, timeline),
		NewRetireSystem(world),
	)
	return d
}
