package system

import (
	"github.com/lixenwraith/deadchannel/engine"
	"github.com/lixenwraith/deadchannel/parameter"
)

// RetireSystem removes dead entities from every group
type RetireSystem struct {
	world *engine.World
}

func NewRetireSystem(world *engine.World) engine.System {
	return &RetireSystem{world: world}
}

func (s *RetireSystem) Name() string { return "retire" }

func (s *RetireSystem) Priority() int { return parameter.PriorityRetire }

func (s *RetireSystem) Update() {
	for _, g := range s.world.Groups() {
		g.Retire()
	}
}
