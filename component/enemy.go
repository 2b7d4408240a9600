package component

import (
	"github.com/lixenwraith/deadchannel/parameter"
	"github.com/lixenwraith/deadchannel/vmath"
)

// Behavior is an enemy motion policy
type Behavior int

const (
	BehaviorStraight Behavior = iota
	BehaviorFast
	BehaviorDiagonal
	BehaviorSeeking
	BehaviorZigzag
)

// Behaviors lists every policy in declaration order, used for random selection
var Behaviors = []Behavior{
	BehaviorStraight,
	BehaviorFast,
	BehaviorDiagonal,
	BehaviorSeeking,
	BehaviorZigzag,
}

var behaviorNames = [...]string{
	BehaviorStraight: "straight",
	BehaviorFast:     "fast",
	BehaviorDiagonal: "diagonal",
	BehaviorSeeking:  "seeking",
	BehaviorZigzag:   "zigzag",
}

func (b Behavior) String() string {
	if b < 0 || int(b) >= len(behaviorNames) {
		return "unknown"
	}
	return behaviorNames[b]
}

// ParseBehavior maps a stage behaviour name to a policy
func ParseBehavior(name string) (Behavior, bool) {
	for i, n := range behaviorNames {
		if n == name {
			return Behavior(i), true
		}
	}
	return 0, false
}

// DefaultVelocity returns the initial velocity for a policy
func (b Behavior) DefaultVelocity() vmath.Vec2 {
	switch b {
	case BehaviorFast:
		return vmath.V(parameter.EnemyFastSpeedX, 0)
	case BehaviorDiagonal:
		return vmath.V(parameter.EnemyDiagonalSpeedX, parameter.EnemyDiagonalSpeedY)
	case BehaviorSeeking, BehaviorZigzag:
		return vmath.V(parameter.EnemyCruiseSpeedX, 0)
	default:
		return vmath.V(parameter.EnemyStraightSpeedX, 0)
	}
}

// Enemy holds per-enemy behavior state
type Enemy struct {
	Behavior Behavior

	// Counter is incremented once per update before the policy runs
	Counter int

	// ZigzagUp is the current vertical orientation of a zigzag leg
	ZigzagUp bool

	// CruiseSpeed is the horizontal speed magnitude for zigzag and seeking
	CruiseSpeed float64
}

// NewEnemy builds behavior state; cruise is the horizontal speed magnitude
func NewEnemy(b Behavior, cruise float64) *Enemy {
	if cruise <= 0 {
		cruise = -parameter.EnemyCruiseSpeedX
	}
	return &Enemy{Behavior: b, CruiseSpeed: cruise}
}
