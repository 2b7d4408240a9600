package stage

import (
	"github.com/lixenwraith/deadchannel/component"
	"github.com/lixenwraith/deadchannel/vmath"
)

// Kind discriminates timeline event payloads
type Kind int

const (
	KindBackground Kind = iota
	KindEnemy
	KindPowerUp
)

func (k Kind) String() string {
	switch k {
	case KindBackground:
		return "background"
	case KindEnemy:
		return "enemy"
	case KindPowerUp:
		return "powerup"
	default:
		return "unknown"
	}
}

// Event is one validated timeline entry
// Exactly one payload matching Kind is non-nil
type Event struct {
	Frame  int64
	Kind   Kind
	TypeID string

	Background *Background
	Enemy      *Enemy
	PowerUp    *PowerUp
}

// Background switches the scrolling backdrop
type Background struct {
	Image string
}

// Enemy spawns one enemy at the right edge of the field
type Enemy struct {
	Image       string
	Y           float64
	Speed       vmath.Vec2
	Heading     int
	HeadingRate int
	Life        int
	Behavior    component.Behavior
	Special     string
}

// PowerUp spawns one pickup at the right edge of the field
type PowerUp struct {
	Image       string
	Y           float64
	Speed       vmath.Vec2
	HeadingRate int
	Effect      component.PowerUp
}
