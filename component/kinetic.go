package component

import (
	"github.com/lixenwraith/deadchannel/parameter"
	"github.com/lixenwraith/deadchannel/vmath"
)

// Kinetic holds the motion state shared by every simulated entity
// Position is the sprite center; the bounding box is Size centered on it
type Kinetic struct {
	Position vmath.Vec2
	Size     vmath.Vec2

	// Velocity is expressed in pixels per nominal step
	Velocity vmath.Vec2

	// Heading in degrees, always within [0, 360)
	Heading int

	// HeadingRate is the heading change per tick in degrees
	HeadingRate int
}

// Box returns the bounding box at the current position
func (k *Kinetic) Box() vmath.Box {
	return vmath.BoxAt(k.Position, k.Size)
}

// Rotate applies one tick of heading rate
func (k *Kinetic) Rotate() {
	k.Heading = vmath.NormalizeDegrees(k.Heading + k.HeadingRate)
}

// Integrate moves the position by velocity scaled by ms relative to the nominal step
// Returns the applied displacement
func (k *Kinetic) Integrate(ms int) vmath.Vec2 {
	delta := k.Velocity.Scale(float64(ms) / parameter.NominalStepMs)
	k.Position = k.Position.Add(delta)
	return delta
}

// SpriteFrame selects a directional frame index for the current heading
func (k *Kinetic) SpriteFrame(frames int) int {
	if frames <= 0 {
		return 0
	}
	return k.Heading * frames / 360
}
