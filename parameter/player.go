package parameter

// Player Entity
const (
	// PlayerLife is the starting and maximum life
	PlayerLife = 10

	// PlayerAcceleration is the velocity change per accelerate intent (pixels/step)
	PlayerAcceleration = 3

	// PlayerRotationStep is the heading rate change per rotate intent (degrees/step)
	PlayerRotationStep = 5

	// PlayerWidth and PlayerHeight are the sprite footprint
	PlayerWidth  = 32
	PlayerHeight = 24

	// PlayerSpriteFrames is the number of directional sprite frames
	PlayerSpriteFrames = 8
)

// Primary Weapon
const (
	// PrimaryThresholdMs is the accumulated readiness required per primary shot
	PrimaryThresholdMs = 160

	// PrimaryCarryCap bounds accumulated readiness to this many thresholds
	PrimaryCarryCap = 2

	// PrimarySpeed is the primary bullet speed (pixels/step)
	PrimarySpeed = 8
)
