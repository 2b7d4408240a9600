package parameter

// Power-ups
const (
	// PowerUpLifetimeMs is the default time a power-up stays on the field
	PowerUpLifetimeMs = 3000

	// PowerUpSize is the sprite footprint (square)
	PowerUpSize = 24
)
