package parameter

import "time"

// Game Loop & Engine Timing
const (
	// NominalStepMs is the logical timestep; velocities are expressed per nominal step
	NominalStepMs = 16

	// FrameUpdateInterval is the pacing interval of the launcher ticker (~60 FPS)
	FrameUpdateInterval = NominalStepMs * time.Millisecond

	// MaxElapsedMs caps the elapsed time fed to a single tick after a stall
	MaxElapsedMs = 100
)

// Event queue
const (
	// EventQueueSize is the ring capacity, must be a power of two
	EventQueueSize = 256

	// EventBufferMask is the ring index mask
	EventBufferMask = EventQueueSize - 1
)

// Play field
const (
	// TileSize is the culling margin around the play field, one background tile
	TileSize = 32

	// DefaultFieldWidth is the logical play field width in pixels
	DefaultFieldWidth = 800

	// DefaultFieldHeight is the logical play field height in pixels
	DefaultFieldHeight = 600
)
