package parameter

import "time"

// Background
const (
	// BackgroundScrollStep is the background offset change per tick (pixels)
	BackgroundScrollStep = 1

	// BackgroundTileWidth is the width of one background pattern repetition
	BackgroundTileWidth = 64
)

// HUD
const (
	// HUDLifeGlyph is the life pip rune
	HUDLifeGlyph = '♥'

	// TrackInfoHoldMs is how long track info stays fully visible
	TrackInfoHoldMs = 3000

	// TrackInfoAnimMs is the slide-in and slide-out duration
	TrackInfoAnimMs = 200
)

// Input
const (
	// KeyHoldTimeout is the silence after which a latched key is considered released
	// Terminals report no key-up events; autorepeat refreshes the latch
	KeyHoldTimeout = 180 * time.Millisecond
)
