package input

// IntentType discriminates semantic actions delivered to the simulation
type IntentType uint8

const (
	IntentNone IntentType = iota

	// Launcher-level intents, never reach the Director
	IntentQuit
	IntentToggleMute

	// Ship control; Pressed distinguishes press from release
	IntentMove          // DX, DY unit direction
	IntentRotate        // Dir +1 clockwise, -1 counter-clockwise
	IntentFirePrimary   // held while Pressed
	IntentFireSecondary // press pulls the trigger or starts a charge, release fires a charge

	// Weapon selection
	IntentNextWeapon
	IntentPrevWeapon
)

var intentNames = map[IntentType]string{
	IntentNone:          "none",
	IntentQuit:          "quit",
	IntentToggleMute:    "toggle_mute",
	IntentMove:          "move",
	IntentRotate:        "rotate",
	IntentFirePrimary:   "fire_primary",
	IntentFireSecondary: "fire_secondary",
	IntentNextWeapon:    "next_weapon",
	IntentPrevWeapon:    "prev_weapon",
}

func (t IntentType) String() string {
	if name, ok := intentNames[t]; ok {
		return name
	}
	return "unknown"
}

// Intent is a discrete player request
type Intent struct {
	Type    IntentType
	Pressed bool
	DX, DY  int // IntentMove
	Dir     int // IntentRotate
}

// Simulation reports whether the intent is applied by the Director
func (i Intent) Simulation() bool {
	return i.Type >= IntentMove
}
