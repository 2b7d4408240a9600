package component

// Player holds the state unique to the player ship
type Player struct {
	Experience int

	// PrimaryCooldownMs accumulates readiness for the primary weapon
	PrimaryCooldownMs int

	// PrimaryHeld is set while the primary fire input is held
	PrimaryHeld bool

	// SecondaryRequested is a pending trigger pull for a non-charging weapon
	SecondaryRequested bool

	// Charging is true between fire-secondary press and release on a chargeable weapon
	Charging   bool
	ChargingMs int

	// ChargeReleased is a pending release of a charging weapon
	ChargeReleased bool

	Inventory Inventory
}

func NewPlayer() *Player {
	return &Player{Inventory: NewInventory()}
}

// CoolPrimary accumulates ms of readiness, capped at capMs
func (p *Player) CoolPrimary(ms, capMs int) {
	p.PrimaryCooldownMs = min(p.PrimaryCooldownMs+ms, capMs)
}

// TakePrimaryShot reports whether accumulated readiness exceeds threshold
// On success the threshold is subtracted, keeping any carry-over
func (p *Player) TakePrimaryShot(threshold int) bool {
	if p.PrimaryCooldownMs <= threshold {
		return false
	}
	p.PrimaryCooldownMs -= threshold
	return true
}

// StartCharge begins charging from zero
func (p *Player) StartCharge() {
	p.Charging = true
	p.ChargingMs = 0
}

// Charge grows the charge by ms up to maxMs
func (p *Player) Charge(ms, maxMs int) {
	if !p.Charging {
		return
	}
	p.ChargingMs = min(p.ChargingMs+ms, maxMs)
}

// ReleaseCharge ends charging and returns the accumulated charge
func (p *Player) ReleaseCharge() int {
	charge := p.ChargingMs
	p.Charging = false
	p.ChargingMs = 0
	return charge
}
