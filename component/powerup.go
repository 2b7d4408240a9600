package component

// PowerUpKind dispatches the pickup effect
type PowerUpKind int

const (
	PowerUpHeal PowerUpKind = iota
	PowerUpWeapon
)

// PowerUp is a timed pickup
type PowerUp struct {
	Kind PowerUpKind

	// TypeID is the stage item type, e.g. first_aid_kit or sw_frag
	TypeID string

	// Heal is the life bonus of a heal pickup
	Heal int

	// Weapon is the attribute bundle of a weapon pickup
	Weapon *WeaponSpec

	RemainingMs int

	// Touching is set while the player overlaps the pickup, so a rejection is reported once per contact
	Touching bool
}

// Age consumes ms of lifetime and reports expiry
// A pickup with exactly zero time left is still collectible for that tick
func (p *PowerUp) Age(ms int) bool {
	p.RemainingMs -= ms
	return p.RemainingMs < 0
}
