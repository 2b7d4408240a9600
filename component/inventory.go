package component

// TriggerResult is the outcome of a secondary trigger pull
type TriggerResult int

const (
	// TriggerNone means no weapon was selected
	TriggerNone TriggerResult = iota
	// TriggerFired means cooldown and ammo were spent and projectiles should spawn
	TriggerFired
	// TriggerOverheated means the pull came too early; cooldown was spent to zero
	TriggerOverheated
	// TriggerDropped means ammo could not cover the shot; the weapon was removed
	TriggerDropped
)

func (r TriggerResult) String() string {
	switch r {
	case TriggerFired:
		return "fired"
	case TriggerOverheated:
		return "overheated"
	case TriggerDropped:
		return "dropped"
	default:
		return "none"
	}
}

// Inventory is the player's ordered list of secondary weapons
// Selected is -1 when nothing is selected, which holds iff the list is empty
type Inventory struct {
	Weapons  []*SecondaryWeapon
	Selected int
}

func NewInventory() Inventory {
	return Inventory{Selected: -1}
}

func (inv *Inventory) Len() int {
	return len(inv.Weapons)
}

// Current returns the selected weapon or nil
func (inv *Inventory) Current() *SecondaryWeapon {
	if inv.Selected < 0 || inv.Selected >= len(inv.Weapons) {
		return nil
	}
	return inv.Weapons[inv.Selected]
}

// Cool dissipates ms of heat on every owned weapon
func (inv *Inventory) Cool(ms int) {
	for _, w := range inv.Weapons {
		w.SetCooldown(w.CooldownMs + ms)
	}
}

// Acquire merges w into a same-named slot or appends it
// A merge into a full slot is rejected; a new slot is auto-selected when nothing was selected
func (inv *Inventory) Acquire(w *SecondaryWeapon) bool {
	for _, owned := range inv.Weapons {
		if owned.Name == w.Name {
			return owned.IncreaseAmmo(w.Ammo)
		}
	}
	inv.Weapons = append(inv.Weapons, w)
	if inv.Selected < 0 {
		inv.Selected = len(inv.Weapons) - 1
	}
	return true
}

func (inv *Inventory) Next() {
	n := len(inv.Weapons)
	if n == 0 {
		return
	}
	inv.Selected = (inv.Selected + 1) % n
}

func (inv *Inventory) Prev() {
	n := len(inv.Weapons)
	if n == 0 {
		return
	}
	inv.Selected = (inv.Selected - 1 + n) % n
}

// Drop removes slot i, steps the selection back one (saturating) then advances it
func (inv *Inventory) Drop(i int) {
	if i < 0 || i >= len(inv.Weapons) {
		return
	}
	copy(inv.Weapons[i:], inv.Weapons[i+1:])
	inv.Weapons[len(inv.Weapons)-1] = nil
	inv.Weapons = inv.Weapons[:len(inv.Weapons)-1]

	if len(inv.Weapons) == 0 {
		inv.Selected = -1
		return
	}
	inv.Selected = max(inv.Selected-1, 0)
	inv.Next()
}

// Trigger pulls the selected weapon's trigger
// Ammo is checked before heat: an empty weapon is dropped even if it is also hot
// The returned weapon is the one pulled, still valid after a drop
func (inv *Inventory) Trigger() (TriggerResult, *SecondaryWeapon) {
	w := inv.Current()
	if w == nil {
		return TriggerNone, nil
	}

	cost := w.ShotCost()
	if w.Ammo < cost {
		inv.Drop(inv.Selected)
		return TriggerDropped, w
	}

	if w.CooldownMs < w.HeatCostPerShot {
		w.SetCooldown(0)
		return TriggerOverheated, w
	}

	w.SetCooldown(w.CooldownMs - w.HeatCostPerShot)
	w.DecreaseAmmo(cost)
	return TriggerFired, w
}
