package component

// WeaponKind selects the projectile pattern of a secondary weapon
type WeaponKind int

const (
	// WeaponSpread fires several pellets across an arc (sw_mult)
	WeaponSpread WeaponKind = iota
	// WeaponGrenade fires a grenade that bursts into fragments (sw_frag)
	WeaponGrenade
	// WeaponHoming fires a missile that pursues the nearest enemy (sw_guided)
	WeaponHoming
	// WeaponCharged fires a bolt whose range grows with charge time (sw_elet)
	WeaponCharged
)

var weaponKindIDs = map[string]WeaponKind{
	"sw_mult":   WeaponSpread,
	"sw_frag":   WeaponGrenade,
	"sw_guided": WeaponHoming,
	"sw_elet":   WeaponCharged,
}

// WeaponKindFromID maps a stage item type to a weapon kind
func WeaponKindFromID(id string) (WeaponKind, bool) {
	k, ok := weaponKindIDs[id]
	return k, ok
}

func (k WeaponKind) String() string {
	for id, kind := range weaponKindIDs {
		if kind == k {
			return id
		}
	}
	return "unknown"
}

// WeaponSpec is the validated attribute bundle carried by a weapon power-up
type WeaponSpec struct {
	Kind           WeaponKind
	Name           string
	Ammo           int
	MaxAmmo        int
	TravelDistance float64
	CooldownMs     int
	HeatCost       int
	MaxChargeMs    int

	// Spread only
	SpreadAngle int
	PelletCount int

	// Grenade only
	FragmentCount int
}

// SecondaryWeapon is one owned inventory slot
// Invariants: 0 <= CooldownMs <= MaxCooldownMs, 0 <= Ammo <= MaxAmmo
type SecondaryWeapon struct {
	Kind           WeaponKind
	Name           string
	Ammo           int
	MaxAmmo        int
	TravelDistance float64

	// CooldownMs counts up toward MaxCooldownMs as heat dissipates
	CooldownMs      int
	MaxCooldownMs   int
	HeatCostPerShot int
	MaxChargeMs     int

	SpreadAngle   int
	PelletCount   int
	FragmentCount int
}

// NewSecondaryWeapon builds a fully cooled weapon from a spec
func NewSecondaryWeapon(spec WeaponSpec) *SecondaryWeapon {
	w := &SecondaryWeapon{
		Kind:            spec.Kind,
		Name:            spec.Name,
		MaxAmmo:         spec.MaxAmmo,
		TravelDistance:  spec.TravelDistance,
		MaxCooldownMs:   spec.CooldownMs,
		HeatCostPerShot: spec.HeatCost,
		MaxChargeMs:     spec.MaxChargeMs,
		SpreadAngle:     spec.SpreadAngle,
		PelletCount:     spec.PelletCount,
		FragmentCount:   spec.FragmentCount,
	}
	w.Ammo = min(max(spec.Ammo, 0), spec.MaxAmmo)
	w.CooldownMs = w.MaxCooldownMs
	return w
}

// SetCooldown stores ms clamped to [0, MaxCooldownMs]
func (w *SecondaryWeapon) SetCooldown(ms int) {
	switch {
	case ms > w.MaxCooldownMs:
		w.CooldownMs = w.MaxCooldownMs
	case ms < 0:
		w.CooldownMs = 0
	default:
		w.CooldownMs = ms
	}
}

// IncreaseAmmo adds n rounds up to MaxAmmo, false when already full
func (w *SecondaryWeapon) IncreaseAmmo(n int) bool {
	if w.Ammo >= w.MaxAmmo {
		return false
	}
	w.Ammo = min(w.Ammo+n, w.MaxAmmo)
	return true
}

// DecreaseAmmo removes n rounds, false without effect when fewer remain
func (w *SecondaryWeapon) DecreaseAmmo(n int) bool {
	if w.Ammo < n {
		return false
	}
	w.Ammo -= n
	return true
}

// ShotCost is the ammo spent per trigger pull
func (w *SecondaryWeapon) ShotCost() int {
	if w.Kind == WeaponSpread && w.PelletCount > 1 {
		return w.PelletCount
	}
	return 1
}

// Chargeable reports whether the weapon fires on release after charging
func (w *SecondaryWeapon) Chargeable() bool {
	return w.Kind == WeaponCharged && w.MaxChargeMs > 0
}

// Ready reports whether a trigger pull would fire
func (w *SecondaryWeapon) Ready() bool {
	return w.Ammo >= w.ShotCost() && w.CooldownMs >= w.HeatCostPerShot
}
