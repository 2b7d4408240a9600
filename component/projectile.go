package component

// ProjectileVariant selects travel and exhaustion rules
type ProjectileVariant int

const (
	ProjectilePlain ProjectileVariant = iota
	ProjectileFragmenting
	ProjectileHoming
	ProjectileCharged
)

// Unlimited disables distance exhaustion
const Unlimited = -1

// Projectile is carried by bullets, pellets, grenades, fragments, missiles and bolts
type Projectile struct {
	Variant ProjectileVariant

	// MaxDistance is the travel limit in pixels, Unlimited for none
	MaxDistance      float64
	DistanceTraveled float64

	// Fragmenting only
	FragmentCount int
	FragmentSpeed float64

	// Homing only: pursuit magnitude and the current target, 0 when none
	Speed    float64
	TargetID uint64
}

// Travel accumulates distance and reports exhaustion
// Homing projectiles accumulate but never exhaust
func (p *Projectile) Travel(d float64) bool {
	p.DistanceTraveled += d
	if p.MaxDistance < 0 || p.Variant == ProjectileHoming {
		return false
	}
	return p.DistanceTraveled >= p.MaxDistance
}
