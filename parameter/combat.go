package parameter

// Projectile footprints
const (
	BulletWidth  = 8
	BulletHeight = 4

	GrenadeSize  = 10
	MissileSize  = 8
	FragmentSize = 6
)

// Projectile speeds (pixels/step)
const (
	// SpreadSpeed is the pellet speed of spread weapons
	SpreadSpeed = 8

	// GrenadeSpeed is the flight speed of fragmenting grenades
	GrenadeSpeed = 5

	// FragmentSpeed is the speed of grenade fragments
	FragmentSpeed = 6

	// HomingSpeed is the pursuit speed magnitude of homing missiles
	HomingSpeed = 7

	// ChargedSpeed is the speed of charged bolts
	ChargedSpeed = 10
)

// Charge
const (
	// ChargeMinDistance is the minimum travel distance of a partially charged bolt
	ChargeMinDistance = TileSize
)
