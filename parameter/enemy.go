package parameter

// Enemy Entity
const (
	// EnemyWidth and EnemyHeight are the default sprite footprint
	EnemyWidth  = 32
	EnemyHeight = 32

	// EnemyDefaultLife is the life used by randomly spawned enemies
	EnemyDefaultLife = 1
)

// Enemy Behaviors (pixels/step)
const (
	EnemyStraightSpeedX = -4
	EnemyFastSpeedX     = -7
	EnemyDiagonalSpeedX = -3
	EnemyDiagonalSpeedY = 1

	// EnemyCruiseSpeedX is the horizontal speed of zigzag and seeking enemies
	EnemyCruiseSpeedX = -3

	// EnemyZigzagSpeedY is the vertical speed magnitude of a zigzag leg
	EnemyZigzagSpeedY = 2

	// EnemyZigzagPeriod is the tick count between zigzag direction flips
	EnemyZigzagPeriod = 15

	// EnemySeekingSpeedY is the vertical chase speed of seeking enemies
	EnemySeekingSpeedY = 2

	// EnemySeekingPeriod is the tick interval of seeking re-evaluation
	EnemySeekingPeriod = 2
)

// Enemy Fire
const (
	// EnemyFireThresholdMin and EnemyFireThresholdMax bound the randomized fire-check interval in ticks
	EnemyFireThresholdMin = 20
	EnemyFireThresholdMax = 30

	// EnemyFireRollMax is the upper bound of the per-enemy fire roll [0, max]
	EnemyFireRollMax = 10

	// EnemyFireRollAbove is the roll value that must be exceeded to fire
	EnemyFireRollAbove = 5

	// EnemyBulletSpeed is the fallback bullet speed for stationary enemies
	EnemyBulletSpeed = 6
)

// Endless Spawner
const (
	// EndlessRollMax is the upper bound of the spawn roll [0, max]
	EndlessRollMax = 100

	// EndlessCrowdFactor scales the live enemy count against the roll
	// EndlessRollMax / EndlessCrowdFactor is the maximum concurrent enemy count
	EndlessCrowdFactor = 20
)
