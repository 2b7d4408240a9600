package parameter

// System Execution Priorities (lower runs first)
// Order is load-bearing: collision observes motion, spawn observes collision deaths
const (
	PriorityIntent    = 10
	PriorityWeapon    = 15
	PriorityMotion    = 20
	PriorityCollision = 30
	PrioritySpawn     = 40
	PriorityRetire    = 50
)
