package engine

import (
	"math"

	"github.com/lixenwraith/deadchannel/component"
	"github.com/lixenwraith/deadchannel/vmath"
)

// EntityID identifies an entity for the lifetime of a run, never reused
type EntityID uint64

// Kind tags the variant of an entity
type Kind uint8

const (
	KindPlayer Kind = iota
	KindEnemy
	KindProjectile
	KindPowerUp
)

func (k Kind) String() string {
	switch k {
	case KindPlayer:
		return "player"
	case KindEnemy:
		return "enemy"
	case KindProjectile:
		return "projectile"
	case KindPowerUp:
		return "powerup"
	default:
		return "unknown"
	}
}

// Entity is a tagged variant: shared kinetics plus optional capabilities
// Capabilities not applicable to Kind are nil
type Entity struct {
	ID     EntityID
	Kind   Kind
	Sprite string

	component.Kinetic

	Combat     *component.Combat
	Player     *component.Player
	Enemy      *component.Enemy
	Projectile *component.Projectile
	PowerUp    *component.PowerUp

	alive bool
}

// Alive reports whether the entity still takes part in update, draw and collision
func (e *Entity) Alive() bool {
	return e.alive
}

// Kill marks the entity dead; it is removed in the retire phase and never revived
func (e *Entity) Kill() {
	e.alive = false
}

// NewPlayerEntity builds the player ship centered at pos
func NewPlayerEntity(pos, size vmath.Vec2, life int) *Entity {
	return &Entity{
		Kind:    KindPlayer,
		Sprite:  "player",
		Kinetic: component.Kinetic{Position: pos, Size: size},
		Combat:  component.NewCombat(life, life),
		Player:  component.NewPlayer(),
		alive:   true,
	}
}

// NewEnemyEntity builds an enemy; a zero velocity selects the behavior default
func NewEnemyEntity(pos, size, velocity vmath.Vec2, life int, b component.Behavior) *Entity {
	if velocity.IsZero() {
		velocity = b.DefaultVelocity()
	}
	cruise := math.Abs(velocity.X)
	return &Entity{
		Kind:    KindEnemy,
		Sprite:  "enemy",
		Kinetic: component.Kinetic{Position: pos, Size: size, Velocity: velocity},
		Combat:  component.NewCombat(life, 0),
		Enemy:   component.NewEnemy(b, cruise),
		alive:   true,
	}
}

// NewProjectileEntity builds a projectile with the given travel rules
func NewProjectileEntity(sprite string, pos, size, velocity vmath.Vec2, p component.Projectile) *Entity {
	return &Entity{
		Kind:       KindProjectile,
		Sprite:     sprite,
		Kinetic:    component.Kinetic{Position: pos, Size: size, Velocity: velocity},
		Projectile: &p,
		alive:      true,
	}
}

// NewPowerUpEntity builds a timed pickup
func NewPowerUpEntity(sprite string, pos, size, velocity vmath.Vec2, p component.PowerUp) *Entity {
	return &Entity{
		Kind:    KindPowerUp,
		Sprite:  sprite,
		Kinetic: component.Kinetic{Position: pos, Size: size, Velocity: velocity},
		PowerUp: &p,
		alive:   true,
	}
}
