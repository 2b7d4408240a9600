package system

import (
	"github.com/lixenwraith/deadchannel/component"
	"github.com/lixenwraith/deadchannel/engine"
	"github.com/lixenwraith/deadchannel/event"
	"github.com/lixenwraith/deadchannel/parameter"
	"github.com/lixenwraith/deadchannel/vmath"
)

// applyPowerUp dispatches the pickup effect onto the player
// Returns false when the effect was rejected and the pickup must stay on the field
func applyPowerUp(w *engine.World, ship *engine.Entity, pu *component.PowerUp) bool {
	switch pu.Kind {
	case component.PowerUpHeal:
		return ship.Combat.Heal(pu.Heal)

	case component.PowerUpWeapon:
		if pu.Weapon == nil {
			return false
		}
		inv := &ship.Player.Inventory
		hadSelection := inv.Current() != nil
		if !inv.Acquire(component.NewSecondaryWeapon(*pu.Weapon)) {
			return false
		}
		if !hadSelection {
			cur := inv.Current()
			w.Emit(event.EventWeaponSelected, &event.WeaponPayload{Name: cur.Name, Ammo: cur.Ammo})
		}
		return true
	}
	return false
}

// spawnPowerUp places a pickup just beyond the right edge of the field
// A zero lifetime selects the configured default
func spawnPowerUp(w *engine.World, sprite string, y float64, velocity vmath.Vec2, headingRate int, effect component.PowerUp) *engine.Entity {
	if effect.RemainingMs <= 0 {
		effect.RemainingMs = w.Tuning.PowerUpLifetimeMs
	}
	if effect.Weapon != nil {
		spec := *effect.Weapon
		effect.Weapon = &spec
	}
	size := vmath.V(parameter.PowerUpSize, parameter.PowerUpSize)
	pos := vmath.V(w.Field.Right+size.X/2, y)
	e := engine.NewPowerUpEntity(sprite, pos, size, velocity, effect)
	e.HeadingRate = headingRate
	return w.Spawn(w.PowerUps, e)
}
