package system

import (
	"github.com/lixenwraith/deadchannel/engine"
	"github.com/lixenwraith/deadchannel/event"
	"github.com/lixenwraith/deadchannel/input"
	"github.com/lixenwraith/deadchannel/parameter"
)

// IntentSystem applies the tick's player intents to the player ship
// Movement and rotation change velocity and heading rate on press and undo it on release
type IntentSystem struct {
	world *engine.World
}

func NewIntentSystem(world *engine.World) engine.System {
	return &IntentSystem{world: world}
}

func (s *IntentSystem) Name() string { return "intent" }

func (s *IntentSystem) Priority() int { return parameter.PriorityIntent }

func (s *IntentSystem) Update() {
	ship := s.world.Player()
	for _, in := range s.world.Intents {
		s.apply(ship, in)
	}
}

func (s *IntentSystem) apply(ship *engine.Entity, in input.Intent) {
	tuning := s.world.Tuning
	pl := ship.Player

	sign := 1
	if !in.Pressed {
		sign = -1
	}

	switch in.Type {
	case input.IntentMove:
		accel := tuning.PlayerAcceleration * float64(sign)
		ship.Velocity.X += float64(in.DX) * accel
		ship.Velocity.Y += float64(in.DY) * accel

	case input.IntentRotate:
		ship.HeadingRate += sign * in.Dir * tuning.RotationStep

	case input.IntentFirePrimary:
		pl.PrimaryHeld = in.Pressed

	case input.IntentFireSecondary:
		if !in.Pressed {
			if pl.Charging {
				pl.ChargeReleased = true
			}
			return
		}
		if w := pl.Inventory.Current(); w != nil && w.Chargeable() {
			pl.StartCharge()
			return
		}
		pl.SecondaryRequested = true

	case input.IntentNextWeapon, input.IntentPrevWeapon:
		if pl.Inventory.Len() == 0 {
			return
		}
		if in.Type == input.IntentNextWeapon {
			pl.Inventory.Next()
		} else {
			pl.Inventory.Prev()
		}
		// Switching weapons abandons a charge in progress
		if pl.Charging {
			pl.ReleaseCharge()
			pl.ChargeReleased = false
		}
		w := pl.Inventory.Current()
		s.world.Emit(event.EventWeaponSelected, &event.WeaponPayload{Name: w.Name, Ammo: w.Ammo})
	}
}
