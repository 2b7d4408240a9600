package system

import (
	"github.com/lixenwraith/deadchannel/component"
	"github.com/lixenwraith/deadchannel/engine"
	"github.com/lixenwraith/deadchannel/event"
	"github.com/lixenwraith/deadchannel/parameter"
	"github.com/lixenwraith/deadchannel/vmath"
)

// WeaponSystem fires the primary weapon and resolves secondary trigger pulls and charges
// Projectiles spawn at the ship center along its heading into the player-fire group
type WeaponSystem struct {
	world *engine.World
}

func NewWeaponSystem(world *engine.World) engine.System {
	return &WeaponSystem{world: world}
}

func (s *WeaponSystem) Name() string { return "weapon" }

func (s *WeaponSystem) Priority() int { return parameter.PriorityWeapon }

func (s *WeaponSystem) Update() {
	w := s.world
	ship := w.Player()
	pl := ship.Player
	ms := w.ElapsedMs

	threshold := w.Tuning.PrimaryThresholdMs
	pl.CoolPrimary(ms, threshold*parameter.PrimaryCarryCap)
	if pl.PrimaryHeld && pl.TakePrimaryShot(threshold) {
		s.firePrimary(ship)
	}

	if pl.Charging {
		sel := pl.Inventory.Current()
		if sel == nil || !sel.Chargeable() {
			pl.ReleaseCharge()
			pl.ChargeReleased = false
		} else {
			pl.Charge(ms, sel.MaxChargeMs)
		}
	}

	if pl.ChargeReleased {
		pl.ChargeReleased = false
		if pl.Charging {
			s.trigger(ship, pl.ReleaseCharge())
		}
	}

	if pl.SecondaryRequested {
		pl.SecondaryRequested = false
		s.trigger(ship, 0)
	}
}

func (s *WeaponSystem) firePrimary(ship *engine.Entity) {
	w := s.world
	v := vmath.FromHeading(float64(ship.Heading), w.Tuning.PrimarySpeed)
	size := vmath.V(parameter.BulletWidth, parameter.BulletHeight)
	w.Spawn(w.PlayerFire, engine.NewProjectileEntity("player_fire", ship.Position, size, v, component.Projectile{
		Variant:     component.ProjectilePlain,
		MaxDistance: component.Unlimited,
	}))
	w.Emit(event.EventPrimaryFired, nil)
}

// trigger pulls the selected secondary weapon; charge is only used by chargeable weapons
func (s *WeaponSystem) trigger(ship *engine.Entity, charge int) {
	w := s.world
	res, weapon := ship.Player.Inventory.Trigger()
	if weapon == nil {
		return
	}
	payload := &event.WeaponPayload{Name: weapon.Name, Ammo: weapon.Ammo}

	switch res {
	case component.TriggerFired:
		s.fireSecondary(ship, weapon, charge)
		w.Emit(event.EventSecondaryFired, payload)
	case component.TriggerOverheated:
		w.Emit(event.EventWeaponOverheated, payload)
	case component.TriggerDropped:
		w.Emit(event.EventWeaponDropped, payload)
		if cur := ship.Player.Inventory.Current(); cur != nil {
			w.Emit(event.EventWeaponSelected, &event.WeaponPayload{Name: cur.Name, Ammo: cur.Ammo})
		}
	}
}

func (s *WeaponSystem) fireSecondary(ship *engine.Entity, weapon *component.SecondaryWeapon, charge int) {
	w := s.world
	heading := float64(ship.Heading)
	origin := ship.Position

	switch weapon.Kind {
	case component.WeaponSpread:
		size := vmath.V(parameter.BulletWidth, parameter.BulletHeight)
		for _, angle := range spreadAngles(heading, float64(weapon.SpreadAngle), weapon.PelletCount) {
			w.Spawn(w.PlayerFire, engine.NewProjectileEntity("pellet", origin, size,
				vmath.FromHeading(angle, parameter.SpreadSpeed),
				component.Projectile{Variant: component.ProjectilePlain, MaxDistance: weapon.TravelDistance}))
		}

	case component.WeaponGrenade:
		size := vmath.V(parameter.GrenadeSize, parameter.GrenadeSize)
		w.Spawn(w.PlayerFire, engine.NewProjectileEntity("grenade", origin, size,
			vmath.FromHeading(heading, parameter.GrenadeSpeed),
			component.Projectile{
				Variant:       component.ProjectileFragmenting,
				MaxDistance:   weapon.TravelDistance,
				FragmentCount: weapon.FragmentCount,
				FragmentSpeed: parameter.FragmentSpeed,
			}))

	case component.WeaponHoming:
		size := vmath.V(parameter.MissileSize, parameter.MissileSize)
		w.Spawn(w.PlayerFire, engine.NewProjectileEntity("missile", origin, size,
			vmath.FromHeading(heading, parameter.HomingSpeed),
			component.Projectile{
				Variant:     component.ProjectileHoming,
				MaxDistance: component.Unlimited,
				Speed:       parameter.HomingSpeed,
			}))

	case component.WeaponCharged:
		size := vmath.V(parameter.BulletWidth*2, parameter.BulletHeight)
		w.Spawn(w.PlayerFire, engine.NewProjectileEntity("bolt", origin, size,
			vmath.FromHeading(heading, parameter.ChargedSpeed),
			component.Projectile{
				Variant:     component.ProjectileCharged,
				MaxDistance: chargedDistance(weapon, charge),
			}))
	}
}

// spreadAngles spaces n headings evenly across arc degrees centered on heading
func spreadAngles(heading, arc float64, n int) []float64 {
	if n <= 1 {
		return []float64{heading}
	}
	out := make([]float64, n)
	step := arc / float64(n-1)
	for i := range n {
		out[i] = heading - arc/2 + step*float64(i)
	}
	return out
}

// chargedDistance scales the weapon range by the charge fraction, at least one tile
func chargedDistance(weapon *component.SecondaryWeapon, charge int) float64 {
	if weapon.MaxChargeMs <= 0 {
		return weapon.TravelDistance
	}
	d := weapon.TravelDistance * float64(charge) / float64(weapon.MaxChargeMs)
	return max(d, parameter.ChargeMinDistance)
}
