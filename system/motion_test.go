package system

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/deadchannel/component"
	"github.com/lixenwraith/deadchannel/engine"
	"github.com/lixenwraith/deadchannel/vmath"
)

func TestMotionFrameRateCompensation(t *testing.T) {
	for _, b := range []component.Behavior{component.BehaviorStraight, component.BehaviorFast, component.BehaviorDiagonal} {
		single := newTestWorld()
		double := newTestWorld()
		e1 := addEnemy(single, vmath.V(400, 300), 1, b)
		e2 := addEnemy(double, vmath.V(400, 300), 1, b)

		single.ElapsedMs = 16
		double.ElapsedMs = 32
		NewMotionSystem(single).Update()
		NewMotionSystem(double).Update()

		d1 := e1.Position.Sub(vmath.V(400, 300))
		d2 := e2.Position.Sub(vmath.V(400, 300))
		assert.False(t, d1.IsZero())
		assert.Equal(t, d1.Scale(2), d2, "behavior %s", b)
	}
}

func TestMotionClampsPlayer(t *testing.T) {
	w := newTestWorld()
	p := w.Player()
	p.Velocity = vmath.V(5000, -5000)
	w.ElapsedMs = 16

	NewMotionSystem(w).Update()

	box := p.Box()
	assert.Equal(t, w.Field.Right, box.Right)
	assert.Equal(t, w.Field.Top, box.Top)
	assert.Equal(t, vmath.V(5000, -5000), p.Velocity, "clamping leaves velocity untouched")
	assert.True(t, p.Alive())
}

func TestMotionKillsOutsideExpandedField(t *testing.T) {
	w := newTestWorld()
	fresh := addEnemy(w, vmath.V(w.Field.Right+16, 300), 1, component.BehaviorStraight)
	gone := addEnemy(w, vmath.V(-60, 300), 1, component.BehaviorStraight)
	w.ElapsedMs = 16

	NewMotionSystem(w).Update()

	assert.True(t, fresh.Alive())
	assert.False(t, gone.Alive())
}

func TestMotionRotatesHeading(t *testing.T) {
	w := newTestWorld()
	p := w.Player()
	p.Heading = 355
	p.HeadingRate = 10
	w.ElapsedMs = 16

	NewMotionSystem(w).Update()
	assert.Equal(t, 5, p.Heading)
}

func TestMotionGrenadeFragmentConservation(t *testing.T) {
	w := newTestWorld()
	grenade := engine.NewProjectileEntity("grenade", vmath.V(400, 300), vmath.V(10, 10), vmath.V(5, 0), component.Projectile{
		Variant:       component.ProjectileFragmenting,
		MaxDistance:   5,
		FragmentCount: 4,
		FragmentSpeed: 6,
	})
	w.Spawn(w.PlayerFire, grenade)
	before := w.PlayerFire.LiveCount()
	w.ElapsedMs = 16

	NewMotionSystem(w).Update()
	NewRetireSystem(w).Update()

	after := w.PlayerFire.Live()
	assert.False(t, grenade.Alive())
	require.Len(t, after, 4)
	assert.Equal(t, 3, len(after)-before)

	want := []vmath.Vec2{vmath.V(6, 0), vmath.V(0, 6), vmath.V(-6, 0), vmath.V(0, -6)}
	for i, f := range after {
		assert.Equal(t, component.ProjectilePlain, f.Projectile.Variant, "fragments never fragment")
		assert.InDelta(t, want[i].X, f.Velocity.X, 1e-9)
		assert.InDelta(t, want[i].Y, f.Velocity.Y, 1e-9)
		assert.Equal(t, vmath.V(405, 300), f.Position)
	}
}

func TestMotionDistanceExhaustion(t *testing.T) {
	w := newTestWorld()
	pellet := engine.NewProjectileEntity("pellet", vmath.V(100, 100), vmath.V(4, 4), vmath.V(8, 0),
		component.Projectile{Variant: component.ProjectilePlain, MaxDistance: 20})
	w.Spawn(w.PlayerFire, pellet)
	w.ElapsedMs = 16

	m := NewMotionSystem(w)
	m.Update()
	m.Update()
	assert.True(t, pellet.Alive())
	m.Update()
	assert.False(t, pellet.Alive())
}

func TestMotionPowerUpExpires(t *testing.T) {
	w := newTestWorld()
	pu := spawnPowerUp(w, "kit", 300, vmath.Vec2{}, 0, component.PowerUp{Kind: component.PowerUpHeal, Heal: 1, RemainingMs: 32})
	w.ElapsedMs = 16

	m := NewMotionSystem(w)
	m.Update()
	assert.True(t, pu.Alive())
	// Zero remaining lifetime survives one more tick
	m.Update()
	assert.True(t, pu.Alive())
	assert.Zero(t, pu.PowerUp.RemainingMs)
	m.Update()
	assert.False(t, pu.Alive())
}

func TestMotionCoolsInventoryAndScrolls(t *testing.T) {
	w := newTestWorld()
	inv := &w.Player().Player.Inventory
	inv.Acquire(component.NewSecondaryWeapon(component.WeaponSpec{Name: "g", Ammo: 1, MaxAmmo: 1, CooldownMs: 100}))
	inv.Weapons[0].SetCooldown(0)
	w.ElapsedMs = 16

	NewMotionSystem(w).Update()
	assert.Equal(t, 16, inv.Weapons[0].CooldownMs)
	assert.Equal(t, -1, w.Background.Offset)
}
