package system

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/deadchannel/component"
	"github.com/lixenwraith/deadchannel/engine"
	"github.com/lixenwraith/deadchannel/parameter"
	"github.com/lixenwraith/deadchannel/vmath"
)

func addMissile(w *engine.World, pos, velocity vmath.Vec2) *engine.Entity {
	m := engine.NewProjectileEntity("missile", pos, vmath.V(8, 8), velocity, component.Projectile{
		Variant:     component.ProjectileHoming,
		MaxDistance: component.Unlimited,
		Speed:       parameter.HomingSpeed,
	})
	return w.Spawn(w.PlayerFire, m)
}

func TestHomingFallbackMatchesPlainBullet(t *testing.T) {
	w := newTestWorld()
	v := vmath.V(7, 0)
	missile := addMissile(w, vmath.V(100, 100), v)
	bullet := addBullet(w, w.PlayerFire, vmath.V(100, 100), v)
	w.ElapsedMs = 16

	m := NewMotionSystem(w)
	for range 20 {
		m.Update()
	}

	assert.Equal(t, bullet.Position, missile.Position)
	assert.Equal(t, bullet.Velocity, missile.Velocity)
	assert.Zero(t, missile.Projectile.TargetID)
	assert.True(t, missile.Alive(), "homing never exhausts")
}

func TestHomingPicksNearestManhattanFirstOnTie(t *testing.T) {
	w := newTestWorld()
	first := addEnemy(w, vmath.V(200, 100), 1, component.BehaviorStraight)  // distance 100
	second := addEnemy(w, vmath.V(100, 200), 1, component.BehaviorStraight) // distance 100
	addEnemy(w, vmath.V(300, 300), 1, component.BehaviorStraight)

	got := acquireTarget(vmath.V(100, 100), w.Enemies)
	require.NotNil(t, got)
	assert.Equal(t, first.ID, got.ID)

	first.Kill()
	got = acquireTarget(vmath.V(100, 100), w.Enemies)
	assert.Equal(t, second.ID, got.ID)
}

func TestHomingVerticalPursuit(t *testing.T) {
	w := newTestWorld()
	target := addEnemy(w, vmath.V(100, 400), 1, component.BehaviorStraight)
	missile := addMissile(w, vmath.V(100, 100), vmath.V(7, 0))

	steerHoming(missile, w.Enemies)
	assert.Equal(t, uint64(target.ID), missile.Projectile.TargetID)
	assert.Equal(t, vmath.V(0, parameter.HomingSpeed), missile.Velocity)
}

func TestHomingReacquiresAfterTargetDies(t *testing.T) {
	w := newTestWorld()
	near := addEnemy(w, vmath.V(150, 100), 1, component.BehaviorStraight)
	far := addEnemy(w, vmath.V(400, 100), 1, component.BehaviorStraight)
	missile := addMissile(w, vmath.V(100, 100), vmath.V(7, 0))

	steerHoming(missile, w.Enemies)
	assert.Equal(t, uint64(near.ID), missile.Projectile.TargetID)

	// Holds its target even when another enemy becomes closer
	closer := addEnemy(w, vmath.V(101, 120), 1, component.BehaviorStraight)
	steerHoming(missile, w.Enemies)
	assert.Equal(t, uint64(near.ID), missile.Projectile.TargetID)

	near.Kill()
	steerHoming(missile, w.Enemies)
	assert.Equal(t, uint64(closer.ID), missile.Projectile.TargetID)
	assert.NotEqual(t, uint64(far.ID), missile.Projectile.TargetID)

	v := missile.Velocity
	assert.InDelta(t, parameter.HomingSpeed, v.Len(), 1e-9)
}

func TestBurstWithoutFragments(t *testing.T) {
	w := newTestWorld()
	g := engine.NewProjectileEntity("grenade", vmath.V(1, 1), vmath.V(1, 1), vmath.Vec2{}, component.Projectile{
		Variant: component.ProjectileFragmenting,
	})
	w.Spawn(w.PlayerFire, g)
	assert.Empty(t, burst(g))
}
