package component

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func plain(name string, ammo int) *SecondaryWeapon {
	return NewSecondaryWeapon(WeaponSpec{
		Kind:       WeaponGrenade,
		Name:       name,
		Ammo:       ammo,
		MaxAmmo:    10,
		CooldownMs: 300,
		HeatCost:   100,
	})
}

func names(inv *Inventory) []string {
	var out []string
	for _, w := range inv.Weapons {
		out = append(out, w.Name)
	}
	return out
}

func TestAcquireAutoSelectsFirst(t *testing.T) {
	inv := NewInventory()
	assert.Nil(t, inv.Current())

	assert.True(t, inv.Acquire(plain("a", 2)))
	assert.Equal(t, 0, inv.Selected)

	assert.True(t, inv.Acquire(plain("b", 2)))
	assert.Equal(t, 0, inv.Selected, "selection unchanged when something was selected")
	assert.Equal(t, []string{"a", "b"}, names(&inv))
}

func TestAcquireMergesByName(t *testing.T) {
	inv := NewInventory()
	inv.Acquire(plain("a", 4))
	assert.True(t, inv.Acquire(plain("a", 3)))
	require.Equal(t, 1, inv.Len())
	assert.Equal(t, 7, inv.Weapons[0].Ammo)

	assert.True(t, inv.Acquire(plain("a", 5)))
	assert.Equal(t, 10, inv.Weapons[0].Ammo)

	assert.False(t, inv.Acquire(plain("a", 1)), "full slot rejects the pickup")
	assert.Equal(t, 1, inv.Len())
}

func TestSelectionCycles(t *testing.T) {
	inv := NewInventory()
	inv.Next()
	inv.Prev()
	assert.Equal(t, -1, inv.Selected)

	inv.Acquire(plain("a", 1))
	inv.Acquire(plain("b", 1))
	inv.Acquire(plain("c", 1))

	inv.Next()
	assert.Equal(t, "b", inv.Current().Name)
	inv.Next()
	inv.Next()
	assert.Equal(t, "a", inv.Current().Name)
	inv.Prev()
	assert.Equal(t, "c", inv.Current().Name)
}

func TestCoolClampsEveryWeapon(t *testing.T) {
	inv := NewInventory()
	inv.Acquire(plain("a", 1))
	inv.Acquire(plain("b", 1))
	inv.Weapons[0].SetCooldown(0)
	inv.Weapons[1].SetCooldown(250)

	inv.Cool(100)
	assert.Equal(t, 100, inv.Weapons[0].CooldownMs)
	assert.Equal(t, 300, inv.Weapons[1].CooldownMs)
}

func TestTriggerAmmoDepletionDrops(t *testing.T) {
	inv := NewInventory()
	inv.Acquire(plain("a", 1))
	inv.Acquire(plain("b", 5))

	res, w := inv.Trigger()
	assert.Equal(t, TriggerFired, res)
	assert.Equal(t, 0, w.Ammo)
	assert.Equal(t, 2, inv.Len(), "weapon stays after its last round")

	inv.Weapons[0].SetCooldown(300)
	res, w = inv.Trigger()
	assert.Equal(t, TriggerDropped, res)
	assert.Equal(t, "a", w.Name)
	assert.Equal(t, []string{"b"}, names(&inv))
	assert.Equal(t, "b", inv.Current().Name)
}

func TestTriggerOverheatSpendsCooldown(t *testing.T) {
	inv := NewInventory()
	inv.Acquire(plain("a", 5))
	inv.Weapons[0].SetCooldown(99)

	res, _ := inv.Trigger()
	assert.Equal(t, TriggerOverheated, res)
	assert.Equal(t, 0, inv.Weapons[0].CooldownMs)
	assert.Equal(t, 5, inv.Weapons[0].Ammo)
}

func TestTriggerChecksAmmoBeforeHeat(t *testing.T) {
	inv := NewInventory()
	inv.Acquire(plain("a", 0))
	inv.Weapons[0].SetCooldown(0)

	res, _ := inv.Trigger()
	assert.Equal(t, TriggerDropped, res)
	assert.Equal(t, -1, inv.Selected)
}

func TestTriggerSpreadCostsPellets(t *testing.T) {
	inv := NewInventory()
	spec := spreadSpec()
	spec.Ammo = 4
	inv.Acquire(NewSecondaryWeapon(spec))

	res, w := inv.Trigger()
	assert.Equal(t, TriggerFired, res)
	assert.Equal(t, 1, w.Ammo)
	assert.Equal(t, 300, w.CooldownMs)

	res, _ = inv.Trigger()
	assert.Equal(t, TriggerDropped, res, "one round cannot cover three pellets")
}

func TestTriggerEmpty(t *testing.T) {
	inv := NewInventory()
	res, w := inv.Trigger()
	assert.Equal(t, TriggerNone, res)
	assert.Nil(t, w)
}

func TestDropSelection(t *testing.T) {
	tests := []struct {
		name     string
		selected int
		drop     int
		want     []string
		wantSel  int
	}{
		{"middle advances to follower", 1, 1, []string{"a", "c"}, 1},
		{"last wraps to first", 2, 2, []string{"a", "b"}, 0},
		{"first saturates then advances", 0, 0, []string{"b", "c"}, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			inv := NewInventory()
			inv.Acquire(plain("a", 1))
			inv.Acquire(plain("b", 1))
			inv.Acquire(plain("c", 1))
			inv.Selected = tt.selected

			inv.Drop(tt.drop)
			assert.Equal(t, tt.want, names(&inv))
			assert.Equal(t, tt.wantSel, inv.Selected)
		})
	}

	inv := NewInventory()
	inv.Acquire(plain("only", 1))
	inv.Drop(0)
	assert.Equal(t, -1, inv.Selected)
	assert.Nil(t, inv.Current())
	inv.Drop(3)
}
