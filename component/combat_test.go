package component

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCombatHitDecrementsBeforeCheck(t *testing.T) {
	tests := []struct {
		life, hits int
	}{
		{1, 1},
		{3, 1},
		{3, 2},
		{3, 3},
		{3, 5},
		{10, 9},
	}
	for _, tt := range tests {
		c := NewCombat(tt.life, 0)
		var dead bool
		for range tt.hits {
			dead = c.Hit()
		}
		if tt.hits >= tt.life {
			assert.True(t, dead, "life %d after %d hits", tt.life, tt.hits)
			assert.True(t, c.Dead())
			assert.Equal(t, 0, c.Life)
		} else {
			assert.False(t, dead, "life %d after %d hits", tt.life, tt.hits)
			assert.Equal(t, tt.life-tt.hits, c.Life)
		}
	}
}

func TestCombatHealRejectedAboveMax(t *testing.T) {
	c := NewCombat(10, 10)
	assert.False(t, c.Heal(3))
	assert.Equal(t, 10, c.Life)

	c.Hit()
	c.Hit()
	assert.False(t, c.Heal(3), "8+3 would exceed max, heal is rejected not clamped")
	assert.Equal(t, 8, c.Life)
	assert.True(t, c.Heal(2))
	assert.Equal(t, 10, c.Life)
}

func TestCombatHealUncapped(t *testing.T) {
	c := NewCombat(5, 0)
	assert.True(t, c.Heal(100))
	assert.Equal(t, 105, c.Life)
}
