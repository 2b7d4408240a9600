package component

// Combat gives an entity life and death semantics
type Combat struct {
	// Life is the remaining life (>= 0)
	Life int

	// MaxLife caps healing, 0 means uncapped
	MaxLife int
}

func NewCombat(life, maxLife int) *Combat {
	return &Combat{Life: life, MaxLife: maxLife}
}

// Hit applies one point of damage and reports whether the actor is now dead
// Damage is applied before the check so life 1 dies on its first hit
func (c *Combat) Hit() bool {
	if c.Life > 0 {
		c.Life--
	}
	return c.Life == 0
}

func (c *Combat) Dead() bool {
	return c.Life == 0
}

// Heal adds n life; rejected without effect when the result would exceed MaxLife
func (c *Combat) Heal(n int) bool {
	if n <= 0 || c.Dead() {
		return false
	}
	if c.MaxLife > 0 && c.Life+n > c.MaxLife {
		return false
	}
	c.Life += n
	return true
}
