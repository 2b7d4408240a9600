package engine

// Group is an ordered entity container
// Enumeration order is insertion order and survives retirement, homing ties depend on it
type Group struct {
	name     string
	entities []*Entity
}

func NewGroup(name string) *Group {
	return &Group{name: name}
}

func (g *Group) Name() string { return g.name }

// Add appends e; callers assign IDs through World.Spawn
func (g *Group) Add(e *Entity) {
	g.entities = append(g.entities, e)
}

// Len counts every member, including dead ones not yet retired
func (g *Group) Len() int { return len(g.entities) }

// LiveCount counts members still alive
func (g *Group) LiveCount() int {
	n := 0
	for _, e := range g.entities {
		if e.alive {
			n++
		}
	}
	return n
}

// Each calls fn for every live member in order
// Members added during iteration are not visited
func (g *Group) Each(fn func(e *Entity)) {
	n := len(g.entities)
	for i := 0; i < n; i++ {
		if e := g.entities[i]; e.alive {
			fn(e)
		}
	}
}

// Live returns a snapshot of live members in order
func (g *Group) Live() []*Entity {
	out := make([]*Entity, 0, len(g.entities))
	for _, e := range g.entities {
		if e.alive {
			out = append(out, e)
		}
	}
	return out
}

// Find returns the live member with id, nil if absent or dead
func (g *Group) Find(id EntityID) *Entity {
	for _, e := range g.entities {
		if e.ID == id && e.alive {
			return e
		}
	}
	return nil
}

// Retire removes dead members preserving order and returns the removed count
func (g *Group) Retire() int {
	kept := g.entities[:0]
	for _, e := range g.entities {
		if e.alive {
			kept = append(kept, e)
		}
	}
	removed := len(g.entities) - len(kept)
	for i := len(kept); i < len(g.entities); i++ {
		g.entities[i] = nil
	}
	g.entities = kept
	return removed
}

// Clear drops every member
func (g *Group) Clear() {
	clear(g.entities)
	g.entities = g.entities[:0]
}
