package engine

import (
	"github.com/lixenwraith/deadchannel/event"
	"github.com/lixenwraith/deadchannel/input"
)

// State is the Director run state
type State int

const (
	Running State = iota
	// Ended is terminal, reached when the player dies
	Ended
)

func (s State) String() string {
	if s == Ended {
		return "ended"
	}
	return "running"
}

// Director drives the simulation one fixed tick at a time
type Director struct {
	world   *World
	systems []System
	state   State
}

func NewDirector(world *World) *Director {
	return &Director{world: world}
}

func (d *Director) World() *World { return d.world }

func (d *Director) State() State { return d.state }

// AddSystem registers a system keeping priority order
// Equal priorities keep registration order
func (d *Director) AddSystem(systems ...System) {
	for _, s := range systems {
		d.systems = append(d.systems, s)

		// Insertion step, small N
		for i := len(d.systems) - 1; i > 0 && d.systems[i-1].Priority() > d.systems[i].Priority(); i-- {
			d.systems[i-1], d.systems[i] = d.systems[i], d.systems[i-1]
		}
	}
}

// Systems returns a copy of the registered systems in execution order
func (d *Director) Systems() []System {
	out := make([]System, len(d.systems))
	copy(out, d.systems)
	return out
}

// Tick runs every system once with the given intents and elapsed time
// A system ending the run short-circuits the remaining systems and the frame increment
func (d *Director) Tick(intents []input.Intent, ms int) State {
	if d.state == Ended {
		return d.state
	}

	w := d.world
	w.Intents = intents
	w.ElapsedMs = ms

	for _, s := range d.systems {
		s.Update()
		if w.Ended() {
			d.end(s)
			return d.state
		}
	}

	w.Intents = nil
	w.Frame++
	return d.state
}

func (d *Director) end(by System) {
	w := d.world
	d.state = Ended
	xp := w.Player().Player.Experience
	w.Emit(event.EventGameOver, &event.GameOverPayload{Frame: w.Frame, Experience: xp})
	w.Log.Info().
		Int64("frame", w.Frame).
		Int("experience", xp).
		Str("system", by.Name()).
		Msg("run ended")
}
