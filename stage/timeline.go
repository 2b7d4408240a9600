package stage

import "sort"

// Timeline is the frame-keyed spawn schedule of one run
// Events are kept sorted by frame descending so the next due events sit at the tail
type Timeline struct {
	events []Event
}

// NewTimeline takes ownership of events and orders them for popping
func NewTimeline(events []Event) *Timeline {
	sorted := make([]Event, len(events))
	copy(sorted, events)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Frame > sorted[j].Frame
	})
	return &Timeline{events: sorted}
}

// Pop removes and returns every event scheduled at frame, in source order
// Returns an empty slice when nothing is due; popped events are gone for good
func (t *Timeline) Pop(frame int64) []Event {
	n := len(t.events)
	i := n
	for i > 0 && t.events[i-1].Frame == frame {
		i--
	}
	if i == n {
		return []Event{}
	}

	out := make([]Event, 0, n-i)
	// Stable descending sort leaves equal frames in source order; walk forward to keep it
	out = append(out, t.events[i:]...)
	clear(t.events[i:])
	t.events = t.events[:i]
	return out
}

// Len returns the number of pending events
func (t *Timeline) Len() int {
	return len(t.events)
}

// NextFrame returns the frame of the next due event
func (t *Timeline) NextFrame() (int64, bool) {
	if len(t.events) == 0 {
		return 0, false
	}
	return t.events[len(t.events)-1].Frame, true
}

// LastFrame returns the frame of the final scheduled event
func (t *Timeline) LastFrame() (int64, bool) {
	if len(t.events) == 0 {
		return 0, false
	}
	return t.events[0].Frame, true
}
