package event

import (
	"sync/atomic"

	"github.com/lixenwraith/deadchannel/parameter"
)

type slot struct {
	ev    GameEvent
	ready atomic.Bool
}

// EventQueue is a lock-free multi-producer ring drained by a single consumer
// Producers are the simulation systems and the music player on the speaker goroutine
// When full the oldest unread events are overwritten and counted as dropped
type EventQueue struct {
	ring    [parameter.EventQueueSize]slot
	read    atomic.Uint64
	write   atomic.Uint64
	dropped atomic.Uint64
}

func NewEventQueue() *EventQueue {
	return &EventQueue{}
}

// Push reserves the next slot and publishes ev into it
func (q *EventQueue) Push(ev GameEvent) {
	seq := q.write.Add(1) - 1
	s := &q.ring[seq&parameter.EventBufferMask]
	s.ev = ev
	s.ready.Store(true)

	// Drag the reader forward past anything this write lapped
	floor := seq + 1
	if floor < parameter.EventQueueSize {
		return
	}
	floor -= parameter.EventQueueSize
	for {
		r := q.read.Load()
		if r >= floor {
			return
		}
		if q.read.CompareAndSwap(r, floor) {
			q.dropped.Add(floor - r)
			return
		}
	}
}

// Consume returns pending events oldest first, nil when there are none
// Stops early at a slot whose producer has not finished writing
func (q *EventQueue) Consume() []GameEvent {
	for {
		start := q.read.Load()
		end := q.write.Load()
		if end <= start {
			return nil
		}
		from := start
		if end-from > parameter.EventQueueSize {
			from = end - parameter.EventQueueSize
		}

		out := make([]GameEvent, 0, end-from)
		for seq := from; seq < end; seq++ {
			s := &q.ring[seq&parameter.EventBufferMask]
			if !s.ready.Load() {
				break
			}
			out = append(out, s.ev)
			s.ready.Store(false)
		}

		if q.read.CompareAndSwap(start, from+uint64(len(out))) {
			if len(out) == 0 {
				return nil
			}
			return out
		}
	}
}

// Len returns an approximate count of unread events
func (q *EventQueue) Len() int {
	r, w := q.read.Load(), q.write.Load()
	if w <= r {
		return 0
	}
	return int(min(w-r, parameter.EventQueueSize))
}

// Dropped returns how many events were overwritten before being consumed
func (q *EventQueue) Dropped() uint64 {
	return q.dropped.Load()
}
