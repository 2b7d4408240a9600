package engine

import (
	"sync/atomic"
	"time"

	"github.com/lixenwraith/deadchannel/parameter"
)

// TimeProvider abstracts the wall clock for frame pacing
type TimeProvider interface {
	Now() time.Time
}

// RealTimeProvider reads the monotonic system clock
type RealTimeProvider struct{}

func (RealTimeProvider) Now() time.Time {
	return time.Now()
}

// ManualTimeProvider only moves when told to, for deterministic frame pacing in tests
type ManualTimeProvider struct {
	nanos atomic.Int64
}

func NewManualTimeProvider(start time.Time) *ManualTimeProvider {
	p := &ManualTimeProvider{}
	p.nanos.Store(start.UnixNano())
	return p
}

func (p *ManualTimeProvider) Now() time.Time {
	return time.Unix(0, p.nanos.Load())
}

// Set jumps to t, which may lie in the past
func (p *ManualTimeProvider) Set(t time.Time) {
	p.nanos.Store(t.UnixNano())
}

func (p *ManualTimeProvider) Advance(d time.Duration) {
	p.nanos.Add(int64(d))
}

// Step advances by frames nominal simulation steps
func (p *ManualTimeProvider) Step(frames int) {
	p.Advance(time.Duration(frames*parameter.NominalStepMs) * time.Millisecond)
}

// FrameClock measures elapsed milliseconds between ticks
type FrameClock struct {
	provider TimeProvider
	last     time.Time
}

func NewFrameClock(provider TimeProvider) *FrameClock {
	return &FrameClock{provider: provider, last: provider.Now()}
}

// Elapsed returns ms since the previous call, capped so a stall does not teleport entities
func (c *FrameClock) Elapsed() int {
	now := c.provider.Now()
	ms := int(now.Sub(c.last).Milliseconds())
	c.last = now
	return min(max(ms, 0), parameter.MaxElapsedMs)
}
