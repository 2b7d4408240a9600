package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
)

// fade shapes a finite stream with a linear attack and an exponential tail
type fade struct {
	streamer beep.Streamer
	sr       beep.SampleRate
	attack   int
	decay    float64
	pos      int
}

func newFade(s beep.Streamer, sr beep.SampleRate, attack time.Duration, decay float64) beep.Streamer {
	return &fade{streamer: s, sr: sr, attack: sr.N(attack), decay: decay}
}

func (f *fade) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = f.streamer.Stream(samples)
	for i := 0; i < n; i++ {
		t := float64(f.pos) / float64(f.sr)
		vol := math.Exp(-t * f.decay)
		if f.pos < f.attack {
			vol *= float64(f.pos) / float64(f.attack)
		}
		samples[i][0] *= vol
		samples[i][1] *= vol
		f.pos++
	}
	return n, ok
}

func (f *fade) Err() error { return f.streamer.Err() }

// BuzzGenerator generates a low-pitch buzz with harmonics
type BuzzGenerator struct {
	sr   beep.SampleRate
	freq float64
	pos  int
}

func NewBuzzGenerator(sr beep.SampleRate, freq float64) *BuzzGenerator {
	return &BuzzGenerator{sr: sr, freq: freq}
}

func (g *BuzzGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)

		sample := 0.3 * math.Sin(2*math.Pi*g.freq*t)
		sample += 0.15 * math.Sin(2*math.Pi*g.freq*2*t)
		sample += 0.075 * math.Sin(2*math.Pi*g.freq*3*t)

		samples[i][0] = sample * 0.2
		samples[i][1] = sample * 0.2
		g.pos++
	}
	return len(samples), true
}

func (g *BuzzGenerator) Err() error {
	return nil
}

// ExplosionGenerator generates filtered noise over a low rumble
// The LCG keeps output deterministic for a given seed
type ExplosionGenerator struct {
	sr    beep.SampleRate
	pos   int
	seed  int64
	prev  float64
	pitch float64
}

func NewExplosionGenerator(sr beep.SampleRate, seed int64, pitch float64) *ExplosionGenerator {
	return &ExplosionGenerator{sr: sr, seed: seed, pitch: pitch}
}

func (g *ExplosionGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)

		g.seed = (g.seed*1103515245 + 12345) & 0x7fffffff
		noise := float64(g.seed)/float64(0x7fffffff)*2 - 1
		// One-pole low-pass
		g.prev += 0.2 * (noise - g.prev)

		rumble := 0.3 * math.Sin(2*math.Pi*g.pitch*t)
		sample := 0.35*g.prev + rumble

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *ExplosionGenerator) Err() error {
	return nil
}

// sweep is a sine whose frequency moves linearly from -> to over its duration
type sweep struct {
	sr       beep.SampleRate
	from, to float64
	total    int
	pos      int
	phase    float64
}

func newSweep(sr beep.SampleRate, from, to float64, d time.Duration) beep.Streamer {
	return &sweep{sr: sr, from: from, to: to, total: sr.N(d)}
}

func (s *sweep) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if s.pos >= s.total {
			return i, i > 0
		}
		freq := s.from + (s.to-s.from)*float64(s.pos)/float64(s.total)
		s.phase += freq / float64(s.sr)
		s.phase -= math.Floor(s.phase)
		v := 0.25 * math.Sin(2*math.Pi*s.phase)
		samples[i][0] = v
		samples[i][1] = v
		s.pos++
	}
	return len(samples), true
}

func (s *sweep) Err() error { return nil }

// tone returns a finite square tone, falling back to silence on an invalid frequency
func tone(sr beep.SampleRate, freq float64, d time.Duration) beep.Streamer {
	s, err := generators.SquareTone(sr, freq)
	if err != nil {
		return generators.Silence(sr.N(d))
	}
	return beep.Take(sr.N(d), s)
}
