package audio

import (
	"fmt"
	"math"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/vorbis"
	"github.com/gopxl/beep/wav"
	"github.com/rs/zerolog"

	"github.com/lixenwraith/deadchannel/event"
)

// Track is one playlist entry with metadata derived from its file name
type Track struct {
	Path string
	Info map[string][]string
}

// ScanPlaylist lists *.ogg and *.wav files in dir in lexical order
func ScanPlaylist(dir string) ([]Track, error) {
	var paths []string
	for _, pattern := range []string{"*.ogg", "*.wav"} {
		matches, err := filepath.Glob(filepath.Join(dir, pattern))
		if err != nil {
			return nil, err
		}
		paths = append(paths, matches...)
	}
	if len(paths) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrEmptyPlaylist, dir)
	}
	sort.Strings(paths)

	tracks := make([]Track, len(paths))
	for i, p := range paths {
		tracks[i] = Track{Path: p, Info: TrackInfo(p)}
	}
	return tracks, nil
}

// TrackInfo parses "artist - title.ext"; names without a separator only carry a title
func TrackInfo(path string) map[string][]string {
	name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	info := make(map[string][]string, 2)
	if artist, title, ok := strings.Cut(name, " - "); ok {
		info["artist"] = []string{strings.TrimSpace(artist)}
		info["title"] = []string{strings.TrimSpace(title)}
		return info
	}
	info["title"] = []string{strings.TrimSpace(name)}
	return info
}

// decodeFile opens a track by extension; the returned streamer owns the file
func decodeFile(path string) (beep.StreamSeekCloser, beep.Format, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, beep.Format{}, err
	}

	var (
		s      beep.StreamSeekCloser
		format beep.Format
	)
	switch strings.ToLower(filepath.Ext(path)) {
	case ".ogg":
		s, format, err = vorbis.Decode(f)
	case ".wav":
		s, format, err = wav.Decode(f)
	default:
		err = fmt.Errorf("%w: %s", ErrUnsupportedFormat, path)
	}
	if err != nil {
		f.Close()
		return nil, beep.Format{}, err
	}
	return s, format, nil
}

// MusicPlayer plays a wrapping playlist as a single endless beep.Streamer
// Tracks that fail to decode are logged and skipped
type MusicPlayer struct {
	mu      sync.Mutex
	tracks  []Track
	index   int
	playing bool

	current beep.StreamSeekCloser
	stream  beep.Streamer
	volume  *effects.Volume

	rate   beep.SampleRate
	events *event.EventQueue
	log    zerolog.Logger
}

// NewMusicPlayer builds a player over tracks; events receives a TrackStarted per loaded track
func NewMusicPlayer(tracks []Track, volume float64, events *event.EventQueue, log zerolog.Logger) (*MusicPlayer, error) {
	if len(tracks) == 0 {
		return nil, ErrEmptyPlaylist
	}
	p := &MusicPlayer{
		tracks: tracks,
		index:  -1,
		volume: &effects.Volume{Base: 2},
		rate:   sampleRate,
		events: events,
		log:    log,
	}
	p.setVolume(volume)
	return p, nil
}

// Play starts or resumes playback, loading the first track when needed
func (p *MusicPlayer) Play() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.current == nil {
		if err := p.loadNext(); err != nil {
			return err
		}
	}
	p.playing = true
	return nil
}

// Stop halts playback and releases the current track; Play restarts from the next one
func (p *MusicPlayer) Stop() {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.playing = false
	p.closeCurrent()
}

// LoadNext advances to the following track without changing the play state
func (p *MusicPlayer) LoadNext() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.loadNext()
}

// NextTrack skips to the following track and plays it
func (p *MusicPlayer) NextTrack() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if err := p.loadNext(); err != nil {
		return err
	}
	p.playing = true
	return nil
}

// Current returns the loaded track
func (p *MusicPlayer) Current() (Track, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.current == nil || p.index < 0 {
		return Track{}, false
	}
	return p.tracks[p.index], true
}

func (p *MusicPlayer) Playing() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.playing
}

// SetVolume sets a linear volume in [0, 1]
func (p *MusicPlayer) SetVolume(v float64) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.setVolume(v)
}

func (p *MusicPlayer) setVolume(v float64) {
	if v <= 0 {
		p.volume.Silent = true
		return
	}
	p.volume.Silent = false
	p.volume.Volume = math.Log2(min(v, 1))
}

// loadNext tries each remaining track once, starting after the current index
func (p *MusicPlayer) loadNext() error {
	p.closeCurrent()

	for range p.tracks {
		p.index = (p.index + 1) % len(p.tracks)
		t := p.tracks[p.index]

		s, format, err := decodeFile(t.Path)
		if err != nil {
			p.log.Warn().Err(err).Str("track", t.Path).Msg("skipping track")
			continue
		}

		p.current = s
		var stream beep.Streamer = s
		if format.SampleRate != p.rate {
			stream = beep.Resample(4, format.SampleRate, p.rate, s)
		}
		p.stream = stream
		p.volume.Streamer = stream

		p.log.Debug().Str("track", t.Path).Msg("track loaded")
		if p.events != nil {
			p.events.Push(event.GameEvent{
				Type:    event.EventTrackStarted,
				Payload: &event.TrackPayload{Info: t.Info},
			})
		}
		return nil
	}
	return ErrNoPlayableTrack
}

func (p *MusicPlayer) closeCurrent() {
	if p.current == nil {
		return
	}
	if err := p.current.Close(); err != nil {
		p.log.Debug().Err(err).Msg("closing track")
	}
	p.current = nil
	p.stream = nil
	p.volume.Streamer = nil
}

// Stream fills samples with music or silence; it never reports exhaustion
// A finished track rolls over to the next one within the same call
func (p *MusicPlayer) Stream(samples [][2]float64) (n int, ok bool) {
	p.mu.Lock()
	defer p.mu.Unlock()

	filled, rollovers := 0, 0
	for filled < len(samples) && p.playing && p.current != nil {
		got, more := p.volume.Stream(samples[filled:])
		filled += got
		if more && got > 0 {
			continue
		}
		// A whole lap of empty tracks stops playback
		rollovers++
		if rollovers > len(p.tracks) || p.loadNext() != nil {
			p.playing = false
		}
	}
	for i := filled; i < len(samples); i++ {
		samples[i] = [2]float64{}
	}
	return len(samples), true
}

func (p *MusicPlayer) Err() error { return nil }
