package audio

import (
	"sync"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"
	"github.com/rs/zerolog"

	"github.com/lixenwraith/deadchannel/event"
	"github.com/lixenwraith/deadchannel/parameter"
)

const (
	sampleRate = beep.SampleRate(parameter.AudioSampleRate)
)

// SoundManager owns the speaker and mixes music with event-driven effects
// Every method is safe to call when the speaker failed to initialize
type SoundManager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	master      *effects.Volume
	seed        int64
	initialized bool
	log         zerolog.Logger
}

func NewSoundManager(log zerolog.Logger) *SoundManager {
	mixer := &beep.Mixer{}
	return &SoundManager{
		mixer:  mixer,
		master: &effects.Volume{Streamer: mixer, Base: 2},
		seed:   1,
		log:    log,
	}
}

// Initialize opens the speaker; music, when non-nil, is mixed under the effects
func (sm *SoundManager) Initialize(music beep.Streamer) error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}

	err := speaker.Init(sampleRate, sampleRate.N(parameter.AudioBufferDuration))
	if err != nil {
		return err
	}

	if music != nil {
		speaker.Lock()
		sm.mixer.Add(music)
		speaker.Unlock()
	}
	speaker.Play(sm.master)
	sm.initialized = true
	sm.log.Debug().Int("rate", int(sampleRate)).Msg("speaker initialized")
	return nil
}

// Cleanup stops all sounds and detaches the mixer
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	speaker.Clear()
	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()
	sm.initialized = false
}

// ToggleMute silences or restores every stream, returns the new muted state
func (sm *SoundManager) ToggleMute() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		speaker.Lock()
		defer speaker.Unlock()
	}
	sm.master.Silent = !sm.master.Silent
	return sm.master.Silent
}

func (sm *SoundManager) Muted() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.master.Silent
}

// HandleEvent plays the effect mapped to a drained game event, if any
func (sm *SoundManager) HandleEvent(ev event.GameEvent) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}
	s := sm.effect(ev.Type)
	if s == nil {
		return
	}
	speaker.Lock()
	sm.mixer.Add(s)
	speaker.Unlock()
}

// effect builds a finite streamer for t, nil when the event is silent
func (sm *SoundManager) effect(t event.EventType) beep.Streamer {
	switch t {
	case event.EventPrimaryFired:
		return newFade(tone(sampleRate, 880, parameter.SoundShotDuration), sampleRate, 0, 40)
	case event.EventSecondaryFired:
		return newFade(newSweep(sampleRate, 600, 200, parameter.SoundShotDuration*2), sampleRate, 0, 10)
	case event.EventEnemyDestroyed, event.EventFragmentBurst:
		sm.seed++
		return beep.Take(sampleRate.N(parameter.SoundExplosionDuration),
			newFade(NewExplosionGenerator(sampleRate, sm.seed, 80), sampleRate, 0, 12))
	case event.EventGameOver:
		sm.seed++
		return beep.Take(sampleRate.N(parameter.SoundExplosionDuration*4),
			newFade(NewExplosionGenerator(sampleRate, sm.seed, 50), sampleRate, 0, 3))
	case event.EventPlayerHit, event.EventWeaponOverheated, event.EventPowerUpRejected:
		return beep.Take(sampleRate.N(parameter.SoundHitDuration),
			newFade(NewBuzzGenerator(sampleRate, 120), sampleRate, parameter.SoundHitDuration/8, 4))
	case event.EventPowerUpConsumed, event.EventWeaponSelected:
		return newSweep(sampleRate, 400, 1200, parameter.SoundPickupDuration)
	default:
		return nil
	}
}
