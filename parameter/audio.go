package parameter

import "time"

// Audio Engine
const (
	// AudioSampleRate is the speaker sample rate
	AudioSampleRate = 44100

	// AudioBufferDuration is the speaker buffer length
	AudioBufferDuration = 100 * time.Millisecond

	// AudioDefaultVolume is the music volume in [0, 1]
	AudioDefaultVolume = 0.7
)

// Sound Effects
const (
	SoundShotDuration      = 40 * time.Millisecond
	SoundExplosionDuration = 250 * time.Millisecond
	SoundPickupDuration    = 120 * time.Millisecond
	SoundHitDuration       = 150 * time.Millisecond
)
