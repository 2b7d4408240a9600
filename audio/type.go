package audio

import (
	"errors"
)

// Sentinel errors
var (
	ErrEmptyPlaylist     = errors.New("empty playlist")
	ErrUnsupportedFormat = errors.New("unsupported audio format")
	ErrNoPlayableTrack   = errors.New("no playable track")
)
