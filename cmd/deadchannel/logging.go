package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

const (
	logDir      = "logs"
	logFileName = "deadchannel.log"
	maxLogSize  = 10 * 1024 * 1024
)

// setupLogging returns a disabled logger unless debug is set
// With debug, output goes to logs/deadchannel.log, never to the terminal the game draws on
// A log file over maxLogSize is rotated to a timestamped name first
func setupLogging(debug bool) (zerolog.Logger, *os.File) {
	if !debug {
		return zerolog.Nop(), nil
	}

	if err := os.MkdirAll(logDir, 0o755); err != nil {
		return zerolog.Nop(), nil
	}

	logPath := filepath.Join(logDir, logFileName)
	if info, err := os.Stat(logPath); err == nil && info.Size() > maxLogSize {
		rotated := filepath.Join(logDir, fmt.Sprintf("deadchannel-%s.log", time.Now().Format("20060102-150405")))
		_ = os.Rename(logPath, rotated)
	}

	f, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return zerolog.Nop(), nil
	}

	log := zerolog.New(f).
		Level(zerolog.DebugLevel).
		With().
		Timestamp().
		Str("session", uuid.NewString()).
		Logger()
	return log, f
}
