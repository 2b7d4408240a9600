package stage

import (
	"embed"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"
)

//go:embed stages/*.toml
var builtin embed.FS

// DefaultStage is the name of the built-in stage used when no file is given
const DefaultStage = "channel1"

// Parse decodes stage data; format is a file extension such as ".toml" or ".xml"
func Parse(data []byte, format string) ([]Event, error) {
	switch strings.ToLower(format) {
	case ".toml":
		return ParseTOML(data)
	case ".xml":
		return ParseXML(data)
	default:
		return nil, fmt.Errorf("%w %q", ErrUnknownFormat, format)
	}
}

// Load reads and validates a stage file into a timeline
func Load(path string, log zerolog.Logger) (*Timeline, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read stage: %w", err)
	}
	events, err := Parse(data, filepath.Ext(path))
	if err != nil {
		return nil, fmt.Errorf("stage %s: %w", path, err)
	}
	return newLoaded(path, events, log), nil
}

// LoadBuiltin loads a stage embedded in the binary by name
func LoadBuiltin(name string, log zerolog.Logger) (*Timeline, error) {
	path := "stages/" + name + ".toml"
	data, err := builtin.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("builtin stage %q: %w", name, err)
	}
	events, err := ParseTOML(data)
	if err != nil {
		return nil, fmt.Errorf("builtin stage %q: %w", name, err)
	}
	return newLoaded(name, events, log), nil
}

func newLoaded(source string, events []Event, log zerolog.Logger) *Timeline {
	tl := NewTimeline(events)
	last, _ := tl.LastFrame()
	log.Info().
		Str("source", source).
		Int("events", tl.Len()).
		Int64("last_frame", last).
		Msg("stage loaded")
	return tl
}
