// Package config loads user preferences through viper
// Sources, lowest priority first: built-in defaults, the preferences file, DEADCHANNEL_* environment variables
package config

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/viper"

	"github.com/lixenwraith/deadchannel/engine"
	"github.com/lixenwraith/deadchannel/input"
	"github.com/lixenwraith/deadchannel/parameter"
)

//go:embed defaults.toml
var defaultPreferences []byte

const (
	// EnvPrefix prefixes environment overrides, e.g. DEADCHANNEL_AUDIO_VOLUME
	EnvPrefix = "DEADCHANNEL"

	preferencesDir  = ".deadchannel"
	preferencesFile = "preferences.toml"
	backupSuffix    = ".backup"
)

var ErrInvalid = errors.New("invalid preference")

// Config is the immutable preference snapshot handed to the launcher
type Config struct {
	Screen   ScreenConfig   `mapstructure:"screen"`
	Input    InputConfig    `mapstructure:"input"`
	Audio    AudioConfig    `mapstructure:"audio"`
	Gameplay GameplayConfig `mapstructure:"gameplay"`
}

// ScreenConfig sizes the logical play field
type ScreenConfig struct {
	Width   int `mapstructure:"width"`
	Height  int `mapstructure:"height"`
	FrameMs int `mapstructure:"frame_ms"`
}

type InputConfig struct {
	// Bindings maps action names to key names
	Bindings      map[string][]string `mapstructure:"bindings"`
	HoldTimeoutMs int                 `mapstructure:"hold_timeout_ms"`
}

type AudioConfig struct {
	Enabled  bool    `mapstructure:"enabled"`
	MusicDir string  `mapstructure:"music_dir"`
	Volume   float64 `mapstructure:"volume"`
}

type GameplayConfig struct {
	PlayerLife         int     `mapstructure:"player_life"`
	PlayerAcceleration float64 `mapstructure:"player_acceleration"`
	RotationStep       int     `mapstructure:"rotation_step"`
	PrimaryCooldownMs  int     `mapstructure:"primary_cooldown_ms"`
	PrimarySpeed       float64 `mapstructure:"primary_speed"`
	EnemyBulletSpeed   float64 `mapstructure:"enemy_bullet_speed"`
	PowerUpLifetimeMs  int     `mapstructure:"powerup_lifetime_ms"`
	Endless            bool    `mapstructure:"endless"`
	Seed               uint64  `mapstructure:"seed"`
	Stage              string  `mapstructure:"stage"`
}

// Tuning converts gameplay preferences into the simulation tuning
func (g GameplayConfig) Tuning() engine.Tuning {
	return engine.Tuning{
		PlayerLife:         g.PlayerLife,
		PlayerAcceleration: g.PlayerAcceleration,
		RotationStep:       g.RotationStep,
		PrimaryThresholdMs: g.PrimaryCooldownMs,
		PrimarySpeed:       g.PrimarySpeed,
		EnemyBulletSpeed:   g.EnemyBulletSpeed,
		PowerUpLifetimeMs:  g.PowerUpLifetimeMs,
		Endless:            g.Endless,
	}
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("screen.width", parameter.DefaultFieldWidth)
	v.SetDefault("screen.height", parameter.DefaultFieldHeight)
	v.SetDefault("screen.frame_ms", parameter.NominalStepMs)

	bindings := make(map[string]any)
	for action, keys := range input.DefaultBindings() {
		bindings[action] = keys
	}
	v.SetDefault("input.bindings", bindings)
	v.SetDefault("input.hold_timeout_ms", parameter.KeyHoldTimeout.Milliseconds())

	v.SetDefault("audio.enabled", true)
	v.SetDefault("audio.music_dir", "music")
	v.SetDefault("audio.volume", parameter.AudioDefaultVolume)

	v.SetDefault("gameplay.player_life", parameter.PlayerLife)
	v.SetDefault("gameplay.player_acceleration", parameter.PlayerAcceleration)
	v.SetDefault("gameplay.rotation_step", parameter.PlayerRotationStep)
	v.SetDefault("gameplay.primary_cooldown_ms", parameter.PrimaryThresholdMs)
	v.SetDefault("gameplay.primary_speed", parameter.PrimarySpeed)
	v.SetDefault("gameplay.enemy_bullet_speed", parameter.EnemyBulletSpeed)
	v.SetDefault("gameplay.powerup_lifetime_ms", parameter.PowerUpLifetimeMs)
	v.SetDefault("gameplay.endless", false)
	v.SetDefault("gameplay.seed", 0)
	v.SetDefault("gameplay.stage", "")
}

// DefaultPath returns ~/.deadchannel/preferences.toml
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("locate home directory: %w", err)
	}
	return filepath.Join(home, preferencesDir, preferencesFile), nil
}

// Default returns the built-in preferences without touching the filesystem
func Default() Config {
	v := viper.New()
	setDefaults(v)
	var cfg Config
	// Built-in defaults always decode
	_ = v.Unmarshal(&cfg)
	return cfg
}

// Load reads preferences from path, or DefaultPath when empty
// A missing file is created from the built-in document; a malformed one is moved aside to
// <path>.backup and replaced. Filesystem failures fall back to defaults and are only logged
func Load(path string, log zerolog.Logger) (Config, error) {
	if path == "" {
		p, err := DefaultPath()
		if err != nil {
			log.Warn().Err(err).Msg("using built-in preferences")
		}
		path = p
	}

	v := viper.New()
	setDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		readPreferences(v, path, log)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decode preferences: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	log.Debug().Str("path", path).Bool("endless", cfg.Gameplay.Endless).Msg("preferences loaded")
	return cfg, nil
}

func readPreferences(v *viper.Viper, path string, log zerolog.Logger) {
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		if err := writeDefaults(path); err != nil {
			log.Warn().Err(err).Str("path", path).Msg("cannot create preferences file")
			return
		}
		log.Info().Str("path", path).Msg("preferences file created")
	}

	v.SetConfigFile(path)
	v.SetConfigType("toml")
	err := v.ReadInConfig()
	if err == nil {
		return
	}

	log.Warn().Err(err).Str("path", path).Msg("malformed preferences, restoring defaults")
	if err := os.Rename(path, path+backupSuffix); err != nil {
		log.Warn().Err(err).Msg("cannot back up preferences file")
		return
	}
	if err := writeDefaults(path); err != nil {
		log.Warn().Err(err).Msg("cannot restore preferences file")
		return
	}
	if err := v.ReadInConfig(); err != nil {
		log.Warn().Err(err).Msg("restored preferences unreadable")
	}
}

func writeDefaults(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	return os.WriteFile(path, defaultPreferences, 0o644)
}

// Validate checks value ranges and binding names
func (c Config) Validate() error {
	switch {
	case c.Screen.Width <= 0 || c.Screen.Height <= 0:
		return fmt.Errorf("%w: screen size %dx%d", ErrInvalid, c.Screen.Width, c.Screen.Height)
	case c.Screen.FrameMs <= 0:
		return fmt.Errorf("%w: screen.frame_ms %d", ErrInvalid, c.Screen.FrameMs)
	case c.Input.HoldTimeoutMs <= 0:
		return fmt.Errorf("%w: input.hold_timeout_ms %d", ErrInvalid, c.Input.HoldTimeoutMs)
	case c.Audio.Volume < 0 || c.Audio.Volume > 1:
		return fmt.Errorf("%w: audio.volume %v outside [0, 1]", ErrInvalid, c.Audio.Volume)
	case c.Gameplay.PlayerLife < 1:
		return fmt.Errorf("%w: gameplay.player_life %d", ErrInvalid, c.Gameplay.PlayerLife)
	case c.Gameplay.PrimaryCooldownMs < 1:
		return fmt.Errorf("%w: gameplay.primary_cooldown_ms %d", ErrInvalid, c.Gameplay.PrimaryCooldownMs)
	case c.Gameplay.PowerUpLifetimeMs < 1:
		return fmt.Errorf("%w: gameplay.powerup_lifetime_ms %d", ErrInvalid, c.Gameplay.PowerUpLifetimeMs)
	}
	for name := range c.Input.Bindings {
		if _, ok := input.ActionByName(name); !ok {
			return fmt.Errorf("%w: %w %q", ErrInvalid, input.ErrUnknownAction, name)
		}
	}
	return nil
}
