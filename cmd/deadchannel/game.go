package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/gopxl/beep"
	"github.com/rs/zerolog"

	"github.com/lixenwraith/deadchannel/audio"
	"github.com/lixenwraith/deadchannel/config"
	"github.com/lixenwraith/deadchannel/engine"
	"github.com/lixenwraith/deadchannel/event"
	"github.com/lixenwraith/deadchannel/input"
	"github.com/lixenwraith/deadchannel/render"
	"github.com/lixenwraith/deadchannel/stage"
	"github.com/lixenwraith/deadchannel/system"
)

// options are the launcher flags layered over preferences
type options struct {
	configPath string
	stage      string
	debug      bool
	seed       uint64
	endless    bool
	mute       bool
}

// game binds the simulation to the terminal, the mapper and the audio outputs
type game struct {
	screen   tcell.Screen
	world    *engine.World
	director *engine.Director
	renderer *render.Renderer
	mapper   *input.Mapper
	clock    *engine.FrameClock

	sound *audio.SoundManager
	music *audio.MusicPlayer

	pending []input.Intent
	log     zerolog.Logger
}

// resolveTimeline picks the stage source: a path with an extension, a built-in name,
// or none at all for a pure endless run
func resolveTimeline(name string, endless bool, log zerolog.Logger) (*stage.Timeline, error) {
	switch {
	case name == "" && endless:
		return nil, nil
	case name == "":
		return stage.LoadBuiltin(stage.DefaultStage, log)
	case filepath.Ext(name) != "":
		return stage.Load(name, log)
	default:
		return stage.LoadBuiltin(name, log)
	}
}

func newGame(opts options, cfg config.Config, screen tcell.Screen, log zerolog.Logger) (*game, error) {
	stageName := cfg.Gameplay.Stage
	if opts.stage != "" {
		stageName = opts.stage
	}
	endless := cfg.Gameplay.Endless || opts.endless

	timeline, err := resolveTimeline(stageName, endless, log)
	if err != nil {
		return nil, err
	}
	// A stage-less run has nothing else to spawn
	if timeline == nil {
		endless = true
	}

	seed := cfg.Gameplay.Seed
	if opts.seed != 0 {
		seed = opts.seed
	}
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}

	tuning := cfg.Gameplay.Tuning()
	tuning.Endless = endless

	events := event.NewEventQueue()
	world := engine.NewWorld(engine.WorldConfig{
		Width:  float64(cfg.Screen.Width),
		Height: float64(cfg.Screen.Height),
		Seed:   seed,
		Tuning: tuning,
		Events: events,
		Log:    log,
	})

	mapper, err := input.NewMapper(cfg.Input.Bindings, time.Duration(cfg.Input.HoldTimeoutMs)*time.Millisecond)
	if err != nil {
		return nil, fmt.Errorf("input bindings: %w", err)
	}

	g := &game{
		screen:   screen,
		world:    world,
		director: system.NewDirector(world, timeline),
		renderer: render.NewRenderer(screen),
		mapper:   mapper,
		clock:    engine.NewFrameClock(engine.RealTimeProvider{}),
		log:      log,
	}

	log.Info().
		Uint64("seed", seed).
		Bool("endless", endless).
		Str("stage", stageName).
		Msg("game created")
	return g, nil
}

// startAudio opens the speaker and the playlist; any failure leaves the game silent
func (g *game) startAudio(cfg config.AudioConfig, mute bool) {
	if !cfg.Enabled {
		return
	}

	g.sound = audio.NewSoundManager(g.log)
	tracks, err := audio.ScanPlaylist(cfg.MusicDir)
	if err != nil {
		g.log.Info().Err(err).Msg("no music")
	} else if g.music, err = audio.NewMusicPlayer(tracks, cfg.Volume, g.world.Events, g.log); err != nil {
		g.log.Warn().Err(err).Msg("music player unavailable")
	}

	var stream beep.Streamer
	if g.music != nil {
		stream = g.music
	}
	if err := g.sound.Initialize(stream); err != nil {
		g.log.Warn().Err(err).Msg("audio disabled")
		g.sound = nil
		g.music = nil
		return
	}

	if g.music != nil {
		if err := g.music.Play(); err != nil && !errors.Is(err, audio.ErrNoPlayableTrack) {
			g.log.Warn().Err(err).Msg("music playback")
		}
	}
	if mute {
		g.sound.ToggleMute()
	}
}

func (g *game) stopAudio() {
	if g.music != nil {
		g.music.Stop()
	}
	if g.sound != nil {
		g.sound.Cleanup()
	}
}

// handleEvent processes one terminal event, returns false to quit
func (g *game) handleEvent(ev tcell.Event, now time.Time) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		for _, in := range g.mapper.HandleEvent(ev, now) {
			if !g.apply(in) {
				return false
			}
		}
	case *tcell.EventResize:
		g.screen.Sync()
		g.releaseHeld()
	case *tcell.EventFocus:
		if !ev.Focused {
			g.releaseHeld()
		}
	}
	return true
}

// releaseHeld sends a release for every latched key
func (g *game) releaseHeld() {
	for _, in := range g.mapper.ReleaseAll() {
		g.apply(in)
	}
}

// apply routes meta intents immediately and queues simulation intents for the next tick
func (g *game) apply(in input.Intent) bool {
	switch {
	case in.Type == input.IntentQuit:
		return false
	case in.Type == input.IntentToggleMute:
		if g.sound != nil {
			muted := g.sound.ToggleMute()
			g.log.Debug().Bool("muted", muted).Msg("mute toggled")
		}
	case in.Simulation():
		g.pending = append(g.pending, in)
	}
	return true
}

// step runs one tick, drains events to the presentation layers and draws
func (g *game) step(now time.Time) engine.State {
	for _, in := range g.mapper.Expire(now) {
		g.apply(in)
	}

	state := g.director.State()
	if state == engine.Running {
		state = g.director.Tick(g.pending, g.clock.Elapsed())
	}
	g.pending = g.pending[:0]

	for _, ev := range g.world.Events.Consume() {
		g.renderer.HUD().HandleEvent(ev, now)
		if g.sound != nil {
			g.sound.HandleEvent(ev)
		}
		if ev.Type == event.EventGameOver {
			if p, ok := ev.Payload.(*event.GameOverPayload); ok {
				g.log.Info().Int("experience", p.Experience).Int64("frame", p.Frame).Msg("game over")
			}
		}
	}

	g.renderer.Draw(g.world, now)
	return state
}

// loop paces ticks with a ticker and polls input on its own goroutine until quit
func (g *game) loop(frame time.Duration) {
	events := make(chan tcell.Event, 256)
	quit := make(chan struct{})
	go func() {
		defer func() {
			if r := recover(); r != nil {
				g.screen.Fini()
				fmt.Fprintf(os.Stderr, "\r\ninput poller crashed: %v\r\n", r)
				os.Exit(1)
			}
		}()
		for {
			ev := g.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-quit:
				return
			}
		}
	}()
	defer close(quit)

	ticker := time.NewTicker(frame)
	defer ticker.Stop()

	for {
		select {
		case ev := <-events:
			if !g.handleEvent(ev, time.Now()) {
				return
			}
		case now := <-ticker.C:
			g.step(now)
		}
	}
}
