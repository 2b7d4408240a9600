package main

import (
	"flag"
	"fmt"
	"os"
	"runtime/debug"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/deadchannel/config"
)

func main() {
	var screen tcell.Screen

	// Panic Recovery: Ensure terminal is reset even if the game crashes
	defer func() {
		if r := recover(); r != nil {
			if screen != nil {
				screen.Fini()
			}
			fmt.Fprintf(os.Stderr, "\n\x1b[31mDEADCHANNEL CRASHED: %v\x1b[0m\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())
			os.Exit(1)
		}
	}()

	var opts options
	var help bool
	flag.StringVar(&opts.configPath, "config", "", "preferences file (default ~/.deadchannel/preferences.toml)")
	flag.StringVar(&opts.stage, "stage", "", "stage file (.toml or .xml) or built-in stage name")
	flag.BoolVar(&opts.debug, "debug", false, "write a debug log to logs/deadchannel.log")
	flag.Uint64Var(&opts.seed, "seed", 0, "random seed, 0 picks one from the clock")
	flag.BoolVar(&opts.endless, "endless", false, "spawn random enemies endlessly")
	flag.BoolVar(&opts.mute, "mute", false, "start with audio muted")
	flag.BoolVar(&help, "help", false, "show usage")
	flag.Parse()

	if help {
		flag.Usage()
		return
	}

	log, logFile := setupLogging(opts.debug)
	if logFile != nil {
		defer logFile.Close()
	}

	cfg, err := config.Load(opts.configPath, log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "preferences: %v\n", err)
		os.Exit(1)
	}

	screen, err = tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create screen: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize terminal: %v\n", err)
		os.Exit(1)
	}

	g, err := newGame(opts, cfg, screen, log)
	if err != nil {
		screen.Fini()
		log.Error().Err(err).Msg("startup failed")
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}

	g.startAudio(cfg.Audio, opts.mute)
	g.loop(time.Duration(cfg.Screen.FrameMs) * time.Millisecond)
	g.stopAudio()

	// Normal exit terminal cleanup
	screen.Fini()
	log.Info().Int64("frame", g.world.Frame).Msg("exit")
}
