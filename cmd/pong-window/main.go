package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/lixenwraith/pong/config"
	"github.com/lixenwraith/pong/engine"
	"github.com/lixenwraith/pong/logfile"
	"github.com/lixenwraith/pong/systems"
	"github.com/lixenwraith/pong/window"
)

var (
	configPath = flag.String("config", "", "Path to TOML config file")
	debugFlag  = flag.Bool("debug", false, "Write debug log to logs/pong.log")
	seedFlag   = flag.Uint64("seed", 0, "Serve randomness seed, 0 for time-based")
)

func main() {
	flag.Parse()

	cfg, err := config.Load(*configPath, os.LookupEnv)
	if err != nil {
		fmt.Fprintf(os.Stderr, "pong-window: %v\n", err)
		os.Exit(1)
	}
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "debug":
			cfg.Debug = *debugFlag
		case "seed":
			cfg.Seed = *seedFlag
		}
	})

	if logFile := logfile.Setup(cfg.Debug); logFile != nil {
		defer logFile.Close()
	}

	keys, err := window.BuildKeyBindings(cfg.Keys)
	if err != nil {
		fmt.Fprintf(os.Stderr, "pong-window: keys: %v\n", err)
		os.Exit(1)
	}

	viewW, viewH := float64(cfg.Window.Width), float64(cfg.Window.Height)
	if err := cfg.ValidateField(viewW, viewH); err != nil {
		fmt.Fprintf(os.Stderr, "pong-window: %v\n", err)
		os.Exit(1)
	}

	world := engine.NewWorld(viewW, viewH, cfg.Tuning(), engine.NewRandomSource(cfg.Seed))
	loop := engine.NewLoop(world)
	systems.Install(loop)
	log.Printf("match %s: window %dx%d, seed %d", world.MatchID, cfg.Window.Width, cfg.Window.Height, cfg.Seed)

	ebiten.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	ebiten.SetWindowTitle(cfg.Window.Title)

	if err := ebiten.RunGame(window.NewGame(loop, keys)); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Printf("match %s: %v", world.MatchID, err)
		fmt.Fprintf(os.Stderr, "pong-window: %v\n", err)
		os.Exit(1)
	}

	l, r := world.Score.Read()
	log.Printf("match %s: shutdown at frame %d, score %d-%d, %s", world.MatchID, world.FrameNumber, l, r, world.Stats.Format())
}
