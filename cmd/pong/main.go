package main

import (
	"flag"
	"fmt"
	"os"
	"os/signal"
	"runtime/debug"
	"syscall"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/pong/config"
	"github.com/lixenwraith/pong/engine"
	"github.com/lixenwraith/pong/input"
	"github.com/lixenwraith/pong/logfile"
	"github.com/lixenwraith/pong/terminal"
)

var (
	configPath    = flag.String("config", "", "Path to TOML config file")
	debugFlag     = flag.Bool("debug", false, "Write debug log to logs/pong.log")
	colorModeFlag = flag.String("color", "", "Color mode: auto, truecolor, 256 (overrides config)")
	seedFlag      = flag.Uint64("seed", 0, "Serve randomness seed, 0 for time-based")
)

func main() {
	// Panic Recovery: Ensure terminal is reset even if the game crashes
	defer func() {
		if r := recover(); r != nil {
			terminal.EmergencyReset(os.Stdout)
			fmt.Fprintf(os.Stderr, "\n\x1b[31mPONG CRASHED: %v\x1b[0m\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())
			os.Exit(1)
		}
	}()

	flag.Parse()

	cfg, err := config.Load(*configPath, os.LookupEnv)
	if err != nil {
		fmt.Fprintf(os.Stderr, "pong: %v\n", err)
		os.Exit(1)
	}
	applyFlags(cfg)

	if logFile := logfile.Setup(cfg.Debug); logFile != nil {
		defer logFile.Close()
	}

	if err := terminal.RequireTTY(int(os.Stdin.Fd())); err != nil {
		fmt.Fprintf(os.Stderr, "pong: %v\n", err)
		os.Exit(1)
	}

	colorMode, err := terminal.ParseColorMode(cfg.Display.Color)
	if err != nil {
		fmt.Fprintf(os.Stderr, "pong: %v\n", err)
		os.Exit(1)
	}

	bindings, err := input.BuildBindings(cfg.Keys)
	if err != nil {
		fmt.Fprintf(os.Stderr, "pong: keys: %v\n", err)
		os.Exit(1)
	}

	screen, err := terminal.Open(colorMode)
	if err != nil {
		fmt.Fprintf(os.Stderr, "pong: %v\n", err)
		os.Exit(1)
	}

	// SIGTERM and SIGHUP arrive outside the key stream
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGTERM, syscall.SIGHUP)
	go func() {
		sig := <-sigCh
		screen.PostEvent(tcell.NewEventInterrupt(sig))
	}()

	sess, err := newSession(screen, cfg, bindings, engine.NewMonotonicTimeProvider())
	if err == nil {
		err = sess.run()
	}
	screen.Fini()

	if err != nil {
		fmt.Fprintf(os.Stderr, "pong: %v\n", err)
		os.Exit(1)
	}
}

// applyFlags overrides config with explicitly set flags only
func applyFlags(cfg *config.Config) {
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "debug":
			cfg.Debug = *debugFlag
		case "color":
			cfg.Display.Color = *colorModeFlag
		case "seed":
			cfg.Seed = *seedFlag
		}
	})
}
