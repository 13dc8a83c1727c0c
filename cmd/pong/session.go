package main

import (
	"fmt"
	"log"
	"os"
	"runtime/debug"
	"strings"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/pong/config"
	"github.com/lixenwraith/pong/constants"
	"github.com/lixenwraith/pong/engine"
	"github.com/lixenwraith/pong/input"
	"github.com/lixenwraith/pong/render"
	"github.com/lixenwraith/pong/systems"
	"github.com/lixenwraith/pong/terminal"
)

// session is one terminal match from first frame to quit
type session struct {
	screen   tcell.Screen
	loop     *engine.Loop
	renderer *render.TerminalRenderer
	tracker  *input.KeyTracker
	clock    engine.TimeProvider
	timer    *engine.FrameTimer
	interval time.Duration
}

// newSession sizes the field from the screen once; later resizes only rescale drawing
func newSession(screen tcell.Screen, cfg *config.Config, bindings input.Bindings, clock engine.TimeProvider) (*session, error) {
	cols, rows := screen.Size()
	viewW := float64(cols) * cfg.Display.CellWidth
	viewH := float64(rows) * cfg.Display.CellHeight
	if err := cfg.ValidateField(viewW, viewH); err != nil {
		return nil, fmt.Errorf("terminal %dx%d: %w", cols, rows, err)
	}

	world := engine.NewWorld(viewW, viewH, cfg.Tuning(), engine.NewRandomSource(cfg.Seed))
	loop := engine.NewLoop(world)
	systems.Install(loop)

	renderer := render.NewTerminalRenderer(screen, viewW, viewH)
	renderer.SetFooter(footerText(cfg.Keys))

	log.Printf("match %s: field %.0fx%.0f (%dx%d cells), seed %d", world.MatchID, viewW, viewH, cols, rows, cfg.Seed)

	return &session{
		screen:   screen,
		loop:     loop,
		renderer: renderer,
		tracker:  input.NewKeyTracker(bindings, cfg.Timing.HoldWindow.Duration),
		clock:    clock,
		timer:    engine.NewFrameTimer(clock),
		interval: cfg.Timing.FrameInterval.Duration,
	}, nil
}

// run drives frames until a quit key, an interrupt event, or screen shutdown
func (s *session) run() error {
	eventChan := make(chan tcell.Event, constants.EventQueueSize)
	done := make(chan struct{})
	defer close(done)
	go s.pollEvents(eventChan, done)

	frameTicker := time.NewTicker(s.interval)
	defer frameTicker.Stop()

	s.renderer.RenderFrame(s.loop.World())

	for {
		select {
		case ev, ok := <-eventChan:
			if !ok || s.handleEvent(ev) {
				w := s.loop.World()
				l, r := w.Score.Read()
				log.Printf("match %s: shutdown at frame %d, score %d-%d, %s",
					w.MatchID, w.FrameNumber, l, r, w.Stats.Format())
				return nil
			}

		case <-frameTicker.C:
			now := s.clock.Now()
			s.loop.Step(s.tracker.Snapshot(now), s.timer.Tick())
			s.renderer.RenderFrame(s.loop.World())
		}
	}
}

// handleEvent returns true when the session should end
func (s *session) handleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return s.tracker.HandleEvent(ev, s.clock.Now())
	case *tcell.EventResize:
		cols, rows := ev.Size()
		s.renderer.Resize(cols, rows)
		s.screen.Sync()
	case *tcell.EventInterrupt:
		return true
	}
	return false
}

// pollEvents forwards screen events until the screen is finalised or the session ends
func (s *session) pollEvents(out chan<- tcell.Event, done <-chan struct{}) {
	defer func() {
		if r := recover(); r != nil {
			terminal.EmergencyReset(os.Stdout)
			fmt.Fprintf(os.Stderr, "\r\n\x1b[31mEVENT POLLER CRASHED: %v\x1b[0m\r\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\r\n%s\r\n", debug.Stack())
			os.Exit(1)
		}
	}()

	for {
		ev := s.screen.PollEvent()
		if ev == nil {
			close(out)
			return
		}
		select {
		case out <- ev:
		case <-done:
			return
		}
	}
}

// footerText describes the configured bindings
func footerText(keys map[string]string) string {
	quit := "q"
	if k, ok := keys["quit"]; ok {
		quit = k
	}
	return fmt.Sprintf("%s/%s left   %s/%s right   %s quit",
		strings.ToUpper(keys["left_up"]), strings.ToUpper(keys["left_down"]),
		strings.ToUpper(keys["right_up"]), strings.ToUpper(keys["right_down"]),
		quit)
}
