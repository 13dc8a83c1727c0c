package main

import (
	"errors"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/pong/config"
	"github.com/lixenwraith/pong/constants"
	"github.com/lixenwraith/pong/engine"
	"github.com/lixenwraith/pong/input"
)

func newTestScreen(t *testing.T, cols, rows int) tcell.SimulationScreen {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("Failed to init screen: %v", err)
	}
	screen.SetSize(cols, rows)
	t.Cleanup(screen.Fini)
	return screen
}

func newTestSession(t *testing.T, screen tcell.Screen) *session {
	t.Helper()
	cfg := config.Default()
	cfg.Seed = 1
	bindings, err := input.BuildBindings(cfg.Keys)
	if err != nil {
		t.Fatalf("BuildBindings() error = %v", err)
	}
	sess, err := newSession(screen, cfg, bindings, engine.NewMonotonicTimeProvider())
	if err != nil {
		t.Fatalf("newSession() error = %v", err)
	}
	return sess
}

func TestSessionFieldFromScreen(t *testing.T) {
	screen := newTestScreen(t, 80, 24)
	sess := newTestSession(t, screen)

	w := sess.loop.World()
	if w.Viewport.X != 800 || w.Viewport.Y != 480 {
		t.Errorf("viewport = %v, want 800x480", w.Viewport)
	}
	if len(sess.loop.Systems()) != 5 {
		t.Errorf("systems = %d, want 5", len(sess.loop.Systems()))
	}
}

func TestSessionRejectsTinyScreen(t *testing.T) {
	screen := newTestScreen(t, 10, 3)
	cfg := config.Default()
	bindings, _ := input.BuildBindings(cfg.Keys)

	_, err := newSession(screen, cfg, bindings, engine.NewMonotonicTimeProvider())
	if !errors.Is(err, config.ErrInvalid) {
		t.Errorf("newSession(10x3) error = %v, want ErrInvalid", err)
	}
}

func TestSessionRunsUntilInterrupt(t *testing.T) {
	screen := newTestScreen(t, 80, 24)
	sess := newTestSession(t, screen)

	errCh := make(chan error, 1)
	go func() { errCh <- sess.run() }()

	time.Sleep(10 * constants.FrameUpdateInterval)
	if err := screen.PostEvent(tcell.NewEventInterrupt(nil)); err != nil {
		t.Fatalf("PostEvent() error = %v", err)
	}

	select {
	case err := <-errCh:
		if err != nil {
			t.Fatalf("run() error = %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("run() did not stop after interrupt")
	}

	if sess.loop.World().FrameNumber == 0 {
		t.Error("Expected frames to be simulated before interrupt")
	}
	if c, _, _, _ := screen.GetContent(0, 0); c != constants.WallChar {
		t.Errorf("top-left cell = %q, want wall", c)
	}
}

func TestHandleEventResize(t *testing.T) {
	screen := newTestScreen(t, 80, 24)
	sess := newTestSession(t, screen)

	if sess.handleEvent(tcell.NewEventResize(100, 30)) {
		t.Error("resize should not end the session")
	}
	if !sess.handleEvent(tcell.NewEventInterrupt(nil)) {
		t.Error("interrupt should end the session")
	}
	// Field keeps its startup size
	if w := sess.loop.World(); w.Viewport.X != 800 {
		t.Errorf("viewport width after resize = %v, want 800", w.Viewport.X)
	}
}

func TestFooterText(t *testing.T) {
	keys := config.Default().Keys
	if got, want := footerText(keys), "A/Z left   J/N right   q quit"; got != want {
		t.Errorf("footerText() = %q, want %q", got, want)
	}

	keys["quit"] = "x"
	if got, want := footerText(keys), "A/Z left   J/N right   x quit"; got != want {
		t.Errorf("footerText() with quit binding = %q, want %q", got, want)
	}
}
