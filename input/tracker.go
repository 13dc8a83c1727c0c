package input

import (
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/pong/engine"
)

// KeyTracker derives held keys from terminal key presses
// Terminals report presses and auto-repeats but no releases, so a key counts
// as held while its last press is younger than the hold window
type KeyTracker struct {
	bindings  Bindings
	hold      time.Duration
	lastPress map[Action]time.Time
}

// NewKeyTracker creates a tracker for the given bindings and hold window
func NewKeyTracker(bindings Bindings, hold time.Duration) *KeyTracker {
	return &KeyTracker{
		bindings:  bindings,
		hold:      hold,
		lastPress: make(map[Action]time.Time),
	}
}

// HandleEvent records a tcell key event, returns true when the event requests quit
func (t *KeyTracker) HandleEvent(ev tcell.Event, now time.Time) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return t.HandleKey(ev.Key(), ev.Rune(), now)
	}
	return false
}

// HandleKey records one key press, returns true for Esc, Ctrl-C, Ctrl-Q or a quit binding
// Unbound 'q' also quits
func (t *KeyTracker) HandleKey(code tcell.Key, r rune, now time.Time) bool {
	switch code {
	case tcell.KeyEscape, tcell.KeyCtrlC, tcell.KeyCtrlQ:
		return true
	}

	action := t.bindings.Lookup(code, r)
	switch action {
	case ActionQuit:
		return true
	case ActionNone:
		return code == tcell.KeyRune && (r == 'q' || r == 'Q')
	}

	t.lastPress[action] = now
	return false
}

// Snapshot returns the held state of the four game keys at now
func (t *KeyTracker) Snapshot(now time.Time) engine.InputSnapshot {
	return engine.InputSnapshot{
		LeftUp:    t.held(ActionLeftUp, now),
		LeftDown:  t.held(ActionLeftDown, now),
		RightUp:   t.held(ActionRightUp, now),
		RightDown: t.held(ActionRightDown, now),
	}
}

// Reset forgets all presses
func (t *KeyTracker) Reset() {
	clear(t.lastPress)
}

func (t *KeyTracker) held(a Action, now time.Time) bool {
	last, ok := t.lastPress[a]
	if !ok {
		return false
	}
	return now.Sub(last) < t.hold
}
