package input

import (
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/pong/engine"
)

var defaultKeys = map[string]string{
	"left_up":    "a",
	"left_down":  "z",
	"right_up":   "j",
	"right_down": "n",
}

func TestParseKey(t *testing.T) {
	tests := []struct {
		in      string
		want    Key
		wantErr bool
	}{
		{"a", Key{tcell.KeyRune, 'a'}, false},
		{"A", Key{tcell.KeyRune, 'a'}, false},
		{"space", Key{tcell.KeyRune, ' '}, false},
		{"Up", Key{Code: tcell.KeyUp}, false},
		{"down", Key{Code: tcell.KeyDown}, false},
		{"7", Key{tcell.KeyRune, '7'}, false},
		{"", Key{}, true},
		{"ab", Key{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseKey(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseKey(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseKey(%q) = %+v, want %+v", tt.in, got, tt.want)
			}
		})
	}
}

func TestBuildBindings(t *testing.T) {
	b, err := BuildBindings(defaultKeys)
	if err != nil {
		t.Fatalf("BuildBindings() error = %v", err)
	}
	if got := b.Lookup(tcell.KeyRune, 'a'); got != ActionLeftUp {
		t.Errorf("Lookup('a') = %v, want left_up", got)
	}
	if got := b.Lookup(tcell.KeyRune, 'N'); got != ActionRightDown {
		t.Errorf("Lookup('N') = %v, want right_down", got)
	}
	if got := b.Lookup(tcell.KeyRune, 'x'); got != ActionNone {
		t.Errorf("Lookup('x') = %v, want none", got)
	}
}

func TestBuildBindingsErrors(t *testing.T) {
	tests := []struct {
		name string
		keys map[string]string
	}{
		{"Unknown action", map[string]string{"jump": "a"}},
		{"Invalid key", map[string]string{"left_up": "ctrl+a"}},
		{"Duplicate key", map[string]string{"left_up": "a", "right_up": "A"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := BuildBindings(tt.keys); err == nil {
				t.Errorf("BuildBindings(%v) expected error", tt.keys)
			}
		})
	}
}

func TestKeyTrackerHoldWindow(t *testing.T) {
	b, _ := BuildBindings(defaultKeys)
	tracker := NewKeyTracker(b, 200*time.Millisecond)
	start := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

	if quit := tracker.HandleKey(tcell.KeyRune, 'a', start); quit {
		t.Fatal("'a' should not quit")
	}
	tracker.HandleKey(tcell.KeyRune, 'n', start.Add(50*time.Millisecond))

	got := tracker.Snapshot(start.Add(100 * time.Millisecond))
	want := engine.InputSnapshot{LeftUp: true, RightDown: true}
	if got != want {
		t.Errorf("Snapshot at 100ms = %+v, want %+v", got, want)
	}

	got = tracker.Snapshot(start.Add(220 * time.Millisecond))
	want = engine.InputSnapshot{RightDown: true}
	if got != want {
		t.Errorf("Snapshot at 220ms = %+v, want %+v", got, want)
	}

	// Auto-repeat extends the hold
	tracker.HandleKey(tcell.KeyRune, 'n', start.Add(240*time.Millisecond))
	got = tracker.Snapshot(start.Add(400 * time.Millisecond))
	if !got.RightDown {
		t.Errorf("Snapshot after repeat = %+v, want RightDown held", got)
	}

	tracker.Reset()
	if got := tracker.Snapshot(start.Add(400 * time.Millisecond)); got != (engine.InputSnapshot{}) {
		t.Errorf("Snapshot after Reset = %+v, want empty", got)
	}
}

func TestKeyTrackerQuit(t *testing.T) {
	b, _ := BuildBindings(defaultKeys)
	tracker := NewKeyTracker(b, 200*time.Millisecond)
	now := time.Now()

	tests := []struct {
		name string
		code tcell.Key
		r    rune
		want bool
	}{
		{"Escape", tcell.KeyEscape, 0, true},
		{"Ctrl-C", tcell.KeyCtrlC, 0, true},
		{"Ctrl-Q", tcell.KeyCtrlQ, 0, true},
		{"q", tcell.KeyRune, 'q', true},
		{"Bound key", tcell.KeyRune, 'j', false},
		{"Unbound key", tcell.KeyRune, 'x', false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tracker.HandleKey(tt.code, tt.r, now); got != tt.want {
				t.Errorf("HandleKey(%v, %q) = %v, want %v", tt.code, tt.r, got, tt.want)
			}
		})
	}
}

func TestKeyTrackerRebindQ(t *testing.T) {
	keys := map[string]string{"left_up": "q", "left_down": "z", "right_up": "j", "right_down": "n"}
	b, err := BuildBindings(keys)
	if err != nil {
		t.Fatalf("BuildBindings() error = %v", err)
	}
	tracker := NewKeyTracker(b, 200*time.Millisecond)
	now := time.Now()

	if tracker.HandleKey(tcell.KeyRune, 'q', now) {
		t.Error("'q' bound to left_up should not quit")
	}
	if !tracker.Snapshot(now).LeftUp {
		t.Error("'q' bound to left_up should hold LeftUp")
	}
}
