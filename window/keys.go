package window

import (
	"fmt"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/lixenwraith/pong/input"
)

// Key names accepted in config files, shared with the terminal front-end
var keyNames = map[string]ebiten.Key{
	"a": ebiten.KeyA, "b": ebiten.KeyB, "c": ebiten.KeyC, "d": ebiten.KeyD,
	"e": ebiten.KeyE, "f": ebiten.KeyF, "g": ebiten.KeyG, "h": ebiten.KeyH,
	"i": ebiten.KeyI, "j": ebiten.KeyJ, "k": ebiten.KeyK, "l": ebiten.KeyL,
	"m": ebiten.KeyM, "n": ebiten.KeyN, "o": ebiten.KeyO, "p": ebiten.KeyP,
	"q": ebiten.KeyQ, "r": ebiten.KeyR, "s": ebiten.KeyS, "t": ebiten.KeyT,
	"u": ebiten.KeyU, "v": ebiten.KeyV, "w": ebiten.KeyW, "x": ebiten.KeyX,
	"y": ebiten.KeyY, "z": ebiten.KeyZ,

	"0": ebiten.Key0, "1": ebiten.Key1, "2": ebiten.Key2, "3": ebiten.Key3,
	"4": ebiten.Key4, "5": ebiten.Key5, "6": ebiten.Key6, "7": ebiten.Key7,
	"8": ebiten.Key8, "9": ebiten.Key9,

	"space": ebiten.KeySpace,
	"up":    ebiten.KeyArrowUp,
	"down":  ebiten.KeyArrowDown,
	"left":  ebiten.KeyArrowLeft,
	"right": ebiten.KeyArrowRight,
	"enter": ebiten.KeyEnter,
	"tab":   ebiten.KeyTab,
}

// ParseKey resolves a config key name, case-insensitive
func ParseKey(name string) (ebiten.Key, error) {
	k, ok := keyNames[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return 0, fmt.Errorf("invalid key for window: %q", name)
	}
	return k, nil
}

// KeyBindings holds the four game keys
type KeyBindings struct {
	LeftUp, LeftDown, RightUp, RightDown ebiten.Key
	Quit                                 []ebiten.Key
}

// BuildKeyBindings resolves the same action name → key name map the terminal uses
// Escape always quits; a "quit" entry adds another key
func BuildKeyBindings(actionKeys map[string]string) (KeyBindings, error) {
	kb := KeyBindings{Quit: []ebiten.Key{ebiten.KeyEscape}}
	seen := make(map[ebiten.Key]string, len(actionKeys))

	for name, keyName := range actionKeys {
		action, ok := input.ActionByName(name)
		if !ok {
			return KeyBindings{}, fmt.Errorf("unknown action: %q", name)
		}
		k, err := ParseKey(keyName)
		if err != nil {
			return KeyBindings{}, fmt.Errorf("action %q: %w", name, err)
		}
		if prev, dup := seen[k]; dup {
			return KeyBindings{}, fmt.Errorf("key %q bound to both %q and %q", keyName, prev, name)
		}
		seen[k] = name

		switch action {
		case input.ActionLeftUp:
			kb.LeftUp = k
		case input.ActionLeftDown:
			kb.LeftDown = k
		case input.ActionRightUp:
			kb.RightUp = k
		case input.ActionRightDown:
			kb.RightDown = k
		case input.ActionQuit:
			kb.Quit = append(kb.Quit, k)
		}
	}

	for _, a := range []string{"left_up", "left_down", "right_up", "right_down"} {
		if _, ok := actionKeys[a]; !ok {
			return KeyBindings{}, fmt.Errorf("missing binding for %q", a)
		}
	}
	return kb, nil
}
