package input

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/gdamore/tcell/v2"
)

// Rune aliases for keys that can't be bare single-char config values
var runeAliases = map[string]rune{
	"space":     ' ',
	"backslash": '\\',
}

// Special key names accepted in config files
var specialKeys = map[string]tcell.Key{
	"up":    tcell.KeyUp,
	"down":  tcell.KeyDown,
	"left":  tcell.KeyLeft,
	"right": tcell.KeyRight,
	"enter": tcell.KeyEnter,
	"tab":   tcell.KeyTab,
}

// Key identifies one physical key: a special key, or KeyRune with a character
type Key struct {
	Code tcell.Key
	Rune rune
}

// Bindings maps keys to actions
type Bindings map[Key]Action

// ParseKey converts a config key string to a Key
// Accepts single characters, rune aliases and special key names
// Letters are normalised to lower case
func ParseKey(s string) (Key, error) {
	lower := strings.ToLower(strings.TrimSpace(s))

	if r, ok := runeAliases[lower]; ok {
		return Key{Code: tcell.KeyRune, Rune: r}, nil
	}
	if k, ok := specialKeys[lower]; ok {
		return Key{Code: k}, nil
	}

	runes := []rune(s)
	if len(runes) == 1 {
		return Key{Code: tcell.KeyRune, Rune: unicode.ToLower(runes[0])}, nil
	}

	return Key{}, fmt.Errorf("invalid key: %q (expected single character, alias or key name)", s)
}

// BuildBindings resolves action name → key name pairs
// Returns error on unknown action names, invalid key names, or a key bound twice
func BuildBindings(actionKeys map[string]string) (Bindings, error) {
	b := make(Bindings, len(actionKeys))
	owner := make(map[Key]string, len(actionKeys))

	for name, keyStr := range actionKeys {
		action, ok := ActionByName(name)
		if !ok {
			return nil, fmt.Errorf("unknown action: %q", name)
		}
		k, err := ParseKey(keyStr)
		if err != nil {
			return nil, fmt.Errorf("action %q: %w", name, err)
		}
		if prev, dup := owner[k]; dup {
			return nil, fmt.Errorf("key %q bound to both %q and %q", keyStr, prev, name)
		}
		owner[k] = name
		b[k] = action
	}

	return b, nil
}

// Lookup returns the action for a key event's code and rune
// Rune lookups ignore letter case so Shift or Caps Lock does not drop input
func (b Bindings) Lookup(code tcell.Key, r rune) Action {
	if code == tcell.KeyRune {
		return b[Key{Code: tcell.KeyRune, Rune: unicode.ToLower(r)}]
	}
	return b[Key{Code: code}]
}
