package input

import "strings"

// Action is a game intent produced by a key binding
type Action uint8

const (
	ActionNone Action = iota
	ActionLeftUp
	ActionLeftDown
	ActionRightUp
	ActionRightDown
	ActionQuit
)

// actionRegistry maps canonical action names used in config files to actions
var actionRegistry = map[string]Action{
	"left_up":    ActionLeftUp,
	"left_down":  ActionLeftDown,
	"right_up":   ActionRightUp,
	"right_down": ActionRightDown,
	"quit":       ActionQuit,
}

// ActionByName resolves a config action name, case-insensitive
func ActionByName(name string) (Action, bool) {
	a, ok := actionRegistry[strings.ToLower(strings.TrimSpace(name))]
	return a, ok
}

func (a Action) String() string {
	for name, v := range actionRegistry {
		if v == a {
			return name
		}
	}
	return "none"
}
