package components

import "github.com/lixenwraith/pong/vmath"

// ScoreLabelComponent is the text shown above one half of the field
// Text is rewritten only when the score changes
type ScoreLabelComponent struct {
	Side     Side
	Text     string
	Position vmath.Vec2
}
