package components

import (
	"github.com/lixenwraith/pong/physics"
	"github.com/lixenwraith/pong/vmath"
)

// PaddleComponent is a player bat; X is fixed after setup, only Y moves
type PaddleComponent struct {
	Side     Side
	Position vmath.Vec2
	Size     vmath.Vec2
}

// Box returns the paddle collision box
func (p *PaddleComponent) Box() physics.AABB {
	return physics.NewAABB(p.Position, p.Size)
}

// HalfHeight is the distance from centre to top edge
func (p *PaddleComponent) HalfHeight() float64 {
	return p.Size.Y / 2
}
