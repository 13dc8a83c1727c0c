package components

import (
	"github.com/lixenwraith/pong/physics"
	"github.com/lixenwraith/pong/vmath"
)

// BallComponent is the single moving ball
type BallComponent struct {
	Position vmath.Vec2
	Velocity vmath.Vec2
	Size     float64

	// Hits counts paddle contacts since the last serve
	Hits int
}

// Box returns the ball collision box (square)
func (b *BallComponent) Box() physics.AABB {
	return physics.NewAABB(b.Position, vmath.Vec2{X: b.Size, Y: b.Size})
}

// Speed is the velocity magnitude
func (b *BallComponent) Speed() float64 {
	return vmath.V2Mag(b.Velocity)
}
