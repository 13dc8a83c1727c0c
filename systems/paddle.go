package systems

import (
	"github.com/lixenwraith/pong/components"
	"github.com/lixenwraith/pong/constants"
	"github.com/lixenwraith/pong/engine"
	"github.com/lixenwraith/pong/vmath"
)

// PaddleSystem moves both paddles from the frame's input snapshot
type PaddleSystem struct{}

// NewPaddleSystem creates the paddle controller stage
func NewPaddleSystem() engine.System {
	return &PaddleSystem{}
}

// Priority returns the system's priority
func (s *PaddleSystem) Priority() int {
	return constants.PriorityPaddle
}

// Update applies held keys to each paddle and clamps it inside the walls
func (s *PaddleSystem) Update(world *engine.World) {
	for _, side := range components.Sides {
		up, down := world.Input.Keys(side)
		MovePaddle(world.Paddle(side), up, down, world.Tuning.PaddleSpeed, world.DeltaTime, world.Bounds)
	}
}

// MovePaddle applies independent up/down deltas then clamps the centre to the legal range
// Both keys held cancel out
func MovePaddle(p *components.PaddleComponent, up, down bool, speed, dt float64, bounds engine.FieldBounds) {
	y := p.Position.Y
	if up {
		y += speed * dt
	}
	if down {
		y -= speed * dt
	}
	lo, hi := bounds.PaddleRange(p.HalfHeight())
	p.Position.Y = vmath.Clamp(y, lo, hi)
}
