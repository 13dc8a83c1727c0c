package systems

import (
	"github.com/lixenwraith/pong/components"
	"github.com/lixenwraith/pong/constants"
	"github.com/lixenwraith/pong/engine"
	"github.com/lixenwraith/pong/physics"
)

// BallSystem integrates ball position, collisions are resolved later in the frame
type BallSystem struct{}

// NewBallSystem creates the ball simulator stage
func NewBallSystem() engine.System {
	return &BallSystem{}
}

// Priority returns the system's priority
func (s *BallSystem) Priority() int {
	return constants.PriorityBall
}

// Update advances the ball by one frame
func (s *BallSystem) Update(world *engine.World) {
	AdvanceBall(&world.Ball, world.DeltaTime)
}

// AdvanceBall moves the ball along its velocity, no clamping
func AdvanceBall(b *components.BallComponent, dt float64) {
	b.Position = physics.Integrate(b.Position, b.Velocity, dt)
}
