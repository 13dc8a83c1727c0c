package systems

import (
	"log"

	"github.com/lixenwraith/pong/components"
	"github.com/lixenwraith/pong/constants"
	"github.com/lixenwraith/pong/engine"
	"github.com/lixenwraith/pong/physics"
	"github.com/lixenwraith/pong/status"
)

// CollisionSystem resolves walls, goals and paddles in that order
type CollisionSystem struct{}

// NewCollisionSystem creates the collision resolver stage
func NewCollisionSystem() engine.System {
	return &CollisionSystem{}
}

// Priority returns the system's priority
func (s *CollisionSystem) Priority() int {
	return constants.PriorityCollision
}

// Update runs the three collision passes; wall and paddle may both fire in one frame
func (s *CollisionSystem) Update(world *engine.World) {
	ball := &world.Ball

	reflectWalls(ball, world.Bounds)

	if side, scored := checkGoal(ball, world.Bounds); scored {
		awardPoint(world, side)
	}

	// Left before Right; a ball overlapping both ends with the right paddle's response
	for _, side := range components.Sides {
		p := world.Paddle(side)
		if ball.Box().Overlaps(p.Box()) {
			bouncePaddle(ball, p, world.Tuning)
			world.Stats.Counter(status.MetricPaddleHits).Inc()
		}
	}
}

// reflectWalls flips vy when the ball crosses a wall face
// Ball may penetrate the wall for one frame, position is not corrected
func reflectWalls(ball *components.BallComponent, bounds engine.FieldBounds) {
	box := ball.Box()
	if box.Top() > bounds.InnerTop() || box.Bottom() < bounds.InnerBottom() {
		ball.Velocity = physics.ReflectY(ball.Velocity)
	}
}

// checkGoal returns the side that scores when the ball centre passes a goal line
func checkGoal(ball *components.BallComponent, bounds engine.FieldBounds) (components.Side, bool) {
	if ball.Position.X < bounds.Left {
		return components.SideRight, true
	} else if ball.Position.X > bounds.Right {
		return components.SideLeft, true
	}
	return 0, false
}

// awardPoint increments the scorer and serves toward the scorer
// Serve is applied immediately so the paddle pass sees the recentred ball
func awardPoint(world *engine.World, scorer components.Side) {
	if scorer == components.SideLeft {
		world.Score.IncrementLeft()
	} else {
		world.Score.IncrementRight()
	}
	Serve(&world.Ball, scorer.Opponent().Direction(), world.Rand, world.Tuning)
	world.Stats.Counter(status.MetricServes).Inc()

	l, r := world.Score.Read()
	log.Printf("match %s: %s scores (%d-%d) at frame %d", world.MatchID, scorer, l, r, world.FrameNumber)
}

func bouncePaddle(ball *components.BallComponent, p *components.PaddleComponent, tuning engine.Tuning) {
	ball.Velocity = physics.PaddleBounce(
		ball.Position.Y, p.Position.Y, p.HalfHeight(),
		ball.Speed(), p.Side.Direction(),
		tuning.MaxBounceAngle, tuning.SpeedIncrease,
	)
	ball.Hits++
}
