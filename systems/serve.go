package systems

import (
	"github.com/lixenwraith/pong/components"
	"github.com/lixenwraith/pong/engine"
	"github.com/lixenwraith/pong/vmath"
)

// ServeVelocity is the serve vector for a bias of ±1 and a uniform draw u in [0, 1)
// Vertical component before normalization is (u - 0.5) * spread
func ServeVelocity(bias, u, spread, speed float64) vmath.Vec2 {
	dir := vmath.V2Normalize(vmath.Vec2{X: bias, Y: (u - 0.5) * spread})
	return vmath.V2Scale(dir, speed)
}

// Serve recentres the ball at base speed toward bias and clears its hit counter
func Serve(b *components.BallComponent, bias float64, rng engine.RandomSource, tuning engine.Tuning) {
	b.Position = vmath.Vec2{}
	b.Velocity = ServeVelocity(bias, rng.Float64(), tuning.ServeSpread, tuning.BallSpeed)
	b.Hits = 0
}
