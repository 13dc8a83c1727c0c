package constants

import "math"

// Paddle
const (
	// PaddleWidth is the paddle width in world units
	PaddleWidth = 20.0

	// PaddleHeight is the paddle height in world units
	PaddleHeight = 100.0

	// PaddleSpeed is the paddle vertical speed in world units per second
	PaddleSpeed = 500.0

	// PaddleInset is the paddle distance from its side wall centre line
	PaddleInset = 30.0
)

// Ball
const (
	// BallSize is the ball edge length in world units (square)
	BallSize = 15.0

	// BallSpeed is the base ball speed; restored on every serve
	BallSpeed = 400.0

	// BallSpeedIncrease is the speed multiplier applied on every paddle hit
	BallSpeedIncrease = 1.05

	// BallInitialDirX and BallInitialDirY form the opening direction before normalization
	BallInitialDirX = 0.7
	BallInitialDirY = 0.3
)

// Field
const (
	// WallThickness is the thickness of the top and bottom walls
	WallThickness = 10.0
)

// Bounce & Serve
const (
	// MaxBounceAngle is the bounce angle at a paddle edge hit (offset = ±1)
	MaxBounceAngle = math.Pi / 4

	// ServeSpread scales a uniform [0,1) draw into the serve vertical component
	// (u - 0.5) * 0.5 lies in [-0.25, 0.25)
	ServeSpread = 0.5
)
