package engine

import (
	"github.com/lixenwraith/pong/constants"
	"github.com/lixenwraith/pong/vmath"
)

// Tuning holds the simulation constants a World is built with
type Tuning struct {
	PaddleSize     vmath.Vec2
	PaddleSpeed    float64
	PaddleInset    float64
	BallSize       float64
	BallSpeed      float64
	SpeedIncrease  float64
	WallThickness  float64
	ServeSpread    float64
	MaxBounceAngle float64
	InitialDir     vmath.Vec2
}

// DefaultTuning returns the classic game constants
func DefaultTuning() Tuning {
	return Tuning{
		PaddleSize:     vmath.Vec2{X: constants.PaddleWidth, Y: constants.PaddleHeight},
		PaddleSpeed:    constants.PaddleSpeed,
		PaddleInset:    constants.PaddleInset,
		BallSize:       constants.BallSize,
		BallSpeed:      constants.BallSpeed,
		SpeedIncrease:  constants.BallSpeedIncrease,
		WallThickness:  constants.WallThickness,
		ServeSpread:    constants.ServeSpread,
		MaxBounceAngle: constants.MaxBounceAngle,
		InitialDir:     vmath.Vec2{X: constants.BallInitialDirX, Y: constants.BallInitialDirY},
	}
}
