package physics

import (
	"math"

	"github.com/lixenwraith/pong/vmath"
)

// Integrate advances pos by vel over dt seconds (explicit Euler)
func Integrate(pos, vel vmath.Vec2, dt float64) vmath.Vec2 {
	return vmath.V2Add(pos, vmath.V2Scale(vel, dt))
}

// ReflectY negates the vertical velocity component
func ReflectY(vel vmath.Vec2) vmath.Vec2 {
	return vmath.Vec2{X: vel.X, Y: -vel.Y}
}

// PaddleBounce computes the outgoing ball velocity after a paddle hit
// offset = (ballY - paddleY) / halfHeight maps to angle = offset * maxAngle
// Speed is multiplied by factor; dir is +1 away from the left paddle, -1 away from the right
// Offset is not clamped, a corner hit may exceed maxAngle slightly
func PaddleBounce(ballY, paddleY, halfHeight, speed, dir, maxAngle, factor float64) vmath.Vec2 {
	offset := (ballY - paddleY) / halfHeight
	angle := offset * maxAngle
	s := speed * factor
	return vmath.Vec2{
		X: dir * s * math.Cos(angle),
		Y: s * math.Sin(angle),
	}
}
