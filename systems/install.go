package systems

import "github.com/lixenwraith/pong/engine"

// Install registers the full frame pipeline on a loop
func Install(loop *engine.Loop) {
	loop.AddSystem(NewPaddleSystem())
	loop.AddSystem(NewBallSystem())
	loop.AddSystem(NewCollisionSystem())
	loop.AddSystem(NewScoreDisplaySystem())
	loop.AddSystem(NewStatsSystem(loop.World()))
}
