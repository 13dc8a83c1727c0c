package systems

import (
	"log"
	"strconv"

	"github.com/lixenwraith/pong/components"
	"github.com/lixenwraith/pong/constants"
	"github.com/lixenwraith/pong/engine"
)

// ScoreDisplaySystem rewrites label text only on frames where the score changed
type ScoreDisplaySystem struct{}

// NewScoreDisplaySystem creates the score display stage
func NewScoreDisplaySystem() engine.System {
	return &ScoreDisplaySystem{}
}

// Priority returns the system's priority
func (s *ScoreDisplaySystem) Priority() int {
	return constants.PriorityScoreDisplay
}

// Update consumes the score change flag
func (s *ScoreDisplaySystem) Update(world *engine.World) {
	if !world.Score.Changed() {
		return
	}
	l, r := world.Score.Read()
	world.Label(components.SideLeft).Text = strconv.Itoa(l)
	world.Label(components.SideRight).Text = strconv.Itoa(r)
	world.Score.ClearChanged()

	log.Printf("match %s: score display %d-%d", world.MatchID, l, r)
}
