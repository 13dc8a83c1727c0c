package systems

import (
	"github.com/lixenwraith/pong/constants"
	"github.com/lixenwraith/pong/engine"
	"github.com/lixenwraith/pong/status"
)

// StatsSystem records per-frame match statistics
// Paddle hits and serves are counted by CollisionSystem as they happen
type StatsSystem struct {
	frames   *status.Counter
	longest  *status.Counter
	speed    *status.Gauge
	topSpeed *status.Gauge
}

// NewStatsSystem caches metric pointers from the world's registry
func NewStatsSystem(world *engine.World) engine.System {
	reg := world.Stats
	return &StatsSystem{
		frames:   reg.Counter(status.MetricFrames),
		longest:  reg.Counter(status.MetricLongestRally),
		speed:    reg.Gauge(status.MetricBallSpeed),
		topSpeed: reg.Gauge(status.MetricTopSpeed),
	}
}

// Priority returns the system's priority
func (s *StatsSystem) Priority() int {
	return constants.PriorityStats
}

// Update counts the frame and samples rally length and ball speed
func (s *StatsSystem) Update(world *engine.World) {
	s.frames.Inc()
	s.longest.Raise(int64(world.Ball.Hits))

	speed := world.Ball.Speed()
	s.speed.Set(speed)
	s.topSpeed.Raise(speed)
}
