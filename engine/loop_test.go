package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type recordingSystem struct {
	name     string
	priority int
	log      *[]string
}

func (s *recordingSystem) Update(w *World) {
	*s.log = append(*s.log, s.name)
}

func (s *recordingSystem) Priority() int { return s.priority }

func TestLoopRunsSystemsByPriority(t *testing.T) {
	var order []string
	loop := NewLoop(NewWorld(800, 480, DefaultTuning(), fixedRand(0.5)))

	loop.AddSystem(&recordingSystem{"collision", 30, &order})
	loop.AddSystem(&recordingSystem{"paddle", 10, &order})
	loop.AddSystem(&recordingSystem{"score", 40, &order})
	loop.AddSystem(&recordingSystem{"ball", 20, &order})

	loop.Step(InputSnapshot{}, 0.016)
	assert.Equal(t, []string{"paddle", "ball", "collision", "score"}, order)
	assert.Len(t, loop.Systems(), 4)
}

func TestLoopStepPublishesFrameInputs(t *testing.T) {
	loop := NewLoop(NewWorld(800, 480, DefaultTuning(), fixedRand(0.5)))
	in := InputSnapshot{LeftUp: true, RightDown: true}

	loop.Step(in, 0.05)
	assert.Equal(t, in, loop.World().Input)
	assert.Equal(t, 0.05, loop.World().DeltaTime)
	assert.Equal(t, int64(1), loop.World().FrameNumber)

	loop.Step(InputSnapshot{}, 0.016)
	assert.Equal(t, int64(2), loop.World().FrameNumber)
}

func TestNewLoopPanicsOnBrokenWorld(t *testing.T) {
	w := NewWorld(800, 480, DefaultTuning(), fixedRand(0.5))
	w.Paddles[0].Side = w.Paddles[1].Side

	assert.Panics(t, func() { NewLoop(w) })
}
