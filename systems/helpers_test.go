package systems

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/pong/engine"
)

// sequenceRand replays fixed draws, repeating the last one
type sequenceRand struct {
	values []float64
	calls  int
}

func (r *sequenceRand) Float64() float64 {
	i := r.calls
	if i >= len(r.values) {
		i = len(r.values) - 1
	}
	r.calls++
	return r.values[i]
}

func newTestWorld(t *testing.T, draws ...float64) *engine.World {
	t.Helper()
	if len(draws) == 0 {
		draws = []float64{0.5}
	}
	w := engine.NewWorld(800, 480, engine.DefaultTuning(), &sequenceRand{values: draws})
	require.NoError(t, w.Validate())
	return w
}

func newTestLoop(t *testing.T, draws ...float64) *engine.Loop {
	t.Helper()
	loop := engine.NewLoop(newTestWorld(t, draws...))
	Install(loop)
	return loop
}
