package engine

import (
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/lixenwraith/pong/components"
	"github.com/lixenwraith/pong/constants"
	"github.com/lixenwraith/pong/status"
	"github.com/lixenwraith/pong/vmath"
)

// ErrInvariant marks a broken entity set; always a programming fault
var ErrInvariant = errors.New("world invariant violated")

// World owns all simulation state for one match
// Entity set is fixed: two paddles (Left at 0, Right at 1), one ball, two score labels
type World struct {
	MatchID  uuid.UUID
	Viewport vmath.Vec2
	Bounds   FieldBounds
	Tuning   Tuning

	Paddles [2]components.PaddleComponent
	Ball    components.BallComponent
	Labels  [2]components.ScoreLabelComponent
	Score   Score

	// Per-frame inputs, written by Loop.Step
	Input     InputSnapshot
	DeltaTime float64

	FrameNumber int64
	Rand        RandomSource

	// Match statistics, written by the stats stage
	Stats *status.Registry
}

// NewWorld builds the starting entity set for a viewport of the given size in world units
func NewWorld(viewW, viewH float64, tuning Tuning, rng RandomSource) *World {
	bounds := NewFieldBounds(viewW, viewH, tuning.WallThickness)

	w := &World{
		MatchID:  uuid.New(),
		Viewport: vmath.Vec2{X: viewW, Y: viewH},
		Bounds:   bounds,
		Tuning:   tuning,
		Rand:     rng,
		Stats:    status.NewRegistry(),
	}

	w.Paddles[components.SideLeft] = components.PaddleComponent{
		Side:     components.SideLeft,
		Position: vmath.Vec2{X: bounds.Left + tuning.PaddleInset},
		Size:     tuning.PaddleSize,
	}
	w.Paddles[components.SideRight] = components.PaddleComponent{
		Side:     components.SideRight,
		Position: vmath.Vec2{X: bounds.Right - tuning.PaddleInset},
		Size:     tuning.PaddleSize,
	}

	w.Ball = components.BallComponent{
		Velocity: vmath.V2Scale(vmath.V2Normalize(tuning.InitialDir), tuning.BallSpeed),
		Size:     tuning.BallSize,
	}

	labelY := viewH/2 - constants.ScoreLabelDrop
	w.Labels[components.SideLeft] = components.ScoreLabelComponent{
		Side:     components.SideLeft,
		Text:     "0",
		Position: vmath.Vec2{X: -constants.ScoreLabelOffsetX, Y: labelY},
	}
	w.Labels[components.SideRight] = components.ScoreLabelComponent{
		Side:     components.SideRight,
		Text:     "0",
		Position: vmath.Vec2{X: constants.ScoreLabelOffsetX, Y: labelY},
	}

	return w
}

// Paddle returns the paddle for a side
func (w *World) Paddle(side components.Side) *components.PaddleComponent {
	return &w.Paddles[side]
}

// Label returns the score label for a side
func (w *World) Label(side components.Side) *components.ScoreLabelComponent {
	return &w.Labels[side]
}

// Validate checks the fixed entity set and field geometry
func (w *World) Validate() error {
	for i, side := range components.Sides {
		if w.Paddles[i].Side != side {
			return fmt.Errorf("%w: paddle %d has side %s, want %s", ErrInvariant, i, w.Paddles[i].Side, side)
		}
		if w.Labels[i].Side != side {
			return fmt.Errorf("%w: label %d has side %s, want %s", ErrInvariant, i, w.Labels[i].Side, side)
		}
	}
	if w.Paddles[components.SideLeft].Position.X >= w.Paddles[components.SideRight].Position.X {
		return fmt.Errorf("%w: left paddle x %.1f not left of right paddle x %.1f", ErrInvariant,
			w.Paddles[components.SideLeft].Position.X, w.Paddles[components.SideRight].Position.X)
	}
	if w.Bounds.Left >= w.Bounds.Right || w.Bounds.Bottom >= w.Bounds.Top {
		return fmt.Errorf("%w: degenerate field %+v", ErrInvariant, w.Bounds)
	}
	if w.Ball.Size <= 0 {
		return fmt.Errorf("%w: ball size %.1f", ErrInvariant, w.Ball.Size)
	}
	if w.Rand == nil {
		return fmt.Errorf("%w: no random source", ErrInvariant)
	}
	return nil
}
