package render

import (
	"github.com/lixenwraith/pong/components"
	"github.com/lixenwraith/pong/constants"
	"github.com/lixenwraith/pong/engine"
	"github.com/lixenwraith/pong/physics"
	"github.com/lixenwraith/pong/vmath"
)

// ShapeKind tags a scene rectangle for styling
type ShapeKind uint8

const (
	ShapeDash ShapeKind = iota
	ShapeWall
	ShapePaddle
	ShapeBall
)

// Shape is a filled world-space rectangle
type Shape struct {
	Kind ShapeKind
	Box  physics.AABB
}

// Label is world-space text centred on Position
type Label struct {
	Text     string
	Position vmath.Vec2
}

// Scene is the draw list for one frame, back to front
// Terminal and window front-ends draw the same scene
type Scene struct {
	Viewport vmath.Vec2
	Shapes   []Shape
	Labels   []Label
}

// BuildScene reads the world without modifying it
func BuildScene(w *engine.World) Scene {
	vw, vh := w.Viewport.X, w.Viewport.Y
	s := Scene{
		Viewport: w.Viewport,
		Shapes:   make([]Shape, 0, constants.DashCount+5),
		Labels:   make([]Label, 0, len(w.Labels)),
	}

	dashH := vh / float64(constants.DashCount*2)
	for i := 0; i < constants.DashCount; i++ {
		y := -vh/2 + float64(i*2+1)*dashH
		s.Shapes = append(s.Shapes, Shape{
			Kind: ShapeDash,
			Box:  physics.NewAABB(vmath.Vec2{Y: y}, vmath.Vec2{X: constants.DashWidth, Y: dashH}),
		})
	}

	wallSize := vmath.Vec2{X: vw, Y: w.Bounds.Wall}
	s.Shapes = append(s.Shapes,
		Shape{Kind: ShapeWall, Box: physics.NewAABB(vmath.Vec2{Y: w.Bounds.Top}, wallSize)},
		Shape{Kind: ShapeWall, Box: physics.NewAABB(vmath.Vec2{Y: w.Bounds.Bottom}, wallSize)},
	)

	for _, side := range components.Sides {
		s.Shapes = append(s.Shapes, Shape{Kind: ShapePaddle, Box: w.Paddle(side).Box()})
	}
	s.Shapes = append(s.Shapes, Shape{Kind: ShapeBall, Box: w.Ball.Box()})

	for _, l := range w.Labels {
		s.Labels = append(s.Labels, Label{Text: l.Text, Position: l.Position})
	}
	return s
}
