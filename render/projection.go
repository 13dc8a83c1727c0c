package render

import (
	"math"

	"github.com/lixenwraith/pong/physics"
)

// Projection maps centred y-up world coordinates onto a cols×rows cell grid
type Projection struct {
	viewW, viewH float64
	cols, rows   int
}

// NewProjection creates a projection of a viewW×viewH world onto the grid
func NewProjection(viewW, viewH float64, cols, rows int) Projection {
	return Projection{viewW: viewW, viewH: viewH, cols: cols, rows: rows}
}

// Size returns the grid dimensions
func (p Projection) Size() (cols, rows int) {
	return p.cols, p.rows
}

// gridX and gridY return fractional grid coordinates, row 0 at the top
func (p Projection) gridX(x float64) float64 {
	return (x + p.viewW/2) * float64(p.cols) / p.viewW
}

func (p Projection) gridY(y float64) float64 {
	return (p.viewH/2 - y) * float64(p.rows) / p.viewH
}

// Cell returns the cell containing a world point
func (p Projection) Cell(x, y float64) (col, row int) {
	return int(math.Floor(p.gridX(x))), int(math.Floor(p.gridY(y)))
}

// Rect returns the inclusive cell range whose centres fall inside the box
// A box thinner than a cell still covers the cell holding its centre
// Result is not clipped to the grid
func (p Projection) Rect(b physics.AABB) (c0, r0, c1, r1 int) {
	c0, c1 = span(p.gridX(b.Left()), p.gridX(b.Right()))
	r0, r1 = span(p.gridY(b.Top()), p.gridY(b.Bottom()))
	return
}

// span returns cells i with i+0.5 in [lo, hi), or the single cell at the midpoint
func span(lo, hi float64) (int, int) {
	first := int(math.Ceil(lo - 0.5))
	last := int(math.Ceil(hi-0.5)) - 1
	if last < first {
		mid := int(math.Floor((lo + hi) / 2))
		return mid, mid
	}
	return first, last
}
