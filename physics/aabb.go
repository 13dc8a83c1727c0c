package physics

import "github.com/lixenwraith/pong/vmath"

// AABB is an axis-aligned box described by centre and half extents
type AABB struct {
	Center vmath.Vec2
	Half   vmath.Vec2
}

// NewAABB creates a box from its centre and full size
func NewAABB(center, size vmath.Vec2) AABB {
	return AABB{Center: center, Half: vmath.V2Scale(size, 0.5)}
}

func (b AABB) Top() float64    { return b.Center.Y + b.Half.Y }
func (b AABB) Bottom() float64 { return b.Center.Y - b.Half.Y }
func (b AABB) Left() float64   { return b.Center.X - b.Half.X }
func (b AABB) Right() float64  { return b.Center.X + b.Half.X }

// Overlaps reports strict intersection, boxes sharing only an edge do not overlap
func (b AABB) Overlaps(o AABB) bool {
	return b.Left() < o.Right() && o.Left() < b.Right() &&
		b.Bottom() < o.Top() && o.Bottom() < b.Top()
}
