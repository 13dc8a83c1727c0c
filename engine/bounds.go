package engine

// FieldBounds are the play area edges in world units, origin at centre, y-up
// Top and Bottom sit on the wall centre lines; Left and Right are the goal lines
type FieldBounds struct {
	Top, Bottom, Left, Right float64
	Wall                     float64
}

// NewFieldBounds computes the edges once from the viewport size and wall thickness
func NewFieldBounds(width, height, wall float64) FieldBounds {
	halfW := width / 2
	halfH := height / 2
	return FieldBounds{
		Top:    halfH - wall/2,
		Bottom: -halfH + wall/2,
		Left:   -halfW + wall/2,
		Right:  halfW - wall/2,
		Wall:   wall,
	}
}

// PaddleRange is the legal centre Y range for a paddle of the given half height
func (b FieldBounds) PaddleRange(halfHeight float64) (lo, hi float64) {
	return b.Bottom + halfHeight + b.Wall/2, b.Top - halfHeight - b.Wall/2
}

// InnerTop is the lower face of the top wall
func (b FieldBounds) InnerTop() float64 {
	return b.Top - b.Wall/2
}

// InnerBottom is the upper face of the bottom wall
func (b FieldBounds) InnerBottom() float64 {
	return b.Bottom + b.Wall/2
}
