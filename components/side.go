package components

// Side identifies a player; Left is controlled by A/Z, Right by J/N
type Side uint8

const (
	SideLeft Side = iota
	SideRight
)

// Sides lists both players in collision test order
var Sides = [2]Side{SideLeft, SideRight}

func (s Side) String() string {
	switch s {
	case SideLeft:
		return "left"
	case SideRight:
		return "right"
	default:
		return "unknown"
	}
}

// Direction is the horizontal sign of a ball leaving this side's paddle
func (s Side) Direction() float64 {
	if s == SideRight {
		return -1
	}
	return 1
}

// Opponent returns the other side
func (s Side) Opponent() Side {
	if s == SideLeft {
		return SideRight
	}
	return SideLeft
}
