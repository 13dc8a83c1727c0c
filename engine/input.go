package engine

import "github.com/lixenwraith/pong/components"

// InputSnapshot is the held state of the four game keys for one frame
type InputSnapshot struct {
	LeftUp    bool
	LeftDown  bool
	RightUp   bool
	RightDown bool
}

// Keys returns the up/down pair for a side
func (in InputSnapshot) Keys(side components.Side) (up, down bool) {
	if side == components.SideRight {
		return in.RightUp, in.RightDown
	}
	return in.LeftUp, in.LeftDown
}
