package engine

// Score holds both counters; only the collision stage increments it
type Score struct {
	left    int
	right   int
	changed bool
}

// IncrementLeft awards a point to the left side
func (s *Score) IncrementLeft() {
	s.left++
	s.changed = true
}

// IncrementRight awards a point to the right side
func (s *Score) IncrementRight() {
	s.right++
	s.changed = true
}

// Read returns both counters
func (s *Score) Read() (left, right int) {
	return s.left, s.right
}

// Changed reports an increment since the last ClearChanged
func (s *Score) Changed() bool {
	return s.changed
}

// ClearChanged acknowledges the current score
func (s *Score) ClearChanged() {
	s.changed = false
}
