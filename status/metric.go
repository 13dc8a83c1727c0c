package status

// Counter is an integer match metric
type Counter struct {
	n int64
}

// Inc adds one
func (c *Counter) Inc() {
	c.n++
}

// Add adds d
func (c *Counter) Add(d int64) {
	c.n += d
}

// Raise keeps the larger of the stored value and v
func (c *Counter) Raise(v int64) {
	c.n = max(c.n, v)
}

// Value returns the current count
func (c *Counter) Value() int64 {
	return c.n
}

// Gauge is a float match metric holding the last or the peak value
type Gauge struct {
	v float64
}

// Set stores v
func (g *Gauge) Set(v float64) {
	g.v = v
}

// Raise keeps the larger of the stored value and v
func (g *Gauge) Raise(v float64) {
	g.v = max(g.v, v)
}

// Value returns the stored value
func (g *Gauge) Value() float64 {
	return g.v
}
