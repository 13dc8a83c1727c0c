package status

import (
	"fmt"
	"maps"
	"slices"
	"strings"
)

// Match metric keys
const (
	MetricFrames       = "frames"
	MetricPaddleHits   = "paddle.hits"
	MetricServes       = "serves"
	MetricLongestRally = "rally.longest"
	MetricBallSpeed    = "ball.speed"
	MetricTopSpeed     = "ball.top_speed"
)

// Registry holds the named metrics of one match
// Owned by the frame loop: systems write during Step, front-ends read after the loop ends
type Registry struct {
	counters map[string]*Counter
	gauges   map[string]*Gauge
}

// NewRegistry creates an empty Registry
func NewRegistry() *Registry {
	return &Registry{
		counters: make(map[string]*Counter),
		gauges:   make(map[string]*Gauge),
	}
}

// Counter returns the counter for key, registering it on first use
func (r *Registry) Counter(key string) *Counter {
	c, ok := r.counters[key]
	if !ok {
		c = &Counter{}
		r.counters[key] = c
	}
	return c
}

// Gauge returns the gauge for key, registering it on first use
func (r *Registry) Gauge(key string) *Gauge {
	g, ok := r.gauges[key]
	if !ok {
		g = &Gauge{}
		r.gauges[key] = g
	}
	return g
}

// Count returns the number of registered metrics
func (r *Registry) Count() int {
	return len(r.counters) + len(r.gauges)
}

// Format renders counters then gauges as key=value pairs, each group sorted by key
func (r *Registry) Format() string {
	parts := make([]string, 0, r.Count())
	for _, k := range slices.Sorted(maps.Keys(r.counters)) {
		parts = append(parts, fmt.Sprintf("%s=%d", k, r.counters[k].Value()))
	}
	for _, k := range slices.Sorted(maps.Keys(r.gauges)) {
		parts = append(parts, fmt.Sprintf("%s=%.1f", k, r.gauges[k].Value()))
	}
	return strings.Join(parts, " ")
}
