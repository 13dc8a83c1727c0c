package status

import "testing"

func TestRegistryReturnsSameMetric(t *testing.T) {
	r := NewRegistry()

	a := r.Counter(MetricFrames)
	b := r.Counter(MetricFrames)
	if a != b {
		t.Error("Expected Counter to return the registered metric")
	}
	a.Add(3)
	b.Inc()
	if got := a.Value(); got != 4 {
		t.Errorf("frames = %d, want 4", got)
	}

	if r.Gauge(MetricTopSpeed) != r.Gauge(MetricTopSpeed) {
		t.Error("Expected Gauge to return the registered metric")
	}
	if r.Count() != 2 {
		t.Errorf("Count() = %d, want 2", r.Count())
	}
}

func TestRaise(t *testing.T) {
	var c Counter
	c.Raise(5)
	c.Raise(2)
	if got := c.Value(); got != 5 {
		t.Errorf("Counter.Raise kept %d, want 5", got)
	}

	var g Gauge
	g.Raise(420)
	g.Raise(400)
	if got := g.Value(); got != 420 {
		t.Errorf("Gauge.Raise kept %v, want 420", got)
	}
	g.Set(1.5)
	if got := g.Value(); got != 1.5 {
		t.Errorf("Value() = %v, want 1.5", got)
	}
}

func TestRegistryFormat(t *testing.T) {
	r := NewRegistry()
	if got := r.Format(); got != "" {
		t.Errorf("empty Format() = %q, want \"\"", got)
	}

	r.Counter(MetricServes).Add(2)
	r.Counter(MetricFrames).Add(120)
	r.Gauge(MetricBallSpeed).Set(441)

	want := "frames=120 serves=2 ball.speed=441.0"
	if got := r.Format(); got != want {
		t.Errorf("Format() = %q, want %q", got, want)
	}
}
