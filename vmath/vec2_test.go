package vmath

import (
	"math"
	"testing"
)

func TestV2Arithmetic(t *testing.T) {
	a := Vec2{X: 3, Y: -4}
	b := Vec2{X: 1, Y: 2}

	if got := V2Add(a, b); got != (Vec2{4, -2}) {
		t.Errorf("V2Add = %v, want {4 -2}", got)
	}
	if got := V2Sub(a, b); got != (Vec2{2, -6}) {
		t.Errorf("V2Sub = %v, want {2 -6}", got)
	}
	if got := V2Scale(a, 0.5); got != (Vec2{1.5, -2}) {
		t.Errorf("V2Scale = %v, want {1.5 -2}", got)
	}
	if got := V2Mag(a); got != 5 {
		t.Errorf("V2Mag = %v, want 5", got)
	}
}

func TestV2Normalize(t *testing.T) {
	tests := []struct {
		name string
		in   Vec2
	}{
		{"Axis", Vec2{10, 0}},
		{"Diagonal", Vec2{0.7, 0.3}},
		{"Negative", Vec2{-1, -0.25}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n := V2Normalize(tt.in)
			if !ApproxEqual(V2Mag(n), 1, 1e-12) {
				t.Errorf("V2Normalize(%v) magnitude = %v, want 1", tt.in, V2Mag(n))
			}
			if math.Signbit(n.X) != math.Signbit(tt.in.X) || math.Signbit(n.Y) != math.Signbit(tt.in.Y) {
				t.Errorf("V2Normalize(%v) = %v, direction flipped", tt.in, n)
			}
		})
	}

	if got := V2Normalize(Vec2{}); got != (Vec2{}) {
		t.Errorf("V2Normalize(zero) = %v, want zero", got)
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		v, lo, hi, want float64
	}{
		{5, 0, 10, 5},
		{-1, 0, 10, 0},
		{11, 0, 10, 10},
		{0, 0, 0, 0},
	}
	for _, tt := range tests {
		if got := Clamp(tt.v, tt.lo, tt.hi); got != tt.want {
			t.Errorf("Clamp(%v, %v, %v) = %v, want %v", tt.v, tt.lo, tt.hi, got, tt.want)
		}
	}
}
