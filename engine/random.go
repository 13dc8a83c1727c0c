package engine

import (
	"math/rand/v2"
	"time"
)

// RandomSource yields uniform values in [0, 1)
type RandomSource interface {
	Float64() float64
}

// NewRandomSource returns a PCG-backed source
// Seed 0 picks a time-based seed
func NewRandomSource(seed uint64) RandomSource {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}
