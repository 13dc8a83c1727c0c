package engine

import "fmt"

// System is one stage of the frame pipeline
type System interface {
	Update(world *World)
	Priority() int // Lower values run first
}

// Loop runs the ordered systems over a World once per frame
type Loop struct {
	world   *World
	systems []System
}

// NewLoop validates the world and panics on a broken entity set
func NewLoop(world *World) *Loop {
	if err := world.Validate(); err != nil {
		panic(fmt.Errorf("new loop: %w", err))
	}
	return &Loop{world: world}
}

// World returns the simulated world
func (l *Loop) World() *World {
	return l.world
}

// AddSystem adds a system and keeps the list sorted by priority
func (l *Loop) AddSystem(system System) {
	l.systems = append(l.systems, system)

	// Sort by priority (bubble sort, small N, stable for equal priorities)
	for i := 0; i < len(l.systems)-1; i++ {
		for j := 0; j < len(l.systems)-i-1; j++ {
			if l.systems[j].Priority() > l.systems[j+1].Priority() {
				l.systems[j], l.systems[j+1] = l.systems[j+1], l.systems[j]
			}
		}
	}
}

// Systems returns a copy of the registered systems in run order
func (l *Loop) Systems() []System {
	result := make([]System, len(l.systems))
	copy(result, l.systems)
	return result
}

// Step publishes input and dt (seconds) and runs every system once
func (l *Loop) Step(input InputSnapshot, dt float64) {
	l.world.Input = input
	l.world.DeltaTime = dt
	for _, s := range l.systems {
		s.Update(l.world)
	}
	l.world.FrameNumber++
}
