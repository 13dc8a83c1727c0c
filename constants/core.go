package constants

import "time"

// Frame Loop Timing
const (
	// FrameUpdateInterval is the frame loop interval (~60 FPS)
	FrameUpdateInterval = 16 * time.Millisecond

	// KeyHoldWindow is how long a terminal key press counts as held without a repeat
	// Terminals report presses and auto-repeats but never releases
	KeyHoldWindow = 200 * time.Millisecond

	// EventQueueSize is the capacity of the terminal event channel
	EventQueueSize = 256
)

// System Execution Priorities (lower runs first)
const (
	PriorityPaddle       = 10
	PriorityBall         = 20
	PriorityCollision    = 30
	PriorityScoreDisplay = 40
	PriorityStats        = 50
)
