package constants

import "time"

// Game Loop Timing Constants
const (
	// TickInterval is the default period between snake steps
	TickInterval = 100 * time.Millisecond

	// MinTickInterval is the fastest accepted tick period
	MinTickInterval = 10 * time.Millisecond
)

// Grid Constants
const (
	// MinGridWidth fits the initial body (columns 3..5) plus one step and the wall
	MinGridWidth = 7

	// MinGridHeight fits the initial body (rows 3..4) plus one step and the wall
	MinGridHeight = 7

	// FallbackGridWidth is used when the terminal size cannot be read
	FallbackGridWidth = 50

	// FallbackGridHeight is used when the terminal size cannot be read
	FallbackGridHeight = 50
)
