package loop

// Game configuration constants.
// All tunable game parameters are centralized here for easy adjustment.

// World
const (
	// ArenaWidth/Height are world dimensions; the viewport shows a
	// targetWidth x targetHeight window following the tank.
	ArenaWidth  = 240.0
	ArenaHeight = 160.0

	// gridCellSize is the broad-phase cell size. It must exceed the bounding
	// box of the largest object so most shapes touch few cells.
	gridCellSize = 12.0
)

// Scoring
const (
	ScoreDrone = 100
)

// Player
const (
	InitialLives         = 3
	InvincibilitySeconds = 3.0
)

// Spawning
const (
	DroneTarget = 6
)
