package loop

import (
	"time"

	"tankbox/internal/input"
	"tankbox/internal/object"
	"tankbox/internal/physics"
)

// GameState represents the current game phase.
type GameState int

const (
	GameStateStart   GameState = iota // Title screen
	GameStatePlaying                  // Active gameplay
	GameStateDead                     // Tank destroyed, show restart prompt
)

// State holds all game state for one session: the world, the player's view
// and the input stream.
type State struct {
	Objects []object.Object
	toSpawn []object.Object // Objects to add after the current update cycle
	Arena   object.Arena
	Delta   time.Duration

	Input          object.Input
	Camera         object.Camera
	View           object.View
	GameState      GameState
	Player         *object.Tank
	Score          int
	Lives          int
	InvincibleTime float64 // Remaining spawn protection in seconds
	Running        bool

	InputStream *input.Stream

	grid        *physics.SpatialGrid
	collidables []object.Collidable // Reused each frame by the collision pass
}

// NewState creates a new initialized game state.
func NewState() *State {
	return &State{
		Objects:   []object.Object{},
		Arena:     object.Arena{Width: ArenaWidth, Height: ArenaHeight},
		View:      object.View{Width: targetWidth, Height: targetHeight},
		GameState: GameStateStart,
		Lives:     InitialLives,
		Running:   true,
		grid:      physics.NewSpatialGrid(ArenaWidth, ArenaHeight, gridCellSize),
	}
}

// AddObject adds an object to the game world.
func (s *State) AddObject(obj object.Object) {
	s.Objects = append(s.Objects, obj)
}

// Spawn queues an object to be added after the current update cycle.
// Implements object.Spawner.
func (s *State) Spawn(obj object.Object) {
	s.toSpawn = append(s.toSpawn, obj)
}

// FlushSpawned adds all queued objects to the game and clears the queue.
func (s *State) FlushSpawned() {
	s.Objects = append(s.Objects, s.toSpawn...)
	s.toSpawn = s.toSpawn[:0]
}

// UpdateContext creates an UpdateContext from the current state.
func (s *State) UpdateContext() object.UpdateContext {
	return object.UpdateContext{
		Delta:   s.Delta,
		Input:   s.Input,
		Arena:   s.Arena,
		Spawner: s,
		Objects: s.Objects,
	}
}
