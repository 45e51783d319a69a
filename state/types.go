package state

import (
	"errors"

	"github.com/katalvlaran/robosearch/board"
)

// Sentinel errors for state construction.
var (
	// ErrNilBoard is returned when a Factory is invoked with a nil board.
	ErrNilBoard = errors.New("state: board is nil")

	// ErrNoAgent is returned when the board has no robot cell.
	ErrNoAgent = errors.New("state: robot start not found")

	// ErrNoGoal is returned when the board has no goal cell.
	ErrNoGoal = errors.New("state: goal not found")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("state: invalid option supplied")
)

// Handle is a stable index of a state inside a Tree.
type Handle int

// NoParent marks the initial state of a search.
const NoParent Handle = -1

// Symbols reports the board codes a state variant reacts to.
type Symbols interface {
	AgentCode() board.Code
	GoalCode() board.Code
	PortalCode() board.Code
	HazardCode() board.Code
}

// State is one node of the search graph. Implementations are immutable once
// constructed; Successors always builds fresh children.
type State interface {
	Symbols

	// Position is the agent coordinate, the primary identity component.
	Position() board.Position
	// Depth is 1 for the initial state and parent depth + 1 otherwise.
	Depth() int
	// Parent is the handle of the state this one was expanded from,
	// or NoParent for the initial state.
	Parent() Handle
	// HasAllItems reports whether every required item has been collected.
	HasAllItems() bool

	// LegalPositions lists every position reachable in one step.
	LegalPositions() []board.Position
	// Successors maps each legal position to a child whose parent is self.
	Successors(self Handle) []State
	// IsGoal reports whether the state terminates the search.
	IsGoal() bool
	// Key is the identity key: equal keys denote the same logical node.
	Key() string

	// HeuristicCost estimates the remaining distance to the goal.
	HeuristicCost() float64
	// PathCost is the cost accumulated from the initial state.
	PathCost() float64
	// HazardCost is the weighted distance to the hazard cell.
	HazardCost() float64
}

// Factory builds the initial state of a search from a board.
type Factory func(b *board.Board) (State, error)
