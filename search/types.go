package search

import (
	"context"
	"errors"
	"fmt"

	"github.com/felixgeelhaar/bolt/v3"

	"github.com/katalvlaran/robosearch/board"
	"github.com/katalvlaran/robosearch/state"
)

// Sentinel errors for search execution.
var (
	// ErrNilBoard is returned when New receives a nil board.
	ErrNilBoard = errors.New("search: board is nil")

	// ErrNilStrategy is returned when New receives a nil strategy.
	ErrNilStrategy = errors.New("search: strategy is nil")

	// ErrNilFactory is returned when Search receives a nil state factory.
	ErrNilFactory = errors.New("search: state factory is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("search: invalid option supplied")

	// ErrUnknownStrategy is returned by StrategyByName for unknown names.
	ErrUnknownStrategy = errors.New("search: unknown strategy")

	// ErrBadBounds is returned when an iterative-deepening strategy reports
	// a start bound below 1 or a ceiling below the start.
	ErrBadBounds = errors.New("search: invalid depth bounds")

	// ErrEmptyFrontier is the panic value for selecting from an empty frontier.
	ErrEmptyFrontier = errors.New("search: select from empty frontier")
)

// Option configures an Engine via functional arguments.
// Invalid options are recorded and surfaced as ErrOptionViolation by New.
type Option func(*Options)

// Options holds parameters and callbacks customizing a search.
type Options struct {
	// Ctx allows cancellation and deadlines.
	Ctx context.Context

	// Logger receives debug-level search events. Nil disables logging.
	Logger *bolt.Logger

	// OnSelect is called with every state taken off the frontier.
	OnSelect func(s state.State)

	// OnExpand is called after a state was expanded, with the number of
	// successors that survived duplicate suppression.
	OnExpand func(s state.State, added int)

	// MaxExpansions, if > 0, ends the search as not found after that many
	// expansions, counted across every pass of a deepening strategy.
	// A value of 0 disables the cap.
	MaxExpansions int

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns background context, no logger, no-op hooks and no cap.
func DefaultOptions() Options {
	return Options{
		Ctx:      context.Background(),
		OnSelect: func(state.State) {},
		OnExpand: func(state.State, int) {},
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithLogger routes search events to l.
func WithLogger(l *bolt.Logger) Option {
	return func(o *Options) {
		o.Logger = l
	}
}

// WithOnSelect registers a callback run on every selected state.
func WithOnSelect(fn func(s state.State)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnSelect = fn
		}
	}
}

// WithOnExpand registers a callback run after every expansion.
func WithOnExpand(fn func(s state.State, added int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnExpand = fn
		}
	}
}

// WithMaxExpansions caps the number of expansions.
//
//	n > 0: stop after n expansions
//	n == 0: explicit no cap
//	n < 0: invalid option → ErrOptionViolation
func WithMaxExpansions(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: MaxExpansions cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxExpansions = n
	}
}

// Result holds the outcome of a search:
//   - Path: positions from start to goal inclusive, nil when not found.
//   - Processed: states in the order they were taken off the frontier.
//   - Remaining: states still on the frontier when the search stopped.
//   - Bound: the depth bound of the producing pass (iterative deepening only).
//   - Expansions: states expanded, summed over every pass.
//   - Truncated: the MaxExpansions cap ended the search.
type Result struct {
	Strategy   string
	Path       []board.Position
	Found      bool
	Processed  []state.State
	Remaining  []state.State
	Bound      int
	Expansions int
	Truncated  bool
}

// Steps returns the number of moves on the path (0 when not found).
func (r *Result) Steps() int {
	if len(r.Path) == 0 {
		return 0
	}
	return len(r.Path) - 1
}
