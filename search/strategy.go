package search

import (
	"fmt"
	"strings"
)

// Strategy removes and returns the next entry to process from a non-empty
// frontier. ok is false only when the strategy discarded every remaining
// entry, which ends the pass.
type Strategy interface {
	Name() string
	Select(f *Frontier) (e Entry, ok bool)
}

// Deepener is a Strategy run once per depth bound, start..ceiling inclusive,
// each bound a fresh traversal.
type Deepener interface {
	Strategy
	Bounds() (start, ceiling int)
	SetBound(bound int)
}

// Default iterative-deepening bounds.
const (
	DefaultStartBound   = 2
	DefaultCeilingBound = 128
)

// BreadthFirst processes the oldest entry first.
type BreadthFirst struct{}

// Name returns "bfs".
func (BreadthFirst) Name() string { return "bfs" }

// Select pops the front of the frontier.
func (BreadthFirst) Select(f *Frontier) (Entry, bool) {
	return f.PopFront(), true
}

// DepthFirst processes the newest entry first.
type DepthFirst struct{}

// Name returns "dfs".
func (DepthFirst) Name() string { return "dfs" }

// Select pops the back of the frontier.
func (DepthFirst) Select(f *Frontier) (Entry, bool) {
	return f.PopBack(), true
}

// IterativeDeepening is depth-first selection under a depth bound.
// It holds the current bound, so one value must not serve concurrent searches.
type IterativeDeepening struct {
	Start   int
	Ceiling int

	bound int
}

// NewIterativeDeepening returns the strategy with bounds 2..128.
func NewIterativeDeepening() *IterativeDeepening {
	return &IterativeDeepening{Start: DefaultStartBound, Ceiling: DefaultCeilingBound}
}

// Name returns "iddfs".
func (*IterativeDeepening) Name() string { return "iddfs" }

// Bounds returns the first and last bound to try.
func (s *IterativeDeepening) Bounds() (start, ceiling int) { return s.Start, s.Ceiling }

// SetBound sets the bound of the next pass.
func (s *IterativeDeepening) SetBound(bound int) { s.bound = bound }

// Bound returns the active bound, defaulting to Start before the first pass.
func (s *IterativeDeepening) Bound() int {
	if s.bound == 0 {
		return s.Start
	}
	return s.bound
}

// Select pops from the back, discarding entries whose depth reaches the bound.
func (s *IterativeDeepening) Select(f *Frontier) (Entry, bool) {
	bound := s.Bound()
	for f.Len() > 0 {
		e := f.PopBack()
		if e.State.Depth() < bound {
			return e, true
		}
	}
	return Entry{}, false
}

// Greedy processes the entry with the lowest heuristic cost.
type Greedy struct{}

// Name returns "greedy".
func (Greedy) Name() string { return "greedy" }

// Select scans the frontier; the first entry reaching the minimum wins.
func (Greedy) Select(f *Frontier) (Entry, bool) {
	f.mustNotBeEmpty()
	best := 0
	bestCost := f.At(0).State.HeuristicCost()
	for i := 1; i < f.Len(); i++ {
		if c := f.At(i).State.HeuristicCost(); c < bestCost {
			best, bestCost = i, c
		}
	}
	return f.RemoveAt(best), true
}

// Guided processes the entry with the lowest heuristic + path + hazard cost.
//
// By default the path and hazard terms of each comparison come from the best
// candidate found so far in the scan, not from the candidate itself.
// PerCandidate scores every candidate on its own three terms.
type Guided struct {
	PerCandidate bool
}

// Name returns "astar".
func (Guided) Name() string { return "astar" }

// Select scans the frontier; the first entry reaching the minimum wins.
func (g Guided) Select(f *Frontier) (Entry, bool) {
	f.mustNotBeEmpty()
	best := 0
	ref := f.At(0).State
	bestCost := ref.HeuristicCost() + ref.PathCost() + ref.HazardCost()
	for i := 0; i < f.Len(); i++ {
		s := f.At(i).State
		var c float64
		if g.PerCandidate {
			c = s.HeuristicCost() + s.PathCost() + s.HazardCost()
		} else {
			ref = f.At(best).State
			c = s.HeuristicCost() + ref.PathCost() + ref.HazardCost()
		}
		if c < bestCost {
			best, bestCost = i, c
		}
	}
	return f.RemoveAt(best), true
}

// Strategies lists the names accepted by StrategyByName.
func Strategies() []string {
	return []string{"bfs", "dfs", "iddfs", "greedy", "astar"}
}

// StrategyByName returns a fresh strategy for name (case-insensitive).
// "breadth-first", "depth-first", "iterative-deepening" and "guided" are
// accepted as aliases.
func StrategyByName(name string) (Strategy, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "bfs", "breadth-first":
		return BreadthFirst{}, nil
	case "dfs", "depth-first":
		return DepthFirst{}, nil
	case "iddfs", "iterative-deepening":
		return NewIterativeDeepening(), nil
	case "greedy":
		return Greedy{}, nil
	case "astar", "guided":
		return Guided{}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownStrategy, name)
	}
}
