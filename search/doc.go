// Package search drives state-space exploration over the state.State
// contract with a pluggable frontier-selection strategy.
//
// What
//
//   - Engine seeds a frontier with the initial state, repeatedly lets the
//     Strategy remove one entry, records it as processed, stops on a goal and
//     otherwise appends the unseen successors.
//   - Duplicate suppression is by state.State.Key: a successor whose key is
//     already processed or on the frontier is dropped, so the first
//     discovered copy wins even when a later one is cheaper.
//   - Deepening passes compare depths instead: a copy shallower than every
//     admitted copy of its key is taken again, so a goal found under one
//     bound is still found under every larger bound.
//   - Parent links live in a state.Tree arena; the path is rebuilt from the
//     goal handle and released with the tree.
//
// Strategies
//
//	bfs     BreadthFirst        oldest entry first (FIFO)
//	dfs     DepthFirst          newest entry first (LIFO)
//	iddfs   IterativeDeepening  LIFO, discarding entries with depth ≥ bound;
//	                            bounds 2..128, each bound a fresh traversal
//	greedy  Greedy              minimum HeuristicCost, first minimum wins
//	astar   Guided              minimum heuristic + path + hazard cost
//
// Guided evaluation
//
//	In its default mode Guided scores every candidate as its own
//	HeuristicCost plus the PathCost and HazardCost of the best candidate seen
//	so far in the scan. Set PerCandidate to score each candidate only on its
//	own terms; the two modes can pick different states.
//
// Usage
//
//	b, _ := board.FromRows("r..", ".w.", "..g")
//	eng, err := search.New(b, search.BreadthFirst{})
//	if err != nil {
//		// ErrNilBoard, ErrNilStrategy, ErrOptionViolation
//	}
//	res, err := eng.Search(state.NewRobotFactory(state.WithSeed(7)))
//	if err != nil {
//		// factory errors (missing robot/goal), context errors, ErrBadBounds
//	}
//	if res.Found {
//		fmt.Println(res.Path)
//	}
//
// Options
//
//   - WithContext(ctx):        cancellation, checked once per iteration.
//   - WithLogger(l):           debug-level search events through bolt.
//   - WithOnSelect(fn):        hook after a state is taken off the frontier.
//   - WithOnExpand(fn):        hook after a state's successors were filtered.
//   - WithMaxExpansions(n):    stop as "not found" after n expansions summed
//     over every deepening pass (0 = no cap).
//
// Not finding a goal is a normal outcome (Result.Found == false), not an error.
// Selecting from an empty Frontier panics with ErrEmptyFrontier.
//
// Complexity (N = states discovered)
//
//   - bfs, dfs:       O(N) selections, O(1) each.
//   - greedy, astar:  O(N) per selection (linear scan + in-place removal).
//   - iddfs:          one full traversal per bound.
package search
