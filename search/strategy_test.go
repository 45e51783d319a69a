package search_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/robosearch/search"
	"github.com/katalvlaran/robosearch/state"
)

// costFrontier builds a frontier from fake states in order.
func costFrontier(states ...*fakeState) *search.Frontier {
	f := search.NewFrontier(len(states))
	for i, s := range states {
		f.PushBack(search.Entry{Handle: state.Handle(i), State: s})
	}
	return f
}

func TestBreadthFirst_DepthFirst(t *testing.T) {
	e, ok := search.BreadthFirst{}.Select(frontierOf("a", "b", "c"))
	require.True(t, ok)
	assert.Equal(t, "a", e.State.Key())

	e, ok = search.DepthFirst{}.Select(frontierOf("a", "b", "c"))
	require.True(t, ok)
	assert.Equal(t, "c", e.State.Key())
}

// TestIterativeDeepening_Discards checks LIFO order with depth filtering.
func TestIterativeDeepening_Discards(t *testing.T) {
	s := search.NewIterativeDeepening()
	assert.Equal(t, search.DefaultStartBound, s.Bound())
	start, ceiling := s.Bounds()
	assert.Equal(t, 2, start)
	assert.Equal(t, 128, ceiling)

	s.SetBound(3)
	f := costFrontier(
		&fakeState{key: "d1", depth: 1},
		&fakeState{key: "d3", depth: 3},
		&fakeState{key: "d2", depth: 2},
		&fakeState{key: "d5", depth: 5},
	)

	e, ok := s.Select(f)
	require.True(t, ok)
	assert.Equal(t, "d2", e.State.Key())
	assert.False(t, f.Contains("d5"), "discarded entries leave the frontier")

	e, ok = s.Select(f)
	require.True(t, ok)
	assert.Equal(t, "d1", e.State.Key())

	_, ok = s.Select(costFrontier(&fakeState{key: "deep", depth: 3}))
	assert.False(t, ok)
}

// TestGreedy_FirstMinimumWins checks the minimum scan and in-place removal.
func TestGreedy_FirstMinimumWins(t *testing.T) {
	f := costFrontier(
		&fakeState{key: "a", h: 3},
		&fakeState{key: "b", h: 1},
		&fakeState{key: "c", h: 2},
		&fakeState{key: "d", h: 1},
	)
	e, ok := search.Greedy{}.Select(f)
	require.True(t, ok)
	assert.Equal(t, "b", e.State.Key())
	assert.Equal(t, []string{"a", "c", "d"}, keysOf(f))

	e, _ = search.Greedy{}.Select(f)
	assert.Equal(t, "d", e.State.Key())
}

// TestGuided_Modes shows the reference scan and the per-candidate scan
// picking different states from the same frontier.
//
//	state  h  path  own total
//	a      5  1     6
//	b      2  10    12
//	c      4  0     4
//
// Reference: b scores 2 + a.path = 3 and becomes best; c then scores
// 4 + b.path = 14. Per-candidate: c has the lowest own total.
func TestGuided_Modes(t *testing.T) {
	build := func() *search.Frontier {
		return costFrontier(
			&fakeState{key: "a", h: 5, p: 1},
			&fakeState{key: "b", h: 2, p: 10},
			&fakeState{key: "c", h: 4, p: 0},
		)
	}

	e, ok := search.Guided{}.Select(build())
	require.True(t, ok)
	assert.Equal(t, "b", e.State.Key())

	e, ok = search.Guided{PerCandidate: true}.Select(build())
	require.True(t, ok)
	assert.Equal(t, "c", e.State.Key())
}

// TestGuided_DefaultScanMissesLowestHeuristic keeps the reference ordering:
// once b becomes best, c is scored with b's path cost and loses even though
// its heuristic is the lowest on the frontier.
//
//	state  h  path
//	a      5  1
//	b      3  4
//	c      2  1
func TestGuided_DefaultScanMissesLowestHeuristic(t *testing.T) {
	build := func() *search.Frontier {
		return costFrontier(
			&fakeState{key: "a", h: 5, p: 1},
			&fakeState{key: "b", h: 3, p: 4},
			&fakeState{key: "c", h: 2, p: 1},
		)
	}

	e, _ := search.Greedy{}.Select(build())
	assert.Equal(t, "c", e.State.Key())

	e, _ = search.Guided{PerCandidate: true}.Select(build())
	assert.Equal(t, "c", e.State.Key())

	e, _ = search.Guided{}.Select(build())
	assert.Equal(t, "b", e.State.Key())
}

func TestGuided_HazardAndTies(t *testing.T) {
	f := costFrontier(
		&fakeState{key: "near", h: 1, p: 1, hz: 7},
		&fakeState{key: "far", h: 1, p: 1, hz: 14},
		&fakeState{key: "twin", h: 1, p: 1, hz: 7},
	)
	e, _ := search.Guided{PerCandidate: true}.Select(f)
	assert.Equal(t, "near", e.State.Key())
	e, _ = search.Guided{PerCandidate: true}.Select(f)
	assert.Equal(t, "twin", e.State.Key())
}

func TestStrategyByName(t *testing.T) {
	for _, name := range search.Strategies() {
		s, err := search.StrategyByName(name)
		require.NoError(t, err)
		assert.Equal(t, name, s.Name())
	}

	aliases := map[string]string{
		"breadth-first":       "bfs",
		"Depth-First":         "dfs",
		"iterative-deepening": "iddfs",
		" guided ":            "astar",
	}
	for alias, want := range aliases {
		s, err := search.StrategyByName(alias)
		require.NoError(t, err, alias)
		assert.Equal(t, want, s.Name())
	}

	_, err := search.StrategyByName("dijkstra")
	assert.ErrorIs(t, err, search.ErrUnknownStrategy)
}

func TestStrategyByName_FreshDeepener(t *testing.T) {
	a, _ := search.StrategyByName("iddfs")
	b, _ := search.StrategyByName("iddfs")
	a.(search.Deepener).SetBound(9)
	assert.Equal(t, 2, b.(*search.IterativeDeepening).Bound())
}
