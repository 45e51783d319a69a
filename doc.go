// Package robosearch is a small state-space search toolkit built around a
// grid robot that must collect boxes before it reaches the goal.
//
// What is in here?
//
//	board/    — immutable grid maps: parsing, YAML/text loading, symbol lookup
//	state/    — the State contract, the RobotState rules and the arena Tree
//	search/   — the Engine, the Frontier and the selection strategies
//	internal/ — logging (bolt), YAML run configuration, the cobra CLI
//	cmd/      — the robosearch binary
//
// Strategies:
//
//   - bfs    — oldest frontier entry first; shortest paths on unit moves
//   - dfs    — newest frontier entry first
//   - iddfs  — depth-first passes under bounds 2..128
//   - greedy — lowest straight-line distance to the goal
//   - astar  — lowest distance + path length + fire hazard
//
// Quick start:
//
//	b, _ := board.FromRows("r..", ".w.", "..g")
//	eng, _ := search.New(b, search.BreadthFirst{})
//	res, _ := eng.Search(state.NewRobotFactory(state.WithSeed(1)))
//	fmt.Println(res.Found, res.Path)
package robosearch
