// Package state defines the node contract consumed by the search engine and
// its grid-robot instantiation.
//
// What:
//
//   - State: one node of an implicitly defined search graph. It knows its
//     position, depth, parent handle and identity key, enumerates its legal
//     successors and reports the cost terms used by guided strategies.
//   - RobotState: a robot on a board.Board that must pick up every box and
//     orange box, may teleport through portals, and must reach the goal cell.
//   - Tree: an arena owning every state built during one search. Parent links
//     are stable Handles into the arena, so a whole search tree is released at
//     once and no back-pointers exist.
//
// Movement:
//
//	From (row, col) the robot steps right, left, down or up (in that order).
//	A step is legal when in bounds and not a wall. Standing on a portal adds a
//	random outcome: with probability 0.7 every other portal is reachable as
//	well; otherwise the only successor is the robot start and the portal is
//	recorded as used (once per portal).
//
// Items:
//
//	Boxes are picked up on first visit. An orange box is picked up only while
//	more boxes than orange boxes have been collected. HasAllItems turns true
//	once both counts reach the board totals and stays true for descendants.
//
// Determinism:
//
//	Portal expansion is random and therefore not idempotent: expanding the
//	same portal state twice may yield different successors. Pin the stream
//	with WithSeed or WithRand for reproducible runs. Without either option the
//	stream is seeded from the clock.
//
// Errors:
//
//   - ErrNoAgent / ErrNoGoal: the board lacks a robot or goal cell
//     (both wrap board.ErrSymbolNotFound).
//   - ErrNilBoard: the factory was invoked without a board.
//   - ErrOptionViolation: an invalid Option was supplied.
package state
