package search_test

import (
	"github.com/katalvlaran/robosearch/board"
	"github.com/katalvlaran/robosearch/state"
)

// fakeState is a hand-built node used to drive strategies and the engine
// without a board.
type fakeState struct {
	key    string
	pos    board.Position
	depth  int
	parent state.Handle
	goal   bool
	h, p   float64
	hz     float64
	next   func(self state.Handle) []state.State
}

var _ state.State = (*fakeState)(nil)

func (f *fakeState) AgentCode() board.Code { return board.Robot }
func (f *fakeState) GoalCode() board.Code { return board.Goal }
func (f *fakeState) PortalCode() board.Code { return board.Portal }
func (f *fakeState) HazardCode() board.Code { return board.Fire }
func (f *fakeState) Position() board.Position { return f.pos }
func (f *fakeState) Depth() int { return f.depth }
func (f *fakeState) Parent() state.Handle { return f.parent }
func (f *fakeState) HasAllItems() bool { return true }
func (f *fakeState) IsGoal() bool { return f.goal }
func (f *fakeState) Key() string { return f.key }
func (f *fakeState) HeuristicCost() float64 { return f.h }
func (f *fakeState) PathCost() float64 { return f.p }
func (f *fakeState) HazardCost() float64 { return f.hz }
func (f *fakeState) LegalPositions() []board.Position { return nil }
func (f *fakeState) Successors(self state.Handle) []state.State {
	if f.next == nil {
		return nil
	}
	return f.next(self)
}
