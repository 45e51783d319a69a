package state

import (
	"fmt"
	"math"
	"math/rand"
	"strings"

	"github.com/katalvlaran/robosearch/board"
)

// moves are the orthogonal unit steps: right, left, down, up.
var moves = [4][2]int{{0, 1}, {0, -1}, {1, 0}, {-1, 0}}

// world holds the per-search facts shared by every RobotState.
// It is read-only except for the random stream.
type world struct {
	board     *board.Board
	start     board.Position
	goal      board.Position
	hazard    board.Position
	hasHazard bool
	portals   []board.Position
	boxTotal  int
	orangeTot int
	rng       *rand.Rand
	teleport  float64
}

// RobotState is a robot on a grid board collecting boxes on its way to the goal.
type RobotState struct {
	w      *world
	parent Handle
	pos    board.Position
	depth  int

	// Collected items and used portals, in first-seen order, each position
	// at most once. Children share these backing arrays with their parent and
	// only reallocate on append.
	boxes   []board.Position
	orange  []board.Position
	portals []board.Position

	hasAll bool
}

var _ State = (*RobotState)(nil)

// NewRobotFactory returns a Factory building the initial RobotState from a board.
// The random stream is created once and shared by every search the Factory seeds.
func NewRobotFactory(opts ...Option) Factory {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.Rand == nil && o.err == nil {
		o.Rand = rngFromClock()
	}

	return func(b *board.Board) (State, error) {
		if o.err != nil {
			return nil, o.err
		}
		return NewRobotState(b, o)
	}
}

// NewRobotState locates the robot, goal and optional fire on b and builds the
// initial state. A missing robot or goal is an error; a missing fire disables
// the hazard term.
func NewRobotState(b *board.Board, o Options) (*RobotState, error) {
	if b == nil {
		return nil, ErrNilBoard
	}
	if o.err != nil {
		return nil, o.err
	}
	w := &world{
		board:     b,
		portals:   b.FindAll(board.Portal),
		boxTotal:  len(b.PrimaryItems()),
		orangeTot: len(b.SecondaryItems()),
		rng:       o.Rand,
		teleport:  o.PortalProbability,
	}
	if w.rng == nil {
		w.rng = rngFromClock()
	}

	s := &RobotState{w: w, parent: NoParent, depth: 1}
	var err error
	if w.start, err = b.FindPosition(s.AgentCode()); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrNoAgent, err)
	}
	if w.goal, err = b.FindPosition(s.GoalCode()); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrNoGoal, err)
	}
	if hz, herr := b.FindPosition(s.HazardCode()); herr == nil {
		w.hazard, w.hasHazard = hz, true
	}
	s.pos = w.start
	s.collect(false)

	return s, nil
}

// child builds the successor at pos. usedPortal records the parent's portal.
func (s *RobotState) child(self Handle, pos board.Position, usedPortal bool) *RobotState {
	c := &RobotState{
		w:       s.w,
		parent:  self,
		pos:     pos,
		depth:   s.depth + 1,
		boxes:   s.boxes,
		orange:  s.orange,
		portals: s.portals,
	}
	if usedPortal && !contains(c.portals, s.pos) {
		c.portals = appendShared(c.portals, s.pos)
	}
	c.collect(s.hasAll)

	return c
}

// collect applies the pickup rules for the current cell.
func (s *RobotState) collect(inherited bool) {
	cell := s.w.board.CellAt(s.pos.Row, s.pos.Col)
	switch {
	case cell == board.Box && !contains(s.boxes, s.pos):
		s.boxes = appendShared(s.boxes, s.pos)
	case cell == board.OrangeBox && !contains(s.orange, s.pos) && len(s.boxes) > len(s.orange):
		s.orange = appendShared(s.orange, s.pos)
	}
	s.hasAll = inherited ||
		(len(s.boxes) == s.w.boxTotal && len(s.orange) == s.w.orangeTot)
}

// AgentCode returns the robot marker.
func (s *RobotState) AgentCode() board.Code { return board.Robot }

// GoalCode returns the goal marker.
func (s *RobotState) GoalCode() board.Code { return board.Goal }

// PortalCode returns the portal marker.
func (s *RobotState) PortalCode() board.Code { return board.Portal }

// HazardCode returns the fire marker.
func (s *RobotState) HazardCode() board.Code { return board.Fire }

// Position returns the robot coordinate.
func (s *RobotState) Position() board.Position { return s.pos }

// Depth returns the state depth (1 for the initial state).
func (s *RobotState) Depth() int { return s.depth }

// Parent returns the handle of the expanded state.
func (s *RobotState) Parent() Handle { return s.parent }

// HasAllItems reports whether every box and orange box is collected.
func (s *RobotState) HasAllItems() bool { return s.hasAll }

// Start returns the robot start position.
func (s *RobotState) Start() board.Position { return s.w.start }

// Goal returns the goal position.
func (s *RobotState) Goal() board.Position { return s.w.goal }

// Boxes returns the collected boxes in pickup order. Do not modify.
func (s *RobotState) Boxes() []board.Position { return s.boxes }

// OrangeBoxes returns the collected orange boxes in pickup order. Do not modify.
func (s *RobotState) OrangeBoxes() []board.Position { return s.orange }

// UsedPortals returns the portals that sent the robot back to start. Do not modify.
func (s *RobotState) UsedPortals() []board.Position { return s.portals }

// OnPortal reports whether the robot stands on a portal cell.
func (s *RobotState) OnPortal() bool {
	return s.w.board.CellAt(s.pos.Row, s.pos.Col) == s.PortalCode()
}

// LegalPositions lists the positions reachable in one step.
// On a portal the result is random; see the package documentation.
func (s *RobotState) LegalPositions() []board.Position {
	out, _ := s.legal()
	return out
}

// legal computes the successor positions and whether the portal was used.
func (s *RobotState) legal() ([]board.Position, bool) {
	out := make([]board.Position, 0, len(moves)+len(s.w.portals))
	for _, d := range moves {
		next := board.Position{Row: s.pos.Row + d[0], Col: s.pos.Col + d[1]}
		if !s.w.board.InBounds(next) || s.w.board.IsWall(next) {
			continue
		}
		out = append(out, next)
	}
	if !s.OnPortal() {
		return out, false
	}

	if s.w.rng.Float64() < s.w.teleport {
		for _, p := range s.w.portals {
			if p != s.pos {
				out = append(out, p)
			}
		}
		return out, false
	}
	return []board.Position{s.w.start}, true
}

// Successors builds one child per legal position with parent self.
func (s *RobotState) Successors(self Handle) []State {
	positions, usedPortal := s.legal()
	out := make([]State, 0, len(positions))
	for _, p := range positions {
		out = append(out, s.child(self, p, usedPortal))
	}

	return out
}

// IsGoal reports whether the robot is on the goal with every item collected.
func (s *RobotState) IsGoal() bool {
	return s.pos == s.w.goal && s.hasAll
}

// Key renders position, boxes, used portals and orange boxes in order.
func (s *RobotState) Key() string {
	var sb strings.Builder
	sb.Grow(16 * (1 + len(s.boxes) + len(s.portals) + len(s.orange)))
	sb.WriteString(s.pos.String())
	writeList(&sb, s.boxes)
	writeList(&sb, s.portals)
	writeList(&sb, s.orange)

	return sb.String()
}

// HeuristicCost is the Euclidean distance to the goal.
func (s *RobotState) HeuristicCost() float64 {
	return euclid(s.pos, s.w.goal)
}

// PathCost equals the depth: every step costs one.
func (s *RobotState) PathCost() float64 {
	return float64(s.depth)
}

// HazardCost is HazardWeight times the Euclidean distance to the fire,
// or 0 when the board has no fire.
func (s *RobotState) HazardCost() float64 {
	if !s.w.hasHazard {
		return 0
	}
	return HazardWeight * euclid(s.pos, s.w.hazard)
}

// String is a short debugging form.
func (s *RobotState) String() string {
	return fmt.Sprintf("robot%s depth=%d items=%t", s.pos, s.depth, s.hasAll)
}

func euclid(a, b board.Position) float64 {
	dr := float64(a.Row - b.Row)
	dc := float64(a.Col - b.Col)
	return math.Sqrt(dr*dr + dc*dc)
}

// appendShared appends without writing into a backing array another state may share.
func appendShared(list []board.Position, p board.Position) []board.Position {
	return append(list[:len(list):len(list)], p)
}

func contains(list []board.Position, p board.Position) bool {
	for _, q := range list {
		if q == p {
			return true
		}
	}
	return false
}

func writeList(sb *strings.Builder, list []board.Position) {
	sb.WriteByte('[')
	for i, p := range list {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(p.String())
	}
	sb.WriteByte(']')
}
