package search

import (
	"fmt"
	"time"

	"github.com/katalvlaran/robosearch/board"
	"github.com/katalvlaran/robosearch/internal/logging"
	"github.com/katalvlaran/robosearch/state"
)

// initialCapacity sizes the per-search containers.
const initialCapacity = 64

// Engine runs searches over one board with one strategy.
// Every Search call owns its frontier, membership sets and tree; an Engine is
// still not safe for concurrent use because strategies may hold state.
type Engine struct {
	board    *board.Board
	strategy Strategy
	opts     Options
}

// pass encapsulates the mutable state of one traversal.
type pass struct {
	eng       *Engine
	tree      *state.Tree
	frontier  *Frontier
	processed []state.State
	seen      map[string]struct{}
	res       *Result

	// shallowest admitted depth per key, deepening passes only
	depths map[string]int
}

// New builds an Engine for b and strategy, applying any number of Options.
// Returns ErrNilBoard, ErrNilStrategy or ErrOptionViolation for invalid input.
func New(b *board.Board, strategy Strategy, opts ...Option) (*Engine, error) {
	if b == nil {
		return nil, ErrNilBoard
	}
	if strategy == nil {
		return nil, ErrNilStrategy
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	return &Engine{board: b, strategy: strategy, opts: o}, nil
}

// Strategy returns the engine's strategy.
func (e *Engine) Strategy() Strategy {
	return e.strategy
}

// Search explores from the state built by factory until a goal is processed
// or the frontier is exhausted. A missing goal is reported through
// Result.Found; errors are reserved for factory failures, cancellation and
// invalid deepening bounds.
func (e *Engine) Search(factory state.Factory) (*Result, error) {
	if factory == nil {
		return nil, ErrNilFactory
	}
	started := time.Now()
	e.debug("search started")

	var (
		res *Result
		err error
	)
	if d, ok := e.strategy.(Deepener); ok {
		res, err = e.deepen(factory, d)
	} else {
		res, err = e.run(factory, 0, 0)
	}
	if err != nil {
		e.debug("search aborted", logging.ErrorField(err))
		return res, err
	}

	e.debug("search finished",
		logging.Found(res.Found),
		logging.PathLength(res.Steps()),
		logging.Processed(len(res.Processed)),
		logging.Remaining(len(res.Remaining)),
		logging.Expansions(res.Expansions),
		logging.Duration(time.Since(started)),
	)
	return res, nil
}

// deepen runs one fresh traversal per bound until a goal is found or the
// ceiling is exhausted.
func (e *Engine) deepen(factory state.Factory, d Deepener) (*Result, error) {
	start, ceiling := d.Bounds()
	if start < 1 || ceiling < start {
		return nil, fmt.Errorf("%w: start=%d ceiling=%d", ErrBadBounds, start, ceiling)
	}

	var res *Result
	for bound := start; bound <= ceiling; bound++ {
		d.SetBound(bound)
		spent := 0
		if res != nil {
			spent = res.Expansions
		}
		var err error
		if res, err = e.run(factory, bound, spent); err != nil || res.Found || res.Truncated {
			return res, err
		}
		e.debug("bound exhausted", logging.Bound(bound), logging.Processed(len(res.Processed)))
	}

	return res, nil
}

// run performs one traversal. A positive bound marks a deepening pass: the
// bound is recorded in the result and duplicate suppression compares depths.
// spent carries the expansions of earlier passes toward the cap.
func (e *Engine) run(factory state.Factory, bound, spent int) (*Result, error) {
	initial, err := factory(e.board)
	if err != nil {
		return nil, fmt.Errorf("search: initial state: %w", err)
	}

	p := &pass{
		eng:       e,
		tree:      state.NewTree(initialCapacity),
		frontier:  NewFrontier(initialCapacity),
		processed: make([]state.State, 0, initialCapacity),
		seen:      make(map[string]struct{}, initialCapacity),
		res:       &Result{Strategy: e.strategy.Name(), Bound: bound, Expansions: spent},
	}
	if bound > 0 {
		p.depths = make(map[string]int, initialCapacity)
		p.depths[initial.Key()] = initial.Depth()
	}
	p.frontier.PushBack(Entry{Handle: p.tree.Add(initial), State: initial})

	err = p.loop()
	p.res.Processed = p.processed
	p.res.Remaining = p.frontier.States()
	return p.res, err
}

// loop processes the frontier until a goal, exhaustion, the expansion cap or
// cancellation.
func (p *pass) loop() error {
	ctx := p.eng.opts.Ctx
	for p.frontier.Len() > 0 {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		entry, ok := p.eng.strategy.Select(p.frontier)
		if !ok {
			return nil
		}
		p.visit(entry)

		if entry.State.IsGoal() {
			p.res.Found = true
			p.res.Path = ReconstructPath(p.tree, entry.Handle)
			return nil
		}
		if limit := p.eng.opts.MaxExpansions; limit > 0 && p.res.Expansions >= limit {
			p.res.Truncated = true
			return nil
		}
		p.expand(entry)
	}
	return nil
}

// visit records the entry as processed and calls OnSelect.
func (p *pass) visit(entry Entry) {
	p.processed = append(p.processed, entry.State)
	p.seen[entry.State.Key()] = struct{}{}
	p.eng.opts.OnSelect(entry.State)
}

// expand pushes every successor admit accepts.
func (p *pass) expand(entry Entry) {
	p.res.Expansions++
	added := 0
	for _, child := range entry.State.Successors(entry.Handle) {
		if !p.admit(child) {
			continue
		}
		p.frontier.PushBack(Entry{Handle: p.tree.Add(child), State: child})
		added++
	}
	p.eng.opts.OnExpand(entry.State, added)
}

// admit reports whether a successor joins the frontier. The first discovered
// copy of a key wins, except in deepening passes where a copy strictly
// shallower than every admitted one is taken again: a state first met deep
// under the bound may have had its subtree cut off.
func (p *pass) admit(s state.State) bool {
	key := s.Key()
	if p.depths != nil {
		if d, ok := p.depths[key]; ok && d <= s.Depth() {
			return false
		}
		p.depths[key] = s.Depth()
		return true
	}
	if _, done := p.seen[key]; done || p.frontier.Contains(key) {
		return false
	}
	return true
}

// ReconstructPath returns the positions from the root of tree down to h.
func ReconstructPath(tree *state.Tree, h state.Handle) []board.Position {
	return tree.Path(h)
}

func (e *Engine) debug(msg string, fields ...logging.Field) {
	if e.opts.Logger == nil {
		return
	}
	base := []logging.Field{logging.Component("search"), logging.Strategy(e.strategy.Name())}
	logging.Apply(e.opts.Logger.Debug(), append(base, fields...)...).Msg(msg)
}
