package state

import "github.com/katalvlaran/robosearch/board"

// Tree is the arena owning every state built during one search.
// Handles stay valid for the life of the tree.
type Tree struct {
	nodes []State
}

// NewTree returns an empty arena with room for capHint states.
func NewTree(capHint int) *Tree {
	if capHint < 0 {
		capHint = 0
	}
	return &Tree{nodes: make([]State, 0, capHint)}
}

// Add stores s and returns its handle.
func (t *Tree) Add(s State) Handle {
	t.nodes = append(t.nodes, s)
	return Handle(len(t.nodes) - 1)
}

// Get returns the state behind h. It panics on a handle the tree never issued.
func (t *Tree) Get(h Handle) State {
	return t.nodes[h]
}

// Len returns the number of stored states.
func (t *Tree) Len() int {
	return len(t.nodes)
}

// Chain returns the states from the root down to h.
func (t *Tree) Chain(h Handle) []State {
	var chain []State
	for cur := h; cur != NoParent; cur = t.nodes[cur].Parent() {
		chain = append(chain, t.nodes[cur])
	}
	// reverse to get root → h
	for i, j := 0, len(chain)-1; i < j; i, j = i+1, j-1 {
		chain[i], chain[j] = chain[j], chain[i]
	}

	return chain
}

// Path returns the positions from the root down to h.
func (t *Tree) Path(h Handle) []board.Position {
	chain := t.Chain(h)
	path := make([]board.Position, len(chain))
	for i, s := range chain {
		path[i] = s.Position()
	}

	return path
}
