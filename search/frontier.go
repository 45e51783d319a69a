package search

import "github.com/katalvlaran/robosearch/state"

// Entry pairs a state with its handle in the search tree.
type Entry struct {
	Handle state.Handle
	State  state.State
}

// Frontier is the insertion-ordered container of discovered but unprocessed
// states, with a membership set keyed by state.State.Key. Every removal keeps
// the order of the remaining entries and updates the membership set.
// A key pushed twice stays a member until both entries are removed.
type Frontier struct {
	items []Entry
	keys  map[string]int
}

// NewFrontier returns an empty frontier with room for capHint entries.
func NewFrontier(capHint int) *Frontier {
	if capHint < 0 {
		capHint = 0
	}
	return &Frontier{
		items: make([]Entry, 0, capHint),
		keys:  make(map[string]int, capHint),
	}
}

// Len returns the number of entries.
func (f *Frontier) Len() int {
	return len(f.items)
}

// At returns the i-th entry in insertion order.
func (f *Frontier) At(i int) Entry {
	return f.items[i]
}

// Contains reports whether a state with key is on the frontier.
func (f *Frontier) Contains(key string) bool {
	return f.keys[key] > 0
}

// PushBack appends e and records its key.
func (f *Frontier) PushBack(e Entry) {
	f.items = append(f.items, e)
	f.keys[e.State.Key()]++
}

// PopFront removes and returns the oldest entry.
func (f *Frontier) PopFront() Entry {
	f.mustNotBeEmpty()
	e := f.items[0]
	f.items[0] = Entry{}
	f.items = f.items[1:]
	f.forget(e.State.Key())
	return e
}

// PopBack removes and returns the newest entry.
func (f *Frontier) PopBack() Entry {
	f.mustNotBeEmpty()
	last := len(f.items) - 1
	e := f.items[last]
	f.items[last] = Entry{}
	f.items = f.items[:last]
	f.forget(e.State.Key())
	return e
}

// RemoveAt removes and returns the i-th entry, shifting later entries left.
// Complexity: O(n).
func (f *Frontier) RemoveAt(i int) Entry {
	f.mustNotBeEmpty()
	e := f.items[i]
	copy(f.items[i:], f.items[i+1:])
	last := len(f.items) - 1
	f.items[last] = Entry{}
	f.items = f.items[:last]
	f.forget(e.State.Key())
	return e
}

// States returns the frontier states in insertion order.
func (f *Frontier) States() []state.State {
	out := make([]state.State, len(f.items))
	for i, e := range f.items {
		out[i] = e.State
	}
	return out
}

func (f *Frontier) forget(key string) {
	if f.keys[key] <= 1 {
		delete(f.keys, key)
		return
	}
	f.keys[key]--
}

func (f *Frontier) mustNotBeEmpty() {
	if len(f.items) == 0 {
		panic(ErrEmptyFrontier)
	}
}
