// Package board provides the read-only grid collaborator consumed by the
// robot search: a rectangular 2D array of single-byte cell codes.
//
// What:
//
//   - Board wraps a rectangular [][]Code grid and is immutable once built.
//   - Locates cells by code (first match or all matches, row-major order).
//   - Reports the item coordinate sets (boxes and orange boxes).
//   - Loads maps from plain text or YAML documents.
//
// Cell codes:
//
//	r  robot start        g  goal
//	w  wall               b  box (primary item)
//	o  orange box         p  portal
//	f  fire (hazard)      .  empty floor
//
// Text format: one row per non-blank line, whitespace inside a line ignored:
//
//	r . .
//	. w .
//	. . g
//
// YAML format:
//
//	name: corner
//	rows:
//	  - "r.."
//	  - ".w."
//	  - "..g"
//
// Errors:
//
//   - ErrEmptyGrid: input grid has no rows or no columns.
//   - ErrNonRectangular: rows have differing lengths.
//   - ErrSymbolNotFound: FindPosition found no cell with the requested code.
//   - ErrInvalidSymbol: Parse met a non-ASCII rune or invalid UTF-8.
//   - ErrUnsupportedFormat, ErrInvalidFormat: map loading failures.
//
// Complexity:
//
//   - New, Parse:            O(R×C) time and memory (deep copy).
//   - FindPosition, FindAll: O(R×C).
//   - CellAt, InBounds:      O(1).
package board
