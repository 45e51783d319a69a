package board

import (
	"errors"
	"strconv"
)

// Sentinel errors for board operations.
var (
	// ErrEmptyGrid indicates input grid has no rows or no columns.
	ErrEmptyGrid = errors.New("board: input grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("board: all rows must have the same length")
	// ErrSymbolNotFound indicates that no cell carries the requested code.
	ErrSymbolNotFound = errors.New("board: symbol not found")
	// ErrUnsupportedFormat indicates a map file extension or format that cannot be loaded.
	ErrUnsupportedFormat = errors.New("board: unsupported map format")
	// ErrInvalidFormat indicates a map document that could not be decoded.
	ErrInvalidFormat = errors.New("board: invalid map document")
	// ErrInvalidSymbol indicates a map character outside ASCII, including invalid UTF-8.
	ErrInvalidSymbol = errors.New("board: symbol is not a single ASCII character")
)

// Code is the single-byte symbol stored in a board cell.
type Code byte

// Cell codes understood by the robot search.
const (
	Empty     Code = '.'
	Robot     Code = 'r'
	Goal      Code = 'g'
	Wall      Code = 'w'
	Box       Code = 'b'
	OrangeBox Code = 'o'
	Portal    Code = 'p'
	Fire      Code = 'f'
)

// String returns the code as a one-character string.
func (c Code) String() string {
	return string(rune(c))
}

// Position is a (row, column) coordinate on the board.
type Position struct {
	Row, Col int
}

// String renders the position as "(row, col)".
func (p Position) String() string {
	return "(" + strconv.Itoa(p.Row) + ", " + strconv.Itoa(p.Col) + ")"
}

// Board is a rectangular grid of cell codes. It is immutable once built.
// Rows and Cols define dimensions; cells[row][col] holds the code.
// Item sets are precomputed during construction.
type Board struct {
	name       string
	rows, cols int
	cells      [][]Code
	boxes      []Position
	orange     []Position
}
