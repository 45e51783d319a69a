package board

import (
	"fmt"
	"strings"
	"unicode"
)

// New constructs a Board from a non-empty, rectangular 2D slice.
// It deep-copies the input to ensure immutability.
// Returns ErrEmptyGrid if grid has no rows or no columns,
// ErrNonRectangular if any row length differs.
// Complexity: O(R×C) time and memory.
func New(cells [][]Code) (*Board, error) {
	if len(cells) == 0 || len(cells[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	rows, cols := len(cells), len(cells[0])
	for _, row := range cells {
		if len(row) != cols {
			return nil, ErrNonRectangular
		}
	}
	// Deep copy to prevent external mutation
	grid := make([][]Code, rows)
	for r := 0; r < rows; r++ {
		grid[r] = make([]Code, cols)
		copy(grid[r], cells[r])
	}
	b := &Board{
		rows:  rows,
		cols:  cols,
		cells: grid,
	}
	b.boxes = b.FindAll(Box)
	b.orange = b.FindAll(OrangeBox)

	return b, nil
}

// Parse builds a Board from a text map: one row per non-blank line,
// whitespace inside a line is ignored. Every other character must be ASCII;
// anything else fails with ErrInvalidSymbol.
func Parse(text string) (*Board, error) {
	var cells [][]Code
	for _, line := range strings.Split(text, "\n") {
		row := make([]Code, 0, len(line))
		for _, ch := range line {
			if unicode.IsSpace(ch) {
				continue
			}
			if ch > unicode.MaxASCII {
				return nil, fmt.Errorf("%w: %q in row %d", ErrInvalidSymbol, ch, len(cells))
			}
			row = append(row, Code(ch))
		}
		if len(row) == 0 {
			continue
		}
		cells = append(cells, row)
	}

	return New(cells)
}

// FromRows builds a Board from one string per row.
func FromRows(rows ...string) (*Board, error) {
	return Parse(strings.Join(rows, "\n"))
}

// Name returns the optional map name (set by YAML maps).
func (b *Board) Name() string {
	return b.name
}

// Dimensions returns the row and column counts.
func (b *Board) Dimensions() (rows, cols int) {
	return b.rows, b.cols
}

// InBounds reports whether p lies within the board.
// Complexity: O(1).
func (b *Board) InBounds(p Position) bool {
	return p.Row >= 0 && p.Row < b.rows && p.Col >= 0 && p.Col < b.cols
}

// CellAt returns the code stored at (row, col).
// It panics if the coordinate is out of bounds, like an index expression.
func (b *Board) CellAt(row, col int) Code {
	return b.cells[row][col]
}

// IsWall reports whether p is a wall cell. Out-of-bounds positions are not walls.
func (b *Board) IsWall(p Position) bool {
	return b.InBounds(p) && b.cells[p.Row][p.Col] == Wall
}

// FindPosition returns the first cell carrying code, scanning row-major.
// Returns an error wrapping ErrSymbolNotFound when no cell matches.
func (b *Board) FindPosition(code Code) (Position, error) {
	for r := 0; r < b.rows; r++ {
		for c := 0; c < b.cols; c++ {
			if b.cells[r][c] == code {
				return Position{Row: r, Col: c}, nil
			}
		}
	}

	return Position{}, fmt.Errorf("%w: %q", ErrSymbolNotFound, code.String())
}

// FindAll returns every cell carrying code in row-major order.
// The result is nil when nothing matches.
func (b *Board) FindAll(code Code) []Position {
	var out []Position
	for r := 0; r < b.rows; r++ {
		for c := 0; c < b.cols; c++ {
			if b.cells[r][c] == code {
				out = append(out, Position{Row: r, Col: c})
			}
		}
	}

	return out
}

// PrimaryItems returns the box coordinates. The slice must not be modified.
func (b *Board) PrimaryItems() []Position {
	return b.boxes
}

// SecondaryItems returns the orange box coordinates. The slice must not be modified.
func (b *Board) SecondaryItems() []Position {
	return b.orange
}

// String renders the board in the text map format.
func (b *Board) String() string {
	var sb strings.Builder
	for r, row := range b.cells {
		if r > 0 {
			sb.WriteByte('\n')
		}
		for _, c := range row {
			sb.WriteByte(byte(c))
		}
	}

	return sb.String()
}
