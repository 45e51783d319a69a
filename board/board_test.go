package board

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNew_Invalid ensures New rejects empty and ragged grids.
func TestNew_Invalid(t *testing.T) {
	_, err := New(nil)
	assert.ErrorIs(t, err, ErrEmptyGrid)

	_, err = New([][]Code{{}})
	assert.ErrorIs(t, err, ErrEmptyGrid)

	_, err = New([][]Code{{Robot, Empty}, {Goal}})
	assert.ErrorIs(t, err, ErrNonRectangular)
}

// TestNew_DeepCopy verifies the board does not alias caller memory.
func TestNew_DeepCopy(t *testing.T) {
	cells := [][]Code{{Robot, Empty}, {Empty, Goal}}
	b, err := New(cells)
	require.NoError(t, err)

	cells[0][1] = Wall
	assert.Equal(t, Empty, b.CellAt(0, 1))
}

// TestParse_Lookup covers dimensions, cell lookup and symbol search on
//
//	r . b
//	. w o
//	p . g
func TestParse_Lookup(t *testing.T) {
	b, err := Parse("r . b\n. w o\n\np . g\n")
	require.NoError(t, err)

	rows, cols := b.Dimensions()
	assert.Equal(t, 3, rows)
	assert.Equal(t, 3, cols)
	assert.Equal(t, Wall, b.CellAt(1, 1))
	assert.True(t, b.IsWall(Position{1, 1}))
	assert.False(t, b.IsWall(Position{5, 5}))
	assert.False(t, b.InBounds(Position{-1, 0}))
	assert.True(t, b.InBounds(Position{2, 2}))

	start, err := b.FindPosition(Robot)
	require.NoError(t, err)
	assert.Equal(t, Position{0, 0}, start)

	goal, err := b.FindPosition(Goal)
	require.NoError(t, err)
	assert.Equal(t, Position{2, 2}, goal)

	_, err = b.FindPosition(Fire)
	assert.ErrorIs(t, err, ErrSymbolNotFound)

	assert.Equal(t, []Position{{0, 2}}, b.PrimaryItems())
	assert.Equal(t, []Position{{1, 2}}, b.SecondaryItems())
	assert.Equal(t, []Position{{2, 0}}, b.FindAll(Portal))
	assert.Nil(t, b.FindAll(Fire))
}

// TestFindAll_RowMajor checks match ordering.
func TestFindAll_RowMajor(t *testing.T) {
	b, err := FromRows("p.p", "...", "p..")
	require.NoError(t, err)
	assert.Equal(t, []Position{{0, 0}, {0, 2}, {2, 0}}, b.FindAll(Portal))
}

func TestString_RoundTrip(t *testing.T) {
	b, err := FromRows("r..", ".w.", "..g")
	require.NoError(t, err)
	assert.Equal(t, "r..\n.w.\n..g", b.String())
	assert.Equal(t, "(2, 1)", Position{2, 1}.String())
}

// TestParse_RejectsNonASCII keeps multi-byte runes from folding into cell codes.
func TestParse_RejectsNonASCII(t *testing.T) {
	// U+0172 truncates to 'r' when narrowed to a byte.
	_, err := FromRows("\u0172.g")
	assert.ErrorIs(t, err, ErrInvalidSymbol)

	_, err = FromRows("r..", ".é.", "..g")
	require.ErrorIs(t, err, ErrInvalidSymbol)
	assert.Contains(t, err.Error(), "row 1")

	_, err = Parse("r.\xffg")
	assert.ErrorIs(t, err, ErrInvalidSymbol)

	_, err = Load(strings.NewReader("rows: [\"r\u0172g\"]"), FormatYAML)
	assert.ErrorIs(t, err, ErrInvalidSymbol)
}

// TestLoad_Formats covers text and YAML decoding plus format errors.
func TestLoad_Formats(t *testing.T) {
	b, err := Load(strings.NewReader("name: corner\nrows:\n  - \"r..\"\n  - \".w.\"\n  - \"..g\"\n"), FormatYAML)
	require.NoError(t, err)
	assert.Equal(t, "corner", b.Name())
	assert.Equal(t, Wall, b.CellAt(1, 1))

	b, err = Load(strings.NewReader("rg\n"), FormatText)
	require.NoError(t, err)
	assert.Equal(t, Goal, b.CellAt(0, 1))

	_, err = Load(strings.NewReader("rows: [unterminated"), FormatYAML)
	assert.ErrorIs(t, err, ErrInvalidFormat)

	_, err = Load(strings.NewReader("rg"), Format("xml"))
	assert.ErrorIs(t, err, ErrUnsupportedFormat)

	_, err = Load(strings.NewReader("name: empty\n"), FormatYAML)
	assert.ErrorIs(t, err, ErrEmptyGrid)
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "maze.yaml")
	require.NoError(t, os.WriteFile(path, []byte("rows: [\"r.g\"]\n"), 0o600))

	b, err := LoadFile(path)
	require.NoError(t, err)
	rows, cols := b.Dimensions()
	assert.Equal(t, 1, rows)
	assert.Equal(t, 3, cols)

	_, err = LoadFile(filepath.Join(dir, "maze.json"))
	assert.ErrorIs(t, err, ErrUnsupportedFormat)

	_, err = LoadFile(filepath.Join(dir, "missing.txt"))
	assert.Error(t, err)
}
