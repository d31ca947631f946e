package wordsquare

import (
	"fmt"
	"strings"
)

// Size is the side length of every puzzle grid.
const Size = 5

// Blank marks a cell that has not been placed yet.
const Blank = ' '

// Grid is a Size x Size grid of letters.
//
// Rows are placed directly from dictionary words during generation;
// columns are emergent and only become dictionary words once the grid is
// complete.
type Grid struct {
	cells [Size][Size]byte
}

// NewBlankGrid returns a grid with every cell set to Blank.
func NewBlankGrid() Grid {
	var g Grid
	for y := range g.cells {
		for x := range g.cells[y] {
			g.cells[y][x] = Blank
		}
	}
	return g
}

// GridFromRows builds a grid from exactly Size row strings of length Size.
func GridFromRows(rows [Size]string) (Grid, error) {
	g := NewBlankGrid()
	for y, row := range rows {
		if len(row) != Size {
			return Grid{}, fmt.Errorf("row %d has length %d, want %d", y, len(row), Size)
		}
		g.placeRow(y, row)
	}
	return g, nil
}

func (g *Grid) placeRow(row int, word string) {
	for x := 0; x < Size; x++ {
		g.cells[row][x] = word[x]
	}
}

// Get returns the letter at (x, y), or Blank if unplaced.
func (g Grid) Get(x, y int) byte {
	return g.cells[y][x]
}

// Row returns row y as a string.
func (g Grid) Row(y int) string {
	return string(g.cells[y][:])
}

// Column returns column x read top to bottom.
func (g Grid) Column(x int) string {
	var col [Size]byte
	for y := 0; y < Size; y++ {
		col[y] = g.cells[y][x]
	}
	return string(col[:])
}

// columnPrefix returns the vertical prefix of column x: the letters of
// rows 0..depth-1.
func (g Grid) columnPrefix(x, depth int) string {
	var col [Size]byte
	for y := 0; y < depth; y++ {
		col[y] = g.cells[y][x]
	}
	return string(col[:depth])
}

// Complete reports whether every cell has been placed.
func (g Grid) Complete() bool {
	for y := range g.cells {
		for x := range g.cells[y] {
			if g.cells[y][x] == Blank {
				return false
			}
		}
	}
	return true
}

func (g Grid) Repr() string {
	lines := make([]string, Size)
	for y := 0; y < Size; y++ {
		lines[y] = g.Row(y)
	}
	return strings.Join(lines, "\n")
}

func (g Grid) DebugString() string {
	return fmt.Sprintf("Grid{size: %d, rows: %q}", Size, strings.Split(g.Repr(), "\n"))
}
