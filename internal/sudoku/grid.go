// Package sudoku implements a 9x9 Sudoku grid and a backtracking solver
// that records every trial placement and backtrack as an ordered trace,
// so a completed solve can be replayed step by step.
package sudoku

import "fmt"

// Board dimensions.
const (
	Size    = 9 // cells per row, column, and digit range
	BoxSize = 3 // cells per box side
)

// Grid holds the 81-cell puzzle state. Zero means empty.
//
// Constraint queries are O(1): per-row, per-column, and per-box digit
// counts are maintained incrementally by Set. Counts (rather than bitmasks)
// keep the bookkeeping correct even when callers introduce duplicate
// digits while editing a puzzle before solving.
type Grid struct {
	cells [Size][Size]uint8

	// digit occurrence counts per unit, indexed [unit][digit].
	rows  [Size][Size + 1]uint8
	cols  [Size][Size + 1]uint8
	boxes [Size][Size + 1]uint8
}

// NewGrid returns an empty grid.
func NewGrid() *Grid {
	return &Grid{}
}

// FromCells builds a grid from a caller-supplied 9x9 array of digits.
// Values outside 0..9 are a precondition violation and yield an error.
func FromCells(cells [Size][Size]uint8) (*Grid, error) {
	g := &Grid{}
	for r := 0; r < Size; r++ {
		for c := 0; c < Size; c++ {
			d := cells[r][c]
			if d > Size {
				return nil, fmt.Errorf("cell (%d,%d): digit %d out of range 0..9", r, c, d)
			}
			if d != 0 {
				g.place(r, c, d)
			}
		}
	}
	return g, nil
}

// Get returns the digit at (row, col), 0 for empty.
func (g *Grid) Get(row, col int) (uint8, error) {
	if err := checkCoord(row, col); err != nil {
		return 0, err
	}
	return g.cells[row][col], nil
}

// Set writes digit (0 to clear) at (row, col). Out-of-range coordinates
// or digits are rejected, never clamped.
func (g *Grid) Set(row, col int, digit uint8) error {
	if err := checkCoord(row, col); err != nil {
		return err
	}
	if digit > Size {
		return fmt.Errorf("digit %d out of range 0..9", digit)
	}
	if old := g.cells[row][col]; old != 0 {
		g.remove(row, col, old)
	}
	if digit != 0 {
		g.place(row, col, digit)
	}
	return nil
}

// IsValid reports whether digit (1..9) appears nowhere else in row, in
// column, and in the 3x3 box containing (row, col). The target cell's own
// current value is not examined; callers probe empty cells.
// Arguments are assumed in range.
func (g *Grid) IsValid(row, col int, digit uint8) bool {
	return g.rows[row][digit] == 0 &&
		g.cols[col][digit] == 0 &&
		g.boxes[boxIndex(row, col)][digit] == 0
}

// FindEmpty returns the first empty cell in row-major order, scanning
// left to right, top to bottom. The scan order determines search order,
// and with it which solution is found first and the exact trace shape.
func (g *Grid) FindEmpty() (row, col int, ok bool) {
	for r := 0; r < Size; r++ {
		for c := 0; c < Size; c++ {
			if g.cells[r][c] == 0 {
				return r, c, true
			}
		}
	}
	return 0, 0, false
}

// Full reports whether every cell holds a digit.
func (g *Grid) Full() bool {
	_, _, ok := g.FindEmpty()
	return !ok
}

// Cells returns a copy of the current cell values.
func (g *Grid) Cells() [Size][Size]uint8 {
	return g.cells
}

// Clone returns an independent copy of the grid.
func (g *Grid) Clone() *Grid {
	cp := *g
	return &cp
}

// Solved reports whether every row, column, and box contains each digit
// 1..9 exactly once.
func (g *Grid) Solved() bool {
	for u := 0; u < Size; u++ {
		for d := uint8(1); d <= Size; d++ {
			if g.rows[u][d] != 1 || g.cols[u][d] != 1 || g.boxes[u][d] != 1 {
				return false
			}
		}
	}
	return true
}

// place and remove keep the unit counts in step with the cells.
// Callers guarantee in-range arguments and digit != 0.
func (g *Grid) place(row, col int, digit uint8) {
	g.cells[row][col] = digit
	g.rows[row][digit]++
	g.cols[col][digit]++
	g.boxes[boxIndex(row, col)][digit]++
}

func (g *Grid) remove(row, col int, digit uint8) {
	g.cells[row][col] = 0
	g.rows[row][digit]--
	g.cols[col][digit]--
	g.boxes[boxIndex(row, col)][digit]--
}

// boxIndex maps a cell to its 3x3 box, numbered row-major 0..8.
// Box origin is (3*(row/3), 3*(col/3)).
func boxIndex(row, col int) int {
	return (row/BoxSize)*BoxSize + col/BoxSize
}

func checkCoord(row, col int) error {
	if row < 0 || row >= Size || col < 0 || col >= Size {
		return fmt.Errorf("coordinate (%d,%d) out of range 0..8", row, col)
	}
	return nil
}
