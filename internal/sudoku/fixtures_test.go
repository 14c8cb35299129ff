package sudoku

// The classic example puzzle and its unique solution.
var classicCells = [Size][Size]uint8{
	{5, 3, 0, 0, 7, 0, 0, 0, 0},
	{6, 0, 0, 1, 9, 5, 0, 0, 0},
	{0, 9, 8, 0, 0, 0, 0, 6, 0},
	{8, 0, 0, 0, 6, 0, 0, 0, 3},
	{4, 0, 0, 8, 0, 3, 0, 0, 1},
	{7, 0, 0, 0, 2, 0, 0, 0, 6},
	{0, 6, 0, 0, 0, 0, 2, 8, 0},
	{0, 0, 0, 4, 1, 9, 0, 0, 5},
	{0, 0, 0, 0, 8, 0, 0, 7, 9},
}

var solvedCells = [Size][Size]uint8{
	{5, 3, 4, 6, 7, 8, 9, 1, 2},
	{6, 7, 2, 1, 9, 5, 3, 4, 8},
	{1, 9, 8, 3, 4, 2, 5, 6, 7},
	{8, 5, 9, 7, 6, 1, 4, 2, 3},
	{4, 2, 6, 8, 5, 3, 7, 9, 1},
	{7, 1, 3, 9, 2, 4, 8, 5, 6},
	{9, 6, 1, 5, 3, 7, 2, 8, 4},
	{2, 8, 7, 4, 1, 9, 6, 3, 5},
	{3, 4, 5, 2, 8, 6, 1, 7, 9},
}

// unsatCells is the solved grid with (8,7) and (8,8) cleared and the clue
// at (7,8) corrupted from 5 to 9, duplicating the 9 already in row 7.
// The only candidate chain is Place 7 at (8,7), which strands (8,8) with
// no legal digit, so the search exhausts after one backtrack.
func unsatCells() [Size][Size]uint8 {
	cells := solvedCells
	cells[8][7] = 0
	cells[8][8] = 0
	cells[7][8] = 9
	return cells
}

// deadEndCells leaves a single empty cell with no legal digit: (8,8) is
// cleared and the duplicated 9 in row 7 blocks its only candidate via the
// column, so the search fails before any placement.
func deadEndCells() [Size][Size]uint8 {
	cells := solvedCells
	cells[8][8] = 0
	cells[7][8] = 9
	return cells
}
