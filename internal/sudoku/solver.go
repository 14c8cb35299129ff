package sudoku

// Solver finds one full assignment satisfying the row/column/box
// uniqueness constraints, recording every attempted placement and every
// backtrack in order.
//
// The search is single-threaded and runs to completion before returning;
// callers wanting responsiveness run Solve on their own goroutine and
// must not touch the grid or trace until it returns.
type Solver struct {
	trace Trace
}

// NewSolver returns a solver with an empty trace.
func NewSolver() *Solver {
	return &Solver{}
}

// Solve runs a depth-first backtracking search over the empty cells of g,
// trying digits 1..9 in increasing order at each cell in FindEmpty order.
// On success g holds the solution and Solve reports true; on exhaustion g
// is left exactly as it was found and Solve reports false. A false result
// is a legitimate outcome for an unsatisfiable puzzle, not a fault.
//
// The trace is reset at the start of every call and is append-only during
// the search. A grid that is already full returns true with an empty trace.
func (s *Solver) Solve(g *Grid) bool {
	s.trace = nil
	return s.search(g)
}

// Trace returns the event log of the most recent Solve. It is read-only
// once the solve has returned.
func (s *Solver) Trace() Trace {
	return s.trace
}

func (s *Solver) search(g *Grid) bool {
	row, col, ok := g.FindEmpty()
	if !ok {
		return true
	}
	for d := uint8(1); d <= Size; d++ {
		if !g.IsValid(row, col, d) {
			continue
		}
		g.place(row, col, d)
		s.trace = append(s.trace, Event{Row: row, Col: col, Digit: d, Kind: EventPlace})
		if s.search(g) {
			return true
		}
		g.remove(row, col, d)
		s.trace = append(s.trace, Event{Row: row, Col: col, Digit: d, Kind: EventBacktrack})
	}
	return false
}
