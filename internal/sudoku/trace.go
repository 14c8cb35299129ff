package sudoku

import "fmt"

// EventKind distinguishes trial placements from backtracks.
type EventKind string

const (
	EventPlace     EventKind = "place"
	EventBacktrack EventKind = "backtrack"
)

// Event records one solver decision. A Place sets Digit at (Row, Col);
// a Backtrack with the same triple clears it again when that branch is
// abandoned.
type Event struct {
	Row   int       `json:"row"`
	Col   int       `json:"col"`
	Digit uint8     `json:"digit"`
	Kind  EventKind `json:"kind"`
}

// Trace is the ordered history of a solve. It is a full deterministic
// replay log: applying any prefix to the starting grid reproduces the
// exact grid the solver held at that point.
type Trace []Event

// Apply replays the first n events onto g. Place events set the digit,
// Backtrack events clear the cell.
func (t Trace) Apply(g *Grid, n int) error {
	if n < 0 || n > len(t) {
		return fmt.Errorf("step %d out of range 0..%d", n, len(t))
	}
	for i := 0; i < n; i++ {
		ev := t[i]
		d := ev.Digit
		if ev.Kind == EventBacktrack {
			d = 0
		}
		if err := g.Set(ev.Row, ev.Col, d); err != nil {
			return fmt.Errorf("event %d: %w", i, err)
		}
	}
	return nil
}

// GridAt returns the grid state after the first n events, starting from
// a copy of start. Passing n == len(t) yields the final state.
func (t Trace) GridAt(start *Grid, n int) (*Grid, error) {
	g := start.Clone()
	if err := t.Apply(g, n); err != nil {
		return nil, err
	}
	return g, nil
}
