package sudoku

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTraceApply(t *testing.T) {
	trace := Trace{
		{Row: 0, Col: 2, Digit: 4, Kind: EventPlace},
		{Row: 0, Col: 3, Digit: 6, Kind: EventPlace},
		{Row: 0, Col: 3, Digit: 6, Kind: EventBacktrack},
	}

	t.Run("applies places and backtracks in order", func(t *testing.T) {
		g := NewGrid()
		require.NoError(t, trace.Apply(g, len(trace)))

		v, err := g.Get(0, 2)
		require.NoError(t, err)
		assert.Equal(t, uint8(4), v)

		v, err = g.Get(0, 3)
		require.NoError(t, err)
		assert.Equal(t, uint8(0), v, "backtracked cell is empty again")
	})

	t.Run("partial prefix stops mid-branch", func(t *testing.T) {
		g := NewGrid()
		require.NoError(t, trace.Apply(g, 2))

		v, err := g.Get(0, 3)
		require.NoError(t, err)
		assert.Equal(t, uint8(6), v)
	})

	t.Run("zero events is a no-op", func(t *testing.T) {
		g := NewGrid()
		require.NoError(t, trace.Apply(g, 0))
		assert.Equal(t, NewGrid().Cells(), g.Cells())
	})

	t.Run("step out of range", func(t *testing.T) {
		g := NewGrid()
		assert.Error(t, trace.Apply(g, len(trace)+1))
		assert.Error(t, trace.Apply(g, -1))
	})
}

func TestTraceGridAt(t *testing.T) {
	start, err := FromCells(classicCells)
	require.NoError(t, err)

	working := start.Clone()
	s := NewSolver()
	require.True(t, s.Solve(working))
	trace := s.Trace()

	t.Run("start is untouched", func(t *testing.T) {
		g, err := trace.GridAt(start, len(trace))
		require.NoError(t, err)
		assert.Equal(t, working.Cells(), g.Cells())
		assert.Equal(t, classicCells, start.Cells())
	})

	t.Run("states are linear in events, not snapshots", func(t *testing.T) {
		// Sampling arbitrary prefixes must agree with sequential replay.
		for _, n := range []int{0, 1, len(trace) / 2, len(trace)} {
			g, err := trace.GridAt(start, n)
			require.NoError(t, err)

			seq := start.Clone()
			require.NoError(t, trace.Apply(seq, n))
			assert.Equal(t, seq.Cells(), g.Cells(), "prefix %d", n)
		}
	})
}
