package tetris_test

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/plus3/tetrion/tetris"
)

func TestNewBoardDimensions(t *testing.T) {
	tests := []struct {
		width, height int
		wantErr       bool
	}{
		{10, 20, false},
		{4, 4, false},
		{tetris.MaxBoardWidth, tetris.MaxBoardHeight, false},
		{3, 20, true},
		{10, 3, true},
		{tetris.MaxBoardWidth + 1, 20, true},
		{10, tetris.MaxBoardHeight + 1, true},
		{0, 0, true},
		{-1, 20, true},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("%dx%d", tt.width, tt.height), func(t *testing.T) {
			board, err := tetris.NewBoard(tt.width, tt.height)
			if tt.wantErr {
				assert.ErrorIs(t, err, tetris.ErrInvalidDimensions)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.width, board.Width())
			assert.Equal(t, tt.height, board.Height())
			assert.Equal(t, 0, board.Roof())
			assert.Equal(t, 0, board.FilledCellCount())
		})
	}
}

func TestFillAndClearCell(t *testing.T) {
	board, err := tetris.NewBoard(10, 20)
	require.NoError(t, err)

	board.FillCell(3, 5)
	assert.True(t, board.IsFilled(3, 5))
	assert.Equal(t, 6, board.ColumnHeight(3))
	assert.Equal(t, 6, board.Roof())
	assert.Equal(t, 1, board.FilledCellCount())

	// Filling the same cell again changes nothing.
	board.FillCell(3, 5)
	assert.Equal(t, 1, board.FilledCellCount())

	board.FillCell(3, 2)
	assert.Equal(t, 6, board.ColumnHeight(3))
	assert.Equal(t, 2, board.FilledCellCount())

	// Clearing the topmost cell rescans the column and the roof.
	board.ClearCell(3, 5)
	assert.False(t, board.IsFilled(3, 5))
	assert.Equal(t, 3, board.ColumnHeight(3))
	assert.Equal(t, 3, board.Roof())
	assert.Equal(t, 1, board.FilledCellCount())

	board.ClearCell(3, 2)
	assert.Equal(t, 0, board.ColumnHeight(3))
	assert.Equal(t, 0, board.Roof())
	assert.Equal(t, 0, board.FilledCellCount())
}

func TestOutOfRangeCellAccess(t *testing.T) {
	board, err := tetris.NewBoard(10, 20)
	require.NoError(t, err)

	// Reads report empty, writes are silent no-ops.
	assert.False(t, board.IsFilled(-1, 0))
	assert.False(t, board.IsFilled(10, 0))
	assert.False(t, board.IsFilled(0, -1))
	assert.False(t, board.IsFilled(0, 20))

	board.FillCell(-1, 0)
	board.FillCell(10, 0)
	board.FillCell(0, -1)
	board.FillCell(0, 20)
	assert.Equal(t, 0, board.FilledCellCount())

	board.FillCell(0, 0)
	board.ClearCell(-1, 0)
	board.ClearCell(0, 20)
	assert.Equal(t, 1, board.FilledCellCount())
}

func TestRowOperations(t *testing.T) {
	board, err := tetris.NewBoard(10, 20)
	require.NoError(t, err)

	assert.False(t, board.IsRowFilled(0))
	board.FillRow(0)
	assert.True(t, board.IsRowFilled(0))
	assert.Equal(t, 10, board.FilledCellCount())
	assert.Equal(t, 1, board.Roof())

	assert.False(t, board.IsRowFilled(-1))
	assert.False(t, board.IsRowFilled(20))
}

// Scenario: fill row 0 cell by cell, clear it, and the board is empty again.
func TestClearSingleFilledRow(t *testing.T) {
	board, err := tetris.NewBoard(10, 20)
	require.NoError(t, err)

	for x := 0; x < 10; x++ {
		board.FillCell(x, 0)
	}
	require.True(t, board.IsRowFilled(0))

	assert.Equal(t, 1, board.ClearFilledRows())
	assert.Equal(t, 0, board.FilledCellCount())
	assert.Equal(t, 0, board.Roof())
}

func TestClearFilledRowsShiftsSurvivors(t *testing.T) {
	board, err := tetris.NewBoard(10, 20)
	require.NoError(t, err)

	// Rows 0 and 2 full, row 1 partial, a lone cell at (4, 3).
	board.FillRow(0)
	board.FillCell(0, 1)
	board.FillCell(9, 1)
	board.FillRow(2)
	board.FillCell(4, 3)

	assert.Equal(t, 2, board.ClearFilledRows())

	// The partial row drops to the bottom, the lone cell to row 1.
	assert.True(t, board.IsFilled(0, 0))
	assert.True(t, board.IsFilled(9, 0))
	assert.False(t, board.IsFilled(1, 0))
	assert.True(t, board.IsFilled(4, 1))
	assert.False(t, board.IsFilled(4, 3))

	assert.Equal(t, 3, board.FilledCellCount())
	assert.Equal(t, 2, board.Roof())
	assert.Equal(t, 2, board.ColumnHeight(4))
	assert.Equal(t, 1, board.ColumnHeight(0))
}

func TestClearFilledRowsNothingToClear(t *testing.T) {
	board, err := tetris.NewBoard(10, 20)
	require.NoError(t, err)

	board.FillCell(0, 0)
	board.FillCell(5, 7)
	assert.Equal(t, 0, board.ClearFilledRows())
	assert.Equal(t, 2, board.FilledCellCount())
	assert.True(t, board.IsFilled(5, 7))
}

func TestBoardEqual(t *testing.T) {
	a, err := tetris.NewBoard(10, 20)
	require.NoError(t, err)
	b, err := tetris.NewBoard(10, 20)
	require.NoError(t, err)
	c, err := tetris.NewBoard(10, 21)
	require.NoError(t, err)

	assert.True(t, a.Equal(&b))
	assert.False(t, a.Equal(&c))

	a.FillCell(3, 3)
	assert.False(t, a.Equal(&b))
	b.FillCell(3, 3)
	assert.True(t, a.Equal(&b))
}

func TestBoardClone(t *testing.T) {
	board, err := tetris.NewBoard(10, 20)
	require.NoError(t, err)
	board.FillCell(2, 2)

	clone := board.Clone()
	clone.FillCell(5, 5)

	assert.False(t, board.IsFilled(5, 5))
	assert.True(t, clone.IsFilled(5, 5))
	assert.True(t, clone.IsFilled(2, 2))
}

// recomputeCaches derives the filled count, heights and roof from cell reads
// alone, to cross-check the board's caches.
func recomputeCaches(t *testing.T, board *tetris.Board) (count int, heights []int, roof int) {
	t.Helper()
	heights = make([]int, board.Width())
	for x := 0; x < board.Width(); x++ {
		for y := 0; y < board.Height(); y++ {
			if board.IsFilled(x, y) {
				count++
				heights[x] = y + 1
			}
		}
		if heights[x] > roof {
			roof = heights[x]
		}
	}
	return count, heights, roof
}

func TestCacheCoherenceUnderRandomOps(t *testing.T) {
	board, err := tetris.NewBoard(10, 20)
	require.NoError(t, err)

	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 2000; i++ {
		x, y := rng.Intn(10), rng.Intn(20)
		switch rng.Intn(3) {
		case 0:
			board.FillCell(x, y)
		case 1:
			board.ClearCell(x, y)
		default:
			board.FillRow(y)
			board.ClearFilledRows()
		}

		count, heights, roof := recomputeCaches(t, &board)
		require.Equal(t, count, board.FilledCellCount(), "iteration %d", i)
		require.Equal(t, roof, board.Roof(), "iteration %d", i)
		require.Equal(t, heights, board.ColumnHeights(), "iteration %d", i)
	}
}

func TestBoardString(t *testing.T) {
	board, err := tetris.NewBoard(4, 4)
	require.NoError(t, err)
	board.FillCell(0, 0)

	s := board.String()
	assert.NotEmpty(t, s)
	assert.Contains(t, s, "#")
}
