package tetris

import (
	"fmt"
	"strings"
)

const (
	// MaxBoardWidth is the widest board the engine supports. Rows are stored
	// one-per-uint32, so the width must fit a machine word.
	MaxBoardWidth = 32

	// MaxBoardHeight is the tallest board the engine supports.
	MaxBoardHeight = 40

	// MinBoardSize is the smallest legal width and height.
	MinBoardSize = 4
)

// Board is a fixed-capacity Tetris playing field. Occupancy is stored as one
// uint32 per row with bit x set when cell (x, y) is filled. The board keeps
// three caches coherent across every public mutation: per-column heights, the
// roof (highest filled cell) and the filled-cell count.
//
// (0, 0) is the bottom-left corner. Boards are plain values; assignment is a
// deep copy.
type Board struct {
	rows        [MaxBoardHeight]uint32
	colHeights  [MaxBoardWidth]int
	width       int
	height      int
	roof        int
	filledCount int
	fullRowMask uint32
}

// NewBoard creates an empty board with the given dimensions. It returns
// ErrInvalidDimensions when either dimension falls outside
// [MinBoardSize, MaxBoardWidth] x [MinBoardSize, MaxBoardHeight].
func NewBoard(width, height int) (Board, error) {
	if width < MinBoardSize || height < MinBoardSize ||
		width > MaxBoardWidth || height > MaxBoardHeight {
		return Board{}, fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, width, height)
	}

	b := Board{width: width, height: height}
	if width == MaxBoardWidth {
		b.fullRowMask = ^uint32(0)
	} else {
		b.fullRowMask = 1<<uint(width) - 1
	}
	return b, nil
}

// Width returns the board width.
func (b *Board) Width() int { return b.width }

// Height returns the board height.
func (b *Board) Height() int { return b.height }

// Roof returns the height of the highest filled cell, 0 when empty.
func (b *Board) Roof() int { return b.roof }

// FilledCellCount returns the number of filled cells.
func (b *Board) FilledCellCount() int { return b.filledCount }

// IsFilled reports whether cell (x, y) is filled. Out-of-range coordinates
// report false.
func (b *Board) IsFilled(x, y int) bool {
	if x < 0 || x >= b.width || y < 0 || y >= b.height {
		return false
	}
	return b.rows[y]>>uint(x)&1 != 0
}

// FillCell sets cell (x, y). Out-of-range coordinates are a silent no-op, as
// is filling an already-filled cell.
func (b *Board) FillCell(x, y int) {
	if x < 0 || x >= b.width || y < 0 || y >= b.height {
		return
	}
	if b.rows[y]>>uint(x)&1 != 0 {
		return
	}

	b.rows[y] |= 1 << uint(x)
	b.filledCount++

	if y+1 > b.colHeights[x] {
		b.colHeights[x] = y + 1
		if y+1 > b.roof {
			b.roof = y + 1
		}
	}
}

// ClearCell clears cell (x, y). Out-of-range coordinates are a silent no-op,
// as is clearing an already-empty cell. The column height is rescanned only
// when the topmost cell of its column was removed, and the roof only when
// that column supplied it.
func (b *Board) ClearCell(x, y int) {
	if x < 0 || x >= b.width || y < 0 || y >= b.height {
		return
	}
	if b.rows[y]>>uint(x)&1 == 0 {
		return
	}

	b.rows[y] &^= 1 << uint(x)
	b.filledCount--

	if y+1 != b.colHeights[x] {
		return
	}

	b.colHeights[x] = 0
	for i := y - 1; i >= 0; i-- {
		if b.rows[i]>>uint(x)&1 != 0 {
			b.colHeights[x] = i + 1
			break
		}
	}

	if y+1 == b.roof {
		b.roof = 0
		for c := 0; c < b.width; c++ {
			if b.colHeights[c] > b.roof {
				b.roof = b.colHeights[c]
			}
		}
	}
}

// FillRow fills every cell in row y.
func (b *Board) FillRow(y int) {
	for x := 0; x < b.width; x++ {
		b.FillCell(x, y)
	}
}

// IsRowFilled reports whether every cell in row y is filled. Out-of-range
// rows report false.
func (b *Board) IsRowFilled(y int) bool {
	if y < 0 || y >= b.height {
		return false
	}
	return b.rows[y] == b.fullRowMask
}

// ClearFilledRows removes every full row, shifting the rows above each down
// by one, and returns the number of rows removed. Heights are re-derived once
// at the end rather than per shifted row.
func (b *Board) ClearFilledRows() int {
	cleared := 0

	for y := 0; y < b.height; y++ {
		if b.rows[y] != b.fullRowMask {
			continue
		}

		copy(b.rows[y:b.height-1], b.rows[y+1:b.height])
		b.rows[b.height-1] = 0

		cleared++
		b.filledCount -= b.width

		// The shifted-down row needs to be examined again.
		y--
	}

	if cleared > 0 {
		b.updateHeights()
	}
	return cleared
}

// ColumnHeight returns 1 + the y index of the topmost filled cell in the
// column, or 0 when the column is empty or out of range.
func (b *Board) ColumnHeight(column int) int {
	if column < 0 || column >= b.width {
		return 0
	}
	return b.colHeights[column]
}

// ColumnHeights returns a copy of the per-column heights.
func (b *Board) ColumnHeights() []int {
	heights := make([]int, b.width)
	copy(heights, b.colHeights[:b.width])
	return heights
}

// RowBits returns the occupancy bits of row y, bit x set for a filled cell.
// Out-of-range rows return 0.
func (b *Board) RowBits(y int) uint32 {
	if y < 0 || y >= b.height {
		return 0
	}
	return b.rows[y]
}

// Clone returns a deep copy of the board.
func (b *Board) Clone() Board {
	return *b
}

// Equal reports whether two boards have the same dimensions and the same
// occupancy over their active region.
func (b *Board) Equal(other *Board) bool {
	if b.width != other.width || b.height != other.height {
		return false
	}
	for y := 0; y < b.height; y++ {
		if b.rows[y] != other.rows[y] {
			return false
		}
	}
	return true
}

// updateHeights re-derives every column height and the roof from the rows.
func (b *Board) updateHeights() {
	b.roof = 0
	for x := 0; x < b.width; x++ {
		b.colHeights[x] = 0
		for y := b.height - 1; y >= 0; y-- {
			if b.rows[y]>>uint(x)&1 != 0 {
				b.colHeights[x] = y + 1
				if b.colHeights[x] > b.roof {
					b.roof = b.colHeights[x]
				}
				break
			}
		}
	}
}

// String renders the active region top row first, '#' for filled cells.
func (b *Board) String() string {
	var sb strings.Builder
	for y := b.height - 1; y >= 0; y-- {
		for x := 0; x < b.width; x++ {
			if b.rows[y]>>uint(x)&1 != 0 {
				sb.WriteByte('#')
			} else {
				sb.WriteByte('.')
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
