package tetris_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/plus3/tetrion/tetris"
)

func TestNewPieceRequiresRotationSystem(t *testing.T) {
	state := tetris.NewPieceState(tetris.PieceT, tetris.Position{X: 3, Y: 19}, tetris.R0)

	_, err := tetris.NewPiece(state, nil)
	assert.ErrorIs(t, err, tetris.ErrMissingRotationSystem)

	piece, err := tetris.NewPiece(state, tetris.NewSRS())
	require.NoError(t, err)
	assert.Equal(t, state, piece.State())
	assert.Equal(t, "SRS", piece.RotationSystem().Name())
}

func TestNewPieceInvalidType(t *testing.T) {
	state := tetris.NewPieceState(tetris.PieceType(42), tetris.Position{}, tetris.R0)
	_, err := tetris.NewPiece(state, tetris.NewSRS())
	assert.ErrorIs(t, err, tetris.ErrInvalidPieceType)
}

func TestPieceFilledCells(t *testing.T) {
	tests := []struct {
		name      string
		pieceType tetris.PieceType
		rotation  tetris.Rotation
		width     int
		height    int
		cells     []tetris.Position
	}{
		{
			name:      "T spawn",
			pieceType: tetris.PieceT,
			rotation:  tetris.R0,
			width:     3,
			height:    2,
			cells:     []tetris.Position{{X: 1, Y: 0}, {X: 0, Y: 1}, {X: 1, Y: 1}, {X: 2, Y: 1}},
		},
		{
			name:      "I horizontal",
			pieceType: tetris.PieceI,
			rotation:  tetris.R0,
			width:     4,
			height:    1,
			cells:     []tetris.Position{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 2, Y: 0}, {X: 3, Y: 0}},
		},
		{
			name:      "I vertical",
			pieceType: tetris.PieceI,
			rotation:  tetris.R90,
			width:     1,
			height:    4,
			cells:     []tetris.Position{{X: 0, Y: 0}, {X: 0, Y: 1}, {X: 0, Y: 2}, {X: 0, Y: 3}},
		},
		{
			name:      "O",
			pieceType: tetris.PieceO,
			rotation:  tetris.R0,
			width:     2,
			height:    2,
			cells:     []tetris.Position{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 0, Y: 1}, {X: 1, Y: 1}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			state := tetris.NewPieceState(tt.pieceType, tetris.Position{}, tt.rotation)
			piece, err := tetris.NewPiece(state, tetris.NewSRS())
			require.NoError(t, err)

			assert.Equal(t, tt.width, piece.Width())
			assert.Equal(t, tt.height, piece.Height())
			assert.ElementsMatch(t, tt.cells, piece.FilledCells())
		})
	}
}

func TestPieceAbsoluteFilledCells(t *testing.T) {
	state := tetris.NewPieceState(tetris.PieceT, tetris.Position{X: 3, Y: 19}, tetris.R0)
	piece, err := tetris.NewPiece(state, tetris.NewSRS())
	require.NoError(t, err)

	assert.ElementsMatch(t, []tetris.Position{
		{X: 4, Y: 19},
		{X: 3, Y: 20},
		{X: 4, Y: 20},
		{X: 5, Y: 20},
	}, piece.AbsoluteFilledCells())
}

func TestPieceColumnProfile(t *testing.T) {
	state := tetris.NewPieceState(tetris.PieceT, tetris.Position{}, tetris.R0)
	piece, err := tetris.NewPiece(state, tetris.NewSRS())
	require.NoError(t, err)

	// T spawn: the stem column reaches the bottom, the outer columns start
	// one row up.
	assert.Equal(t, [4]int{2, 2, 2, 0}, piece.ColumnHeights())
	assert.Equal(t, [4]int{1, 0, 1, 0}, piece.ColumnBottoms())

	vertical := tetris.NewPieceState(tetris.PieceI, tetris.Position{}, tetris.R90)
	require.NoError(t, piece.SetState(vertical))
	assert.Equal(t, [4]int{4, 0, 0, 0}, piece.ColumnHeights())
	assert.Equal(t, [4]int{0, 0, 0, 0}, piece.ColumnBottoms())
}

func TestPieceSetStateRederivesShape(t *testing.T) {
	state := tetris.NewPieceState(tetris.PieceI, tetris.Position{X: 0, Y: 10}, tetris.R0)
	piece, err := tetris.NewPiece(state, tetris.NewSRS())
	require.NoError(t, err)
	assert.Equal(t, 4, piece.Width())

	require.NoError(t, piece.SetState(tetris.NewPieceState(tetris.PieceI, tetris.Position{X: 0, Y: 10}, tetris.R90)))
	assert.Equal(t, 1, piece.Width())
	assert.Equal(t, 4, piece.Height())

	// An invalid new state leaves the piece untouched.
	err = piece.SetState(tetris.NewPieceState(tetris.PieceType(9), tetris.Position{}, tetris.R0))
	assert.ErrorIs(t, err, tetris.ErrInvalidPieceType)
	assert.Equal(t, tetris.PieceI, piece.State().Type)
	assert.Equal(t, 4, piece.Height())
}

func TestPieceShapeMaskCellCount(t *testing.T) {
	for _, pt := range tetris.PieceTypes() {
		state := tetris.NewPieceState(pt, tetris.Position{}, tetris.R0)
		piece, err := tetris.NewPiece(state, tetris.NewSRS())
		require.NoError(t, err)
		assert.Equal(t, 4, piece.ShapeMask().CellCount())
		assert.Len(t, piece.FilledCells(), 4)
	}
}
