package tetris

import "fmt"

// SRS implements the Super Rotation System, the standard modern rotation and
// wall-kick ruleset. Reference: https://harddrop.com/wiki/SRS
//
// The zero value is ready to use; the system holds no state.
type SRS struct {
	// A non-zero size gives every allocated instance, and so every Clone,
	// its own address.
	_ byte
}

// NewSRS creates an SRS rotation system.
func NewSRS() *SRS {
	return &SRS{}
}

// shapeFromArt builds a ShapeMask from four four-character rows, listed top
// row first ('X' filled, '.' empty). The top row is grid row y=3.
func shapeFromArt(rows ...string) ShapeMask {
	var m ShapeMask
	for i, row := range rows {
		y := 3 - i
		for x, ch := range row {
			if ch == 'X' {
				m |= 1 << uint(y*4+x)
			}
		}
	}
	return m
}

// Shape tables per piece type and rotation. Grids are drawn in board
// orientation: the first row is the highest y of the 4x4 grid.
var srsShapes = [numPieceTypes][4]ShapeMask{
	PieceI: {
		R0: shapeFromArt(
			"....",
			"....",
			"XXXX",
			"...."),
		R90: shapeFromArt(
			"..X.",
			"..X.",
			"..X.",
			"..X."),
		R180: shapeFromArt(
			"....",
			"XXXX",
			"....",
			"...."),
		R270: shapeFromArt(
			".X..",
			".X..",
			".X..",
			".X.."),
	},
	PieceJ: {
		R0: shapeFromArt(
			"....",
			"XXX.",
			"X...",
			"...."),
		R90: shapeFromArt(
			".X..",
			".X..",
			".XX.",
			"...."),
		R180: shapeFromArt(
			"..X.",
			"XXX.",
			"....",
			"...."),
		R270: shapeFromArt(
			"XX..",
			".X..",
			".X..",
			"...."),
	},
	PieceL: {
		R0: shapeFromArt(
			"....",
			"XXX.",
			"..X.",
			"...."),
		R90: shapeFromArt(
			".XX.",
			".X..",
			".X..",
			"...."),
		R180: shapeFromArt(
			"X...",
			"XXX.",
			"....",
			"...."),
		R270: shapeFromArt(
			".X..",
			".X..",
			"XX..",
			"...."),
	},
	PieceO: {
		R0: shapeFromArt(
			"....",
			".XX.",
			".XX.",
			"...."),
		R90: shapeFromArt(
			"....",
			".XX.",
			".XX.",
			"...."),
		R180: shapeFromArt(
			"....",
			".XX.",
			".XX.",
			"...."),
		R270: shapeFromArt(
			"....",
			".XX.",
			".XX.",
			"...."),
	},
	PieceS: {
		R0: shapeFromArt(
			"....",
			"XX..",
			".XX.",
			"...."),
		R90: shapeFromArt(
			"..X.",
			".XX.",
			".X..",
			"...."),
		R180: shapeFromArt(
			"XX..",
			".XX.",
			"....",
			"...."),
		R270: shapeFromArt(
			".X..",
			"XX..",
			"X...",
			"...."),
	},
	PieceT: {
		R0: shapeFromArt(
			"....",
			"XXX.",
			".X..",
			"...."),
		R90: shapeFromArt(
			".X..",
			".XX.",
			".X..",
			"...."),
		R180: shapeFromArt(
			".X..",
			"XXX.",
			"....",
			"...."),
		R270: shapeFromArt(
			".X..",
			"XX..",
			".X..",
			"...."),
	},
	PieceZ: {
		R0: shapeFromArt(
			"....",
			".XX.",
			"XX..",
			"...."),
		R90: shapeFromArt(
			".X..",
			".XX.",
			"..X.",
			"...."),
		R180: shapeFromArt(
			".XX.",
			"XX..",
			"....",
			"...."),
		R270: shapeFromArt(
			"X...",
			"XX..",
			".X..",
			"...."),
	},
}

// J, L, S, T and Z share one kick table per direction, indexed by the
// rotation the piece leaves.
var srsJLSTZClockwiseKicks = [4]WallKickData{
	R0:   NewWallKickData(WallKickOffset{0, 0}, WallKickOffset{-1, 0}, WallKickOffset{-1, 1}, WallKickOffset{0, -2}, WallKickOffset{-1, -2}),
	R90:  NewWallKickData(WallKickOffset{0, 0}, WallKickOffset{1, 0}, WallKickOffset{1, -1}, WallKickOffset{0, 2}, WallKickOffset{1, 2}),
	R180: NewWallKickData(WallKickOffset{0, 0}, WallKickOffset{1, 0}, WallKickOffset{1, 1}, WallKickOffset{0, -2}, WallKickOffset{1, -2}),
	R270: NewWallKickData(WallKickOffset{0, 0}, WallKickOffset{-1, 0}, WallKickOffset{-1, -1}, WallKickOffset{0, 2}, WallKickOffset{-1, 2}),
}

var srsJLSTZCounterClockwiseKicks = [4]WallKickData{
	R0:   NewWallKickData(WallKickOffset{0, 0}, WallKickOffset{1, 0}, WallKickOffset{1, 1}, WallKickOffset{0, -2}, WallKickOffset{1, -2}),
	R90:  NewWallKickData(WallKickOffset{0, 0}, WallKickOffset{1, 0}, WallKickOffset{1, -1}, WallKickOffset{0, 2}, WallKickOffset{1, 2}),
	R180: NewWallKickData(WallKickOffset{0, 0}, WallKickOffset{-1, 0}, WallKickOffset{-1, 1}, WallKickOffset{0, -2}, WallKickOffset{-1, -2}),
	R270: NewWallKickData(WallKickOffset{0, 0}, WallKickOffset{-1, 0}, WallKickOffset{-1, -1}, WallKickOffset{0, 2}, WallKickOffset{-1, 2}),
}

// I has its own kick tables.
var srsIClockwiseKicks = [4]WallKickData{
	R0:   NewWallKickData(WallKickOffset{0, 0}, WallKickOffset{-2, 0}, WallKickOffset{1, 0}, WallKickOffset{-2, -1}, WallKickOffset{1, 2}),
	R90:  NewWallKickData(WallKickOffset{0, 0}, WallKickOffset{-1, 0}, WallKickOffset{2, 0}, WallKickOffset{-1, 2}, WallKickOffset{2, -1}),
	R180: NewWallKickData(WallKickOffset{0, 0}, WallKickOffset{2, 0}, WallKickOffset{-1, 0}, WallKickOffset{2, 1}, WallKickOffset{-1, -2}),
	R270: NewWallKickData(WallKickOffset{0, 0}, WallKickOffset{1, 0}, WallKickOffset{-2, 0}, WallKickOffset{1, -2}, WallKickOffset{-2, 1}),
}

var srsICounterClockwiseKicks = [4]WallKickData{
	R0:   NewWallKickData(WallKickOffset{0, 0}, WallKickOffset{-1, 0}, WallKickOffset{2, 0}, WallKickOffset{-1, 2}, WallKickOffset{2, -1}),
	R90:  NewWallKickData(WallKickOffset{0, 0}, WallKickOffset{2, 0}, WallKickOffset{-1, 0}, WallKickOffset{2, 1}, WallKickOffset{-1, -2}),
	R180: NewWallKickData(WallKickOffset{0, 0}, WallKickOffset{1, 0}, WallKickOffset{-2, 0}, WallKickOffset{1, -2}, WallKickOffset{-2, 1}),
	R270: NewWallKickData(WallKickOffset{0, 0}, WallKickOffset{-2, 0}, WallKickOffset{1, 0}, WallKickOffset{-2, -1}, WallKickOffset{1, 2}),
}

// O never kicks; SRS defines no real 180 kicks either.
var srsIdentityKicks = NewWallKickData(WallKickOffset{0, 0})

// Name implements RotationSystem.
func (s *SRS) Name() string { return "SRS" }

// Shape implements RotationSystem.
func (s *SRS) Shape(t PieceType, r Rotation) (ShapeMask, error) {
	if !t.Valid() {
		return 0, fmt.Errorf("%w: %d", ErrInvalidPieceType, t)
	}
	return srsShapes[t][r%4], nil
}

// ClockwiseWallKicks implements RotationSystem.
func (s *SRS) ClockwiseWallKicks(t PieceType, fromRotation Rotation) (WallKickData, error) {
	switch t {
	case PieceI:
		return srsIClockwiseKicks[fromRotation%4], nil
	case PieceO:
		return srsIdentityKicks, nil
	case PieceJ, PieceL, PieceS, PieceT, PieceZ:
		return srsJLSTZClockwiseKicks[fromRotation%4], nil
	}
	return WallKickData{}, fmt.Errorf("%w: %d", ErrInvalidPieceType, t)
}

// CounterClockwiseWallKicks implements RotationSystem.
func (s *SRS) CounterClockwiseWallKicks(t PieceType, fromRotation Rotation) (WallKickData, error) {
	switch t {
	case PieceI:
		return srsICounterClockwiseKicks[fromRotation%4], nil
	case PieceO:
		return srsIdentityKicks, nil
	case PieceJ, PieceL, PieceS, PieceT, PieceZ:
		return srsJLSTZCounterClockwiseKicks[fromRotation%4], nil
	}
	return WallKickData{}, fmt.Errorf("%w: %d", ErrInvalidPieceType, t)
}

// Rotate180WallKicks implements RotationSystem.
func (s *SRS) Rotate180WallKicks(t PieceType, fromRotation Rotation) (WallKickData, error) {
	if !t.Valid() {
		return WallKickData{}, fmt.Errorf("%w: %d", ErrInvalidPieceType, t)
	}
	return srsIdentityKicks, nil
}

// InitialState implements RotationSystem. Every piece type spawns in R0 at
// x = (boardWidth-4)/2, y = min(21, boardHeight-1). The position is the
// bottom-left of the piece's bounding box, so on a 10-wide board the O
// covers columns 3 and 4.
func (s *SRS) InitialState(t PieceType, boardWidth, boardHeight int) PieceState {
	x := (boardWidth - 4) / 2
	y := boardHeight - 1
	if y > 21 {
		y = 21
	}
	return NewPieceState(t, Position{X: x, Y: y}, R0)
}

// Supports180 implements RotationSystem. SRS has no real 180 kick table.
func (s *SRS) Supports180() bool { return false }

// Clone implements RotationSystem.
func (s *SRS) Clone() RotationSystem { return &SRS{} }
