package tetris

import "math/bits"

// ShapeMask is a 4x4 occupancy grid packed into 16 bits, bit y*4+x set when
// the cell at column x, row y of the bounding grid is filled.
type ShapeMask uint16

// Test reports whether the grid cell (x, y) is filled. Coordinates outside
// the 4x4 grid report false.
func (m ShapeMask) Test(x, y int) bool {
	if x < 0 || x >= 4 || y < 0 || y >= 4 {
		return false
	}
	return m>>uint(y*4+x)&1 != 0
}

// CellCount returns the number of filled cells in the mask.
func (m ShapeMask) CellCount() int {
	return bits.OnesCount16(uint16(m))
}

// RotationSystem supplies shape tables, wall-kick tables and spawn geometry
// for a rotation ruleset. Implementations carry no mutable state observable
// by clients and may be shared freely across game states and threads.
type RotationSystem interface {
	// Name returns the registry name of the system.
	Name() string

	// Shape returns the 4x4 occupancy mask for a piece type and rotation.
	Shape(t PieceType, r Rotation) (ShapeMask, error)

	// ClockwiseWallKicks returns the kick table for a clockwise rotation
	// leaving fromRotation.
	ClockwiseWallKicks(t PieceType, fromRotation Rotation) (WallKickData, error)

	// CounterClockwiseWallKicks returns the kick table for a counter-clockwise
	// rotation leaving fromRotation.
	CounterClockwiseWallKicks(t PieceType, fromRotation Rotation) (WallKickData, error)

	// Rotate180WallKicks returns the kick table for a half-turn leaving
	// fromRotation.
	Rotate180WallKicks(t PieceType, fromRotation Rotation) (WallKickData, error)

	// InitialState returns the spawn state for a piece on a board of the
	// given dimensions.
	InitialState(t PieceType, boardWidth, boardHeight int) PieceState

	// Supports180 reports whether the ruleset defines real 180-degree kicks.
	Supports180() bool

	// Clone returns a fresh instance of the system.
	Clone() RotationSystem
}
