package tetris

import "errors"

var (
	// ErrInvalidDimensions is returned when board dimensions fall outside
	// [4, MaxBoardWidth] x [4, MaxBoardHeight].
	ErrInvalidDimensions = errors.New("invalid board dimensions")

	// ErrMissingRotationSystem is returned when a piece or spawn needs a
	// rotation system and none is bound.
	ErrMissingRotationSystem = errors.New("rotation system not set")

	// ErrWallKickOnNonRotation is returned when a move is constructed with a
	// wall-kick index but its type is not a rotation.
	ErrWallKickOnNonRotation = errors.New("wall kick index only valid for rotation moves")

	// ErrWallKickIndexOutOfRange is returned when a wall-kick offset lookup
	// exceeds the table size.
	ErrWallKickIndexOutOfRange = errors.New("wall kick index out of range")

	// ErrInvalidPieceType is returned by rotation-system lookups for a type
	// outside the seven tetrominoes.
	ErrInvalidPieceType = errors.New("invalid piece type")

	// ErrUnknownRotationSystem is returned by the rotation-system registry
	// for an unregistered name.
	ErrUnknownRotationSystem = errors.New("unknown rotation system")

	// ErrUnknownSearchAlgorithm is returned by the search registry for an
	// unregistered name.
	ErrUnknownSearchAlgorithm = errors.New("unknown search algorithm")
)
