package tetris

// Position is a board coordinate. (0, 0) is the bottom-left corner;
// x grows to the right and y grows upward.
type Position struct {
	X, Y int
}

// Add returns the component-wise sum of two positions.
func (p Position) Add(other Position) Position {
	return Position{X: p.X + other.X, Y: p.Y + other.Y}
}

// PieceState is the full state of a tetromino on the board: its type,
// its position and its rotation.
type PieceState struct {
	Type     PieceType
	Position Position
	Rotation Rotation
}

// NewPieceState creates a piece state from its three components.
func NewPieceState(t PieceType, pos Position, rot Rotation) PieceState {
	return PieceState{Type: t, Position: pos, Rotation: rot}
}

// StateKey is a PieceState packed into a single uint64, usable as a map key.
// Layout: type (8 bits) | rotation (8 bits) | biased x (16 bits) | biased y
// (16 bits). Coordinates are biased by 1<<15 so that negative positions
// produced by wall kicks still pack losslessly.
type StateKey uint64

const stateKeyBias = 1 << 15

// Key packs the state into its StateKey.
func (s PieceState) Key() StateKey {
	return StateKey(uint64(s.Type)<<40 |
		uint64(s.Rotation)<<32 |
		uint64(uint16(s.Position.X+stateKeyBias))<<16 |
		uint64(uint16(s.Position.Y+stateKeyBias)))
}

// Type extracts the piece type from the key.
func (k StateKey) Type() PieceType {
	return PieceType(k >> 40)
}

// Rotation extracts the rotation from the key.
func (k StateKey) Rotation() Rotation {
	return Rotation(k >> 32 & 0xFF)
}

// Position extracts the board position from the key.
func (k StateKey) Position() Position {
	return Position{
		X: int(uint16(k>>16)) - stateKeyBias,
		Y: int(uint16(k)) - stateKeyBias,
	}
}
