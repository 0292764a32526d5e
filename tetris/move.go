package tetris

import "fmt"

// MaxWallKickTests caps the number of offsets a wall-kick table may hold.
const MaxWallKickTests = 16

// WallKickOffset is a single (dx, dy) translation tried during a kicked
// rotation.
type WallKickOffset struct {
	DX, DY int
}

// WallKickData is an ordered list of wall-kick offsets for one
// (piece type, from-rotation) pair. Offsets are tried by callers in table
// order; index 0 is conventionally the identity test.
type WallKickData struct {
	offsets []WallKickOffset
}

// NewWallKickData builds a kick table from its offsets. Tables longer than
// MaxWallKickTests are truncated at construction; the SRS tables are well
// within the cap.
func NewWallKickData(offsets ...WallKickOffset) WallKickData {
	if len(offsets) > MaxWallKickTests {
		offsets = offsets[:MaxWallKickTests]
	}
	owned := make([]WallKickOffset, len(offsets))
	copy(owned, offsets)
	return WallKickData{offsets: owned}
}

// TestCount returns the number of offsets in the table.
func (w WallKickData) TestCount() int {
	return len(w.offsets)
}

// Offset returns the offset at the given index, or
// ErrWallKickIndexOutOfRange when index >= TestCount.
func (w WallKickData) Offset(index int) (WallKickOffset, error) {
	if index < 0 || index >= len(w.offsets) {
		return WallKickOffset{}, fmt.Errorf("%w: %d of %d", ErrWallKickIndexOutOfRange, index, len(w.offsets))
	}
	return w.offsets[index], nil
}

// Offsets returns a copy of all offsets in table order.
func (w WallKickData) Offsets() []WallKickOffset {
	out := make([]WallKickOffset, len(w.offsets))
	copy(out, w.offsets)
	return out
}

// MoveType enumerates the moves ApplyMove understands.
type MoveType uint8

const (
	MoveLeft                   MoveType = iota // translate one cell left
	MoveRight                                  // translate one cell right
	MoveDown                                   // translate one cell down
	MoveUp                                     // translate one cell up
	MoveRotateClockwise                        // quarter-turn clockwise
	MoveRotateCounterClockwise                 // quarter-turn counter-clockwise
	MoveRotate180                              // half-turn
	MoveHardDrop                               // drop to the lowest fitting row
	MoveSoftDrop                               // one cell down
	MoveHold                                   // swap with the hold slot
)

// Move is a single rule-bound action on the current piece. Rotation moves may
// carry a wall-kick index selecting which table entry to apply; -1 means no
// kick.
type Move struct {
	moveType      MoveType
	wallKickIndex int
}

// NewMove creates a move with no wall kick.
func NewMove(t MoveType) Move {
	return Move{moveType: t, wallKickIndex: -1}
}

// NewMoveWithKick creates a rotation move carrying a wall-kick index. A
// non-negative index on a non-rotation move returns ErrWallKickOnNonRotation.
func NewMoveWithKick(t MoveType, wallKickIndex int) (Move, error) {
	m := Move{moveType: t, wallKickIndex: wallKickIndex}
	if wallKickIndex >= 0 && !m.IsRotation() {
		return Move{}, fmt.Errorf("%w: %s", ErrWallKickOnNonRotation, t)
	}
	return m, nil
}

// Type returns the move type.
func (m Move) Type() MoveType {
	return m.moveType
}

// WallKickIndex returns the wall-kick index, -1 when none was set.
func (m Move) WallKickIndex() int {
	return m.wallKickIndex
}

// IsRotation reports whether the move is one of the three rotations.
func (m Move) IsRotation() bool {
	return m.moveType == MoveRotateClockwise ||
		m.moveType == MoveRotateCounterClockwise ||
		m.moveType == MoveRotate180
}

// IsTranslation reports whether the move translates the piece.
func (m Move) IsTranslation() bool {
	switch m.moveType {
	case MoveLeft, MoveRight, MoveDown, MoveUp, MoveHardDrop, MoveSoftDrop:
		return true
	}
	return false
}

func (m Move) String() string {
	if m.IsRotation() && m.wallKickIndex >= 0 {
		return fmt.Sprintf("%s(WK:%d)", m.moveType, m.wallKickIndex)
	}
	return m.moveType.String()
}

func (t MoveType) String() string {
	switch t {
	case MoveLeft:
		return "Left"
	case MoveRight:
		return "Right"
	case MoveDown:
		return "Down"
	case MoveUp:
		return "Up"
	case MoveRotateClockwise:
		return "RotateClockwise"
	case MoveRotateCounterClockwise:
		return "RotateCounterClockwise"
	case MoveRotate180:
		return "Rotate180"
	case MoveHardDrop:
		return "HardDrop"
	case MoveSoftDrop:
		return "SoftDrop"
	case MoveHold:
		return "Hold"
	default:
		return fmt.Sprintf("MoveType(%d)", uint8(t))
	}
}
