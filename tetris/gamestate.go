package tetris

import (
	"fmt"
	"strings"
)

// GameState owns a board, the current falling piece, the hold slot and the
// queue of upcoming piece types. It executes Moves against the board with
// wall-kick arbitration and tracks cleared lines and game-over.
//
// A GameState is not safe for concurrent mutation; the rotation system it
// shares with its piece is immutable and may be shared freely.
type GameState struct {
	board        Board
	currentPiece Piece
	system       RotationSystem

	heldPiece PieceType
	hasHeld   bool
	holdUsed  bool

	nextPieces   []PieceType
	linesCleared int
	gameOver     bool
}

// NewGameState creates a game state with an empty board of the given
// dimensions bound to the rotation system. The system may be nil; spawning
// then fails with ErrMissingRotationSystem until one is set.
func NewGameState(width, height int, system RotationSystem) (*GameState, error) {
	board, err := NewBoard(width, height)
	if err != nil {
		return nil, err
	}
	g := &GameState{board: board, system: system}
	if system != nil {
		// Bind the (not yet spawned) current piece so move application has
		// real shape data from the start.
		_ = g.currentPiece.SetRotationSystem(system)
	}
	return g, nil
}

// Board returns the game's board.
func (g *GameState) Board() *Board { return &g.board }

// CurrentPiece returns a copy of the current piece.
func (g *GameState) CurrentPiece() Piece { return g.currentPiece }

// RotationSystem returns the bound rotation system, nil when unbound.
func (g *GameState) RotationSystem() RotationSystem { return g.system }

// SetRotationSystem rebinds the game and its current piece to the system.
func (g *GameState) SetRotationSystem(system RotationSystem) error {
	if system == nil {
		return ErrMissingRotationSystem
	}
	if err := g.currentPiece.SetRotationSystem(system); err != nil {
		return err
	}
	g.system = system
	return nil
}

// HeldPiece returns the held piece type and whether one is held.
func (g *GameState) HeldPiece() (PieceType, bool) {
	return g.heldPiece, g.hasHeld
}

// SetHeldPiece stores a piece type in the hold slot.
func (g *GameState) SetHeldPiece(t PieceType) {
	g.heldPiece = t
	g.hasHeld = true
}

// ClearHeldPiece empties the hold slot.
func (g *GameState) ClearHeldPiece() {
	g.heldPiece = 0
	g.hasHeld = false
}

// HoldUsed reports whether hold was already used this turn.
func (g *GameState) HoldUsed() bool { return g.holdUsed }

// SetHoldUsed overrides the hold-used flag.
func (g *GameState) SetHoldUsed(used bool) { g.holdUsed = used }

// LinesCleared returns the total lines cleared so far.
func (g *GameState) LinesCleared() int { return g.linesCleared }

// SetLinesCleared overrides the cleared-lines counter.
func (g *GameState) SetLinesCleared(lines int) { g.linesCleared = lines }

// GameOver reports whether a spawn has been blocked.
func (g *GameState) GameOver() bool { return g.gameOver }

// SetGameOver overrides the game-over flag.
func (g *GameState) SetGameOver(over bool) { g.gameOver = over }

// NextPieces returns a copy of the upcoming piece queue, head first.
func (g *GameState) NextPieces() []PieceType {
	out := make([]PieceType, len(g.nextPieces))
	copy(out, g.nextPieces)
	return out
}

// PushNextPiece appends a piece type to the upcoming queue.
func (g *GameState) PushNextPiece(types ...PieceType) {
	g.nextPieces = append(g.nextPieces, types...)
}

// CanPlace reports whether every absolute cell of the piece is horizontally
// in bounds, at or above the floor and on an empty board cell. Rows above the
// board top act as an empty spawn area.
func (g *GameState) CanPlace(p *Piece) bool {
	for _, cell := range p.AbsoluteFilledCells() {
		if cell.X < 0 || cell.X >= g.board.width || cell.Y < 0 {
			return false
		}
		if g.board.IsFilled(cell.X, cell.Y) {
			return false
		}
	}
	return true
}

// ApplyMove executes a move against the current piece. It returns false and
// leaves the state untouched when the game is over or the resulting placement
// does not fit. For rotation moves carrying a wall-kick index, the offset at
// that index of the matching kick table (keyed by the pre-move rotation) is
// added to the position.
func (g *GameState) ApplyMove(move Move) bool {
	if g.gameOver {
		return false
	}

	candidate := g.currentPiece
	from := candidate.State().Rotation

	switch move.Type() {
	case MoveLeft:
		candidate = candidate.translated(-1, 0)
	case MoveRight:
		candidate = candidate.translated(1, 0)
	case MoveDown, MoveSoftDrop:
		candidate = candidate.translated(0, -1)
	case MoveUp:
		candidate = candidate.translated(0, 1)
	case MoveRotateClockwise:
		candidate = candidate.withRotation(from.Clockwise())
		g.applyWallKick(&candidate, move, func(rs RotationSystem) (WallKickData, error) {
			return rs.ClockwiseWallKicks(candidate.State().Type, from)
		})
	case MoveRotateCounterClockwise:
		candidate = candidate.withRotation(from.CounterClockwise())
		g.applyWallKick(&candidate, move, func(rs RotationSystem) (WallKickData, error) {
			return rs.CounterClockwiseWallKicks(candidate.State().Type, from)
		})
	case MoveRotate180:
		candidate = candidate.withRotation(from.Rotate180())
		g.applyWallKick(&candidate, move, func(rs RotationSystem) (WallKickData, error) {
			return rs.Rotate180WallKicks(candidate.State().Type, from)
		})
	case MoveHardDrop:
		for {
			next := candidate.translated(0, -1)
			if !g.CanPlace(&next) {
				break
			}
			candidate = next
		}
	case MoveHold:
		return g.HoldCurrentPiece()
	default:
		return false
	}

	if !g.CanPlace(&candidate) {
		return false
	}
	g.currentPiece = candidate
	return true
}

// applyWallKick adds the selected kick offset to the candidate. Moves without
// an index, unbound systems and out-of-range indices leave the candidate at
// the pure rotation.
func (g *GameState) applyWallKick(candidate *Piece, move Move, kicks func(RotationSystem) (WallKickData, error)) {
	if move.WallKickIndex() < 0 || g.system == nil {
		return
	}
	table, err := kicks(g.system)
	if err != nil {
		return
	}
	offset, err := table.Offset(move.WallKickIndex())
	if err != nil {
		return
	}
	*candidate = candidate.translated(offset.DX, offset.DY)
}

// SpawnPiece installs a fresh piece of the given type at the rotation
// system's spawn state. A blocked spawn sets gameOver and returns false.
// It returns ErrMissingRotationSystem when no system is bound.
func (g *GameState) SpawnPiece(t PieceType) (bool, error) {
	if g.system == nil {
		return false, ErrMissingRotationSystem
	}

	state := g.system.InitialState(t, g.board.width, g.board.height)
	piece, err := NewPiece(state, g.system)
	if err != nil {
		return false, err
	}

	g.currentPiece = piece
	if !g.CanPlace(&g.currentPiece) {
		g.gameOver = true
		return false, nil
	}
	return true, nil
}

// SpawnNextPiece pops the head of the next-piece queue and spawns it. It
// returns false when the queue is empty.
func (g *GameState) SpawnNextPiece() (bool, error) {
	if len(g.nextPieces) == 0 {
		return false, nil
	}
	next := g.nextPieces[0]
	g.nextPieces = g.nextPieces[1:]
	return g.SpawnPiece(next)
}

// LockCurrentPiece stamps the current piece into the board, clears any full
// rows and returns the number cleared. Locking also re-arms hold.
func (g *GameState) LockCurrentPiece() int {
	for _, cell := range g.currentPiece.AbsoluteFilledCells() {
		g.board.FillCell(cell.X, cell.Y)
	}

	cleared := g.board.ClearFilledRows()
	g.linesCleared += cleared
	g.holdUsed = false
	return cleared
}

// HoldCurrentPiece swaps the current piece with the hold slot, spawning the
// previously held piece, or the next queued piece when the slot is empty. It
// returns false without changing the hold slot when hold was already used
// this turn or the replacement spawn fails.
func (g *GameState) HoldCurrentPiece() bool {
	if g.holdUsed {
		return false
	}

	currentType := g.currentPiece.State().Type

	if g.hasHeld {
		heldType := g.heldPiece
		g.heldPiece = currentType
		if ok, err := g.SpawnPiece(heldType); err != nil || !ok {
			g.heldPiece = heldType
			return false
		}
	} else {
		g.heldPiece = currentType
		g.hasHeld = true
		if ok, err := g.SpawnNextPiece(); err != nil || !ok {
			g.hasHeld = false
			return false
		}
	}

	g.holdUsed = true
	return true
}

// Clone returns a deep copy sharing the immutable rotation system.
func (g *GameState) Clone() *GameState {
	clone := *g
	clone.nextPieces = make([]PieceType, len(g.nextPieces))
	copy(clone.nextPieces, g.nextPieces)
	return &clone
}

// String returns a human-readable status dump. The format is informational
// only.
func (g *GameState) String() string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "Game State:\n")
	fmt.Fprintf(&sb, "  Board: %dx%d\n", g.board.width, g.board.height)
	fmt.Fprintf(&sb, "  Current Piece: %s\n", g.currentPiece.State().Type)
	if g.hasHeld {
		fmt.Fprintf(&sb, "  Held Piece: %s\n", g.heldPiece)
	} else {
		fmt.Fprintf(&sb, "  Held Piece: None\n")
	}
	fmt.Fprintf(&sb, "  Hold Used: %v\n", g.holdUsed)
	sb.WriteString("  Next Pieces:")
	for _, t := range g.nextPieces {
		sb.WriteByte(' ')
		sb.WriteString(t.String())
	}
	sb.WriteByte('\n')
	fmt.Fprintf(&sb, "  Lines Cleared: %d\n", g.linesCleared)
	fmt.Fprintf(&sb, "  Game Over: %v\n", g.gameOver)

	return sb.String()
}
