package tetris

import "fmt"

// Piece is a tetromino bound to a rotation system. All shape metadata (the
// mask, tight bounding dimensions and per-column profile) is derived from the
// state and re-derived whenever the state or system changes.
//
// Filled cells are reported relative to the bounding box's bottom-left, so
// x in [0, Width) and y in [0, Height). A piece never reads the board;
// collision checking belongs to its caller.
//
// Pieces are plain values; assignment is a deep copy (the rotation system is
// shared by reference, which is safe because it is immutable).
type Piece struct {
	state  PieceState
	system RotationSystem

	shape      ShapeMask
	width      int
	height     int
	offsetX    int
	offsetY    int
	colHeights [4]int
	colBottoms [4]int
}

// NewPiece creates a piece in the given state. It returns
// ErrMissingRotationSystem when system is nil, or the rotation system's error
// when the state's type is invalid.
func NewPiece(state PieceState, system RotationSystem) (Piece, error) {
	if system == nil {
		return Piece{}, ErrMissingRotationSystem
	}
	p := Piece{state: state, system: system}
	if err := p.updateShape(); err != nil {
		return Piece{}, err
	}
	return p, nil
}

// State returns the piece's current state.
func (p Piece) State() PieceState { return p.state }

// RotationSystem returns the bound rotation system, nil for the zero piece.
func (p Piece) RotationSystem() RotationSystem { return p.system }

// SetState replaces the piece's state and re-derives the shape metadata.
func (p *Piece) SetState(state PieceState) error {
	prev := p.state
	p.state = state
	if err := p.updateShape(); err != nil {
		p.state = prev
		return err
	}
	return nil
}

// SetRotationSystem rebinds the piece to a rotation system and re-derives the
// shape metadata. A nil system returns ErrMissingRotationSystem.
func (p *Piece) SetRotationSystem(system RotationSystem) error {
	if system == nil {
		return ErrMissingRotationSystem
	}
	prev := p.system
	p.system = system
	if err := p.updateShape(); err != nil {
		p.system = prev
		return err
	}
	return nil
}

// Width returns the tight width of the piece in its current rotation.
func (p Piece) Width() int { return p.width }

// Height returns the tight height of the piece in its current rotation.
func (p Piece) Height() int { return p.height }

// ShapeMask returns the raw 4x4 occupancy mask for the current rotation.
func (p Piece) ShapeMask() ShapeMask { return p.shape }

// ColumnHeights returns, per column of the bounding box, 1 + the highest
// filled y. Columns at or beyond Width are 0.
func (p Piece) ColumnHeights() [4]int { return p.colHeights }

// ColumnBottoms returns, per column of the bounding box, the lowest filled y.
// Columns at or beyond Width are 0.
func (p Piece) ColumnBottoms() [4]int { return p.colBottoms }

// FilledCells returns the filled cells relative to the bounding box's
// bottom-left corner.
func (p Piece) FilledCells() []Position {
	cells := make([]Position, 0, 4)
	for y := 0; y < p.height; y++ {
		for x := 0; x < p.width; x++ {
			if p.shape.Test(x+p.offsetX, y+p.offsetY) {
				cells = append(cells, Position{X: x, Y: y})
			}
		}
	}
	return cells
}

// AbsoluteFilledCells returns the filled cells translated by the piece's
// board position.
func (p Piece) AbsoluteFilledCells() []Position {
	cells := p.FilledCells()
	for i := range cells {
		cells[i] = cells[i].Add(p.state.Position)
	}
	return cells
}

// translated returns a copy of the piece moved by (dx, dy). Only the position
// changes, so no shape re-derivation is needed.
func (p Piece) translated(dx, dy int) Piece {
	p.state.Position.X += dx
	p.state.Position.Y += dy
	return p
}

// withRotation returns a copy of the piece in the given rotation.
func (p Piece) withRotation(r Rotation) Piece {
	p.state.Rotation = r
	// The type is unchanged, so the shape lookup cannot fail.
	_ = p.updateShape()
	return p
}

// updateShape re-derives the mask, bounding box and column profile.
func (p *Piece) updateShape() error {
	if p.system == nil {
		return ErrMissingRotationSystem
	}
	shape, err := p.system.Shape(p.state.Type, p.state.Rotation)
	if err != nil {
		return fmt.Errorf("derive shape: %w", err)
	}
	p.shape = shape

	minX, minY := 4, 4
	maxX, maxY := -1, -1
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			if !shape.Test(x, y) {
				continue
			}
			if x < minX {
				minX = x
			}
			if y < minY {
				minY = y
			}
			if x > maxX {
				maxX = x
			}
			if y > maxY {
				maxY = y
			}
		}
	}

	p.colHeights = [4]int{}
	p.colBottoms = [4]int{}
	if maxX < 0 {
		p.width, p.height, p.offsetX, p.offsetY = 0, 0, 0, 0
		return nil
	}

	p.offsetX, p.offsetY = minX, minY
	p.width = maxX - minX + 1
	p.height = maxY - minY + 1

	for c := 0; c < p.width; c++ {
		bottom := -1
		for y := 0; y < p.height; y++ {
			if p.shape.Test(c+p.offsetX, y+p.offsetY) {
				if bottom < 0 {
					bottom = y
				}
				p.colHeights[c] = y + 1
			}
		}
		if bottom > 0 {
			p.colBottoms[c] = bottom
		}
	}
	return nil
}
