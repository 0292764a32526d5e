package tetris

import "github.com/kamstrup/intmap"

// searchNode is one explored piece state. Nodes form a tree through parent
// pointers; walking them back to the root reproduces the move path.
type searchNode struct {
	piece    Piece
	lastMove Move
	parent   *searchNode
	depth    int
}

// PathSearch is a breadth-first search over the graph of reachable
// (type, position, rotation) states. Because every state is visited at most
// once in breadth order, the recorded path to each landing is a shortest
// move sequence.
//
// The search applies pure rotations only; rotations that would need a wall
// kick to fit are not explored.
type PathSearch struct {
	config Config
}

// NewPathSearch creates a path search with the given configuration.
func NewPathSearch(config Config) *PathSearch {
	return &PathSearch{config: config}
}

// Name implements SearchAlgorithm.
func (s *PathSearch) Name() string { return "PathSearch" }

// Config implements SearchAlgorithm.
func (s *PathSearch) Config() Config { return s.config }

// SetConfig implements SearchAlgorithm.
func (s *PathSearch) SetConfig(config Config) { s.config = config }

// Clone implements SearchAlgorithm.
func (s *PathSearch) Clone() SearchAlgorithm {
	return &PathSearch{config: s.config}
}

// FindLandingPositions implements SearchAlgorithm. Every reachable state
// whose one-down translation collides is recorded once, with its path and,
// for T pieces, its T-spin classification.
func (s *PathSearch) FindLandingPositions(gs *GameState, piece Piece, maxDepth int) []LandingPosition {
	var landings []LandingPosition

	queue := []*searchNode{{piece: piece, lastMove: NewMove(MoveDown)}}
	visited := intmap.New[StateKey, struct{}](256)
	visited.Put(piece.State().Key(), struct{}{})

	for head := 0; head < len(queue); head++ {
		node := queue[head]

		if s.isLanding(gs, &node.piece) {
			lastMoveWasRotation := node.parent != nil && node.lastMove.IsRotation()
			if !s.config.LastRotationOnly || lastMoveWasRotation {
				landing := LandingPosition{
					Piece:        node.piece,
					Path:         reconstructPath(node),
					LinesCleared: linesClearedOnLock(gs, &node.piece),
					Valid:        true,
				}
				if node.piece.State().Type == PieceT {
					landing.TSpin = classifyTSpin(gs.Board(), node.piece.State(), lastMoveWasRotation)
				}
				landings = append(landings, landing)
			}
		}

		if maxDepth > 0 && node.depth >= maxDepth {
			continue
		}

		s.expand(gs, node, visited, &queue)
	}

	return landings
}

// FindPath implements SearchAlgorithm. It returns the shortest move sequence
// from startPiece's state to targetPiece's state, empty when unreachable.
func (s *PathSearch) FindPath(gs *GameState, startPiece, targetPiece Piece) []Move {
	target := targetPiece.State()

	queue := []*searchNode{{piece: startPiece, lastMove: NewMove(MoveDown)}}
	visited := intmap.New[StateKey, struct{}](256)
	visited.Put(startPiece.State().Key(), struct{}{})

	for head := 0; head < len(queue); head++ {
		node := queue[head]

		if node.piece.State() == target {
			return reconstructPath(node)
		}

		s.expand(gs, node, visited, &queue)
	}

	return nil
}

// CanPlacePiece implements SearchAlgorithm.
func (s *PathSearch) CanPlacePiece(gs *GameState, piece Piece) bool {
	return gs.CanPlace(&piece)
}

// expand enqueues every unvisited, fitting successor of the node.
func (s *PathSearch) expand(gs *GameState, node *searchNode, visited *intmap.Map[StateKey, struct{}], queue *[]*searchNode) {
	for _, moveType := range s.moveAlphabet() {
		move := NewMove(moveType)

		next, ok := s.applyMove(gs, node.piece, move)
		if !ok {
			continue
		}
		if s.config.Is20G {
			next = dropToFloor(gs, next)
		}

		key := next.State().Key()
		if _, seen := visited.Get(key); seen {
			continue
		}
		visited.Put(key, struct{}{})

		*queue = append(*queue, &searchNode{
			piece:    next,
			lastMove: move,
			parent:   node,
			depth:    node.depth + 1,
		})
	}
}

// moveAlphabet returns the move types the configuration explores, in a fixed
// order so paths are deterministic.
func (s *PathSearch) moveAlphabet() []MoveType {
	alphabet := make([]MoveType, 0, 7)
	alphabet = append(alphabet, MoveLeft, MoveRight)
	if s.config.AllowSoftDrop {
		alphabet = append(alphabet, MoveDown)
	}
	if s.config.AllowHardDrop {
		alphabet = append(alphabet, MoveHardDrop)
	}
	alphabet = append(alphabet, MoveRotateClockwise, MoveRotateCounterClockwise)
	if s.config.AllowRotate180 {
		alphabet = append(alphabet, MoveRotate180)
	}
	return alphabet
}

// applyMove computes the piece after a pure move, without wall-kick lookups.
// It reports whether the result fits the board.
func (s *PathSearch) applyMove(gs *GameState, piece Piece, move Move) (Piece, bool) {
	next := piece

	switch move.Type() {
	case MoveLeft:
		next = next.translated(-1, 0)
	case MoveRight:
		next = next.translated(1, 0)
	case MoveDown, MoveSoftDrop:
		next = next.translated(0, -1)
	case MoveUp:
		next = next.translated(0, 1)
	case MoveRotateClockwise:
		next = next.withRotation(next.State().Rotation.Clockwise())
	case MoveRotateCounterClockwise:
		next = next.withRotation(next.State().Rotation.CounterClockwise())
	case MoveRotate180:
		next = next.withRotation(next.State().Rotation.Rotate180())
	case MoveHardDrop:
		next = dropToFloor(gs, next)
	default:
		return piece, false
	}

	return next, gs.CanPlace(&next)
}

// isLanding reports whether moving the piece one cell down would collide.
func (s *PathSearch) isLanding(gs *GameState, piece *Piece) bool {
	below := piece.translated(0, -1)
	return !gs.CanPlace(&below)
}

// dropToFloor returns the piece translated to the lowest row it still fits.
func dropToFloor(gs *GameState, piece Piece) Piece {
	for {
		below := piece.translated(0, -1)
		if !gs.CanPlace(&below) {
			return piece
		}
		piece = below
	}
}

// reconstructPath walks the parent chain back to the root and returns the
// forward move sequence. The root's sentinel move is omitted.
func reconstructPath(node *searchNode) []Move {
	var path []Move
	for n := node; n.parent != nil; n = n.parent {
		path = append(path, n.lastMove)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}

// linesClearedOnLock counts the rows that locking the piece would clear,
// without touching the real board.
func linesClearedOnLock(gs *GameState, piece *Piece) int {
	board := gs.Board().Clone()
	for _, cell := range piece.AbsoluteFilledCells() {
		board.FillCell(cell.X, cell.Y)
	}
	return board.ClearFilledRows()
}

// classifyTSpin applies the three-corner rule around the T piece's pivot.
// A corner is occupied when it lies outside the board or on a filled cell.
// Three or more occupied corners make a regular T-spin; exactly two make a
// mini when they are the rotation's front pair.
func classifyTSpin(board *Board, state PieceState, lastMoveWasRotation bool) TSpinType {
	if !lastMoveWasRotation {
		return TSpinNone
	}

	px, py := state.Position.X, state.Position.Y
	occupied := func(x, y int) bool {
		if x < 0 || x >= board.Width() || y < 0 || y >= board.Height() {
			return true
		}
		return board.IsFilled(x, y)
	}

	cornerA := occupied(px-1, py+1)
	cornerB := occupied(px+1, py+1)
	cornerC := occupied(px-1, py-1)
	cornerD := occupied(px+1, py-1)

	count := 0
	for _, c := range [4]bool{cornerA, cornerB, cornerC, cornerD} {
		if c {
			count++
		}
	}

	switch {
	case count >= 3:
		return TSpinRegular
	case count == 2:
		var front bool
		switch state.Rotation {
		case R0:
			front = cornerA && cornerB
		case R90:
			front = cornerB && cornerD
		case R180:
			front = cornerC && cornerD
		case R270:
			front = cornerA && cornerC
		}
		if front {
			return TSpinMini
		}
	}
	return TSpinNone
}
