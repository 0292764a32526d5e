package tetris

// Config controls the move alphabet and recording rules of a placement
// search.
type Config struct {
	// AllowRotate180 includes Rotate180 in the move alphabet.
	AllowRotate180 bool
	// AllowHardDrop includes HardDrop in the move alphabet.
	AllowHardDrop bool
	// AllowSoftDrop includes Down in the move alphabet.
	AllowSoftDrop bool
	// Is20G collapses every successor to its hard-drop position before it is
	// enqueued, emulating gravity-locked play.
	Is20G bool
	// LastRotationOnly records only landings whose final move is a rotation.
	LastRotationOnly bool
}

// DefaultConfig returns the default search configuration: hard and soft drops
// enabled, 180 rotations, 20G and the last-rotation filter disabled.
func DefaultConfig() Config {
	return Config{AllowHardDrop: true, AllowSoftDrop: true}
}

// TSpinType classifies a T-piece landing.
type TSpinType int

const (
	// TSpinNone marks a plain landing.
	TSpinNone TSpinType = iota
	// TSpinRegular marks a landing reached by rotation with at least three
	// occupied corners.
	TSpinRegular
	// TSpinMini marks a landing reached by rotation with exactly two occupied
	// corners forming the rotation's front pair.
	TSpinMini
)

func (t TSpinType) String() string {
	switch t {
	case TSpinRegular:
		return "Regular"
	case TSpinMini:
		return "Mini"
	default:
		return "None"
	}
}

// LandingPosition is one place a piece can come to rest, together with the
// move path that reaches it from the search root.
type LandingPosition struct {
	// Piece is the landed piece.
	Piece Piece
	// Path is the move sequence from the search root to the landing.
	Path []Move
	// TSpin classifies the landing for T pieces; always TSpinNone otherwise.
	TSpin TSpinType
	// LinesCleared is the number of rows locking the piece would clear.
	LinesCleared int
	// Valid marks the landing as usable.
	Valid bool
}

// IsTSpin reports whether the landing is any kind of T-spin.
func (l LandingPosition) IsTSpin() bool {
	return l.TSpin != TSpinNone
}

// SearchAlgorithm enumerates reachable landing positions and move paths for
// a piece on a board.
type SearchAlgorithm interface {
	// Name returns the registry name of the algorithm.
	Name() string

	// FindLandingPositions returns every reachable landing position for the
	// piece. maxDepth limits the number of moves explored; 0 means unlimited.
	FindLandingPositions(gs *GameState, piece Piece, maxDepth int) []LandingPosition

	// FindPath returns a move sequence leading from startPiece's state to
	// targetPiece's state, empty when unreachable.
	FindPath(gs *GameState, startPiece, targetPiece Piece) []Move

	// CanPlacePiece reports whether the piece fits the board.
	CanPlacePiece(gs *GameState, piece Piece) bool

	// Config returns the active configuration.
	Config() Config

	// SetConfig replaces the configuration.
	SetConfig(config Config)

	// Clone returns a fresh instance carrying the same configuration.
	Clone() SearchAlgorithm
}
