package tetris

import "sort"

// TSpinConfig extends the search configuration with T-spin-specific rules.
type TSpinConfig struct {
	Config

	// RequireLastRotation only classifies landings whose final move is a
	// rotation, matching guideline T-spin rules.
	RequireLastRotation bool
	// AllowMiniTSpins keeps mini T-spins; when false they are downgraded to
	// plain landings.
	AllowMiniTSpins bool
	// PrioritizeTSpins sorts T-spin landings ahead of plain ones.
	PrioritizeTSpins bool
}

// DefaultTSpinConfig returns the default T-spin search configuration.
func DefaultTSpinConfig() TSpinConfig {
	return TSpinConfig{
		Config:              DefaultConfig(),
		RequireLastRotation: true,
		AllowMiniTSpins:     true,
		PrioritizeTSpins:    true,
	}
}

// TSpinSearch is a placement search specialised for T-spin hunting. It runs
// the breadth-first PathSearch and re-classifies, filters and orders the
// landings according to its TSpinConfig.
type TSpinSearch struct {
	path        PathSearch
	tSpinConfig TSpinConfig
}

// NewTSpinSearch creates a T-spin search with the given configuration.
func NewTSpinSearch(config TSpinConfig) *TSpinSearch {
	return &TSpinSearch{
		path:        PathSearch{config: config.Config},
		tSpinConfig: config,
	}
}

// Name implements SearchAlgorithm.
func (s *TSpinSearch) Name() string { return "TSpinSearch" }

// Config implements SearchAlgorithm.
func (s *TSpinSearch) Config() Config { return s.path.config }

// SetConfig implements SearchAlgorithm, keeping the T-spin extensions.
func (s *TSpinSearch) SetConfig(config Config) {
	s.path.config = config
	s.tSpinConfig.Config = config
}

// TSpinConfig returns the full T-spin configuration.
func (s *TSpinSearch) TSpinConfig() TSpinConfig { return s.tSpinConfig }

// SetTSpinConfig replaces the full T-spin configuration.
func (s *TSpinSearch) SetTSpinConfig(config TSpinConfig) {
	s.tSpinConfig = config
	s.path.config = config.Config
}

// Clone implements SearchAlgorithm.
func (s *TSpinSearch) Clone() SearchAlgorithm {
	return NewTSpinSearch(s.tSpinConfig)
}

// FindLandingPositions implements SearchAlgorithm. Landings come from the
// underlying breadth-first search; T-piece landings are re-classified under
// this search's rules.
func (s *TSpinSearch) FindLandingPositions(gs *GameState, piece Piece, maxDepth int) []LandingPosition {
	landings := s.path.FindLandingPositions(gs, piece, maxDepth)

	for i := range landings {
		if landings[i].Piece.State().Type != PieceT {
			continue
		}

		lastMoveWasRotation := false
		if n := len(landings[i].Path); n > 0 {
			lastMoveWasRotation = landings[i].Path[n-1].IsRotation()
		}

		spin := classifyTSpin(gs.Board(), landings[i].Piece.State(),
			lastMoveWasRotation || !s.tSpinConfig.RequireLastRotation)
		if spin == TSpinMini && !s.tSpinConfig.AllowMiniTSpins {
			spin = TSpinNone
		}
		landings[i].TSpin = spin
	}

	if s.tSpinConfig.PrioritizeTSpins {
		sort.SliceStable(landings, func(i, j int) bool {
			return landings[i].IsTSpin() && !landings[j].IsTSpin()
		})
	}
	return landings
}

// FindPath implements SearchAlgorithm.
func (s *TSpinSearch) FindPath(gs *GameState, startPiece, targetPiece Piece) []Move {
	return s.path.FindPath(gs, startPiece, targetPiece)
}

// CanPlacePiece implements SearchAlgorithm.
func (s *TSpinSearch) CanPlacePiece(gs *GameState, piece Piece) bool {
	return s.path.CanPlacePiece(gs, piece)
}

// DetectTSpin classifies the piece's current resting state given the move
// that produced it. Non-T pieces are always TSpinNone.
func (s *TSpinSearch) DetectTSpin(gs *GameState, piece Piece, lastMove Move) TSpinType {
	if piece.State().Type != PieceT {
		return TSpinNone
	}
	spin := classifyTSpin(gs.Board(), piece.State(),
		lastMove.IsRotation() || !s.tSpinConfig.RequireLastRotation)
	if spin == TSpinMini && !s.tSpinConfig.AllowMiniTSpins {
		spin = TSpinNone
	}
	return spin
}
