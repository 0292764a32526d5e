package tetris_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/plus3/tetrion/tetris"
)

func TestRotationSystemRegistry(t *testing.T) {
	registry := tetris.RotationSystems()
	assert.Contains(t, registry.Names(), "SRS")

	first, err := registry.Create("SRS")
	require.NoError(t, err)
	second, err := registry.Create("SRS")
	require.NoError(t, err)

	assert.Equal(t, "SRS", first.Name())
	assert.NotSame(t, first, second, "every lookup clones the prototype")

	// Names are exact-match and case-sensitive.
	_, err = registry.Create("srs")
	assert.ErrorIs(t, err, tetris.ErrUnknownRotationSystem)
	_, err = registry.Create("TGM")
	assert.ErrorIs(t, err, tetris.ErrUnknownRotationSystem)
}

func TestSearchAlgorithmRegistry(t *testing.T) {
	registry := tetris.SearchAlgorithms()
	names := registry.Names()
	assert.Contains(t, names, "PathSearch")
	assert.Contains(t, names, "TSpinSearch")
	assert.IsIncreasing(t, names)

	search, err := registry.Create("PathSearch")
	require.NoError(t, err)
	assert.Equal(t, "PathSearch", search.Name())

	// Instances are configurable without touching the prototype.
	config := search.Config()
	config.AllowRotate180 = true
	search.SetConfig(config)

	fresh, err := registry.Create("PathSearch")
	require.NoError(t, err)
	assert.False(t, fresh.Config().AllowRotate180)

	_, err = registry.Create("pathsearch")
	assert.ErrorIs(t, err, tetris.ErrUnknownSearchAlgorithm)
}

func TestRegistryCreatedSystemDrivesAGame(t *testing.T) {
	system, err := tetris.RotationSystems().Create("SRS")
	require.NoError(t, err)

	gs, err := tetris.NewGameState(10, 20, system)
	require.NoError(t, err)

	ok, err := gs.SpawnPiece(tetris.PieceL)
	require.NoError(t, err)
	assert.True(t, ok)
}
