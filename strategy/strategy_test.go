package strategy_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/phylokit/cpphylo/instance"
	"github.com/phylokit/cpphylo/strategy"
)

func TestNaturalOrder_AscendingActiveOnly(t *testing.T) {
	st, ok, err := instance.Load(strings.NewReader("2 3\n1 0 1\n0 1 1\n"))
	require.NoError(t, err)
	require.True(t, ok)

	cands := strategy.NaturalOrder().Candidates(st)
	require.Equal(t, []int{0, 1, 2}, cands)
}

func TestConflictSparseFirst_OrdersByConflictDegree(t *testing.T) {
	// Columns 0 and 1 exhibit all four gamete patterns across the four
	// species, so they conflict; column 2 is constant and conflicts with
	// neither, so it must sort first.
	st, ok, err := instance.Load(strings.NewReader(
		"4 3\n1 1 1\n1 0 1\n0 1 1\n0 0 1\n"))
	require.NoError(t, err)
	require.True(t, ok)

	cands := strategy.ConflictSparseFirst().Candidates(st)
	require.Equal(t, 2, cands[0], "character 2 has conflict-degree 0 and must be tried first")
}
