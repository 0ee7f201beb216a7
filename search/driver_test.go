package search_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/phylokit/cpphylo/instance"
	"github.com/phylokit/cpphylo/search"
	"github.com/phylokit/cpphylo/strategy"
)

func load(t *testing.T, text string) *search.Driver {
	t.Helper()

	st, ok, err := instance.Load(strings.NewReader(text))
	require.NoError(t, err)
	require.True(t, ok)

	return search.New(st, strategy.NaturalOrder())
}

// S1: two isolated species, two isolated characters with one 1 each.
func TestDriver_S1_SuccessWithOrderedWitness(t *testing.T) {
	d := load(t, "2 2\n1 0\n0 1\n")

	witness, ok := d.Run()
	require.True(t, ok)
	require.Equal(t, []int{0, 1}, witness)
}

// S2: classic three-state triangle; CG is a triangle, search has no solution.
func TestDriver_S2_NoSolution(t *testing.T) {
	d := load(t, "3 3\n1 1 0\n1 0 1\n0 1 1\n")

	_, ok := d.Run()
	require.False(t, ok)
}

// S3: success, with a removal (operation 2) occurring somewhere on the witness.
func TestDriver_S3_Success(t *testing.T) {
	d := load(t, "3 2\n1 0\n1 1\n0 1\n")

	witness, ok := d.Run()
	require.True(t, ok)
	require.NotEmpty(t, witness)
}

func TestDriver_WithStrategyOverridesConstructorChoice(t *testing.T) {
	st, ok, err := instance.Load(strings.NewReader("2 2\n1 0\n0 1\n"))
	require.NoError(t, err)
	require.True(t, ok)

	d := search.New(st, strategy.ConflictSparseFirst(), search.WithStrategy(strategy.NaturalOrder()))
	witness, ok := d.Run()
	require.True(t, ok)
	require.Equal(t, []int{0, 1}, witness, "WithStrategy must take effect over the constructor argument")
}

func TestDriver_WithMaxDepthClampsToTerminationBound(t *testing.T) {
	st, ok, err := instance.Load(strings.NewReader("2 2\n1 0\n0 1\n"))
	require.NoError(t, err)
	require.True(t, ok)

	d := search.New(st, strategy.NaturalOrder(), search.WithMaxDepth(1000))
	// A huge requested max depth must be clamped to 2*M0, not accepted
	// verbatim, since the frontier array itself is sized to 2*M0+1.
	witness, ok := d.Run()
	require.True(t, ok)
	require.Equal(t, []int{0, 1}, witness)
}
