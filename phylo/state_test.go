package phylo_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/phylokit/cpphylo/phylo"
)

func TestState_CheckInvariantsOnFreshState(t *testing.T) {
	mx, err := phylo.NewMatrix(2, 2, []int{1, 0, 0, 1})
	require.NoError(t, err)

	st := phylo.New(2, 2, mx)
	require.NoError(t, st.RB.AddEdge(0, st.CharVertex(0)))
	require.NoError(t, st.RB.AddEdge(1, st.CharVertex(1)))

	require.NoError(t, st.CheckInvariants())
}

func TestState_Clone_IndependentGraphs(t *testing.T) {
	mx, err := phylo.NewMatrix(1, 1, []int{1})
	require.NoError(t, err)

	st := phylo.New(1, 1, mx)
	require.NoError(t, st.RB.AddEdge(0, st.CharVertex(0)))

	clone := st.Clone()
	require.NoError(t, clone.RB.DeleteIncident(0))

	ns, err := st.RB.Neighbors(0)
	require.NoError(t, err)
	require.NotEmpty(t, ns, "cloning must not share the RB graph")
}

func TestColor_String(t *testing.T) {
	require.Equal(t, "BLACK", phylo.Black.String())
	require.Equal(t, "RED", phylo.Red.String())
	require.Equal(t, "REMOVED", phylo.Removed.String())
}

func TestBuildConflictGraph_Triangle(t *testing.T) {
	mx, err := phylo.NewMatrix(3, 3, []int{
		1, 1, 0,
		1, 0, 1,
		0, 1, 1,
	})
	require.NoError(t, err)

	cg, err := phylo.BuildConflictGraph(mx)
	require.NoError(t, err)

	for _, pair := range [][2]int{{0, 1}, {0, 2}, {1, 2}} {
		ns, err := cg.Neighbors(pair[0])
		require.NoError(t, err)
		require.Contains(t, ns, pair[1])
	}
}

func TestBuildConflictGraph_NoConflictWhenOneColumnIsConstant(t *testing.T) {
	mx, err := phylo.NewMatrix(2, 2, []int{1, 0, 1, 1})
	require.NoError(t, err)

	cg, err := phylo.BuildConflictGraph(mx)
	require.NoError(t, err)

	ns, err := cg.Neighbors(0)
	require.NoError(t, err)
	require.Empty(t, ns, "column 0 is all-1 so the four-gamete test can never see 00")
}
