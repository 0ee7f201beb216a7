package rbgraph_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/phylokit/cpphylo/rbgraph"
)

func TestGraph_AddEdgeAndNeighbors(t *testing.T) {
	g := rbgraph.New(4)
	require.NoError(t, g.AddEdge(0, 2))
	require.NoError(t, g.AddEdge(0, 3))

	ns, err := g.Neighbors(0)
	require.NoError(t, err)
	require.Equal(t, []int{2, 3}, ns)

	deg, err := g.Degree(0)
	require.NoError(t, err)
	require.Equal(t, 2, deg)
}

func TestGraph_AddEdgeOutOfRange(t *testing.T) {
	g := rbgraph.New(2)
	require.ErrorIs(t, g.AddEdge(0, 5), rbgraph.ErrGraphCorrupt)
}

func TestGraph_DeleteIncidentIsolatesVertex(t *testing.T) {
	g := rbgraph.New(3)
	require.NoError(t, g.AddEdge(0, 1))
	require.NoError(t, g.AddEdge(0, 2))
	require.NoError(t, g.DeleteIncident(0))

	ns, err := g.Neighbors(0)
	require.NoError(t, err)
	require.Empty(t, ns)
	require.True(t, g.HasVertex(0), "DeleteIncident must not remove the vertex itself")
}

func TestGraph_ComponentIncludesIsolatedSingleton(t *testing.T) {
	g := rbgraph.New(3)
	require.NoError(t, g.AddEdge(0, 1))

	comp, err := g.Component(2)
	require.NoError(t, err)
	require.Equal(t, []int{2}, comp)

	comp, err = g.Component(0)
	require.NoError(t, err)
	require.Equal(t, []int{0, 1}, comp)
}

func TestGraph_CloneIsIndependent(t *testing.T) {
	g := rbgraph.New(2)
	require.NoError(t, g.AddEdge(0, 1))

	clone := g.Clone()
	require.NoError(t, clone.DeleteIncident(0))

	ns, err := g.Neighbors(0)
	require.NoError(t, err)
	require.Equal(t, []int{1}, ns, "mutating the clone must not affect the original")
}

func TestGraph_DOTRoundTrip(t *testing.T) {
	g := rbgraph.New(3)
	require.NoError(t, g.AddEdge(0, 1))
	require.NoError(t, g.AddEdge(1, 2))

	var buf bytes.Buffer
	require.NoError(t, g.WriteDOT(&buf, "t"))

	g2, err := rbgraph.ReadDOT(&buf)
	require.NoError(t, err)
	require.Equal(t, g.VertexCount(), g2.VertexCount())

	ns, err := g2.Neighbors(1)
	require.NoError(t, err)
	require.Equal(t, []int{0, 2}, ns)
}
