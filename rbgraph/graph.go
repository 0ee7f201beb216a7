package rbgraph

import (
	"sort"

	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/simple"
	"gonum.org/v1/gonum/graph/topo"
)

// Graph is an undirected graph over a fixed vertex set [0,k). Vertices are
// never added or removed after New; callers signal "this vertex no longer
// participates" by leaving it with degree zero, not by removing it.
type Graph struct {
	k int
	g *simple.UndirectedGraph
}

// New allocates a Graph with k vertices, all isolated.
func New(k int) *Graph {
	g := simple.NewUndirectedGraph()
	for i := 0; i < k; i++ {
		g.AddNode(simple.Node(int64(i)))
	}

	return &Graph{k: k, g: g}
}

// VertexCount returns the fixed vertex count k this Graph was built with.
func (rb *Graph) VertexCount() int { return rb.k }

// HasVertex reports whether v is within the fixed vertex set [0,k).
func (rb *Graph) HasVertex(v int) bool { return v >= 0 && v < rb.k }

func (rb *Graph) check(vs ...int) error {
	for _, v := range vs {
		if !rb.HasVertex(v) {
			return ErrGraphCorrupt
		}
	}

	return nil
}

// AddEdge inserts an undirected edge (u,v). Adding an edge that already
// exists, or a self-loop, is a no-op beyond validation (the realization
// operator never requests either).
func (rb *Graph) AddEdge(u, v int) error {
	if err := rb.check(u, v); err != nil {
		return err
	}
	if u == v {
		return nil
	}
	rb.g.SetEdge(simple.Edge{F: simple.Node(int64(u)), T: simple.Node(int64(v))})

	return nil
}

// DeleteIncident removes every edge touching v, leaving v isolated but
// still present in the vertex set.
func (rb *Graph) DeleteIncident(v int) error {
	if err := rb.check(v); err != nil {
		return err
	}
	nodes := graph.NodesOf(rb.g.From(int64(v)))
	for _, n := range nodes {
		rb.g.RemoveEdge(int64(v), n.ID())
	}

	return nil
}

// Neighbors returns the sorted ascending ids adjacent to v.
func (rb *Graph) Neighbors(v int) ([]int, error) {
	if err := rb.check(v); err != nil {
		return nil, err
	}
	nodes := graph.NodesOf(rb.g.From(int64(v)))
	out := make([]int, 0, len(nodes))
	for _, n := range nodes {
		out = append(out, int(n.ID()))
	}
	sort.Ints(out)

	return out, nil
}

// Degree returns the number of edges incident on v.
func (rb *Graph) Degree(v int) (int, error) {
	ns, err := rb.Neighbors(v)
	if err != nil {
		return 0, err
	}

	return len(ns), nil
}

// Component returns the sorted ascending vertex ids of the connected
// component containing v, including v itself.
func (rb *Graph) Component(v int) ([]int, error) {
	if err := rb.check(v); err != nil {
		return nil, err
	}
	comps := topo.ConnectedComponents(rb.g)
	for _, comp := range comps {
		for _, n := range comp {
			if n.ID() == int64(v) {
				out := make([]int, 0, len(comp))
				for _, m := range comp {
					out = append(out, int(m.ID()))
				}
				sort.Ints(out)

				return out, nil
			}
		}
	}
	// v exists but ConnectedComponents only reports components containing
	// at least one node; an isolated vertex is its own singleton component.
	return []int{v}, nil
}

// Clone returns a deep, independent copy of rb.
func (rb *Graph) Clone() *Graph {
	clone := New(rb.k)
	edges := rb.g.Edges()
	for edges.Next() {
		e := edges.Edge()
		clone.g.SetEdge(simple.Edge{F: e.From(), T: e.To()})
	}

	return clone
}
