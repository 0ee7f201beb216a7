package phylo

import "github.com/phylokit/cpphylo/rbgraph"

// BuildConflictGraph returns the conflict graph over mx.M() character
// vertices: an edge (c1,c2) exists iff all four of {(0,0),(0,1),(1,0),(1,1)}
// occur among mx's rows restricted to columns c1,c2 (§3.3). Built once at
// load time; neither realization nor Cleanup mutates it afterwards, so an
// eliminated character keeps its conflict edges.
func BuildConflictGraph(mx *Matrix) (*rbgraph.Graph, error) {
	g := rbgraph.New(mx.M())
	for c1 := 0; c1 < mx.M(); c1++ {
		for c2 := c1 + 1; c2 < mx.M(); c2++ {
			var seen [2][2]bool
			for sp := 0; sp < mx.N(); sp++ {
				seen[mx.At(sp, c1)][mx.At(sp, c2)] = true
			}
			if seen[0][0] && seen[0][1] && seen[1][0] && seen[1][1] {
				if err := g.AddEdge(c1, c2); err != nil {
					return nil, err
				}
			}
		}
	}

	return g, nil
}
