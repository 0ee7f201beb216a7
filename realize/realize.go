package realize

import "github.com/phylokit/cpphylo/phylo"

// Realize applies a single character realization to src and returns the
// resulting child State plus an acceptance flag. src is never mutated;
// the returned State is always a clone, even on rejection (§4.3: "reject
// and return S' unchanged except for operation").
//
// Realizing an already-REMOVED character is undefined behavior per the
// caller contract (§4.3 edge cases) and is not guarded against here.
//
// Algorithm (mirrors §4.3 steps 1-5):
//  1. v is c's character vertex; A is its red-black component; N is its
//     neighbor set (species only, by RB2); D = A \ N \ {v} is the set of
//     species in v's component not yet adjacent to it.
//  2. Delete every edge incident on v.
//  3. BLACK: add an edge from v to every species in D, turn v RED.
//  4. RED: if D is non-empty, reject. Otherwise v was universal in its
//     component; remove it from the instance.
//  5. On acceptance, run Cleanup.
func Realize(src *phylo.State, c int) (*phylo.State, bool) {
	dst := src.Clone()
	dst.Realize = c
	v := dst.CharVertex(c)

	// 1. Component / neighbors / D-set, computed before any mutation.
	a, err := dst.RB.Component(v)
	if err != nil {
		panic(err)
	}
	n, err := dst.RB.Neighbors(v)
	if err != nil {
		panic(err)
	}
	// A can include other characters' vertices reached through shared
	// species, even though no two character vertices are ever directly
	// RB-adjacent (RB2); D must still be species only, so the species
	// filter below is load-bearing, not redundant with A\N\{v}.
	d := speciesOnly(sortedDiff(sortedDiff(a, n), []int{v}), dst.N0)

	// 2. Delete every edge incident on v.
	if err := dst.RB.DeleteIncident(v); err != nil {
		panic(err)
	}

	switch dst.Colors[c] {
	case phylo.Black:
		// 3. Turn black edges red by reconnecting v to the species that
		// were in its component but not yet its direct neighbors.
		for _, sp := range d {
			if err := dst.RB.AddEdge(sp, v); err != nil {
				panic(err)
			}
		}
		dst.Colors[c] = phylo.Red
		dst.Current[c] = 1
		dst.Operation = 1

	case phylo.Red:
		// 4. A non-empty D means v would need to reconnect to species it
		// is not already red-adjacent to, which a RED character cannot
		// do without a second mutation event: reject.
		if len(d) > 0 {
			rejected := src.Clone()
			rejected.Operation = 0

			return rejected, false
		}
		// v was universal in its component (free character): eliminate it.
		dst.Colors[c] = phylo.Removed
		dst.Current[c] = -1
		dst.CharActive[c] = false
		dst.M--
		dst.Operation = 2
	}

	dst.RealizedChar = c
	Cleanup(dst)

	return dst, true
}
