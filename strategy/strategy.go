// Package strategy defines the single-method contract the decision-tree
// driver uses to obtain the ordered candidate-character queue at each
// search level (§4.5), plus two concrete strategies.
package strategy

import (
	"sort"

	"github.com/phylokit/cpphylo/phylo"
)

// Strategy returns the candidates to try at the current level, in the
// order to try them. Every returned index c must satisfy
// char_active[c]==true and colors[c] != Removed; the driver treats a
// Strategy as an opaque oracle and does not validate this itself.
type Strategy interface {
	Candidates(s *phylo.State) []int
}

// Func adapts a plain function to Strategy, mirroring the teacher's
// functional-option/closure-as-capability idiom.
type Func func(s *phylo.State) []int

// Candidates implements Strategy.
func (f Func) Candidates(s *phylo.State) []int { return f(s) }

func activeCandidates(s *phylo.State) []int {
	out := make([]int, 0, s.M)
	for c := 0; c < s.M0; c++ {
		if s.CharActive[c] && s.Colors[c] != phylo.Removed {
			out = append(out, c)
		}
	}

	return out
}

// NaturalOrder tries every active, non-removed character in ascending
// index order.
func NaturalOrder() Strategy {
	return Func(func(s *phylo.State) []int {
		return activeCandidates(s)
	})
}

// ConflictSparseFirst orders active characters by ascending conflict-graph
// degree, so characters least constrained by CG are tried first; ties
// break by index. A heuristic supplement beyond the minimal contract,
// grounded in §3.3's description of CG as "consulted by strategies."
func ConflictSparseFirst() Strategy {
	return Func(func(s *phylo.State) []int {
		cands := activeCandidates(s)
		deg := make(map[int]int, len(cands))
		for _, c := range cands {
			d, err := s.CG.Degree(c)
			if err != nil {
				panic(err)
			}
			deg[c] = d
		}
		sort.SliceStable(cands, func(i, j int) bool {
			if deg[cands[i]] != deg[cands[j]] {
				return deg[cands[i]] < deg[cands[j]]
			}

			return cands[i] < cands[j]
		})

		return cands
	})
}
