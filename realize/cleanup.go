package realize

import "github.com/phylokit/cpphylo/phylo"

// Cleanup removes null species/characters (active but zero red-black
// degree) from s, decrementing N/M accordingly. It is idempotent: calling
// it twice in a row is a no-op the second time (property 6, §8).
//
// Duplicate row/column elimination is a documented non-goal (§4.4); this
// function only ever prunes on degree, never on row/column equality.
func Cleanup(s *phylo.State) {
	for sp := 0; sp < s.N0; sp++ {
		if !s.SpeciesActive[sp] {
			continue
		}
		deg, err := s.RB.Degree(sp)
		if err != nil {
			panic(err)
		}
		if deg == 0 {
			s.SpeciesActive[sp] = false
			s.N--
		}
	}

	for c := 0; c < s.M0; c++ {
		if !s.CharActive[c] {
			continue
		}
		deg, err := s.RB.Degree(s.CharVertex(c))
		if err != nil {
			panic(err)
		}
		if deg == 0 {
			s.CharActive[c] = false
			s.Colors[c] = phylo.Removed
			s.Current[c] = -1
			s.M--
		}
	}
}
