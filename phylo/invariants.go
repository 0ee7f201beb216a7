package phylo

import "fmt"

// CheckInvariants verifies properties 1-3 of the testable-properties list;
// property 4 (isolated BLACK characters versus the matrix) is not checked.
// It is never called on the search hot path (the realization operator and
// driver trust their own bookkeeping); it exists for tests, mirroring the
// source's check_state as a programmer-error detector rather than a
// user-facing validation.
func (s *State) CheckInvariants() error {
	activeSpecies := 0
	for _, a := range s.SpeciesActive {
		if a {
			activeSpecies++
		}
	}
	if activeSpecies != s.N {
		return fmt.Errorf("phylo: species_active sums to %d, want N=%d", activeSpecies, s.N)
	}

	activeChars := 0
	for c := 0; c < s.M0; c++ {
		if s.CharActive[c] {
			activeChars++
		}
		// Property 2: REMOVED <=> current_state==-1 <=> char_active==0.
		removed := s.Colors[c] == Removed
		negOne := s.Current[c] == -1
		inactive := !s.CharActive[c]
		if removed != negOne || removed != inactive {
			return fmt.Errorf("phylo: character %d color/current/active disagree on removal", c)
		}
	}
	if activeChars != s.M {
		return fmt.Errorf("phylo: char_active sums to %d, want M=%d", activeChars, s.M)
	}

	// Property 3: every RB edge (s, n0+c) implies species_active[s] and
	// colors[c] in {BLACK,RED}.
	for sp := 0; sp < s.N0; sp++ {
		nbrs, err := s.RB.Neighbors(sp)
		if err != nil {
			return err
		}
		if len(nbrs) > 0 && !s.SpeciesActive[sp] {
			return fmt.Errorf("phylo: species %d has RB edges but is inactive", sp)
		}
	}
	for c := 0; c < s.M0; c++ {
		nbrs, err := s.RB.Neighbors(s.CharVertex(c))
		if err != nil {
			return err
		}
		if len(nbrs) > 0 && s.Colors[c] == Removed {
			return fmt.Errorf("phylo: character %d is REMOVED but has RB edges", c)
		}
	}

	return nil
}
