package phylo

import "github.com/phylokit/cpphylo/rbgraph"

// State is one node's worth of instance data: the original matrix, which
// species/characters are still active, each character's color and
// realized bit, the red-black and conflict graphs, and the per-level
// search bookkeeping (TriedCharacters/CharacterQueue).
//
// A State is produced by the instance loader, cloned by the decision-tree
// driver to produce child states, and discarded once the search backtracks
// past its level. Clones own independent RB/CG graphs and independent
// activity/color/state slices; Matrix is shared by pointer (§3.4).
type State struct {
	N0, M0 int // original species/character counts, immutable for the instance
	N, M   int // currently active species/character counts

	Matrix *Matrix

	SpeciesActive []bool
	CharActive    []bool
	Colors        []Color
	Current       []int8 // {0,1,-1}; -1 means removed

	Operation int // 0 = rejected, 1 = realized, 2 = realized and removed
	Realize   int // character index targeted by the next/last realization

	RealizedChar int // the move that produced this state, used by the driver's witness

	// TriedCharacters and CharacterQueue belong to a specific search-tree
	// node; they are not copied by Clone (children start empty, §3.4/§4.6).
	TriedCharacters []int
	CharacterQueue  []int

	RB *rbgraph.Graph
	CG *rbgraph.Graph
}

// New allocates a State over n0 species and m0 characters, all active and
// BLACK, with empty RB/CG graphs of the right size. Callers (the instance
// loader) populate RB/CG edges afterward.
func New(n0, m0 int, matrix *Matrix) *State {
	s := &State{
		N0: n0, M0: m0, N: n0, M: m0,
		Matrix:        matrix,
		SpeciesActive: make([]bool, n0),
		CharActive:    make([]bool, m0),
		Colors:        make([]Color, m0),
		Current:       make([]int8, m0),
		RB:            rbgraph.New(n0 + m0),
		CG:            rbgraph.New(m0),
	}
	for i := range s.SpeciesActive {
		s.SpeciesActive[i] = true
	}
	for i := range s.CharActive {
		s.CharActive[i] = true
	}

	return s
}

// CharVertex returns the RB vertex id for character c.
func (s *State) CharVertex(c int) int { return s.N0 + c }

// Clone returns a child State: independent RB/CG graphs, independent
// activity/color/state slices, empty TriedCharacters/CharacterQueue, and
// the same shared Matrix pointer.
func (s *State) Clone() *State {
	c := &State{
		N0: s.N0, M0: s.M0, N: s.N, M: s.M,
		Matrix:        s.Matrix,
		SpeciesActive: append([]bool(nil), s.SpeciesActive...),
		CharActive:    append([]bool(nil), s.CharActive...),
		Colors:        append([]Color(nil), s.Colors...),
		Current:       append([]int8(nil), s.Current...),
		Operation:     s.Operation,
		Realize:       s.Realize,
		RealizedChar:  s.RealizedChar,
		RB:            s.RB.Clone(),
		CG:            s.CG.Clone(),
	}

	return c
}
