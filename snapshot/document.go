package snapshot

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/phylokit/cpphylo/phylo"
	"github.com/phylokit/cpphylo/rbgraph"
)

// Document is the on-disk shape of a single State (§4.7). Field names
// match the spec verbatim so the format is legible without a decoder ring.
type Document struct {
	NumSpeciesOrig    int   `json:"num_species_orig"`
	NumCharactersOrig int   `json:"num_characters_orig"`
	NumSpecies        int   `json:"num_species"`
	NumCharacters     int   `json:"num_characters"`
	Realize           int   `json:"realize"`
	TriedCharacters   []int `json:"tried_characters"`
	CharacterQueue    []int `json:"character_queue"`
	Current           []int8 `json:"current"`
	Species           []bool `json:"species"`
	Characters        []bool `json:"characters"`
	RedBlackFile      string `json:"red_black_file"`
	ConflictFile      string `json:"conflict_file"`
}

// Dump builds a Document for s and writes its two DOT sidecars under dir,
// named "<stem>-red-black.dot" and "<stem>-conflict.dot".
func Dump(s *phylo.State, dir, stem string) (*Document, error) {
	rbName := stem + "-red-black.dot"
	cgName := stem + "-conflict.dot"

	if err := writeDOT(s.RB, filepath.Join(dir, rbName), "red_black"); err != nil {
		return nil, err
	}
	if err := writeDOT(s.CG, filepath.Join(dir, cgName), "conflict"); err != nil {
		return nil, err
	}

	return &Document{
		NumSpeciesOrig:    s.N0,
		NumCharactersOrig: s.M0,
		NumSpecies:        s.N,
		NumCharacters:     s.M,
		Realize:           s.Realize,
		TriedCharacters:   append([]int(nil), s.TriedCharacters...),
		CharacterQueue:    append([]int(nil), s.CharacterQueue...),
		Current:           append([]int8(nil), s.Current...),
		Species:           append([]bool(nil), s.SpeciesActive...),
		Characters:        append([]bool(nil), s.CharActive...),
		RedBlackFile:      rbName,
		ConflictFile:      cgName,
	}, nil
}

func writeDOT(g *rbgraph.Graph, path, name string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	return g.WriteDOT(f, name)
}

// Save writes d as JSON to w.
func (d *Document) Save(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	return enc.Encode(d)
}

// Load decodes a Document from r. The sidecar filenames it carries are
// resolved relative to whatever base the caller later passes to
// Materialize.
func Load(r io.Reader) (*Document, error) {
	var d Document
	if err := json.NewDecoder(r).Decode(&d); err != nil {
		return nil, fmt.Errorf("snapshot.Load: %w: %w", ErrSnapshotCorrupt, err)
	}
	if d.RedBlackFile == "" || d.ConflictFile == "" {
		return nil, fmt.Errorf("snapshot.Load: %w: missing sidecar reference", ErrSnapshotCorrupt)
	}
	if len(d.Current) != d.NumCharactersOrig || len(d.Characters) != d.NumCharactersOrig ||
		len(d.Species) != d.NumSpeciesOrig {
		return nil, fmt.Errorf("snapshot.Load: %w: array length does not match original counts", ErrSnapshotCorrupt)
	}

	return &d, nil
}

// Materialize rebuilds a phylo.State from d, reading its DOT sidecars
// relative to base. The original Matrix is not part of the snapshot
// format (§4.7 lists no matrix field), so the returned State's Matrix is
// nil; callers that need it retain the original *phylo.State alongside
// the document, per §3.4's shared-read-only-matrix design.
func (d *Document) Materialize(base string) (*phylo.State, error) {
	rb, err := readDOT(filepath.Join(base, d.RedBlackFile), d.NumSpeciesOrig+d.NumCharactersOrig)
	if err != nil {
		return nil, err
	}
	cg, err := readDOT(filepath.Join(base, d.ConflictFile), d.NumCharactersOrig)
	if err != nil {
		return nil, err
	}

	s := &phylo.State{
		N0: d.NumSpeciesOrig, M0: d.NumCharactersOrig,
		N: d.NumSpecies, M: d.NumCharacters,
		Realize:         d.Realize,
		TriedCharacters: append([]int(nil), d.TriedCharacters...),
		CharacterQueue:  append([]int(nil), d.CharacterQueue...),
		Current:         append([]int8(nil), d.Current...),
		SpeciesActive:   append([]bool(nil), d.Species...),
		CharActive:      append([]bool(nil), d.Characters...),
		RB:              rb,
		CG:              cg,
	}
	s.Colors = make([]phylo.Color, s.M0)
	for c := 0; c < s.M0; c++ {
		switch {
		case s.Current[c] == -1:
			s.Colors[c] = phylo.Removed
		case s.Current[c] == 1:
			s.Colors[c] = phylo.Red
		default:
			s.Colors[c] = phylo.Black
		}
	}

	return s, nil
}

func readDOT(path string, wantK int) (*rbgraph.Graph, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("snapshot: %w: %w", ErrSnapshotCorrupt, err)
	}
	defer f.Close()

	g, err := rbgraph.ReadDOT(f)
	if err != nil {
		return nil, fmt.Errorf("snapshot: %w: %w", ErrSnapshotCorrupt, err)
	}
	if g.VertexCount() != wantK {
		return nil, fmt.Errorf("snapshot: %w: sidecar %s has %d vertices, want %d",
			ErrSnapshotCorrupt, path, g.VertexCount(), wantK)
	}

	return g, nil
}
