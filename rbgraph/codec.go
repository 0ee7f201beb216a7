package rbgraph

import (
	"io"

	"gonum.org/v1/gonum/graph/encoding/dot"
)

// WriteDOT marshals rb as a DOT graph named name, including isolated
// vertices, so a round trip through ReadDOT recovers the full fixed
// vertex set along with the edge set (snapshot property 5).
func (rb *Graph) WriteDOT(w io.Writer, name string) error {
	data, err := dot.Marshal(rb.g, name, "", "  ")
	if err != nil {
		return err
	}
	_, err = w.Write(data)

	return err
}

// ReadDOT decodes a DOT graph-exchange payload into a Graph. The decoded
// vertex count is taken from the number of distinct node statements in
// the payload; callers that expect an exact k compare VertexCount()
// themselves (the snapshot codec reports a mismatch as its own
// ErrSnapshotCorrupt).
func ReadDOT(r io.Reader) (*Graph, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	// dst starts with zero vertices; dot.Unmarshal grows it one NewNode()
	// call per distinct node encountered, in file order. WriteDOT always
	// emits vertices 0..k-1 in ascending order before any edge statement,
	// so the recovered node ids line up with the original numbering.
	g := New(0)
	if err := dot.Unmarshal(data, g.g); err != nil {
		return nil, ErrDecodeFailed
	}
	g.k = g.g.Nodes().Len()

	return g, nil
}
