package rbgraph

import "errors"

// Sentinel errors for rbgraph operations. All are fatal: a GraphCorrupt
// condition indicates a caller passed a vertex id the Graph never had, or
// a codec found a sidecar it cannot parse as DOT.
var (
	// ErrGraphCorrupt indicates a requested vertex id was out of range, or
	// an edge referenced an endpoint outside the graph's fixed vertex set.
	ErrGraphCorrupt = errors.New("rbgraph: vertex id out of range")

	// ErrDecodeFailed indicates a DOT payload could not be parsed into a
	// Graph. ReadDOT does not check the vertex count.
	ErrDecodeFailed = errors.New("rbgraph: failed to decode graph-exchange payload")
)
