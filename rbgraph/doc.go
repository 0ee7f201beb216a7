// Package rbgraph is a thin, fixed-size undirected graph layer used to
// represent the red-black and conflict graphs of a perfect-phylogeny
// search instance.
//
// A Graph is constructed once with a vertex count k and never grows: every
// vertex id in [0,k) exists for the lifetime of the Graph, whether or not
// it has any incident edges. This matches the domain's fixed vertex
// numbering (species, then characters) and lets callers treat "isolated
// vertex" and "vertex removed from the instance" as distinct, caller-owned
// concerns instead of graph-layer ones.
//
// Storage is backed by gonum's simple.UndirectedGraph; connected-component
// queries delegate to gonum/graph/topo; the on-disk graph-exchange format
// is DOT, via gonum/graph/encoding/dot.
package rbgraph
