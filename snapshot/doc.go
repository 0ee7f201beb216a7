// Package snapshot serializes and deserializes a phylo.State as a
// structured JSON document plus two DOT graph-exchange sidecar files
// (§4.7), for regression tests and the replay tool.
package snapshot
