// Package instance loads a Constrained Perfect Phylogeny instance from a
// whitespace-separated integer stream into a fresh phylo.State, building
// the initial red-black and conflict graphs as it goes (§4.2).
package instance
