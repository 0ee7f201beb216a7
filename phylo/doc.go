// Package phylo defines the State that a perfect-phylogeny search mutates:
// the original matrix, per-species and per-character activity, character
// colors and realized bits, the red-black and conflict graphs, and the
// per-level search bookkeeping (tried/queued characters).
package phylo
