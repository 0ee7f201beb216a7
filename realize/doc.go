// Package realize implements the Realization Operator (§4.3) and Cleanup
// (§4.4): the pure combinatorics that mutate a cloned phylo.State when a
// character is committed to the current frontier, and the degree-zero
// pruning that follows every accepted realization.
package realize
