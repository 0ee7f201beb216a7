// Package search implements the depth-first decision-tree driver (§4.6):
// a bounded-depth stack of phylo.State slots, a strategy that supplies the
// per-level candidate queue, and a small state machine (nextNode) that
// descends on an accepted realization, stays on a rejection, and
// backtracks when a level's queue is exhausted.
package search
