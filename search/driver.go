package search

import (
	"io"
	"log"

	"github.com/phylokit/cpphylo/phylo"
	"github.com/phylokit/cpphylo/realize"
	"github.com/phylokit/cpphylo/strategy"
)

// Option configures a Driver.
type Option func(*Driver)

// WithLogger sets the trace logger used between next_node steps. The
// default discards all output, matching the pack's zero-dependency
// posture (no logging library is pulled in for a behavior the source only
// ever used as printf tracing).
func WithLogger(l *log.Logger) Option {
	return func(d *Driver) { d.logger = l }
}

// WithStrategy overrides the Strategy passed to New, letting a caller swap
// in a different candidate ordering after construction without rebuilding
// the Driver.
func WithStrategy(s strategy.Strategy) Option {
	return func(d *Driver) { d.strategy = s }
}

// WithMaxDepth tightens the number of accepted descents the driver will
// perform before giving up and reporting failure. It can only lower the
// 2*M0 bound the termination argument of §4.6 already guarantees, never
// raise it (New clamps a larger value back down).
func WithMaxDepth(n int) Option {
	return func(d *Driver) { d.maxDepth = n }
}

// Driver holds the search frontier: a slot array indexed by level, sized
// without per-descent allocation (Design Note "Search-tree slot array vs.
// explicit stack"). A character can be realized twice along one witness
// (BLACK->RED, then later RED->REMOVED), so the bound used here is the
// termination argument's own 2*M0 (§4.6), not the advisory Design Notes'
// M0+1: the two disagree, and the normative termination argument wins.
type Driver struct {
	frontier []*phylo.State
	strategy strategy.Strategy
	logger   *log.Logger
	maxDepth int
}

// New builds a Driver over initial, which becomes frontier[0].
func New(initial *phylo.State, strat strategy.Strategy, opts ...Option) *Driver {
	d := &Driver{
		frontier: make([]*phylo.State, 2*initial.M0+1),
		strategy: strat,
		logger:   log.New(io.Discard, "", 0),
		maxDepth: 2 * initial.M0,
	}
	for _, opt := range opts {
		opt(d)
	}
	if d.maxDepth > 2*initial.M0 {
		d.maxDepth = 2 * initial.M0
	}
	d.frontier[0] = initial

	return d
}

// Run executes the top-level loop of §4.6: repeatedly advance via
// nextNode, run Cleanup on the landed slot, report success when that
// slot's species count has reached zero, and report failure if nextNode
// backtracks past level 0.
func (d *Driver) Run() (witness []int, ok bool) {
	level := 0
	for {
		level = d.nextNode(level)
		if level < 0 {
			d.logger.Printf("search: no solution")

			return nil, false
		}
		if level > d.maxDepth {
			d.logger.Printf("search: exceeded max depth %d", d.maxDepth)

			return nil, false
		}

		cur := d.frontier[level]
		realize.Cleanup(cur)
		d.logger.Printf("search: level=%d n=%d m=%d operation=%d", level, cur.N, cur.M, cur.Operation)

		if cur.N == 0 {
			witness = make([]int, 0, level)
			for i := 1; i <= level; i++ {
				witness = append(witness, d.frontier[i].RealizedChar)
			}

			return witness, true
		}
	}
}

// nextNode is the state machine on frontier[level]: Enter-level populates
// the candidate queue; Exhausted backtracks; Step tries the next
// candidate, descending on acceptance and staying on rejection.
func (d *Driver) nextNode(level int) int {
	cur := d.frontier[level]

	if len(cur.TriedCharacters) == 0 && len(cur.CharacterQueue) == 0 {
		cur.CharacterQueue = d.strategy.Candidates(cur)
	}

	if len(cur.CharacterQueue) == 0 {
		return level - 1
	}

	c := cur.CharacterQueue[0]
	cur.CharacterQueue = cur.CharacterQueue[1:]
	cur.TriedCharacters = append([]int{cur.RealizedChar}, cur.TriedCharacters...)

	modified, accepted := realize.Realize(cur, c)
	if !accepted {
		return level
	}

	modified.TriedCharacters = nil
	modified.CharacterQueue = nil
	d.frontier[level+1] = modified

	return level + 1
}
