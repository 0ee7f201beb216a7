package instance

import (
	"errors"
	"fmt"
	"io"

	"github.com/phylokit/cpphylo/phylo"
)

// Load reads one instance from r: an "n m" header followed by n*m cells
// in {0,1}, row-major. It returns (nil, false, nil) at a clean EOF before
// any header token is read, so a caller can loop Load over a stream
// holding multiple concatenated instances. A non-binary cell or a
// truncated body is ErrMalformedInput.
func Load(r io.Reader) (*phylo.State, bool, error) {
	var n, m int
	if _, err := fmt.Fscan(r, &n, &m); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, false, nil
		}

		return nil, false, fmt.Errorf("instance.Load: %w", ErrMalformedInput)
	}
	if n < 0 || m < 0 {
		return nil, false, fmt.Errorf("instance.Load: %w", ErrMalformedInput)
	}

	cells := make([]int, n*m)
	for i := range cells {
		var v int
		if _, err := fmt.Fscan(r, &v); err != nil {
			return nil, false, fmt.Errorf("instance.Load: %w", ErrMalformedInput)
		}
		cells[i] = v
	}

	mx, err := phylo.NewMatrix(n, m, cells)
	if err != nil {
		return nil, false, fmt.Errorf("instance.Load: %w", ErrMalformedInput)
	}

	st := phylo.New(n, m, mx)
	for s := 0; s < n; s++ {
		for c := 0; c < m; c++ {
			if mx.At(s, c) == 1 {
				if err := st.RB.AddEdge(s, st.CharVertex(c)); err != nil {
					return nil, false, fmt.Errorf("instance.Load: %w", err)
				}
			}
		}
	}

	cg, err := phylo.BuildConflictGraph(mx)
	if err != nil {
		return nil, false, fmt.Errorf("instance.Load: %w", err)
	}
	st.CG = cg

	return st, true, nil
}

// LoadAll repeatedly calls Load until a clean EOF, returning every
// instance found in r. Supplements the loader for a future batch driver;
// the batch driver itself is out of scope (§1).
func LoadAll(r io.Reader) ([]*phylo.State, error) {
	var states []*phylo.State
	for {
		st, ok, err := Load(r)
		if err != nil {
			return nil, err
		}
		if !ok {
			return states, nil
		}
		states = append(states, st)
	}
}
