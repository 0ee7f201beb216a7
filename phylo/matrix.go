package phylo

import "errors"

// ErrNonBinaryCell is returned by NewMatrix when a cell is not 0 or 1.
var ErrNonBinaryCell = errors.New("phylo: matrix cell is not 0 or 1")

// Matrix is the original n x m binary species/character input. It is
// immutable after construction and shared by pointer across every State
// cloned from the instance that owns it (§3.4: "matrix is the only field
// deliberately shared by reference across State clones").
type Matrix struct {
	n, m int
	bits []byte // row-major, one byte per cell, values 0 or 1
}

// NewMatrix builds a Matrix from row-major cell values. It returns
// ErrNonBinaryCell if any value is outside {0,1}, or a length mismatch
// error if len(cells) != n*m.
func NewMatrix(n, m int, cells []int) (*Matrix, error) {
	if len(cells) != n*m {
		return nil, errors.New("phylo: matrix cell count does not match n*m")
	}
	bits := make([]byte, n*m)
	for i, v := range cells {
		if v != 0 && v != 1 {
			return nil, ErrNonBinaryCell
		}
		bits[i] = byte(v)
	}

	return &Matrix{n: n, m: m, bits: bits}, nil
}

// N returns the original species count.
func (mx *Matrix) N() int { return mx.n }

// M returns the original character count.
func (mx *Matrix) M() int { return mx.m }

// At returns the cell value (0 or 1) for species s, character c.
func (mx *Matrix) At(s, c int) int {
	return int(mx.bits[s*mx.m+c])
}
