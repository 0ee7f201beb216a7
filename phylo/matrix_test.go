package phylo_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/phylokit/cpphylo/phylo"
)

func TestNewMatrix_RejectsNonBinaryCell(t *testing.T) {
	_, err := phylo.NewMatrix(1, 2, []int{0, 2})
	require.ErrorIs(t, err, phylo.ErrNonBinaryCell)
}

func TestMatrix_At(t *testing.T) {
	mx, err := phylo.NewMatrix(2, 2, []int{1, 0, 0, 1})
	require.NoError(t, err)
	require.Equal(t, 1, mx.At(0, 0))
	require.Equal(t, 0, mx.At(0, 1))
	require.Equal(t, 1, mx.At(1, 1))
}
