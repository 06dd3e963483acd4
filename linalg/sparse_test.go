package linalg_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/edacore/pnrcore/linalg"
)

func TestSparseMatrix_AddToMirrorsSymmetrically(t *testing.T) {
	m, err := linalg.NewSparseMatrix(3)
	require.NoError(t, err)

	require.NoError(t, m.AddTo(0, 1, 5))
	v01, err := m.Get(0, 1)
	require.NoError(t, err)
	v10, err := m.Get(1, 0)
	require.NoError(t, err)
	require.Equal(t, 5.0, v01)
	require.Equal(t, 5.0, v10)
}

func TestSparseMatrix_AddToAccumulates(t *testing.T) {
	m, _ := linalg.NewSparseMatrix(2)
	require.NoError(t, m.AddTo(0, 0, 2))
	require.NoError(t, m.AddTo(0, 0, 3))
	v, _ := m.Get(0, 0)
	require.Equal(t, 5.0, v)
}

func TestSparseMatrix_OutOfRange(t *testing.T) {
	m, _ := linalg.NewSparseMatrix(2)
	require.ErrorIs(t, m.AddTo(5, 0, 1), linalg.ErrOutOfRange)
}

func TestSparseMatrix_MatVecIdentity(t *testing.T) {
	m, _ := linalg.NewSparseMatrix(3)
	for i := 0; i < 3; i++ {
		require.NoError(t, m.AddTo(i, i, 1))
	}
	m.Finalize()

	x := []float64{1, 2, 3}
	y, err := m.MatVec(x)
	require.NoError(t, err)
	require.Equal(t, x, y)
}

func TestSparseMatrix_MatVecRequiresFinalize(t *testing.T) {
	m, _ := linalg.NewSparseMatrix(2)
	_, err := m.MatVec([]float64{1, 2})
	require.ErrorIs(t, err, linalg.ErrNotFinalized)
}

func TestSparseMatrix_PinDiagonalDecouplesRowAndColumn(t *testing.T) {
	m, _ := linalg.NewSparseMatrix(3)
	require.NoError(t, m.AddTo(0, 1, 7))
	require.NoError(t, m.AddTo(1, 1, 4))

	require.NoError(t, m.PinDiagonal(0))

	v00, _ := m.Get(0, 0)
	v01, _ := m.Get(0, 1)
	v10, _ := m.Get(1, 0)
	require.Equal(t, 1.0, v00)
	require.Equal(t, 0.0, v01)
	require.Equal(t, 0.0, v10)

	v11, _ := m.Get(1, 1)
	require.Equal(t, 4.0, v11)
}
