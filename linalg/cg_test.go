package linalg_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/edacore/pnrcore/linalg"
)

func TestSolve_DiagonalSystemExact(t *testing.T) {
	m, err := linalg.NewSparseMatrix(2)
	require.NoError(t, err)
	require.NoError(t, m.AddTo(0, 0, 2))
	require.NoError(t, m.AddTo(1, 1, 4))
	m.Finalize()

	b := []float64{4, 8}
	res, err := linalg.Solve(m, b, nil, linalg.DefaultSolveOptions(2))
	require.NoError(t, err)
	require.Equal(t, linalg.Success, res.Status)
	require.InDelta(t, 2.0, res.X[0], 1e-6)
	require.InDelta(t, 2.0, res.X[1], 1e-6)
}

func TestSolve_SpringChainConverges(t *testing.T) {
	// Node 1 hangs between fixed node 0 (at x=0) and fixed node 2 (at
	// x=10) via unit springs. A fixed neighbor's contribution moves from
	// the matrix into the RHS, so only row 1's diagonal (k+k=2) is
	// assembled; rows 0 and 2 are pinned to their fixed positions.
	m, err := linalg.NewSparseMatrix(3)
	require.NoError(t, err)
	require.NoError(t, m.AddTo(1, 1, 2))
	require.NoError(t, m.PinDiagonal(0))
	require.NoError(t, m.PinDiagonal(2))
	m.Finalize()

	b := []float64{0, 10, 10}
	res, err := linalg.Solve(m, b, nil, linalg.DefaultSolveOptions(3))
	require.NoError(t, err)
	require.Equal(t, linalg.Success, res.Status)
	require.InDelta(t, 0.0, res.X[0], 1e-3)
	require.InDelta(t, 5.0, res.X[1], 1e-3)
	require.InDelta(t, 10.0, res.X[2], 1e-3)
}

func TestSolve_DimensionMismatch(t *testing.T) {
	m, _ := linalg.NewSparseMatrix(2)
	require.NoError(t, m.AddTo(0, 0, 1))
	require.NoError(t, m.AddTo(1, 1, 1))
	m.Finalize()

	_, err := linalg.Solve(m, []float64{1}, nil, linalg.DefaultSolveOptions(2))
	require.ErrorIs(t, err, linalg.ErrDimensionMismatch)
}

func TestSolve_ZeroDiagonalIsNumericalIssue(t *testing.T) {
	m, _ := linalg.NewSparseMatrix(2)
	require.NoError(t, m.AddTo(0, 1, 1))
	m.Finalize()

	res, err := linalg.Solve(m, []float64{1, 1}, nil, linalg.DefaultSolveOptions(2))
	require.Error(t, err)
	require.ErrorIs(t, err, linalg.ErrZeroDiagonal)
	require.Equal(t, linalg.NumericalIssue, res.Status)
}
