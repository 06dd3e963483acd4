package linalg

import "sort"

const (
	opNew      = "NewSparseMatrix"
	opAddTo    = "AddTo"
	opFinalize = "Finalize"
	opSolve    = "Solve"
	opMatVec   = "MatVec"
)

// SparseMatrix is a square, symmetric, row-major sparse matrix built by
// repeated coefficient accumulation (coeffRef semantics: AddTo adds into
// an entry rather than overwriting it) and finalized once into CSR
// (compressed sparse row) form before it can be solved.
//
// Only the upper-triangle-plus-diagonal entries need to be added; AddTo
// mirrors (i,j) into (j,i) automatically for i != j, since every matrix
// assembled with this package (the stiffness matrices for the placer's
// B2B springs) is symmetric by construction.
type SparseMatrix struct {
	n      int
	rows   []map[int]float64
	csr    csr
	finalized bool
}

// csr is the compressed-sparse-row form used by MatVec and the CG
// solver's inner loop.
type csr struct {
	rowStart []int
	colIdx   []int
	values   []float64
}

// NewSparseMatrix returns an n×n zero matrix ready for AddTo calls.
func NewSparseMatrix(n int) (*SparseMatrix, error) {
	if n <= 0 {
		return nil, linalgErrorf(opNew, ErrInvalidDimensions)
	}
	rows := make([]map[int]float64, n)
	for i := range rows {
		rows[i] = make(map[int]float64)
	}
	return &SparseMatrix{n: n, rows: rows}, nil
}

// Dim returns the matrix dimension.
func (m *SparseMatrix) Dim() int { return m.n }

// AddTo accumulates delta into entry (i, j), and into (j, i) when i != j,
// preserving symmetry. Calling AddTo invalidates any prior Finalize.
func (m *SparseMatrix) AddTo(i, j int, delta float64) error {
	if i < 0 || i >= m.n || j < 0 || j >= m.n {
		return linalgErrorf(opAddTo, ErrOutOfRange)
	}
	m.rows[i][j] += delta
	if i != j {
		m.rows[j][i] += delta
	}
	m.finalized = false
	return nil
}

// Get returns the current value of entry (i, j), 0 if absent.
func (m *SparseMatrix) Get(i, j int) (float64, error) {
	if i < 0 || i >= m.n || j < 0 || j >= m.n {
		return 0, linalgErrorf(opAddTo, ErrOutOfRange)
	}
	return m.rows[i][j], nil
}

// Finalize compacts the accumulated coefficients into CSR form. Columns
// within each row are sorted ascending, so MatVec's loop order (and
// hence CG's floating-point accumulation order) is deterministic across
// calls with identical coefficients, regardless of map iteration order.
func (m *SparseMatrix) Finalize() {
	rowStart := make([]int, m.n+1)
	var colIdx []int
	var values []float64

	for i := 0; i < m.n; i++ {
		cols := make([]int, 0, len(m.rows[i]))
		for j := range m.rows[i] {
			cols = append(cols, j)
		}
		sort.Ints(cols)
		for _, j := range cols {
			colIdx = append(colIdx, j)
			values = append(values, m.rows[i][j])
		}
		rowStart[i+1] = len(colIdx)
	}

	m.csr = csr{rowStart: rowStart, colIdx: colIdx, values: values}
	m.finalized = true
}

// MatVec computes y = A*x. Requires Finalize to have been called since
// the last AddTo.
func (m *SparseMatrix) MatVec(x []float64) ([]float64, error) {
	if !m.finalized {
		return nil, linalgErrorf(opMatVec, ErrNotFinalized)
	}
	if len(x) != m.n {
		return nil, linalgErrorf(opMatVec, ErrDimensionMismatch)
	}
	y := make([]float64, m.n)
	for i := 0; i < m.n; i++ {
		var sum float64
		for k := m.csr.rowStart[i]; k < m.csr.rowStart[i+1]; k++ {
			sum += m.csr.values[k] * x[m.csr.colIdx[k]]
		}
		y[i] = sum
	}
	return y, nil
}

// diagonal returns the matrix diagonal, used by the Jacobi
// preconditioner. Requires Finalize.
func (m *SparseMatrix) diagonal() ([]float64, error) {
	if !m.finalized {
		return nil, linalgErrorf(opSolve, ErrNotFinalized)
	}
	d := make([]float64, m.n)
	for i := 0; i < m.n; i++ {
		for k := m.csr.rowStart[i]; k < m.csr.rowStart[i+1]; k++ {
			if m.csr.colIdx[k] == i {
				d[i] = m.csr.values[k]
				break
			}
		}
	}
	return d, nil
}

// PinDiagonal sets entry (i, i) to 1 and zeroes every other entry in row
// i and column i, the standard way to fix a degree of freedom in a
// spring system (the placer uses this for fully-fixed nodes: their
// position is an input, not an unknown, so their row/column must not
// couple to the rest of the system). Call before Finalize.
func (m *SparseMatrix) PinDiagonal(i int) error {
	if i < 0 || i >= m.n {
		return linalgErrorf(opAddTo, ErrOutOfRange)
	}
	for j := range m.rows[i] {
		if j != i {
			delete(m.rows[j], i)
		}
	}
	m.rows[i] = map[int]float64{i: 1}
	m.finalized = false
	return nil
}
