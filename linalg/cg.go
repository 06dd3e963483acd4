package linalg

import "math"

// SolveStatus classifies how a CG solve terminated.
type SolveStatus int

const (
	// Success means the residual dropped below tolerance within the
	// iteration budget.
	Success SolveStatus = iota
	// NoConvergence means the iteration budget was exhausted without
	// reaching tolerance; Result.X still holds the last iterate.
	NoConvergence
	// NumericalIssue means the solve hit a non-finite value (NaN/Inf)
	// partway through, e.g. from a zero pivot in the preconditioner.
	NumericalIssue
	// InvalidInput means the inputs failed validation before any
	// iteration ran.
	InvalidInput
)

// SolveOptions configures a CG solve. The zero value is not valid;
// use DefaultSolveOptions(n) to get sane defaults for an n-dimensional
// system.
type SolveOptions struct {
	// Tolerance is the relative residual norm ‖b-Ax‖/‖b‖ at which the
	// solve is considered converged.
	Tolerance float64
	// MaxIterations bounds the number of CG iterations.
	MaxIterations int
}

// DefaultSolveOptions returns the package defaults: tolerance 1e-3 and
// a maximum iteration count equal to the system dimension, as used by
// the placer's solves.
func DefaultSolveOptions(n int) SolveOptions {
	return SolveOptions{Tolerance: 1e-3, MaxIterations: n}
}

// SolveResult reports the outcome of a CG solve.
type SolveResult struct {
	X          []float64
	Iterations int
	FinalError float64
	Status     SolveStatus
}

// Solve solves A*x = b via the Jacobi-preconditioned conjugate-gradient
// method. A must already be Finalize'd and symmetric positive
// semi-definite (the placer assembles matrices that are PSD by
// construction: every off-diagonal spring contribution
// is mirrored and every diagonal is the sum of its row's magnitudes).
//
// x0 is the initial guess; pass nil to start from the zero vector.
func Solve(a *SparseMatrix, b, x0 []float64, opts SolveOptions) (SolveResult, error) {
	n := a.Dim()
	if len(b) != n {
		return SolveResult{Status: InvalidInput}, linalgErrorf(opSolve, ErrDimensionMismatch)
	}
	if opts.Tolerance <= 0 || opts.MaxIterations <= 0 {
		return SolveResult{Status: InvalidInput}, linalgErrorf(opSolve, ErrInvalidDimensions)
	}

	diag, err := a.diagonal()
	if err != nil {
		return SolveResult{Status: InvalidInput}, err
	}
	invDiag := make([]float64, n)
	for i, d := range diag {
		if d == 0 {
			return SolveResult{Status: NumericalIssue}, linalgErrorf(opSolve, ErrZeroDiagonal)
		}
		invDiag[i] = 1 / d
	}

	x := make([]float64, n)
	if x0 != nil {
		copy(x, x0)
	}

	bNorm := norm2(b)
	if bNorm == 0 {
		bNorm = 1
	}

	ax, err := a.MatVec(x)
	if err != nil {
		return SolveResult{Status: InvalidInput}, err
	}
	r := subtract(b, ax)
	z := applyJacobi(invDiag, r)
	p := append([]float64(nil), z...)
	rzOld := dot(r, z)

	finalErr := norm2(r) / bNorm
	if finalErr <= opts.Tolerance {
		return SolveResult{X: x, Iterations: 0, FinalError: finalErr, Status: Success}, nil
	}

	for iter := 1; iter <= opts.MaxIterations; iter++ {
		ap, err := a.MatVec(p)
		if err != nil {
			return SolveResult{X: x, Status: InvalidInput}, err
		}
		pAp := dot(p, ap)
		if pAp == 0 || math.IsNaN(pAp) || math.IsInf(pAp, 0) {
			return SolveResult{X: x, Iterations: iter, FinalError: finalErr, Status: NumericalIssue}, nil
		}
		alpha := rzOld / pAp

		for i := range x {
			x[i] += alpha * p[i]
			r[i] -= alpha * ap[i]
		}

		finalErr = norm2(r) / bNorm
		if math.IsNaN(finalErr) || math.IsInf(finalErr, 0) {
			return SolveResult{X: x, Iterations: iter, FinalError: finalErr, Status: NumericalIssue}, nil
		}
		if finalErr <= opts.Tolerance {
			return SolveResult{X: x, Iterations: iter, FinalError: finalErr, Status: Success}, nil
		}

		z = applyJacobi(invDiag, r)
		rzNew := dot(r, z)
		beta := rzNew / rzOld
		for i := range p {
			p[i] = z[i] + beta*p[i]
		}
		rzOld = rzNew
	}

	return SolveResult{X: x, Iterations: opts.MaxIterations, FinalError: finalErr, Status: NoConvergence}, nil
}

func applyJacobi(invDiag, r []float64) []float64 {
	z := make([]float64, len(r))
	for i := range r {
		z[i] = invDiag[i] * r[i]
	}
	return z
}

func subtract(a, b []float64) []float64 {
	out := make([]float64, len(a))
	for i := range a {
		out[i] = a[i] - b[i]
	}
	return out
}

func dot(a, b []float64) float64 {
	var sum float64
	for i := range a {
		sum += a[i] * b[i]
	}
	return sum
}

func norm2(v []float64) float64 {
	return math.Sqrt(dot(v, v))
}
