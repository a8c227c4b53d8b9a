// Package eigen computes Perron-Frobenius data of non-negative integer
// matrices: the dominant eigenvalue and a positive eigenvector, via
// arbitrary-precision power iteration. Loop matrices of Rauzy diagrams
// are primitive, so the iteration converges geometrically.
package eigen

import (
	"math/big"

	rzerr "github.com/ietools/rauzy/pkg/errors"
	"github.com/ietools/rauzy/pkg/intmat"
)

// Prec is the mantissa precision of the computation, in bits.
const Prec = 256

const maxIterations = 10000

// Perron returns the dominant eigenvalue and the positive eigenvector of
// a non-negative matrix, normalized to sum 1. The matrix must have no
// negative entry and no zero row; convergence is declared when two
// successive iterates agree within 2^-200.
func Perron(m intmat.Matrix) (*big.Float, []*big.Float, error) {
	n := m.Dim()
	for i := 0; i < n; i++ {
		zero := true
		for j := 0; j < n; j++ {
			v := m.At(i, j)
			if v < 0 {
				return nil, nil, rzerr.New(rzerr.ErrCodeInvalidInput,
					"negative entry at [%d][%d]", i, j)
			}
			if v != 0 {
				zero = false
			}
		}
		if zero {
			return nil, nil, rzerr.New(rzerr.ErrCodeInvalidInput, "row %d is zero", i)
		}
	}

	tol := new(big.Float).SetPrec(Prec).SetMantExp(big.NewFloat(1), -200)

	v := make([]*big.Float, n)
	for i := range v {
		v[i] = newFloat().SetInt64(1)
	}
	normalize(v)

	lambda := newFloat()
	for it := 0; it < maxIterations; it++ {
		w := mulVec(m, v)
		sum := newFloat()
		for _, x := range w {
			sum.Add(sum, x)
		}
		// With v summing to one, the sum of M·v estimates the eigenvalue.
		next := sum
		normalize(w)

		delta := newFloat().Sub(next, lambda)
		converged := delta.Abs(delta).Cmp(tol) < 0
		lambda, v = next, w
		if converged && it > 0 {
			return lambda, v, nil
		}
	}
	return nil, nil, rzerr.New(rzerr.ErrCodeInternal, "power iteration did not converge")
}

func newFloat() *big.Float {
	return new(big.Float).SetPrec(Prec)
}

func mulVec(m intmat.Matrix, v []*big.Float) []*big.Float {
	n := m.Dim()
	out := make([]*big.Float, n)
	for i := 0; i < n; i++ {
		acc := newFloat()
		for j := 0; j < n; j++ {
			if c := m.At(i, j); c != 0 {
				term := newFloat().Mul(newFloat().SetInt64(c), v[j])
				acc.Add(acc, term)
			}
		}
		out[i] = acc
	}
	return out
}

func normalize(v []*big.Float) {
	sum := newFloat()
	for _, x := range v {
		sum.Add(sum, x)
	}
	for _, x := range v {
		x.Quo(x, sum)
	}
}
