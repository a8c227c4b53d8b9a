// Package intmat implements small dense square matrices over the
// non-negative integers.
//
// Rauzy induction only needs exact integer bookkeeping: elementary
// transition matrices (identity plus a single off-diagonal unit), ordered
// products along a path, and entrywise comparison against substitution
// incidence counts. Entries are int64; paths short enough to be
// interesting stay far below overflow.
package intmat

import (
	"fmt"
	"strings"
)

// Matrix is a square matrix with int64 entries, stored row-major.
// The zero value is not usable - use Identity, Elementary or Zero.
type Matrix struct {
	n    int
	data []int64
}

// Zero returns the n×n zero matrix.
func Zero(n int) Matrix {
	return Matrix{n: n, data: make([]int64, n*n)}
}

// Identity returns the n×n identity matrix.
func Identity(n int) Matrix {
	m := Zero(n)
	for i := 0; i < n; i++ {
		m.data[i*n+i] = 1
	}
	return m
}

// Elementary returns the identity matrix with one extra unit at (i, j).
// This is the transition matrix of a single induction step where letter i
// won against letter j.
func Elementary(n, i, j int) Matrix {
	m := Identity(n)
	m.data[i*n+j]++
	return m
}

// Dim returns the number of rows (= columns).
func (m Matrix) Dim() int { return m.n }

// At returns the entry at row i, column j.
func (m Matrix) At(i, j int) int64 { return m.data[i*m.n+j] }

// Set assigns the entry at row i, column j.
func (m Matrix) Set(i, j int, v int64) { m.data[i*m.n+j] = v }

// Add increments the entry at row i, column j by v.
func (m Matrix) Add(i, j int, v int64) { m.data[i*m.n+j] += v }

// Clone returns an independent copy of the matrix.
func (m Matrix) Clone() Matrix {
	out := Matrix{n: m.n, data: make([]int64, len(m.data))}
	copy(out.data, m.data)
	return out
}

// Mul returns the matrix product m·o.
// Panics if dimensions differ; callers always multiply matrices from the
// same diagram, which share the alphabet size.
func (m Matrix) Mul(o Matrix) Matrix {
	if m.n != o.n {
		panic(fmt.Sprintf("intmat: dimension mismatch %d vs %d", m.n, o.n))
	}
	n := m.n
	out := Zero(n)
	for i := 0; i < n; i++ {
		for k := 0; k < n; k++ {
			a := m.data[i*n+k]
			if a == 0 {
				continue
			}
			for j := 0; j < n; j++ {
				out.data[i*n+j] += a * o.data[k*n+j]
			}
		}
	}
	return out
}

// MulVec returns the matrix-vector product m·v.
func (m Matrix) MulVec(v []int64) []int64 {
	if len(v) != m.n {
		panic(fmt.Sprintf("intmat: vector length %d for dimension %d", len(v), m.n))
	}
	out := make([]int64, m.n)
	for i := 0; i < m.n; i++ {
		var s int64
		for j := 0; j < m.n; j++ {
			s += m.data[i*m.n+j] * v[j]
		}
		out[i] = s
	}
	return out
}

// Equal reports whether both matrices have the same dimension and entries.
func (m Matrix) Equal(o Matrix) bool {
	if m.n != o.n {
		return false
	}
	for i, v := range m.data {
		if o.data[i] != v {
			return false
		}
	}
	return true
}

// IsIdentity reports whether m is the identity matrix.
func (m Matrix) IsIdentity() bool {
	return m.Equal(Identity(m.n))
}

// Row returns a copy of row i.
func (m Matrix) Row(i int) []int64 {
	out := make([]int64, m.n)
	copy(out, m.data[i*m.n:(i+1)*m.n])
	return out
}

// String renders the matrix one row per line, entries space-separated.
func (m Matrix) String() string {
	var b strings.Builder
	for i := 0; i < m.n; i++ {
		for j := 0; j < m.n; j++ {
			if j > 0 {
				b.WriteByte(' ')
			}
			fmt.Fprintf(&b, "%d", m.data[i*m.n+j])
		}
		if i < m.n-1 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}
