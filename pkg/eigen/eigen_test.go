package eigen

import (
	"math/big"
	"strings"
	"testing"

	"github.com/ietools/rauzy/pkg/diagram"
	rzerr "github.com/ietools/rauzy/pkg/errors"
	"github.com/ietools/rauzy/pkg/intmat"
	"github.com/ietools/rauzy/pkg/perm"
)

func TestPerronGoldenRatio(t *testing.T) {
	m := intmat.Zero(2)
	m.Set(0, 0, 1)
	m.Set(0, 1, 1)
	m.Set(1, 0, 1)

	lambda, v, err := Perron(m)
	if err != nil {
		t.Fatalf("Perron() error: %v", err)
	}
	phi, _ := lambda.Float64()
	if phi < 1.6180339887 || phi > 1.6180339888 {
		t.Errorf("eigenvalue = %v, want the golden ratio", phi)
	}
	// Eigenvector components relate by the eigenvalue.
	ratio := new(big.Float).Quo(v[0], v[1])
	r, _ := ratio.Float64()
	if r < 1.6180339887 || r > 1.6180339888 {
		t.Errorf("v[0]/v[1] = %v, want the golden ratio", r)
	}
}

func TestPerronRejectsBadMatrices(t *testing.T) {
	m := intmat.Zero(2)
	m.Set(0, 0, 1)
	if _, _, err := Perron(m); !rzerr.Is(err, rzerr.ErrCodeInvalidInput) {
		t.Errorf("zero row: error = %v, want INVALID_INPUT", err)
	}
}

// The matrix of a full loop acts on length vectors; lengths proportional
// to its Perron eigenvector give an interval exchange that the loop
// renormalizes to itself.
func TestPerronOfFullLoop(t *testing.T) {
	seed, err := perm.FromString("a b c d", "d c b a", perm.Options{})
	if err != nil {
		t.Fatalf("FromString() error: %v", err)
	}
	d, err := diagram.Build(seed, diagram.Options{})
	if err != nil {
		t.Fatalf("Build() error: %v", err)
	}
	p, err := d.PathFromTokens(0, strings.Fields("t t b t b b t b"))
	if err != nil {
		t.Fatalf("PathFromTokens() error: %v", err)
	}

	lambda, v, err := Perron(p.Matrix())
	if err != nil {
		t.Fatalf("Perron() error: %v", err)
	}
	got, _ := lambda.Float64()
	if got < 4.39025688 || got > 4.39025689 {
		t.Errorf("eigenvalue = %v, want 4.3902568845...", got)
	}

	// M·v = λ·v componentwise within the iteration tolerance.
	m := p.Matrix()
	for i := 0; i < m.Dim(); i++ {
		acc := new(big.Float).SetPrec(Prec)
		for j := 0; j < m.Dim(); j++ {
			term := new(big.Float).SetPrec(Prec).SetInt64(m.At(i, j))
			acc.Add(acc, term.Mul(term, v[j]))
		}
		want := new(big.Float).SetPrec(Prec).Mul(lambda, v[i])
		diff := new(big.Float).Sub(acc, want)
		bound := new(big.Float).SetMantExp(big.NewFloat(1), -100)
		if diff.Abs(diff).Cmp(bound) > 0 {
			t.Errorf("component %d: |Mv - λv| too large", i)
		}
	}
}
