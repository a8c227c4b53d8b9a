package perm

import (
	"testing"

	rzerr "github.com/ietools/rauzy/pkg/errors"
)

func TestNewIETKind(t *testing.T) {
	p, err := FromString("a b c", "c b a", Options{})
	if err != nil {
		t.Fatalf("FromString() error: %v", err)
	}
	if p.Kind() != KindIET {
		t.Errorf("Kind() = %v, want KindIET", p.Kind())
	}
	if p.Len() != 3 {
		t.Errorf("Len() = %d, want 3", p.Len())
	}
	if got := p.String(); got != "a b c\nc b a" {
		t.Errorf("String() = %q", got)
	}
}

func TestNewLinearInvolutionKind(t *testing.T) {
	p, err := FromString("a b b", "c c a", Options{})
	if err != nil {
		t.Fatalf("FromString() error: %v", err)
	}
	if p.Kind() != KindLinearInvolution {
		t.Errorf("Kind() = %v, want KindLinearInvolution", p.Kind())
	}
	if got := p.Letters(); len(got) != 3 || got[0] != "a" || got[1] != "b" || got[2] != "c" {
		t.Errorf("Letters() = %v", got)
	}
}

func TestNewRejectsBadMultiplicity(t *testing.T) {
	_, err := FromString("a a a", "b b a", Options{})
	if !rzerr.Is(err, rzerr.ErrCodeLetterMultiplicity) {
		t.Errorf("error = %v, want LETTER_MULTIPLICITY", err)
	}

	_, err = FromString("a b", "b c", Options{})
	if !rzerr.Is(err, rzerr.ErrCodeLetterMultiplicity) {
		t.Errorf("error = %v, want LETTER_MULTIPLICITY", err)
	}
}

func TestNewRejectsUnrealizableInvolution(t *testing.T) {
	// Top is a single once-occurring letter, every imbalance is one-signed:
	// no positive length vector can equalize the rows.
	_, err := FromString("a", "b b a c c", Options{})
	if !rzerr.Is(err, rzerr.ErrCodeInvalidInput) {
		t.Errorf("error = %v, want INVALID_INPUT", err)
	}
}

func TestNewRejectsUnknownFlipLetter(t *testing.T) {
	_, err := FromString("a b", "b a", Options{Flips: []string{"z"}})
	if !rzerr.Is(err, rzerr.ErrCodeInvalidFlipLetter) {
		t.Errorf("error = %v, want INVALID_FLIP_LETTER", err)
	}
}

func TestFlipsCarriedAndPrinted(t *testing.T) {
	p, err := FromString("a b c", "c b a", Options{Flips: []string{"a", "c"}})
	if err != nil {
		t.Fatalf("FromString() error: %v", err)
	}
	if !p.Flipped("a") || p.Flipped("b") || !p.Flipped("c") {
		t.Errorf("Flips() = %v", p.Flips())
	}
	if got := p.String(); got != "-a b -c\n-c b -a" {
		t.Errorf("String() = %q", got)
	}
}

func TestRoundTripRows(t *testing.T) {
	p, err := FromString("a b b", "c c a", Options{})
	if err != nil {
		t.Fatalf("FromString() error: %v", err)
	}
	q, err := New(p.Top(), p.Bottom(), Options{Alphabet: p.Letters()})
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}
	if !p.Equal(q) {
		t.Error("round-tripped permutation differs from original")
	}
}

func TestReducedEqualityIgnoresLabels(t *testing.T) {
	p, err := FromString("a b c", "c b a", Options{Reduced: true})
	if err != nil {
		t.Fatalf("FromString() error: %v", err)
	}
	q, err := FromString("x y z", "z y x", Options{Reduced: true})
	if err != nil {
		t.Fatalf("FromString() error: %v", err)
	}
	if !p.Equal(q) {
		t.Error("reduced permutations with matching pattern compare unequal")
	}

	r, err := FromString("a b c", "b c a", Options{Reduced: true})
	if err != nil {
		t.Fatalf("FromString() error: %v", err)
	}
	if p.Equal(r) {
		t.Error("distinct patterns compare equal")
	}
}

func TestLabelledEqualityIsLiteral(t *testing.T) {
	p, _ := FromString("a b", "b a", Options{})
	q, _ := FromString("b a", "a b", Options{})
	if p.Equal(q) {
		t.Error("labelled permutations with different rows compare equal")
	}
	if p.Equal(p.Reduce()) {
		t.Error("labelled and reduced permutations compare equal")
	}
}

func TestReduceCanonicalizes(t *testing.T) {
	p, err := New([]string{"b", "a"}, []string{"a", "b"}, Options{Alphabet: []string{"a", "b"}})
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}
	r := p.Reduce()
	if got := r.String(); got != "a b\nb a" {
		t.Errorf("Reduce().String() = %q, want relabeled rows", got)
	}
	if !r.Reduced() {
		t.Error("Reduce() did not set reduced mode")
	}
	// Reducing the canonical representative is the identity.
	if !r.Reduce().Equal(r) {
		t.Error("Reduce() is not idempotent")
	}
}

func TestKeyDistinguishesFlips(t *testing.T) {
	p, _ := FromString("a b", "b a", Options{})
	q, _ := FromString("a b", "b a", Options{Flips: []string{"a"}})
	if p.Key() == q.Key() {
		t.Error("flip state not part of the key")
	}
}

func TestRowReturnsCopy(t *testing.T) {
	p, _ := FromString("a b", "b a", Options{})
	row := p.Top()
	row[0] = "mutated"
	if p.Top()[0] != "a" {
		t.Error("Row() leaked internal storage")
	}
}
