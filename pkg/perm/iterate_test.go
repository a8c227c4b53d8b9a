package perm

import (
	"strings"
	"testing"

	rzerr "github.com/ietools/rauzy/pkg/errors"
)

func drain(t *testing.T, it *Iterator) []*Permutation {
	t.Helper()
	var out []*Permutation
	for {
		p, ok := it.Next()
		if !ok {
			return out
		}
		out = append(out, p)
	}
}

func TestIterateReducedIrreducible(t *testing.T) {
	it, err := Iterate(3, IterateOptions{Reduced: true, Irreducible: true})
	if err != nil {
		t.Fatalf("Iterate() error: %v", err)
	}
	got := drain(t, it)

	want := []string{"b c a", "c a b", "c b a"}
	if len(got) != len(want) {
		t.Fatalf("yielded %d permutations, want %d", len(got), len(want))
	}
	for i, p := range got {
		if top := strings.Join(p.Top(), " "); top != "a b c" {
			t.Errorf("top[%d] = %q, want \"a b c\"", i, top)
		}
		if bottom := strings.Join(p.Bottom(), " "); bottom != want[i] {
			t.Errorf("bottom[%d] = %q, want %q", i, bottom, want[i])
		}
		if !p.Reduced() {
			t.Errorf("permutation %d is not reduced", i)
		}
	}
}

func TestIterateCounts(t *testing.T) {
	cases := []struct {
		n    int
		opts IterateOptions
		want int
	}{
		{2, IterateOptions{Reduced: true}, 2},
		{2, IterateOptions{Reduced: true, Irreducible: true}, 1},
		{2, IterateOptions{}, 4},
		{2, IterateOptions{Irreducible: true}, 2},
		{4, IterateOptions{Reduced: true, Irreducible: true}, 13},
	}
	for _, c := range cases {
		it, err := Iterate(c.n, c.opts)
		if err != nil {
			t.Fatalf("Iterate(%d, %+v) error: %v", c.n, c.opts, err)
		}
		if got := len(drain(t, it)); got != c.want {
			t.Errorf("Iterate(%d, %+v) yielded %d, want %d", c.n, c.opts, got, c.want)
		}
	}
}

func TestIterateCustomAlphabet(t *testing.T) {
	it, err := Iterate(2, IterateOptions{Alphabet: []string{"x", "y"}, Reduced: true})
	if err != nil {
		t.Fatalf("Iterate() error: %v", err)
	}
	got := drain(t, it)
	if len(got) != 2 {
		t.Fatalf("yielded %d permutations, want 2", len(got))
	}
	if top := strings.Join(got[0].Top(), " "); top != "x y" {
		t.Errorf("top = %q, want \"x y\"", top)
	}

	if _, err := Iterate(3, IterateOptions{Alphabet: []string{"x", "y"}}); !rzerr.Is(err, rzerr.ErrCodeInvalidInput) {
		t.Errorf("mismatched alphabet: error = %v, want INVALID_INPUT", err)
	}
	if _, err := Iterate(0, IterateOptions{}); !rzerr.Is(err, rzerr.ErrCodeInvalidInput) {
		t.Errorf("zero letters: error = %v, want INVALID_INPUT", err)
	}
}

func TestIsIrreducible(t *testing.T) {
	cases := []struct {
		top, bottom string
		want        bool
	}{
		{"a b c", "c b a", true},
		{"a b c", "a c b", false}, // splits after the first letter
		{"a b c d", "b a d c", false},
		{"a b c d", "d c b a", true},
	}
	for _, c := range cases {
		p, err := FromString(c.top, c.bottom, Options{})
		if err != nil {
			t.Fatalf("FromString(%q, %q) error: %v", c.top, c.bottom, err)
		}
		if got := p.IsIrreducible(); got != c.want {
			t.Errorf("IsIrreducible(%q / %q) = %v, want %v", c.top, c.bottom, got, c.want)
		}
	}
}
