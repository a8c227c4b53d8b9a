package perm

import (
	"strconv"

	rzerr "github.com/ietools/rauzy/pkg/errors"
)

// IterateOptions configure permutation enumeration.
type IterateOptions struct {
	// Reduced enumerates reduced classes: the top row is fixed in
	// alphabet order and only the bottom row varies. Labelled mode
	// enumerates every ordered row pair.
	Reduced bool
	// Irreducible skips permutations that split into two smaller
	// exchanges (see [Permutation.IsIrreducible]).
	Irreducible bool
	// Alphabet fixes the labels. When nil, n default labels are used:
	// single letters up to "z", positional numbers beyond.
	Alphabet []string
}

// Iterator enumerates the interval exchange permutations on n letters in
// lexicographic row order. Obtain one with Iterate and drain it with
// Next.
type Iterator struct {
	labels  []string
	opts    IterateOptions
	top     []int
	bottom  []int
	started bool
	done    bool
}

// Iterate returns an iterator over the permutations of n letters. In
// reduced mode it yields one representative per relabeling class (n!
// permutations, top row fixed); in labelled mode every ordered row pair
// (n!·n!). With Irreducible set, decomposable permutations are skipped.
func Iterate(n int, opts IterateOptions) (*Iterator, error) {
	if n < 1 {
		return nil, rzerr.New(rzerr.ErrCodeInvalidInput, "cannot enumerate permutations of %d letters", n)
	}
	labels := opts.Alphabet
	if labels == nil {
		labels = defaultLabels(n)
	}
	if len(labels) != n {
		return nil, rzerr.New(rzerr.ErrCodeInvalidInput,
			"alphabet has %d labels, want %d", len(labels), n)
	}
	if _, err := NewAlphabet(labels); err != nil {
		return nil, err
	}
	return &Iterator{
		labels: labels,
		opts:   opts,
		top:    identityIndices(n),
		bottom: identityIndices(n),
	}, nil
}

// Next returns the next permutation, or false when the enumeration is
// exhausted.
func (it *Iterator) Next() (*Permutation, bool) {
	for {
		if it.done {
			return nil, false
		}
		if it.started && !it.advance() {
			return nil, false
		}
		it.started = true

		p, err := New(it.row(it.top), it.row(it.bottom), Options{
			Reduced:  it.opts.Reduced,
			Alphabet: it.labels,
		})
		if err != nil {
			// Rows are permutations of a validated alphabet.
			panic(err)
		}
		if !it.opts.Irreducible || p.IsIrreducible() {
			return p, true
		}
	}
}

// advance steps the row counters, bottom fastest. Reduced mode keeps the
// top row pinned to the identity.
func (it *Iterator) advance() bool {
	if nextPermutation(it.bottom) {
		return true
	}
	copy(it.bottom, identityIndices(len(it.bottom)))
	if !it.opts.Reduced && nextPermutation(it.top) {
		return true
	}
	it.done = true
	return false
}

func (it *Iterator) row(idx []int) []string {
	out := make([]string, len(idx))
	for i, j := range idx {
		out[i] = it.labels[j]
	}
	return out
}

// IsIrreducible reports whether no strict prefix of the top row is a
// permutation of the equally long prefix of the bottom row. A reducible
// permutation splits at such a cut into two independent exchanges, so its
// Rauzy dynamics never mix the two blocks.
func (p *Permutation) IsIrreducible() bool {
	prefix := make(map[string]int, p.alphabet.Len())
	balance := 0
	n := len(p.top)
	if len(p.bottom) < n {
		n = len(p.bottom)
	}
	for k := 0; k < n-1; k++ {
		for _, l := range []string{p.top[k], p.bottom[k]} {
			prefix[l]++
			switch prefix[l] {
			case 1:
				balance++
			case 2:
				balance--
			}
		}
		if balance == 0 {
			return false
		}
	}
	return true
}

func identityIndices(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i
	}
	return out
}

// nextPermutation advances idx to its lexicographic successor, returning
// false from the last arrangement.
func nextPermutation(idx []int) bool {
	i := len(idx) - 2
	for i >= 0 && idx[i] >= idx[i+1] {
		i--
	}
	if i < 0 {
		return false
	}
	j := len(idx) - 1
	for idx[j] <= idx[i] {
		j--
	}
	idx[i], idx[j] = idx[j], idx[i]
	for l, r := i+1, len(idx)-1; l < r; l, r = l+1, r-1 {
		idx[l], idx[r] = idx[r], idx[l]
	}
	return true
}

func defaultLabels(n int) []string {
	out := make([]string, n)
	for i := range out {
		if i < 26 {
			out[i] = string(rune('a' + i))
		} else {
			out[i] = strconv.Itoa(i + 1)
		}
	}
	return out
}
