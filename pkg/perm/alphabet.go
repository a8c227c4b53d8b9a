package perm

import (
	rzerr "github.com/ietools/rauzy/pkg/errors"
)

// Alphabet is an ordered set of distinct interval labels with a stable
// label↔position index. Alphabets are immutable once created.
type Alphabet struct {
	labels []string
	index  map[string]int
}

// NewAlphabet creates an alphabet from an ordered label list.
// Labels must be non-empty and pairwise distinct.
func NewAlphabet(labels []string) (*Alphabet, error) {
	if len(labels) == 0 {
		return nil, rzerr.New(rzerr.ErrCodeInvalidInput, "alphabet must not be empty")
	}
	a := &Alphabet{
		labels: make([]string, len(labels)),
		index:  make(map[string]int, len(labels)),
	}
	for i, l := range labels {
		if l == "" {
			return nil, rzerr.New(rzerr.ErrCodeInvalidInput, "empty label at position %d", i)
		}
		if _, dup := a.index[l]; dup {
			return nil, rzerr.New(rzerr.ErrCodeInvalidInput, "duplicate label %q in alphabet", l)
		}
		a.labels[i] = l
		a.index[l] = i
	}
	return a, nil
}

// Len returns the number of labels.
func (a *Alphabet) Len() int { return len(a.labels) }

// Index returns the position of a label and whether it exists.
func (a *Alphabet) Index(label string) (int, bool) {
	i, ok := a.index[label]
	return i, ok
}

// Label returns the label at position i.
func (a *Alphabet) Label(i int) string { return a.labels[i] }

// Labels returns a copy of the ordered label list.
func (a *Alphabet) Labels() []string {
	out := make([]string, len(a.labels))
	copy(out, a.labels)
	return out
}

// Contains reports whether the label belongs to the alphabet.
func (a *Alphabet) Contains(label string) bool {
	_, ok := a.index[label]
	return ok
}

// Equal reports whether both alphabets carry the same labels in the same order.
func (a *Alphabet) Equal(b *Alphabet) bool {
	if len(a.labels) != len(b.labels) {
		return false
	}
	for i, l := range a.labels {
		if b.labels[i] != l {
			return false
		}
	}
	return true
}
