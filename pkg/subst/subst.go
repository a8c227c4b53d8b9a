// Package subst implements free-monoid substitutions over an interval
// alphabet: maps sending each letter to a finite word, composed and
// iterated to describe the symbolic dynamics of induction paths.
package subst

import (
	"strings"

	rzerr "github.com/ietools/rauzy/pkg/errors"
	"github.com/ietools/rauzy/pkg/intmat"
	"github.com/ietools/rauzy/pkg/perm"
)

// Substitution maps every letter of an alphabet to a non-empty word over
// the same alphabet. The zero value is not usable; build one with
// Identity or New.
type Substitution struct {
	alphabet *perm.Alphabet
	images   map[string][]string
}

// Identity returns the substitution fixing every letter.
func Identity(a *perm.Alphabet) *Substitution {
	s := &Substitution{
		alphabet: a,
		images:   make(map[string][]string, a.Len()),
	}
	for _, l := range a.Labels() {
		s.images[l] = []string{l}
	}
	return s
}

// New builds a substitution from explicit letter images. Every letter of
// the alphabet must receive a non-empty image over the alphabet.
func New(a *perm.Alphabet, images map[string][]string) (*Substitution, error) {
	s := &Substitution{
		alphabet: a,
		images:   make(map[string][]string, a.Len()),
	}
	for _, l := range a.Labels() {
		img, ok := images[l]
		if !ok || len(img) == 0 {
			return nil, rzerr.New(rzerr.ErrCodeInvalidInput, "letter %q has no image", l)
		}
		for _, x := range img {
			if !a.Contains(x) {
				return nil, rzerr.New(rzerr.ErrCodeInvalidInput,
					"image of %q uses foreign letter %q", l, x)
			}
		}
		s.images[l] = append([]string(nil), img...)
	}
	return s, nil
}

// Alphabet returns the underlying alphabet.
func (s *Substitution) Alphabet() *perm.Alphabet { return s.alphabet }

// Image returns a copy of the image word of a letter.
func (s *Substitution) Image(letter string) []string {
	return append([]string(nil), s.images[letter]...)
}

// Apply maps the substitution over a word letter by letter.
func (s *Substitution) Apply(word []string) []string {
	var out []string
	for _, l := range word {
		out = append(out, s.images[l]...)
	}
	return out
}

// Compose returns the substitution s∘t, applying t first: the image of a
// letter is s applied to t's image.
func (s *Substitution) Compose(t *Substitution) *Substitution {
	out := &Substitution{
		alphabet: s.alphabet,
		images:   make(map[string][]string, s.alphabet.Len()),
	}
	for _, l := range s.alphabet.Labels() {
		out.images[l] = s.Apply(t.images[l])
	}
	return out
}

// IncidenceMatrix returns the matrix counting, at [i][j], how often
// letter i occurs in the image of letter j.
func (s *Substitution) IncidenceMatrix() intmat.Matrix {
	n := s.alphabet.Len()
	m := intmat.Zero(n)
	for j := 0; j < n; j++ {
		for _, l := range s.images[s.alphabet.Label(j)] {
			i, _ := s.alphabet.Index(l)
			m.Set(i, j, m.At(i, j)+1)
		}
	}
	return m
}

// String renders the substitution one image per line, in alphabet order.
func (s *Substitution) String() string {
	var b strings.Builder
	for i, l := range s.alphabet.Labels() {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(l)
		b.WriteString("->")
		b.WriteString(strings.Join(s.images[l], ""))
	}
	return b.String()
}

// FixedPoint returns a lazy iterator over the infinite word obtained by
// iterating the substitution on seed. The image of seed must begin with
// seed itself, otherwise the iteration has no fixed point starting there.
func (s *Substitution) FixedPoint(seed string) (*FixedPointIterator, error) {
	if !s.alphabet.Contains(seed) {
		return nil, rzerr.New(rzerr.ErrCodeInvalidInput, "unknown seed letter %q", seed)
	}
	img := s.images[seed]
	if img[0] != seed {
		return nil, rzerr.New(rzerr.ErrCodeInvalidInput,
			"image of %q starts with %q, no fixed point there", seed, img[0])
	}
	if len(img) == 1 {
		return nil, rzerr.New(rzerr.ErrCodeInvalidInput,
			"letter %q is fixed, its orbit does not grow", seed)
	}
	return &FixedPointIterator{s: s, buf: append([]string(nil), img...)}, nil
}

// FixedPointIterator produces successive letters of a substitution fixed
// point. It keeps a buffer of the word built so far and expands it on
// demand, so only Next moves the cursor.
type FixedPointIterator struct {
	s   *Substitution
	buf []string
	pos int
}

// Next returns the next letter of the fixed point.
func (it *FixedPointIterator) Next() string {
	for it.pos >= len(it.buf) {
		it.buf = it.s.Apply(it.buf)
	}
	l := it.buf[it.pos]
	it.pos++
	return l
}

// Take returns the next n letters.
func (it *FixedPointIterator) Take(n int) []string {
	out := make([]string, n)
	for i := range out {
		out[i] = it.Next()
	}
	return out
}

// Reset rewinds the iterator to the start of the fixed point.
func (it *FixedPointIterator) Reset() { it.pos = 0 }
