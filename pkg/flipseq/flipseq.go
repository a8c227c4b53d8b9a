// Package flipseq walks induction move sequences while tracking the
// orientation of every letter. It is the flip-aware counterpart of the
// diagram path algebra: the same replay, but its substitution carries
// signs and its seed is allowed to have flipped letters.
package flipseq

import (
	"strings"

	rzerr "github.com/ietools/rauzy/pkg/errors"
	"github.com/ietools/rauzy/pkg/induction"
	"github.com/ietools/rauzy/pkg/intmat"
	"github.com/ietools/rauzy/pkg/perm"
	"github.com/ietools/rauzy/pkg/subst"
)

// Sequence is a replayed move sequence from a seed permutation. Unlike a
// diagram path it does not require a prebuilt diagram; each move is
// applied directly and must be defined at the permutation it reaches.
type Sequence struct {
	seed  *perm.Permutation
	kinds []induction.Kind
	steps []induction.Result
}

// New replays kinds from seed. It fails with DEGENERATE_INDUCTION as soon
// as a move is undefined.
func New(seed *perm.Permutation, kinds ...induction.Kind) (*Sequence, error) {
	if err := CheckFlippable(seed); err != nil {
		return nil, err
	}
	s := &Sequence{seed: seed.Labelled()}
	cur := s.seed
	for _, k := range kinds {
		res, err := induction.Apply(cur, k)
		if err != nil {
			return nil, err
		}
		s.kinds = append(s.kinds, k)
		s.steps = append(s.steps, res)
		cur = res.Perm
	}
	return s, nil
}

// FromTokens parses move tokens and replays them from seed.
func FromTokens(seed *perm.Permutation, tokens []string) (*Sequence, error) {
	kinds, err := induction.ParseTokens(tokens)
	if err != nil {
		return nil, err
	}
	return New(seed, kinds...)
}

// Seed returns the labelled permutation the sequence starts from.
func (s *Sequence) Seed() *perm.Permutation { return s.seed }

// End returns the permutation reached after the last move.
func (s *Sequence) End() *perm.Permutation {
	if len(s.steps) == 0 {
		return s.seed
	}
	return s.steps[len(s.steps)-1].Perm
}

// Len returns the number of moves.
func (s *Sequence) Len() int { return len(s.kinds) }

// Kinds returns the move sequence.
func (s *Sequence) Kinds() []induction.Kind {
	return append([]induction.Kind(nil), s.kinds...)
}

// IsLoop reports whether the sequence returns to its seed, flips
// included.
func (s *Sequence) IsLoop() bool { return s.End().Equal(s.seed) }

// Matrix returns the product of the elementary matrices along the
// sequence. Orientations do not enter the matrix.
func (s *Sequence) Matrix() intmat.Matrix {
	m := intmat.Identity(s.seed.Len())
	for _, step := range s.steps {
		m = m.Mul(step.Matrix)
	}
	return m
}

// Substitution returns the sign-aware substitution of the sequence. Its
// absolute incidence equals Matrix.
func (s *Sequence) Substitution() *subst.SignedSubstitution {
	a := s.seed.Alphabet()
	out := subst.SignedIdentity(a)
	cur := s.seed
	for _, step := range s.steps {
		if step.Loser != "" {
			out = out.Compose(subst.ElementarySigned(a, step.Winner, step.Loser,
				cur.Flipped(step.Winner), cur.Flipped(step.Loser), prepends(step.Kind)))
		}
		cur = step.Perm
	}
	return out
}

// String renders the sequence as its move tokens.
func (s *Sequence) String() string {
	tokens := make([]string, len(s.kinds))
	for i, k := range s.kinds {
		tokens[i] = k.String()
	}
	return strings.Join(tokens, " ")
}

func prepends(k induction.Kind) bool {
	return k == induction.RightTop || k == induction.LeftBottom
}

// CheckFlippable verifies that p can carry orientation data end-to-end.
// Permutations without flips trivially qualify; flipped linear
// involutions do not, since their signed images cannot be realized on a
// single orientable interval.
func CheckFlippable(p *perm.Permutation) error {
	if p.HasFlips() && p.Kind() == perm.KindLinearInvolution {
		return rzerr.New(rzerr.ErrCodeNotFlippable,
			"linear involutions do not carry flips")
	}
	return nil
}
