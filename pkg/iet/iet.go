// Package iet implements concrete interval exchange transformations: a
// permutation equipped with a positive length for every letter. Lengths
// are exact rationals, so composition, inversion and induction never
// accumulate rounding error.
package iet

import (
	"math/big"
	"sort"
	"strings"

	rzerr "github.com/ietools/rauzy/pkg/errors"
	"github.com/ietools/rauzy/pkg/induction"
	"github.com/ietools/rauzy/pkg/perm"
)

// IET is an interval exchange transformation: the letters of the top row
// tile [0, total) in order, and the map translates each tile to its
// position in the bottom row. Immutable value type; every operation
// returns a new instance.
type IET struct {
	p       *perm.Permutation
	lengths map[string]*big.Rat
}

// New builds an IET from a permutation and exact lengths. The permutation
// must be of IET kind and carry no flips; every letter needs a positive
// length.
func New(p *perm.Permutation, lengths map[string]*big.Rat) (*IET, error) {
	if p.Kind() != perm.KindIET {
		return nil, rzerr.New(rzerr.ErrCodeNotFlippable,
			"numeric realization needs an interval exchange permutation")
	}
	if p.HasFlips() {
		return nil, rzerr.New(rzerr.ErrCodeNotFlippable,
			"flipped permutations have no orientable numeric realization")
	}
	if len(lengths) != p.Len() {
		return nil, rzerr.New(rzerr.ErrCodeLengthMismatch,
			"%d lengths for %d letters", len(lengths), p.Len())
	}
	t := &IET{p: p.Labelled(), lengths: make(map[string]*big.Rat, p.Len())}
	for _, l := range p.Letters() {
		v, ok := lengths[l]
		if !ok {
			return nil, rzerr.New(rzerr.ErrCodeLengthMismatch, "no length for letter %q", l)
		}
		if v.Sign() <= 0 {
			return nil, rzerr.New(rzerr.ErrCodeNonPositiveLength,
				"length of %q is %s", l, v.RatString())
		}
		t.lengths[l] = new(big.Rat).Set(v)
	}
	return t, nil
}

// FromStrings builds an IET parsing each length as an exact rational.
// Both fraction ("1/3") and decimal ("0.25") forms are accepted.
func FromStrings(p *perm.Permutation, lengths map[string]string) (*IET, error) {
	parsed := make(map[string]*big.Rat, len(lengths))
	for l, s := range lengths {
		v, ok := new(big.Rat).SetString(s)
		if !ok {
			return nil, rzerr.New(rzerr.ErrCodeInvalidLengthValue,
				"cannot parse %q as a rational length for %q", s, l)
		}
		parsed[l] = v
	}
	return New(p, parsed)
}

// Perm returns the underlying permutation.
func (t *IET) Perm() *perm.Permutation { return t.p }

// Length returns the length of a letter's interval.
func (t *IET) Length(letter string) *big.Rat {
	return new(big.Rat).Set(t.lengths[letter])
}

// Total returns the length of the supporting interval.
func (t *IET) Total() *big.Rat {
	sum := new(big.Rat)
	for _, v := range t.lengths {
		sum.Add(sum, v)
	}
	return sum
}

// start returns the left endpoint of a letter's tile in the given row.
func (t *IET) start(row []string, letter string) *big.Rat {
	s := new(big.Rat)
	for _, l := range row {
		if l == letter {
			return s
		}
		s.Add(s, t.lengths[l])
	}
	return s
}

// translation returns the shift applied to the letter's tile.
func (t *IET) translation(letter string) *big.Rat {
	out := t.start(t.p.Bottom(), letter)
	return out.Sub(out, t.start(t.p.Top(), letter))
}

// InWhichInterval returns the letter whose tile contains x. Tiles are
// half-open [start, end), so a breakpoint belongs to the tile beginning
// there. Fails when x lies outside [0, total).
func (t *IET) InWhichInterval(x *big.Rat) (string, error) {
	if x.Sign() < 0 || x.Cmp(t.Total()) >= 0 {
		return "", rzerr.New(rzerr.ErrCodeInvalidInput,
			"%s outside the supporting interval", x.RatString())
	}
	end := new(big.Rat)
	for _, l := range t.p.Top() {
		end.Add(end, t.lengths[l])
		if x.Cmp(end) < 0 {
			return l, nil
		}
	}
	// Unreachable: x < total and the tiles cover [0, total).
	top := t.p.Top()
	return top[len(top)-1], nil
}

// Apply maps a point through the exchange.
func (t *IET) Apply(x *big.Rat) (*big.Rat, error) {
	l, err := t.InWhichInterval(x)
	if err != nil {
		return nil, err
	}
	return new(big.Rat).Add(x, t.translation(l)), nil
}

// Coding returns the symbolic orbit of x: the letters of the tiles
// visited by the first n iterates.
func (t *IET) Coding(x *big.Rat, n int) ([]string, error) {
	word := make([]string, 0, n)
	cur := new(big.Rat).Set(x)
	for i := 0; i < n; i++ {
		l, err := t.InWhichInterval(cur)
		if err != nil {
			return nil, err
		}
		word = append(word, l)
		cur.Add(cur, t.translation(l))
	}
	return word, nil
}

// Inverse swaps the roles of the two rows, reversing the exchange.
func (t *IET) Inverse() *IET {
	q, err := perm.New(t.p.Bottom(), t.p.Top(), perm.Options{Alphabet: t.p.Letters()})
	if err != nil {
		// Rows of a valid IET stay valid when swapped.
		panic(err)
	}
	out := &IET{p: q, lengths: make(map[string]*big.Rat, len(t.lengths))}
	for l, v := range t.lengths {
		out.lengths[l] = new(big.Rat).Set(v)
	}
	return out
}

// IsIdentity reports whether the exchange fixes every point, i.e. both
// rows list the letters in the same order.
func (t *IET) IsIdentity() bool {
	top, bottom := t.p.Top(), t.p.Bottom()
	for i := range top {
		if top[i] != bottom[i] {
			return false
		}
	}
	return true
}

// Normalize rescales the lengths so they sum to target.
func (t *IET) Normalize(target *big.Rat) (*IET, error) {
	if target.Sign() <= 0 {
		return nil, rzerr.New(rzerr.ErrCodeNonPositiveLength,
			"target total %s is not positive", target.RatString())
	}
	scale := new(big.Rat).Quo(target, t.Total())
	out := &IET{p: t.p, lengths: make(map[string]*big.Rat, len(t.lengths))}
	for l, v := range t.lengths {
		out.lengths[l] = new(big.Rat).Mul(v, scale)
	}
	return out, nil
}

// RauzyMove applies up to iterations steps of right Rauzy induction. The
// row whose last tile is longer wins each step; its letter's length
// shrinks by the loser's length while the permutation moves as in the
// combinatorial engine. The returned count is the number of completed
// steps; on degeneracy (equal last lengths) the partial result is
// returned together with DEGENERATE_INDUCTION.
func (t *IET) RauzyMove(iterations int) (*IET, int, error) {
	cur := t
	for i := 0; i < iterations; i++ {
		next, err := cur.rauzyStep()
		if err != nil {
			return cur, i, err
		}
		cur = next
	}
	return cur, iterations, nil
}

func (t *IET) rauzyStep() (*IET, error) {
	top, bottom := t.p.Top(), t.p.Bottom()
	lt := t.lengths[top[len(top)-1]]
	lb := t.lengths[bottom[len(bottom)-1]]

	var kind induction.Kind
	switch lt.Cmp(lb) {
	case 1:
		kind = induction.RightTop
	case -1:
		kind = induction.RightBottom
	default:
		return nil, rzerr.New(rzerr.ErrCodeDegenerateInduction,
			"last intervals of both rows have equal length %s", lt.RatString())
	}

	res, err := induction.Apply(t.p, kind)
	if err != nil {
		return nil, err
	}

	out := &IET{p: res.Perm, lengths: make(map[string]*big.Rat, len(t.lengths))}
	for l, v := range t.lengths {
		out.lengths[l] = new(big.Rat).Set(v)
	}
	w := out.lengths[res.Winner]
	w.Sub(w, out.lengths[res.Loser])
	return out, nil
}

// Compose returns the functional composition s∘t, applying t first and
// s second. Both maps must act on intervals of the same total length.
// The result acts on the common refinement of t's tiles and the
// t-preimages of s's tiles; its letters are pairs "a.b" naming the
// t-tile and the s-tile a point passes through.
func (t *IET) Compose(s *IET) (*IET, error) {
	if t.Total().Cmp(s.Total()) != 0 {
		return nil, rzerr.New(rzerr.ErrCodeLengthMismatch,
			"total lengths %s and %s differ", t.Total().RatString(), s.Total().RatString())
	}

	type piece struct {
		label                   string
		start, length, imgStart *big.Rat
	}
	var pieces []piece

	for _, a := range t.p.Top() {
		aStart := t.start(t.p.Top(), a)
		aEnd := new(big.Rat).Add(aStart, t.lengths[a])
		tau := t.translation(a)
		for _, b := range s.p.Top() {
			bStart := s.start(s.p.Top(), b)
			bEnd := new(big.Rat).Add(bStart, s.lengths[b])
			// Overlap of the a-tile's image with the b-tile.
			lo := ratMax(new(big.Rat).Add(aStart, tau), bStart)
			hi := ratMin(new(big.Rat).Add(aEnd, tau), bEnd)
			if lo.Cmp(hi) >= 0 {
				continue
			}
			length := new(big.Rat).Sub(hi, lo)
			domStart := new(big.Rat).Sub(lo, tau)
			imgStart := new(big.Rat).Add(lo, s.translation(b))
			pieces = append(pieces, piece{
				label:    a + "." + b,
				start:    domStart,
				length:   length,
				imgStart: imgStart,
			})
		}
	}

	byStart := make([]piece, len(pieces))
	copy(byStart, pieces)
	sort.Slice(byStart, func(i, j int) bool { return byStart[i].start.Cmp(byStart[j].start) < 0 })
	byImage := make([]piece, len(pieces))
	copy(byImage, pieces)
	sort.Slice(byImage, func(i, j int) bool { return byImage[i].imgStart.Cmp(byImage[j].imgStart) < 0 })

	topRow := make([]string, len(byStart))
	lengths := make(map[string]*big.Rat, len(byStart))
	for i, p := range byStart {
		topRow[i] = p.label
		lengths[p.label] = p.length
	}
	bottomRow := make([]string, len(byImage))
	for i, p := range byImage {
		bottomRow[i] = p.label
	}

	q, err := perm.New(topRow, bottomRow, perm.Options{Alphabet: topRow})
	if err != nil {
		return nil, err
	}
	return New(q, lengths)
}

// String renders the permutation followed by the lengths in alphabet
// order.
func (t *IET) String() string {
	var b strings.Builder
	b.WriteString(t.p.String())
	b.WriteByte('\n')
	for i, l := range t.p.Letters() {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(l)
		b.WriteString("=")
		b.WriteString(t.lengths[l].RatString())
	}
	return b.String()
}

func ratMax(a, b *big.Rat) *big.Rat {
	if a.Cmp(b) >= 0 {
		return a
	}
	return b
}

func ratMin(a, b *big.Rat) *big.Rat {
	if a.Cmp(b) <= 0 {
		return a
	}
	return b
}
