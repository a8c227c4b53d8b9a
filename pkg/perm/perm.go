// Package perm implements the combinatorial datum of interval exchange
// transformations and linear involutions: a two-row permutation over an
// ordered alphabet, in labelled or reduced mode, with optional per-label
// orientation flips.
//
// # Kinds
//
// The kind is inferred from occurrence counts:
//
//   - IET kind: both rows are permutations of the same letters (each
//     letter exactly once per row).
//   - Linear-involution kind: each letter occurs exactly twice across the
//     two rows combined, in any distribution; the rows may differ in
//     length. Row pairs admitting no positive length vector are rejected.
//
// # Modes
//
// A labelled permutation compares by its literal rows. A reduced
// permutation represents the equivalence class under simultaneous
// relabeling: equality compares canonical patterns, and Reduce computes
// the deterministic representative (letters renamed by order of first
// appearance, top row first).
package perm

import (
	"strconv"
	"strings"

	rzerr "github.com/ietools/rauzy/pkg/errors"
)

// Side selects one of the two rows of a permutation.
type Side int

const (
	// Top is the upper row.
	Top Side = iota
	// Bottom is the lower row.
	Bottom
)

// String returns "top" or "bottom".
func (s Side) String() string {
	if s == Top {
		return "top"
	}
	return "bottom"
}

// Other returns the opposite side.
func (s Side) Other() Side { return 1 - s }

// Kind distinguishes classical IET permutations from generalized
// permutations of linear involutions.
type Kind int

const (
	// KindIET marks a permutation where each letter occurs once per row.
	KindIET Kind = iota
	// KindLinearInvolution marks a generalized permutation where each
	// letter occurs twice across the two rows combined.
	KindLinearInvolution
)

// String returns a human-readable kind name.
func (k Kind) String() string {
	if k == KindIET {
		return "iet"
	}
	return "linear involution"
}

// Options configures permutation construction.
type Options struct {
	// Reduced selects reduced mode: equality up to simultaneous relabeling.
	Reduced bool
	// Flips lists labels whose orientation is reversed.
	Flips []string
	// Alphabet fixes the label ordering. When nil, labels are ordered by
	// first appearance (top row first, then bottom row).
	Alphabet []string
}

// Permutation is the two-row combinatorial datum. It is immutable; all
// derived permutations are fresh values.
type Permutation struct {
	top      []string
	bottom   []string
	alphabet *Alphabet
	kind     Kind
	reduced  bool
	flips    map[string]bool // nil when no flips
}

// New builds a permutation from two label rows, inferring the kind from
// occurrence counts. It fails with LETTER_MULTIPLICITY when a label's
// occurrence count fits neither kind, INVALID_FLIP_LETTER when a flip
// label is absent from the alphabet, and INVALID_INPUT for empty rows,
// alphabet mismatches, or unrealizable linear involutions.
func New(top, bottom []string, opts Options) (*Permutation, error) {
	if len(top) == 0 || len(bottom) == 0 {
		return nil, rzerr.New(rzerr.ErrCodeInvalidInput, "both rows must be non-empty")
	}
	for _, row := range [][]string{top, bottom} {
		for _, l := range row {
			if l == "" {
				return nil, rzerr.New(rzerr.ErrCodeInvalidInput, "rows must not contain empty labels")
			}
		}
	}

	kind, err := inferKind(top, bottom)
	if err != nil {
		return nil, err
	}
	if kind == KindLinearInvolution {
		if err := checkRealizable(top, bottom); err != nil {
			return nil, err
		}
	}

	alphabet, err := buildAlphabet(top, bottom, opts.Alphabet)
	if err != nil {
		return nil, err
	}

	var flips map[string]bool
	if len(opts.Flips) > 0 {
		flips = make(map[string]bool, len(opts.Flips))
		for _, l := range opts.Flips {
			if !alphabet.Contains(l) {
				return nil, rzerr.New(rzerr.ErrCodeInvalidFlipLetter, "flip letter %q not in alphabet", l)
			}
			flips[l] = true
		}
	}

	p := &Permutation{
		top:      append([]string(nil), top...),
		bottom:   append([]string(nil), bottom...),
		alphabet: alphabet,
		kind:     kind,
		reduced:  opts.Reduced,
		flips:    flips,
	}
	if p.reduced {
		return p.canonicalize(), nil
	}
	return p, nil
}

// FromString builds a permutation from two whitespace-separated rows,
// e.g. FromString("a b b", "c c a", Options{}).
func FromString(top, bottom string, opts Options) (*Permutation, error) {
	t := strings.Fields(top)
	b := strings.Fields(bottom)
	if len(t) == 0 || len(b) == 0 {
		return nil, rzerr.New(rzerr.ErrCodeInvalidInput, "rows must contain at least one label")
	}
	return New(t, b, opts)
}

// inferKind classifies the row pair by occurrence counts.
func inferKind(top, bottom []string) (Kind, error) {
	topCount := make(map[string]int)
	botCount := make(map[string]int)
	for _, l := range top {
		topCount[l]++
	}
	for _, l := range bottom {
		botCount[l]++
	}

	if len(top) == len(bottom) {
		iet := len(topCount) == len(top) && len(botCount) == len(bottom)
		if iet {
			for l := range topCount {
				if botCount[l] != 1 {
					iet = false
					break
				}
			}
		}
		if iet {
			return KindIET, nil
		}
	}

	letters := make(map[string]struct{}, len(topCount)+len(botCount))
	for l := range topCount {
		letters[l] = struct{}{}
	}
	for l := range botCount {
		letters[l] = struct{}{}
	}
	for l := range letters {
		if n := topCount[l] + botCount[l]; n != 2 {
			return 0, rzerr.New(rzerr.ErrCodeLetterMultiplicity,
				"letter %q occurs %d times, want once per row or twice overall", l, n)
		}
	}
	return KindLinearInvolution, nil
}

// checkRealizable verifies that a generalized permutation admits a
// positive length vector: the signed occurrence balance (top count minus
// bottom count per letter) must either vanish entirely or mix signs.
func checkRealizable(top, bottom []string) error {
	balance := make(map[string]int)
	for _, l := range top {
		balance[l]++
	}
	for _, l := range bottom {
		balance[l]--
	}
	pos, neg := false, false
	for _, v := range balance {
		if v > 0 {
			pos = true
		}
		if v < 0 {
			neg = true
		}
	}
	if pos != neg {
		return rzerr.New(rzerr.ErrCodeInvalidInput,
			"rows admit no positive length vector")
	}
	return nil
}

func buildAlphabet(top, bottom, given []string) (*Alphabet, error) {
	discovered := make([]string, 0, len(top))
	seen := make(map[string]struct{}, len(top))
	for _, row := range [][]string{top, bottom} {
		for _, l := range row {
			if _, ok := seen[l]; !ok {
				seen[l] = struct{}{}
				discovered = append(discovered, l)
			}
		}
	}
	if given == nil {
		return NewAlphabet(discovered)
	}
	a, err := NewAlphabet(given)
	if err != nil {
		return nil, err
	}
	if a.Len() != len(discovered) {
		return nil, rzerr.New(rzerr.ErrCodeInvalidInput,
			"alphabet has %d labels, rows use %d", a.Len(), len(discovered))
	}
	for _, l := range discovered {
		if !a.Contains(l) {
			return nil, rzerr.New(rzerr.ErrCodeInvalidInput, "label %q missing from alphabet", l)
		}
	}
	return a, nil
}

// Alphabet returns the permutation's alphabet.
func (p *Permutation) Alphabet() *Alphabet { return p.alphabet }

// Kind returns the inferred kind.
func (p *Permutation) Kind() Kind { return p.kind }

// Reduced reports whether the permutation is in reduced mode.
func (p *Permutation) Reduced() bool { return p.reduced }

// Len returns the alphabet cardinality.
func (p *Permutation) Len() int { return p.alphabet.Len() }

// Letters returns the ordered alphabet labels.
func (p *Permutation) Letters() []string { return p.alphabet.Labels() }

// Row returns a copy of the requested row.
func (p *Permutation) Row(s Side) []string {
	if s == Top {
		return append([]string(nil), p.top...)
	}
	return append([]string(nil), p.bottom...)
}

// Top returns a copy of the top row.
func (p *Permutation) Top() []string { return p.Row(Top) }

// Bottom returns a copy of the bottom row.
func (p *Permutation) Bottom() []string { return p.Row(Bottom) }

// HasFlips reports whether any label is orientation-reversed.
func (p *Permutation) HasFlips() bool { return len(p.flips) > 0 }

// Flipped reports whether the label is orientation-reversed.
func (p *Permutation) Flipped(label string) bool { return p.flips[label] }

// Flips returns the flipped labels in alphabet order.
func (p *Permutation) Flips() []string {
	if len(p.flips) == 0 {
		return nil
	}
	out := make([]string, 0, len(p.flips))
	for _, l := range p.alphabet.labels {
		if p.flips[l] {
			out = append(out, l)
		}
	}
	return out
}

// WithFlips returns a copy with the given flip set. It fails with
// INVALID_FLIP_LETTER when a label is absent from the alphabet.
func (p *Permutation) WithFlips(labels []string) (*Permutation, error) {
	var flips map[string]bool
	if len(labels) > 0 {
		flips = make(map[string]bool, len(labels))
		for _, l := range labels {
			if !p.alphabet.Contains(l) {
				return nil, rzerr.New(rzerr.ErrCodeInvalidFlipLetter, "flip letter %q not in alphabet", l)
			}
			flips[l] = true
		}
	}
	q := p.clone()
	q.flips = flips
	if q.reduced {
		q = q.canonicalize()
	}
	return q, nil
}

// Labelled returns a labelled copy of the permutation, keeping rows,
// alphabet and flips. Used to walk a concrete representative of a
// reduced class so that matrices stay expressed in one fixed ordering.
func (p *Permutation) Labelled() *Permutation {
	q := p.clone()
	q.reduced = false
	return q
}

// Reduce returns the canonical representative of the relabeling class,
// in reduced mode. Reducing a reduced permutation is the identity.
func (p *Permutation) Reduce() *Permutation {
	q := p.clone()
	q.reduced = true
	return q.canonicalize()
}

// Equal respects the mode: labelled permutations compare by literal rows
// and flips, reduced ones by canonical pattern. Permutations of different
// modes or kinds are never equal.
func (p *Permutation) Equal(q *Permutation) bool {
	if p.kind != q.kind || p.reduced != q.reduced {
		return false
	}
	if p.reduced {
		return p.Key() == q.Key()
	}
	return rowsEqual(p.top, q.top) && rowsEqual(p.bottom, q.bottom) && flipsEqual(p.flips, q.flips)
}

// Key returns a deduplication key respecting the mode: the literal rows
// for labelled permutations, the relabeling pattern for reduced ones.
func (p *Permutation) Key() string {
	var b strings.Builder
	if p.reduced {
		next := 0
		rank := make(map[string]int, p.alphabet.Len())
		for _, row := range [][]string{p.top, p.bottom} {
			for _, l := range row {
				if _, ok := rank[l]; !ok {
					rank[l] = next
					next++
				}
			}
		}
		writeRow := func(row []string) {
			for i, l := range row {
				if i > 0 {
					b.WriteByte(' ')
				}
				b.WriteString(strconv.Itoa(rank[l]))
				if p.flips[l] {
					b.WriteByte('-')
				}
			}
		}
		writeRow(p.top)
		b.WriteByte('/')
		writeRow(p.bottom)
		return b.String()
	}
	writeRow := func(row []string) {
		for i, l := range row {
			if i > 0 {
				b.WriteByte(' ')
			}
			b.WriteString(l)
			if p.flips[l] {
				b.WriteByte('-')
			}
		}
	}
	writeRow(p.top)
	b.WriteByte('/')
	writeRow(p.bottom)
	return b.String()
}

// String renders the two rows, flipped labels prefixed with a minus sign.
func (p *Permutation) String() string {
	var b strings.Builder
	writeRow := func(row []string) {
		for i, l := range row {
			if i > 0 {
				b.WriteByte(' ')
			}
			if p.flips[l] {
				b.WriteByte('-')
			}
			b.WriteString(l)
		}
	}
	writeRow(p.top)
	b.WriteByte('\n')
	writeRow(p.bottom)
	return b.String()
}

// canonicalize relabels letters by order of first appearance (top row
// first) onto the alphabet's labels in order. Flips follow their letters.
func (p *Permutation) canonicalize() *Permutation {
	rename := make(map[string]string, p.alphabet.Len())
	next := 0
	for _, row := range [][]string{p.top, p.bottom} {
		for _, l := range row {
			if _, ok := rename[l]; !ok {
				rename[l] = p.alphabet.labels[next]
				next++
			}
		}
	}
	q := &Permutation{
		top:      make([]string, len(p.top)),
		bottom:   make([]string, len(p.bottom)),
		alphabet: p.alphabet,
		kind:     p.kind,
		reduced:  true,
	}
	for i, l := range p.top {
		q.top[i] = rename[l]
	}
	for i, l := range p.bottom {
		q.bottom[i] = rename[l]
	}
	if len(p.flips) > 0 {
		q.flips = make(map[string]bool, len(p.flips))
		for l, f := range p.flips {
			if f {
				q.flips[rename[l]] = true
			}
		}
	}
	return q
}

func (p *Permutation) clone() *Permutation {
	q := &Permutation{
		top:      append([]string(nil), p.top...),
		bottom:   append([]string(nil), p.bottom...),
		alphabet: p.alphabet,
		kind:     p.kind,
		reduced:  p.reduced,
	}
	if len(p.flips) > 0 {
		q.flips = make(map[string]bool, len(p.flips))
		for l, f := range p.flips {
			if f {
				q.flips[l] = true
			}
		}
	}
	return q
}

func rowsEqual(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i, l := range a {
		if b[i] != l {
			return false
		}
	}
	return true
}

func flipsEqual(a, b map[string]bool) bool {
	if len(a) != len(b) {
		return false
	}
	for l := range a {
		if !b[l] {
			return false
		}
	}
	return true
}
