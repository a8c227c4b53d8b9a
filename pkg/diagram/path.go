package diagram

import (
	"strings"

	rzerr "github.com/ietools/rauzy/pkg/errors"
	"github.com/ietools/rauzy/pkg/induction"
	"github.com/ietools/rauzy/pkg/intmat"
	"github.com/ietools/rauzy/pkg/perm"
	"github.com/ietools/rauzy/pkg/subst"
)

// Path is a walk in a diagram: a start vertex and a sequence of moves,
// each of which is a defined edge. Paths are immutable; Compose returns
// new ones.
//
// Matrices and substitutions are computed by replaying the moves on a
// labelled representative of the start vertex, so they are always indexed
// by the seed alphabet even in a reduced diagram.
type Path struct {
	d     *Diagram
	start int
	end   int
	kinds []induction.Kind
	steps []induction.Result
}

// Path starts a walk at vertex start and extends it by the given moves.
func (d *Diagram) Path(start int, kinds ...induction.Kind) (*Path, error) {
	if start < 0 || start >= len(d.vertices) {
		return nil, rzerr.New(rzerr.ErrCodeInvalidInput, "no vertex %d", start)
	}
	p := &Path{d: d, start: start, end: start}
	return p.Extend(kinds...)
}

// PathFromTokens parses move tokens and starts a walk at vertex start.
func (d *Diagram) PathFromTokens(start int, tokens []string) (*Path, error) {
	kinds, err := induction.ParseTokens(tokens)
	if err != nil {
		return nil, err
	}
	return d.Path(start, kinds...)
}

// Start returns the index of the initial vertex.
func (p *Path) Start() int { return p.start }

// End returns the index of the final vertex.
func (p *Path) End() int { return p.end }

// Len returns the number of edges.
func (p *Path) Len() int { return len(p.kinds) }

// Kinds returns the move sequence.
func (p *Path) Kinds() []induction.Kind {
	return append([]induction.Kind(nil), p.kinds...)
}

// IsLoop reports whether the path returns to its start vertex.
func (p *Path) IsLoop() bool { return p.end == p.start }

// Extend returns the path prolonged by further moves. Each move must be
// an edge of the diagram at the current end vertex; naming a move that is
// disabled or degenerate there fails with INVALID_MOVE_LABEL.
func (p *Path) Extend(kinds ...induction.Kind) (*Path, error) {
	out := &Path{
		d:     p.d,
		start: p.start,
		end:   p.end,
		kinds: append([]induction.Kind(nil), p.kinds...),
		steps: append([]induction.Result(nil), p.steps...),
	}
	cur := out.replayVertex()
	for _, k := range kinds {
		to, ok := out.d.Successor(out.end, k)
		if !ok {
			return nil, rzerr.New(rzerr.ErrCodeInvalidMoveLabel,
				"no edge %s at vertex %d", k, out.end)
		}
		res, err := induction.Apply(cur, k)
		if err != nil {
			return nil, err
		}
		out.kinds = append(out.kinds, k)
		out.steps = append(out.steps, res)
		out.end = to
		cur = res.Perm
	}
	return out, nil
}

// replayVertex returns the labelled permutation the next replay step
// starts from.
func (p *Path) replayVertex() *perm.Permutation {
	if len(p.steps) > 0 {
		return p.steps[len(p.steps)-1].Perm
	}
	return p.d.Vertex(p.start).Labelled()
}

// Compose concatenates two paths. The other path must start where this
// one ends.
func (p *Path) Compose(q *Path) (*Path, error) {
	if p.d != q.d {
		return nil, rzerr.New(rzerr.ErrCodeIncompatiblePath, "paths belong to different diagrams")
	}
	if q.start != p.end {
		return nil, rzerr.New(rzerr.ErrCodeIncompatiblePath,
			"second path starts at vertex %d, first ends at %d", q.start, p.end)
	}
	return p.Extend(q.kinds...)
}

// Matrix returns the product of the elementary matrices along the path,
// in traversal order. The empty path yields the identity.
func (p *Path) Matrix() intmat.Matrix {
	m := intmat.Identity(p.d.Seed().Len())
	for _, s := range p.steps {
		m = m.Mul(s.Matrix)
	}
	return m
}

// IsFull reports whether every letter of the alphabet loses at least once
// along the path. Inversion edges absorb nothing and never contribute.
func (p *Path) IsFull() bool {
	a := p.d.Seed().Alphabet()
	lost := make(map[string]bool, a.Len())
	for _, s := range p.steps {
		if s.Loser != "" {
			lost[s.Loser] = true
		}
	}
	return len(lost) == a.Len()
}

// OrbitSubstitution returns the substitution describing the symbolic
// orbits of the path: the composition of one elementary substitution per
// edge, where a top winner prepends itself to the loser's image and a
// bottom winner appends itself. Its incidence matrix equals Matrix.
func (p *Path) OrbitSubstitution() *subst.Substitution {
	a := p.d.Seed().Alphabet()
	s := subst.Identity(a)
	for _, step := range p.steps {
		if step.Loser == "" {
			continue
		}
		s = s.Compose(subst.Elementary(a, step.Winner, step.Loser, prepends(step.Kind)))
	}
	return s
}

// SignedOrbitSubstitution is the orientation-aware variant for flipped
// permutations. A flipped winner contributes the loser reversed and
// reflipped.
func (p *Path) SignedOrbitSubstitution() *subst.SignedSubstitution {
	a := p.d.Seed().Alphabet()
	s := subst.SignedIdentity(a)
	cur := p.d.Vertex(p.start).Labelled()
	for _, step := range p.steps {
		if step.Loser != "" {
			s = s.Compose(subst.ElementarySigned(a, step.Winner, step.Loser,
				cur.Flipped(step.Winner), cur.Flipped(step.Loser), prepends(step.Kind)))
		}
		cur = step.Perm
	}
	return s
}

func prepends(k induction.Kind) bool {
	return k == induction.RightTop || k == induction.LeftBottom
}

// String renders the path as its move tokens.
func (p *Path) String() string {
	tokens := make([]string, len(p.kinds))
	for i, k := range p.kinds {
		tokens[i] = k.String()
	}
	return strings.Join(tokens, " ")
}
