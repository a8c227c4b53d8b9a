// Package diagram builds Rauzy diagrams: the finite graphs whose vertices
// are the permutations reachable from a seed under a chosen set of
// induction moves, with one edge per defined move.
package diagram

import (
	rzerr "github.com/ietools/rauzy/pkg/errors"
	"github.com/ietools/rauzy/pkg/induction"
	"github.com/ietools/rauzy/pkg/perm"
)

// DefaultMaxVertices bounds the breadth-first exploration when the caller
// does not set a limit.
const DefaultMaxVertices = 1 << 16

// Options selects the moves that generate the diagram and bounds its
// exploration. The zero value enables right induction only.
type Options struct {
	// LeftInduction adds the two left induction moves.
	LeftInduction bool
	// DisableRightInduction removes the two right induction moves,
	// which are otherwise always generators.
	DisableRightInduction bool
	// LeftRightInversion, TopBottomInversion and Symmetric add the
	// corresponding involutions as generators.
	LeftRightInversion bool
	TopBottomInversion bool
	Symmetric          bool
	// MaxVertices aborts exploration with EXPLORATION_LIMIT when the
	// diagram grows beyond it. Zero means DefaultMaxVertices.
	MaxVertices int
}

func (o Options) moves() []induction.Kind {
	var ms []induction.Kind
	if !o.DisableRightInduction {
		ms = append(ms, induction.RightTop, induction.RightBottom)
	}
	if o.LeftInduction {
		ms = append(ms, induction.LeftTop, induction.LeftBottom)
	}
	if o.LeftRightInversion {
		ms = append(ms, induction.LeftRightInversion)
	}
	if o.TopBottomInversion {
		ms = append(ms, induction.TopBottomInversion)
	}
	if o.Symmetric {
		ms = append(ms, induction.Symmetric)
	}
	return ms
}

// Edge is a defined move between two vertices, identified by their arena
// indices. Winner and Loser are empty on inversion edges.
type Edge struct {
	From   int
	To     int
	Kind   induction.Kind
	Winner string
	Loser  string
}

// Diagram is the exploration result. Vertices live in an arena and are
// addressed by index; the seed is always vertex 0.
type Diagram struct {
	opts     Options
	vertices []*perm.Permutation
	index    map[string]int
	edges    []Edge
	out      [][]Edge
}

// Build explores the orbit of seed under the moves enabled in opts.
// Degenerate moves are skipped silently; they simply contribute no edge.
func Build(seed *perm.Permutation, opts Options) (*Diagram, error) {
	moves := opts.moves()
	if len(moves) == 0 {
		return nil, rzerr.New(rzerr.ErrCodeInvalidInput, "no moves enabled")
	}
	limit := opts.MaxVertices
	if limit <= 0 {
		limit = DefaultMaxVertices
	}

	d := &Diagram{
		opts:  opts,
		index: make(map[string]int),
	}
	d.add(seed)

	for next := 0; next < len(d.vertices); next++ {
		v := d.vertices[next]
		for _, k := range moves {
			res, err := induction.Apply(v, k)
			if err != nil {
				if rzerr.Is(err, rzerr.ErrCodeDegenerateInduction) {
					continue
				}
				return nil, err
			}
			to, seen := d.index[res.Perm.Key()]
			if !seen {
				if len(d.vertices) >= limit {
					return nil, rzerr.New(rzerr.ErrCodeExplorationLimit,
						"diagram exceeds %d vertices", limit)
				}
				to = d.add(res.Perm)
			}
			e := Edge{From: next, To: to, Kind: k, Winner: res.Winner, Loser: res.Loser}
			d.edges = append(d.edges, e)
			d.out[next] = append(d.out[next], e)
		}
	}
	return d, nil
}

func (d *Diagram) add(p *perm.Permutation) int {
	i := len(d.vertices)
	d.vertices = append(d.vertices, p)
	d.out = append(d.out, nil)
	d.index[p.Key()] = i
	return i
}

// NumVertices returns the number of vertices.
func (d *Diagram) NumVertices() int { return len(d.vertices) }

// NumEdges returns the number of edges.
func (d *Diagram) NumEdges() int { return len(d.edges) }

// Seed returns the seed vertex.
func (d *Diagram) Seed() *perm.Permutation { return d.vertices[0] }

// Vertex returns the permutation at arena index i.
func (d *Diagram) Vertex(i int) *perm.Permutation { return d.vertices[i] }

// Vertices returns the arena in discovery order.
func (d *Diagram) Vertices() []*perm.Permutation {
	return append([]*perm.Permutation(nil), d.vertices...)
}

// Edges returns all edges in discovery order.
func (d *Diagram) Edges() []Edge {
	return append([]Edge(nil), d.edges...)
}

// OutEdges returns the edges leaving vertex i.
func (d *Diagram) OutEdges(i int) []Edge {
	return append([]Edge(nil), d.out[i]...)
}

// Contains reports whether p is a vertex and returns its index.
func (d *Diagram) Contains(p *perm.Permutation) (int, bool) {
	i, ok := d.index[p.Key()]
	return i, ok
}

// Successor returns the target of the move k at vertex i, if that edge
// exists in the diagram.
func (d *Diagram) Successor(i int, k induction.Kind) (int, bool) {
	for _, e := range d.out[i] {
		if e.Kind == k {
			return e.To, true
		}
	}
	return -1, false
}
