// Package graphio is the serialization boundary for Rauzy diagrams. The
// JSON format is human-readable and designed for round-trip fidelity:
// export → re-import rebuilds the identical diagram, since a diagram is
// a pure function of its seed and move switches.
package graphio

import (
	"encoding/json"
	"strings"

	"github.com/ietools/rauzy/pkg/diagram"
	rzerr "github.com/ietools/rauzy/pkg/errors"
	"github.com/ietools/rauzy/pkg/perm"
)

// Document is the canonical serialization format for a diagram.
type Document struct {
	Seed     Seed     `json:"seed"`
	Options  Options  `json:"options"`
	Vertices []Vertex `json:"vertices"`
	Edges    []Edge   `json:"edges"`
}

// Seed records how to reconstruct the seed permutation.
type Seed struct {
	Top     string   `json:"top"`
	Bottom  string   `json:"bottom"`
	Reduced bool     `json:"reduced,omitempty"`
	Flips   []string `json:"flips,omitempty"`
}

// Options mirrors the diagram build switches.
type Options struct {
	LeftInduction         bool `json:"left_induction,omitempty"`
	DisableRightInduction bool `json:"disable_right_induction,omitempty"`
	LeftRightInversion    bool `json:"left_right_inversion,omitempty"`
	TopBottomInversion    bool `json:"top_bottom_inversion,omitempty"`
	Symmetric             bool `json:"symmetric,omitempty"`
	MaxVertices           int  `json:"max_vertices,omitempty"`
}

// Vertex is one permutation of the diagram, identified by arena index.
type Vertex struct {
	Index  int    `json:"index"`
	Top    string `json:"top"`
	Bottom string `json:"bottom"`
}

// Edge is one move between two vertices.
type Edge struct {
	From   int    `json:"from"`
	To     int    `json:"to"`
	Move   string `json:"move"`
	Winner string `json:"winner,omitempty"`
	Loser  string `json:"loser,omitempty"`
}

// FromDiagram converts a built diagram with its build inputs into the
// serialization format.
func FromDiagram(d *diagram.Diagram, opts diagram.Options) Document {
	doc := Document{
		Seed: seedOf(d.Seed()),
		Options: Options{
			LeftInduction:         opts.LeftInduction,
			DisableRightInduction: opts.DisableRightInduction,
			LeftRightInversion:    opts.LeftRightInversion,
			TopBottomInversion:    opts.TopBottomInversion,
			Symmetric:             opts.Symmetric,
			MaxVertices:           opts.MaxVertices,
		},
	}
	for i, v := range d.Vertices() {
		doc.Vertices = append(doc.Vertices, Vertex{Index: i, Top: rowString(v, perm.Top), Bottom: rowString(v, perm.Bottom)})
	}
	for _, e := range d.Edges() {
		doc.Edges = append(doc.Edges, Edge{
			From: e.From, To: e.To,
			Move: e.Kind.String(), Winner: e.Winner, Loser: e.Loser,
		})
	}
	return doc
}

// Rebuild reconstructs the diagram from a document by replaying the
// build. It fails when the document's vertex or edge counts do not match
// the rebuilt diagram, which indicates a hand-edited or corrupted file.
func Rebuild(doc Document) (*diagram.Diagram, error) {
	seed, err := perm.FromString(doc.Seed.Top, doc.Seed.Bottom, perm.Options{
		Reduced: doc.Seed.Reduced,
		Flips:   doc.Seed.Flips,
	})
	if err != nil {
		return nil, err
	}
	d, err := diagram.Build(seed, diagram.Options{
		LeftInduction:         doc.Options.LeftInduction,
		DisableRightInduction: doc.Options.DisableRightInduction,
		LeftRightInversion:    doc.Options.LeftRightInversion,
		TopBottomInversion:    doc.Options.TopBottomInversion,
		Symmetric:             doc.Options.Symmetric,
		MaxVertices:           doc.Options.MaxVertices,
	})
	if err != nil {
		return nil, err
	}
	if d.NumVertices() != len(doc.Vertices) || d.NumEdges() != len(doc.Edges) {
		return nil, rzerr.New(rzerr.ErrCodeInvalidInput,
			"document lists %d vertices and %d edges, rebuild produced %d and %d",
			len(doc.Vertices), len(doc.Edges), d.NumVertices(), d.NumEdges())
	}
	return d, nil
}

// Marshal encodes a document as indented JSON.
func Marshal(doc Document) ([]byte, error) {
	return json.MarshalIndent(doc, "", "  ")
}

// Unmarshal decodes a document from JSON.
func Unmarshal(data []byte) (Document, error) {
	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return Document{}, rzerr.Wrap(rzerr.ErrCodeInvalidInput, err, "decode diagram document")
	}
	return doc, nil
}

func seedOf(p *perm.Permutation) Seed {
	return Seed{
		Top:     rowString(p, perm.Top),
		Bottom:  rowString(p, perm.Bottom),
		Reduced: p.Reduced(),
		Flips:   p.Flips(),
	}
}

func rowString(p *perm.Permutation, side perm.Side) string {
	return strings.Join(p.Row(side), " ")
}
