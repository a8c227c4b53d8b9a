// Package scenario loads TOML descriptions of a full computation: a seed
// permutation, the diagram switches, an optional move path and optional
// numeric lengths. Scenario files drive the run command and make
// experiments reproducible.
package scenario

import (
	"os"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/ietools/rauzy/pkg/diagram"
	rzerr "github.com/ietools/rauzy/pkg/errors"
	"github.com/ietools/rauzy/pkg/perm"
)

// Scenario is the decoded form of a scenario file.
type Scenario struct {
	Name        string      `toml:"name"`
	Permutation Permutation `toml:"permutation"`
	Diagram     Diagram     `toml:"diagram"`
	Path        []string    `toml:"path"`
	Lengths     Lengths     `toml:"lengths"`
}

// Permutation describes the seed.
type Permutation struct {
	Top     string   `toml:"top"`
	Bottom  string   `toml:"bottom"`
	Reduced bool     `toml:"reduced"`
	Flips   []string `toml:"flips"`
}

// Diagram holds the move switches of the exploration.
type Diagram struct {
	LeftInduction         bool `toml:"left_induction"`
	DisableRightInduction bool `toml:"disable_right_induction"`
	LeftRightInversion    bool `toml:"left_right_inversion"`
	TopBottomInversion    bool `toml:"top_bottom_inversion"`
	Symmetric             bool `toml:"symmetric"`
	MaxVertices           int  `toml:"max_vertices"`
}

// Lengths assigns a rational length literal to each letter.
type Lengths map[string]string

// Load reads and validates a scenario file.
func Load(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, rzerr.Wrap(rzerr.ErrCodeInvalidInput, err, "read scenario %s", path)
	}
	return Parse(data)
}

// Parse decodes a scenario from TOML bytes. Unknown keys are rejected,
// so a top-level key misplaced into a table (the classic TOML mistake of
// writing "path" below "[diagram]") fails loudly instead of being
// silently dropped.
func Parse(data []byte) (*Scenario, error) {
	var s Scenario
	md, err := toml.Decode(string(data), &s)
	if err != nil {
		return nil, rzerr.Wrap(rzerr.ErrCodeInvalidInput, err, "decode scenario")
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return nil, rzerr.New(rzerr.ErrCodeInvalidInput,
			"unknown scenario key %q (top-level keys like \"path\" must appear before the first table)",
			undecoded[0].String())
	}
	if strings.TrimSpace(s.Permutation.Top) == "" || strings.TrimSpace(s.Permutation.Bottom) == "" {
		return nil, rzerr.New(rzerr.ErrCodeInvalidInput, "scenario needs both permutation rows")
	}
	return &s, nil
}

// Seed builds the scenario's seed permutation.
func (s *Scenario) Seed() (*perm.Permutation, error) {
	return perm.FromString(s.Permutation.Top, s.Permutation.Bottom, perm.Options{
		Reduced: s.Permutation.Reduced,
		Flips:   s.Permutation.Flips,
	})
}

// DiagramOptions converts the switches to builder options.
func (s *Scenario) DiagramOptions() diagram.Options {
	return diagram.Options{
		LeftInduction:         s.Diagram.LeftInduction,
		DisableRightInduction: s.Diagram.DisableRightInduction,
		LeftRightInversion:    s.Diagram.LeftRightInversion,
		TopBottomInversion:    s.Diagram.TopBottomInversion,
		Symmetric:             s.Diagram.Symmetric,
		MaxVertices:           s.Diagram.MaxVertices,
	}
}

// HasPath reports whether the scenario requests a path walk.
func (s *Scenario) HasPath() bool { return len(s.Path) > 0 }

// HasLengths reports whether the scenario carries a numeric realization.
func (s *Scenario) HasLengths() bool { return len(s.Lengths) > 0 }
