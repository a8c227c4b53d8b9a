// Package pipeline provides the core computation pipeline: build a Rauzy
// diagram from a seed, analyze an optional path through it, and render
// output artifacts. CLI commands and scenario runs share this logic so
// caching and logging behave the same from every entry point.
//
// The pipeline consists of three stages:
//
//  1. Build: explore the diagram of the seed permutation
//  2. Analyze: walk the requested path (matrix, substitution, eigenvalue)
//     and realize the optional numeric lengths
//  3. Render: generate output in various formats (DOT, SVG, PNG, JSON)
//
// Each stage can be run independently or as part of the complete
// pipeline.
package pipeline

import (
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/ietools/rauzy/pkg/scenario"
)

// Cache TTLs per artifact class. Diagram documents are pure functions of
// their inputs, so the TTLs only bound storage growth.
const (
	TTLDiagram  = 30 * 24 * time.Hour
	TTLArtifact = 7 * 24 * time.Hour
)

// Format constants for output formats.
const (
	FormatDOT  = "dot"
	FormatSVG  = "svg"
	FormatPNG  = "png"
	FormatJSON = "json"
)

// ValidFormats is the set of supported output formats.
var ValidFormats = map[string]bool{
	FormatDOT:  true,
	FormatSVG:  true,
	FormatPNG:  true,
	FormatJSON: true,
}

// Options contains all configuration for the pipeline. The struct
// serializes to JSON so runs can be replayed.
type Options struct {
	// Seed permutation
	Top     string   `json:"top"`
	Bottom  string   `json:"bottom"`
	Reduced bool     `json:"reduced,omitempty"`
	Flips   []string `json:"flips,omitempty"`

	// Diagram switches
	LeftInduction         bool `json:"left_induction,omitempty"`
	DisableRightInduction bool `json:"disable_right_induction,omitempty"`
	LeftRightInversion    bool `json:"left_right_inversion,omitempty"`
	TopBottomInversion    bool `json:"top_bottom_inversion,omitempty"`
	Symmetric             bool `json:"symmetric,omitempty"`
	MaxVertices           int  `json:"max_vertices,omitempty"`

	// Analyze options
	Path    []string          `json:"path,omitempty"`
	Lengths map[string]string `json:"lengths,omitempty"`

	// Render options
	Formats  []string `json:"formats,omitempty"`
	Detailed bool     `json:"detailed,omitempty"`

	// Refresh skips cache reads, forcing recomputation.
	Refresh bool `json:"refresh,omitempty"`

	// Runtime options (not serialized)
	Logger *log.Logger `json:"-"`

	validated bool `json:"-"`
}

// FromScenario converts a decoded scenario file into pipeline options.
func FromScenario(s *scenario.Scenario) Options {
	return Options{
		Top:                   s.Permutation.Top,
		Bottom:                s.Permutation.Bottom,
		Reduced:               s.Permutation.Reduced,
		Flips:                 s.Permutation.Flips,
		LeftInduction:         s.Diagram.LeftInduction,
		DisableRightInduction: s.Diagram.DisableRightInduction,
		LeftRightInversion:    s.Diagram.LeftRightInversion,
		TopBottomInversion:    s.Diagram.TopBottomInversion,
		Symmetric:             s.Diagram.Symmetric,
		MaxVertices:           s.Diagram.MaxVertices,
		Path:                  s.Path,
		Lengths:               s.Lengths,
	}
}

// ValidateFormat checks that a format is valid.
func ValidateFormat(format string) error {
	if !ValidFormats[format] {
		return fmt.Errorf("invalid format: %q (must be one of: dot, svg, png, json)", format)
	}
	return nil
}

// ValidateAndSetDefaults checks required fields and applies defaults.
// Idempotent.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	if o.Top == "" || o.Bottom == "" {
		return fmt.Errorf("both permutation rows are required")
	}
	if len(o.Formats) == 0 {
		o.Formats = []string{FormatJSON}
	}
	for _, f := range o.Formats {
		if err := ValidateFormat(f); err != nil {
			return err
		}
	}
	o.validated = true
	return nil
}
