package scenario

import (
	"os"
	"path/filepath"
	"testing"

	rzerr "github.com/ietools/rauzy/pkg/errors"
)

const sample = `
name = "symmetric four letters"
path = ["t", "t", "b"]

[permutation]
top = "a b c d"
bottom = "d c b a"

[diagram]
left_induction = true
max_vertices = 100

[lengths]
a = "1/4"
b = "1/4"
c = "1/4"
d = "1/4"
`

func TestParse(t *testing.T) {
	s, err := Parse([]byte(sample))
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}
	if s.Name != "symmetric four letters" {
		t.Errorf("Name = %q", s.Name)
	}
	if !s.HasPath() || len(s.Path) != 3 {
		t.Errorf("Path = %v", s.Path)
	}
	if !s.HasLengths() || s.Lengths["a"] != "1/4" {
		t.Errorf("Lengths = %v", s.Lengths)
	}

	seed, err := s.Seed()
	if err != nil {
		t.Fatalf("Seed() error: %v", err)
	}
	if seed.Len() != 4 {
		t.Errorf("seed Len() = %d, want 4", seed.Len())
	}

	opts := s.DiagramOptions()
	if !opts.LeftInduction || opts.MaxVertices != 100 {
		t.Errorf("DiagramOptions() = %+v", opts)
	}
}

func TestParseRejectsMisplacedPath(t *testing.T) {
	// "path" written after a table header lands inside that table and
	// would silently drop the walk; Parse must reject it instead.
	_, err := Parse([]byte(`
[permutation]
top = "a b"
bottom = "b a"

[diagram]
path = ["t", "b"]
`))
	if !rzerr.Is(err, rzerr.ErrCodeInvalidInput) {
		t.Errorf("error = %v, want INVALID_INPUT", err)
	}
}

func TestParseRejectsMissingRows(t *testing.T) {
	_, err := Parse([]byte(`name = "empty"`))
	if !rzerr.Is(err, rzerr.ErrCodeInvalidInput) {
		t.Errorf("error = %v, want INVALID_INPUT", err)
	}

	_, err = Parse([]byte(`this is not toml`))
	if !rzerr.Is(err, rzerr.ErrCodeInvalidInput) {
		t.Errorf("error = %v, want INVALID_INPUT", err)
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "scenario.toml")
	if err := os.WriteFile(path, []byte(sample), 0o644); err != nil {
		t.Fatal(err)
	}
	s, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if s.Permutation.Top != "a b c d" {
		t.Errorf("Top = %q", s.Permutation.Top)
	}

	if _, err := Load(filepath.Join(dir, "missing.toml")); !rzerr.Is(err, rzerr.ErrCodeInvalidInput) {
		t.Errorf("error = %v, want INVALID_INPUT", err)
	}
}
