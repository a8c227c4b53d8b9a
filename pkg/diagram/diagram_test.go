package diagram

import (
	"strings"
	"testing"

	rzerr "github.com/ietools/rauzy/pkg/errors"
	"github.com/ietools/rauzy/pkg/induction"
	"github.com/ietools/rauzy/pkg/perm"
)

func mustPerm(t *testing.T, top, bottom string, opts perm.Options) *perm.Permutation {
	t.Helper()
	p, err := perm.FromString(top, bottom, opts)
	if err != nil {
		t.Fatalf("FromString(%q, %q) error: %v", top, bottom, err)
	}
	return p
}

func mustBuild(t *testing.T, seed *perm.Permutation, opts Options) *Diagram {
	t.Helper()
	d, err := Build(seed, opts)
	if err != nil {
		t.Fatalf("Build() error: %v", err)
	}
	return d
}

func TestBuildThreeLetterClass(t *testing.T) {
	d := mustBuild(t, mustPerm(t, "a b c", "c b a", perm.Options{}), Options{})
	if d.NumVertices() != 3 {
		t.Errorf("NumVertices() = %d, want 3", d.NumVertices())
	}
	if d.NumEdges() != 6 {
		t.Errorf("NumEdges() = %d, want 6", d.NumEdges())
	}
}

func TestBuildFourLetterClass(t *testing.T) {
	d := mustBuild(t, mustPerm(t, "a b c d", "d c b a", perm.Options{}), Options{})
	if d.NumVertices() != 7 {
		t.Errorf("NumVertices() = %d, want 7", d.NumVertices())
	}
	if d.NumEdges() != 14 {
		t.Errorf("NumEdges() = %d, want 14", d.NumEdges())
	}
}

func TestBuildLinearInvolutionSkipsDegenerateMoves(t *testing.T) {
	d := mustBuild(t, mustPerm(t, "a b b", "c c a", perm.Options{}), Options{})
	if d.NumVertices() != 12 {
		t.Errorf("labelled NumVertices() = %d, want 12", d.NumVertices())
	}
	if d.NumEdges() != 18 {
		t.Errorf("NumEdges() = %d, want 18", d.NumEdges())
	}

	// Vertices with a degenerate move have a single outgoing edge.
	short := 0
	for i := 0; i < d.NumVertices(); i++ {
		if len(d.OutEdges(i)) == 1 {
			short++
		}
	}
	if short != 6 {
		t.Errorf("vertices with a skipped move = %d, want 6", short)
	}
}

func TestBuildReducedLinearInvolution(t *testing.T) {
	d := mustBuild(t, mustPerm(t, "a b b", "c c a", perm.Options{Reduced: true}), Options{})
	if d.NumVertices() != 4 {
		t.Errorf("reduced NumVertices() = %d, want 4", d.NumVertices())
	}
}

func TestBuildRespectsVertexBound(t *testing.T) {
	seed := mustPerm(t, "a b c d", "d c b a", perm.Options{})
	_, err := Build(seed, Options{MaxVertices: 3})
	if !rzerr.Is(err, rzerr.ErrCodeExplorationLimit) {
		t.Errorf("error = %v, want EXPLORATION_LIMIT", err)
	}
}

func TestBuildWithInversions(t *testing.T) {
	seed := mustPerm(t, "a b c d", "d c b a", perm.Options{})
	plain := mustBuild(t, seed, Options{})
	ext := mustBuild(t, seed, Options{LeftInduction: true, LeftRightInversion: true, TopBottomInversion: true, Symmetric: true})
	if ext.NumVertices() < plain.NumVertices() {
		t.Errorf("extended diagram smaller than plain: %d < %d", ext.NumVertices(), plain.NumVertices())
	}
	// Reversing and swapping both rows of the palindromic seed gives the
	// seed back, so the symmetric move is a self-loop at vertex 0. The
	// two single inversions both lead to the mirrored permutation.
	to, ok := ext.Successor(0, induction.Symmetric)
	if !ok || to != 0 {
		t.Errorf("Successor(0, s) = (%d, %v), want self-loop", to, ok)
	}
	lr, okLR := ext.Successor(0, induction.LeftRightInversion)
	tb, okTB := ext.Successor(0, induction.TopBottomInversion)
	if !okLR || !okTB || lr != tb || lr == 0 {
		t.Errorf("inversion targets = (%d, %d), want a shared mirror vertex", lr, tb)
	}
}

func TestContains(t *testing.T) {
	seed := mustPerm(t, "a b c", "c b a", perm.Options{})
	d := mustBuild(t, seed, Options{})
	if i, ok := d.Contains(seed); !ok || i != 0 {
		t.Errorf("Contains(seed) = (%d, %v), want (0, true)", i, ok)
	}
	other := mustPerm(t, "a b c", "b a c", perm.Options{})
	if _, ok := d.Contains(other); ok {
		t.Error("Contains() reports foreign permutation")
	}
}

func TestPathMatrixOfLoop(t *testing.T) {
	seed := mustPerm(t, "a b c d", "d c b a", perm.Options{})
	d := mustBuild(t, seed, Options{})

	p, err := d.PathFromTokens(0, strings.Fields("t t b t b b t b"))
	if err != nil {
		t.Fatalf("PathFromTokens() error: %v", err)
	}
	if !p.IsLoop() {
		t.Fatal("path is not a loop")
	}
	if !p.IsFull() {
		t.Error("loop should absorb every letter")
	}

	want := [][]int64{
		{1, 1, 1, 1},
		{1, 2, 0, 0},
		{0, 0, 2, 1},
		{2, 3, 2, 2},
	}
	m := p.Matrix()
	for i := range want {
		for j := range want[i] {
			if m.At(i, j) != want[i][j] {
				t.Fatalf("Matrix[%d][%d] = %d, want %d", i, j, m.At(i, j), want[i][j])
			}
		}
	}
}

func TestPathOrbitSubstitution(t *testing.T) {
	seed := mustPerm(t, "a b c d", "d c b a", perm.Options{})
	d := mustBuild(t, seed, Options{})

	p, err := d.PathFromTokens(0, strings.Fields("t t b t b b t b"))
	if err != nil {
		t.Fatalf("PathFromTokens() error: %v", err)
	}
	s := p.OrbitSubstitution()

	want := map[string]string{"a": "dbda", "b": "dbdbda", "c": "dccda", "d": "dcda"}
	for l, img := range want {
		if got := strings.Join(s.Image(l), ""); got != img {
			t.Errorf("image of %q = %q, want %q", l, got, img)
		}
	}

	// The incidence of the orbit substitution is the path matrix.
	if !s.IncidenceMatrix().Equal(p.Matrix()) {
		t.Error("incidence matrix differs from path matrix")
	}
}

func TestPathErrors(t *testing.T) {
	seed := mustPerm(t, "a b c", "c b a", perm.Options{})
	d := mustBuild(t, seed, Options{})

	if _, err := d.Path(99, induction.RightTop); !rzerr.Is(err, rzerr.ErrCodeInvalidInput) {
		t.Errorf("bad start: error = %v, want INVALID_INPUT", err)
	}
	// Left induction edges are not generators of this diagram.
	if _, err := d.Path(0, induction.LeftTop); !rzerr.Is(err, rzerr.ErrCodeInvalidMoveLabel) {
		t.Errorf("disabled move: error = %v, want INVALID_MOVE_LABEL", err)
	}
	if _, err := d.PathFromTokens(0, []string{"zz"}); !rzerr.Is(err, rzerr.ErrCodeInvalidMoveLabel) {
		t.Errorf("bad token: error = %v, want INVALID_MOVE_LABEL", err)
	}
}

func TestPathRejectsDegenerateMove(t *testing.T) {
	// Some vertices of this linear involution class have one degenerate
	// move and hence a single outgoing edge. Requesting the missing move
	// names no edge of the diagram.
	d := mustBuild(t, mustPerm(t, "a b b", "c c a", perm.Options{}), Options{})

	checked := false
	for i := 0; i < d.NumVertices(); i++ {
		if len(d.OutEdges(i)) != 1 {
			continue
		}
		checked = true
		missing := induction.RightTop
		if d.OutEdges(i)[0].Kind == induction.RightTop {
			missing = induction.RightBottom
		}
		if _, err := d.Path(i, missing); !rzerr.Is(err, rzerr.ErrCodeInvalidMoveLabel) {
			t.Errorf("vertex %d: error = %v, want INVALID_MOVE_LABEL", i, err)
		}
	}
	if !checked {
		t.Fatal("no vertex with a degenerate move found")
	}
}

func TestPathCompose(t *testing.T) {
	seed := mustPerm(t, "a b c", "c b a", perm.Options{})
	d := mustBuild(t, seed, Options{})

	p, err := d.Path(0, induction.RightTop)
	if err != nil {
		t.Fatalf("Path() error: %v", err)
	}
	q, err := d.Path(p.End(), induction.RightBottom)
	if err != nil {
		t.Fatalf("Path() error: %v", err)
	}
	pq, err := p.Compose(q)
	if err != nil {
		t.Fatalf("Compose() error: %v", err)
	}
	if pq.Len() != 2 {
		t.Errorf("Len() = %d, want 2", pq.Len())
	}

	// Composing in the wrong order fails unless the ends happen to meet.
	if q.Start() != p.Start() {
		if _, err := q.Compose(q); !rzerr.Is(err, rzerr.ErrCodeIncompatiblePath) {
			t.Errorf("error = %v, want INCOMPATIBLE_PATH", err)
		}
	}
}

func TestToDOT(t *testing.T) {
	seed := mustPerm(t, "a b c", "c b a", perm.Options{})
	d := mustBuild(t, seed, Options{})

	dot := ToDOT(d, DotOptions{Detailed: true, Title: "class of a b c / c b a"})
	if !strings.HasPrefix(dot, "digraph rauzy {") {
		t.Errorf("unexpected DOT prefix: %q", dot[:20])
	}
	if !strings.Contains(dot, "a b c\\nc b a") {
		t.Error("detailed labels missing from DOT output")
	}
	if !strings.Contains(dot, "label=\"t\"") {
		t.Error("edge labels missing from DOT output")
	}
}
