package pipeline

import (
	"context"
	"io"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/ietools/rauzy/pkg/cache"
	"github.com/ietools/rauzy/pkg/scenario"
)

func quietRunner(c cache.Cache) *Runner {
	return NewRunner(c, log.NewWithOptions(io.Discard, log.Options{}))
}

func TestExecuteWithNullCache(t *testing.T) {
	r := quietRunner(nil)
	defer r.Close()

	res, err := r.Execute(context.Background(), Options{
		Top:     "a b c d",
		Bottom:  "d c b a",
		Path:    strings.Fields("t t b t b b t b"),
		Formats: []string{FormatDOT, FormatJSON},
		Lengths: map[string]string{"a": "1/4", "b": "1/4", "c": "1/4", "d": "1/4"},
	})
	if err != nil {
		t.Fatalf("Execute() error: %v", err)
	}
	if res.RunID == "" {
		t.Error("run has no ID")
	}
	if res.Stats.VertexCount != 7 || res.Stats.EdgeCount != 14 {
		t.Errorf("diagram size = %d/%d, want 7/14", res.Stats.VertexCount, res.Stats.EdgeCount)
	}
	if res.Path == nil || !res.Path.IsLoop() {
		t.Error("path missing or not a loop")
	}
	if res.Eigenvalue == nil {
		t.Fatal("full loop should carry an eigenvalue")
	}
	if f, _ := res.Eigenvalue.Float64(); f < 4.39 || f > 4.40 {
		t.Errorf("eigenvalue = %v, want about 4.39", f)
	}
	if res.IET == nil {
		t.Error("lengths given but no numeric realization")
	}
	if len(res.Artifacts[FormatDOT]) == 0 || len(res.Artifacts[FormatJSON]) == 0 {
		t.Error("missing artifacts")
	}
	if res.CacheInfo.BuildHit || res.CacheInfo.RenderHit {
		t.Error("null cache reported a hit")
	}
}

func TestExecuteCachesBetweenRuns(t *testing.T) {
	c, err := cache.NewFileCache(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileCache() error: %v", err)
	}
	r := quietRunner(c)
	defer r.Close()

	opts := Options{Top: "a b c", Bottom: "c b a", Formats: []string{FormatJSON}}

	first, err := r.Execute(context.Background(), opts)
	if err != nil {
		t.Fatalf("first Execute() error: %v", err)
	}
	if first.CacheInfo.BuildHit {
		t.Error("first run hit a cold cache")
	}

	second, err := r.Execute(context.Background(), opts)
	if err != nil {
		t.Fatalf("second Execute() error: %v", err)
	}
	if !second.CacheInfo.BuildHit || !second.CacheInfo.RenderHit {
		t.Errorf("second run missed the cache: %+v", second.CacheInfo)
	}

	// Refresh bypasses the cache.
	opts.Refresh = true
	third, err := r.Execute(context.Background(), opts)
	if err != nil {
		t.Fatalf("third Execute() error: %v", err)
	}
	if third.CacheInfo.BuildHit {
		t.Error("refresh run still hit the cache")
	}
}

func TestValidateOptions(t *testing.T) {
	r := quietRunner(nil)
	defer r.Close()

	if _, err := r.Execute(context.Background(), Options{Top: "a b"}); err == nil {
		t.Error("missing bottom row accepted")
	}
	if _, err := r.Execute(context.Background(), Options{
		Top: "a b", Bottom: "b a", Formats: []string{"gif"},
	}); err == nil {
		t.Error("unknown format accepted")
	}
}

func TestFromScenario(t *testing.T) {
	s, err := scenario.Parse([]byte(`
path = ["t"]

[permutation]
top = "a b c"
bottom = "c b a"

[diagram]
left_induction = true
`))
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}
	opts := FromScenario(s)
	if opts.Top != "a b c" || !opts.LeftInduction || len(opts.Path) != 1 {
		t.Errorf("FromScenario() = %+v", opts)
	}
}
