package pipeline

import (
	"context"
	"fmt"
	"math/big"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/ietools/rauzy/pkg/cache"
	"github.com/ietools/rauzy/pkg/diagram"
	"github.com/ietools/rauzy/pkg/eigen"
	"github.com/ietools/rauzy/pkg/graphio"
	"github.com/ietools/rauzy/pkg/iet"
	"github.com/ietools/rauzy/pkg/intmat"
	"github.com/ietools/rauzy/pkg/perm"
	"github.com/ietools/rauzy/pkg/subst"
)

// Result contains the outputs of a pipeline run.
type Result struct {
	// RunID identifies the run in logs.
	RunID string

	// Diagram is the explored graph.
	Diagram *diagram.Diagram

	// Path holds the analyzed walk, nil when none was requested.
	Path *diagram.Path

	// Matrix, Substitution and Eigenvalue are the path invariants.
	// Eigenvalue is set only for full loops.
	Matrix       intmat.Matrix
	Substitution *subst.Substitution
	Eigenvalue   *big.Float

	// IET is the numeric realization, nil when no lengths were given.
	IET *iet.IET

	// Artifacts contains rendered outputs keyed by format.
	Artifacts map[string][]byte

	// Stats contains timing and size information.
	Stats Stats

	// CacheInfo tracks which stages hit the cache.
	CacheInfo CacheInfo
}

// Stats contains pipeline execution statistics.
type Stats struct {
	VertexCount int
	EdgeCount   int
	BuildTime   time.Duration
	AnalyzeTime time.Duration
	RenderTime  time.Duration
}

// CacheInfo tracks cache hits for each pipeline stage.
type CacheInfo struct {
	BuildHit  bool
	RenderHit bool
}

// Runner executes the pipeline with caching. It is stateless apart from
// the cache and logger, so one Runner can serve concurrent runs.
type Runner struct {
	Cache  cache.Cache
	Logger *log.Logger
}

// NewRunner creates a runner. A nil cache disables caching and a nil
// logger falls back to the default logger.
func NewRunner(c cache.Cache, logger *log.Logger) *Runner {
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{Cache: c, Logger: logger}
}

// Execute runs the complete build → analyze → render pipeline.
func (r *Runner) Execute(ctx context.Context, opts Options) (*Result, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}

	result := &Result{
		RunID:     uuid.NewString(),
		Artifacts: make(map[string][]byte),
	}
	base := r.Logger
	if opts.Logger != nil {
		base = opts.Logger
	}
	logger := base.With("run", result.RunID)

	buildStart := time.Now()
	d, buildHit, err := r.BuildWithCacheInfo(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("build: %w", err)
	}
	result.Diagram = d
	result.Stats.BuildTime = time.Since(buildStart)
	result.Stats.VertexCount = d.NumVertices()
	result.Stats.EdgeCount = d.NumEdges()
	result.CacheInfo.BuildHit = buildHit

	logger.Info("built diagram",
		"vertices", d.NumVertices(),
		"edges", d.NumEdges(),
		"duration", result.Stats.BuildTime)

	analyzeStart := time.Now()
	if err := r.analyze(d, opts, logger, result); err != nil {
		return nil, fmt.Errorf("analyze: %w", err)
	}
	result.Stats.AnalyzeTime = time.Since(analyzeStart)

	renderStart := time.Now()
	artifacts, renderHit, err := r.RenderWithCacheInfo(ctx, d, opts)
	if err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	result.Artifacts = artifacts
	result.Stats.RenderTime = time.Since(renderStart)
	result.CacheInfo.RenderHit = renderHit

	logger.Info("rendered outputs",
		"formats", opts.Formats,
		"duration", result.Stats.RenderTime)

	return result, nil
}

// BuildWithCacheInfo explores the diagram, consulting the cache first.
func (r *Runner) BuildWithCacheInfo(ctx context.Context, opts Options) (*diagram.Diagram, bool, error) {
	seed, err := r.seed(opts)
	if err != nil {
		return nil, false, err
	}
	dopts := diagramOptions(opts)
	key := cache.DiagramKey(seed.Key(), dopts)

	if !opts.Refresh {
		if data, hit, err := r.Cache.Get(ctx, key); err == nil && hit {
			if doc, err := graphio.Unmarshal(data); err == nil {
				if d, err := graphio.Rebuild(doc); err == nil {
					return d, true, nil
				}
			}
		}
	}

	d, err := diagram.Build(seed, dopts)
	if err != nil {
		return nil, false, err
	}

	if data, err := graphio.Marshal(graphio.FromDiagram(d, dopts)); err == nil {
		_ = r.Cache.Set(ctx, key, data, TTLDiagram)
	}
	return d, false, nil
}

// Build is a convenience wrapper discarding the cache hit info.
func (r *Runner) Build(ctx context.Context, opts Options) (*diagram.Diagram, error) {
	d, _, err := r.BuildWithCacheInfo(ctx, opts)
	return d, err
}

// analyze walks the requested path and realizes the numeric lengths.
func (r *Runner) analyze(d *diagram.Diagram, opts Options, logger *log.Logger, result *Result) error {
	if len(opts.Path) > 0 {
		p, err := d.PathFromTokens(0, opts.Path)
		if err != nil {
			return err
		}
		result.Path = p
		result.Matrix = p.Matrix()
		result.Substitution = p.OrbitSubstitution()

		if p.IsLoop() && p.IsFull() {
			lambda, _, err := eigen.Perron(result.Matrix)
			if err != nil {
				return err
			}
			result.Eigenvalue = lambda
			f, _ := lambda.Float64()
			logger.Info("full loop", "eigenvalue", f)
		}
	}

	if len(opts.Lengths) > 0 {
		t, err := iet.FromStrings(d.Seed(), opts.Lengths)
		if err != nil {
			return err
		}
		result.IET = t
	}
	return nil
}

// RenderWithCacheInfo generates artifacts with per-format caching.
func (r *Runner) RenderWithCacheInfo(ctx context.Context, d *diagram.Diagram, opts Options) (map[string][]byte, bool, error) {
	seed, err := r.seed(opts)
	if err != nil {
		return nil, false, err
	}
	dopts := diagramOptions(opts)
	diagramKey := cache.DiagramKey(seed.Key(), dopts)

	artifacts := make(map[string][]byte)
	allCached := true
	if !opts.Refresh {
		for _, format := range opts.Formats {
			key := cache.ArtifactKey(diagramKey, format)
			if data, hit, err := r.Cache.Get(ctx, key); err == nil && hit {
				artifacts[format] = data
			} else {
				allCached = false
				break
			}
		}
		if allCached && len(artifacts) == len(opts.Formats) {
			return artifacts, true, nil
		}
	}

	dot := diagram.ToDOT(d, diagram.DotOptions{Detailed: opts.Detailed})
	for _, format := range opts.Formats {
		var data []byte
		var err error
		switch format {
		case FormatDOT:
			data = []byte(dot)
		case FormatSVG:
			data, err = diagram.RenderSVG(ctx, dot)
		case FormatPNG:
			data, err = diagram.RenderPNG(ctx, dot)
		case FormatJSON:
			data, err = graphio.Marshal(graphio.FromDiagram(d, dopts))
		}
		if err != nil {
			return nil, false, fmt.Errorf("render %s: %w", format, err)
		}
		artifacts[format] = data
		_ = r.Cache.Set(ctx, cache.ArtifactKey(diagramKey, format), data, TTLArtifact)
	}
	return artifacts, false, nil
}

// Close releases resources held by the runner (primarily the cache).
func (r *Runner) Close() error {
	if r.Cache != nil {
		return r.Cache.Close()
	}
	return nil
}

func (r *Runner) seed(opts Options) (*perm.Permutation, error) {
	return perm.FromString(opts.Top, opts.Bottom, perm.Options{
		Reduced: opts.Reduced,
		Flips:   opts.Flips,
	})
}

func diagramOptions(opts Options) diagram.Options {
	return diagram.Options{
		LeftInduction:         opts.LeftInduction,
		DisableRightInduction: opts.DisableRightInduction,
		LeftRightInversion:    opts.LeftRightInversion,
		TopBottomInversion:    opts.TopBottomInversion,
		Symmetric:             opts.Symmetric,
		MaxVertices:           opts.MaxVertices,
	}
}
