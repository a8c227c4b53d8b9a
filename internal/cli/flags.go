package cli

import (
	"context"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/ietools/rauzy/pkg/cache"
	"github.com/ietools/rauzy/pkg/perm"
	"github.com/ietools/rauzy/pkg/pipeline"
)

// seedFlags configure how the seed permutation is built from the two
// positional row arguments.
type seedFlags struct {
	reduced bool
	flips   []string
}

func (f *seedFlags) register(cmd *cobra.Command) {
	cmd.Flags().BoolVar(&f.reduced, "reduced", false, "work with reduced (relabeling-invariant) permutations")
	cmd.Flags().StringSliceVar(&f.flips, "flip", nil, "letters with reversed orientation")
}

func (f *seedFlags) perm(top, bottom string) (*perm.Permutation, error) {
	return perm.FromString(top, bottom, perm.Options{Reduced: f.reduced, Flips: f.flips})
}

// diagramFlags mirror the diagram build switches.
type diagramFlags struct {
	left        bool
	noRight     bool
	lr          bool
	tb          bool
	symmetric   bool
	maxVertices int
}

func (f *diagramFlags) register(cmd *cobra.Command) {
	cmd.Flags().BoolVar(&f.left, "left", false, "enable left induction moves")
	cmd.Flags().BoolVar(&f.noRight, "no-right", false, "disable right induction moves")
	cmd.Flags().BoolVar(&f.lr, "lr", false, "enable the left-right inversion")
	cmd.Flags().BoolVar(&f.tb, "tb", false, "enable the top-bottom inversion")
	cmd.Flags().BoolVar(&f.symmetric, "symmetric", false, "enable the symmetric move")
	cmd.Flags().IntVar(&f.maxVertices, "max-vertices", 0, "abort exploration beyond this many vertices")
}

func (f *diagramFlags) apply(opts *pipeline.Options) {
	opts.LeftInduction = f.left
	opts.DisableRightInduction = f.noRight
	opts.LeftRightInversion = f.lr
	opts.TopBottomInversion = f.tb
	opts.Symmetric = f.symmetric
	opts.MaxVertices = f.maxVertices
}

// cacheFlags select the cache backend.
type cacheFlags struct {
	dir     string
	redis   string
	noCache bool
}

func (f *cacheFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.dir, "cache-dir", "", "file cache directory (default: user cache dir)")
	cmd.Flags().StringVar(&f.redis, "redis", "", "Redis address for a shared cache (host:port)")
	cmd.Flags().BoolVar(&f.noCache, "no-cache", false, "disable caching")
}

func (f *cacheFlags) open(ctx context.Context) (cache.Cache, error) {
	if f.noCache {
		return cache.NewNullCache(), nil
	}
	if f.redis != "" {
		return cache.NewRedisCache(ctx, f.redis)
	}
	dir := f.dir
	if dir == "" {
		var err error
		dir, err = defaultCacheDir()
		if err != nil {
			return nil, err
		}
	}
	return cache.NewFileCache(dir)
}

func defaultCacheDir() (string, error) {
	base, err := os.UserCacheDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(base, "rauzy"), nil
}
