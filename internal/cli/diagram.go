package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/ietools/rauzy/pkg/pipeline"
)

// newDiagramCmd creates the diagram command, which explores the Rauzy
// diagram of a seed permutation and writes the requested artifacts.
func newDiagramCmd() *cobra.Command {
	var (
		seed     seedFlags
		moves    diagramFlags
		caching  cacheFlags
		formats  []string
		output   string
		detailed bool
		refresh  bool
	)

	cmd := &cobra.Command{
		Use:   "diagram TOP BOTTOM",
		Short: "Explore the Rauzy diagram of a permutation",
		Example: `  rauzy diagram "a b c d" "d c b a"
  rauzy diagram "a b b" "c c a" --reduced --format svg -o out`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			logger := loggerFromContext(ctx)

			store, err := caching.open(ctx)
			if err != nil {
				return fmt.Errorf("open cache: %w", err)
			}
			runner := pipeline.NewRunner(store, logger)
			defer runner.Close()

			opts := pipeline.Options{
				Top:      args[0],
				Bottom:   args[1],
				Reduced:  seed.reduced,
				Flips:    seed.flips,
				Formats:  formats,
				Detailed: detailed,
				Refresh:  refresh,
				Logger:   logger,
			}
			moves.apply(&opts)

			spin := newSpinner(ctx, "exploring diagram")
			spin.Start()
			res, err := runner.Execute(ctx, opts)
			if err != nil {
				spin.StopWithError("exploration failed")
				return err
			}
			spin.StopWithSuccess(fmt.Sprintf("diagram of %s / %s", args[0], args[1]))
			printStats(res.Stats.VertexCount, res.Stats.EdgeCount, res.CacheInfo.BuildHit)

			return writeArtifacts(res, output)
		},
	}

	seed.register(cmd)
	moves.register(cmd)
	caching.register(cmd)
	cmd.Flags().StringSliceVar(&formats, "format", []string{pipeline.FormatDOT}, "output formats (dot, svg, png, json)")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output basename; artifacts get the format as extension")
	cmd.Flags().BoolVar(&detailed, "detailed", false, "label vertices with their rows")
	cmd.Flags().BoolVar(&refresh, "refresh", false, "bypass the cache")

	return cmd
}

// writeArtifacts stores rendered outputs next to the output basename, or
// prints them to stdout when no basename is given.
func writeArtifacts(res *pipeline.Result, output string) error {
	for format, data := range res.Artifacts {
		if output == "" {
			os.Stdout.Write(data)
			continue
		}
		path := output + "." + format
		if dir := filepath.Dir(path); dir != "." {
			if err := os.MkdirAll(dir, 0755); err != nil {
				return err
			}
		}
		if err := os.WriteFile(path, data, 0644); err != nil {
			return fmt.Errorf("write %s: %w", path, err)
		}
		printFile(path)
	}
	return nil
}
