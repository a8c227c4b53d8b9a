package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ietools/rauzy/pkg/pipeline"
	"github.com/ietools/rauzy/pkg/scenario"
)

// newRunCmd creates the run command, which executes a TOML scenario file
// through the full pipeline.
func newRunCmd() *cobra.Command {
	var (
		caching cacheFlags
		formats []string
		output  string
		refresh bool
	)

	cmd := &cobra.Command{
		Use:     "run SCENARIO",
		Short:   "Execute a scenario file",
		Example: `  rauzy run examples/symmetric4.toml -o out --format svg`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			logger := loggerFromContext(ctx)

			s, err := scenario.Load(args[0])
			if err != nil {
				return err
			}
			if s.Name != "" {
				printInfo("scenario: %s", StyleTitle.Render(s.Name))
			}

			store, err := caching.open(ctx)
			if err != nil {
				return fmt.Errorf("open cache: %w", err)
			}
			runner := pipeline.NewRunner(store, logger)
			defer runner.Close()

			opts := pipeline.FromScenario(s)
			opts.Logger = logger
			opts.Refresh = refresh
			if len(formats) > 0 {
				opts.Formats = formats
			}

			res, err := runner.Execute(ctx, opts)
			if err != nil {
				return err
			}
			printStats(res.Stats.VertexCount, res.Stats.EdgeCount, res.CacheInfo.BuildHit)

			if res.Path != nil {
				printKeyValue("path", res.Path.String())
				printKeyValue("loop", fmt.Sprintf("%v", res.Path.IsLoop()))
				if res.Eigenvalue != nil {
					f, _ := res.Eigenvalue.Float64()
					printKeyValue("eigenvalue", fmt.Sprintf("%.12f", f))
				}
			}
			if res.IET != nil {
				printKeyValue("total", res.IET.Total().RatString())
			}

			return writeArtifacts(res, output)
		},
	}

	caching.register(cmd)
	cmd.Flags().StringSliceVar(&formats, "format", nil, "override the output formats")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output basename; artifacts get the format as extension")
	cmd.Flags().BoolVar(&refresh, "refresh", false, "bypass the cache")
	return cmd
}
