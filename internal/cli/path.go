package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ietools/rauzy/pkg/diagram"
	"github.com/ietools/rauzy/pkg/eigen"
)

// newPathCmd creates the path command, which walks a move sequence from
// the seed vertex and reports the path invariants.
func newPathCmd() *cobra.Command {
	var (
		seed  seedFlags
		moves diagramFlags
	)

	cmd := &cobra.Command{
		Use:   "path TOP BOTTOM MOVE...",
		Short: "Walk an induction path and print its matrix",
		Example: `  rauzy path "a b c d" "d c b a" t t b t b b t b
  rauzy path "a b c" "c b a" t b --left`,
		Args: cobra.MinimumNArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFromContext(cmd.Context())

			p, err := seed.perm(args[0], args[1])
			if err != nil {
				return err
			}
			prog := newProgress(logger)
			d, err := diagram.Build(p, buildOptions(moves))
			if err != nil {
				return err
			}
			prog.done(fmt.Sprintf("explored %d vertices", d.NumVertices()))

			walk, err := d.PathFromTokens(0, args[2:])
			if err != nil {
				return err
			}

			printKeyValue("path", walk.String())
			printKeyValue("end vertex", fmt.Sprintf("%d", walk.End()))
			printKeyValue("loop", fmt.Sprintf("%v", walk.IsLoop()))
			printKeyValue("full", fmt.Sprintf("%v", walk.IsFull()))
			fmt.Println(StyleDim.Render("matrix"))
			for _, line := range strings.Split(walk.Matrix().String(), "\n") {
				fmt.Println("  " + StyleValue.Render(line))
			}

			if walk.IsLoop() && walk.IsFull() {
				lambda, _, err := eigen.Perron(walk.Matrix())
				if err != nil {
					return err
				}
				f, _ := lambda.Float64()
				printKeyValue("eigenvalue", StyleNumber.Render(fmt.Sprintf("%.12f", f)))
			}
			return nil
		},
	}

	seed.register(cmd)
	moves.register(cmd)
	return cmd
}

func buildOptions(f diagramFlags) diagram.Options {
	return diagram.Options{
		LeftInduction:         f.left,
		DisableRightInduction: f.noRight,
		LeftRightInversion:    f.lr,
		TopBottomInversion:    f.tb,
		Symmetric:             f.symmetric,
		MaxVertices:           f.maxVertices,
	}
}
