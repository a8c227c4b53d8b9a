package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ietools/rauzy/pkg/perm"
)

// newPermsCmd creates the perms command, which enumerates the interval
// exchange permutations on a given number of letters.
func newPermsCmd() *cobra.Command {
	var (
		reduced     bool
		irreducible bool
		alphabet    []string
	)

	cmd := &cobra.Command{
		Use:   "perms N",
		Short: "Enumerate interval exchange permutations on N letters",
		Example: `  rauzy perms 3 --reduced --irreducible
  rauzy perms 2 --alphabet x,y`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("parse letter count %q: %w", args[0], err)
			}

			it, err := perm.Iterate(n, perm.IterateOptions{
				Reduced:     reduced,
				Irreducible: irreducible,
				Alphabet:    alphabet,
			})
			if err != nil {
				return err
			}

			count := 0
			for {
				p, ok := it.Next()
				if !ok {
					break
				}
				count++
				fmt.Println(StyleValue.Render(strings.ReplaceAll(p.String(), "\n", " / ")))
			}
			printInfo("%d permutations", count)
			return nil
		},
	}

	cmd.Flags().BoolVar(&reduced, "reduced", false, "enumerate reduced classes instead of labelled pairs")
	cmd.Flags().BoolVar(&irreducible, "irreducible", false, "skip permutations that split into smaller exchanges")
	cmd.Flags().StringSliceVar(&alphabet, "alphabet", nil, "labels to use (default: a, b, c, ...)")
	return cmd
}
