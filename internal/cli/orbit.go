package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ietools/rauzy/pkg/flipseq"
)

// newOrbitCmd creates the orbit command, which derives the orbit
// substitution of a move sequence and optionally a fixed point prefix.
func newOrbitCmd() *cobra.Command {
	var (
		seed   seedFlags
		letter string
		prefix int
	)

	cmd := &cobra.Command{
		Use:   "orbit TOP BOTTOM MOVE...",
		Short: "Derive the orbit substitution of a move sequence",
		Example: `  rauzy orbit "a b c d" "d c b a" t t b t b b t b
  rauzy orbit "a b c d" "d c b a" t t b t b b t b --letter d --prefix 40`,
		Args: cobra.MinimumNArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := seed.perm(args[0], args[1])
			if err != nil {
				return err
			}
			seq, err := flipseq.FromTokens(p, args[2:])
			if err != nil {
				return err
			}

			signed := seq.Substitution()
			fmt.Println(StyleDim.Render("substitution"))
			for _, line := range strings.Split(signed.String(), "\n") {
				fmt.Println("  " + StyleValue.Render(line))
			}
			printKeyValue("end", strings.ReplaceAll(seq.End().String(), "\n", " / "))

			if letter != "" {
				it, err := signed.Forget().FixedPoint(letter)
				if err != nil {
					return err
				}
				word := strings.Join(it.Take(prefix), "")
				printKeyValue("fixed point", word)
			}
			return nil
		},
	}

	seed.register(cmd)
	cmd.Flags().StringVar(&letter, "letter", "", "emit the fixed point starting at this letter")
	cmd.Flags().IntVar(&prefix, "prefix", 40, "number of fixed point letters to emit")
	return cmd
}
