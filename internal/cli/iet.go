package cli

import (
	"math/big"
	"strings"

	"github.com/spf13/cobra"

	rzerr "github.com/ietools/rauzy/pkg/errors"
	"github.com/ietools/rauzy/pkg/iet"
)

// newIETCmd creates the iet command, which realizes a permutation as a
// numeric interval exchange and runs operations on it.
func newIETCmd() *cobra.Command {
	var (
		seed    seedFlags
		lengths []string
		steps   int
		point   string
		code    int
	)

	cmd := &cobra.Command{
		Use:   "iet TOP BOTTOM",
		Short: "Run a numeric interval exchange transformation",
		Example: `  rauzy iet "a b" "b a" --length a=1/3 --length b=2/3 --point 0 --code 10
  rauzy iet "a b c" "c b a" --length a=1/2 --length b=1/3 --length c=1/6 --steps 5`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := seed.perm(args[0], args[1])
			if err != nil {
				return err
			}
			parsed, err := parseLengths(lengths)
			if err != nil {
				return err
			}
			t, err := iet.FromStrings(p, parsed)
			if err != nil {
				return err
			}

			printKeyValue("total", t.Total().RatString())

			if steps > 0 {
				moved, done, err := t.RauzyMove(steps)
				if err != nil && !rzerr.Is(err, rzerr.ErrCodeDegenerateInduction) {
					return err
				}
				if done < steps {
					printInfo("induction degenerated after %d of %d steps", done, steps)
				}
				printKeyValue("induced", strings.ReplaceAll(moved.String(), "\n", " / "))
			}

			if point != "" {
				x, ok := new(big.Rat).SetString(point)
				if !ok {
					return rzerr.New(rzerr.ErrCodeInvalidLengthValue, "cannot parse point %q", point)
				}
				y, err := t.Apply(x)
				if err != nil {
					return err
				}
				printKeyValue("image", y.RatString())
				if code > 0 {
					word, err := t.Coding(x, code)
					if err != nil {
						return err
					}
					printKeyValue("coding", strings.Join(word, " "))
				}
			}
			return nil
		},
	}

	seed.register(cmd)
	cmd.Flags().StringArrayVar(&lengths, "length", nil, "interval length as letter=value (repeatable)")
	cmd.Flags().IntVar(&steps, "steps", 0, "apply this many Rauzy induction steps")
	cmd.Flags().StringVar(&point, "point", "", "apply the exchange to this point")
	cmd.Flags().IntVar(&code, "code", 0, "emit this many symbols of the point's orbit coding")
	return cmd
}

func parseLengths(pairs []string) (map[string]string, error) {
	out := make(map[string]string, len(pairs))
	for _, pair := range pairs {
		letter, value, ok := strings.Cut(pair, "=")
		if !ok || letter == "" || value == "" {
			return nil, rzerr.New(rzerr.ErrCodeInvalidInput, "length %q is not letter=value", pair)
		}
		out[letter] = value
	}
	return out, nil
}
