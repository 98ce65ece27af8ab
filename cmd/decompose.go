package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/zxfonline/unirand/random"
)

func newDecomposeCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "decompose",
		Short: "Show the sub-seeds of a seed",
		Long: `Split a seed into the four sub-seeds i, j, k, l that initialise the generator, For example:
  unirand decompose --seed=170`,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := random.Decompose(opts.cfg.Seed)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "seed=%d i=%d j=%d k=%d l=%d\n",
				opts.cfg.Seed, s.I, s.J, s.K, s.L)
			return err
		},
	}
}
