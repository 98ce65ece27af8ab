package cmd

import (
	"bufio"
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/zxfonline/unirand/config"
	"github.com/zxfonline/unirand/random"
)

func newGenCmd(opts *options) *cobra.Command {
	genCmd := &cobra.Command{
		Use:   "gen",
		Short: "Print generated values",
		Long: `Print values from a seeded generator, one per line, For example:
  unirand gen --seed=170
  unirand gen --seed=170 --count=1000 --format=hex`,
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := random.NewUniversalSeed(opts.cfg.Seed)
			if err != nil {
				return err
			}
			return writeValues(cmd.OutOrStdout(), g, opts.cfg.Count, opts.cfg.Format)
		},
	}

	flags := genCmd.Flags()
	flags.IntP("count", "n", 1, "number of values")
	flags.StringP("format", "f", config.FORMAT_FLOAT, "output format (float, int24, hex)")
	return genCmd
}

func formatValue(v float32, format string) string {
	switch format {
	case config.FORMAT_INT24:
		return strconv.FormatUint(uint64(v*(1<<24)), 10)
	case config.FORMAT_HEX:
		return fmt.Sprintf("%06x", uint32(v*(1<<24)))
	}
	return strconv.FormatFloat(float64(v), 'f', -1, 32)
}

func writeValues(w io.Writer, src random.Source, count int, format string) error {
	bw := bufio.NewWriter(w)
	for n := 0; n < count; n++ {
		if _, err := bw.WriteString(formatValue(src.Next(), format)); err != nil {
			return err
		}
		if err := bw.WriteByte('\n'); err != nil {
			return err
		}
	}
	return bw.Flush()
}
