package cmd

import (
	"fmt"
	"math"

	"github.com/spf13/cobra"

	"github.com/zxfonline/unirand/random"
)

// summary of a run of generated values
type summary struct {
	Count    int
	Mean     float64
	Variance float64
	Min      float32
	Max      float32
}

func summarize(src random.Source, count int) summary {
	s := summary{Count: count, Min: 1, Max: 0}
	if count == 0 {
		s.Min = 0
		return s
	}
	var mean, m2 float64
	for n := 1; n <= count; n++ {
		v := src.Next()
		if v < s.Min {
			s.Min = v
		}
		if v > s.Max {
			s.Max = v
		}
		// Welford
		d := float64(v) - mean
		mean += d / float64(n)
		m2 += d * (float64(v) - mean)
	}
	s.Mean = mean
	s.Variance = m2 / float64(count)
	return s
}

func newStatsCmd(opts *options) *cobra.Command {
	statsCmd := &cobra.Command{
		Use:   "stats",
		Short: "Summarize generated values",
		Long: `Draw values from a seeded generator and print count, mean, variance, min and max.
A uniform stream has mean near 0.5 and variance near 1/12, For example:
  unirand stats --seed=170 --count=10000`,
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := random.NewUniversalSeed(opts.cfg.Seed)
			if err != nil {
				return err
			}
			s := summarize(g, opts.cfg.Count)
			_, err = fmt.Fprintf(cmd.OutOrStdout(),
				"seed=%d count=%d mean=%.6f variance=%.6f (uniform %.6f) min=%v max=%v\n",
				opts.cfg.Seed, s.Count, s.Mean, s.Variance, 1.0/12, s.Min, s.Max)
			if err != nil {
				return err
			}
			if s.Count > 0 && math.Abs(s.Mean-0.5) > 0.01 {
				fmt.Fprintf(cmd.ErrOrStderr(), "warning: mean %.6f is more than 0.01 from 0.5\n", s.Mean)
			}
			return nil
		},
	}

	statsCmd.Flags().IntP("count", "n", 10000, "number of values")
	return statsCmd
}
