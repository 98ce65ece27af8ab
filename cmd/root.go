package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/zxfonline/unirand/config"
	"github.com/zxfonline/unirand/log"
)

// options collected from the config file and flags
type options struct {
	cfgFile  string
	logLevel string
	cfg      *config.Config
}

// newRootCmd builds the command tree. A fresh tree per run keeps flag state
// from leaking between invocations.
func newRootCmd() *cobra.Command {
	opts := &options{}
	rootCmd := &cobra.Command{
		Use:   "unirand",
		Short: "Marsaglia universal random number generator.",
		Long: `Marsaglia universal random number generator.
Reproducible uniform values in [0,1) from a single seed in [0, 900000000], For example:
  unirand gen --seed=170 --count=5
  unirand stats --seed=170 --count=10000
  unirand decompose --seed=900000000`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.load(cmd)
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVarP(&opts.cfgFile, "config", "c", "", "yaml config file")
	flags.StringVar(&opts.logLevel, "log-level", "", "log level (trace, debug, info, warn, error)")
	flags.Int32P("seed", "s", 170, "generator seed in [0, 900000000]")

	rootCmd.AddCommand(newGenCmd(opts))
	rootCmd.AddCommand(newStatsCmd(opts))
	rootCmd.AddCommand(newDecomposeCmd(opts))
	return rootCmd
}

// load reads the config file, if any, then lets explicitly set flags win.
func (o *options) load(cmd *cobra.Command) error {
	o.cfg = config.New()
	if o.cfgFile != "" {
		if _, err := config.InitConfig(o.cfgFile); err != nil {
			return err
		}
		o.cfg = config.Default()
	}

	level := o.cfg.LogLevel
	if o.logLevel != "" {
		level = o.logLevel
	}
	if err := log.SetLevel(level); err != nil {
		return fmt.Errorf("log level: %w", err)
	}

	flags := cmd.Flags()
	if flags.Changed("seed") {
		seed, err := flags.GetInt32("seed")
		if err != nil {
			return err
		}
		o.cfg.Seed = seed
	}
	// without a config file the subcommand's own default count applies
	if f := flags.Lookup("count"); f != nil && (f.Changed || o.cfgFile == "") {
		count, err := flags.GetInt("count")
		if err != nil {
			return err
		}
		o.cfg.Count = count
	}
	if f := flags.Lookup("format"); f != nil && f.Changed {
		o.cfg.Format = f.Value.String()
	}
	if err := o.cfg.Validate(); err != nil {
		return err
	}
	log.Debugf("unirand: seed=%d count=%d format=%s", o.cfg.Seed, o.cfg.Count, o.cfg.Format)
	return nil
}

// Execute runs the command line and exits non-zero on failure.
func Execute() {
	if err := newRootCmd().Execute(); err != nil {
		log.Errorf("%v", err)
		os.Exit(1)
	}
}
