package main

import (
	"fmt"
	"io"
	"math"
	"strconv"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/percolation/internal/config"
	"github.com/katalvlaran/percolation/montecarlo"
)

// cli holds the flag values and the logger shared by the subcommands.
type cli struct {
	configPath string
	logLevel   string
	size       int
	trials     int
	seed       int64
	workers    int

	logger *zap.Logger
}

func newRootCmd() *cobra.Command {
	c := &cli{logger: zap.NewNop()}

	root := &cobra.Command{
		Use:   "percolation",
		Short: "Estimate the percolation threshold of an n×n grid",
		Long: `percolation opens random sites of an n×n grid until a path of open
sites links the top row to the bottom row, repeats the experiment, and
reports the sample mean, standard deviation and 95% confidence interval of
the fraction of open sites at that moment.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return c.initLogger()
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = c.logger.Sync()
		},
	}
	root.PersistentFlags().StringVarP(&c.configPath, "config", "c", "percolation.yaml", "YAML run configuration (missing file means defaults)")
	root.PersistentFlags().StringVarP(&c.logLevel, "log-level", "l", "", "log level: debug, info, warn, error (overrides config)")

	root.AddCommand(c.runCmd())
	return root
}

func (c *cli) runCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run [size trials]",
		Short: "Run the Monte Carlo experiment and print its summary",
		Args:  cobra.RangeArgs(0, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := c.resolve(cmd, args)
			if err != nil {
				return err
			}
			return c.run(cmd.OutOrStdout(), cfg)
		},
	}
	cmd.Flags().IntVarP(&c.size, "size", "n", 0, "grid side length n")
	cmd.Flags().IntVarP(&c.trials, "trials", "t", 0, "number of trials")
	cmd.Flags().Int64Var(&c.seed, "seed", 0, "random seed (0 = default seed)")
	cmd.Flags().IntVarP(&c.workers, "workers", "w", 0, "trials run concurrently")
	return cmd
}

// initLogger builds the production zap logger at the configured level.
func (c *cli) initLogger() error {
	cfg, err := config.Load(c.configPath)
	if err != nil {
		return err
	}
	if c.logLevel != "" {
		cfg.Logging.Level = c.logLevel
	}
	lvl, err := cfg.Logging.ZapLevel()
	if err != nil {
		return err
	}
	zc := zap.NewProductionConfig()
	zc.Level = zap.NewAtomicLevelAt(lvl)
	logger, err := zc.Build()
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	c.logger = logger
	return nil
}

// resolve layers config file, positional arguments and explicitly set flags.
func (c *cli) resolve(cmd *cobra.Command, args []string) (*config.Config, error) {
	cfg, err := config.Load(c.configPath)
	if err != nil {
		return nil, err
	}
	if len(args) == 1 {
		return nil, fmt.Errorf("%w: expected both size and trials, got %q", config.ErrInvalidConfig, args[0])
	}
	if len(args) == 2 {
		if cfg.Grid.Size, err = strconv.Atoi(args[0]); err != nil {
			return nil, fmt.Errorf("%w: size %q: %w", config.ErrInvalidConfig, args[0], err)
		}
		if cfg.Trials, err = strconv.Atoi(args[1]); err != nil {
			return nil, fmt.Errorf("%w: trials %q: %w", config.ErrInvalidConfig, args[1], err)
		}
	}
	flags := cmd.Flags()
	if flags.Changed("size") {
		cfg.Grid.Size = c.size
	}
	if flags.Changed("trials") {
		cfg.Trials = c.trials
	}
	if flags.Changed("seed") {
		cfg.Seed = c.seed
	}
	if flags.Changed("workers") {
		cfg.Workers = c.workers
	}
	if c.logLevel != "" {
		cfg.Logging.Level = c.logLevel
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *cli) run(w io.Writer, cfg *config.Config) error {
	n := cfg.Grid.Size
	c.logger.Info("starting experiment",
		zap.Int("n", n),
		zap.Int("trials", cfg.Trials),
		zap.Int64("seed", cfg.Seed),
		zap.Int("workers", cfg.Workers),
	)

	opts := montecarlo.DefaultOptions()
	opts.Seed = cfg.Seed
	opts.Workers = cfg.Workers
	opts.Logger = c.logger
	st, err := montecarlo.Run(n, cfg.Trials, opts)
	if err != nil {
		return err
	}

	fmt.Fprintf(w, "grid                    = %d×%d (%s sites), %s trials\n",
		n, n, humanize.Comma(int64(n)*int64(n)), humanize.Comma(int64(cfg.Trials)))
	fmt.Fprintf(w, "mean                    = %s\n", formatFloat(st.Mean()))
	fmt.Fprintf(w, "stddev                  = %s\n", formatFloat(st.Stddev()))
	fmt.Fprintf(w, "95%% confidence interval = [%s, %s]\n",
		formatFloat(st.ConfidenceLo()), formatFloat(st.ConfidenceHi()))
	return nil
}

func formatFloat(v float64) string {
	if math.IsNaN(v) {
		return "NaN"
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}
