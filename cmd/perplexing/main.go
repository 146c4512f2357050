// Command perplexing generates Perplexing Wires modules, exports their wire
// meshes and plays them from the terminal.
package main

import (
	"fmt"
	"os"

	"github.com/katalvlaran/perplexing/config"
	"github.com/katalvlaran/perplexing/metrics"
	"github.com/katalvlaran/perplexing/puzzle"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// app carries the state shared by every subcommand.
type app struct {
	// flags
	configPath  string
	seed        int64
	verbose     bool
	metricsFile string

	cfg      *config.Config
	logger   *zap.Logger
	registry *prometheus.Registry
	metrics  *metrics.Collector
}

// newRootCmd wires the subcommands to one shared app. Configuration, logger
// and metrics are built in PersistentPreRunE, after flags are parsed.
func newRootCmd() *cobra.Command {
	a := &app{logger: zap.NewNop()}

	root := &cobra.Command{
		Use:           "perplexing",
		Short:         "Perplexing Wires puzzle generator",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			_ = a.logger.Sync()
			if a.metricsFile == "" {
				return nil
			}
			return prometheus.WriteToTextfile(a.metricsFile, a.registry)
		},
	}

	root.PersistentFlags().StringVar(&a.configPath, "config", "perplexing.yaml", "configuration file")
	root.PersistentFlags().Int64Var(&a.seed, "seed", 0, "puzzle seed (overrides the configuration)")
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "debug logging")
	root.PersistentFlags().StringVar(&a.metricsFile, "metrics-file", "", "write Prometheus metrics to this file on exit")

	root.AddCommand(newGenerateCmd(a), newMeshCmd(a), newPlayCmd(a))
	return root
}

// setup loads configuration and builds the logger and metrics.
func (a *app) setup(cmd *cobra.Command) error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	// precedence: --seed, then PERPLEXING_SEED, then the file
	if cmd.Flags().Changed("seed") {
		cfg.Seed = a.seed
	}
	a.cfg = cfg

	zcfg := zap.NewProductionConfig()
	zcfg.Level = zap.NewAtomicLevelAt(cfg.Level())
	if a.verbose {
		zcfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	logger, err := zcfg.Build()
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	a.logger = logger

	a.registry = prometheus.NewRegistry()
	a.metrics, err = metrics.NewCollector(a.registry)
	return err
}

// generate draws the puzzle selected by the configuration.
func (a *app) generate() (*puzzle.Puzzle, error) {
	g, err := puzzle.NewGenerator(a.cfg.StaticEdgework(),
		puzzle.WithSeed(a.cfg.Seed),
		puzzle.WithMaxAttempts(a.cfg.MaxAttempts),
		puzzle.WithLogger(a.logger),
		puzzle.WithMetrics(a.metrics),
	)
	if err != nil {
		return nil, err
	}
	return g.Generate()
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
