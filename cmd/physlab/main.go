package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/san-kum/physlab/internal/config"
	"github.com/san-kum/physlab/internal/logging"
)

var (
	configFile string
	dataDir    string
	logLevel   string
	outDir     string

	cfg    *config.Config
	logger = zap.NewNop()
)

// main registers the demo and archive commands and exits with status 1
// when a command fails.
func main() {
	rootCmd := &cobra.Command{
		Use:               "physlab",
		Short:             "classical physics demos: fields, oscillators, trajectories",
		SilenceUsage:      true,
		PersistentPreRunE: setup,
		PersistentPostRun: func(cmd *cobra.Command, args []string) { _ = logger.Sync() },
	}

	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file path (yaml)")
	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".physlab", "run archive directory")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&outDir, "out", "", "figure output directory")

	rootCmd.AddCommand(
		newElectroCmd(),
		newEnergyCmd(),
		newAnimateCmd(),
		newLoopCmd(),
		newPotentialCmd(),
		newAllCmd(),
		newAnalyzeCmd(),
		newListCmd(),
		newShowCmd(),
		newPresetsCmd(),
		newConfigCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// setup loads the configuration file over the defaults and builds the logger.
// Explicit global flags win over file values.
func setup(cmd *cobra.Command, args []string) error {
	cfg = config.DefaultConfig()
	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}
	if cmd.Flags().Changed("log-level") {
		cfg.Log.Level = logLevel
	}
	if cmd.Flags().Changed("out") {
		cfg.Output.Dir = outDir
	}

	l, err := logging.New(cfg.Log.Level, cfg.Log.Format)
	if err != nil {
		return err
	}
	logger = l
	logger.Debug("configuration loaded",
		zap.String("file", configFile),
		zap.String("out", cfg.Output.Dir),
		zap.String("data", dataDir))
	return nil
}
