// blockfall is a falling-block puzzle game for the terminal.
//
// Usage:
//
//	blockfall play        - Play a round
//	blockfall simulate    - Run a headless round with a random bot
//	blockfall pieces      - Show the piece catalog
//	blockfall config      - Print the effective configuration
//
// Global flags:
//
//	--config <path>     - Path to a config YAML
//	--seed <value>      - RNG seed for reproducible piece order
//	--log-level <level> - debug, info, warn or error
//	--log-file <path>   - Write logs to a file
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/blockfall/internal/config"
)

var (
	// Global flags
	flagConfig   string
	flagSeed     int64
	flagLogLevel string
	flagLogFile  string

	// appConfig is loaded before any subcommand runs.
	appConfig config.Config
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "blockfall",
	Short: "blockfall - falling-block puzzle in your terminal",
	Long: `blockfall is a terminal falling-block puzzle on a 10x20 field.

Available commands:
  play      - Play a round
  simulate  - Run a headless round driven by a random bot
  pieces    - Show the seven pieces and their rotations
  config    - Print the effective configuration

Examples:
  blockfall play
  blockfall play --seed 42
  blockfall simulate --ticks 5000 --pieces IOT
  blockfall config --default > ~/.blockfall/config.yaml`,
	SilenceUsage:      true,
	PersistentPreRunE: loadConfig,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config YAML")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(simulateCmd)
	rootCmd.AddCommand(piecesCmd)
	rootCmd.AddCommand(configCmd)
}

// loadConfig reads the config file and applies flag overrides.
func loadConfig(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return err
	}
	if flagLogLevel != "" {
		cfg.Log.Level = flagLogLevel
	}
	if flagLogFile != "" {
		cfg.Log.File = flagLogFile
	}
	appConfig = cfg
	return nil
}

// newLogger builds a logger writing to w at the configured level.
func newLogger(w io.Writer) (*log.Logger, error) {
	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "blockfall",
	})
	if appConfig.Log.Level != "" {
		level, err := log.ParseLevel(appConfig.Log.Level)
		if err != nil {
			return nil, fmt.Errorf("invalid log level %q: %w", appConfig.Log.Level, err)
		}
		logger.SetLevel(level)
	}
	return logger, nil
}

// openLogFile opens the configured log file for appending.
// Returns io.Discard when no file is configured.
func openLogFile() (io.Writer, func(), error) {
	if appConfig.Log.File == "" {
		return io.Discard, func() {}, nil
	}
	f, err := os.OpenFile(appConfig.Log.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil, nil, fmt.Errorf("cannot open log file: %w", err)
	}
	return f, func() { f.Close() }, nil
}
