// Package cmd provides the aoc command-line interface.
//
// Configuration System:
//
//	Settings are resolved with the following precedence:
//	1. Command-line flags (--config, --log-level, --format, ...) - highest priority
//	2. AOC_CONFIG_FILE environment variable - custom config file path
//	3. Individual environment variables (AOC_INPUTS_DIR, AOC_SESSION, ...)
//	4. Configuration file (.aoc.yml) - lowest priority
//
// Environment Variables:
//
//	AOC_CONFIG_FILE: Path to custom configuration file
//	AOC_SESSION: adventofcode.com session cookie used by fetch
//	AOC_INPUTS_DIR: Directory holding cached inputs
//	And the rest following the AOC_<SECTION>_<OPTION> pattern
package cmd

import (
	"fmt"
	"os"

	"github.com/conneroisu/adventofcode/internal/config"
	"github.com/conneroisu/adventofcode/internal/logging"
	_ "github.com/conneroisu/adventofcode/internal/puzzles/all"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "aoc",
	Short: "Advent of Code solutions, 2022 to 2025",
	Long: `aoc solves Advent of Code puzzles from cached or downloaded inputs.

Quick Start:
  aoc fetch --year 2023 --day 7     Download and cache an input
  aoc solve --year 2023 --day 7     Solve one day
  aoc solve --year 2023 --all       Solve every day with a cached input
  aoc bench --year 2023 --day 7     Time a solver
  aoc watch --year 2023 --day 7     Re-solve whenever the input changes
  aoc list                          Show every registered puzzle

Command Aliases:
  solve (s), list (l), bench (b), watch (w), fetch (f)`,
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is .aoc.yml, can also use AOC_CONFIG_FILE env var)")
	rootCmd.PersistentFlags().String("log-level", config.DefaultLogLevel, "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().String("log-format", config.DefaultLogFormat, "log format (text, json)")
	rootCmd.PersistentFlags().String("inputs", config.DefaultInputDir, "directory of cached puzzle inputs")

	_ = viper.BindPFlag("log.level", rootCmd.PersistentFlags().Lookup("log-level"))
	_ = viper.BindPFlag("log.format", rootCmd.PersistentFlags().Lookup("log-format"))
	_ = viper.BindPFlag("inputs.dir", rootCmd.PersistentFlags().Lookup("inputs"))
}

// initConfig points viper at the config file. The --config flag wins over
// AOC_CONFIG_FILE, which wins over .aoc.yml in the working directory. A
// missing file is not an error.
func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else if envConfigFile := os.Getenv("AOC_CONFIG_FILE"); envConfigFile != "" {
		viper.SetConfigFile(envConfigFile)
	} else {
		viper.AddConfigPath(".")
		viper.SetConfigType("yaml")
		viper.SetConfigName(".aoc")
	}

	config.BindEnv(viper.GetViper())

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// setup loads the configuration and builds the logger every command uses.
// Logs go to stderr so that stdout carries only answers.
func setup() (*config.Config, logging.Logger, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	level, err := logging.ParseLevel(cfg.Log.Level)
	if err != nil {
		return nil, nil, err
	}
	logger := logging.NewLogger(&logging.LoggerConfig{
		Level:     level,
		Format:    cfg.Log.Format,
		Output:    os.Stderr,
		Component: "cli",
	})
	return cfg, logger, nil
}
