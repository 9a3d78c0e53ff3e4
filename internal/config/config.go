// Package config loads the aoc settings using Viper. Values come from an
// optional .aoc.yml file, AOC_ prefixed environment variables and command-line
// flags bound by the cmd package.
//
// The configuration covers where puzzle inputs are cached and how they are
// downloaded, how many iterations a benchmark runs, how long the watcher waits
// before re-solving, and how answers and logs are rendered.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Default values used when neither the file, the environment nor a flag sets
// a key.
const (
	DefaultInputDir   = "inputs"
	DefaultBaseURL    = "https://adventofcode.com"
	DefaultIterations = 10000
	DefaultWarmup     = 10
	DefaultDebounce   = 300 * time.Millisecond
	DefaultFormat     = "text"
	DefaultLogLevel   = "info"
	DefaultLogFormat  = "text"
)

// EnvPrefix prefixes every environment override, e.g. AOC_INPUTS_DIR.
const EnvPrefix = "AOC"

var envReplacer = strings.NewReplacer(".", "_")

// BindEnv makes v read AOC_ prefixed environment variables for every key.
func BindEnv(v *viper.Viper) {
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(envReplacer)
	v.AutomaticEnv()
}

type Config struct {
	Inputs InputsConfig `yaml:"inputs" mapstructure:"inputs"`
	Bench  BenchConfig  `yaml:"bench" mapstructure:"bench"`
	Watch  WatchConfig  `yaml:"watch" mapstructure:"watch"`
	Output OutputConfig `yaml:"output" mapstructure:"output"`
	Log    LogConfig    `yaml:"log" mapstructure:"log"`
}

type InputsConfig struct {
	Dir string `yaml:"dir" mapstructure:"dir"`
	// Session is the adventofcode.com session cookie used by fetch.
	Session string `yaml:"session" mapstructure:"session"`
	BaseURL string `yaml:"base_url" mapstructure:"base_url"`
}

type BenchConfig struct {
	Iterations int `yaml:"iterations" mapstructure:"iterations"`
	Warmup     int `yaml:"warmup" mapstructure:"warmup"`
}

type WatchConfig struct {
	Debounce time.Duration `yaml:"debounce" mapstructure:"debounce"`
}

type OutputConfig struct {
	Format string `yaml:"format" mapstructure:"format"`
}

type LogConfig struct {
	Level  string `yaml:"level" mapstructure:"level"`
	Format string `yaml:"format" mapstructure:"format"`
}

// SetDefaults registers every default with v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("inputs.dir", DefaultInputDir)
	v.SetDefault("inputs.session", "")
	v.SetDefault("inputs.base_url", DefaultBaseURL)
	v.SetDefault("bench.iterations", DefaultIterations)
	v.SetDefault("bench.warmup", DefaultWarmup)
	v.SetDefault("watch.debounce", DefaultDebounce)
	v.SetDefault("output.format", DefaultFormat)
	v.SetDefault("log.level", DefaultLogLevel)
	v.SetDefault("log.format", DefaultLogFormat)
}

// Load reads the global viper instance into a validated Config.
func Load() (*Config, error) {
	return LoadFrom(viper.GetViper())
}

// LoadFrom reads v into a validated Config. Defaults are applied for any key v
// does not set.
func LoadFrom(v *viper.Viper) (*Config, error) {
	SetDefaults(v)

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, err
	}

	// The session is usually supplied through the environment only.
	if config.Inputs.Session == "" {
		config.Inputs.Session = v.GetString("session")
	}

	if result := Validate(&config); result.HasErrors() {
		return nil, fmt.Errorf("invalid configuration: %w", result.Err())
	}

	return &config, nil
}
