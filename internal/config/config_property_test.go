package config

import (
	"testing"
	"time"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/spf13/viper"
)

// TestConfigurationProperties tests configuration loading and validation properties
func TestConfigurationProperties(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.Rng.Seed(1225)
	parameters.MinSuccessfulTests = 100

	properties := gopter.NewProperties(parameters)

	properties.Property("in-range settings load unchanged", prop.ForAll(
		func(dir string, iterations, warmup int, debounceMs int, format string) bool {
			v := viper.New()
			v.Set("inputs.dir", dir)
			v.Set("bench.iterations", iterations)
			v.Set("bench.warmup", warmup)
			v.Set("watch.debounce", time.Duration(debounceMs)*time.Millisecond)
			v.Set("output.format", format)

			config, err := LoadFrom(v)
			if err != nil {
				return false
			}
			return config.Inputs.Dir == dir &&
				config.Bench.Iterations == iterations &&
				config.Bench.Warmup == warmup &&
				config.Watch.Debounce == time.Duration(debounceMs)*time.Millisecond &&
				config.Output.Format == format
		},
		gen.Identifier(),
		gen.IntRange(1, 1_000_000),
		gen.IntRange(0, 1000),
		gen.IntRange(0, 10_000),
		gen.OneConstOf("text", "json", "yaml", "table"),
	))

	properties.Property("non-positive iterations are rejected", prop.ForAll(
		func(iterations int) bool {
			config := validConfig()
			config.Bench.Iterations = iterations
			result := Validate(config)
			return result.HasErrors() && result.Errors[0].Field == "bench.iterations"
		},
		gen.IntRange(-1000, 0),
	))

	properties.Property("unknown formats are rejected", prop.ForAll(
		func(format string) bool {
			config := validConfig()
			config.Output.Format = format
			switch format {
			case "text", "json", "yaml", "table":
				return !Validate(config).HasErrors()
			}
			return Validate(config).Err() != nil
		},
		gen.AlphaString(),
	))

	properties.Property("validation is deterministic", prop.ForAll(
		func(dir, level string, iterations int) bool {
			config := validConfig()
			config.Inputs.Dir = dir
			config.Log.Level = level
			config.Bench.Iterations = iterations
			return Validate(config).String() == Validate(config).String()
		},
		gen.AnyString(),
		gen.AlphaString(),
		gen.Int(),
	))

	properties.TestingRun(t)
}

func validConfig() *Config {
	return &Config{
		Inputs: InputsConfig{Dir: DefaultInputDir, BaseURL: DefaultBaseURL, Session: "cookie"},
		Bench:  BenchConfig{Iterations: DefaultIterations, Warmup: DefaultWarmup},
		Watch:  WatchConfig{Debounce: DefaultDebounce},
		Output: OutputConfig{Format: DefaultFormat},
		Log:    LogConfig{Level: DefaultLogLevel, Format: DefaultLogFormat},
	}
}
