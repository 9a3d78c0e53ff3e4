package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
)

// FuzzLoadYAML feeds arbitrary config files through viper and LoadFrom. A
// file either fails to load or yields a configuration that validates.
func FuzzLoadYAML(f *testing.F) {
	f.Add("inputs:\n  dir: cache\nbench:\n  iterations: 7\n")
	f.Add("output:\n  format: table\nlog:\n  level: debug\n")
	f.Add("watch:\n  debounce: 1s\n")
	f.Add("bench:\n  iterations: -3\n")
	f.Add("inputs:\n  base_url: ftp://example.com\n")
	f.Add("inputs: [1, 2\n")
	f.Add("")

	f.Fuzz(func(t *testing.T, content string) {
		if len(content) > 10000 {
			t.Skip("config too large")
		}

		path := filepath.Join(t.TempDir(), ".aoc.yml")
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			t.Fatal(err)
		}

		v := viper.New()
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return
		}

		config, err := LoadFrom(v)
		if err != nil {
			if config != nil {
				t.Fatalf("config returned with error %v", err)
			}
			return
		}
		if result := Validate(config); result.HasErrors() {
			t.Fatalf("loaded config fails validation:\n%s", result.String())
		}
	})
}

// FuzzValidate checks that Validate never panics and that Err agrees with
// HasErrors.
func FuzzValidate(f *testing.F) {
	f.Add("inputs", "https://adventofcode.com", 10, 0, "text", "info")
	f.Add("", "", 0, -1, "xml", "LOUD")
	f.Add("in\x00puts", "http://", -5, 3, "yaml", "DEBUG")

	f.Fuzz(func(t *testing.T, dir, baseURL string, iterations, warmup int, format, level string) {
		config := validConfig()
		config.Inputs.Dir = dir
		config.Inputs.BaseURL = baseURL
		config.Bench.Iterations = iterations
		config.Bench.Warmup = warmup
		config.Output.Format = format
		config.Log.Level = level

		result := Validate(config)
		if result.Valid == result.HasErrors() {
			t.Fatalf("Valid=%v with %d errors", result.Valid, len(result.Errors))
		}
		if (result.Err() != nil) != result.HasErrors() {
			t.Fatalf("Err disagrees with HasErrors")
		}
	})
}
