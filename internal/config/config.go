package config

import (
	"fmt"
	"os"
	"runtime"

	"gopkg.in/yaml.v3"
)

// output naming modes for batch processing
const (
	NamingDefault    = "default"    // <base>_<index>.vtt
	NamingSequential = "sequential" // <prefix><index>.vtt
	NamingManual     = "manual"     // prompt per file
)

// Config holds the batch-driver settings. None of these options affect the
// core transform functions.
type Config struct {
	// Naming selects the output naming mode: default, sequential, or manual.
	Naming string `yaml:"naming,omitempty"`

	// Prefix is prepended to the index in sequential mode.
	Prefix string `yaml:"prefix,omitempty"`

	// Parallel enables the worker pool; when false files are processed
	// one at a time.
	Parallel bool `yaml:"parallel"`

	// Concurrency is the worker count when Parallel is set.
	Concurrency int `yaml:"concurrency,omitempty"`
}

// Default returns the built-in settings: default naming, parallel processing
// with at most four workers.
func Default() Config {
	workers := runtime.NumCPU()
	if workers > 4 {
		workers = 4
	}
	return Config{
		Naming:      NamingDefault,
		Parallel:    true,
		Concurrency: workers,
	}
}

// Load reads a YAML config file over the defaults. Fields absent from the
// file keep their default values.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config file: %w", err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config file: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}

	return cfg, nil
}

// Validate checks the naming mode and normalizes the worker count.
func (c *Config) Validate() error {
	switch c.Naming {
	case NamingDefault, NamingSequential, NamingManual:
	default:
		return fmt.Errorf(
			"invalid naming mode %q: use default, sequential, or manual",
			c.Naming,
		)
	}
	if c.Concurrency <= 0 {
		c.Concurrency = Default().Concurrency
	}
	return nil
}
