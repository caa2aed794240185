package config

import (
	"github.com/pelletier/go-toml/v2"

	"github.com/arthur-debert/gearbox/pkg/errors"
	"github.com/arthur-debert/gearbox/pkg/registry"
	"github.com/arthur-debert/gearbox/pkg/ui"
)

// Config is the effective gearbox configuration
type Config struct {
	Registry RegistryConfig `koanf:"registry" toml:"registry"`
	Logging  LoggingConfig  `koanf:"logging" toml:"logging"`
	Output   OutputConfig   `koanf:"output" toml:"output"`
}

// RegistryConfig controls materialization of the dispatch table
type RegistryConfig struct {
	Strict bool `koanf:"strict" toml:"strict"`
}

// LoggingConfig controls the global logger
type LoggingConfig struct {
	Verbosity int `koanf:"verbosity" toml:"verbosity"`
}

// OutputConfig controls command output
type OutputConfig struct {
	Format string `koanf:"format" toml:"format"`
}

// Validate checks values the decoder cannot
func (c *Config) Validate() error {
	if c.Logging.Verbosity < 0 {
		return errors.Newf(errors.ErrConfigValid, "logging.verbosity must not be negative, got %d", c.Logging.Verbosity)
	}
	if _, err := ui.ParseFormat(c.Output.Format); err != nil {
		return errors.Wrap(err, errors.ErrConfigValid, "invalid output.format")
	}
	return nil
}

// MaterializeOptions translates the registry section into materializer options
func (c *Config) MaterializeOptions() []registry.Option {
	return []registry.Option{registry.WithStrict(c.Registry.Strict)}
}

// OutputFormat returns the parsed output format
func (c *Config) OutputFormat() ui.Format {
	f, err := ui.ParseFormat(c.Output.Format)
	if err != nil {
		return ui.FormatAuto
	}
	return f
}

// Dump renders cfg as TOML
func Dump(cfg *Config) ([]byte, error) {
	out, err := toml.Marshal(cfg)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrInternal, "failed to encode configuration")
	}
	return out, nil
}
