package app

import (
	"os"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/maxbolgarin/commitlint/internal/lint"
	"github.com/maxbolgarin/errm"
	"github.com/maxbolgarin/lang"
)

const (
	// FormatText is human-readable terminal output.
	FormatText = "text"
	// FormatJSON is the machine-readable report.
	FormatJSON = "json"
)

// Config represents the main application configuration
type Config struct {
	Lint   LintConfig   `yaml:"lint"`
	Output OutputConfig `yaml:"output"`
	Linter lint.Config  `yaml:"linter"`
}

// LintConfig controls which checks run and how failures are treated
type LintConfig struct {
	// Enabled is added on top of the default checks, Disabled is removed after.
	Enabled  []string `yaml:"enabled" env:"LINT_ENABLED"`
	Disabled []string `yaml:"disabled" env:"LINT_DISABLED"`

	// Strict makes an unknown check name in the config a fatal error
	// instead of a logged warning.
	Strict bool `yaml:"strict" env:"LINT_STRICT"`
}

// OutputConfig controls how problems are reported
type OutputConfig struct {
	Format  string `yaml:"format" env:"OUTPUT_FORMAT"`
	NoColor bool   `yaml:"no_color" env:"OUTPUT_NO_COLOR"`
}

// LoadConfig reads configuration from an optional YAML file and the
// environment. Without a file everything comes from env vars and defaults.
func LoadConfig(path string) (Config, error) {
	var cfg Config

	if path != "" {
		if _, err := os.Stat(path); err != nil {
			return cfg, errm.Wrap(err, "config file is not accessible")
		}
		if err := cleanenv.ReadConfig(path, &cfg); err != nil {
			return cfg, errm.Wrap(err, "failed to read config file")
		}
	} else {
		if err := cleanenv.ReadEnv(&cfg); err != nil {
			return cfg, errm.Wrap(err, "failed to read environment")
		}
	}

	cfg.SetDefaults()
	if err := cfg.Validate(); err != nil {
		return cfg, errm.Wrap(err, "invalid config")
	}

	return cfg, nil
}

// SetDefaults sets default values for configuration
func (c *Config) SetDefaults() {
	c.Output.Format = lang.Check(c.Output.Format, FormatText)
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Output.Format != FormatText && c.Output.Format != FormatJSON {
		return ErrInvalidOutputFormat
	}
	if c.Linter.PoolSize < 0 {
		return ErrInvalidPoolSize
	}
	return nil
}
