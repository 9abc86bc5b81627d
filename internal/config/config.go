// Package config loads basecalc configuration: defaults, an optional YAML
// file, then environment overrides, in that order.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds all basecalc configuration.
type Config struct {
	// Calculator settings
	Calculator CalculatorConfig `yaml:"calculator"`

	// Logging
	Logging LoggingConfig `yaml:"logging"`
}

// CalculatorConfig configures the expression calculator.
type CalculatorConfig struct {
	// DefaultRadix is the radix selected at startup (2, 8, 10 or 16).
	DefaultRadix uint32 `yaml:"default_radix"`
	// FracDigits is the fractional-digit budget for non-decimal rendering.
	FracDigits int `yaml:"frac_digits"`
	// EvalTimeout bounds a single evaluation, e.g. "5s".
	EvalTimeout string `yaml:"eval_timeout"`
}

// LoggingConfig configures the file-backed logger used by the TUI.
type LoggingConfig struct {
	Enabled bool   `yaml:"enabled"`
	Level   string `yaml:"level"` // debug/info/warn/error
	File    string `yaml:"file"`  // log file path; empty means default
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Calculator: CalculatorConfig{
			DefaultRadix: 10,
			FracDigits:   16,
			EvalTimeout:  "5s",
		},
		Logging: LoggingConfig{
			Enabled: false,
			Level:   "info",
		},
	}
}

// DefaultPath returns the conventional config file location.
func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".basecalc", "config.yaml")
}

// Load reads configuration from path (DefaultPath when empty), falling back
// to defaults when the file does not exist, then applies environment
// overrides.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path == "" {
		path = DefaultPath()
	}
	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case err == nil:
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("parse config %s: %w", path, err)
			}
		case !os.IsNotExist(err):
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
	}

	cfg.applyEnvOverrides()
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// applyEnvOverrides lets BASECALC_* variables win over file values.
func (c *Config) applyEnvOverrides() {
	if v := os.Getenv("BASECALC_RADIX"); v != "" {
		if r, err := strconv.ParseUint(v, 10, 32); err == nil {
			c.Calculator.DefaultRadix = uint32(r)
		}
	}
	if v := os.Getenv("BASECALC_FRAC_DIGITS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.Calculator.FracDigits = n
		}
	}
	if v := os.Getenv("BASECALC_EVAL_TIMEOUT"); v != "" {
		c.Calculator.EvalTimeout = v
	}
	if v := os.Getenv("BASECALC_LOG_LEVEL"); v != "" {
		c.Logging.Level = v
		c.Logging.Enabled = true
	}
	if v := os.Getenv("BASECALC_LOG_FILE"); v != "" {
		c.Logging.File = v
		c.Logging.Enabled = true
	}
}

func (c *Config) validate() error {
	switch c.Calculator.DefaultRadix {
	case 2, 8, 10, 16:
	default:
		return fmt.Errorf("default_radix must be 2, 8, 10 or 16, got %d", c.Calculator.DefaultRadix)
	}
	if c.Calculator.FracDigits < 0 || c.Calculator.FracDigits > 64 {
		return fmt.Errorf("frac_digits must be in [0,64], got %d", c.Calculator.FracDigits)
	}
	if _, err := c.ParseEvalTimeout(); err != nil {
		return err
	}
	return nil
}

// ParseEvalTimeout parses the evaluation timeout.
func (c *Config) ParseEvalTimeout() (time.Duration, error) {
	if c.Calculator.EvalTimeout == "" {
		return 5 * time.Second, nil
	}
	d, err := time.ParseDuration(c.Calculator.EvalTimeout)
	if err != nil {
		return 0, fmt.Errorf("eval_timeout: %w", err)
	}
	if d <= 0 {
		return 0, fmt.Errorf("eval_timeout must be positive, got %s", d)
	}
	return d, nil
}

// LogFile returns the configured log file path or the conventional default.
func (c *Config) LogFile() string {
	if c.Logging.File != "" {
		return c.Logging.File
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "basecalc.log"
	}
	return filepath.Join(home, ".basecalc", "logs", "basecalc.log")
}
