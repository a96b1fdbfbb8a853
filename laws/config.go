package laws

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// EnvPrefix prefixes the environment variables read by LoadConfig.
const EnvPrefix = "OPTICS_LAWS"

// Config controls a Verifier.
type Config struct {
	// Samples is the number of generated inputs per law.
	Samples int `yaml:"samples" json:"samples"`
	// Seed is the first seed; sample i uses Seed+i.
	Seed int `yaml:"seed" json:"seed"`
	// LogLevel is one of debug, info, warn, error.
	LogLevel string `yaml:"log_level" json:"log_level"`
	// Laws restricts verification to laws whose name contains one of these
	// substrings. Empty means every law.
	Laws []string `yaml:"laws" json:"laws"`
	// FailFast stops at the first violation.
	FailFast bool `yaml:"fail_fast" json:"fail_fast"`
}

// DefaultConfig returns the configuration used when nothing is set.
func DefaultConfig() Config {
	return Config{
		Samples:  100,
		Seed:     1,
		LogLevel: "info",
	}
}

// LoadConfig reads defaults, then the file at path (YAML or JSON by
// extension, skipped when path is empty), then OPTICS_LAWS_* environment
// variables, and validates the result.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if path != "" {
		if err := cfg.loadFile(path); err != nil {
			return Config{}, err
		}
	}
	if err := cfg.loadEnv(); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c *Config) loadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}

	if strings.HasSuffix(path, ".yaml") || strings.HasSuffix(path, ".yml") {
		if err := yaml.Unmarshal(data, c); err != nil {
			return fmt.Errorf("failed to parse YAML: %w", err)
		}
		return nil
	}
	if err := json.Unmarshal(data, c); err != nil {
		return fmt.Errorf("failed to parse JSON: %w", err)
	}
	return nil
}

func (c *Config) loadEnv() error {
	if v, ok := os.LookupEnv(EnvPrefix + "_SAMPLES"); ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid %s_SAMPLES: %w", EnvPrefix, err)
		}
		c.Samples = n
	}
	if v, ok := os.LookupEnv(EnvPrefix + "_SEED"); ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid %s_SEED: %w", EnvPrefix, err)
		}
		c.Seed = n
	}
	if v, ok := os.LookupEnv(EnvPrefix + "_LOG_LEVEL"); ok {
		c.LogLevel = v
	}
	if v, ok := os.LookupEnv(EnvPrefix + "_LAWS"); ok {
		c.Laws = nil
		for _, name := range strings.Split(v, ",") {
			if name = strings.TrimSpace(name); name != "" {
				c.Laws = append(c.Laws, name)
			}
		}
	}
	if v, ok := os.LookupEnv(EnvPrefix + "_FAIL_FAST"); ok {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("invalid %s_FAIL_FAST: %w", EnvPrefix, err)
		}
		c.FailFast = b
	}
	return nil
}

// Validate checks the configuration.
func (c Config) Validate() error {
	var errs []error
	if c.Samples <= 0 {
		errs = append(errs, errors.New("samples must be positive"))
	}
	if c.Seed < 0 {
		errs = append(errs, errors.New("seed must not be negative"))
	}
	if _, err := c.Level(); err != nil {
		errs = append(errs, err)
	}
	if len(errs) > 0 {
		return fmt.Errorf("invalid laws config: %w", errors.Join(errs...))
	}
	return nil
}

// Level parses LogLevel.
func (c Config) Level() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return slog.LevelInfo, fmt.Errorf("invalid log level %q", c.LogLevel)
	}
	return level, nil
}

// selects reports whether the law named name is enabled.
func (c Config) selects(name string) bool {
	if len(c.Laws) == 0 {
		return true
	}
	for _, pattern := range c.Laws {
		if strings.Contains(name, pattern) {
			return true
		}
	}
	return false
}
