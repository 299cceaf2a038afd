// Package config holds the CLI configuration: defaults, then an optional
// YAML file, then SOLID_* environment overrides.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// DefaultPath is where the CLI looks for a config file unless told otherwise.
const DefaultPath = "solid.yaml"

// ErrBadWrap rejects word-wrap widths that cannot render anything.
var ErrBadWrap = errors.New("config: wrap must be positive")

// ValidStyles lists the lesson rendering styles explain accepts.
var ValidStyles = []string{"auto", "dark", "light", "notty"}

// Config holds the CLI configuration.
type Config struct {
	// LogLevel is the zap level for CLI diagnostics (debug, info, warn, error).
	LogLevel string `yaml:"log_level"`
	// Style selects the glamour style lessons render with (auto, dark, light, notty).
	Style string `yaml:"style"`
	// Wrap is the word-wrap width for rendered lessons.
	Wrap int `yaml:"wrap"`
	// NoColor disables styled output.
	NoColor bool `yaml:"no_color"`
}

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		LogLevel: "info",
		Style:    "auto",
		Wrap:     80,
		NoColor:  false,
	}
}

// Load builds the configuration in three layers: defaults, the YAML file at
// path (a missing file is not an error), then environment variables.
//
// A .env file can be auto-loaded by importing
// _ "github.com/joho/godotenv/autoload" in the composition root; real
// environment variables take precedence over it either way.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	switch {
	case os.IsNotExist(err):
		// defaults stand
	case err != nil:
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	default:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("config: parse %s: %w", path, err)
		}
	}

	cfg.applyEnvOverrides()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the merged configuration.
func (c *Config) Validate() error {
	if c.Wrap <= 0 {
		return ErrBadWrap
	}
	for _, s := range ValidStyles {
		if c.Style == s {
			return nil
		}
	}
	return fmt.Errorf("config: invalid style %q (valid: %v)", c.Style, ValidStyles)
}

func (c *Config) applyEnvOverrides() {
	c.LogLevel = getEnv("SOLID_LOG_LEVEL", c.LogLevel)
	c.Style = getEnv("SOLID_STYLE", c.Style)
	c.Wrap = getEnvInt("SOLID_WRAP", c.Wrap)
	c.NoColor = getEnvBool("SOLID_NO_COLOR", c.NoColor)
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		b, err := strconv.ParseBool(v)
		if err == nil {
			return b
		}
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		i, err := strconv.Atoi(v)
		if err == nil {
			return i
		}
	}
	return def
}
