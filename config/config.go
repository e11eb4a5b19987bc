// Package config loads settings for the dofcalc command.
//
// Values are resolved in three layers, later layers winning:
//  1. built-in defaults
//  2. the YAML file named by $DOF_CONFIG (optional)
//  3. individual environment variables
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/gauge-lab/lattice-dof/pkg/logger"
)

// Environment represents the application environment.
type Environment string

const (
	EnvDevelopment Environment = "development"
	EnvProduction  Environment = "production"
)

// Render styles.
const (
	StylePretty = "pretty" // human renderings with sub/superscript numerals
	StylePlain  = "plain"  // Go-syntax renderings
)

// Config holds all application configuration.
type Config struct {
	App           AppConfig           `yaml:"app"`
	Defaults      DefaultsConfig      `yaml:"defaults"`
	Render        RenderConfig        `yaml:"render"`
	Observability ObservabilityConfig `yaml:"observability"`
}

// AppConfig holds general application settings.
type AppConfig struct {
	Name        string      `yaml:"name"`
	Environment Environment `yaml:"environment"`
}

// DefaultsConfig holds values used when a command omits them.
type DefaultsConfig struct {
	// Modulus of ℤ_N for commands that build cyclic elements
	Modulus int `yaml:"modulus"`
}

// RenderConfig controls how values are printed.
type RenderConfig struct {
	Style string `yaml:"style"`
}

// ObservabilityConfig holds logging settings.
type ObservabilityConfig struct {
	LogLevel  string `yaml:"log_level"`  // debug, info, warn, error
	LogFormat string `yaml:"log_format"` // json, text
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		App: AppConfig{
			Name:        "dofcalc",
			Environment: EnvDevelopment,
		},
		Defaults: DefaultsConfig{Modulus: 2},
		Render:   RenderConfig{Style: StylePretty},
		Observability: ObservabilityConfig{
			LogLevel:  "warn",
			LogFormat: string(logger.FormatText),
		},
	}
}

// Load loads configuration from $DOF_CONFIG (if set) and the environment.
func Load() (*Config, error) {
	return LoadFrom(os.Getenv("DOF_CONFIG"))
}

// LoadFrom loads configuration from the YAML file at path and the
// environment. An empty path skips the file layer.
func LoadFrom(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
	}

	cfg.applyEnv()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation: %w", err)
	}
	return cfg, nil
}

func (c *Config) applyEnv() {
	c.App.Name = getEnv("DOF_APP_NAME", c.App.Name)
	c.App.Environment = Environment(getEnv("DOF_ENV", string(c.App.Environment)))
	c.Defaults.Modulus = getEnvInt("DOF_DEFAULT_MODULUS", c.Defaults.Modulus)
	c.Render.Style = getEnv("DOF_RENDER_STYLE", c.Render.Style)
	c.Observability.LogLevel = getEnv("LOG_LEVEL", c.Observability.LogLevel)
	c.Observability.LogFormat = getEnv("LOG_FORMAT", c.Observability.LogFormat)
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	var errs []string

	if c.Defaults.Modulus <= 0 {
		errs = append(errs, fmt.Sprintf("default modulus must be positive, got %d", c.Defaults.Modulus))
	}

	switch c.Render.Style {
	case StylePretty, StylePlain:
	default:
		errs = append(errs, fmt.Sprintf("render style must be %q or %q, got %q", StylePretty, StylePlain, c.Render.Style))
	}

	if _, err := logger.ParseLevel(c.Observability.LogLevel); err != nil {
		errs = append(errs, err.Error())
	}

	switch logger.Format(c.Observability.LogFormat) {
	case logger.FormatJSON, logger.FormatText:
	default:
		errs = append(errs, fmt.Sprintf("unknown log format %q", c.Observability.LogFormat))
	}

	if len(errs) > 0 {
		return fmt.Errorf("configuration errors:\n  - %s", strings.Join(errs, "\n  - "))
	}
	return nil
}

// IsProduction returns true if running in production mode.
func (c *Config) IsProduction() bool {
	return c.App.Environment == EnvProduction
}

// NewLogger builds a logger from the observability settings.
// Call after Validate.
func (c *Config) NewLogger() *logger.Logger {
	level, _ := logger.ParseLevel(c.Observability.LogLevel)
	return logger.New(logger.Options{
		Output: os.Stderr,
		Level:  level,
		Format: logger.Format(c.Observability.LogFormat),
	}).With(logger.Component(c.App.Name))
}

// --- Helper functions for environment variable parsing ---

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

func getEnvInt(key string, defaultVal int) int {
	val := os.Getenv(key)
	if val == "" {
		return defaultVal
	}
	i, err := strconv.Atoi(val)
	if err != nil {
		return defaultVal
	}
	return i
}
