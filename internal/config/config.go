// Package config provides configuration loading for the propmods CLI.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/pthm/propmods"
	"github.com/pthm/propmods/lib/casing"
)

// Environment variables consulted by Load.
const (
	EnvElementDelimiter  = "PROPMODS_ELEMENT_DELIMITER"
	EnvModDelimiter      = "PROPMODS_MOD_DELIMITER"
	EnvModValueDelimiter = "PROPMODS_MOD_VALUE_DELIMITER"
	EnvTransform         = "PROPMODS_TRANSFORM"
)

// Config holds block options as written in .propmods.yaml.
//
// Delimiters are pointers so that an explicit empty string, which disables
// the delimiter, can be told apart from an unset field.
type Config struct {
	ElementDelimiter  *string `yaml:"element_delimiter"`
	ModDelimiter      *string `yaml:"mod_delimiter"`
	ModValueDelimiter *string `yaml:"mod_value_delimiter"`
	Transform         string  `yaml:"transform"`

	// Path is the file the configuration was read from, if any.
	Path string `yaml:"-"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		ElementDelimiter:  ptr(propmods.DefaultElementDelimiter),
		ModDelimiter:      ptr(propmods.DefaultModDelimiter),
		ModValueDelimiter: ptr(propmods.DefaultModValueDelimiter),
		Transform:         "identity",
	}
}

// Load reads configuration from file and environment variables.
//
// An explicit path must exist. With an empty path, .propmods.yaml or
// .propmods.yml is searched for from the working directory upwards, and a
// missing file is not an error. A .env file in the working directory is
// loaded before environment overrides are applied; variables already set
// in the environment win over it.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	if path == "" {
		path = findConfigFile()
	}
	if path != "" {
		if err := loadFromFile(cfg, path); err != nil {
			return nil, fmt.Errorf("failed to load config file: %w", err)
		}
		cfg.Path = path
	}

	// .env is optional
	_ = godotenv.Load()

	applyEnvOverrides(cfg)

	if _, err := casing.Lookup(cfg.Transform); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Options converts the configuration into block options.
func (c *Config) Options() ([]propmods.Option, error) {
	transform, err := casing.Lookup(c.Transform)
	if err != nil {
		return nil, err
	}

	opts := []propmods.Option{propmods.WithTransformKeys(transform)}
	if c.ElementDelimiter != nil {
		opts = append(opts, propmods.WithElementDelimiter(*c.ElementDelimiter))
	}
	if c.ModDelimiter != nil {
		opts = append(opts, propmods.WithModDelimiter(*c.ModDelimiter))
	}
	if c.ModValueDelimiter != nil {
		opts = append(opts, propmods.WithModValueDelimiter(*c.ModValueDelimiter))
	}
	return opts, nil
}

// findConfigFile searches for the configuration file.
func findConfigFile() string {
	candidates := []string{
		".propmods.yaml",
		".propmods.yml",
	}

	dir, err := os.Getwd()
	if err != nil {
		return ""
	}

	for {
		for _, name := range candidates {
			path := filepath.Join(dir, name)
			if _, err := os.Stat(path); err == nil {
				return path
			}
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}

	return ""
}

// loadFromFile reads configuration from a YAML file over cfg.
func loadFromFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	return yaml.Unmarshal(data, cfg)
}

// applyEnvOverrides applies environment variable overrides. A variable that
// is set but empty disables the corresponding delimiter.
func applyEnvOverrides(cfg *Config) {
	if v, ok := os.LookupEnv(EnvElementDelimiter); ok {
		cfg.ElementDelimiter = ptr(v)
	}
	if v, ok := os.LookupEnv(EnvModDelimiter); ok {
		cfg.ModDelimiter = ptr(v)
	}
	if v, ok := os.LookupEnv(EnvModValueDelimiter); ok {
		cfg.ModValueDelimiter = ptr(v)
	}
	if v := os.Getenv(EnvTransform); v != "" {
		cfg.Transform = v
	}
}

func ptr(s string) *string { return &s }
