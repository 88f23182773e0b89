// Package config loads bizdir's user configuration and seed directory.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/jacksmith/bizdir/internal/model"
	"gopkg.in/yaml.v3"
)

const (
	// FileName is the name of the user configuration file.
	FileName = ".bizdirconfig.yaml"

	// Default configuration values
	DefaultDefaultFilter = "all"
	DefaultConfirmDelete = true
	DefaultColor         = "auto"
	DefaultLogLevel      = "warn"
	DefaultLogFormat     = "console"
)

// Config represents user configuration from .bizdirconfig.yaml.
// This file is user-managed and never written by bizdir.
type Config struct {
	// SeedFile is a directory document to start sessions from instead of the
	// built-in samples. Relative paths resolve against the config file's directory.
	SeedFile string `yaml:"seed_file"`

	// DefaultFilter is the filter a session starts with ("all" or a category).
	DefaultFilter string `yaml:"default_filter" validate:"filter"`

	// ConfirmDelete asks before deleting a business.
	ConfirmDelete bool `yaml:"confirm_delete"`

	// Color controls ANSI colors: auto (terminal detection), always, never.
	Color string `yaml:"color" validate:"oneof=auto always never"`

	// LogLevel is the minimum level written to stderr.
	LogLevel string `yaml:"log_level" validate:"oneof=debug info warn error"`

	// LogFormat selects console or json log encoding.
	LogFormat string `yaml:"log_format" validate:"oneof=console json"`

	// dir is the directory the config was loaded from.
	dir string
}

// DefaultConfig returns a Config with default values rooted at the working directory.
func DefaultConfig() *Config {
	return &Config{
		DefaultFilter: DefaultDefaultFilter,
		ConfirmDelete: DefaultConfirmDelete,
		Color:         DefaultColor,
		LogLevel:      DefaultLogLevel,
		LogFormat:     DefaultLogFormat,
		dir:           ".",
	}
}

// Load loads .bizdirconfig.yaml from dir if it exists, otherwise returns defaults.
// Partial config files are merged with defaults.
func Load(dir string) (*Config, error) {
	cfg, err := LoadFile(filepath.Join(dir, FileName))
	if errors.Is(err, os.ErrNotExist) {
		// No config file - return defaults
		cfg = DefaultConfig()
		cfg.dir = dir
		return cfg, nil
	}
	return cfg, err
}

// LoadFile loads the config file at path. Unlike Load, a missing file is an error.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("config file %s: %w", path, os.ErrNotExist)
		}
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	// Start with defaults
	cfg := DefaultConfig()
	cfg.dir = filepath.Dir(path)

	// Parse YAML and merge with defaults
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return cfg, nil
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("yaml"), ",")
		return name
	})
	_ = v.RegisterValidation("filter", func(fl validator.FieldLevel) bool {
		_, err := model.ParseFilter(fl.Field().String())
		return err == nil
	})
	return v
}

// Validate checks enumerated settings.
func (c *Config) Validate() error {
	err := validate.Struct(c)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err
	}
	var msgs []string
	for _, fe := range fieldErrs {
		switch fe.Tag() {
		case "oneof":
			msgs = append(msgs, fmt.Sprintf("%s must be one of: %s (got %q)", fe.Field(), fe.Param(), fe.Value()))
		case "filter":
			msgs = append(msgs, fmt.Sprintf("%s must be all or a category (got %q)", fe.Field(), fe.Value()))
		default:
			msgs = append(msgs, fmt.Sprintf("%s is invalid", fe.Field()))
		}
	}
	return fmt.Errorf("invalid config: %s", strings.Join(msgs, "; "))
}

// Filter returns the parsed default filter, falling back to all.
func (c *Config) Filter() model.Filter {
	f, err := model.ParseFilter(c.DefaultFilter)
	if err != nil {
		return model.FilterAll
	}
	return f
}

// Dir returns the directory the config was loaded from.
func (c *Config) Dir() string {
	return c.dir
}
