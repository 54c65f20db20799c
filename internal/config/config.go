package config

import (
	_ "embed"
	"fmt"
	"os"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v2"
)

//go:embed default.yaml
var defaultConfigData []byte

type Config struct {
	Prompt        string `yaml:"prompt"`
	PathVariable  string `yaml:"path_variable" validate:"required"`
	StatusCommand string `yaml:"status_command" validate:"required"`
	CommandLimit  int    `yaml:"command_limit" validate:"gte=1"`
	QuoteAware    bool   `yaml:"quote_aware"`
	Color         bool   `yaml:"color"`
	Log           Log    `yaml:"log"`
}

type Log struct {
	Level      string `yaml:"level" validate:"oneof=debug info warn error"`
	File       string `yaml:"file"`
	MaxSizeMB  int    `yaml:"max_size_mb" validate:"gte=0"`
	MaxBackups int    `yaml:"max_backups" validate:"gte=0"`
	MaxAgeDays int    `yaml:"max_age_days" validate:"gte=0"`
	Compress   bool   `yaml:"compress"`
}

// Default returns the built-in configuration.
func Default() *Config {
	cfg := &Config{}
	if err := yaml.UnmarshalStrict(defaultConfigData, cfg); err != nil {
		panic(fmt.Sprintf("invalid built-in config: %v", err))
	}
	return cfg
}

// Load reads file over the built-in defaults. An empty file name returns the
// defaults.
func Load(file string) (*Config, error) {
	cfg := Default()
	if file == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(file)
	if err != nil {
		return nil, fmt.Errorf("error reading config: %w", err)
	}

	if err := yaml.UnmarshalStrict(data, cfg); err != nil {
		return nil, fmt.Errorf("error parsing config %s: %w", file, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", file, err)
	}

	return cfg, nil
}

// Validate checks the configuration for basic semantic errors.
func (c *Config) Validate() error {
	validate := validator.New()
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		return strings.SplitN(fld.Tag.Get("yaml"), ",", 2)[0]
	})

	if err := validate.Struct(c); err != nil {
		return err
	}

	if strings.ContainsAny(c.StatusCommand, " \t") {
		return fmt.Errorf("status_command %q must be a single word", c.StatusCommand)
	}
	return nil
}
