package ttlv

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"
)

// Config tunes a Mapper.
type Config struct {
	// DefaultSpec is the version NewContext starts from, e.g. "V1.2". Empty means UnknownVersion.
	DefaultSpec string `toml:"default_spec" yaml:"default_spec"`
	// MaxDepth bounds structure nesting. Zero disables the check.
	MaxDepth int `toml:"max_depth" yaml:"max_depth"`
	// MaxValueLength bounds any declared value length. Zero disables the check.
	MaxValueLength int `toml:"max_value_length" yaml:"max_value_length"`
	// StrictPadding rejects non-zero padding bytes on decode.
	StrictPadding bool `toml:"strict_padding" yaml:"strict_padding"`
	// LogLevel is a zerolog level name.
	LogLevel string `toml:"log_level" yaml:"log_level"`
}

func DefaultConfig() Config {
	return Config{
		MaxDepth:       32,
		MaxValueLength: 16 << 20,
		LogLevel:       "info",
	}
}

// LoadConfig reads a .toml, .yaml or .yml file over DefaultConfig and validates the result.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	path = filepath.Clean(path)

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".toml":
		if _, err := toml.DecodeFile(path, &cfg); err != nil {
			return Config{}, fmt.Errorf("load config (%s): %w", path, err)
		}
	case ".yaml", ".yml":
		data, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("load config (%s): %w", path, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("parse config (%s): %w", path, err)
		}
	default:
		return Config{}, fmt.Errorf("%w: unsupported config format %q", ErrInvalidConfig, ext)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	if _, err := c.Spec(); err != nil {
		return fmt.Errorf("%w: default_spec: %w", ErrInvalidConfig, err)
	}
	if c.MaxDepth < 0 {
		return fmt.Errorf("%w: max_depth must not be negative", ErrInvalidConfig)
	}
	if c.MaxValueLength < 0 {
		return fmt.Errorf("%w: max_value_length must not be negative", ErrInvalidConfig)
	}
	if _, err := c.Level(); err != nil {
		return fmt.Errorf("%w: log_level: %w", ErrInvalidConfig, err)
	}
	return nil
}

// Spec parses DefaultSpec.
func (c Config) Spec() (Spec, error) {
	s, err := ParseSpec(c.DefaultSpec)
	if err == nil && s == UnsupportedVersion {
		err = fmt.Errorf("%w: %q", ErrUnknownSpec, c.DefaultSpec)
	}
	return s, err
}

// Level parses LogLevel; empty means info.
func (c Config) Level() (zerolog.Level, error) {
	if strings.TrimSpace(c.LogLevel) == "" {
		return zerolog.InfoLevel, nil
	}
	return zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(c.LogLevel)))
}

// DecodeOptions returns the record-level limits of c.
func (c Config) DecodeOptions() DecodeOptions {
	return DecodeOptions{MaxValueLength: c.MaxValueLength, StrictPadding: c.StrictPadding, MaxDepth: c.MaxDepth}
}
