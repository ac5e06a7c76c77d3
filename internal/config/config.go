package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/csheth/calculadora/internal/calc"
	"github.com/csheth/calculadora/internal/logger"
	"github.com/csheth/calculadora/internal/tape"
)

// Config holds runtime settings for the calculator binary.
type Config struct {
	// RepeatOperator is the policy for an operator pressed right after another
	// one: "chain" or "replace".
	RepeatOperator string `yaml:"repeat_operator"`
	// TapeSize caps the number of finished calculations kept on the tape.
	TapeSize int `yaml:"tape_size"`
	// AltScreen runs the program in the alternate screen buffer.
	AltScreen bool `yaml:"alt_screen"`
	// Mouse enables click handling on the keypad.
	Mouse bool `yaml:"mouse"`
	// LogFile receives the log output. Empty discards logs.
	LogFile string `yaml:"log_file"`
	// LogLevel is one of debug, info, warn, error.
	LogLevel string `yaml:"log_level"`
}

const (
	// DefaultConfigFilename is read when no --config flag is given.
	DefaultConfigFilename = "calculadora.yaml"

	// DefaultLogLevel applies when log_level is empty.
	DefaultLogLevel = "info"

	// DefaultFilePermissions is used when writing the settings file.
	DefaultFilePermissions = 0o600
)

var (
	// errConfigIsNotSet is returned when a nil configuration is provided.
	errConfigIsNotSet = errors.New("configuration is not set")
	// errNegativeTapeSize is returned for tape_size < 0.
	errNegativeTapeSize = errors.New("tape_size must not be negative")
)

// Default returns the settings used when no file is present.
func Default() *Config {
	return &Config{
		RepeatOperator: string(calc.RepeatChain),
		TapeSize:       tape.DefaultLimit,
		AltScreen:      true,
		Mouse:          true,
		LogLevel:       DefaultLogLevel,
	}
}

// Load reads settings from path on top of Default. When path is empty the
// default filename is tried and a missing file is not an error.
func Load(path string) (*Config, error) {
	optional := path == ""
	if optional {
		path = DefaultConfigFilename
	}

	cfg := Default()

	contents, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		if optional && errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return nil, fmt.Errorf("read settings: %w", err)
	}

	if err := yaml.Unmarshal(contents, cfg); err != nil {
		return nil, fmt.Errorf("unmarshal settings: %w", err)
	}

	if err := Validate(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Save writes cfg to path.
func Save(path string, cfg *Config) error {
	if cfg == nil {
		return errConfigIsNotSet
	}

	if path == "" {
		path = DefaultConfigFilename
	}

	if err := Validate(cfg); err != nil {
		return err
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshal settings: %w", err)
	}

	if err := os.WriteFile(filepath.Clean(path), data, DefaultFilePermissions); err != nil {
		return fmt.Errorf("write settings: %w", err)
	}

	return nil
}

// Validate checks the settings and fills in defaults for empty fields.
func Validate(cfg *Config) error {
	if cfg == nil {
		return errConfigIsNotSet
	}

	policy, err := calc.ParseRepeatPolicy(cfg.RepeatOperator)
	if err != nil {
		return err
	}
	cfg.RepeatOperator = string(policy)

	if cfg.TapeSize < 0 {
		return errNegativeTapeSize
	}
	if cfg.TapeSize == 0 {
		cfg.TapeSize = tape.DefaultLimit
	}

	if cfg.LogLevel == "" {
		cfg.LogLevel = DefaultLogLevel
	}
	if _, ok := logger.ParseLogLevel(cfg.LogLevel); !ok {
		return fmt.Errorf("unknown log level %q", cfg.LogLevel)
	}

	return nil
}

// EngineOptions converts the settings into engine options.
func (c *Config) EngineOptions() calc.Options {
	return calc.Options{Repeat: calc.RepeatPolicy(c.RepeatOperator)}
}
