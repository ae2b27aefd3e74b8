// Package config loads the YAML configuration of the exercises tool.
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"

	"github.com/marcodamonte/exercises/square"
)

// ErrInvalidConfig classifies configuration validation failures.
var ErrInvalidConfig = errors.New("invalid config")

// Config is the root configuration document.
type Config struct {
	Log    Log    `yaml:"log"`
	Square Square `yaml:"square"`
	Loop   Loop   `yaml:"loop"`
}

// Log configures the zap logger.
type Log struct {
	Level       string `yaml:"level"`
	Development bool   `yaml:"development"`
}

// Square configures delayed squaring.
type Square struct {
	Delay time.Duration `yaml:"delay"`
}

// Loop configures the timer loop.
type Loop struct {
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`
}

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{
		Log:    Log{Level: "info"},
		Square: Square{Delay: square.DefaultDelay},
		Loop:   Loop{ShutdownTimeout: 5 * time.Second},
	}
}

// Load reads path and overlays it onto Default. Keys missing from the file
// keep their default values.
func Load(path string) (Config, error) {
	cfg := Default()

	b, err := os.ReadFile(path)
	if err != nil {
		return Config{}, &LoadError{Op: "config.load", Path: path, Err: err}
	}
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return Config{}, &LoadError{Op: "config.load", Path: path, Err: err}
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, &LoadError{Op: "config.validate", Path: path, Err: err}
	}
	return cfg, nil
}

// Validate checks field values.
func (c Config) Validate() error {
	if _, err := zapcore.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("log.level %q: %w", c.Log.Level, ErrInvalidConfig)
	}
	if c.Square.Delay < 0 {
		return fmt.Errorf("square.delay must not be negative: %w", ErrInvalidConfig)
	}
	if c.Loop.ShutdownTimeout < 0 {
		return fmt.Errorf("loop.shutdown_timeout must not be negative: %w", ErrInvalidConfig)
	}
	return nil
}

// LoadError wraps a failure to load a file with the operation and path.
type LoadError struct {
	Op   string
	Path string
	Err  error
}

func (e *LoadError) Error() string {
	if e == nil {
		return "<nil>"
	}
	return fmt.Sprintf("%s (path=%s): %v", e.Op, e.Path, e.Err)
}

func (e *LoadError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}
