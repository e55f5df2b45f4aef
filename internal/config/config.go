// Package config holds the rotconv configuration and its TOML loader.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

var (
	ErrInvalidConfig = errors.New("invalid configuration")
	ErrUnknownKind   = errors.New("unknown attitude kind")
)

// Kind names the representation of the input attitude.
type Kind string

const (
	KindEuler      Kind = "euler"      // roll, pitch, heading
	KindQuaternion Kind = "quaternion" // w, x, y, z
	KindMatrix     Kind = "matrix"     // 9 entries, row major
	KindRotVec     Kind = "rotvec"     // x, y, z
	KindFused      Kind = "fused"      // yaw, pitch, roll (+ hemi)
)

// Len returns the number of values an attitude of this kind is given by.
func (k Kind) Len() (int, error) {
	switch k {
	case KindEuler, KindRotVec, KindFused:
		return 3, nil
	case KindQuaternion:
		return 4, nil
	case KindMatrix:
		return 9, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownKind, string(k))
}

// Input is the attitude to convert.
type Input struct {
	Kind   Kind      `toml:"kind"`
	Values []float64 `toml:"values"`
	Hemi   bool      `toml:"hemi"`
}

// Config is the rotconv configuration.
type Config struct {
	LogLevel string `toml:"log_level"`
	Degrees  bool   `toml:"degrees"` // angles in and out are in degrees
	Input    Input  `toml:"input"`
}

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{
		LogLevel: "info",
		Degrees:  true,
		Input: Input{
			Kind:   KindEuler,
			Values: []float64{0, 0, 0},
			Hemi:   true,
		},
	}
}

// Load reads the TOML file at path on top of the defaults.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("reading config %s: %w", path, err)
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("decoding config %s: %w", path, err)
	}
	return cfg, cfg.Validate()
}

// Validate checks the input kind and value count and the log level.
func (c Config) Validate() error {
	switch strings.ToLower(c.LogLevel) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("%w: log level %q", ErrInvalidConfig, c.LogLevel)
	}

	n, err := c.Input.Kind.Len()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if len(c.Input.Values) != n {
		return fmt.Errorf("%w: %s needs %d values, got %d", ErrInvalidConfig, c.Input.Kind, n, len(c.Input.Values))
	}
	return nil
}
