// SPDX-License-Identifier: MIT

// Package config holds the explicit solve configuration: YAML on disk,
// validated with struct tags, overridable by CLI flags.
package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// ErrInvalid wraps every validation failure.
var ErrInvalid = errors.New("config: invalid")

var validate = validator.New()

// Config is one solve configuration.
type Config struct {
	Backend        string        `yaml:"backend" validate:"oneof=gini gophersat"`
	TimeLimit      time.Duration `yaml:"time_limit" validate:"gte=0"`
	OptTolerance   float64       `yaml:"opt_tolerance" validate:"gte=0"`
	SearchStrategy string        `yaml:"search_strategy" validate:"oneof=binary linear"`
	// IterationStrategy drives the rounds after the first, which re-solve
	// with witnesses added from uncovered faces. Empty means SearchStrategy.
	IterationStrategy string `yaml:"iteration_strategy" validate:"omitempty,oneof=binary linear"`
	APSP              string `yaml:"apsp" validate:"oneof=dijkstra floyd-warshall"`
	Workers           int    `yaml:"workers" validate:"gte=1,lte=1024"`

	Witness WitnessConfig `yaml:"witness"`
	Log     LogConfig     `yaml:"log"`

	MetricsAddr string `yaml:"metrics_addr" validate:"omitempty,hostname_port"`
}

// WitnessConfig selects the witness source.
type WitnessConfig struct {
	// File, when set, replaces shadow witnesses with a stored witness list.
	File string `yaml:"file"`
}

// LogConfig selects logrus level and formatter.
type LogConfig struct {
	Level  string `yaml:"level" validate:"oneof=trace debug info warn warning error"`
	Format string `yaml:"format" validate:"oneof=text json"`
}

// Default returns the configuration used when nothing is specified.
func Default() Config {
	return Config{
		Backend:           "gini",
		TimeLimit:         15 * time.Minute,
		OptTolerance:      1e-4,
		SearchStrategy:    "binary",
		IterationStrategy: "binary",
		APSP:              "dijkstra",
		Workers:           4,
		Log:               LogConfig{Level: "info", Format: "text"},
	}
}

// Validate checks every field against its tag.
func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			fe := verrs[0]
			return fmt.Errorf("%w: %s fails %q (got %v)", ErrInvalid, fe.Namespace(), fe.Tag(), fe.Value())
		}

		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}

	return nil
}

// Load decodes YAML over Default and validates the result. Unknown keys are
// rejected.
func Load(r io.Reader) (Config, error) {
	c := Default()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&c); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("config: decode: %w", err)
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}

	return c, nil
}

// LoadFile opens path and calls Load.
func LoadFile(path string) (Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: %w", err)
	}
	defer f.Close()

	return Load(f)
}

// Write encodes c as YAML.
func Write(w io.Writer, c Config) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(c); err != nil {
		return fmt.Errorf("config: encode: %w", err)
	}

	return enc.Close()
}
