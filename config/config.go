// SPDX-License-Identifier: MIT

// Package config loads chembalance configuration.
//
// Configuration comes from a single file named by the --config flag or the
// CHEMBALANCE_CONFIG environment variable. There is no discovery: without
// either, the built-in defaults apply. Command-line flags override file
// values.
//
// The file format follows the extension: .yaml/.yml is YAML, .json/.jsonc is
// JSON with // and /* */ comments and trailing commas allowed. Unknown keys
// are rejected in both.
//
//	output:
//	  style: unicode      # latex | plain | unicode
//	  format: text        # text | json | yaml | cbor | msgpack
//	builder:
//	  element_order: first-seen   # first-seen | alphabetical
//	batch:
//	  workers: 8
//	log:
//	  level: info         # debug | info | warn | error
//	  format: text        # text | json
package config

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/tidwall/jsonc"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/chembalance/balance"
	"github.com/katalvlaran/chembalance/builder"
	"github.com/katalvlaran/chembalance/codec"
	"github.com/katalvlaran/chembalance/equation"
)

// EnvVar names the environment variable holding the config file path.
const EnvVar = "CHEMBALANCE_CONFIG"

var (
	// ErrInvalid is returned by Validate for an out-of-range value.
	ErrInvalid = errors.New("config: invalid value")

	// ErrUnsupportedExtension is returned for files that are neither YAML nor JSON.
	ErrUnsupportedExtension = errors.New("config: unsupported file extension")
)

// Config is the complete chembalance configuration.
type Config struct {
	Output  OutputConfig  `yaml:"output" json:"output"`
	Builder BuilderConfig `yaml:"builder" json:"builder"`
	Batch   BatchConfig   `yaml:"batch" json:"batch"`
	Log     LogConfig     `yaml:"log" json:"log"`
}

// OutputConfig controls how results are rendered.
type OutputConfig struct {
	// Style is the equation notation: latex, plain or unicode.
	Style string `yaml:"style" json:"style"`

	// Format is the report encoding: text, json, yaml, cbor or msgpack.
	Format string `yaml:"format" json:"format"`
}

// BuilderConfig controls matrix construction.
type BuilderConfig struct {
	// ElementOrder is the matrix row order: first-seen or alphabetical.
	ElementOrder string `yaml:"element_order" json:"element_order"`
}

// BatchConfig controls concurrent balancing.
type BatchConfig struct {
	// Workers bounds the number of equations balanced at once.
	Workers int `yaml:"workers" json:"workers"`
}

// LogConfig controls diagnostic logging on stderr.
type LogConfig struct {
	// Level is debug, info, warn or error.
	Level string `yaml:"level" json:"level"`

	// Format is text or json.
	Format string `yaml:"format" json:"format"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Output:  OutputConfig{Style: equation.StyleLaTeX.String(), Format: codec.FormatText.String()},
		Builder: BuilderConfig{ElementOrder: builder.OrderFirstSeen.String()},
		Batch:   BatchConfig{Workers: runtime.GOMAXPROCS(0)},
		Log:     LogConfig{Level: "warn", Format: "text"},
	}
}

// Read decodes the file at path over the defaults without validating, so
// callers can apply overrides before Validate. An empty path falls back to
// $CHEMBALANCE_CONFIG; if that is empty too, Default is returned.
func Read(path string) (*Config, error) {
	if path == "" {
		path = os.Getenv(EnvVar)
	}
	cfg := Default()
	if path != "" {
		if err := cfg.loadFile(path); err != nil {
			return nil, err
		}
	}

	return cfg, nil
}

// Load is Read followed by Validate.
func Load(path string) (*Config, error) {
	cfg, err := Read(path)
	if err != nil {
		return nil, err
	}
	if err = cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// loadFile decodes path into c according to its extension.
func (c *Config) loadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("config: reading %s: %w", path, err)
	}

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		err = dec.Decode(c)
	case ".json", ".jsonc":
		dec := json.NewDecoder(bytes.NewReader(jsonc.ToJSON(data)))
		dec.DisallowUnknownFields()
		err = dec.Decode(c)
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedExtension, ext)
	}
	// An empty file leaves the defaults in place.
	if err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("config: parsing %s: %w", path, err)
	}

	return nil
}

// Validate checks every enumerated value and the worker count.
func (c *Config) Validate() error {
	if _, err := equation.ParseStyle(c.Output.Style); err != nil {
		return fmt.Errorf("%w: output.style: %w", ErrInvalid, err)
	}
	if _, err := codec.ParseFormat(c.Output.Format); err != nil {
		return fmt.Errorf("%w: output.format: %w", ErrInvalid, err)
	}
	if _, err := builder.ParseElementOrder(c.Builder.ElementOrder); err != nil {
		return fmt.Errorf("%w: builder.element_order: %w", ErrInvalid, err)
	}
	if c.Batch.Workers < 1 {
		return fmt.Errorf("%w: batch.workers must be positive, got %d", ErrInvalid, c.Batch.Workers)
	}
	if _, err := c.LogLevel(); err != nil {
		return fmt.Errorf("%w: log.level: %w", ErrInvalid, err)
	}
	if f := strings.ToLower(c.Log.Format); f != "text" && f != "json" {
		return fmt.Errorf("%w: log.format: %q", ErrInvalid, c.Log.Format)
	}

	return nil
}

// BalanceOptions converts the output and builder sections to balance
// options. Call Validate first; invalid values are reported again here.
func (c *Config) BalanceOptions() ([]balance.Option, error) {
	style, err := equation.ParseStyle(c.Output.Style)
	if err != nil {
		return nil, err
	}
	order, err := builder.ParseElementOrder(c.Builder.ElementOrder)
	if err != nil {
		return nil, err
	}

	return []balance.Option{balance.WithStyle(style), balance.WithElementOrder(order)}, nil
}

// OutputFormat returns the parsed output.format.
func (c *Config) OutputFormat() (codec.Format, error) {
	return codec.ParseFormat(c.Output.Format)
}

// LogLevel returns the parsed log.level.
func (c *Config) LogLevel() (slog.Level, error) {
	var l slog.Level
	err := l.UnmarshalText([]byte(c.Log.Level))

	return l, err
}

// NewLogger builds a stderr-style logger writing to w per the log section.
func (c *Config) NewLogger(w io.Writer) (*slog.Logger, error) {
	level, err := c.LogLevel()
	if err != nil {
		return nil, err
	}
	opts := &slog.HandlerOptions{Level: level}
	if strings.EqualFold(c.Log.Format, "json") {
		return slog.New(slog.NewJSONHandler(w, opts)), nil
	}

	return slog.New(slog.NewTextHandler(w, opts)), nil
}
