package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/AZIIZALOYIBI/goxlr-utility/pkg/attr"
	"github.com/AZIIZALOYIBI/goxlr-utility/pkg/profile"
	"gopkg.in/yaml.v3"
)

// UnknownPolicy selects what happens to unrecognised attributes.
type UnknownPolicy string

const (
	UnknownLog    UnknownPolicy = "log"
	UnknownIgnore UnknownPolicy = "ignore"
)

// Config holds the tool settings.
type Config struct {
	LogLevel          string               `yaml:"log_level"`
	UnknownAttributes UnknownPolicy        `yaml:"unknown_attributes"`
	Profile           string               `yaml:"profile"`
	Elements          profile.ElementNames `yaml:"elements"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		LogLevel:          "info",
		UnknownAttributes: UnknownLog,
		Elements:          profile.DefaultElementNames(),
	}
}

// Load reads path over the defaults and validates the result.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("reading config: %w", err)
	}
	return Parse(data)
}

// Parse decodes YAML over the defaults and validates the result. Unknown
// keys are rejected.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks field values.
func (c Config) Validate() error {
	if _, err := c.Level(); err != nil {
		return err
	}
	switch c.UnknownAttributes {
	case UnknownLog, UnknownIgnore:
	default:
		return fmt.Errorf("unknown_attributes must be %q or %q, got %q", UnknownLog, UnknownIgnore, c.UnknownAttributes)
	}
	n := c.Elements
	if n.Animation == "" || n.Megaphone == "" || n.Equalizer == "" {
		return fmt.Errorf("element names must not be empty")
	}
	if n.Animation == n.Megaphone || n.Animation == n.Equalizer || n.Megaphone == n.Equalizer {
		return fmt.Errorf("element names must be distinct")
	}
	return nil
}

// Level parses LogLevel.
func (c Config) Level() (slog.Level, error) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(strings.ToUpper(c.LogLevel))); err != nil {
		return 0, fmt.Errorf("log_level must be debug, info, warn or error, got %q", c.LogLevel)
	}
	return l, nil
}

// Logger returns a text logger writing to w at the configured level.
func (c Config) Logger(w io.Writer) *slog.Logger {
	level, err := c.Level()
	if err != nil {
		level = slog.LevelInfo
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// ProfileOptions returns the profile options matching the settings.
func (c Config) ProfileOptions(logger *slog.Logger) []profile.Option {
	opts := []profile.Option{
		profile.WithElementNames(c.Elements),
		profile.WithLogger(logger),
	}
	if c.UnknownAttributes == UnknownIgnore {
		opts = append(opts, profile.WithUnknownHandler(attr.IgnoreUnknown{}))
	}
	return opts
}
