package main

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// RawBandTable is a band table definition loaded from YAML.
type RawBandTable struct {
	Package         string       `yaml:"package"`
	Type            string       `yaml:"type"`
	Description     string       `yaml:"description"`
	KeyPrefix       string       `yaml:"keyPrefix"`
	GainSuffix      string       `yaml:"gainSuffix"`
	FrequencySuffix string       `yaml:"frequencySuffix"`
	Bands           []RawBandDef `yaml:"bands"`
}

// RawBandDef is one band of the table.
type RawBandDef struct {
	Name      string  `yaml:"name"`      // Go identifier suffix, e.g. "31Hz"
	Label     string  `yaml:"label"`     // display name, e.g. "31.5Hz"
	Token     string  `yaml:"token"`     // attribute key token, e.g. "31.5HZ"
	Frequency float64 `yaml:"frequency"` // nominal centre frequency in Hz
}

// LoadBandTable reads and validates a band table file.
func LoadBandTable(path string) (*RawBandTable, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return ParseBandTable(data)
}

// ParseBandTable parses and validates a band table.
func ParseBandTable(data []byte) (*RawBandTable, error) {
	var table RawBandTable
	if err := yaml.Unmarshal(data, &table); err != nil {
		return nil, fmt.Errorf("parsing band table: %w", err)
	}
	if err := table.Validate(); err != nil {
		return nil, err
	}
	return &table, nil
}

// Validate checks that the table can be generated.
func (t *RawBandTable) Validate() error {
	if t.Package == "" {
		return fmt.Errorf("band table: package is required")
	}
	if t.Type == "" {
		return fmt.Errorf("band table: type is required")
	}
	if len(t.Bands) == 0 {
		return fmt.Errorf("band table: no bands")
	}
	if len(t.Bands) > 256 {
		return fmt.Errorf("band table: %d bands do not fit in uint8", len(t.Bands))
	}

	seen := make(map[string]bool, len(t.Bands))
	prev := 0.0
	for i, b := range t.Bands {
		switch {
		case b.Name == "" || b.Token == "":
			return fmt.Errorf("band %d: name and token are required", i)
		case strings.ContainsAny(b.Token, " \"<>&"):
			return fmt.Errorf("band %s: token %q is not a valid attribute fragment", b.Name, b.Token)
		case seen[b.Name]:
			return fmt.Errorf("band %s: duplicate name", b.Name)
		case b.Frequency <= prev:
			return fmt.Errorf("band %s: frequency %g must be positive and ascending", b.Name, b.Frequency)
		}
		seen[b.Name] = true
		prev = b.Frequency
	}
	return nil
}
