package main

import (
	"fmt"
	"strings"
)

// GenerateBands renders the Go source for a band table.
func GenerateBands(t *RawBandTable) (string, error) {
	if err := t.Validate(); err != nil {
		return "", err
	}

	data := tableData{
		Package:     t.Package,
		Type:        t.Type,
		Description: t.Description,
	}
	if data.Description == "" {
		data.Description = fmt.Sprintf("a %s value", t.Type)
	}
	for _, b := range t.Bands {
		label := b.Label
		if label == "" {
			label = b.Name
		}
		data.Bands = append(data.Bands, bandData{
			Const:     t.Type + b.Name,
			Label:     label,
			Token:     b.Token,
			GainKey:   t.KeyPrefix + b.Token + t.GainSuffix,
			FreqKey:   t.KeyPrefix + b.Token + t.FrequencySuffix,
			Frequency: b.Frequency,
		})
	}

	var sb strings.Builder
	if err := templates.ExecuteTemplate(&sb, "bands", data); err != nil {
		return "", fmt.Errorf("rendering bands: %w", err)
	}
	return sb.String(), nil
}
