package profile

import (
	"github.com/AZIIZALOYIBI/goxlr-utility/pkg/attr"
	"github.com/AZIIZALOYIBI/goxlr-utility/pkg/components"
	"github.com/AZIIZALOYIBI/goxlr-utility/pkg/microphone"
	"gopkg.in/yaml.v3"
)

// Summary is a readable view of a profile.
type Summary struct {
	Animation AnimationSummary `yaml:"animation"`
	Megaphone MegaphoneSummary `yaml:"megaphone"`
	Equalizer []BandSummary    `yaml:"equalizer"`
}

// AnimationSummary describes the LED animation.
type AnimationSummary struct {
	Mode      string `yaml:"mode"`
	Mod1      uint8  `yaml:"mod1"`
	Mod2      *uint8 `yaml:"mod2,omitempty"`
	Waterfall string `yaml:"waterfall,omitempty"`
}

// MegaphoneSummary describes the megaphone colours and slots.
type MegaphoneSummary struct {
	Colours map[string]string `yaml:"colours,omitempty"`
	Presets []EffectSummary   `yaml:"presets"`
}

// EffectSummary describes one megaphone slot.
type EffectSummary struct {
	Slot     int    `yaml:"slot"`
	Enabled  bool   `yaml:"enabled"`
	Style    string `yaml:"style"`
	Amount   uint8  `yaml:"amount"`
	PostGain int8   `yaml:"post_gain"`
	HP       uint8  `yaml:"hp"`
	LP       uint8  `yaml:"lp"`
	Beatbox  bool   `yaml:"beatbox,omitempty"`
}

// BandSummary describes one equalizer band.
type BandSummary struct {
	Band      string  `yaml:"band"`
	GainDB    int8    `yaml:"gain_db"`
	Frequency float32 `yaml:"frequency_hz"`
	Register  int32   `yaml:"register"`
}

// Summary returns a readable view of p. Fields a mode does not use are
// omitted.
func (p *Profile) Summary() Summary {
	var s Summary

	a := p.animation
	s.Animation = AnimationSummary{Mode: a.Mode().String(), Mod1: a.Mod1()}
	if a.Mod2Available() {
		mod2 := a.Mod2()
		s.Animation.Mod2 = &mod2
	}
	if a.WaterfallAvailable() {
		s.Animation.Waterfall = a.Waterfall().String()
	}

	colours := attr.Map{}
	p.megaphone.ColourMap().WriteColours(colours)
	if len(colours) > 0 {
		s.Megaphone.Colours = colours
	}
	for _, slot := range components.Presets {
		e := p.megaphone.Preset(slot)
		s.Megaphone.Presets = append(s.Megaphone.Presets, EffectSummary{
			Slot:     slot.ID(),
			Enabled:  e.State(),
			Style:    e.Style().String(),
			Amount:   e.TransDistAmt(),
			PostGain: e.TransPostGain(),
			HP:       e.TransHP(),
			LP:       e.TransLP(),
			Beatbox:  e.TransBeatboxEnabled(),
		})
	}

	for _, b := range microphone.Bands {
		s.Equalizer = append(s.Equalizer, BandSummary{
			Band:      b.String(),
			GainDB:    p.equalizer.Gain(b),
			Frequency: p.equalizer.Frequency(b),
			Register:  p.equalizer.FrequencyRegister(b),
		})
	}
	return s
}

// YAML renders the summary.
func (s Summary) YAML() ([]byte, error) {
	return yaml.Marshal(s)
}
