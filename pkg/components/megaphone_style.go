package components

import (
	"fmt"

	"github.com/AZIIZALOYIBI/goxlr-utility/pkg/attr"
)

// MegaphoneStyle is a family of megaphone effects.
type MegaphoneStyle uint8

const (
	MegaphoneStyleMegaphone MegaphoneStyle = iota
	MegaphoneStyleRadio
	MegaphoneStyleOnThePhone
	MegaphoneStyleOverdrive
	MegaphoneStyleBuzzCutt
	MegaphoneStyleTweed
)

// String returns the style name.
func (s MegaphoneStyle) String() string {
	switch s {
	case MegaphoneStyleMegaphone:
		return "Megaphone"
	case MegaphoneStyleRadio:
		return "Radio"
	case MegaphoneStyleOnThePhone:
		return "OnThePhone"
	case MegaphoneStyleOverdrive:
		return "Overdrive"
	case MegaphoneStyleBuzzCutt:
		return "BuzzCutt"
	case MegaphoneStyleTweed:
		return "Tweed"
	default:
		return fmt.Sprintf("MegaphoneStyle(%d)", uint8(s))
	}
}

// UIIndex returns the index the vendor application stores for the style.
// It is not tied to declaration order.
func (s MegaphoneStyle) UIIndex() string {
	switch s {
	case MegaphoneStyleMegaphone:
		return "0"
	case MegaphoneStyleRadio:
		return "1"
	case MegaphoneStyleOnThePhone:
		return "2"
	case MegaphoneStyleOverdrive:
		return "3"
	case MegaphoneStyleBuzzCutt:
		return "4"
	case MegaphoneStyleTweed:
		return "5"
	default:
		return ""
	}
}

var (
	megaphoneStyles = []MegaphoneStyle{
		MegaphoneStyleMegaphone, MegaphoneStyleRadio, MegaphoneStyleOnThePhone,
		MegaphoneStyleOverdrive, MegaphoneStyleBuzzCutt, MegaphoneStyleTweed,
	}

	megaphoneStyleCodec = attr.NewIndexed(MegaphoneStyle.UIIndex, megaphoneStyles...)

	// MegaphoneStyleNames parses style names.
	MegaphoneStyleNames = attr.NewNamed("megaphone style", MegaphoneStyle.String, megaphoneStyles...)
)

// MegaphoneStyles returns every style in declaration order.
func MegaphoneStyles() []MegaphoneStyle {
	return append([]MegaphoneStyle(nil), megaphoneStyles...)
}

// MegaphonePreset is the parameter set a style applies to an effect slot.
type MegaphonePreset struct {
	DistAmt             uint8
	HP                  uint8
	LP                  uint8
	PreGain             uint8
	PostGain            int8
	DistType            uint8
	PresenceGain        uint8
	PresenceFC          uint8
	PresenceBW          uint8
	BeatboxEnabled      bool
	FilterControl       uint8
	Filter              uint8
	DrivePotGainCompMid uint8
	DrivePotGainCompMax uint8
}

var megaphonePresets = map[MegaphoneStyle]MegaphonePreset{
	MegaphoneStyleMegaphone: {
		DistAmt: 0, HP: 120, LP: 200, PreGain: 0, PostGain: 2, DistType: 6,
		PresenceGain: 8, PresenceFC: 135, PresenceBW: 7, BeatboxEnabled: false,
		FilterControl: 2, Filter: 59, DrivePotGainCompMid: 0, DrivePotGainCompMax: 0,
	},
	MegaphoneStyleRadio: {
		DistAmt: 30, HP: 110, LP: 190, PreGain: 0, PostGain: 2, DistType: 4,
		PresenceGain: 7, PresenceFC: 160, PresenceBW: 5, BeatboxEnabled: false,
		FilterControl: 1, Filter: 59, DrivePotGainCompMid: 0, DrivePotGainCompMax: 5,
	},
	MegaphoneStyleOnThePhone: {
		DistAmt: 50, HP: 50, LP: 238, PreGain: 0, PostGain: 0, DistType: 12,
		PresenceGain: 10, PresenceFC: 160, PresenceBW: 5, BeatboxEnabled: false,
		FilterControl: 3, Filter: 0, DrivePotGainCompMid: 0, DrivePotGainCompMax: 0,
	},
	MegaphoneStyleOverdrive: {
		DistAmt: 50, HP: 50, LP: 238, PreGain: 0, PostGain: 2, DistType: 1,
		PresenceGain: 0, PresenceFC: 168, PresenceBW: 8, BeatboxEnabled: false,
		FilterControl: 1, Filter: 100, DrivePotGainCompMid: 1, DrivePotGainCompMax: 25,
	},
	MegaphoneStyleBuzzCutt: {
		DistAmt: 50, HP: 50, LP: 238, PreGain: 0, PostGain: 2, DistType: 9,
		PresenceGain: 5, PresenceFC: 174, PresenceBW: 4, BeatboxEnabled: false,
		FilterControl: 3, Filter: 100, DrivePotGainCompMid: 1, DrivePotGainCompMax: 8,
	},
	MegaphoneStyleTweed: {
		DistAmt: 20, HP: 78, LP: 192, PreGain: 10, PostGain: 2, DistType: 13,
		PresenceGain: 0, PresenceFC: 168, PresenceBW: 8, BeatboxEnabled: false,
		FilterControl: 3, Filter: 59, DrivePotGainCompMid: 3, DrivePotGainCompMax: 4,
	},
}

// PresetFor returns the parameter set of style. ok is false for a value
// outside the declared styles.
func PresetFor(style MegaphoneStyle) (p MegaphonePreset, ok bool) {
	p, ok = megaphonePresets[style]
	return p, ok
}
