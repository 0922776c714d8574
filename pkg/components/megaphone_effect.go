package components

import (
	"fmt"

	"github.com/AZIIZALOYIBI/goxlr-utility/pkg/attr"
	"github.com/AZIIZALOYIBI/goxlr-utility/pkg/units"
	"golang.org/x/exp/constraints"
)

// Attribute names of an effect slot element.
const (
	KeyEffectState        = "megaphoneEffectstate"
	KeyStyle              = "MEGAPHONE_STYLE"
	KeyTransDistAmt       = "TRANS_DIST_AMT"
	KeyTransHP            = "TRANS_HP"
	KeyTransLP            = "TRANS_LP"
	KeyTransPreGain       = "TRANS_PREGAIN"
	KeyTransPostGain      = "TRANS_POSTGAIN"
	KeyTransDistType      = "TRANS_DIST_TYPE"
	KeyTransPresenceGain  = "TRANS_PRESENCE_GAIN"
	KeyTransPresenceFC    = "TRANS_PRESENCE_FC"
	KeyTransPresenceBW    = "TRANS_PRESENCE_BW"
	KeyTransBeatbox       = "TRANS_BEATBOX_ENABLE"
	KeyTransFilterControl = "TRANS_FILTER_CONTROL"
	KeyTransFilter        = "TRANS_FILTER"
	KeyTransCompMid       = "TRANS_DRIVE_POT_GAIN_COMP_MID"
	KeyTransCompMax       = "TRANS_DRIVE_POT_GAIN_COMP_MAX"
)

// MegaphoneEffect is the configuration of one megaphone slot.
type MegaphoneEffect struct {
	state  bool
	style  MegaphoneStyle
	params MegaphonePreset
}

// NewMegaphoneEffect returns a disabled Megaphone-style effect with every
// transform parameter zero.
func NewMegaphoneEffect() MegaphoneEffect {
	return MegaphoneEffect{style: MegaphoneStyleMegaphone}
}

// State reports whether the effect is on when the slot is loaded.
func (e *MegaphoneEffect) State() bool { return e.state }

// SetState turns the effect on or off.
func (e *MegaphoneEffect) SetState(on bool) { e.state = on }

// Style returns the style last applied or parsed.
func (e *MegaphoneEffect) Style() MegaphoneStyle { return e.style }

// TransDistAmt returns the distortion amount.
func (e *MegaphoneEffect) TransDistAmt() uint8 { return e.params.DistAmt }

// TransHP returns the high-pass cutoff.
func (e *MegaphoneEffect) TransHP() uint8 { return e.params.HP }

// TransLP returns the low-pass cutoff.
func (e *MegaphoneEffect) TransLP() uint8 { return e.params.LP }

// TransPreGain returns the gain before distortion.
func (e *MegaphoneEffect) TransPreGain() uint8 { return e.params.PreGain }

// TransPostGain returns the gain after distortion in dB.
func (e *MegaphoneEffect) TransPostGain() int8 { return e.params.PostGain }

// TransDistType returns the distortion type.
func (e *MegaphoneEffect) TransDistType() uint8 { return e.params.DistType }

// TransPresenceGain returns the presence boost.
func (e *MegaphoneEffect) TransPresenceGain() uint8 { return e.params.PresenceGain }

// TransPresenceFC returns the presence centre frequency.
func (e *MegaphoneEffect) TransPresenceFC() uint8 { return e.params.PresenceFC }

// TransPresenceBW returns the presence bandwidth.
func (e *MegaphoneEffect) TransPresenceBW() uint8 { return e.params.PresenceBW }

// TransBeatboxEnabled reports whether beatbox mode is on.
func (e *MegaphoneEffect) TransBeatboxEnabled() bool { return e.params.BeatboxEnabled }

// TransFilterControl returns the filter control mode.
func (e *MegaphoneEffect) TransFilterControl() uint8 { return e.params.FilterControl }

// TransFilter returns the filter setting.
func (e *MegaphoneEffect) TransFilter() uint8 { return e.params.Filter }

// TransDrivePotGainCompMid returns the mid drive gain compensation.
func (e *MegaphoneEffect) TransDrivePotGainCompMid() uint8 { return e.params.DrivePotGainCompMid }

// TransDrivePotGainCompMax returns the maximum drive gain compensation.
func (e *MegaphoneEffect) TransDrivePotGainCompMax() uint8 { return e.params.DrivePotGainCompMax }

// Parameters returns the current transform parameters.
func (e *MegaphoneEffect) Parameters() MegaphonePreset {
	return e.params
}

// SetTransDistAmt sets the distortion amount, a percentage.
func (e *MegaphoneEffect) SetTransDistAmt(v uint8) error {
	if err := attr.CheckRange(KeyTransDistAmt, v, units.PercentMin, units.PercentMax); err != nil {
		return err
	}
	e.params.DistAmt = v
	return nil
}

// SetTransPostGain sets the post gain in dB.
func (e *MegaphoneEffect) SetTransPostGain(v int8) error {
	if err := attr.CheckRange(KeyTransPostGain, v, units.PostGainMin, units.PostGainMax); err != nil {
		return err
	}
	e.params.PostGain = v
	return nil
}

// SetStyle selects a style and copies all of its parameters into the effect.
// Nothing is changed if the style's parameters fail validation.
func (e *MegaphoneEffect) SetStyle(style MegaphoneStyle) error {
	p, ok := PresetFor(style)
	if !ok {
		return fmt.Errorf("%w: %s", attr.ErrOutOfRange, style)
	}
	if err := validatePreset(p); err != nil {
		return fmt.Errorf("style %s: %w", style, err)
	}
	e.style = style
	e.params = p
	return nil
}

func validatePreset(p MegaphonePreset) error {
	if err := attr.CheckRange(KeyTransDistAmt, p.DistAmt, units.PercentMin, units.PercentMax); err != nil {
		return err
	}
	return attr.CheckRange(KeyTransPostGain, p.PostGain, units.PostGainMin, units.PostGainMax)
}

// Attributes returns every attribute of the slot element.
func (e *MegaphoneEffect) Attributes() attr.Map {
	p := e.params
	return attr.Map{
		KeyEffectState:        attr.FormatFlag(e.state),
		KeyStyle:              megaphoneStyleCodec.Encode(e.style),
		KeyTransDistAmt:       attr.FormatInt(p.DistAmt),
		KeyTransHP:            attr.FormatInt(p.HP),
		KeyTransLP:            attr.FormatInt(p.LP),
		KeyTransPreGain:       attr.FormatInt(p.PreGain),
		KeyTransPostGain:      attr.FormatInt(p.PostGain),
		KeyTransDistType:      attr.FormatInt(p.DistType),
		KeyTransPresenceGain:  attr.FormatInt(p.PresenceGain),
		KeyTransPresenceFC:    attr.FormatInt(p.PresenceFC),
		KeyTransPresenceBW:    attr.FormatInt(p.PresenceBW),
		KeyTransBeatbox:       attr.FormatFlag(p.BeatboxEnabled),
		KeyTransFilterControl: attr.FormatInt(p.FilterControl),
		KeyTransFilter:        attr.FormatInt(p.Filter),
		KeyTransCompMid:       attr.FormatInt(p.DrivePotGainCompMid),
		KeyTransCompMax:       attr.FormatInt(p.DrivePotGainCompMax),
	}
}

// parseEffect builds an effect from defaults and attrs alone. Numeric values
// are stored as parsed, without range checks.
func parseEffect(element string, attrs attr.List, diag attr.Diagnostics) (MegaphoneEffect, error) {
	e := NewMegaphoneEffect()
	p := &e.params
	for _, a := range attrs {
		var err error
		switch a.Name {
		case KeyEffectState:
			e.state = attr.ParseFlag(a)
		case KeyStyle:
			if style, ok := megaphoneStyleCodec.Decode(a); ok {
				e.style = style
			}
		case KeyTransDistAmt:
			err = parseInto(&p.DistAmt, a)
		case KeyTransHP:
			err = parseInto(&p.HP, a)
		case KeyTransLP:
			err = parseInto(&p.LP, a)
		case KeyTransPreGain:
			err = parseInto(&p.PreGain, a)
		case KeyTransPostGain:
			err = parseInto(&p.PostGain, a)
		case KeyTransDistType:
			err = parseInto(&p.DistType, a)
		case KeyTransPresenceGain:
			err = parseInto(&p.PresenceGain, a)
		case KeyTransPresenceFC:
			err = parseInto(&p.PresenceFC, a)
		case KeyTransPresenceBW:
			err = parseInto(&p.PresenceBW, a)
		case KeyTransBeatbox:
			p.BeatboxEnabled = attr.ParseNotZero(a)
		case KeyTransFilterControl:
			err = parseInto(&p.FilterControl, a)
		case KeyTransFilter:
			err = parseInto(&p.Filter, a)
		case KeyTransCompMid:
			err = parseInto(&p.DrivePotGainCompMid, a)
		case KeyTransCompMax:
			err = parseInto(&p.DrivePotGainCompMax, a)
		default:
			diag.Unknown(element, a)
		}
		if err != nil {
			return MegaphoneEffect{}, err
		}
	}
	return e, nil
}

func parseInto[T constraints.Integer](dst *T, a attr.Attribute) error {
	v, err := attr.ParseTruncated[T](a)
	if err != nil {
		return err
	}
	*dst = v
	return nil
}
