package components

import (
	"errors"
	"fmt"

	"github.com/AZIIZALOYIBI/goxlr-utility/pkg/attr"
	"github.com/AZIIZALOYIBI/goxlr-utility/pkg/units"
)

// ErrUnavailableInMode is returned by setters for fields the current
// animation mode does not use.
var ErrUnavailableInMode = errors.New("not available in this animation mode")

// DefaultAnimationElement is the element name of the animation model.
const DefaultAnimationElement = "animationTree"

const (
	keyAnimationMode = "animationMode"
	keyMod1          = "mod1"
	keyMod2          = "mod2"
	keyMod3          = "mod3"
)

// AnimationMode selects the LED animation.
type AnimationMode uint8

const (
	AnimationRetroRainbow AnimationMode = iota
	AnimationRainbowDark
	AnimationRainbowBright
	AnimationSimple
	AnimationRipple
	AnimationNone
)

// String returns the mode name.
func (m AnimationMode) String() string {
	switch m {
	case AnimationRetroRainbow:
		return "RetroRainbow"
	case AnimationRainbowDark:
		return "RainbowDark"
	case AnimationRainbowBright:
		return "RainbowBright"
	case AnimationSimple:
		return "Simple"
	case AnimationRipple:
		return "Ripple"
	case AnimationNone:
		return "None"
	default:
		return fmt.Sprintf("AnimationMode(%d)", uint8(m))
	}
}

// WaterfallDirection is the direction of the waterfall effect.
type WaterfallDirection uint8

const (
	WaterfallDown WaterfallDirection = iota
	WaterfallUp
	WaterfallOff
)

// String returns the direction name.
func (d WaterfallDirection) String() string {
	switch d {
	case WaterfallDown:
		return "Down"
	case WaterfallUp:
		return "Up"
	case WaterfallOff:
		return "Off"
	default:
		return fmt.Sprintf("WaterfallDirection(%d)", uint8(d))
	}
}

var (
	animationModes = []AnimationMode{
		AnimationRetroRainbow, AnimationRainbowDark, AnimationRainbowBright,
		AnimationSimple, AnimationRipple, AnimationNone,
	}
	waterfallDirections = []WaterfallDirection{WaterfallDown, WaterfallUp, WaterfallOff}

	animationModeCodec = attr.NewOrdinal(animationModes...)
	waterfallCodec     = attr.NewOrdinal(waterfallDirections...)

	// AnimationModeNames parses mode names.
	AnimationModeNames = attr.NewNamed("animation mode", AnimationMode.String, animationModes...)

	// WaterfallNames parses waterfall direction names.
	WaterfallNames = attr.NewNamed("waterfall", WaterfallDirection.String, waterfallDirections...)
)

type animationValues struct {
	mode      AnimationMode
	mod1      uint8
	mod2      uint8
	waterfall WaterfallDirection
}

// Animation is the LED animation model.
type Animation struct {
	elementName string
	diag        attr.Diagnostics

	values animationValues
}

// NewAnimation returns an animation with mode None, zero modifiers and a
// downward waterfall. An empty elementName selects DefaultAnimationElement.
func NewAnimation(elementName string, opts ...attr.Option) *Animation {
	if elementName == "" {
		elementName = DefaultAnimationElement
	}
	return &Animation{
		elementName: elementName,
		diag:        attr.NewDiagnostics(opts...),
		values:      animationValues{mode: AnimationNone, waterfall: WaterfallDown},
	}
}

// ElementName returns the element the model reads and writes.
func (a *Animation) ElementName() string {
	return a.elementName
}

// Parse applies an element's attributes. Ordinals that name no variant are
// logged and leave the field unchanged. A malformed value aborts the parse
// without modifying the model.
func (a *Animation) Parse(attrs attr.List) error {
	next := a.values
	for _, at := range attrs {
		switch at.Name {
		case keyAnimationMode:
			v, ok, err := animationModeCodec.Decode(at)
			if err != nil {
				return err
			}
			if !ok {
				a.diag.OutOfRange(a.elementName, at)
				continue
			}
			next.mode = v
		case keyMod1:
			v, err := attr.ParseTruncated[uint8](at)
			if err != nil {
				return err
			}
			next.mod1 = v
		case keyMod2:
			v, err := attr.ParseTruncated[uint8](at)
			if err != nil {
				return err
			}
			next.mod2 = v
		case keyMod3:
			v, ok, err := waterfallCodec.Decode(at)
			if err != nil {
				return err
			}
			if !ok {
				a.diag.OutOfRange(a.elementName, at)
				continue
			}
			next.waterfall = v
		default:
			a.diag.Unknown(a.elementName, at)
		}
	}
	a.values = next
	return nil
}

// Attributes returns the four attributes of the element.
func (a *Animation) Attributes() attr.Map {
	return attr.Map{
		keyAnimationMode: animationModeCodec.Encode(a.values.mode),
		keyMod1:          attr.FormatInt(a.values.mod1),
		keyMod2:          attr.FormatInt(a.values.mod2),
		keyMod3:          waterfallCodec.Encode(a.values.waterfall),
	}
}

// Write emits the animation as a single empty element.
func (a *Animation) Write(w attr.Writer) error {
	return w.EmptyElement(a.elementName, a.Attributes())
}

// Mode returns the animation mode.
func (a *Animation) Mode() AnimationMode {
	return a.values.mode
}

// Mod1 returns modifier one.
func (a *Animation) Mod1() uint8 {
	return a.values.mod1
}

// Mod2 returns modifier two. It is only used by the rainbow modes.
func (a *Animation) Mod2() uint8 {
	return a.values.mod2
}

// Waterfall returns the waterfall direction.
func (a *Animation) Waterfall() WaterfallDirection {
	return a.values.waterfall
}

// Mod2Available reports whether the current mode uses modifier two.
func (a *Animation) Mod2Available() bool {
	return a.values.mode == AnimationRainbowBright || a.values.mode == AnimationRainbowDark
}

// WaterfallAvailable reports whether the current mode uses the waterfall.
func (a *Animation) WaterfallAvailable() bool {
	return a.values.mode != AnimationRetroRainbow && a.values.mode != AnimationNone
}

// SetMode sets the animation mode. Dependent fields are kept.
func (a *Animation) SetMode(mode AnimationMode) {
	a.values.mode = mode
}

// SetMod1 sets modifier one, a percentage.
func (a *Animation) SetMod1(v uint8) error {
	if err := attr.CheckRange(keyMod1, v, units.PercentMin, units.PercentMax); err != nil {
		return err
	}
	a.values.mod1 = v
	return nil
}

// SetMod2 sets modifier two, a percentage. Only the RainbowBright and
// RainbowDark modes accept it.
func (a *Animation) SetMod2(v uint8) error {
	if !a.Mod2Available() {
		return fmt.Errorf("%w: mod2 in %s", ErrUnavailableInMode, a.values.mode)
	}
	if err := attr.CheckRange(keyMod2, v, units.PercentMin, units.PercentMax); err != nil {
		return err
	}
	a.values.mod2 = v
	return nil
}

// SetWaterfall sets the waterfall direction.
func (a *Animation) SetWaterfall(d WaterfallDirection) error {
	if !a.WaterfallAvailable() {
		return fmt.Errorf("%w: waterfall in %s", ErrUnavailableInMode, a.values.mode)
	}
	a.values.waterfall = d
	return nil
}
