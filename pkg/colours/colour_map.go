package colours

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/AZIIZALOYIBI/goxlr-utility/pkg/attr"
)

// Slots is the number of colour slots in a map.
const Slots = 10

// OffStyle describes how an element renders while inactive.
type OffStyle uint8

const (
	OffStyleDimmed OffStyle = iota
	OffStyleColour2
	OffStyleDimmedColour2
)

// String returns the attribute form of the style.
func (s OffStyle) String() string {
	switch s {
	case OffStyleDimmed:
		return "DIMMED"
	case OffStyleColour2:
		return "COLOUR2"
	case OffStyleDimmedColour2:
		return "DIMMED COLOUR2"
	default:
		return "UNKNOWN"
	}
}

// ParseOffStyle parses the attribute form of an off style.
func ParseOffStyle(s string) (OffStyle, error) {
	for _, v := range []OffStyle{OffStyleDimmed, OffStyleColour2, OffStyleDimmedColour2} {
		if v.String() == s {
			return v, nil
		}
	}
	return 0, fmt.Errorf("unknown off style %q", s)
}

// ColourMap holds the optional colour attributes of one element.
type ColourMap struct {
	prefix string

	colours     [Slots]*Colour
	offStyle    *OffStyle
	selected    *int
	state       *bool
	blink       *bool
	colourGroup *string
}

// NewColourMap returns an empty map reading attributes under prefix.
func NewColourMap(prefix string) *ColourMap {
	return &ColourMap{prefix: prefix}
}

// Prefix returns the attribute prefix.
func (m *ColourMap) Prefix() string {
	return m.prefix
}

// ReadColours consumes a if it belongs to the map. It reports false for
// attributes it does not recognise.
func (m *ColourMap) ReadColours(a attr.Attribute) (bool, error) {
	key, ok := strings.CutPrefix(a.Name, m.prefix)
	if !ok {
		return false, nil
	}

	switch key {
	case "offStyle":
		s, err := ParseOffStyle(a.Value)
		if err != nil {
			return true, invalid(a, err)
		}
		m.offStyle = &s
		return true, nil
	case "selected":
		n, err := strconv.Atoi(a.Value)
		if err != nil {
			return true, invalid(a, err)
		}
		m.selected = &n
		return true, nil
	case "state":
		v := attr.ParseFlag(a)
		m.state = &v
		return true, nil
	case "blink":
		v := attr.ParseFlag(a)
		m.blink = &v
		return true, nil
	case "colourGroup":
		v := a.Value
		m.colourGroup = &v
		return true, nil
	}

	if idx, ok := strings.CutPrefix(key, "colour"); ok && len(idx) == 1 && idx[0] >= '0' && idx[0] <= '9' {
		c, err := ParseColour(a.Value)
		if err != nil {
			return true, invalid(a, err)
		}
		m.colours[idx[0]-'0'] = &c
		return true, nil
	}
	return false, nil
}

func invalid(a attr.Attribute, err error) error {
	return &attr.ParseError{Kind: attr.KindInvalidColours, Attribute: a.Name, Value: a.Value, Err: err}
}

// WriteColours adds every set attribute to out.
func (m *ColourMap) WriteColours(out attr.Map) {
	for i, c := range m.colours {
		if c != nil {
			out.Set(m.prefix+"colour"+strconv.Itoa(i), c.Hex())
		}
	}
	if m.offStyle != nil {
		out.Set(m.prefix+"offStyle", m.offStyle.String())
	}
	if m.selected != nil {
		out.Set(m.prefix+"selected", strconv.Itoa(*m.selected))
	}
	if m.state != nil {
		out.Set(m.prefix+"state", attr.FormatFlag(*m.state))
	}
	if m.blink != nil {
		out.Set(m.prefix+"blink", attr.FormatFlag(*m.blink))
	}
	if m.colourGroup != nil {
		out.Set(m.prefix+"colourGroup", *m.colourGroup)
	}
}

// Colour returns the colour in slot i.
func (m *ColourMap) Colour(i int) (Colour, bool) {
	if i < 0 || i >= Slots || m.colours[i] == nil {
		return Colour{}, false
	}
	return *m.colours[i], true
}

// SetColour stores c in slot i.
func (m *ColourMap) SetColour(i int, c Colour) error {
	if err := attr.CheckRange("colour slot", i, 0, Slots-1); err != nil {
		return err
	}
	m.colours[i] = &c
	return nil
}

// OffStyle returns the off style, if set.
func (m *ColourMap) OffStyle() (OffStyle, bool) {
	if m.offStyle == nil {
		return 0, false
	}
	return *m.offStyle, true
}

// SetOffStyle sets the off style.
func (m *ColourMap) SetOffStyle(s OffStyle) {
	m.offStyle = &s
}

// Selected returns the selected colour index, if set.
func (m *ColourMap) Selected() (int, bool) {
	if m.selected == nil {
		return 0, false
	}
	return *m.selected, true
}

// State returns the lit state, if set.
func (m *ColourMap) State() (bool, bool) {
	if m.state == nil {
		return false, false
	}
	return *m.state, true
}

// Blink returns the blink flag, if set.
func (m *ColourMap) Blink() (bool, bool) {
	if m.blink == nil {
		return false, false
	}
	return *m.blink, true
}

// ColourGroup returns the colour group, if set.
func (m *ColourMap) ColourGroup() (string, bool) {
	if m.colourGroup == nil {
		return "", false
	}
	return *m.colourGroup, true
}
