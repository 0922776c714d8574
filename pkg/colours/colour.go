package colours

import (
	"fmt"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// Colour is an 8-bit-per-channel RGB colour.
type Colour struct {
	c colorful.Color
}

// RGB builds a colour from 8-bit channels.
func RGB(r, g, b uint8) Colour {
	return Colour{c: colorful.Color{R: float64(r) / 255, G: float64(g) / 255, B: float64(b) / 255}}
}

// ParseColour parses a six digit hex string without a leading '#'.
func ParseColour(s string) (Colour, error) {
	if len(s) != 6 || strings.IndexFunc(s, notHex) >= 0 {
		return Colour{}, fmt.Errorf("colour %q is not RRGGBB", s)
	}
	c, err := colorful.Hex("#" + s)
	if err != nil {
		return Colour{}, err
	}
	return Colour{c: c}, nil
}

func notHex(r rune) bool {
	switch {
	case r >= '0' && r <= '9', r >= 'a' && r <= 'f', r >= 'A' && r <= 'F':
		return false
	}
	return true
}

// Hex returns the colour as upper-case RRGGBB.
func (c Colour) Hex() string {
	return strings.ToUpper(strings.TrimPrefix(c.c.Hex(), "#"))
}

// String implements fmt.Stringer.
func (c Colour) String() string {
	return c.Hex()
}
