package components

import "fmt"

// Preset identifies one of the six effect slots.
type Preset uint8

const (
	Preset1 Preset = iota + 1
	Preset2
	Preset3
	Preset4
	Preset5
	Preset6
)

// Presets lists every slot in order.
var Presets = [...]Preset{Preset1, Preset2, Preset3, Preset4, Preset5, Preset6}

// PresetFromID returns the slot for id 1..6.
func PresetFromID(id int) (Preset, bool) {
	if id < int(Preset1) || id > int(Preset6) {
		return 0, false
	}
	return Preset(id), true
}

// ID returns the slot number.
func (p Preset) ID() int {
	return int(p)
}

// Valid reports whether p names a slot.
func (p Preset) Valid() bool {
	return p >= Preset1 && p <= Preset6
}

// TagSuffix returns the suffix appended to the owner's element name for the
// slot's child element.
func (p Preset) TagSuffix() string {
	return fmt.Sprintf("preset%d", uint8(p))
}

// String implements fmt.Stringer.
func (p Preset) String() string {
	return fmt.Sprintf("Preset%d", uint8(p))
}
