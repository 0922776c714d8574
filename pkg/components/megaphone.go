package components

import (
	"fmt"

	"github.com/AZIIZALOYIBI/goxlr-utility/pkg/attr"
	"github.com/AZIIZALOYIBI/goxlr-utility/pkg/colours"
)

// DefaultMegaphoneElement is the element name of the megaphone model.
const DefaultMegaphoneElement = "megaphoneEffect"

// Megaphone is the megaphone effect base: a colour map and six effect slots.
// Every slot always holds an effect.
type Megaphone struct {
	elementName string
	diag        attr.Diagnostics

	colours *colours.ColourMap
	presets [len(Presets)]MegaphoneEffect
}

// NewMegaphone returns a megaphone with default effects in every slot. The
// colour map uses elementName as its prefix. An empty elementName selects
// DefaultMegaphoneElement.
func NewMegaphone(elementName string, opts ...attr.Option) *Megaphone {
	if elementName == "" {
		elementName = DefaultMegaphoneElement
	}
	m := &Megaphone{
		elementName: elementName,
		diag:        attr.NewDiagnostics(opts...),
		colours:     colours.NewColourMap(elementName),
	}
	for i := range m.presets {
		m.presets[i] = NewMegaphoneEffect()
	}
	return m
}

// ElementName returns the root element name.
func (m *Megaphone) ElementName() string {
	return m.elementName
}

// SlotElement returns the element name of slot p.
func (m *Megaphone) SlotElement(p Preset) string {
	return m.elementName + p.TagSuffix()
}

// ColourMap returns the root colour map.
func (m *Megaphone) ColourMap() *colours.ColourMap {
	return m.colours
}

// Preset returns the effect in slot p, or nil if p is not a slot.
func (m *Megaphone) Preset(p Preset) *MegaphoneEffect {
	if !p.Valid() {
		return nil
	}
	return &m.presets[p-Preset1]
}

// ParseRoot hands every root attribute to the colour map. Attributes the
// colour map does not claim go to the unknown-attribute handler.
func (m *Megaphone) ParseRoot(attrs attr.List) error {
	next := *m.colours
	for _, a := range attrs {
		ok, err := next.ReadColours(a)
		if err != nil {
			return err
		}
		if !ok {
			m.diag.Unknown(m.elementName, a)
		}
	}
	*m.colours = next
	return nil
}

// ParsePreset replaces slot id with an effect built from attrs alone. The
// result is discarded if id is not in 1..6.
func (m *Megaphone) ParsePreset(id int, attrs attr.List) error {
	element := fmt.Sprintf("%spreset%d", m.elementName, id)
	e, err := parseEffect(element, attrs, m.diag)
	if err != nil {
		return err
	}
	p, ok := PresetFromID(id)
	if !ok {
		m.diag.Logger().Debug("dropping megaphone preset", "element", element, "id", id)
		return nil
	}
	m.presets[p-Preset1] = e
	return nil
}

// Write emits the root element with its colour attributes and one child per
// slot.
func (m *Megaphone) Write(w attr.Writer) error {
	root := attr.Map{}
	m.colours.WriteColours(root)
	if err := w.StartElement(m.elementName, root); err != nil {
		return err
	}
	for _, p := range Presets {
		if err := w.EmptyElement(m.SlotElement(p), m.Preset(p).Attributes()); err != nil {
			return err
		}
	}
	return w.EndElement(m.elementName)
}
