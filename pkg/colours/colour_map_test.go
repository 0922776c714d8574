package colours

import (
	"testing"

	"github.com/AZIIZALOYIBI/goxlr-utility/pkg/attr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseColourRoundTrip(t *testing.T) {
	for _, s := range []string{"000000", "FFFFFF", "00FFFF", "12AB7F", "010203"} {
		t.Run(s, func(t *testing.T) {
			c, err := ParseColour(s)
			require.NoError(t, err)
			assert.Equal(t, s, c.Hex())
		})
	}

	c, err := ParseColour("ff8000")
	require.NoError(t, err)
	assert.Equal(t, RGB(255, 128, 0).Hex(), c.Hex())
	assert.Equal(t, "FF8000", c.String())
}

func TestParseColourInvalid(t *testing.T) {
	for _, s := range []string{"", "FFF", "#FFFFFF", "GG0000", "1234567"} {
		_, err := ParseColour(s)
		assert.Error(t, err, s)
	}
}

func TestReadColours(t *testing.T) {
	m := NewColourMap("megaphoneEffect")
	input := attr.List{
		{Name: "megaphoneEffectcolour0", Value: "00FFFF"},
		{Name: "megaphoneEffectcolour9", Value: "FF0000"},
		{Name: "megaphoneEffectoffStyle", Value: "DIMMED COLOUR2"},
		{Name: "megaphoneEffectselected", Value: "1"},
		{Name: "megaphoneEffectstate", Value: "1"},
		{Name: "megaphoneEffectblink", Value: "0"},
		{Name: "megaphoneEffectcolourGroup", Value: "group1"},
	}
	for _, a := range input {
		ok, err := m.ReadColours(a)
		require.NoError(t, err)
		assert.True(t, ok, a.Name)
	}

	c, ok := m.Colour(9)
	require.True(t, ok)
	assert.Equal(t, "FF0000", c.Hex())
	_, ok = m.Colour(5)
	assert.False(t, ok)

	style, ok := m.OffStyle()
	assert.True(t, ok)
	assert.Equal(t, OffStyleDimmedColour2, style)

	out := attr.Map{}
	m.WriteColours(out)
	assert.Equal(t, input.Map(), out)
}

func TestReadColoursUnrecognised(t *testing.T) {
	m := NewColourMap("megaphoneEffect")
	for _, name := range []string{"otherColour0", "megaphoneEffectcolour10", "megaphoneEffectcolourX", "megaphoneEffect"} {
		ok, err := m.ReadColours(attr.Attribute{Name: name, Value: "000000"})
		require.NoError(t, err)
		assert.False(t, ok, name)
	}

	out := attr.Map{}
	m.WriteColours(out)
	assert.Empty(t, out)
}

func TestReadColoursInvalid(t *testing.T) {
	m := NewColourMap("fader")
	for _, a := range []attr.Attribute{
		{Name: "fadercolour0", Value: "nothex"},
		{Name: "faderoffStyle", Value: "BRIGHT"},
		{Name: "faderselected", Value: "x"},
	} {
		ok, err := m.ReadColours(a)
		assert.True(t, ok)
		assert.ErrorIs(t, err, attr.ErrInvalidColours, a.Name)
	}
}

func TestSetColour(t *testing.T) {
	m := NewColourMap("p")
	require.NoError(t, m.SetColour(0, RGB(1, 2, 3)))
	assert.ErrorIs(t, m.SetColour(10, RGB(1, 2, 3)), attr.ErrOutOfRange)

	m.SetOffStyle(OffStyleColour2)
	out := attr.Map{}
	m.WriteColours(out)
	assert.Equal(t, attr.Map{"pcolour0": "010203", "poffStyle": "COLOUR2"}, out)
}
