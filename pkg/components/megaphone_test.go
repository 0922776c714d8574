package components_test

import (
	"maps"
	"slices"
	"testing"

	"github.com/AZIIZALOYIBI/goxlr-utility/pkg/attr"
	"github.com/AZIIZALOYIBI/goxlr-utility/pkg/attr/mocks"
	"github.com/AZIIZALOYIBI/goxlr-utility/pkg/components"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestPresetTable(t *testing.T) {
	tests := []struct {
		style components.MegaphoneStyle
		want  components.MegaphonePreset
	}{
		{components.MegaphoneStyleMegaphone, components.MegaphonePreset{0, 120, 200, 0, 2, 6, 8, 135, 7, false, 2, 59, 0, 0}},
		{components.MegaphoneStyleRadio, components.MegaphonePreset{30, 110, 190, 0, 2, 4, 7, 160, 5, false, 1, 59, 0, 5}},
		{components.MegaphoneStyleOnThePhone, components.MegaphonePreset{50, 50, 238, 0, 0, 12, 10, 160, 5, false, 3, 0, 0, 0}},
		{components.MegaphoneStyleOverdrive, components.MegaphonePreset{50, 50, 238, 0, 2, 1, 0, 168, 8, false, 1, 100, 1, 25}},
		{components.MegaphoneStyleBuzzCutt, components.MegaphonePreset{50, 50, 238, 0, 2, 9, 5, 174, 4, false, 3, 100, 1, 8}},
		{components.MegaphoneStyleTweed, components.MegaphonePreset{20, 78, 192, 10, 2, 13, 0, 168, 8, false, 3, 59, 3, 4}},
	}
	for _, tt := range tests {
		t.Run(tt.style.String(), func(t *testing.T) {
			got, ok := components.PresetFor(tt.style)
			require.True(t, ok)
			assert.Equal(t, tt.want, got)
		})
	}

	_, ok := components.PresetFor(components.MegaphoneStyle(42))
	assert.False(t, ok)
}

func TestSetStyleRadio(t *testing.T) {
	e := components.NewMegaphoneEffect()
	require.NoError(t, e.SetStyle(components.MegaphoneStyleRadio))

	assert.Equal(t, components.MegaphoneStyleRadio, e.Style())
	assert.Equal(t, uint8(110), e.TransHP())
	assert.Equal(t, int8(2), e.TransPostGain())
	assert.Equal(t, uint8(5), e.TransDrivePotGainCompMax())

	want, _ := components.PresetFor(components.MegaphoneStyleRadio)
	assert.Equal(t, want, e.Parameters())
	assert.Equal(t, want.DistAmt, e.TransDistAmt())
	assert.Equal(t, want.LP, e.TransLP())
	assert.Equal(t, want.PreGain, e.TransPreGain())
	assert.Equal(t, want.DistType, e.TransDistType())
	assert.Equal(t, want.PresenceGain, e.TransPresenceGain())
	assert.Equal(t, want.PresenceFC, e.TransPresenceFC())
	assert.Equal(t, want.PresenceBW, e.TransPresenceBW())
	assert.Equal(t, want.BeatboxEnabled, e.TransBeatboxEnabled())
	assert.Equal(t, want.FilterControl, e.TransFilterControl())
	assert.Equal(t, want.Filter, e.TransFilter())
	assert.Equal(t, want.DrivePotGainCompMid, e.TransDrivePotGainCompMid())
}

func TestSetStyleOverwritesEverything(t *testing.T) {
	e := components.NewMegaphoneEffect()
	require.NoError(t, e.SetStyle(components.MegaphoneStyleOverdrive))
	require.NoError(t, e.SetTransDistAmt(99))
	require.NoError(t, e.SetStyle(components.MegaphoneStyleTweed))

	want, _ := components.PresetFor(components.MegaphoneStyleTweed)
	assert.Equal(t, want, e.Parameters())
}

func TestSetStyleUnknownLeavesEffect(t *testing.T) {
	e := components.NewMegaphoneEffect()
	require.NoError(t, e.SetStyle(components.MegaphoneStyleRadio))

	err := e.SetStyle(components.MegaphoneStyle(42))
	assert.ErrorIs(t, err, attr.ErrOutOfRange)
	assert.Equal(t, components.MegaphoneStyleRadio, e.Style())
	assert.Equal(t, uint8(110), e.TransHP())
}

func TestEffectValidatedSetters(t *testing.T) {
	e := components.NewMegaphoneEffect()
	require.NoError(t, e.SetTransDistAmt(100))
	assert.ErrorIs(t, e.SetTransDistAmt(101), attr.ErrOutOfRange)
	assert.Equal(t, uint8(100), e.TransDistAmt())

	require.NoError(t, e.SetTransPostGain(-20))
	require.NoError(t, e.SetTransPostGain(20))
	assert.ErrorIs(t, e.SetTransPostGain(21), attr.ErrOutOfRange)
	assert.ErrorIs(t, e.SetTransPostGain(-21), attr.ErrOutOfRange)
	assert.Equal(t, int8(20), e.TransPostGain())

	e.SetState(true)
	assert.True(t, e.State())
}

func TestPresetSlots(t *testing.T) {
	for id := 1; id <= 6; id++ {
		p, ok := components.PresetFromID(id)
		require.True(t, ok)
		assert.Equal(t, id, p.ID())
	}
	for _, id := range []int{0, 7, -1, 255} {
		_, ok := components.PresetFromID(id)
		assert.False(t, ok, id)
	}
	assert.Equal(t, "preset1", components.Preset1.TagSuffix())
	assert.Equal(t, "preset6", components.Preset6.TagSuffix())
}

func slotAttrs(style string) attr.List {
	return attr.List{
		{Name: "megaphoneEffectstate", Value: "1"},
		{Name: "MEGAPHONE_STYLE", Value: style},
		{Name: "TRANS_DIST_AMT", Value: "30.0"},
		{Name: "TRANS_HP", Value: "110"},
		{Name: "TRANS_LP", Value: "190"},
		{Name: "TRANS_PREGAIN", Value: "0"},
		{Name: "TRANS_POSTGAIN", Value: "-5.000000"},
		{Name: "TRANS_DIST_TYPE", Value: "4"},
		{Name: "TRANS_PRESENCE_GAIN", Value: "7"},
		{Name: "TRANS_PRESENCE_FC", Value: "160"},
		{Name: "TRANS_PRESENCE_BW", Value: "5"},
		{Name: "TRANS_BEATBOX_ENABLE", Value: "2"},
		{Name: "TRANS_FILTER_CONTROL", Value: "1"},
		{Name: "TRANS_FILTER", Value: "59"},
		{Name: "TRANS_DRIVE_POT_GAIN_COMP_MID", Value: "0"},
		{Name: "TRANS_DRIVE_POT_GAIN_COMP_MAX", Value: "5"},
	}
}

func TestParsePreset(t *testing.T) {
	m := components.NewMegaphone("")
	require.NoError(t, m.ParsePreset(3, slotAttrs("4")))

	e := m.Preset(components.Preset3)
	assert.True(t, e.State())
	assert.Equal(t, components.MegaphoneStyleBuzzCutt, e.Style())
	assert.Equal(t, uint8(30), e.TransDistAmt())
	assert.Equal(t, int8(-5), e.TransPostGain())
	assert.True(t, e.TransBeatboxEnabled())
	assert.Equal(t, uint8(5), e.TransDrivePotGainCompMax())
}

func TestParsePresetReplacesSlot(t *testing.T) {
	m := components.NewMegaphone("")
	require.NoError(t, m.ParsePreset(1, slotAttrs("1")))
	require.NoError(t, m.ParsePreset(1, attr.List{{Name: "TRANS_HP", Value: "7"}}))

	e := m.Preset(components.Preset1)
	assert.False(t, e.State())
	assert.Equal(t, components.MegaphoneStyleMegaphone, e.Style())
	assert.Equal(t, uint8(7), e.TransHP())
	assert.Equal(t, uint8(0), e.TransLP())
}

func TestParsePresetUnknownStyleKeepsDefault(t *testing.T) {
	m := components.NewMegaphone("")
	require.NoError(t, m.ParsePreset(2, attr.List{{Name: "MEGAPHONE_STYLE", Value: "9"}}))
	assert.Equal(t, components.MegaphoneStyleMegaphone, m.Preset(components.Preset2).Style())
}

func TestParsePresetOutOfRangeIDDropped(t *testing.T) {
	m := components.NewMegaphone("")
	require.NoError(t, m.ParsePreset(7, slotAttrs("1")))
	for _, p := range components.Presets {
		assert.Equal(t, components.NewMegaphoneEffect(), *m.Preset(p))
	}
}

func TestParsePresetMalformedKeepsSlot(t *testing.T) {
	m := components.NewMegaphone("")
	require.NoError(t, m.ParsePreset(4, slotAttrs("3")))

	err := m.ParsePreset(4, attr.List{{Name: "TRANS_HP", Value: "1"}, {Name: "TRANS_LP", Value: "x"}})
	require.Error(t, err)
	assert.ErrorIs(t, err, attr.ErrExpectedFloat)
	assert.Equal(t, components.MegaphoneStyleOverdrive, m.Preset(components.Preset4).Style())
	assert.Equal(t, uint8(110), m.Preset(components.Preset4).TransHP())
}

func TestParseRoot(t *testing.T) {
	h := mocks.NewMockUnknownHandler(t)
	h.EXPECT().UnknownAttribute("megaphoneEffect", attr.Attribute{Name: "bogus", Value: "1"}).Return().Once()

	m := components.NewMegaphone("", attr.WithUnknownHandler(h))
	require.NoError(t, m.ParseRoot(attr.List{
		{Name: "megaphoneEffectcolour0", Value: "00FFFF"},
		{Name: "bogus", Value: "1"},
	}))
	c, ok := m.ColourMap().Colour(0)
	require.True(t, ok)
	assert.Equal(t, "00FFFF", c.Hex())
}

func TestParseRootInvalidColoursIsAtomic(t *testing.T) {
	m := components.NewMegaphone("")
	err := m.ParseRoot(attr.List{
		{Name: "megaphoneEffectcolour0", Value: "00FFFF"},
		{Name: "megaphoneEffectcolour1", Value: "nope"},
	})
	assert.ErrorIs(t, err, attr.ErrInvalidColours)
	_, ok := m.ColourMap().Colour(0)
	assert.False(t, ok)
}

func TestMegaphoneWriteAlwaysSixSlots(t *testing.T) {
	m := components.NewMegaphone("")
	require.NoError(t, m.ParseRoot(attr.List{{Name: "megaphoneEffectcolour0", Value: "FF00FF"}}))
	require.NoError(t, m.ParsePreset(1, slotAttrs("1")))
	require.NoError(t, m.ParsePreset(5, slotAttrs("5")))

	w := mocks.NewMockWriter(t)
	var children []string
	slots := map[string]attr.Map{}
	w.EXPECT().StartElement("megaphoneEffect", attr.Map{"megaphoneEffectcolour0": "FF00FF"}).Return(nil).Once()
	w.EXPECT().EmptyElement(mock.Anything, mock.Anything).
		Run(func(name string, attrs attr.Map) {
			children = append(children, name)
			slots[name] = attrs
		}).
		Return(nil).Times(6)
	w.EXPECT().EndElement("megaphoneEffect").Return(nil).Once()

	require.NoError(t, m.Write(w))
	assert.Equal(t, []string{
		"megaphoneEffectpreset1", "megaphoneEffectpreset2", "megaphoneEffectpreset3",
		"megaphoneEffectpreset4", "megaphoneEffectpreset5", "megaphoneEffectpreset6",
	}, children)
	wantKeys := []string{
		components.KeyEffectState, components.KeyStyle,
		components.KeyTransDistAmt, components.KeyTransHP, components.KeyTransLP,
		components.KeyTransPreGain, components.KeyTransPostGain, components.KeyTransDistType,
		components.KeyTransPresenceGain, components.KeyTransPresenceFC, components.KeyTransPresenceBW,
		components.KeyTransBeatbox, components.KeyTransFilterControl, components.KeyTransFilter,
		components.KeyTransCompMid, components.KeyTransCompMax,
	}
	for name, attrs := range slots {
		assert.ElementsMatch(t, wantKeys, slices.Collect(maps.Keys(attrs)), name)
	}
	assert.Equal(t, "0", slots["megaphoneEffectpreset2"]["megaphoneEffectstate"])
	assert.Equal(t, "0", slots["megaphoneEffectpreset2"]["MEGAPHONE_STYLE"])
	assert.Equal(t, "1", slots["megaphoneEffectpreset1"]["TRANS_BEATBOX_ENABLE"])
	assert.Equal(t, "-5", slots["megaphoneEffectpreset1"]["TRANS_POSTGAIN"])
	assert.Equal(t, "5", slots["megaphoneEffectpreset5"]["MEGAPHONE_STYLE"])
}

func TestMegaphoneRoundTrip(t *testing.T) {
	src := components.NewMegaphone("")
	require.NoError(t, src.ParsePreset(2, slotAttrs("2")))
	require.NoError(t, src.Preset(components.Preset6).SetStyle(components.MegaphoneStyleTweed))

	written := map[string]attr.Map{}
	w := mocks.NewMockWriter(t)
	w.EXPECT().StartElement(mock.Anything, mock.Anything).Return(nil)
	w.EXPECT().EndElement(mock.Anything).Return(nil)
	w.EXPECT().EmptyElement(mock.Anything, mock.Anything).
		Run(func(name string, attrs attr.Map) { written[name] = attrs }).
		Return(nil)
	require.NoError(t, src.Write(w))

	dst := components.NewMegaphone("")
	for _, p := range components.Presets {
		require.NoError(t, dst.ParsePreset(p.ID(), written[dst.SlotElement(p)].Sorted()))
		assert.Equal(t, *src.Preset(p), *dst.Preset(p), p.String())
	}
}

func TestMegaphoneElementName(t *testing.T) {
	m := components.NewMegaphone("voiceFx")
	assert.Equal(t, "voiceFx", m.ColourMap().Prefix())
	assert.Equal(t, "voiceFxpreset3", m.SlotElement(components.Preset3))
	assert.Nil(t, m.Preset(components.Preset(0)))
}
