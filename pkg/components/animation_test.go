package components_test

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/AZIIZALOYIBI/goxlr-utility/pkg/attr"
	"github.com/AZIIZALOYIBI/goxlr-utility/pkg/attr/mocks"
	"github.com/AZIIZALOYIBI/goxlr-utility/pkg/components"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestNewAnimationDefaults(t *testing.T) {
	a := components.NewAnimation("")
	assert.Equal(t, components.DefaultAnimationElement, a.ElementName())
	assert.Equal(t, components.AnimationNone, a.Mode())
	assert.Equal(t, uint8(0), a.Mod1())
	assert.Equal(t, uint8(0), a.Mod2())
	assert.Equal(t, components.WaterfallDown, a.Waterfall())
}

func TestAnimationParse(t *testing.T) {
	a := components.NewAnimation("animationTree")
	err := a.Parse(attr.List{
		{Name: "animationMode", Value: "3"},
		{Name: "mod1", Value: "39.0"},
		{Name: "mod2", Value: "12"},
		{Name: "mod3", Value: "1"},
	})
	require.NoError(t, err)
	assert.Equal(t, components.AnimationSimple, a.Mode())
	assert.Equal(t, uint8(39), a.Mod1())
	assert.Equal(t, uint8(12), a.Mod2())
	assert.Equal(t, components.WaterfallUp, a.Waterfall())
}

func TestAnimationParseOutOfRangeOrdinal(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))

	a := components.NewAnimation("", attr.WithLogger(logger))
	a.SetMode(components.AnimationRipple)

	require.NoError(t, a.Parse(attr.List{
		{Name: "animationMode", Value: "99"},
		{Name: "mod3", Value: "7"},
	}))
	assert.Equal(t, components.AnimationRipple, a.Mode())
	assert.Equal(t, components.WaterfallDown, a.Waterfall())
	assert.Contains(t, buf.String(), "animationMode")
	assert.Contains(t, buf.String(), "mod3")
}

func TestAnimationParseMalformedIsAtomic(t *testing.T) {
	tests := []struct {
		name  string
		attrs attr.List
		is    error
	}{
		{"float ordinal", attr.List{{Name: "mod1", Value: "50"}, {Name: "animationMode", Value: "1.0"}}, attr.ErrExpectedInt},
		{"bad modifier", attr.List{{Name: "mod1", Value: "50"}, {Name: "mod2", Value: "lots"}}, attr.ErrExpectedFloat},
		{"bad waterfall", attr.List{{Name: "mod1", Value: "50"}, {Name: "mod3", Value: "-1"}}, attr.ErrExpectedInt},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := components.NewAnimation("")
			err := a.Parse(tt.attrs)
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.is)
			assert.Equal(t, uint8(0), a.Mod1())
		})
	}
}

func TestAnimationParseUnknown(t *testing.T) {
	h := mocks.NewMockUnknownHandler(t)
	h.EXPECT().UnknownAttribute("animationTree", attr.Attribute{Name: "animationTree", Value: "3"}).Return().Once()

	a := components.NewAnimation("", attr.WithUnknownHandler(h))
	require.NoError(t, a.Parse(attr.List{{Name: "animationTree", Value: "3"}}))
	assert.Equal(t, components.AnimationNone, a.Mode())
}

func TestAnimationWrite(t *testing.T) {
	a := components.NewAnimation("")
	a.SetMode(components.AnimationRainbowDark)
	require.NoError(t, a.SetMod1(39))
	require.NoError(t, a.SetMod2(71))
	require.NoError(t, a.SetWaterfall(components.WaterfallOff))

	w := mocks.NewMockWriter(t)
	w.EXPECT().EmptyElement("animationTree", attr.Map{
		"animationMode": "1",
		"mod1":          "39",
		"mod2":          "71",
		"mod3":          "2",
	}).Return(nil).Once()

	require.NoError(t, a.Write(w))
}

func TestAnimationRoundTrip(t *testing.T) {
	src := components.NewAnimation("")
	require.NoError(t, src.Parse(attr.List{
		{Name: "animationMode", Value: "2"},
		{Name: "mod1", Value: "10"},
		{Name: "mod2", Value: "90"},
		{Name: "mod3", Value: "1"},
	}))

	var written attr.Map
	w := mocks.NewMockWriter(t)
	w.EXPECT().EmptyElement("animationTree", mock.Anything).
		Run(func(_ string, attrs attr.Map) { written = attrs }).
		Return(nil).Once()
	require.NoError(t, src.Write(w))

	dst := components.NewAnimation("")
	require.NoError(t, dst.Parse(written.Sorted()))
	assert.Equal(t, src.Mode(), dst.Mode())
	assert.Equal(t, src.Mod1(), dst.Mod1())
	assert.Equal(t, src.Mod2(), dst.Mod2())
	assert.Equal(t, src.Waterfall(), dst.Waterfall())
}

func TestSetMod1(t *testing.T) {
	a := components.NewAnimation("")
	require.NoError(t, a.SetMod1(100))
	assert.Equal(t, uint8(100), a.Mod1())

	err := a.SetMod1(101)
	assert.ErrorIs(t, err, attr.ErrOutOfRange)
	assert.Equal(t, uint8(100), a.Mod1())
}

func TestSetMod2Gating(t *testing.T) {
	modes := []components.AnimationMode{
		components.AnimationRetroRainbow, components.AnimationRainbowDark, components.AnimationRainbowBright,
		components.AnimationSimple, components.AnimationRipple, components.AnimationNone,
	}
	for _, mode := range modes {
		t.Run(mode.String(), func(t *testing.T) {
			a := components.NewAnimation("")
			a.SetMode(mode)
			err := a.SetMod2(50)
			if mode == components.AnimationRainbowBright || mode == components.AnimationRainbowDark {
				require.NoError(t, err)
				assert.True(t, a.Mod2Available())
				assert.Equal(t, uint8(50), a.Mod2())
				assert.ErrorIs(t, a.SetMod2(101), attr.ErrOutOfRange)
				assert.Equal(t, uint8(50), a.Mod2())
				return
			}
			assert.ErrorIs(t, err, components.ErrUnavailableInMode)
			assert.False(t, a.Mod2Available())
			assert.Equal(t, uint8(0), a.Mod2())
		})
	}
}

func TestSetWaterfallGating(t *testing.T) {
	for _, mode := range []components.AnimationMode{components.AnimationRetroRainbow, components.AnimationNone} {
		a := components.NewAnimation("")
		a.SetMode(mode)
		assert.False(t, a.WaterfallAvailable())
		assert.ErrorIs(t, a.SetWaterfall(components.WaterfallUp), components.ErrUnavailableInMode)
		assert.Equal(t, components.WaterfallDown, a.Waterfall())
	}

	a := components.NewAnimation("")
	a.SetMode(components.AnimationRipple)
	require.NoError(t, a.SetWaterfall(components.WaterfallUp))
	assert.Equal(t, components.WaterfallUp, a.Waterfall())
}

func TestAnimationNames(t *testing.T) {
	mode, err := components.AnimationModeNames.Parse("rainbowbright")
	require.NoError(t, err)
	assert.Equal(t, components.AnimationRainbowBright, mode)

	_, err = components.WaterfallNames.Parse("sideways")
	assert.ErrorIs(t, err, attr.ErrExpectedEnum)

	assert.Equal(t, "AnimationMode(9)", components.AnimationMode(9).String())
}
