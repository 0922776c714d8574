// Package components holds the lighting and voice-effect models of a profile.
//
// # Animation
//
// [Animation] stores the LED animation mode, two modifiers and the waterfall
// direction. Modifier two is only meaningful for the rainbow modes that
// support it and the waterfall is unavailable in RetroRainbow and None; the
// setters enforce this, parsing does not.
//
// # Megaphone
//
// [Megaphone] owns a colour map and six [MegaphoneEffect] slots. A slot is
// written either attribute by attribute or by selecting a [MegaphoneStyle],
// which copies every parameter of the style's [MegaphonePreset] into the slot
// at once.
//
// Parsing is atomic per element: a malformed value leaves the model as it was
// before the call.
package components
