// Package colours implements the colour map carried by lit profile elements.
//
// A colour map is keyed by a prefix, normally the owning element's name, and
// recognises the attributes <prefix>colour0 through <prefix>colour9 (hex
// RRGGBB), <prefix>offStyle, <prefix>selected, <prefix>state, <prefix>blink and
// <prefix>colourGroup. Attributes that were never read are not written back.
package colours
