// Package units converts between the human-facing values stored in a profile
// and the byte-sized register values the mixer firmware works with.
//
// # Truncation
//
// Profile documents written by the vendor application frequently serialise
// integral settings as floats ("39.0", "5.00000"). The codec therefore parses
// every numeric attribute as a float and narrows it with [Truncate], which
// truncates toward zero and saturates at the bounds of the target type:
//
//	Truncate[uint8](39.9)  // 39
//	Truncate[uint8](300)   // 255
//	Truncate[int8](-200)   // -128
//	Truncate[uint8](NaN)   // 0
//
// # Frequency registers
//
// Equalizer frequencies are stored in Hertz but programmed into the device as
// a log-frequency register with 24 steps per octave above 20 Hz:
//
//	register = round(24 * log2(hz / 20))
//
// The register is a derived view computed on demand; there is no inverse.
package units
