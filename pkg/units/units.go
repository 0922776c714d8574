package units

import (
	"math"
	"unsafe"

	"golang.org/x/exp/constraints"
)

// Percentage limits shared by the percentage-valued settings.
const (
	PercentMin uint8 = 0
	PercentMax uint8 = 100
)

// Megaphone post-gain limits in dB.
const (
	PostGainMin int8 = -20
	PostGainMax int8 = 20
)

// Frequency register parameters.
const (
	// RegisterBase is the frequency (Hz) that maps to register 0.
	RegisterBase = 20.0

	// RegisterStepsPerOctave is the register resolution.
	RegisterStepsPerOctave = 24.0
)

// Truncate converts v to T, truncating toward zero and saturating at the
// bounds of T. NaN converts to zero.
func Truncate[T constraints.Integer](v float64) T {
	lo, hi := bounds[T]()
	switch {
	case math.IsNaN(v):
		return 0
	case v <= float64(lo):
		return lo
	case v >= float64(hi):
		return hi
	}
	return T(v)
}

// bounds returns the smallest and largest values representable by T.
func bounds[T constraints.Integer]() (lo, hi T) {
	var zero T
	size := uint(unsafe.Sizeof(zero)) * 8
	if ^zero < zero {
		// Signed: the all-ones pattern is -1.
		lo = T(1) << (size - 1)
		return lo, ^lo
	}
	return 0, ^zero
}

// FrequencyRegister returns the device register value for a frequency in Hz.
// The result is monotonic for hz > 0; non-positive input saturates.
func FrequencyRegister(hz float32) int32 {
	steps := float32(RegisterStepsPerOctave * math.Log2(float64(hz/RegisterBase)))
	return Truncate[int32](math.Round(float64(steps)))
}
