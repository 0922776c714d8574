package attr

import (
	"errors"
	"strconv"

	"github.com/AZIIZALOYIBI/goxlr-utility/pkg/units"
	"golang.org/x/exp/constraints"
)

// ParseTruncated parses a float value and narrows it to T, truncating toward
// zero and saturating at T's bounds.
func ParseTruncated[T constraints.Integer](a Attribute) (T, error) {
	f, err := parseFloat(a)
	if err != nil {
		return 0, err
	}
	return units.Truncate[T](f), nil
}

// ParseFloat32 parses a float value without narrowing.
func ParseFloat32(a Attribute) (float32, error) {
	f, err := parseFloat(a)
	if err != nil {
		return 0, err
	}
	return float32(f), nil
}

// parseFloat parses at single precision. Magnitudes beyond float32 become
// infinities rather than errors.
func parseFloat(a Attribute) (float64, error) {
	f, err := strconv.ParseFloat(a.Value, 32)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return 0, &ParseError{Kind: KindExpectedFloat, Attribute: a.Name, Value: a.Value, Err: err}
	}
	return f, nil
}

// ParseIndex parses a non-negative decimal integer, as used by ordinals.
func ParseIndex(a Attribute) (int, error) {
	n, err := strconv.ParseUint(a.Value, 10, strconv.IntSize-1)
	if err != nil {
		return 0, &ParseError{Kind: KindExpectedInt, Attribute: a.Name, Value: a.Value, Err: err}
	}
	return int(n), nil
}

// ParseFlag reports whether the value is exactly "1".
func ParseFlag(a Attribute) bool {
	return a.Value == "1"
}

// ParseNotZero reports whether the value is anything other than "0".
func ParseNotZero(a Attribute) bool {
	return a.Value != "0"
}

// FormatInt formats an integer field as decimal text.
func FormatInt[T constraints.Integer](v T) string {
	if ^T(0) < 0 {
		return strconv.FormatInt(int64(v), 10)
	}
	return strconv.FormatUint(uint64(v), 10)
}

// FormatFloat32 formats a float with the fewest digits that parse back to
// the same value ("63", "31.5").
func FormatFloat32(v float32) string {
	return strconv.FormatFloat(float64(v), 'f', -1, 32)
}

// FormatFlag formats a boolean as "1" or "0".
func FormatFlag(v bool) string {
	if v {
		return "1"
	}
	return "0"
}
