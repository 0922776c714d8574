package attr

import (
	"fmt"
	"strconv"
	"strings"
)

// Ordinal encodes an enumeration as its zero-based position in declaration
// order.
type Ordinal[E ~uint8] struct {
	variants []E
}

// NewOrdinal returns an ordinal codec over variants, in declaration order.
func NewOrdinal[E ~uint8](variants ...E) Ordinal[E] {
	return Ordinal[E]{variants: variants}
}

// Decode parses the attribute as a position. ok is false when the position
// does not name a variant; err is set only for malformed text.
func (o Ordinal[E]) Decode(a Attribute) (v E, ok bool, err error) {
	i, err := ParseIndex(a)
	if err != nil {
		return v, false, err
	}
	if i >= len(o.variants) {
		return v, false, nil
	}
	return o.variants[i], true, nil
}

// Encode returns the position of v as an unsigned byte. A value outside the
// declared set encodes as its raw byte.
func (o Ordinal[E]) Encode(v E) string {
	for i, x := range o.variants {
		if x == v {
			return strconv.FormatUint(uint64(uint8(i)), 10)
		}
	}
	return strconv.FormatUint(uint64(uint8(v)), 10)
}

// Len returns the number of declared variants.
func (o Ordinal[E]) Len() int {
	return len(o.variants)
}

// Indexed encodes an enumeration through an explicit per-variant index
// string, independent of declaration order.
type Indexed[E comparable] struct {
	variants []E
	index    func(E) string
}

// NewIndexed returns an index codec. index must be defined for every variant.
func NewIndexed[E comparable](index func(E) string, variants ...E) Indexed[E] {
	return Indexed[E]{variants: variants, index: index}
}

// Decode returns the first variant whose index equals the attribute value.
func (x Indexed[E]) Decode(a Attribute) (v E, ok bool) {
	for _, candidate := range x.variants {
		if x.index(candidate) == a.Value {
			return candidate, true
		}
	}
	return v, false
}

// Encode returns the index string of v.
func (x Indexed[E]) Encode(v E) string {
	return x.index(v)
}

// Named parses enumeration names from human input.
type Named[E comparable] struct {
	label    string
	variants []E
	name     func(E) string
}

// NewNamed returns a name codec. label identifies the value in errors.
func NewNamed[E comparable](label string, name func(E) string, variants ...E) Named[E] {
	return Named[E]{label: label, variants: variants, name: name}
}

// Parse matches s against the variant names, ignoring case.
func (n Named[E]) Parse(s string) (E, error) {
	for _, v := range n.variants {
		if strings.EqualFold(n.name(v), s) {
			return v, nil
		}
	}
	var zero E
	return zero, &ParseError{
		Kind:      KindExpectedEnum,
		Attribute: n.label,
		Value:     s,
		Err:       fmt.Errorf("want one of %s", strings.Join(n.Names(), ", ")),
	}
}

// Names returns the variant names in declaration order.
func (n Named[E]) Names() []string {
	out := make([]string, len(n.variants))
	for i, v := range n.variants {
		out[i] = n.name(v)
	}
	return out
}
