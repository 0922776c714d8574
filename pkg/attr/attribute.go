package attr

import (
	"maps"
	"slices"
)

// Attribute is a single name/value pair as it appears on a document element.
type Attribute struct {
	Name  string
	Value string
}

// List is the attribute list of one element, in document order.
type List []Attribute

// Get returns the value of the first attribute with the given name.
func (l List) Get(name string) (string, bool) {
	for _, a := range l {
		if a.Name == name {
			return a.Value, true
		}
	}
	return "", false
}

// Map converts the list into a Map. Later duplicates win.
func (l List) Map() Map {
	m := make(Map, len(l))
	for _, a := range l {
		m[a.Name] = a.Value
	}
	return m
}

// Map is an attribute sink keyed by attribute name. Emission order is not
// significant to any model.
type Map map[string]string

// Set stores a value.
func (m Map) Set(name, value string) {
	m[name] = value
}

// Sorted returns the attributes ordered by name, for writers that need
// deterministic output.
func (m Map) Sorted() List {
	keys := slices.Sorted(maps.Keys(m))
	out := make(List, 0, len(keys))
	for _, k := range keys {
		out = append(out, Attribute{Name: k, Value: m[k]})
	}
	return out
}

// Writer receives elements produced by the models. Implementations decide the
// concrete document format.
type Writer interface {
	// EmptyElement writes a self-closing element.
	EmptyElement(name string, attrs Map) error

	// StartElement opens an element that will contain children.
	StartElement(name string, attrs Map) error

	// EndElement closes the most recently started element.
	EndElement(name string) error
}

// Handler consumes elements produced by a document reader. Path holds the
// names of the enclosing elements, outermost first.
type Handler interface {
	HandleElement(path []string, name string, attrs List) error
}

// HandlerFunc adapts a function to the Handler interface.
type HandlerFunc func(path []string, name string, attrs List) error

// HandleElement calls f.
func (f HandlerFunc) HandleElement(path []string, name string, attrs List) error {
	return f(path, name, attrs)
}
