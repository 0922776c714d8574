package snapshot

import (
	"fmt"

	"github.com/AZIIZALOYIBI/goxlr-utility/pkg/attr"
)

// Recorder captures written elements as a tree. It implements attr.Writer.
type Recorder struct {
	roots []Element
	open  []*Element
}

// NewRecorder returns an empty recorder.
func NewRecorder() *Recorder {
	return &Recorder{}
}

func pairs(m attr.Map) []Pair {
	sorted := m.Sorted()
	if len(sorted) == 0 {
		return nil
	}
	out := make([]Pair, len(sorted))
	for i, a := range sorted {
		out[i] = Pair{Name: a.Name, Value: a.Value}
	}
	return out
}

func (r *Recorder) add(el Element) *Element {
	if n := len(r.open); n > 0 {
		parent := r.open[n-1]
		parent.Children = append(parent.Children, el)
		return &parent.Children[len(parent.Children)-1]
	}
	r.roots = append(r.roots, el)
	return &r.roots[len(r.roots)-1]
}

// EmptyElement records a leaf element.
func (r *Recorder) EmptyElement(name string, attrs attr.Map) error {
	r.add(Element{Name: name, Attrs: pairs(attrs)})
	return nil
}

// StartElement records an element and makes it the parent of the elements
// that follow until the matching EndElement.
func (r *Recorder) StartElement(name string, attrs attr.Map) error {
	el := r.add(Element{Name: name, Attrs: pairs(attrs)})
	r.open = append(r.open, el)
	return nil
}

// EndElement closes the innermost open element.
func (r *Recorder) EndElement(name string) error {
	n := len(r.open)
	if n == 0 {
		return fmt.Errorf("end of %s without start", name)
	}
	if got := r.open[n-1].Name; got != name {
		return fmt.Errorf("end of %s while %s is open", name, got)
	}
	r.open = r.open[:n-1]
	return nil
}

// Elements returns the captured tree. All started elements must be closed.
func (r *Recorder) Elements() ([]Element, error) {
	if n := len(r.open); n > 0 {
		return nil, fmt.Errorf("element %s is not closed", r.open[n-1].Name)
	}
	return r.roots, nil
}

// Snapshot returns a new snapshot of the captured tree.
func (r *Recorder) Snapshot() (*Snapshot, error) {
	elements, err := r.Elements()
	if err != nil {
		return nil, err
	}
	return New(elements)
}

// Replay walks the snapshot depth first and calls h for every element with
// the names of its ancestors.
func Replay(s *Snapshot, h attr.Handler) error {
	return replay(nil, s.Elements, h)
}

func replay(path []string, elements []Element, h attr.Handler) error {
	for _, el := range elements {
		attrs := make(attr.List, len(el.Attrs))
		for i, p := range el.Attrs {
			attrs[i] = attr.Attribute{Name: p.Name, Value: p.Value}
		}
		parents := append([]string(nil), path...)
		if err := h.HandleElement(parents, el.Name, attrs); err != nil {
			return fmt.Errorf("element %s: %w", el.Name, err)
		}
		if err := replay(append(parents, el.Name), el.Children, h); err != nil {
			return err
		}
	}
	return nil
}
