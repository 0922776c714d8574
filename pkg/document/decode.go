package document

import (
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/AZIIZALOYIBI/goxlr-utility/pkg/attr"
)

// ElementError reports a handler failure for a specific element.
type ElementError struct {
	Path []string
	Err  error
}

func (e *ElementError) Error() string {
	return fmt.Sprintf("element %s: %v", strings.Join(e.Path, "/"), e.Err)
}

func (e *ElementError) Unwrap() error {
	return e.Err
}

// Decode reads an XML document from r and calls h for each element. It stops
// at the first handler error.
func Decode(r io.Reader, h attr.Handler) error {
	dec := xml.NewDecoder(r)
	var path []string
	for {
		tok, err := dec.Token()
		if errors.Is(err, io.EOF) {
			if len(path) > 0 {
				return fmt.Errorf("unexpected end of document inside %s", strings.Join(path, "/"))
			}
			return nil
		}
		if err != nil {
			return fmt.Errorf("reading document: %w", err)
		}

		switch t := tok.(type) {
		case xml.StartElement:
			attrs := make(attr.List, 0, len(t.Attr))
			for _, a := range t.Attr {
				attrs = append(attrs, attr.Attribute{Name: a.Name.Local, Value: a.Value})
			}
			parents := append([]string(nil), path...)
			if err := h.HandleElement(parents, t.Name.Local, attrs); err != nil {
				return &ElementError{Path: append(parents, t.Name.Local), Err: err}
			}
			path = append(path, t.Name.Local)
		case xml.EndElement:
			path = path[:len(path)-1]
		}
	}
}
