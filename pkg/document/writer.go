package document

import (
	"encoding/xml"
	"io"

	"github.com/AZIIZALOYIBI/goxlr-utility/pkg/attr"
)

// Header is written before the root element.
const Header = `<?xml version="1.0" encoding="UTF-8"?>` + "\n"

// XMLWriter writes elements as indented XML.
type XMLWriter struct {
	w         io.Writer
	enc       *xml.Encoder
	wroteHead bool
}

// NewXMLWriter returns a writer emitting to w.
func NewXMLWriter(w io.Writer) *XMLWriter {
	enc := xml.NewEncoder(w)
	enc.Indent("", "  ")
	return &XMLWriter{w: w, enc: enc}
}

func (x *XMLWriter) header() error {
	if x.wroteHead {
		return nil
	}
	x.wroteHead = true
	_, err := io.WriteString(x.w, Header)
	return err
}

func start(name string, attrs attr.Map) xml.StartElement {
	el := xml.StartElement{Name: xml.Name{Local: name}}
	for _, a := range attrs.Sorted() {
		el.Attr = append(el.Attr, xml.Attr{Name: xml.Name{Local: a.Name}, Value: a.Value})
	}
	return el
}

// EmptyElement writes an element with no children.
func (x *XMLWriter) EmptyElement(name string, attrs attr.Map) error {
	if err := x.header(); err != nil {
		return err
	}
	el := start(name, attrs)
	if err := x.enc.EncodeToken(el); err != nil {
		return err
	}
	return x.enc.EncodeToken(el.End())
}

// StartElement opens an element.
func (x *XMLWriter) StartElement(name string, attrs attr.Map) error {
	if err := x.header(); err != nil {
		return err
	}
	return x.enc.EncodeToken(start(name, attrs))
}

// EndElement closes an element.
func (x *XMLWriter) EndElement(name string) error {
	return x.enc.EncodeToken(xml.EndElement{Name: xml.Name{Local: name}})
}

// Flush writes buffered output.
func (x *XMLWriter) Flush() error {
	return x.enc.Flush()
}

// Close flushes and reports an error if any element is still open.
func (x *XMLWriter) Close() error {
	if err := x.enc.Close(); err != nil {
		return err
	}
	_, err := io.WriteString(x.w, "\n")
	return err
}
