package xml

import (
	"bytes"
	"errors"
	"fmt"
)

const (
	leftAngleBracket  = '<'
	rightAngleBracket = '>'
	forwardSlash      = '/'
	colon             = ':'
	equals            = '='
	quote             = '"'
)

// ErrAttributeAfterContent is returned when an attribute is written after the
// enclosing start tag has been closed by character data or a child element.
var ErrAttributeAfterContent = errors.New("xml: attribute written after element content")

type writer interface {
	Write([]byte) (int, error)
	WriteRune(rune) (int, error)
	WriteString(string) (int, error)
}

// Encoder is an XML encoder that supports construction of XML documents
// token by token.
//
// The start tag of the most recently opened element is left open until
// text or a child element is written, so Attr can add attributes to it.
type Encoder struct {
	w       *bytes.Buffer
	scratch []byte

	open    []Name
	pending bool
}

// NewEncoder returns an XML encoder
func NewEncoder() *Encoder {
	return &Encoder{
		w:       bytes.NewBuffer(nil),
		scratch: make([]byte, 64),
	}
}

// StartElement writes the start tag of el, including any attributes it
// carries. The tag stays open for further attributes.
func (e *Encoder) StartElement(el StartElement) error {
	if el.isZero() {
		return fmt.Errorf("xml start element cannot be nil")
	}

	e.closePending()

	e.w.WriteRune(leftAngleBracket)
	writeName(e.w, el.Name)
	for i := range el.Attr {
		e.w.WriteRune(' ')
		buildAttribute(e.w, &el.Attr[i])
	}

	e.open = append(e.open, el.Name)
	e.pending = true
	return nil
}

// Attr adds attr to the start tag of the innermost open element. Returns
// ErrAttributeAfterContent if that start tag has already been closed.
func (e *Encoder) Attr(attr Attr) error {
	if !e.pending {
		return ErrAttributeAfterContent
	}

	e.w.WriteRune(' ')
	buildAttribute(e.w, &attr)
	return nil
}

// Text writes v as escaped character data.
func (e *Encoder) Text(v string) {
	e.closePending()
	escapeString(e.w, v)
}

// Write writes v directly to the xml document
// if escapeXMLText is set to true, write will escape text.
func (e *Encoder) Write(v []byte, escapeXMLText bool) {
	e.closePending()
	if escapeXMLText {
		escapeText(e.w, v)
	} else {
		e.w.Write(v)
	}
}

// Base64EncodeBytes writes v as base64 encoded character data.
func (e *Encoder) Base64EncodeBytes(v []byte) {
	e.closePending()
	encodeByteSlice(e.w, e.scratch, v)
}

// EndElement closes the innermost open element.
func (e *Encoder) EndElement() error {
	if len(e.open) == 0 {
		return fmt.Errorf("xml end element without open element")
	}

	e.closePending()

	name := e.open[len(e.open)-1]
	e.open = e.open[:len(e.open)-1]
	return writeEndElement(e.w, EndElement{Name: name})
}

// Depth returns the number of elements currently open.
func (e *Encoder) Depth() int {
	return len(e.open)
}

// String returns the string output of the XML encoder
func (e *Encoder) String() string {
	return e.w.String()
}

// Bytes returns the []byte slice of the XML encoder
func (e *Encoder) Bytes() []byte {
	return e.w.Bytes()
}

func (e *Encoder) closePending() {
	if e.pending {
		e.w.WriteRune(rightAngleBracket)
		e.pending = false
	}
}

func writeName(w writer, n Name) {
	if len(n.Space) != 0 {
		w.WriteString(n.Space)
		w.WriteRune(colon)
	}
	w.WriteString(n.Local)
}

// buildAttribute writes an attribute from a provided Attribute
// For a namespace attribute, the attr.Name.Space must be defined as "xmlns".
// https://www.w3.org/TR/REC-xml-names/#NT-DefaultAttName
func buildAttribute(w writer, attr *Attr) {
	// if local, space both are not empty
	if len(attr.Name.Space) != 0 && len(attr.Name.Local) != 0 {
		w.WriteString(attr.Name.Space)
		w.WriteRune(colon)
	}

	// if prefix is empty, the default `xmlns` space should be used as prefix.
	if len(attr.Name.Local) == 0 {
		attr.Name.Local = attr.Name.Space
	}

	w.WriteString(attr.Name.Local)
	w.WriteRune(equals)
	w.WriteRune(quote)
	escapeString(w, attr.Value)
	w.WriteRune(quote)
}

// writeEndElement takes in a end element and writes it.
func writeEndElement(w writer, el EndElement) error {
	if el.isZero() {
		return fmt.Errorf("xml end element cannot be nil")
	}

	w.WriteRune(leftAngleBracket)
	w.WriteRune(forwardSlash)
	writeName(w, el.Name)
	w.WriteRune(rightAngleBracket)

	return nil
}
