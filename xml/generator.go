package xml

import (
	"encoding/base64"
	"errors"
	"fmt"
	"strconv"
)

// ErrAttributeContainer is returned when an object or array value is written
// while the generator is in attribute mode.
var ErrAttributeContainer = errors.New("xml: structured value cannot be written as an attribute")

type contextKind int

const (
	rootContext contextKind = iota
	objectContext
	arrayContext
)

type genContext struct {
	kind contextKind

	// element name of the object, or the name repeated for each array member
	name Name

	// root arrays open an element of their own
	wrapped bool
}

// Generator writes the engine's generic value stream as XML.
//
// Objects become elements, field names select the element (or attribute)
// name of the value that follows, and arrays repeat the current element name
// for every member. The root value takes the name given to SetNextName before
// anything is written.
type Generator struct {
	enc     *Encoder
	scratch []byte

	stack []genContext

	current Name

	nextName        Name
	hasNextName     bool
	nextIsAttribute bool
}

// NewGenerator returns a Generator writing to enc.
func NewGenerator(enc *Encoder) *Generator {
	return &Generator{
		enc:     enc,
		scratch: make([]byte, 0, 64),
		stack:   []genContext{{kind: rootContext}},
	}
}

// SetNextName sets the qualified name used by the next field name, or by the
// root value when nothing has been written yet. The name applies only when
// the field name written next matches its local part.
func (g *Generator) SetNextName(n Name) {
	g.nextName = n
	g.hasNextName = true
}

// SetNextIsAttribute sets whether the next field value is written as an
// attribute of the enclosing element.
func (g *Generator) SetNextIsAttribute(v bool) {
	g.nextIsAttribute = v
}

// StartWrappedValue opens the wrapper element of a container value. The
// wrapped name becomes the next name, so the field name that follows repeats
// it for each member.
func (g *Generator) StartWrappedValue(wrapper, wrapped Name) error {
	if g.top().kind != objectContext {
		return fmt.Errorf("xml: wrapper %q written outside of an object", wrapper.Local)
	}
	if g.nextIsAttribute {
		return ErrAttributeContainer
	}

	if err := g.enc.StartElement(StartElement{Name: wrapper}); err != nil {
		return err
	}
	g.SetNextName(wrapped)
	return nil
}

// FinishWrappedValue closes the wrapper element opened by StartWrappedValue.
func (g *Generator) FinishWrappedValue(wrapper, wrapped Name) error {
	return g.enc.EndElement()
}

// WriteFieldName selects the name of the next value within an object.
func (g *Generator) WriteFieldName(name string) error {
	if g.top().kind != objectContext {
		return fmt.Errorf("xml: field name %q written outside of an object", name)
	}

	if g.hasNextName && g.nextName.Local == name {
		g.current = g.nextName
	} else {
		g.current = Name{Local: name}
	}
	g.hasNextName = false
	return nil
}

// WriteStartObject opens an element for a structured value.
func (g *Generator) WriteStartObject() error {
	if g.attributeMode() {
		g.nextIsAttribute = false
		return ErrAttributeContainer
	}

	name, err := g.valueName()
	if err != nil {
		return err
	}
	if err := g.enc.StartElement(StartElement{Name: name}); err != nil {
		return err
	}
	g.stack = append(g.stack, genContext{kind: objectContext, name: name})
	return nil
}

// WriteEndObject closes the element opened by WriteStartObject.
func (g *Generator) WriteEndObject() error {
	if g.top().kind != objectContext {
		return fmt.Errorf("xml: end of object without matching start")
	}

	g.pop()
	g.hasNextName = false
	g.nextIsAttribute = false
	return g.enc.EndElement()
}

// WriteStartArray begins a sequence of values sharing the current element
// name. Only a root array writes an element of its own.
func (g *Generator) WriteStartArray() error {
	if g.attributeMode() {
		g.nextIsAttribute = false
		return ErrAttributeContainer
	}

	top := g.top()
	switch top.kind {
	case objectContext:
		g.stack = append(g.stack, genContext{kind: arrayContext, name: g.current})
	case arrayContext:
		g.stack = append(g.stack, genContext{kind: arrayContext, name: top.name})
	default:
		name, err := g.valueName()
		if err != nil {
			return err
		}
		if err := g.enc.StartElement(StartElement{Name: name}); err != nil {
			return err
		}
		g.stack = append(g.stack, genContext{kind: arrayContext, name: name, wrapped: true})
	}
	return nil
}

// WriteEndArray ends the sequence begun by WriteStartArray.
func (g *Generator) WriteEndArray() error {
	top := g.top()
	if top.kind != arrayContext {
		return fmt.Errorf("xml: end of array without matching start")
	}

	g.pop()
	if top.wrapped {
		return g.enc.EndElement()
	}
	return nil
}

// WriteString writes v as escaped character data or attribute value.
func (g *Generator) WriteString(v string) error {
	return g.writeScalar(v)
}

// WriteInt writes v as an XML number.
func (g *Generator) WriteInt(v int64) error {
	g.scratch = strconv.AppendInt(g.scratch[:0], v, 10)
	return g.writeScalar(string(g.scratch))
}

// WriteUint writes v as an XML number.
func (g *Generator) WriteUint(v uint64) error {
	g.scratch = strconv.AppendUint(g.scratch[:0], v, 10)
	return g.writeScalar(string(g.scratch))
}

// WriteFloat writes v as an XML number using the given bit size.
func (g *Generator) WriteFloat(v float64, bits int) error {
	var err error
	if g.scratch, err = formatFloat(g.scratch[:0], v, bits); err != nil {
		return err
	}
	return g.writeScalar(string(g.scratch))
}

// WriteBool writes v as an XML boolean.
func (g *Generator) WriteBool(v bool) error {
	g.scratch = strconv.AppendBool(g.scratch[:0], v)
	return g.writeScalar(string(g.scratch))
}

// WriteBinary writes v base64 encoded as a single text value.
func (g *Generator) WriteBinary(v []byte) error {
	if g.attributeMode() {
		return g.writeScalar(base64.StdEncoding.EncodeToString(v))
	}

	name, err := g.valueName()
	if err != nil {
		return err
	}
	if err := g.enc.StartElement(StartElement{Name: name}); err != nil {
		return err
	}
	g.enc.Base64EncodeBytes(v)
	return g.enc.EndElement()
}

// WriteNull writes an empty element. A null attribute is omitted.
func (g *Generator) WriteNull() error {
	if g.attributeMode() {
		g.nextIsAttribute = false
		return nil
	}

	name, err := g.valueName()
	if err != nil {
		return err
	}
	if err := g.enc.StartElement(StartElement{Name: name}); err != nil {
		return err
	}
	return g.enc.EndElement()
}

func (g *Generator) writeScalar(v string) error {
	if g.attributeMode() {
		g.nextIsAttribute = false
		return g.enc.Attr(Attr{Name: g.current, Value: v})
	}

	name, err := g.valueName()
	if err != nil {
		return err
	}
	if err := g.enc.StartElement(StartElement{Name: name}); err != nil {
		return err
	}
	g.enc.Text(v)
	return g.enc.EndElement()
}

func (g *Generator) attributeMode() bool {
	return g.nextIsAttribute && g.top().kind == objectContext
}

// valueName returns the element name for the value about to be written.
func (g *Generator) valueName() (Name, error) {
	switch top := g.top(); top.kind {
	case objectContext:
		return g.current, nil
	case arrayContext:
		return top.name, nil
	default:
		if !g.hasNextName || len(g.nextName.Local) == 0 {
			return Name{}, fmt.Errorf("xml: root element name not set")
		}
		g.hasNextName = false
		return g.nextName, nil
	}
}

func (g *Generator) top() genContext {
	return g.stack[len(g.stack)-1]
}

func (g *Generator) pop() {
	g.stack = g.stack[:len(g.stack)-1]
}
