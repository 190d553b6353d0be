package xmlbind

import (
	"reflect"

	"github.com/aws/smithy-go-xml/serde"
	"github.com/aws/smithy-go-xml/xml"
)

// BeanSerializer writes a struct value as an element whose attribute
// properties are all written before its element properties. Within each group
// the properties keep their declared order.
type BeanSerializer struct {
	typ   reflect.Type
	props []serde.PropertyWriter
}

// NewBeanSerializer returns a BeanSerializer over the property writers of
// the default serializer.
func NewBeanSerializer(src *serde.BeanSerializer) *BeanSerializer {
	return &BeanSerializer{typ: src.Type(), props: src.Properties()}
}

// Type returns the struct type the serializer was built for.
func (s *BeanSerializer) Type() reflect.Type {
	return s.typ
}

// Properties returns the property writers in declared order. The returned
// slice must not be modified.
func (s *BeanSerializer) Properties() []serde.PropertyWriter {
	return s.props
}

// Serialize writes v. Errors from property writers are returned as is.
func (s *BeanSerializer) Serialize(v reflect.Value, gen serde.Generator, sp *serde.Provider) error {
	if err := gen.WriteStartObject(); err != nil {
		return err
	}

	xg, _ := gen.(Generator)
	if err := s.serializeFields(v, gen, xg, sp, true); err != nil {
		return err
	}
	if err := s.serializeFields(v, gen, xg, sp, false); err != nil {
		return err
	}

	return gen.WriteEndObject()
}

// serializeFields writes the properties whose attribute flag equals
// attributes.
func (s *BeanSerializer) serializeFields(v reflect.Value, gen serde.Generator, xg Generator, sp *serde.Provider, attributes bool) error {
	for _, pw := range s.props {
		info := infoOf(pw)
		if info.Attribute() != attributes {
			continue
		}

		if xg != nil {
			xg.SetNextName(xml.Name{Space: info.Namespace, Local: pw.Name()})
			xg.SetNextIsAttribute(attributes)
		}
		if err := pw.SerializeAsField(v, gen, sp); err != nil {
			return err
		}
	}
	return nil
}
