package serde

import (
	"reflect"
)

// BeanSerializer is the default serializer constructed for struct types. It
// writes an object with one field per property writer, in order.
type BeanSerializer struct {
	typ   reflect.Type
	props []PropertyWriter
}

// NewBeanSerializer returns a serializer for the described type using props.
func NewBeanSerializer(desc *BeanDescription, props []PropertyWriter) *BeanSerializer {
	return &BeanSerializer{typ: desc.Type, props: props}
}

// Type returns the struct type the serializer was built for.
func (s *BeanSerializer) Type() reflect.Type {
	return s.typ
}

// Properties returns the property writers in output order. The returned
// slice must not be modified.
func (s *BeanSerializer) Properties() []PropertyWriter {
	return s.props
}

// Serialize writes v as an object.
func (s *BeanSerializer) Serialize(v reflect.Value, gen Generator, sp *Provider) error {
	if err := gen.WriteStartObject(); err != nil {
		return err
	}
	for _, pw := range s.props {
		if err := pw.SerializeAsField(v, gen, sp); err != nil {
			return err
		}
	}
	return gen.WriteEndObject()
}
