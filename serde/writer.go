package serde

import (
	"reflect"
)

// PropertyWriter writes one property of a struct value.
type PropertyWriter interface {
	// Property returns the descriptor the writer was built from.
	Property() *Property

	// Name returns the external name of the property.
	Name() string

	// Type returns the declared type of the property.
	Type() reflect.Type

	// Get reads the property from bean. present is false when the value is
	// absent and SerializeAsField would write nothing.
	Get(bean reflect.Value) (v reflect.Value, present bool, err error)

	// SerializeAsField writes the field name and value of the property of
	// bean. Absent values are skipped.
	SerializeAsField(bean reflect.Value, gen Generator, sp *Provider) error
}

// BeanPropertyWriter is the default PropertyWriter for a struct field.
type BeanPropertyWriter struct {
	prop *Property
}

var _ PropertyWriter = (*BeanPropertyWriter)(nil)

// NewBeanPropertyWriter returns a writer for p.
func NewBeanPropertyWriter(p *Property) *BeanPropertyWriter {
	return &BeanPropertyWriter{prop: p}
}

func (w *BeanPropertyWriter) Property() *Property { return w.prop }

func (w *BeanPropertyWriter) Name() string { return w.prop.Name }

func (w *BeanPropertyWriter) Type() reflect.Type { return w.prop.Type }

// Get reads the property from bean. Nil pointers, interfaces, slices and maps
// are absent, as are empty slices, arrays and maps, including when reached
// through pointers or interfaces.
func (w *BeanPropertyWriter) Get(bean reflect.Value) (reflect.Value, bool, error) {
	v, err := w.prop.Value(bean)
	if err != nil {
		return reflect.Value{}, false, err
	}
	return v, !isAbsent(v), nil
}

// SerializeAsField writes the property's name followed by its value.
func (w *BeanPropertyWriter) SerializeAsField(bean reflect.Value, gen Generator, sp *Provider) error {
	v, present, err := w.Get(bean)
	if err != nil || !present {
		return err
	}

	if err := gen.WriteFieldName(w.Name()); err != nil {
		return err
	}
	return sp.SerializeValue(v, gen)
}

func isAbsent(v reflect.Value) bool {
	for v.Kind() == reflect.Ptr || v.Kind() == reflect.Interface {
		if v.IsNil() {
			return true
		}
		v = v.Elem()
	}

	switch v.Kind() {
	case reflect.Slice, reflect.Array, reflect.Map:
		return v.Len() == 0
	}
	return false
}
