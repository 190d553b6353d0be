package serde

import (
	"fmt"
	"reflect"
)

// Property describes one serializable property of a struct type.
type Property struct {
	// Name is the external name of the property.
	Name string

	// Type is the declared type of the property.
	Type reflect.Type

	// Owner is the struct type the property was discovered on.
	Owner reflect.Type

	// Field is the struct field backing the property. Promoted fields carry
	// the full index path from Owner.
	Field reflect.StructField
}

// Tag returns the value of the struct tag key on the property's field.
func (p *Property) Tag(key string) (string, bool) {
	return p.Field.Tag.Lookup(key)
}

// Value reads the property from bean. Returns an error if the field cannot be
// reached, such as a promoted field behind a nil embedded pointer.
func (p *Property) Value(bean reflect.Value) (reflect.Value, error) {
	v, err := bean.FieldByIndexErr(p.Field.Index)
	if err != nil {
		return reflect.Value{}, fmt.Errorf("unable to read property %s of %v, %w", p.Name, p.Owner, err)
	}
	return v, nil
}

// BeanDescription is the set of properties discovered for a struct type.
type BeanDescription struct {
	Type       reflect.Type
	Properties []*Property
}

// describe discovers the properties of the struct type t. Exported fields,
// including fields promoted from exported embedded structs, are kept in
// declaration order unless a PropertyFilter ignores them.
func describe(providers []MetadataProvider, t reflect.Type) *BeanDescription {
	desc := &BeanDescription{Type: t}

	for _, f := range reflect.VisibleFields(t) {
		if !f.IsExported() || !reachable(t, f) {
			continue
		}
		if f.Anonymous && indirect(f.Type).Kind() == reflect.Struct {
			// promoted fields follow
			continue
		}

		p := &Property{
			Name:  f.Name,
			Type:  f.Type,
			Owner: t,
			Field: f,
		}
		if IsIgnored(providers, p) {
			continue
		}
		if name, ok := FindPropertyName(providers, p); ok && len(name) != 0 {
			p.Name = name
		}

		desc.Properties = append(desc.Properties, p)
	}

	return desc
}

// reachable reports whether every embedded field on the path to f is
// exported.
func reachable(t reflect.Type, f reflect.StructField) bool {
	for i := 1; i < len(f.Index); i++ {
		if !t.FieldByIndex(f.Index[:i]).IsExported() {
			return false
		}
	}
	return true
}

func indirect(t reflect.Type) reflect.Type {
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	return t
}
