package xmlbind

import (
	"encoding"
	"reflect"
)

var textMarshalerType = reflect.TypeOf((*encoding.TextMarshaler)(nil)).Elem()

// IsContainerType reports whether values of t are written as repeated
// elements: slices, arrays and maps, looking through pointers. Byte sequences
// and types marshaling themselves as text are written as a single value and
// are not containers.
func IsContainerType(t reflect.Type) bool {
	for {
		if t.Implements(textMarshalerType) {
			return false
		}
		if t.Kind() != reflect.Ptr {
			break
		}
		t = t.Elem()
	}

	switch t.Kind() {
	case reflect.Slice, reflect.Array:
		return t.Elem().Kind() != reflect.Uint8
	case reflect.Map:
		return true
	}
	return false
}
