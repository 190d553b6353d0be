package serde

import (
	"encoding"
	"fmt"
	"reflect"
	"sort"
	"strconv"
)

// Serializer writes values of one type to a Generator.
type Serializer interface {
	Serialize(v reflect.Value, gen Generator, sp *Provider) error
}

// SerializerFunc is a function that implements Serializer.
type SerializerFunc func(v reflect.Value, gen Generator, sp *Provider) error

// Serialize calls fn.
func (fn SerializerFunc) Serialize(v reflect.Value, gen Generator, sp *Provider) error {
	return fn(v, gen, sp)
}

var (
	textMarshalerType = reflect.TypeOf((*encoding.TextMarshaler)(nil)).Elem()
	byteType          = reflect.TypeOf(byte(0))
)

// valueSerializer returns the built-in serializer for non-struct types.
func valueSerializer(t reflect.Type) (Serializer, error) {
	if t.Implements(textMarshalerType) {
		return SerializerFunc(serializeText), nil
	}

	switch t.Kind() {
	case reflect.Bool:
		return SerializerFunc(serializeBool), nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return SerializerFunc(serializeInt), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return SerializerFunc(serializeUint), nil
	case reflect.Float32, reflect.Float64:
		return SerializerFunc(serializeFloat), nil
	case reflect.String:
		return SerializerFunc(serializeString), nil
	case reflect.Slice, reflect.Array:
		if t.Elem().Kind() == reflect.Uint8 {
			return SerializerFunc(serializeBinary), nil
		}
		return SerializerFunc(serializeArray), nil
	case reflect.Map:
		return SerializerFunc(serializeMap), nil
	case reflect.Ptr, reflect.Interface:
		return SerializerFunc(serializeIndirect), nil
	}

	return nil, fmt.Errorf("unsupported type %v", t)
}

func serializeBool(v reflect.Value, gen Generator, _ *Provider) error {
	return gen.WriteBool(v.Bool())
}

func serializeInt(v reflect.Value, gen Generator, _ *Provider) error {
	return gen.WriteInt(v.Int())
}

func serializeUint(v reflect.Value, gen Generator, _ *Provider) error {
	return gen.WriteUint(v.Uint())
}

func serializeFloat(v reflect.Value, gen Generator, _ *Provider) error {
	return gen.WriteFloat(v.Float(), v.Type().Bits())
}

func serializeString(v reflect.Value, gen Generator, _ *Provider) error {
	return gen.WriteString(v.String())
}

func serializeText(v reflect.Value, gen Generator, _ *Provider) error {
	if v.Kind() == reflect.Ptr && v.IsNil() {
		return gen.WriteNull()
	}

	b, err := v.Interface().(encoding.TextMarshaler).MarshalText()
	if err != nil {
		return err
	}
	return gen.WriteString(string(b))
}

func serializeBinary(v reflect.Value, gen Generator, _ *Provider) error {
	if v.Kind() == reflect.Slice && v.IsNil() {
		return gen.WriteNull()
	}

	b := make([]byte, v.Len())
	if v.Type().Elem() == byteType {
		reflect.Copy(reflect.ValueOf(b), v)
	} else {
		for i := range b {
			b[i] = byte(v.Index(i).Uint())
		}
	}
	return gen.WriteBinary(b)
}

func serializeArray(v reflect.Value, gen Generator, sp *Provider) error {
	if v.Kind() == reflect.Slice && v.IsNil() {
		return gen.WriteNull()
	}

	if err := gen.WriteStartArray(); err != nil {
		return err
	}
	for i := 0; i < v.Len(); i++ {
		if err := sp.SerializeValue(v.Index(i), gen); err != nil {
			return err
		}
	}
	return gen.WriteEndArray()
}

// serializeMap writes map entries as object fields, ordered by key.
func serializeMap(v reflect.Value, gen Generator, sp *Provider) error {
	if v.IsNil() {
		return gen.WriteNull()
	}

	type entry struct {
		key   string
		value reflect.Value
	}
	entries := make([]entry, 0, v.Len())
	iter := v.MapRange()
	for iter.Next() {
		key, err := mapKey(iter.Key())
		if err != nil {
			return err
		}
		entries = append(entries, entry{key: key, value: iter.Value()})
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].key < entries[j].key })

	if err := gen.WriteStartObject(); err != nil {
		return err
	}
	for _, e := range entries {
		if err := gen.WriteFieldName(e.key); err != nil {
			return err
		}
		if err := sp.SerializeValue(e.value, gen); err != nil {
			return err
		}
	}
	return gen.WriteEndObject()
}

func mapKey(k reflect.Value) (string, error) {
	if k.Type().Implements(textMarshalerType) {
		b, err := k.Interface().(encoding.TextMarshaler).MarshalText()
		return string(b), err
	}

	switch k.Kind() {
	case reflect.String:
		return k.String(), nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(k.Int(), 10), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return strconv.FormatUint(k.Uint(), 10), nil
	}
	return "", fmt.Errorf("unsupported map key type %v", k.Type())
}

func serializeIndirect(v reflect.Value, gen Generator, sp *Provider) error {
	if v.IsNil() {
		return gen.WriteNull()
	}
	return sp.SerializeValue(v.Elem(), gen)
}
