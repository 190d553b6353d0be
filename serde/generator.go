package serde

// Generator is the streaming writer driven by serializers. Implementations
// decide how objects, field names and arrays are represented in the output
// format.
type Generator interface {
	WriteStartObject() error
	WriteEndObject() error
	WriteFieldName(name string) error

	WriteStartArray() error
	WriteEndArray() error

	WriteString(v string) error
	WriteInt(v int64) error
	WriteUint(v uint64) error
	WriteFloat(v float64, bits int) error
	WriteBool(v bool) error

	// WriteBinary writes v as a single opaque value, such as base64 text.
	WriteBinary(v []byte) error

	WriteNull() error
}
