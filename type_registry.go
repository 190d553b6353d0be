package smithy

import (
	"reflect"
)

// TypeRegistry maps Go types to the Schema describing them.
type TypeRegistry struct {
	entries map[reflect.Type]*Schema
}

// TypeRegistryEntry associates a Go type with its Schema.
type TypeRegistryEntry struct {
	Type   reflect.Type
	Schema *Schema
}

// RegistryEntry creates a type registry entry.
func RegistryEntry[T any](schema *Schema) *TypeRegistryEntry {
	return &TypeRegistryEntry{
		Type:   reflect.TypeOf((*T)(nil)).Elem(),
		Schema: schema,
	}
}

// NewTypeRegistry returns a registry holding entries. A later entry for the
// same type replaces an earlier one.
func NewTypeRegistry(entries ...*TypeRegistryEntry) *TypeRegistry {
	r := &TypeRegistry{entries: make(map[reflect.Type]*Schema, len(entries))}
	for _, e := range entries {
		r.entries[e.Type] = e.Schema
	}
	return r
}

// Schema returns the schema registered for t, looking through pointer types.
// Returns nil if no schema is registered.
func (r *TypeRegistry) Schema(t reflect.Type) *Schema {
	if r == nil || t == nil {
		return nil
	}
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	return r.entries[t]
}
