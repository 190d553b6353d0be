package serde

import (
	"reflect"
)

// Mapper serializes Go values through a Generator.
type Mapper struct {
	provider *Provider
}

// New returns a Mapper configured by the functional options.
func New(optFns ...func(*Config)) *Mapper {
	var cfg Config
	for _, fn := range optFns {
		fn(&cfg)
	}
	return &Mapper{provider: NewProvider(cfg)}
}

// Provider returns the serializer provider backing the mapper.
func (m *Mapper) Provider() *Provider {
	return m.provider
}

// Serialize writes v to gen. A nil v is written as null.
func (m *Mapper) Serialize(gen Generator, v interface{}) error {
	return m.provider.SerializeValue(reflect.ValueOf(v), gen)
}
