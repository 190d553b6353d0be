package serde

import (
	"fmt"
	"reflect"
	"sync"

	"github.com/aws/smithy-go-xml/logging"
)

// Provider constructs and caches the serializer for each type.
//
// Lookups are safe for concurrent use. Construction of a type's serializer
// happens once, under the provider's lock, and the result is read-only
// afterwards.
type Provider struct {
	cfg Config

	mu          sync.Mutex
	serializers sync.Map // reflect.Type -> Serializer
	fields      fieldCacher
}

// NewProvider returns a Provider for cfg. The Config is copied; later
// changes to cfg do not affect the provider.
func NewProvider(cfg Config) *Provider {
	c := cfg
	c.Providers = append([]MetadataProvider(nil), cfg.Providers...)
	c.Modifiers = append([]SerializerModifier(nil), cfg.Modifiers...)
	c.Serializers = make(map[reflect.Type]Serializer, len(cfg.Serializers))
	for t, s := range cfg.Serializers {
		c.Serializers[t] = s
	}
	if c.Logger == nil {
		c.Logger = logging.Noop{}
	}
	return &Provider{cfg: c}
}

// Config returns the provider's configuration.
func (sp *Provider) Config() *Config {
	return &sp.cfg
}

// SerializeValue writes v using the serializer for its type.
func (sp *Provider) SerializeValue(v reflect.Value, gen Generator) error {
	if !v.IsValid() {
		return gen.WriteNull()
	}

	ser, err := sp.FindSerializer(v.Type())
	if err != nil {
		return err
	}
	return ser.Serialize(v, gen, sp)
}

// FindSerializer returns the serializer for t, constructing it on first use.
func (sp *Provider) FindSerializer(t reflect.Type) (Serializer, error) {
	if v, ok := sp.serializers.Load(t); ok {
		return v.(Serializer), nil
	}

	sp.mu.Lock()
	defer sp.mu.Unlock()

	if v, ok := sp.serializers.Load(t); ok {
		return v.(Serializer), nil
	}

	ser, err := sp.construct(t)
	if err != nil {
		return nil, err
	}
	sp.serializers.Store(t, ser)
	return ser, nil
}

// Describe returns the discovered properties of the struct type t.
func (sp *Provider) Describe(t reflect.Type) *BeanDescription {
	if desc, ok := sp.fields.Load(t); ok {
		return desc
	}
	desc, _ := sp.fields.LoadOrStore(t, describe(sp.cfg.Providers, t))
	return desc
}

func (sp *Provider) construct(t reflect.Type) (Serializer, error) {
	cfg := &sp.cfg

	if custom, ok := cfg.Serializers[t]; ok {
		if t.Kind() != reflect.Struct {
			return custom, nil
		}
		return sp.modify(sp.Describe(t), custom), nil
	}

	if t.Kind() != reflect.Struct || t.Implements(textMarshalerType) {
		ser, err := valueSerializer(t)
		if err != nil {
			return nil, fmt.Errorf("unable to construct serializer, %w", err)
		}
		return ser, nil
	}

	desc := sp.Describe(t)
	props := make([]PropertyWriter, 0, len(desc.Properties))
	for _, p := range desc.Properties {
		props = append(props, NewBeanPropertyWriter(p))
	}
	for _, m := range cfg.Modifiers {
		props = m.ChangeProperties(cfg, desc, props)
	}

	cfg.Logf(logging.Debug, "constructed serializer for %v with %d properties", t, len(props))
	return sp.modify(desc, NewBeanSerializer(desc, props)), nil
}

func (sp *Provider) modify(desc *BeanDescription, ser Serializer) Serializer {
	for _, m := range sp.cfg.Modifiers {
		ser = m.ModifySerializer(&sp.cfg, desc, ser)
	}
	return ser
}
