package xmlbind

import (
	"github.com/aws/smithy-go-xml/logging"
	"github.com/aws/smithy-go-xml/serde"
	"github.com/aws/smithy-go-xml/xml"
)

// Modifier is the serde.SerializerModifier that shapes struct serializers for
// XML output.
type Modifier struct{}

var _ serde.SerializerModifier = Modifier{}

// ChangeProperties decorates every property writer with its resolved XML
// metadata. Writers of container properties additionally get a wrapper. The
// order of props is kept.
func (Modifier) ChangeProperties(cfg *serde.Config, desc *serde.BeanDescription, props []serde.PropertyWriter) []serde.PropertyWriter {
	out := make([]serde.PropertyWriter, len(props))
	for i, pw := range props {
		p := pw.Property()

		ns, _ := ResolveNamespace(cfg.Providers, p)
		var isAttribute *bool
		if v, ok := ResolveIsAttribute(cfg.Providers, p); ok {
			isAttribute = &v
		}
		w := Decorate(pw, ns, isAttribute)

		if IsContainerType(pw.Type()) {
			wrapped := xml.Name{Space: ns, Local: pw.Name()}
			wrapper := wrapped
			// an explicit wrapper without a local name keeps the property name
			if explicit, ok := ResolveWrapperName(cfg.Providers, p); ok && len(explicit.Local) != 0 {
				wrapper = xml.Name{Space: explicit.Space, Local: explicit.Local}
			}
			w = DecorateContainer(w, wrapper, wrapped)
		}

		out[i] = w
	}
	return out
}

// ModifySerializer replaces the default bean serializer with one writing
// attributes first. Any other serializer is kept.
func (Modifier) ModifySerializer(cfg *serde.Config, desc *serde.BeanDescription, ser serde.Serializer) serde.Serializer {
	bs, ok := ser.(*serde.BeanSerializer)
	if !ok {
		cfg.Logf(logging.Debug, "keeping %T for %v, not a bean serializer", ser, desc.Type)
		return ser
	}
	return NewBeanSerializer(bs)
}
