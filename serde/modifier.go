package serde

// SerializerModifier adjusts the serializer constructed for a struct type.
//
// ChangeProperties is called first with the default property writers, in
// discovery order. ModifySerializer is then called with the serializer chosen
// for the type: a *BeanSerializer over the changed writers, or the custom
// serializer registered for the type.
type SerializerModifier interface {
	ChangeProperties(cfg *Config, desc *BeanDescription, props []PropertyWriter) []PropertyWriter
	ModifySerializer(cfg *Config, desc *BeanDescription, ser Serializer) Serializer
}
