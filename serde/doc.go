// Package serde is a reflection based serialization engine.
//
// A Mapper walks a Go value and drives a Generator, the format specific
// writer. Struct types are serialized by a BeanSerializer holding one
// PropertyWriter per discovered property, in declaration order. Properties
// are discovered from exported struct fields, and may be renamed or ignored by
// the MetadataProvider chain configured on the Config.
//
// Serializers are constructed once per type and cached by the Provider.
// While a struct serializer is constructed each registered SerializerModifier
// may first change the property writers, then replace the serializer itself.
// Modules such as xmlbind use these two hooks to reshape the default output.
package serde
