package xmlbind

import (
	"github.com/aws/smithy-go-xml/serde"
	"github.com/aws/smithy-go-xml/xml"
)

// Provider is a metadata provider able to answer the XML specific queries.
// Each method reports false when the provider has no answer for the property.
type Provider interface {
	serde.MetadataProvider

	FindNamespace(p *serde.Property) (string, bool)
	IsOutputAsAttribute(p *serde.Property) (bool, bool)
	FindWrapperName(p *serde.Property) (xml.Name, bool)
}

// ResolveNamespace returns the namespace of p from the first Provider in the
// chain that has one.
func ResolveNamespace(providers []serde.MetadataProvider, p *serde.Property) (string, bool) {
	return resolve(providers, func(xp Provider) (string, bool) {
		return xp.FindNamespace(p)
	})
}

// ResolveIsAttribute returns whether p is written as an attribute. The second
// result is false when no Provider in the chain specifies it.
func ResolveIsAttribute(providers []serde.MetadataProvider, p *serde.Property) (bool, bool) {
	return resolve(providers, func(xp Provider) (bool, bool) {
		return xp.IsOutputAsAttribute(p)
	})
}

// ResolveWrapperName returns the explicit wrapper element name of p from the
// first Provider in the chain that has one.
func ResolveWrapperName(providers []serde.MetadataProvider, p *serde.Property) (xml.Name, bool) {
	return resolve(providers, func(xp Provider) (xml.Name, bool) {
		return xp.FindWrapperName(p)
	})
}

// resolve returns the first answer of fn over the chain, skipping providers
// that are not XML aware.
func resolve[T any](providers []serde.MetadataProvider, fn func(Provider) (T, bool)) (T, bool) {
	for _, mp := range providers {
		xp, ok := mp.(Provider)
		if !ok {
			continue
		}
		if v, ok := fn(xp); ok {
			return v, true
		}
	}

	var zero T
	return zero, false
}
