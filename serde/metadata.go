package serde

import (
	"strings"
)

// MetadataProvider is a source of per-property metadata, such as struct tags
// or an external configuration document. Providers are consulted in chain
// order; each capability interface is queried only on providers implementing
// it.
type MetadataProvider interface {
	ProviderName() string
}

// NameProvider supplies the external name of a property.
type NameProvider interface {
	MetadataProvider
	FindPropertyName(p *Property) (string, bool)
}

// PropertyFilter excludes properties from serialization.
type PropertyFilter interface {
	MetadataProvider
	IsIgnored(p *Property) bool
}

// FindPropertyName returns the first name supplied by a NameProvider in the
// chain.
func FindPropertyName(providers []MetadataProvider, p *Property) (string, bool) {
	for _, mp := range providers {
		np, ok := mp.(NameProvider)
		if !ok {
			continue
		}
		if name, ok := np.FindPropertyName(p); ok {
			return name, true
		}
	}
	return "", false
}

// IsIgnored reports whether any PropertyFilter in the chain ignores p.
func IsIgnored(providers []MetadataProvider, p *Property) bool {
	for _, mp := range providers {
		if pf, ok := mp.(PropertyFilter); ok && pf.IsIgnored(p) {
			return true
		}
	}
	return false
}

// JSONTagProvider names and ignores properties using `json` struct tags. It
// lets types already annotated for encoding/json keep their names.
type JSONTagProvider struct{}

// ProviderName identifies the provider.
func (JSONTagProvider) ProviderName() string { return "json-tags" }

// FindPropertyName returns the name part of the property's json tag.
func (JSONTagProvider) FindPropertyName(p *Property) (string, bool) {
	tag, ok := p.Tag("json")
	if !ok {
		return "", false
	}
	name, _, _ := strings.Cut(tag, ",")
	if len(name) == 0 || name == "-" {
		return "", false
	}
	return name, true
}

// IsIgnored reports whether the property's json tag is "-".
func (JSONTagProvider) IsIgnored(p *Property) bool {
	tag, _ := p.Tag("json")
	return tag == "-"
}
