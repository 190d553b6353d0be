package xmlbind

import (
	smithy "github.com/aws/smithy-go-xml"
	"github.com/aws/smithy-go-xml/serde"
	"github.com/aws/smithy-go-xml/traits"
	"github.com/aws/smithy-go-xml/xml"
)

// SchemaProvider reads XML metadata from the traits of schema members. The
// member for a property is looked up by Go field name in the schema
// registered for the property's owner type.
//
// xmlNamespace contributes its prefix, or its URI when no prefix is set.
type SchemaProvider struct {
	Registry *smithy.TypeRegistry
}

var (
	_ Provider           = SchemaProvider{}
	_ serde.NameProvider = SchemaProvider{}
)

// NewSchemaProvider returns a provider reading schemas from r.
func NewSchemaProvider(r *smithy.TypeRegistry) SchemaProvider {
	return SchemaProvider{Registry: r}
}

// ProviderName identifies the provider.
func (SchemaProvider) ProviderName() string { return "smithy-schema" }

// FindPropertyName returns the xmlName of the member.
func (sp SchemaProvider) FindPropertyName(p *serde.Property) (string, bool) {
	t, ok := memberTrait[*traits.XMLName](sp, p)
	if !ok {
		return "", false
	}
	return t.Name, true
}

// FindNamespace returns the xmlNamespace of the member.
func (sp SchemaProvider) FindNamespace(p *serde.Property) (string, bool) {
	t, ok := memberTrait[*traits.XMLNamespace](sp, p)
	if !ok {
		return "", false
	}
	if len(t.Prefix) != 0 {
		return t.Prefix, true
	}
	return t.URI, true
}

// IsOutputAsAttribute reports true for members with the xmlAttribute trait.
// Members without it are left unspecified.
func (sp SchemaProvider) IsOutputAsAttribute(p *serde.Property) (bool, bool) {
	if _, ok := memberTrait[*traits.XMLAttribute](sp, p); ok {
		return true, true
	}
	return false, false
}

// FindWrapperName returns the wrapper trait of the member. The trait is only
// honored on list, set and map members.
func (sp SchemaProvider) FindWrapperName(p *serde.Property) (xml.Name, bool) {
	m := sp.member(p)
	if m == nil || !m.Type().IsCollection() {
		return xml.Name{}, false
	}
	t, ok := smithy.SchemaTrait[*traits.XMLWrapper](m)
	if !ok {
		return xml.Name{}, false
	}
	return xml.Name{Space: t.Namespace, Local: t.Name}, true
}

// member returns the schema member for p, or nil.
func (sp SchemaProvider) member(p *serde.Property) *smithy.Schema {
	s := sp.Registry.Schema(p.Owner)
	if s == nil {
		return nil
	}
	return s.Member(p.Field.Name)
}

func memberTrait[T smithy.Trait](sp SchemaProvider, p *serde.Property) (T, bool) {
	m := sp.member(p)
	if m == nil {
		var zero T
		return zero, false
	}
	return smithy.SchemaTrait[T](m)
}
