package xmlbind

import (
	"strings"

	"github.com/aws/smithy-go-xml/serde"
	"github.com/aws/smithy-go-xml/xml"
)

// TagProvider reads XML metadata from `xml` struct tags:
//
//	xml:"name"              element named name
//	xml:"ns name"           element name in namespace ns
//	xml:"name,attr"         attribute named name
//	xml:"name,element"      element, even if another provider says attribute
//	xml:"wrapper>name"      container wrapped in wrapper, members named name
//	xml:">name"             container wrapped in an element named name
//	xml:"-"                 ignored
//
// A namespace applies to the wrapper element as well. For paths with more
// than one '>' the element directly enclosing the members is the wrapper.
type TagProvider struct{}

var (
	_ Provider             = TagProvider{}
	_ serde.NameProvider   = TagProvider{}
	_ serde.PropertyFilter = TagProvider{}
)

// ProviderName identifies the provider.
func (TagProvider) ProviderName() string { return "xml-tags" }

// FindPropertyName returns the element or attribute name from the tag.
func (TagProvider) FindPropertyName(p *serde.Property) (string, bool) {
	t, ok := lookupTag(p)
	if !ok || len(t.name) == 0 {
		return "", false
	}
	return t.name, true
}

// IsIgnored reports whether the tag is "-".
func (TagProvider) IsIgnored(p *serde.Property) bool {
	t, ok := lookupTag(p)
	return ok && t.ignore
}

// FindNamespace returns the namespace prefix of the tag name.
func (TagProvider) FindNamespace(p *serde.Property) (string, bool) {
	t, ok := lookupTag(p)
	if !ok || !t.hasNamespace {
		return "", false
	}
	return t.namespace, true
}

// IsOutputAsAttribute reports the attr or element tag option.
func (TagProvider) IsOutputAsAttribute(p *serde.Property) (bool, bool) {
	t, ok := lookupTag(p)
	if !ok || t.attribute == nil {
		return false, false
	}
	return *t.attribute, true
}

// FindWrapperName returns the parent element of a '>' path.
func (TagProvider) FindWrapperName(p *serde.Property) (xml.Name, bool) {
	t, ok := lookupTag(p)
	if !ok || !t.hasWrapper {
		return xml.Name{}, false
	}
	return xml.Name{Space: t.namespace, Local: t.wrapper}, true
}

type xmlTag struct {
	ignore bool

	name         string
	namespace    string
	hasNamespace bool

	wrapper    string
	hasWrapper bool

	attribute *bool
}

func lookupTag(p *serde.Property) (xmlTag, bool) {
	tag, ok := p.Tag("xml")
	if !ok {
		return xmlTag{}, false
	}
	return parseTag(tag), true
}

func parseTag(tag string) xmlTag {
	var t xmlTag
	if tag == "-" {
		t.ignore = true
		return t
	}

	name, opts, _ := strings.Cut(tag, ",")
	if ns, local, ok := strings.Cut(name, " "); ok {
		t.namespace, t.hasNamespace = ns, true
		name = local
	}

	if i := strings.LastIndex(name, ">"); i >= 0 {
		path := name[:i]
		if j := strings.LastIndex(path, ">"); j >= 0 {
			path = path[j+1:]
		}
		t.wrapper, t.hasWrapper = path, true
		name = name[i+1:]
	}
	t.name = name

	for _, opt := range strings.Split(opts, ",") {
		switch opt {
		case "attr":
			v := true
			t.attribute = &v
		case "element":
			v := false
			t.attribute = &v
		}
	}

	return t
}
