package xmlbind

import (
	"encoding/json"
	"fmt"

	"github.com/jmespath/go-jmespath"
	"sigs.k8s.io/yaml"

	"github.com/aws/smithy-go-xml/serde"
	"github.com/aws/smithy-go-xml/xml"
)

// DocumentProvider reads XML metadata from a YAML or JSON document, keyed by
// Go type name and field name:
//
//	types:
//	  Order:
//	    properties:
//	      ID:
//	        name: id
//	        attribute: true
//	      Items:
//	        namespace: ord
//	        wrapper: {namespace: ord, local: items}
//	      Debug:
//	        ignore: true
//
// A wrapper may also be given as a plain string local name.
type DocumentProvider struct {
	doc interface{}
}

var (
	_ Provider             = (*DocumentProvider)(nil)
	_ serde.NameProvider   = (*DocumentProvider)(nil)
	_ serde.PropertyFilter = (*DocumentProvider)(nil)
)

// NewDocumentProvider parses the YAML or JSON metadata document b.
func NewDocumentProvider(b []byte) (*DocumentProvider, error) {
	j, err := yaml.YAMLToJSON(b)
	if err != nil {
		return nil, fmt.Errorf("unable to parse metadata document, %w", err)
	}

	var doc interface{}
	if err := json.Unmarshal(j, &doc); err != nil {
		return nil, fmt.Errorf("unable to decode metadata document, %w", err)
	}
	return &DocumentProvider{doc: doc}, nil
}

// ProviderName identifies the provider.
func (*DocumentProvider) ProviderName() string { return "metadata-document" }

// FindPropertyName returns the property's name entry.
func (d *DocumentProvider) FindPropertyName(p *serde.Property) (string, bool) {
	s, ok := d.lookup(p, "name").(string)
	return s, ok
}

// IsIgnored returns the property's ignore entry.
func (d *DocumentProvider) IsIgnored(p *serde.Property) bool {
	v, _ := d.lookup(p, "ignore").(bool)
	return v
}

// FindNamespace returns the property's namespace entry.
func (d *DocumentProvider) FindNamespace(p *serde.Property) (string, bool) {
	s, ok := d.lookup(p, "namespace").(string)
	return s, ok
}

// IsOutputAsAttribute returns the property's attribute entry.
func (d *DocumentProvider) IsOutputAsAttribute(p *serde.Property) (bool, bool) {
	v, ok := d.lookup(p, "attribute").(bool)
	return v, ok
}

// FindWrapperName returns the property's wrapper entry.
func (d *DocumentProvider) FindWrapperName(p *serde.Property) (xml.Name, bool) {
	switch v := d.lookup(p, "wrapper").(type) {
	case string:
		return xml.Name{Local: v}, true
	case map[string]interface{}:
		ns, _ := v["namespace"].(string)
		local, _ := v["local"].(string)
		return xml.Name{Space: ns, Local: local}, true
	}
	return xml.Name{}, false
}

// lookup returns the key entry of the property, or nil.
func (d *DocumentProvider) lookup(p *serde.Property, key string) interface{} {
	expr := fmt.Sprintf("types.%s.properties.%s.%s",
		quoteIdentifier(p.Owner.Name()), quoteIdentifier(p.Field.Name), quoteIdentifier(key))

	v, err := jmespath.Search(expr, d.doc)
	if err != nil {
		return nil
	}
	return v
}

// quoteIdentifier returns s as a JMESPath quoted identifier.
func quoteIdentifier(s string) string {
	b, _ := json.Marshal(s)
	return string(b)
}
