// Package xmlbind makes the serde engine write XML instead of JSON shaped
// output.
//
// Module registers a Modifier with the engine. While the serializer of a
// struct type is constructed, the Modifier resolves for every property its
// namespace, whether it is written as an attribute, and, for container typed
// properties, the name of the wrapper element around the repeated members.
// The resolved metadata is carried by a decorating PropertyWriter. The default
// bean serializer is then replaced by a BeanSerializer that writes every
// attribute property before any element property, keeping the declared order
// within both groups.
//
// Metadata is looked up in the engine's provider chain. TagProvider reads
// `xml` struct tags, SchemaProvider reads traits from a smithy.TypeRegistry,
// and DocumentProvider reads a YAML or JSON metadata document. The first
// provider answering a query wins; each query is resolved independently.
//
//	type Order struct {
//		ID    string   `xml:"id,attr"`
//		Items []string `xml:"items>item"`
//	}
//
//	b, err := xmlbind.NewMapper().Marshal(Order{ID: "7", Items: []string{"a", "b"}})
//	// <Order id="7"><items><item>a</item><item>b</item></items></Order>
package xmlbind
