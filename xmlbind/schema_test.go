package xmlbind

import (
	"reflect"
	"testing"

	smithy "github.com/aws/smithy-go-xml"
	"github.com/aws/smithy-go-xml/serde"
	"github.com/aws/smithy-go-xml/traits"
)

type Package struct {
	Weight   int
	Contents []string
	Sender   string
	Barcode  string
}

var (
	stringSchema = smithy.NewSchema("smithy.api#String", smithy.ShapeTypeString)
	listSchema   = smithy.NewSchema("com.example#StringList", smithy.ShapeTypeList,
		smithy.WithMember("member", stringSchema))

	packageSchema = smithy.NewSchema("com.example#Package", smithy.ShapeTypeStructure,
		smithy.WithMember("Weight", smithy.NewSchema("smithy.api#Integer", smithy.ShapeTypeInteger),
			&traits.XMLAttribute{},
			&traits.XMLName{Name: "kg"}),
		smithy.WithMember("Contents", listSchema,
			&traits.XMLNamespace{URI: "https://example.com/pkg", Prefix: "pkg"},
			&traits.XMLWrapper{Namespace: "pkg", Name: "contents"},
			&traits.XMLName{Name: "item"}),
		smithy.WithMember("Sender", stringSchema,
			&traits.XMLNamespace{URI: "urn:sender", Prefix: "snd"}),
	)
)

func TestSchemaProvider(t *testing.T) {
	registry := smithy.NewTypeRegistry(smithy.RegistryEntry[Package](packageSchema))

	m := NewMapper(serde.WithProviders(NewSchemaProvider(registry)))
	b, err := m.Marshal(&Package{
		Weight:   3,
		Contents: []string{"a", "b"},
		Sender:   "s",
		Barcode:  "123",
	})
	if err != nil {
		t.Fatalf("expect no error, got %v", err)
	}

	expect := `<Package kg="3">` +
		`<pkg:contents><pkg:item>a</pkg:item><pkg:item>b</pkg:item></pkg:contents>` +
		`<snd:Sender>s</snd:Sender>` +
		`<Barcode>123</Barcode>` +
		`</Package>`
	if e, a := expect, string(b); e != a {
		t.Errorf("expect XML match\nexpect: %s\nactual: %s", e, a)
	}
}

func TestSchemaProviderNamespaceURI(t *testing.T) {
	type Tagged struct {
		Value string
	}
	schema := smithy.NewSchema("com.example#Tagged", smithy.ShapeTypeStructure,
		smithy.WithMember("Value", stringSchema, &traits.XMLNamespace{URI: "urn:value"}))
	sp := NewSchemaProvider(smithy.NewTypeRegistry(smithy.RegistryEntry[Tagged](schema)))

	desc := serde.NewProvider(serde.Config{}).Describe(reflect.TypeOf(Tagged{}))
	ns, ok := sp.FindNamespace(desc.Properties[0])
	if !ok {
		t.Fatalf("expect namespace")
	}
	if e, a := "urn:value", ns; e != a {
		t.Errorf("expect %v, got %v", e, a)
	}
	if _, ok := sp.FindWrapperName(desc.Properties[0]); ok {
		t.Errorf("expect no wrapper")
	}
}

func TestSchemaProviderWrapperOnCollections(t *testing.T) {
	type Parcel struct {
		Label string
		Lines []string
		Sizes map[string]int
	}
	wrapper := &traits.XMLWrapper{Name: "wrapped"}
	mapSchema := smithy.NewSchema("com.example#Sizes", smithy.ShapeTypeMap)
	schema := smithy.NewSchema("com.example#Parcel", smithy.ShapeTypeStructure,
		smithy.WithMember("Label", stringSchema, wrapper),
		smithy.WithMember("Lines", listSchema, wrapper),
		smithy.WithMember("Sizes", mapSchema, wrapper),
	)
	sp := NewSchemaProvider(smithy.NewTypeRegistry(smithy.RegistryEntry[Parcel](schema)))
	desc := serde.NewProvider(serde.Config{}).Describe(reflect.TypeOf(Parcel{}))

	cases := map[string]struct {
		Index  int
		Expect bool
	}{
		"string member": {Index: 0, Expect: false},
		"list member":   {Index: 1, Expect: true},
		"map member":    {Index: 2, Expect: true},
	}

	for name, c := range cases {
		t.Run(name, func(t *testing.T) {
			w, ok := sp.FindWrapperName(desc.Properties[c.Index])
			if e, a := c.Expect, ok; e != a {
				t.Fatalf("expect wrapper found %v, got %v", e, a)
			}
			if ok && w.Local != "wrapped" {
				t.Errorf("expect wrapped, got %v", w)
			}
		})
	}
}

func TestSchemaProviderUnregistered(t *testing.T) {
	sp := NewSchemaProvider(smithy.NewTypeRegistry())
	prop := &serde.Property{Name: "Weight"}

	if _, ok := sp.IsOutputAsAttribute(prop); ok {
		t.Errorf("expect no answer for unregistered type")
	}
	if _, ok := sp.FindPropertyName(prop); ok {
		t.Errorf("expect no answer for unregistered type")
	}
}
