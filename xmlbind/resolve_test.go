package xmlbind

import (
	"reflect"
	"testing"

	"github.com/aws/smithy-go-xml/serde"
	"github.com/aws/smithy-go-xml/xml"
)

// stubProvider answers every query with the configured values.
type stubProvider struct {
	name string

	namespace    *string
	isAttribute  *bool
	wrapper      *xml.Name
	queriedCount *int
}

func (s stubProvider) ProviderName() string { return s.name }

func (s stubProvider) count() {
	if s.queriedCount != nil {
		*s.queriedCount++
	}
}

func (s stubProvider) FindNamespace(*serde.Property) (string, bool) {
	s.count()
	if s.namespace == nil {
		return "", false
	}
	return *s.namespace, true
}

func (s stubProvider) IsOutputAsAttribute(*serde.Property) (bool, bool) {
	s.count()
	if s.isAttribute == nil {
		return false, false
	}
	return *s.isAttribute, true
}

func (s stubProvider) FindWrapperName(*serde.Property) (xml.Name, bool) {
	s.count()
	if s.wrapper == nil {
		return xml.Name{}, false
	}
	return *s.wrapper, true
}

// plainProvider is not XML aware.
type plainProvider struct{}

func (plainProvider) ProviderName() string { return "plain" }

func ptrTo[T any](v T) *T { return &v }

func TestResolve(t *testing.T) {
	prop := &serde.Property{Name: "Items", Owner: reflect.TypeOf(struct{}{})}

	cases := map[string]struct {
		Providers []serde.MetadataProvider

		ExpectNamespace   string
		ExpectNamespaceOK bool
		ExpectAttribute   bool
		ExpectAttributeOK bool
		ExpectWrapper     xml.Name
		ExpectWrapperOK   bool
	}{
		"empty chain": {},
		"non xml providers skipped": {
			Providers: []serde.MetadataProvider{
				plainProvider{},
				stubProvider{name: "b", namespace: ptrTo("b")},
			},
			ExpectNamespace:   "b",
			ExpectNamespaceOK: true,
		},
		"first answer wins": {
			Providers: []serde.MetadataProvider{
				stubProvider{name: "a", namespace: ptrTo("a"), isAttribute: ptrTo(false)},
				stubProvider{name: "b", namespace: ptrTo("b"), isAttribute: ptrTo(true)},
			},
			ExpectNamespace:   "a",
			ExpectNamespaceOK: true,
			ExpectAttribute:   false,
			ExpectAttributeOK: true,
		},
		"each query resolved independently": {
			Providers: []serde.MetadataProvider{
				stubProvider{name: "a", namespace: ptrTo("a")},
				stubProvider{name: "b", isAttribute: ptrTo(true), wrapper: &xml.Name{Local: "list"}},
			},
			ExpectNamespace:   "a",
			ExpectNamespaceOK: true,
			ExpectAttribute:   true,
			ExpectAttributeOK: true,
			ExpectWrapper:     xml.Name{Local: "list"},
			ExpectWrapperOK:   true,
		},
		"empty namespace is an answer": {
			Providers: []serde.MetadataProvider{
				stubProvider{name: "a", namespace: ptrTo("")},
				stubProvider{name: "b", namespace: ptrTo("b")},
			},
			ExpectNamespace:   "",
			ExpectNamespaceOK: true,
		},
	}

	for name, c := range cases {
		t.Run(name, func(t *testing.T) {
			ns, ok := ResolveNamespace(c.Providers, prop)
			if e, a := c.ExpectNamespace, ns; e != a {
				t.Errorf("expect namespace %q, got %q", e, a)
			}
			if e, a := c.ExpectNamespaceOK, ok; e != a {
				t.Errorf("expect namespace found %v, got %v", e, a)
			}

			attr, ok := ResolveIsAttribute(c.Providers, prop)
			if e, a := c.ExpectAttribute, attr; e != a {
				t.Errorf("expect attribute %v, got %v", e, a)
			}
			if e, a := c.ExpectAttributeOK, ok; e != a {
				t.Errorf("expect attribute found %v, got %v", e, a)
			}

			wrapper, ok := ResolveWrapperName(c.Providers, prop)
			if e, a := c.ExpectWrapper, wrapper; e != a {
				t.Errorf("expect wrapper %v, got %v", e, a)
			}
			if e, a := c.ExpectWrapperOK, ok; e != a {
				t.Errorf("expect wrapper found %v, got %v", e, a)
			}
		})
	}
}

func TestResolveStopsAtFirstAnswer(t *testing.T) {
	var first, second int
	providers := []serde.MetadataProvider{
		stubProvider{name: "a", namespace: ptrTo("a"), queriedCount: &first},
		stubProvider{name: "b", namespace: ptrTo("b"), queriedCount: &second},
	}

	if _, ok := ResolveNamespace(providers, &serde.Property{}); !ok {
		t.Fatalf("expect namespace found")
	}
	if e, a := 1, first; e != a {
		t.Errorf("expect %v queries of first provider, got %v", e, a)
	}
	if e, a := 0, second; e != a {
		t.Errorf("expect %v queries of second provider, got %v", e, a)
	}
}
