package smithy

import (
	"reflect"
	"testing"
)

type testTrait struct {
	Value string
}

func (*testTrait) TraitID() string { return "com.example#test" }

type otherTrait struct{}

func (*otherTrait) TraitID() string { return "com.example#other" }

func TestNewSchema(t *testing.T) {
	str := NewSchema("smithy.api#String", ShapeTypeString, WithTraits(&testTrait{Value: "target"}))

	s := NewSchema("com.example#Order", ShapeTypeStructure,
		WithMember("ID", str, &testTrait{Value: "member"}),
		WithMember("Note", str),
	)

	if e, a := (ShapeID{Namespace: "com.example", Name: "Order"}), s.ID(); e != a {
		t.Errorf("expect id %v, got %v", e, a)
	}
	if e, a := ShapeTypeStructure, s.Type(); e != a {
		t.Errorf("expect type %v, got %v", e, a)
	}

	var names []string
	for _, m := range s.Members() {
		names = append(names, m.ID().Member)
	}
	if e, a := []string{"ID", "Note"}, names; !reflect.DeepEqual(e, a) {
		t.Errorf("expect members %v, got %v", e, a)
	}

	id := s.Member("ID")
	if e, a := "com.example#Order$ID", id.ID().String(); e != a {
		t.Errorf("expect member id %v, got %v", e, a)
	}
	if e, a := ShapeTypeString, id.Type(); e != a {
		t.Errorf("expect member type %v, got %v", e, a)
	}

	tt, ok := SchemaTrait[*testTrait](id)
	if !ok {
		t.Fatalf("expect member trait")
	}
	if e, a := "member", tt.Value; e != a {
		t.Errorf("expect member trait to override target, got %v", a)
	}

	tt, ok = SchemaTrait[*testTrait](s.Member("Note"))
	if !ok || tt.Value != "target" {
		t.Errorf("expect target trait inherited, got %v, %v", tt, ok)
	}
	if tt, _ := SchemaTrait[*testTrait](str); tt.Value != "target" {
		t.Errorf("expect target unchanged, got %v", tt.Value)
	}

	if _, ok := SchemaTrait[*otherTrait](id); ok {
		t.Errorf("expect no other trait")
	}
	if m := s.Member("Missing"); m != nil {
		t.Errorf("expect no member, got %v", m)
	}
}

func TestTypeRegistry(t *testing.T) {
	type Order struct{}
	type Line struct{}

	order := NewSchema("com.example#Order", ShapeTypeStructure)
	r := NewTypeRegistry(RegistryEntry[Order](order))

	cases := map[string]struct {
		Type   reflect.Type
		Expect *Schema
	}{
		"registered":     {Type: reflect.TypeOf(Order{}), Expect: order},
		"pointer":        {Type: reflect.TypeOf(&Order{}), Expect: order},
		"double pointer": {Type: reflect.TypeOf((**Order)(nil)), Expect: order},
		"unregistered":   {Type: reflect.TypeOf(Line{}), Expect: nil},
		"nil type":       {Type: nil, Expect: nil},
	}

	for name, c := range cases {
		t.Run(name, func(t *testing.T) {
			if e, a := c.Expect, r.Schema(c.Type); e != a {
				t.Errorf("expect %v, got %v", e, a)
			}
		})
	}

	var nilRegistry *TypeRegistry
	if s := nilRegistry.Schema(reflect.TypeOf(Order{})); s != nil {
		t.Errorf("expect nil registry to have no schemas, got %v", s)
	}
}

func TestShapeTypeIsCollection(t *testing.T) {
	cases := map[ShapeType]bool{
		ShapeTypeList:      true,
		ShapeTypeSet:       true,
		ShapeTypeMap:       true,
		ShapeTypeString:    false,
		ShapeTypeBlob:      false,
		ShapeTypeStructure: false,
	}

	for typ, expect := range cases {
		if a := typ.IsCollection(); expect != a {
			t.Errorf("expect %v collection %v, got %v", typ, expect, a)
		}
	}
}
