package xmlbind

import (
	"reflect"
	"testing"

	"github.com/aws/smithy-go-xml/serde"
	"github.com/aws/smithy-go-xml/xml"
)

const shipmentDocument = `
types:
  Shipment:
    properties:
      Tracking:
        name: id
        attribute: true
      Parcels:
        namespace: ship
        wrapper:
          namespace: ship
          local: boxes
      Notes:
        wrapper: remarks
        attribute: false
      Blob:
        ignore: true
`

func TestDocumentProvider(t *testing.T) {
	dp, err := NewDocumentProvider([]byte(shipmentDocument))
	if err != nil {
		t.Fatalf("expect no error, got %v", err)
	}

	typ := reflect.TypeOf(Shipment{})
	prop := func(name string) *serde.Property {
		f, _ := typ.FieldByName(name)
		return &serde.Property{Name: name, Type: f.Type, Owner: typ, Field: f}
	}

	if name, ok := dp.FindPropertyName(prop("Tracking")); !ok || name != "id" {
		t.Errorf("expect name id, got %q, %v", name, ok)
	}
	if v, ok := dp.IsOutputAsAttribute(prop("Tracking")); !ok || !v {
		t.Errorf("expect attribute, got %v, %v", v, ok)
	}

	if ns, ok := dp.FindNamespace(prop("Parcels")); !ok || ns != "ship" {
		t.Errorf("expect namespace ship, got %q, %v", ns, ok)
	}
	if w, ok := dp.FindWrapperName(prop("Parcels")); !ok || w != (xml.Name{Space: "ship", Local: "boxes"}) {
		t.Errorf("expect wrapper ship:boxes, got %v, %v", w, ok)
	}

	if w, ok := dp.FindWrapperName(prop("Notes")); !ok || w != (xml.Name{Local: "remarks"}) {
		t.Errorf("expect wrapper remarks, got %v, %v", w, ok)
	}
	if v, ok := dp.IsOutputAsAttribute(prop("Notes")); !ok || v {
		t.Errorf("expect element, got %v, %v", v, ok)
	}

	if !dp.IsIgnored(prop("Blob")) {
		t.Errorf("expect Blob ignored")
	}
	if dp.IsIgnored(prop("Notes")) {
		t.Errorf("expect Notes not ignored")
	}

	if _, ok := dp.FindNamespace(prop("Notes")); ok {
		t.Errorf("expect no namespace for Notes")
	}
	if _, ok := dp.FindPropertyName(prop("Labels")); ok {
		t.Errorf("expect no name for property missing from document")
	}
}

func TestDocumentProviderJSON(t *testing.T) {
	dp, err := NewDocumentProvider([]byte(`{"types": {"Shipment": {"properties": {"Notes": {"name": "note"}}}}}`))
	if err != nil {
		t.Fatalf("expect no error, got %v", err)
	}

	b, err := NewMapper(serde.WithProviders(dp)).Marshal(Shipment{Notes: []string{"a"}})
	if err != nil {
		t.Fatalf("expect no error, got %v", err)
	}
	if e, a := `<Shipment ship:tracking=""><note><note>a</note></note></Shipment>`, string(b); e != a {
		t.Errorf("expect %v, got %v", e, a)
	}
}

func TestDocumentProviderInvalid(t *testing.T) {
	if _, err := NewDocumentProvider([]byte("types: [")); err == nil {
		t.Errorf("expect error, got none")
	}
}
