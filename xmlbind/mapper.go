package xmlbind

import (
	"reflect"

	"github.com/aws/smithy-go-xml/serde"
	"github.com/aws/smithy-go-xml/xml"
)

// defaultRootName names the root element of values whose type has no name.
const defaultRootName = "value"

// Mapper marshals Go values to XML documents.
type Mapper struct {
	mapper *serde.Mapper
}

// NewMapper returns a Mapper with Module applied, followed by optFns.
func NewMapper(optFns ...func(*serde.Config)) *Mapper {
	opts := make([]func(*serde.Config), 0, len(optFns)+1)
	opts = append(opts, serde.WithModule(Module{}))
	opts = append(opts, optFns...)

	return &Mapper{mapper: serde.New(opts...)}
}

// Marshal returns the XML encoding of v. The root element is named after the
// type of v.
func (m *Mapper) Marshal(v interface{}) ([]byte, error) {
	return m.MarshalElement(v, xml.Name{Local: rootName(v)})
}

// MarshalElement returns the XML encoding of v using root as the root element
// name.
func (m *Mapper) MarshalElement(v interface{}, root xml.Name) ([]byte, error) {
	enc := xml.NewEncoder()
	gen := xml.NewGenerator(enc)
	gen.SetNextName(root)

	if err := m.mapper.Serialize(gen, v); err != nil {
		return nil, err
	}
	return enc.Bytes(), nil
}

func rootName(v interface{}) string {
	t := reflect.TypeOf(v)
	for t != nil && t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	if t == nil || len(t.Name()) == 0 {
		return defaultRootName
	}
	return t.Name()
}
