package xmlbind

import (
	"reflect"

	"github.com/aws/smithy-go-xml/serde"
	"github.com/aws/smithy-go-xml/xml"
)

// Generator is a serde.Generator that supports the XML specific hooks used by
// BeanSerializer and PropertyWriter.
type Generator interface {
	serde.Generator

	SetNextName(xml.Name)
	SetNextIsAttribute(bool)

	StartWrappedValue(wrapper, wrapped xml.Name) error
	FinishWrappedValue(wrapper, wrapped xml.Name) error
}

var _ Generator = (*xml.Generator)(nil)

// PropertyInfo is the XML metadata resolved for a property.
type PropertyInfo struct {
	Namespace string

	// IsAttribute is nil when no provider specified it.
	IsAttribute *bool
}

// Attribute reports whether the property is written as an attribute.
func (i PropertyInfo) Attribute() bool {
	return i.IsAttribute != nil && *i.IsAttribute
}

// WrapperSpec names the wrapper element of a container property and the
// element repeated for each of its members.
type WrapperSpec struct {
	Wrapper xml.Name
	Wrapped xml.Name
}

// PropertyWriter decorates a serde.PropertyWriter with resolved XML metadata.
// Writers of container properties also carry a WrapperSpec and surround the
// value they write with the wrapper element.
type PropertyWriter struct {
	serde.PropertyWriter

	info    PropertyInfo
	wrapper *WrapperSpec
}

var _ serde.PropertyWriter = (*PropertyWriter)(nil)

// Decorate returns w decorated with the namespace and attribute flag.
// Decorating an already decorated writer replaces its metadata.
func Decorate(w serde.PropertyWriter, namespace string, isAttribute *bool) *PropertyWriter {
	if d, ok := w.(*PropertyWriter); ok {
		w = d.PropertyWriter
	}
	return &PropertyWriter{
		PropertyWriter: w,
		info:           PropertyInfo{Namespace: namespace, IsAttribute: isAttribute},
	}
}

// DecorateContainer returns a copy of w that writes its value inside the
// wrapper element, each member named wrapped.
func DecorateContainer(w *PropertyWriter, wrapper, wrapped xml.Name) *PropertyWriter {
	return &PropertyWriter{
		PropertyWriter: w.PropertyWriter,
		info:           w.info,
		wrapper:        &WrapperSpec{Wrapper: wrapper, Wrapped: wrapped},
	}
}

// Info returns the resolved XML metadata of the property.
func (w *PropertyWriter) Info() PropertyInfo {
	return w.info
}

// Wrapper returns the wrapper of a container property.
func (w *PropertyWriter) Wrapper() (WrapperSpec, bool) {
	if w.wrapper == nil {
		return WrapperSpec{}, false
	}
	return *w.wrapper, true
}

// Unwrap returns the decorated writer.
func (w *PropertyWriter) Unwrap() serde.PropertyWriter {
	return w.PropertyWriter
}

// SerializeAsField writes the property. A container value is surrounded by
// the wrapper element when gen is an XML Generator; an absent value writes
// nothing, wrapper included.
func (w *PropertyWriter) SerializeAsField(bean reflect.Value, gen serde.Generator, sp *serde.Provider) error {
	xg, ok := gen.(Generator)
	if w.wrapper == nil || !ok {
		return w.PropertyWriter.SerializeAsField(bean, gen, sp)
	}

	_, present, err := w.Get(bean)
	if err != nil || !present {
		return err
	}

	if err := xg.StartWrappedValue(w.wrapper.Wrapper, w.wrapper.Wrapped); err != nil {
		return err
	}
	if err := w.PropertyWriter.SerializeAsField(bean, gen, sp); err != nil {
		return err
	}
	return xg.FinishWrappedValue(w.wrapper.Wrapper, w.wrapper.Wrapped)
}

// infoOf returns the XML metadata of pw, or the zero PropertyInfo for an
// undecorated writer.
func infoOf(pw serde.PropertyWriter) PropertyInfo {
	if d, ok := pw.(*PropertyWriter); ok {
		return d.info
	}
	return PropertyInfo{}
}
