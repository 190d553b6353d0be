// Package xml is the emission layer used when the serialization engine is
// producing XML.
//
// Encoder writes element and attribute tokens to a buffer. The start tag of
// the innermost open element stays pending until character data or a child
// element is written, so attributes may be added to it up to that point.
//
// Generator drives an Encoder through the engine's generic generator
// contract. It adds the XML specific hooks used by xmlbind: the qualified name
// and attribute mode of the next property, and start/finish of the wrapper
// element around container values. Arrays are written unwrapped, each member
// repeating the current element name, for eg.
// `<tag>a</tag><tag>b</tag>`.
//
// Resources followed: https://www.w3.org/TR/xml/ and
// https://smithy.io/2.0/spec/protocol-traits.html#xml-bindings
package xml
