// Package traits defines representations of Smithy IDL traits that appear in
// schemas and shape XML serialization.
package traits

// XMLAttribute represents smithy.api#xmlAttribute.
type XMLAttribute struct{}

// TraitID identifies the trait.
func (*XMLAttribute) TraitID() string { return "smithy.api#xmlAttribute" }

// XMLName represents smithy.api#xmlName.
type XMLName struct {
	Name string
}

// TraitID identifies the trait.
func (*XMLName) TraitID() string { return "smithy.api#xmlName" }

// XMLNamespace represents smithy.api#xmlNamespace.
type XMLNamespace struct {
	URI    string
	Prefix string
}

// TraitID identifies the trait.
func (*XMLNamespace) TraitID() string { return "smithy.api#xmlNamespace" }

// XMLWrapper names the element wrapped around the members of a list or map
// member. An empty Name keeps the member's own name for the wrapper.
type XMLWrapper struct {
	Namespace string
	Name      string
}

// TraitID identifies the trait.
func (*XMLWrapper) TraitID() string { return "smithy.xml#wrapper" }
