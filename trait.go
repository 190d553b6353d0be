package smithy

// Trait represents a trait applied to a shape in a Smithy model. Traits
// related to serialization are included in Schemas.
type Trait interface {
	TraitID() string
}
