package xmlbind

import (
	"github.com/aws/smithy-go-xml/serde"
)

// Module is the serde.Module enabling XML output. It puts a TagProvider at
// the front of the provider chain and registers the Modifier.
type Module struct{}

var _ serde.Module = Module{}

// SetupModule applies the module to cfg.
func (Module) SetupModule(cfg *serde.Config) {
	cfg.InsertProvider(TagProvider{})
	cfg.AddModifier(Modifier{})
}
