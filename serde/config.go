package serde

import (
	"reflect"

	"github.com/aws/smithy-go-xml/logging"
)

// Config holds the providers, modifiers and custom serializers of a Mapper.
type Config struct {
	// Providers is the metadata provider chain, highest priority first.
	Providers []MetadataProvider

	// Modifiers are applied in order when a struct serializer is constructed.
	Modifiers []SerializerModifier

	// Serializers overrides the serializer used for a type.
	Serializers map[reflect.Type]Serializer

	// Logger receives construction diagnostics. Defaults to logging.Noop.
	Logger logging.Logger
}

// Module bundles configuration applied to a Config in one step.
type Module interface {
	SetupModule(cfg *Config)
}

// InsertProvider adds p at the front of the provider chain.
func (c *Config) InsertProvider(p MetadataProvider) {
	c.Providers = append([]MetadataProvider{p}, c.Providers...)
}

// AppendProvider adds p at the end of the provider chain.
func (c *Config) AppendProvider(p MetadataProvider) {
	c.Providers = append(c.Providers, p)
}

// AddModifier registers m after any existing modifiers.
func (c *Config) AddModifier(m SerializerModifier) {
	c.Modifiers = append(c.Modifiers, m)
}

// Logf logs to the configured logger, if any.
func (c *Config) Logf(level logging.Classification, format string, v ...interface{}) {
	if c.Logger == nil {
		return
	}
	c.Logger.Logf(level, format, v...)
}

// WithProviders appends providers to the chain.
func WithProviders(providers ...MetadataProvider) func(*Config) {
	return func(c *Config) {
		for _, p := range providers {
			c.AppendProvider(p)
		}
	}
}

// WithModifiers registers serializer modifiers.
func WithModifiers(modifiers ...SerializerModifier) func(*Config) {
	return func(c *Config) {
		for _, m := range modifiers {
			c.AddModifier(m)
		}
	}
}

// WithSerializer uses ser for values of type t.
func WithSerializer(t reflect.Type, ser Serializer) func(*Config) {
	return func(c *Config) {
		if c.Serializers == nil {
			c.Serializers = map[reflect.Type]Serializer{}
		}
		c.Serializers[t] = ser
	}
}

// WithLogger sets the logger.
func WithLogger(l logging.Logger) func(*Config) {
	return func(c *Config) {
		c.Logger = l
	}
}

// WithModule applies m to the Config.
func WithModule(m Module) func(*Config) {
	return m.SetupModule
}
