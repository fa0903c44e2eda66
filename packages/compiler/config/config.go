package config

import (
	"io"

	"ngc-di/packages/compiler/pipeline"

	"github.com/sirupsen/logrus"
)

// CompilerConfig represents the compiler configuration
type CompilerConfig struct {
	ViewRootAttribute string
	Logger            logrus.FieldLogger
	// InjectorFactory overrides how ProtoElementInjectors are constructed
	InjectorFactory pipeline.ProtoElementInjectorFactory
}

// NewCompilerConfig creates a new CompilerConfig with optional parameters
func NewCompilerConfig(opts ...CompilerConfigOption) *CompilerConfig {
	config := &CompilerConfig{
		ViewRootAttribute: pipeline.DefaultViewRootAttribute,
		Logger:            discardLogger(),
	}

	for _, opt := range opts {
		opt(config)
	}

	return config
}

// CompilerConfigOption is a function that modifies CompilerConfig
type CompilerConfigOption func(*CompilerConfig)

// WithViewRootAttribute sets the attribute marking embedded view roots
func WithViewRootAttribute(name string) CompilerConfigOption {
	return func(c *CompilerConfig) {
		if name != "" {
			c.ViewRootAttribute = name
		}
	}
}

// WithLogger sets the logger
func WithLogger(logger logrus.FieldLogger) CompilerConfigOption {
	return func(c *CompilerConfig) {
		if logger != nil {
			c.Logger = logger
		}
	}
}

// WithInjectorFactory sets the ProtoElementInjector factory
func WithInjectorFactory(factory pipeline.ProtoElementInjectorFactory) CompilerConfigOption {
	return func(c *CompilerConfig) {
		c.InjectorFactory = factory
	}
}

func discardLogger() logrus.FieldLogger {
	logger := logrus.New()
	logger.Out = io.Discard
	return logger
}
