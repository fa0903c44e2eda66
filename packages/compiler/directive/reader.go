// Package directive reads directive annotations into directive metadata and
// keeps the registry of directives known to a compilation.
package directive

import (
	"errors"
	"fmt"
	"strings"

	"ngc-di/packages/compiler/core"

	"github.com/andybalholm/cascadia"
)

var (
	// ErrUnknownKind is returned for an annotation kind other than
	// decorator, component or template
	ErrUnknownKind = errors.New("unknown directive kind")
	// ErrInvalidAnnotation is returned for an annotation missing its type or selector
	ErrInvalidAnnotation = errors.New("invalid directive annotation")
)

// Annotation is the declared form of a directive class
type Annotation struct {
	Type              string   `yaml:"type"`
	Kind              string   `yaml:"kind"`
	Selector          string   `yaml:"selector"`
	ComponentServices []string `yaml:"componentServices,omitempty"`
}

// Reader turns annotations into DirectiveMetadata
type Reader struct{}

// NewReader creates a new Reader
func NewReader() *Reader {
	return &Reader{}
}

// Read validates an annotation and returns the metadata it declares
func (r *Reader) Read(annotation Annotation) (*core.DirectiveMetadata, error) {
	typeName := strings.TrimSpace(annotation.Type)
	if typeName == "" {
		return nil, fmt.Errorf("%w: missing type", ErrInvalidAnnotation)
	}
	kind, ok := core.ParseDirectiveKind(strings.ToLower(strings.TrimSpace(annotation.Kind)))
	if !ok {
		return nil, fmt.Errorf("%w %q on %s", ErrUnknownKind, annotation.Kind, typeName)
	}
	selector := strings.TrimSpace(annotation.Selector)
	if selector == "" {
		return nil, fmt.Errorf("%w: %s has no selector", ErrInvalidAnnotation, typeName)
	}
	if _, err := cascadia.Compile(selector); err != nil {
		return nil, fmt.Errorf("%w: %s has an invalid selector %q: %v", ErrInvalidAnnotation, typeName, selector, err)
	}
	if kind != core.DirectiveKindComponent && len(annotation.ComponentServices) > 0 {
		return nil, fmt.Errorf("%w: %s declares componentServices but is a %s", ErrInvalidAnnotation, typeName, kind)
	}

	services := make([]string, len(annotation.ComponentServices))
	copy(services, annotation.ComponentServices)
	return &core.DirectiveMetadata{
		Type:              typeName,
		Kind:              kind,
		Selector:          selector,
		ComponentServices: services,
	}, nil
}
