package directive

import (
	"errors"
	"fmt"
	"io"

	"ngc-di/packages/compiler/core"

	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"
)

// ErrDuplicateType is returned when two directives share a type name
var ErrDuplicateType = errors.New("duplicate directive type")

// registryFile is the YAML shape of a directive registry
type registryFile struct {
	Directives []Annotation `yaml:"directives"`
}

// Registry is the ordered set of directives available to a compilation
type Registry struct {
	directives []*core.DirectiveMetadata
	byType     map[string]*core.DirectiveMetadata
}

// NewRegistry creates an empty Registry
func NewRegistry() *Registry {
	return &Registry{
		directives: []*core.DirectiveMetadata{},
		byType:     map[string]*core.DirectiveMetadata{},
	}
}

// Add registers a directive
func (r *Registry) Add(directive *core.DirectiveMetadata) error {
	if _, exists := r.byType[directive.Type]; exists {
		return fmt.Errorf("%w: %s", ErrDuplicateType, directive.Type)
	}
	r.directives = append(r.directives, directive)
	r.byType[directive.Type] = directive
	return nil
}

// Lookup returns the directive registered under typeName
func (r *Registry) Lookup(typeName string) (*core.DirectiveMetadata, bool) {
	d, ok := r.byType[typeName]
	return d, ok
}

// Directives returns the registered directives in registration order
func (r *Registry) Directives() []*core.DirectiveMetadata {
	result := make([]*core.DirectiveMetadata, len(r.directives))
	copy(result, r.directives)
	return result
}

// Len returns the number of registered directives
func (r *Registry) Len() int {
	return len(r.directives)
}

// ParseRegistry reads a YAML registry document
func ParseRegistry(data []byte) (*Registry, error) {
	var file registryFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse directive registry: %w", err)
	}

	reader := NewReader()
	registry := NewRegistry()
	for i, annotation := range file.Directives {
		metadata, err := reader.Read(annotation)
		if err != nil {
			return nil, fmt.Errorf("directive #%d: %w", i, err)
		}
		if err := registry.Add(metadata); err != nil {
			return nil, fmt.Errorf("directive #%d: %w", i, err)
		}
	}
	return registry, nil
}

// LoadRegistry reads the registry file at path
func LoadRegistry(fs afero.Fs, path string, logger logrus.FieldLogger) (*Registry, error) {
	if logger == nil {
		discard := logrus.New()
		discard.Out = io.Discard
		logger = discard
	}
	data, err := afero.ReadFile(fs, path)
	if err != nil {
		return nil, fmt.Errorf("failed to read directive registry: %w", err)
	}
	registry, err := ParseRegistry(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	logger.WithFields(logrus.Fields{
		"path":       path,
		"directives": registry.Len(),
	}).Debug("Loaded directive registry")
	return registry, nil
}
