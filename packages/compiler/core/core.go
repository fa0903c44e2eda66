package core

import "fmt"

// DirectiveKind represents the annotation a directive class was declared with
type DirectiveKind int

const (
	DirectiveKindDecorator DirectiveKind = iota
	DirectiveKindComponent
	DirectiveKindTemplate
)

// String returns the annotation name of the kind
func (k DirectiveKind) String() string {
	switch k {
	case DirectiveKindDecorator:
		return "decorator"
	case DirectiveKindComponent:
		return "component"
	case DirectiveKindTemplate:
		return "template"
	}
	return fmt.Sprintf("DirectiveKind(%d)", int(k))
}

// ParseDirectiveKind parses an annotation name into a DirectiveKind
func ParseDirectiveKind(name string) (DirectiveKind, bool) {
	switch name {
	case "decorator":
		return DirectiveKindDecorator, true
	case "component":
		return DirectiveKindComponent, true
	case "template":
		return DirectiveKindTemplate, true
	}
	return DirectiveKindDecorator, false
}

// DirectiveMetadata describes one directive class attached to an element.
// Type is the directive's class name and identifies it within a registry.
type DirectiveMetadata struct {
	Type     string
	Kind     DirectiveKind
	Selector string
	// ComponentServices are the services a component provides to its view.
	// Only meaningful for DirectiveKindComponent.
	ComponentServices []string
}

// IsComponent reports whether the directive is a component
func (d *DirectiveMetadata) IsComponent() bool {
	return d.Kind == DirectiveKindComponent
}

func (d *DirectiveMetadata) String() string {
	return d.Type
}
