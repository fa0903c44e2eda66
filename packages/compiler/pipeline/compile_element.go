package pipeline

import (
	"ngc-di/packages/compiler/core"
	"ngc-di/packages/compiler/dom"
	"ngc-di/packages/compiler/injector"
	"ngc-di/packages/compiler/view"

	"golang.org/x/net/html"
)

// CompileElement wraps an element of the template with the state the compile
// steps compute for it. Steps fill the fields in traversal order; once the
// pipeline moved past an element its fields are not modified anymore.
type CompileElement struct {
	Element *html.Node
	// Depth is the distance from the traversal root
	Depth int

	Directives []*core.DirectiveMetadata
	// IsViewRoot marks the root of an independently scoped embedded view
	IsViewRoot         bool
	InheritedProtoView *view.ProtoView

	OwnProtoElementInjector       *injector.ProtoElementInjector
	InheritedProtoElementInjector *injector.ProtoElementInjector

	injectorResolved bool
}

// NewCompileElement creates a new CompileElement for element
func NewCompileElement(element *html.Node) *CompileElement {
	if !dom.IsElement(element) {
		panic("CompileElement requires an element node")
	}
	return &CompileElement{
		Element:    element,
		Directives: []*core.DirectiveMetadata{},
	}
}

// AddDirective attaches a directive to the element, keeping attachment order
func (ce *CompileElement) AddDirective(directive *core.DirectiveMetadata) {
	if directive == nil {
		panic("cannot attach a nil directive")
	}
	ce.Directives = append(ce.Directives, directive)
}

// HasDirectives reports whether any directive is attached
func (ce *CompileElement) HasDirectives() bool {
	return len(ce.Directives) > 0
}

// InjectorResolved reports whether the element's injector fields are final
func (ce *CompileElement) InjectorResolved() bool {
	return ce.injectorResolved
}

// Describe returns the element's start tag
func (ce *CompileElement) Describe() string {
	return dom.Describe(ce.Element)
}

func (ce *CompileElement) String() string {
	return ce.Describe()
}
