// Package injector holds the compile time descriptors of element injectors.
//
// A ProtoElementInjector is created once per element that carries directives
// and is shared by every view instantiated from the compiled template.
package injector

import (
	"fmt"
	"strings"

	"ngc-di/packages/compiler/core"
)

// ProtoElementInjector is the immutable configuration of one element injector scope
type ProtoElementInjector struct {
	parent                  *ProtoElementInjector
	index                   int
	bindings                []*core.DirectiveMetadata
	firstBindingIsComponent bool
}

// NewProtoElementInjector creates a new ProtoElementInjector.
// The bindings slice is copied; the caller keeps ownership of its argument.
func NewProtoElementInjector(
	parent *ProtoElementInjector,
	index int,
	bindings []*core.DirectiveMetadata,
	firstBindingIsComponent bool,
) *ProtoElementInjector {
	if index < 0 {
		panic(fmt.Sprintf("ProtoElementInjector index must not be negative, got %d", index))
	}
	if len(bindings) == 0 {
		panic("ProtoElementInjector requires at least one binding")
	}
	if firstBindingIsComponent && !bindings[0].IsComponent() {
		panic(fmt.Sprintf("first binding %q of ProtoElementInjector is not a component", bindings[0].Type))
	}
	copied := make([]*core.DirectiveMetadata, len(bindings))
	copy(copied, bindings)
	return &ProtoElementInjector{
		parent:                  parent,
		index:                   index,
		bindings:                copied,
		firstBindingIsComponent: firstBindingIsComponent,
	}
}

// Parent returns the injector this one chains to, or nil at a scope root
func (p *ProtoElementInjector) Parent() *ProtoElementInjector {
	return p.parent
}

// Index returns the element binder slot of the injector within its view
func (p *ProtoElementInjector) Index() int {
	return p.index
}

// Bindings returns a copy of the ordered directive bindings
func (p *ProtoElementInjector) Bindings() []*core.DirectiveMetadata {
	result := make([]*core.DirectiveMetadata, len(p.bindings))
	copy(result, p.bindings)
	return result
}

// NumBindings returns the number of bindings
func (p *ProtoElementInjector) NumBindings() int {
	return len(p.bindings)
}

// BindingAt returns the binding at position i
func (p *ProtoElementInjector) BindingAt(i int) *core.DirectiveMetadata {
	return p.bindings[i]
}

// FirstBindingIsComponent reports whether binding 0 is the element's component
func (p *ProtoElementInjector) FirstBindingIsComponent() bool {
	return p.firstBindingIsComponent
}

// ComponentBinding returns the component binding, or nil if there is none
func (p *ProtoElementInjector) ComponentBinding() *core.DirectiveMetadata {
	if !p.firstBindingIsComponent {
		return nil
	}
	return p.bindings[0]
}

// Depth returns the number of ancestors of the injector
func (p *ProtoElementInjector) Depth() int {
	depth := 0
	for cur := p.parent; cur != nil; cur = cur.parent {
		depth++
	}
	return depth
}

// BindingTypes returns the directive type names in binding order
func (p *ProtoElementInjector) BindingTypes() []string {
	types := make([]string, len(p.bindings))
	for i, b := range p.bindings {
		types[i] = b.Type
	}
	return types
}

func (p *ProtoElementInjector) String() string {
	parent := "-"
	if p.parent != nil {
		parent = fmt.Sprintf("%d", p.parent.index)
	}
	return fmt.Sprintf("ProtoElementInjector(index=%d, parent=%s, bindings=[%s])",
		p.index, parent, strings.Join(p.BindingTypes(), ", "))
}
