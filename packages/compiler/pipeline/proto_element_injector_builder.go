package pipeline

import (
	"fmt"

	"ngc-di/packages/compiler/core"
	"ngc-di/packages/compiler/injector"
)

// ProtoElementInjectorFactory constructs a ProtoElementInjector from the
// arguments computed by the ProtoElementInjectorBuilder
type ProtoElementInjectorFactory func(
	parent *injector.ProtoElementInjector,
	index int,
	bindings []*core.DirectiveMetadata,
	firstBindingIsComponent bool,
) *injector.ProtoElementInjector

// ProtoElementInjectorBuilder creates the ProtoElementInjector of every element
// that has directives and links it to the injector of its closest ancestor.
//
// Elements without directives create no injector and inherit the one of their
// parent. A view root never chains into the injectors of the enclosing view,
// so a view root without directives inherits no injector at all.
type ProtoElementInjectorBuilder struct {
	factory ProtoElementInjectorFactory
}

// ProtoElementInjectorBuilderOption configures a ProtoElementInjectorBuilder
type ProtoElementInjectorBuilderOption func(*ProtoElementInjectorBuilder)

// WithProtoElementInjectorFactory replaces the function used to construct injectors
func WithProtoElementInjectorFactory(factory ProtoElementInjectorFactory) ProtoElementInjectorBuilderOption {
	return func(b *ProtoElementInjectorBuilder) {
		b.factory = factory
	}
}

// NewProtoElementInjectorBuilder creates a new ProtoElementInjectorBuilder
func NewProtoElementInjectorBuilder(opts ...ProtoElementInjectorBuilderOption) *ProtoElementInjectorBuilder {
	b := &ProtoElementInjectorBuilder{
		factory: injector.NewProtoElementInjector,
	}
	for _, opt := range opts {
		opt(b)
	}
	if b.factory == nil {
		panic("ProtoElementInjectorBuilder requires a factory")
	}
	return b
}

// Process implements CompileStep
func (b *ProtoElementInjectorBuilder) Process(parent *CompileElement, current *CompileElement, control *CompileControl) error {
	if current == nil {
		panic("ProtoElementInjectorBuilder: current element is nil")
	}
	if current.InheritedProtoView == nil {
		panic("ProtoElementInjectorBuilder: element has no inherited ProtoView")
	}
	if parent != nil && !parent.injectorResolved {
		panic("ProtoElementInjectorBuilder: element visited before its parent")
	}

	// The binder for this element is registered after this step, so the
	// current count is the slot it will occupy.
	index := current.InheritedProtoView.NextBinderIndex()

	parentInjector := parentProtoElementInjector(parent, current)
	if len(current.Directives) == 0 {
		current.OwnProtoElementInjector = nil
		current.InheritedProtoElementInjector = parentInjector
		current.injectorResolved = true
		return nil
	}

	bindings, firstBindingIsComponent, err := orderBindings(current.Directives)
	if err != nil {
		return err
	}

	pei := b.factory(parentInjector, index, bindings, firstBindingIsComponent)
	if pei == nil {
		panic("ProtoElementInjectorFactory returned nil")
	}

	current.OwnProtoElementInjector = pei
	current.InheritedProtoElementInjector = pei
	current.injectorResolved = true
	return nil
}

// parentProtoElementInjector returns the injector current chains into.
// A view root starts a fresh scope for its whole subtree, with or without
// directives of its own.
func parentProtoElementInjector(parent *CompileElement, current *CompileElement) *injector.ProtoElementInjector {
	if parent == nil || current.IsViewRoot {
		return nil
	}
	return parent.InheritedProtoElementInjector
}

// orderBindings moves the component directive, if any, to the front and keeps
// the attachment order of all other directives
func orderBindings(directives []*core.DirectiveMetadata) ([]*core.DirectiveMetadata, bool, error) {
	var component *core.DirectiveMetadata
	others := make([]*core.DirectiveMetadata, 0, len(directives))
	for _, directive := range directives {
		if directive == nil {
			panic("ProtoElementInjectorBuilder: nil directive attached to element")
		}
		if !directive.IsComponent() {
			others = append(others, directive)
			continue
		}
		if component != nil {
			return nil, false, fmt.Errorf("%w: found %s and %s", ErrMultipleComponents, component.Type, directive.Type)
		}
		component = directive
	}

	if component == nil {
		return others, false, nil
	}
	bindings := make([]*core.DirectiveMetadata, 0, len(directives))
	bindings = append(bindings, component)
	bindings = append(bindings, others...)
	return bindings, true, nil
}
