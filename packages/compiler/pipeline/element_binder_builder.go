package pipeline

import (
	"fmt"
)

// ElementBinderBuilder registers an element binder for every element that
// created its own ProtoElementInjector. It must run after the
// ProtoElementInjectorBuilder so that binder slots and injector indices agree.
type ElementBinderBuilder struct{}

// NewElementBinderBuilder creates a new ElementBinderBuilder
func NewElementBinderBuilder() *ElementBinderBuilder {
	return &ElementBinderBuilder{}
}

// Process implements CompileStep
func (b *ElementBinderBuilder) Process(parent *CompileElement, current *CompileElement, control *CompileControl) error {
	pei := current.OwnProtoElementInjector
	if pei == nil {
		return nil
	}
	binder := current.InheritedProtoView.BindElement(pei)
	if binder.Index != pei.Index() {
		panic(fmt.Sprintf("element binder slot %d does not match ProtoElementInjector index %d", binder.Index, pei.Index()))
	}
	return nil
}
