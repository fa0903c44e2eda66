package view

import (
	"fmt"

	"ngc-di/packages/compiler/injector"

	"golang.org/x/net/html"
)

// BinderIndexSource hands out element binder slots of a view.
// NextBinderIndex is the index the next registered element binder will get.
type BinderIndexSource interface {
	NextBinderIndex() int
}

var _ BinderIndexSource = (*ProtoView)(nil)

// ElementBinder is the runtime binder slot of one element within a view
type ElementBinder struct {
	Index                int
	ProtoElementInjector *injector.ProtoElementInjector
}

// ProtoView is the compiled, instantiation time shareable description of a view
type ProtoView struct {
	Element          *html.Node
	ElementBinders   []*ElementBinder
	NestedProtoViews []*ProtoView
}

// NewProtoView creates a new ProtoView rooted at element
func NewProtoView(element *html.Node) *ProtoView {
	return &ProtoView{
		Element:          element,
		ElementBinders:   []*ElementBinder{},
		NestedProtoViews: []*ProtoView{},
	}
}

// NextBinderIndex returns the number of element binders registered so far
func (pv *ProtoView) NextBinderIndex() int {
	return len(pv.ElementBinders)
}

// BindElement registers a new element binder for the given injector
func (pv *ProtoView) BindElement(pei *injector.ProtoElementInjector) *ElementBinder {
	binder := &ElementBinder{
		Index:                len(pv.ElementBinders),
		ProtoElementInjector: pei,
	}
	pv.ElementBinders = append(pv.ElementBinders, binder)
	return binder
}

// AddNestedProtoView records a view embedded in this one
func (pv *ProtoView) AddNestedProtoView(nested *ProtoView) {
	if nested == pv {
		panic("a ProtoView cannot be nested in itself")
	}
	pv.NestedProtoViews = append(pv.NestedProtoViews, nested)
}

// Walk calls fn for this view and every nested view in pre-order
func (pv *ProtoView) Walk(fn func(*ProtoView)) {
	fn(pv)
	for _, nested := range pv.NestedProtoViews {
		nested.Walk(fn)
	}
}

func (pv *ProtoView) String() string {
	return fmt.Sprintf("ProtoView(binders=%d, nested=%d)", len(pv.ElementBinders), len(pv.NestedProtoViews))
}
