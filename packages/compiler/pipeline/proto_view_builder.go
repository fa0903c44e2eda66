package pipeline

import (
	"ngc-di/packages/compiler/view"
)

// ProtoViewBuilder assigns every element the ProtoView it belongs to.
// View roots start a new ProtoView nested in the view of their parent.
type ProtoViewBuilder struct{}

// NewProtoViewBuilder creates a new ProtoViewBuilder
func NewProtoViewBuilder() *ProtoViewBuilder {
	return &ProtoViewBuilder{}
}

// Process implements CompileStep
func (b *ProtoViewBuilder) Process(parent *CompileElement, current *CompileElement, control *CompileControl) error {
	if !current.IsViewRoot && parent != nil {
		if parent.InheritedProtoView == nil {
			panic("ProtoViewBuilder: parent element has no ProtoView")
		}
		current.InheritedProtoView = parent.InheritedProtoView
		return nil
	}

	protoView := view.NewProtoView(current.Element)
	if parent != nil && parent.InheritedProtoView != nil {
		parent.InheritedProtoView.AddNestedProtoView(protoView)
	}
	current.InheritedProtoView = protoView
	return nil
}
