package pipeline

import (
	"ngc-di/packages/compiler/dom"
)

// DefaultViewRootAttribute marks an element as the root of an embedded view
const DefaultViewRootAttribute = "viewroot"

// ViewSplitter marks the elements that start a new view: the compile root,
// <template> elements and elements carrying the view root attribute
type ViewSplitter struct {
	viewRootAttribute string
}

// NewViewSplitter creates a new ViewSplitter. An empty attribute name selects
// DefaultViewRootAttribute.
func NewViewSplitter(viewRootAttribute string) *ViewSplitter {
	if viewRootAttribute == "" {
		viewRootAttribute = DefaultViewRootAttribute
	}
	return &ViewSplitter{viewRootAttribute: viewRootAttribute}
}

// Process implements CompileStep
func (s *ViewSplitter) Process(parent *CompileElement, current *CompileElement, control *CompileControl) error {
	if parent == nil || current.Element.Data == "template" || dom.HasAttribute(current.Element, s.viewRootAttribute) {
		current.IsViewRoot = true
	}
	return nil
}
