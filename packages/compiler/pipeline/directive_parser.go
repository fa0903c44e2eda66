package pipeline

import (
	"fmt"

	"ngc-di/packages/compiler/core"

	"github.com/andybalholm/cascadia"
)

type selectableDirective struct {
	selector  cascadia.Selector
	directive *core.DirectiveMetadata
}

// DirectiveParser attaches the directives whose selector matches an element.
// Matching directives are attached in the order they were given.
type DirectiveParser struct {
	directives []selectableDirective
}

// NewDirectiveParser creates a new DirectiveParser for the given directives
func NewDirectiveParser(directives []*core.DirectiveMetadata) (*DirectiveParser, error) {
	selectables := make([]selectableDirective, 0, len(directives))
	for _, directive := range directives {
		selector, err := cascadia.Compile(directive.Selector)
		if err != nil {
			return nil, fmt.Errorf("invalid selector %q of directive %s: %w", directive.Selector, directive.Type, err)
		}
		selectables = append(selectables, selectableDirective{
			selector:  selector,
			directive: directive,
		})
	}
	return &DirectiveParser{directives: selectables}, nil
}

// Process implements CompileStep
func (p *DirectiveParser) Process(parent *CompileElement, current *CompileElement, control *CompileControl) error {
	for _, selectable := range p.directives {
		if selectable.selector.Match(current.Element) {
			current.AddDirective(selectable.directive)
		}
	}
	return nil
}
