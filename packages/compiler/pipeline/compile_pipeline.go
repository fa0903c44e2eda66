package pipeline

import (
	"fmt"
	"io"

	"ngc-di/packages/compiler/dom"

	"github.com/sirupsen/logrus"
	"golang.org/x/net/html"
)

// CompilePipeline runs a list of compile steps over an element tree
type CompilePipeline struct {
	steps  []CompileStep
	logger logrus.FieldLogger
}

// NewCompilePipeline creates a new CompilePipeline. A nil logger discards output.
func NewCompilePipeline(steps []CompileStep, logger logrus.FieldLogger) *CompilePipeline {
	if logger == nil {
		discard := logrus.New()
		discard.Out = io.Discard
		logger = discard
	}
	return &CompilePipeline{
		steps:  steps,
		logger: logger,
	}
}

// Process visits root and its element descendants depth first, running every
// step on an element before moving on to its children. It returns the
// processed elements in document order. Any step failure aborts the whole run.
func (p *CompilePipeline) Process(root *html.Node) ([]*CompileElement, error) {
	if !dom.IsElement(root) {
		return nil, fmt.Errorf("compile root must be an element, got %s", dom.Describe(root))
	}
	results := []*CompileElement{}
	if err := p.process(&results, nil, NewCompileElement(root)); err != nil {
		return nil, err
	}
	return results, nil
}

func (p *CompilePipeline) process(results *[]*CompileElement, parent *CompileElement, current *CompileElement) error {
	p.logger.WithFields(logrus.Fields{
		"element": current.Describe(),
		"depth":   current.Depth,
	}).Debug("Processing element")

	control := newCompileControl()
	for _, step := range p.steps {
		if err := p.runStep(step, parent, current, control); err != nil {
			return err
		}
	}
	*results = append(*results, current)

	if control.ignoreChildren {
		return nil
	}
	for _, child := range dom.ElementChildren(current.Element) {
		childElement := NewCompileElement(child)
		childElement.Depth = current.Depth + 1
		if err := p.process(results, current, childElement); err != nil {
			return err
		}
	}
	return nil
}

func (p *CompilePipeline) runStep(step CompileStep, parent *CompileElement, current *CompileElement, control *CompileControl) (err error) {
	defer func() {
		r := recover()
		if r == nil {
			return
		}
		cause, ok := r.(error)
		if !ok {
			cause = fmt.Errorf("%v", r)
		}
		err = &CompileError{
			Element:  current.Describe(),
			Step:     stepName(step),
			Panicked: true,
			Err:      cause,
		}
	}()

	if stepErr := step.Process(parent, current, control); stepErr != nil {
		return &CompileError{
			Element: current.Describe(),
			Step:    stepName(step),
			Err:     stepErr,
		}
	}
	return nil
}

func stepName(step CompileStep) string {
	return fmt.Sprintf("%T", step)
}
