package pipeline

// CompileStep is one pass of the compile pipeline. Process is called once per
// element in document pre-order, so parent has always been processed by all
// steps before current.
type CompileStep interface {
	Process(parent *CompileElement, current *CompileElement, control *CompileControl) error
}

// CompileStepFunc adapts a function to a CompileStep
type CompileStepFunc func(parent *CompileElement, current *CompileElement, control *CompileControl) error

// Process calls f
func (f CompileStepFunc) Process(parent *CompileElement, current *CompileElement, control *CompileControl) error {
	return f(parent, current, control)
}
