package pipeline

// CompileControl lets a step influence how the pipeline continues with the
// element it is currently processing
type CompileControl struct {
	ignoreChildren bool
}

func newCompileControl() *CompileControl {
	return &CompileControl{}
}

// IgnoreChildren stops the pipeline from descending into the current element.
// The remaining steps still process the current element.
func (c *CompileControl) IgnoreChildren() {
	c.ignoreChildren = true
}

// ChildrenIgnored reports whether a step called IgnoreChildren
func (c *CompileControl) ChildrenIgnored() bool {
	return c.ignoreChildren
}
