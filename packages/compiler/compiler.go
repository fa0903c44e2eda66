package compiler

import (
	"fmt"

	"ngc-di/packages/compiler/config"
	"ngc-di/packages/compiler/directive"
	"ngc-di/packages/compiler/dom"
	"ngc-di/packages/compiler/pipeline"
	"ngc-di/packages/compiler/view"

	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"
)

// Compiler compiles templates against a directive registry
type Compiler struct {
	config   *config.CompilerConfig
	pipeline *pipeline.CompilePipeline
}

// Result is the outcome of compiling one template
type Result struct {
	// ProtoView is the host view; embedded views hang off NestedProtoViews
	ProtoView *view.ProtoView
	// Elements holds every compiled element in document order
	Elements []*pipeline.CompileElement
}

// NewCompiler creates a new compiler instance
func NewCompiler(registry *directive.Registry, opts ...config.CompilerConfigOption) (*Compiler, error) {
	cfg := config.NewCompilerConfig(opts...)

	directiveParser, err := pipeline.NewDirectiveParser(registry.Directives())
	if err != nil {
		return nil, err
	}
	builderOpts := []pipeline.ProtoElementInjectorBuilderOption{}
	if cfg.InjectorFactory != nil {
		builderOpts = append(builderOpts, pipeline.WithProtoElementInjectorFactory(cfg.InjectorFactory))
	}

	steps := []pipeline.CompileStep{
		pipeline.NewViewSplitter(cfg.ViewRootAttribute),
		directiveParser,
		pipeline.NewProtoViewBuilder(),
		pipeline.NewProtoElementInjectorBuilder(builderOpts...),
		pipeline.NewElementBinderBuilder(),
	}
	return &Compiler{
		config:   cfg,
		pipeline: pipeline.NewCompilePipeline(steps, cfg.Logger),
	}, nil
}

// Compile compiles template markup
func (c *Compiler) Compile(template string) (*Result, error) {
	root, err := dom.ParseTemplate(template)
	if err != nil {
		return nil, err
	}
	elements, err := c.pipeline.Process(root)
	if err != nil {
		return nil, err
	}

	result := &Result{
		ProtoView: elements[0].InheritedProtoView,
		Elements:  elements,
	}
	c.config.Logger.WithFields(logrus.Fields{
		"elements":  len(elements),
		"injectors": result.NumInjectors(),
	}).Debug("Compiled template")
	return result, nil
}

// CompileFile compiles the template stored at path
func (c *Compiler) CompileFile(fs afero.Fs, path string) (*Result, error) {
	content, err := afero.ReadFile(fs, path)
	if err != nil {
		return nil, fmt.Errorf("failed to read template: %w", err)
	}
	result, err := c.Compile(string(content))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return result, nil
}

// NumInjectors returns the number of ProtoElementInjectors created
func (r *Result) NumInjectors() int {
	count := 0
	for _, el := range r.Elements {
		if el.OwnProtoElementInjector != nil {
			count++
		}
	}
	return count
}
