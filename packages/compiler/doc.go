// Package compiler compiles templates into ProtoViews whose elements carry
// ProtoElementInjectors, the compile time description of element injectors.
//
// Main sub-packages:
//
//   - core: directive metadata (DirectiveMetadata, DirectiveKind)
//   - dom: template markup parsing and element helpers
//   - directive: annotation reader and directive registry
//   - injector: ProtoElementInjector
//   - view: ProtoView and element binders
//   - pipeline: the compile pipeline and its steps
//   - config: compiler and command line configuration
//
// The default pipeline runs, for every element in document order:
//
//	ViewSplitter -> DirectiveParser -> ProtoViewBuilder ->
//	ProtoElementInjectorBuilder -> ElementBinderBuilder
package compiler
