package compiler

import (
	"fmt"
	"io"
	"strings"

	"ngc-di/packages/compiler/injector"
	"ngc-di/packages/compiler/view"

	"gopkg.in/yaml.v3"
)

// InjectorReport describes one ProtoElementInjector
type InjectorReport struct {
	View                    int      `yaml:"view"`
	Index                   int      `yaml:"index"`
	Parent                  *int     `yaml:"parent"`
	Bindings                []string `yaml:"bindings"`
	FirstBindingIsComponent bool     `yaml:"firstBindingIsComponent"`
}

// ElementReport describes the injector state of one compiled element
type ElementReport struct {
	Element    string          `yaml:"element"`
	Depth      int             `yaml:"depth"`
	View       int             `yaml:"view"`
	ViewRoot   bool            `yaml:"viewRoot,omitempty"`
	Injector   *InjectorReport `yaml:"injector,omitempty"`
	Inherited  *int            `yaml:"inherited"`
	Directives []string        `yaml:"directives,omitempty"`
}

// Report describes every compiled element in document order.
// Views are numbered in pre-order starting with the host view at 0.
func (r *Result) Report() []ElementReport {
	viewIDs := map[*view.ProtoView]int{}
	r.ProtoView.Walk(func(pv *view.ProtoView) {
		viewIDs[pv] = len(viewIDs)
	})

	reports := make([]ElementReport, 0, len(r.Elements))
	for _, el := range r.Elements {
		report := ElementReport{
			Element:   el.Describe(),
			Depth:     el.Depth,
			View:      viewIDs[el.InheritedProtoView],
			ViewRoot:  el.IsViewRoot,
			Inherited: injectorIndex(el.InheritedProtoElementInjector),
		}
		for _, d := range el.Directives {
			report.Directives = append(report.Directives, d.Type)
		}
		if pei := el.OwnProtoElementInjector; pei != nil {
			report.Injector = &InjectorReport{
				View:                    viewIDs[el.InheritedProtoView],
				Index:                   pei.Index(),
				Parent:                  injectorIndex(pei.Parent()),
				Bindings:                pei.BindingTypes(),
				FirstBindingIsComponent: pei.FirstBindingIsComponent(),
			}
		}
		reports = append(reports, report)
	}
	return reports
}

func injectorIndex(pei *injector.ProtoElementInjector) *int {
	if pei == nil {
		return nil
	}
	index := pei.Index()
	return &index
}

// WriteYAML writes the report as a YAML sequence
func (r *Result) WriteYAML(w io.Writer) error {
	encoder := yaml.NewEncoder(w)
	encoder.SetIndent(2)
	if err := encoder.Encode(r.Report()); err != nil {
		return err
	}
	return encoder.Close()
}

// WriteText writes the report as an indented element tree
func (r *Result) WriteText(w io.Writer) error {
	for _, report := range r.Report() {
		line := strings.Repeat("  ", report.Depth) + report.Element
		if report.Injector != nil {
			parent := "-"
			if report.Injector.Parent != nil {
				parent = fmt.Sprintf("%d", *report.Injector.Parent)
			}
			component := ""
			if report.Injector.FirstBindingIsComponent {
				component = " component"
			}
			line += fmt.Sprintf(" injector[view=%d index=%d parent=%s%s] %s",
				report.Injector.View, report.Injector.Index, parent, component,
				strings.Join(report.Injector.Bindings, ","))
		} else if report.Inherited != nil {
			line += fmt.Sprintf(" inherits[%d]", *report.Inherited)
		}
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}
