package pipeline_test

import (
	"errors"
	"testing"

	"ngc-di/packages/compiler/dom"
	"ngc-di/packages/compiler/pipeline"

	"github.com/google/go-cmp/cmp"
	"github.com/sirupsen/logrus"
	logtest "github.com/sirupsen/logrus/hooks/test"
)

func describeAll(elements []*pipeline.CompileElement) []string {
	result := []string{}
	for _, el := range elements {
		result = append(result, el.Describe())
	}
	return result
}

func TestCompilePipeline(t *testing.T) {
	t.Run("should walk the elements in pre-order", func(t *testing.T) {
		visited := []string{}
		step := pipeline.CompileStepFunc(func(parent, current *pipeline.CompileElement, control *pipeline.CompileControl) error {
			visited = append(visited, current.Element.Data)
			return nil
		})
		el, _ := dom.ParseElement("<div><span><a></a>text<b></b></span><p></p></div>")
		results, err := pipeline.NewCompilePipeline([]pipeline.CompileStep{step}, nil).Process(el)
		if err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}
		want := []string{"div", "span", "a", "b", "p"}
		if diff := cmp.Diff(want, visited); diff != "" {
			t.Errorf("Visit order mismatch (-want +got):\n%s", diff)
		}
		if diff := cmp.Diff([]string{"<div>", "<span>", "<a>", "<b>", "<p>"}, describeAll(results)); diff != "" {
			t.Errorf("Results mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("should pass the processed parent and the depth", func(t *testing.T) {
		parents := map[string]string{}
		step := pipeline.CompileStepFunc(func(parent, current *pipeline.CompileElement, control *pipeline.CompileControl) error {
			if parent == nil {
				parents[current.Element.Data] = ""
				return nil
			}
			parents[current.Element.Data] = parent.Element.Data
			return nil
		})
		el, _ := dom.ParseElement("<div><span><a></a></span></div>")
		results, err := pipeline.NewCompilePipeline([]pipeline.CompileStep{step}, nil).Process(el)
		if err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}
		want := map[string]string{"div": "", "span": "div", "a": "span"}
		if diff := cmp.Diff(want, parents); diff != "" {
			t.Errorf("Parents mismatch (-want +got):\n%s", diff)
		}
		for i, depth := range []int{0, 1, 2} {
			if results[i].Depth != depth {
				t.Errorf("Expected depth %d for %s, got %d", depth, results[i].Describe(), results[i].Depth)
			}
		}
	})

	t.Run("should run all steps on an element before its children", func(t *testing.T) {
		calls := []string{}
		stepFor := func(name string) pipeline.CompileStep {
			return pipeline.CompileStepFunc(func(parent, current *pipeline.CompileElement, control *pipeline.CompileControl) error {
				calls = append(calls, name+":"+current.Element.Data)
				return nil
			})
		}
		el, _ := dom.ParseElement("<div><span></span></div>")
		_, err := pipeline.NewCompilePipeline([]pipeline.CompileStep{stepFor("1"), stepFor("2")}, nil).Process(el)
		if err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}
		want := []string{"1:div", "2:div", "1:span", "2:span"}
		if diff := cmp.Diff(want, calls); diff != "" {
			t.Errorf("Call order mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("should not descend into ignored children", func(t *testing.T) {
		lastStepCalls := 0
		ignore := pipeline.CompileStepFunc(func(parent, current *pipeline.CompileElement, control *pipeline.CompileControl) error {
			if dom.HasAttribute(current.Element, "ignore-children") {
				control.IgnoreChildren()
			}
			return nil
		})
		count := pipeline.CompileStepFunc(func(parent, current *pipeline.CompileElement, control *pipeline.CompileControl) error {
			lastStepCalls++
			return nil
		})
		el, _ := dom.ParseElement("<div><span ignore-children><a></a></span><p></p></div>")
		results, err := pipeline.NewCompilePipeline([]pipeline.CompileStep{ignore, count}, nil).Process(el)
		if err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}
		if diff := cmp.Diff([]string{"<div>", "<span ignore-children>", "<p>"}, describeAll(results)); diff != "" {
			t.Errorf("Results mismatch (-want +got):\n%s", diff)
		}
		if lastStepCalls != 3 {
			t.Errorf("Expected the last step to run 3 times, got %d", lastStepCalls)
		}
	})

	t.Run("should abort on the first step error", func(t *testing.T) {
		errBoom := errors.New("boom")
		after := 0
		step := pipeline.CompileStepFunc(func(parent, current *pipeline.CompileElement, control *pipeline.CompileControl) error {
			if current.Element.Data == "span" {
				return errBoom
			}
			after++
			return nil
		})
		el, _ := dom.ParseElement("<div><span></span><p></p></div>")
		results, err := pipeline.NewCompilePipeline([]pipeline.CompileStep{step}, nil).Process(el)
		if !errors.Is(err, errBoom) {
			t.Fatalf("Expected errBoom, got %v", err)
		}
		if results != nil {
			t.Errorf("Expected no results, got %v", results)
		}
		if after != 1 {
			t.Errorf("Expected only the div to be processed, got %d elements", after)
		}
	})

	t.Run("should turn step panics into compile errors", func(t *testing.T) {
		step := pipeline.CompileStepFunc(func(parent, current *pipeline.CompileElement, control *pipeline.CompileControl) error {
			panic("broken invariant")
		})
		el, _ := dom.ParseElement(`<div id="x"></div>`)
		_, err := pipeline.NewCompilePipeline([]pipeline.CompileStep{step}, nil).Process(el)
		var compileErr *pipeline.CompileError
		if !errors.As(err, &compileErr) {
			t.Fatalf("Expected a CompileError, got %v", err)
		}
		if !compileErr.Panicked {
			t.Error("Expected Panicked to be set")
		}
		if compileErr.Element != `<div id="x">` {
			t.Errorf("Expected element '<div id=\"x\">', got '%s'", compileErr.Element)
		}
		if compileErr.Err.Error() != "broken invariant" {
			t.Errorf("Expected 'broken invariant', got '%s'", compileErr.Err.Error())
		}
	})

	t.Run("should reject a non element root", func(t *testing.T) {
		_, err := pipeline.NewCompilePipeline(nil, nil).Process(nil)
		if err == nil {
			t.Error("Expected an error")
		}
	})

	t.Run("should log every visited element at debug level", func(t *testing.T) {
		logger, hook := logtest.NewNullLogger()
		logger.SetLevel(logrus.DebugLevel)
		el, _ := dom.ParseElement("<div><span></span></div>")
		_, err := pipeline.NewCompilePipeline(nil, logger).Process(el)
		if err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}
		entries := hook.AllEntries()
		if len(entries) != 2 {
			t.Fatalf("Expected 2 log entries, got %d", len(entries))
		}
		if entries[1].Data["element"] != "<span>" {
			t.Errorf("Expected element field '<span>', got '%v'", entries[1].Data["element"])
		}
		if entries[1].Data["depth"] != 1 {
			t.Errorf("Expected depth field 1, got '%v'", entries[1].Data["depth"])
		}
	})
}
