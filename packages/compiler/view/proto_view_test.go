package view_test

import (
	"testing"

	"ngc-di/packages/compiler/core"
	"ngc-di/packages/compiler/injector"
	"ngc-di/packages/compiler/view"

	"github.com/google/go-cmp/cmp"
)

func TestProtoView(t *testing.T) {
	directives := []*core.DirectiveMetadata{{Type: "Deco", Kind: core.DirectiveKindDecorator, Selector: "[deco]"}}

	t.Run("should hand out binder indices in registration order", func(t *testing.T) {
		pv := view.NewProtoView(nil)
		var source view.BinderIndexSource = pv
		for i := 0; i < 3; i++ {
			if source.NextBinderIndex() != i {
				t.Fatalf("Expected next index %d, got %d", i, source.NextBinderIndex())
			}
			pei := injector.NewProtoElementInjector(nil, i, directives, false)
			binder := pv.BindElement(pei)
			if binder.Index != i || binder.ProtoElementInjector != pei {
				t.Errorf("Expected binder %d for %v, got %d for %v", i, pei, binder.Index, binder.ProtoElementInjector)
			}
		}
		if pv.String() != "ProtoView(binders=3, nested=0)" {
			t.Errorf("Unexpected description '%s'", pv.String())
		}
	})

	t.Run("should walk nested views in pre-order", func(t *testing.T) {
		host := view.NewProtoView(nil)
		first := view.NewProtoView(nil)
		second := view.NewProtoView(nil)
		inner := view.NewProtoView(nil)
		host.AddNestedProtoView(first)
		first.AddNestedProtoView(inner)
		host.AddNestedProtoView(second)

		names := map[*view.ProtoView]string{host: "host", first: "first", second: "second", inner: "inner"}
		visited := []string{}
		host.Walk(func(pv *view.ProtoView) {
			visited = append(visited, names[pv])
		})
		if diff := cmp.Diff([]string{"host", "first", "inner", "second"}, visited); diff != "" {
			t.Errorf("Walk order mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("should not nest a view in itself", func(t *testing.T) {
		pv := view.NewProtoView(nil)
		defer func() {
			if recover() == nil {
				t.Error("Expected a panic")
			}
		}()
		pv.AddNestedProtoView(pv)
	})
}
