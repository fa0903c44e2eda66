package core

import "testing"

func TestDirectiveKind(t *testing.T) {
	t.Run("should parse every kind it prints", func(t *testing.T) {
		for _, kind := range []DirectiveKind{DirectiveKindDecorator, DirectiveKindComponent, DirectiveKindTemplate} {
			parsed, ok := ParseDirectiveKind(kind.String())
			if !ok || parsed != kind {
				t.Errorf("Expected %s, got %s (%v)", kind, parsed, ok)
			}
		}
	})

	t.Run("should reject unknown kinds", func(t *testing.T) {
		if _, ok := ParseDirectiveKind("pipe"); ok {
			t.Error("Expected pipe to be rejected")
		}
		if got := DirectiveKind(7).String(); got != "DirectiveKind(7)" {
			t.Errorf("Expected 'DirectiveKind(7)', got '%s'", got)
		}
	})

	t.Run("should only flag components", func(t *testing.T) {
		if !(&DirectiveMetadata{Kind: DirectiveKindComponent}).IsComponent() {
			t.Error("Expected a component")
		}
		if (&DirectiveMetadata{Kind: DirectiveKindTemplate}).IsComponent() {
			t.Error("Expected a template directive not to be a component")
		}
	})
}
