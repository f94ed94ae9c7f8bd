package target

import (
	"errors"
	"reflect"
	"testing"
)

func newResolver() *Resolver {
	return NewResolver(NewMatrix())
}

func TestResolveInference(t *testing.T) {
	t.Run("rust_cli_infers_layered_none", func(t *testing.T) {
		res, err := newResolver().Resolve(Raw{Language: LanguageRust, Type: TypeCLI})
		if err != nil {
			t.Fatalf("Resolve error: %v", err)
		}
		want := Resolved{LanguageRust, TypeCLI, ArchLayered, FrameworkNone}
		if res.Target != want {
			t.Errorf("Target = %+v, want %+v", res.Target, want)
		}
		wantInferred := []Inference{
			{Field: "architecture", Value: "layered"},
			{Field: "framework", Value: "none"},
		}
		if !reflect.DeepEqual(res.Inferred, wantInferred) {
			t.Errorf("Inferred = %v, want %v", res.Inferred, wantInferred)
		}
	})

	t.Run("language_only_infers_type_from_default_policy", func(t *testing.T) {
		res, err := newResolver().Resolve(Raw{Language: LanguagePython})
		if err != nil {
			t.Fatalf("Resolve error: %v", err)
		}
		want := Resolved{LanguagePython, TypeWebBackend, ArchLayered, FrameworkFastAPI}
		if res.Target != want {
			t.Errorf("Target = %+v, want %+v", res.Target, want)
		}
		if res.Explicit("type") {
			t.Error("type should be recorded as inferred")
		}
	})

	t.Run("typescript_defaults_to_react_frontend", func(t *testing.T) {
		res, err := newResolver().Resolve(Raw{Language: LanguageTypeScript})
		if err != nil {
			t.Fatalf("Resolve error: %v", err)
		}
		want := Resolved{LanguageTypeScript, TypeWebFrontend, ArchFeatureModular, FrameworkReact}
		if res.Target != want {
			t.Errorf("Target = %+v, want %+v", res.Target, want)
		}
	})

	t.Run("python_fullstack_infers_django_mvc", func(t *testing.T) {
		res, err := newResolver().Resolve(Raw{Language: LanguagePython, Type: TypeFullstack})
		if err != nil {
			t.Fatalf("Resolve error: %v", err)
		}
		want := Resolved{LanguagePython, TypeFullstack, ArchMVC, FrameworkDjango}
		if res.Target != want {
			t.Errorf("Target = %+v, want %+v", res.Target, want)
		}
	})

	t.Run("entry_carries_derived_values", func(t *testing.T) {
		res, err := newResolver().Resolve(Raw{Language: LanguageGo, Type: TypeWebBackend})
		if err != nil {
			t.Fatalf("Resolve error: %v", err)
		}
		if res.Entry == nil || res.Entry.DefaultPort != 8080 {
			t.Errorf("Entry.DefaultPort = %v, want 8080", res.Entry)
		}
	})
}

func TestResolveOverridePrecedence(t *testing.T) {
	t.Run("explicit_architecture_is_kept", func(t *testing.T) {
		res, err := newResolver().Resolve(Raw{
			Language: LanguagePython, Type: TypeFullstack, Architecture: ArchClean,
		})
		if err != nil {
			t.Fatalf("Resolve error: %v", err)
		}
		if res.Target.Architecture != ArchClean {
			t.Errorf("Architecture = %s, want clean (explicit must win over mvc default)",
				res.Target.Architecture)
		}
		if !res.Explicit("architecture") {
			t.Error("explicit architecture must not appear in inferred list")
		}
	})

	t.Run("explicit_framework_is_kept", func(t *testing.T) {
		res, err := newResolver().Resolve(Raw{
			Language: LanguageRust, Type: TypeWebBackend,
			Framework: FrameworkRocket, FrameworkSet: true,
		})
		if err != nil {
			t.Fatalf("Resolve error: %v", err)
		}
		if res.Target.Framework != FrameworkRocket {
			t.Errorf("Framework = %s, want rocket", res.Target.Framework)
		}
	})

	t.Run("explicit_none_framework_is_not_inferred_over", func(t *testing.T) {
		res, err := newResolver().Resolve(Raw{
			Language: LanguageGo, Type: TypeWebBackend, FrameworkSet: true,
		})
		if err != nil {
			t.Fatalf("Resolve error: %v", err)
		}
		if res.Target.Framework != FrameworkNone {
			t.Errorf("Framework = %s, want none (explicit none must not become gin)",
				res.Target.Framework)
		}
		if !res.Explicit("framework") {
			t.Error("explicit none must count as explicit")
		}
	})

	t.Run("default_language_never_overrides_explicit", func(t *testing.T) {
		r := newResolver().WithDefaultLanguage(LanguagePython)
		res, err := r.Resolve(Raw{Language: LanguageRust})
		if err != nil {
			t.Fatalf("Resolve error: %v", err)
		}
		if res.Target.Language != LanguageRust {
			t.Errorf("Language = %s, want rust", res.Target.Language)
		}
	})
}

func TestResolveErrors(t *testing.T) {
	t.Run("missing_language", func(t *testing.T) {
		_, err := newResolver().Resolve(Raw{Type: TypeCLI})
		if !errors.Is(err, ErrMissingField) {
			t.Errorf("expected ErrMissingField, got: %v", err)
		}
	})

	t.Run("configured_default_language_fills_gap", func(t *testing.T) {
		r := newResolver().WithDefaultLanguage(LanguageGo)
		res, err := r.Resolve(Raw{})
		if err != nil {
			t.Fatalf("Resolve error: %v", err)
		}
		if res.Target.Language != LanguageGo {
			t.Errorf("Language = %s, want go", res.Target.Language)
		}
		if res.Explicit("language") {
			t.Error("defaulted language must be recorded as inferred")
		}
	})

	t.Run("unsupported_combination_lists_alternatives", func(t *testing.T) {
		_, err := newResolver().Resolve(Raw{Language: LanguageRust, Type: TypeWebFrontend})
		if !errors.Is(err, ErrUnsupportedCombination) {
			t.Fatalf("expected ErrUnsupportedCombination, got: %v", err)
		}
		var uce *UnsupportedCombinationError
		if !errors.As(err, &uce) {
			t.Fatalf("expected UnsupportedCombinationError, got %T", err)
		}
		if len(uce.SupportedTypes) == 0 {
			t.Error("error must name the types the language does support")
		}
	})

	t.Run("incompatible_framework_names_value_and_legal_set", func(t *testing.T) {
		_, err := newResolver().Resolve(Raw{
			Language: LanguageRust, Type: TypeCLI,
			Framework: FrameworkReact, FrameworkSet: true,
		})
		if !errors.Is(err, ErrIncompatibleFramework) {
			t.Fatalf("expected ErrIncompatibleFramework, got: %v", err)
		}
		var ife *IncompatibleFrameworkError
		if !errors.As(err, &ife) {
			t.Fatalf("expected IncompatibleFrameworkError, got %T", err)
		}
		if ife.Framework != FrameworkReact {
			t.Errorf("error names %s, want react", ife.Framework)
		}
		if len(ife.Allowed) != 1 || ife.Allowed[0] != FrameworkNone {
			t.Errorf("Allowed = %v, want [none]", ife.Allowed)
		}
	})

	t.Run("incompatible_architecture", func(t *testing.T) {
		_, err := newResolver().Resolve(Raw{
			Language: LanguageRust, Type: TypeCLI, Architecture: ArchMVC,
		})
		if !errors.Is(err, ErrIncompatibleArchitecture) {
			t.Fatalf("expected ErrIncompatibleArchitecture, got: %v", err)
		}
		var iae *IncompatibleArchitectureError
		if !errors.As(err, &iae) {
			t.Fatalf("expected IncompatibleArchitectureError, got %T", err)
		}
		if iae.Architecture != ArchMVC {
			t.Errorf("error names %s, want mvc", iae.Architecture)
		}
	})
}

// Resolution must be deterministic: same raw target, same result, every
// time and in any order.
func TestResolveDeterminism(t *testing.T) {
	raws := []Raw{
		{Language: LanguageRust},
		{Language: LanguagePython, Type: TypeFullstack},
		{Language: LanguageTypeScript, Architecture: ArchLayered, Type: TypeWebBackend},
		{Language: LanguageGo, Type: TypeWebBackend, Framework: FrameworkEcho, FrameworkSet: true},
	}
	r := newResolver()
	for _, raw := range raws {
		first, err := r.Resolve(raw)
		if err != nil {
			t.Fatalf("Resolve(%+v) error: %v", raw, err)
		}
		for i := 0; i < 3; i++ {
			again, err := r.Resolve(raw)
			if err != nil {
				t.Fatalf("Resolve(%+v) error on repeat: %v", raw, err)
			}
			if again.Target != first.Target {
				t.Errorf("Resolve(%+v) not deterministic: %+v vs %+v", raw, again.Target, first.Target)
			}
			if !reflect.DeepEqual(again.Inferred, first.Inferred) {
				t.Errorf("Resolve(%+v) inferred list not deterministic", raw)
			}
		}
	}
}
