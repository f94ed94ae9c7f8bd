package template

import (
	"errors"
	"testing"
	"testing/fstest"

	"github.com/scarff-dev/scarff/internal/target"
)

func validTemplateFS() fstest.MapFS {
	return fstest.MapFS{
		"go-cli/manifest.yaml": &fstest.MapFile{Data: []byte(`
name: go-cli
description: test template
target:
  language: go
  type: cli
  architecture: layered
  framework: none
files:
  - path: main.go
    source: main.go.tmpl
`)},
		"go-cli/main.go.tmpl": &fstest.MapFile{Data: []byte("package main // {{.ProjectName}}\n")},
	}
}

func TestNewStore(t *testing.T) {
	s, err := NewStore(validTemplateFS())
	if err != nil {
		t.Fatalf("NewStore: %v", err)
	}
	if s.Len() != 1 {
		t.Fatalf("Len() = %d, want 1", s.Len())
	}

	tmpl, err := s.Lookup(target.Resolved{
		Language: target.LanguageGo, Type: target.TypeCLI,
		Architecture: target.ArchLayered, Framework: target.FrameworkNone,
	})
	if err != nil {
		t.Fatalf("Lookup: %v", err)
	}
	if tmpl.Name != "go-cli" {
		t.Errorf("Name = %q", tmpl.Name)
	}
	if len(tmpl.Files) != 1 || !tmpl.Files[0].Parameterized {
		t.Errorf("Files = %+v, want one parameterized file", tmpl.Files)
	}
}

func TestStoreLookupMiss(t *testing.T) {
	s, err := NewStore(validTemplateFS())
	if err != nil {
		t.Fatalf("NewStore: %v", err)
	}

	_, err = s.Lookup(target.Resolved{
		Language: target.LanguageRust, Type: target.TypeCLI,
		Architecture: target.ArchLayered, Framework: target.FrameworkNone,
	})
	if !errors.Is(err, ErrTemplateNotFound) {
		t.Fatalf("err = %v, want ErrTemplateNotFound", err)
	}

	var nf *NotFoundError
	if !errors.As(err, &nf) {
		t.Fatalf("err = %T, want *NotFoundError", err)
	}
	if len(nf.Available) != 1 {
		t.Errorf("Available = %v, want the one shipped tuple", nf.Available)
	}
}

func TestStoreIntegrity(t *testing.T) {
	t.Run("duplicate tuple", func(t *testing.T) {
		fsys := validTemplateFS()
		fsys["go-cli-copy/manifest.yaml"] = fsys["go-cli/manifest.yaml"]
		fsys["go-cli-copy/main.go.tmpl"] = fsys["go-cli/main.go.tmpl"]

		_, err := NewStore(fsys)
		if !errors.Is(err, ErrStoreIntegrity) {
			t.Fatalf("err = %v, want ErrStoreIntegrity", err)
		}
	})

	t.Run("missing source", func(t *testing.T) {
		fsys := validTemplateFS()
		delete(fsys, "go-cli/main.go.tmpl")

		_, err := NewStore(fsys)
		if !errors.Is(err, ErrStoreIntegrity) {
			t.Fatalf("err = %v, want ErrStoreIntegrity", err)
		}
	})

	t.Run("missing manifest", func(t *testing.T) {
		fsys := fstest.MapFS{
			"broken/main.go.tmpl": &fstest.MapFile{Data: []byte("package main\n")},
		}
		_, err := NewStore(fsys)
		if !errors.Is(err, ErrStoreIntegrity) {
			t.Fatalf("err = %v, want ErrStoreIntegrity", err)
		}
	})

	t.Run("bad tuple value", func(t *testing.T) {
		fsys := fstest.MapFS{
			"broken/manifest.yaml": &fstest.MapFile{Data: []byte(`
name: broken
target:
  language: cobol
  type: cli
  architecture: layered
  framework: none
files:
  - path: main
    source: main
`)},
			"broken/main": &fstest.MapFile{Data: []byte("x\n")},
		}
		_, err := NewStore(fsys)
		if !errors.Is(err, ErrStoreIntegrity) {
			t.Fatalf("err = %v, want ErrStoreIntegrity", err)
		}
	})
}

// The embedded catalog must load cleanly and cover every tuple the
// binary advertises.
func TestEmbeddedStore(t *testing.T) {
	s, err := Embedded()
	if err != nil {
		t.Fatalf("Embedded: %v", err)
	}
	if s.Len() == 0 {
		t.Fatal("embedded store is empty")
	}

	matrix := target.NewMatrix()
	for _, tmpl := range s.All() {
		entry, ok := matrix.Lookup(tmpl.Target.Language, tmpl.Target.Type)
		if !ok {
			t.Errorf("template %q targets unsupported pair %s/%s",
				tmpl.Name, tmpl.Target.Language, tmpl.Target.Type)
			continue
		}
		if !entry.AllowsArchitecture(tmpl.Target.Architecture) {
			t.Errorf("template %q uses disallowed architecture %s", tmpl.Name, tmpl.Target.Architecture)
		}
		if !entry.AllowsFramework(tmpl.Target.Framework) {
			t.Errorf("template %q uses disallowed framework %s", tmpl.Name, tmpl.Target.Framework)
		}
	}
}

// Every default resolution for a language the binary supports must hit
// a shipped template: a bare `scarff new foo --language X` never 404s.
func TestEmbeddedStoreCoversLanguageDefaults(t *testing.T) {
	s, err := Embedded()
	if err != nil {
		t.Fatalf("Embedded: %v", err)
	}
	resolver := target.NewResolver(target.NewMatrix())

	for _, lang := range []target.Language{
		target.LanguageRust, target.LanguagePython, target.LanguageTypeScript, target.LanguageGo,
	} {
		res, err := resolver.Resolve(target.Raw{Language: lang})
		if err != nil {
			t.Errorf("Resolve(%s): %v", lang, err)
			continue
		}
		if _, err := s.Lookup(res.Target); err != nil {
			t.Errorf("no template for default %s resolution %s: %v", lang, res.Target, err)
		}
	}
}
