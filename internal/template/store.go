package template

import (
	"embed"
	"fmt"
	"io/fs"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/scarff-dev/scarff/internal/defs"
	"github.com/scarff-dev/scarff/internal/target"
)

//go:embed all:templates
var embeddedFS embed.FS

// manifest is the on-disk metadata block each template directory carries.
type manifest struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
	Target      struct {
		Language     string `yaml:"language"`
		Type         string `yaml:"type"`
		Architecture string `yaml:"architecture"`
		Framework    string `yaml:"framework"`
	} `yaml:"target"`
	Dependencies []string `yaml:"dependencies"`
	Files        []struct {
		Path   string `yaml:"path"`
		Source string `yaml:"source"`
	} `yaml:"files"`
}

// Store is the read-only template catalog, keyed by resolved target
// tuple. It is built once per invocation, performs no I/O after
// construction, and cannot fail at lookup time beyond "not found".
type Store struct {
	byTuple map[target.Resolved]*Template
	ordered []*Template
}

// Embedded builds the store from the templates compiled into the binary.
func Embedded() (*Store, error) {
	sub, err := fs.Sub(embeddedFS, "templates")
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStoreIntegrity, err)
	}
	return NewStore(sub)
}

// NewStore loads every template directory under fsys. Each top-level
// directory must contain a manifest and all sources it declares; the
// resolved tuple of every template must be unique. Violations are
// integrity errors, fatal before any command runs.
func NewStore(fsys fs.FS) (*Store, error) {
	roots, err := fs.ReadDir(fsys, ".")
	if err != nil {
		return nil, fmt.Errorf("%w: read template root: %v", ErrStoreIntegrity, err)
	}

	s := &Store{byTuple: make(map[target.Resolved]*Template)}

	for _, root := range roots {
		if !root.IsDir() {
			continue
		}
		tmpl, err := loadTemplate(fsys, root.Name())
		if err != nil {
			return nil, err
		}
		if prev, dup := s.byTuple[tmpl.Target]; dup {
			return nil, fmt.Errorf("%w: templates %q and %q both claim %s",
				ErrStoreIntegrity, prev.Name, tmpl.Name, tmpl.Target)
		}
		s.byTuple[tmpl.Target] = tmpl
		s.ordered = append(s.ordered, tmpl)
	}

	sort.Slice(s.ordered, func(i, j int) bool {
		return s.ordered[i].Target.Slug() < s.ordered[j].Target.Slug()
	})

	return s, nil
}

// Lookup returns the template for a resolved tuple. A miss is a
// NotFoundError carrying the shipped tuples; it is distinct from an
// unsupported combination, which the matrix reports earlier.
func (s *Store) Lookup(res target.Resolved) (*Template, error) {
	tmpl, ok := s.byTuple[res]
	if !ok {
		return nil, &NotFoundError{Target: res, Available: s.Tuples()}
	}
	return tmpl, nil
}

// All returns every template ordered by tuple slug.
func (s *Store) All() []*Template {
	out := make([]*Template, len(s.ordered))
	copy(out, s.ordered)
	return out
}

// Tuples returns the shipped tuple strings, ordered.
func (s *Store) Tuples() []string {
	out := make([]string, len(s.ordered))
	for i, t := range s.ordered {
		out[i] = t.Target.String()
	}
	return out
}

// Len returns the number of shipped templates.
func (s *Store) Len() int { return len(s.ordered) }

func loadTemplate(fsys fs.FS, dir string) (*Template, error) {
	raw, err := fs.ReadFile(fsys, dir+"/"+defs.ManifestYAML)
	if err != nil {
		return nil, fmt.Errorf("%w: template %q has no %s", ErrStoreIntegrity, dir, defs.ManifestYAML)
	}

	var m manifest
	if err := yaml.Unmarshal(raw, &m); err != nil {
		return nil, fmt.Errorf("%w: template %q: %v", ErrStoreIntegrity, dir, err)
	}
	if m.Name == "" {
		return nil, fmt.Errorf("%w: template %q: missing name", ErrStoreIntegrity, dir)
	}
	if len(m.Files) == 0 {
		return nil, fmt.Errorf("%w: template %q declares no files", ErrStoreIntegrity, dir)
	}

	tuple, err := parseTuple(m)
	if err != nil {
		return nil, fmt.Errorf("%w: template %q: %v", ErrStoreIntegrity, dir, err)
	}

	tmpl := &Template{
		Target:       tuple,
		Name:         m.Name,
		Description:  m.Description,
		Dependencies: m.Dependencies,
		Files:        make([]File, 0, len(m.Files)),
	}

	for _, f := range m.Files {
		if f.Path == "" || f.Source == "" {
			return nil, fmt.Errorf("%w: template %q: file entry missing path or source",
				ErrStoreIntegrity, dir)
		}
		content, err := fs.ReadFile(fsys, dir+"/"+f.Source)
		if err != nil {
			return nil, fmt.Errorf("%w: template %q: source %q: %v",
				ErrStoreIntegrity, dir, f.Source, err)
		}
		tmpl.Files = append(tmpl.Files, File{
			Path:          f.Path,
			Source:        f.Source,
			Content:       content,
			Parameterized: strings.HasSuffix(f.Source, defs.TemplateSuffix),
		})
	}

	return tmpl, nil
}

func parseTuple(m manifest) (target.Resolved, error) {
	var zero target.Resolved

	lang, err := target.ParseLanguage(m.Target.Language)
	if err != nil {
		return zero, err
	}
	typ, err := target.ParseProjectType(m.Target.Type)
	if err != nil {
		return zero, err
	}
	arch, err := target.ParseArchitecture(m.Target.Architecture)
	if err != nil {
		return zero, err
	}
	fw, err := target.ParseFramework(m.Target.Framework)
	if err != nil {
		return zero, err
	}

	return target.Resolved{Language: lang, Type: typ, Architecture: arch, Framework: fw}, nil
}
