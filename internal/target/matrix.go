package target

// The compatibility matrix is data, not code: adding a language or
// framework means adding entries here, never touching resolver logic.
// The matrix is constructed once at startup from these definitions and
// never mutated afterward.

// Entry describes one legal (language, type) pair: which architectures
// and frameworks it admits, the default for each omitted axis, and the
// derived values templates may reference.
type Entry struct {
	Language Language
	Type     ProjectType

	// Architectures allowed for this pair. A resolved target's
	// architecture is always a member.
	Architectures       []Architecture
	DefaultArchitecture Architecture

	// Frameworks allowed for this pair. FrameworkNone appears whenever a
	// frameworkless project is legal.
	Frameworks       []Framework
	DefaultFramework Framework

	// DefaultPort is the conventional dev-server port, or 0 where no
	// server is involved. Exposed to templates via the render context.
	DefaultPort int
}

// languageDef carries the per-language default policy used when the
// caller omits the project type.
type languageDef struct {
	Language    Language
	DefaultType ProjectType
}

var languageDefs = []languageDef{
	{LanguageRust, TypeCLI},
	{LanguagePython, TypeWebBackend},
	{LanguageTypeScript, TypeWebFrontend},
	{LanguageGo, TypeCLI},
}

var entries = []Entry{
	// Rust
	{
		Language: LanguageRust, Type: TypeCLI,
		Architectures: []Architecture{ArchLayered, ArchClean}, DefaultArchitecture: ArchLayered,
		Frameworks: []Framework{FrameworkNone}, DefaultFramework: FrameworkNone,
	},
	{
		Language: LanguageRust, Type: TypeWebBackend,
		Architectures: []Architecture{ArchLayered, ArchClean}, DefaultArchitecture: ArchLayered,
		Frameworks:       []Framework{FrameworkAxum, FrameworkActix, FrameworkRocket},
		DefaultFramework: FrameworkAxum,
		DefaultPort:      3000,
	},
	{
		Language: LanguageRust, Type: TypeLibrary,
		Architectures: []Architecture{ArchLayered, ArchClean}, DefaultArchitecture: ArchLayered,
		Frameworks: []Framework{FrameworkNone}, DefaultFramework: FrameworkNone,
	},
	{
		Language: LanguageRust, Type: TypeWorker,
		Architectures: []Architecture{ArchLayered, ArchClean}, DefaultArchitecture: ArchLayered,
		Frameworks: []Framework{FrameworkNone}, DefaultFramework: FrameworkNone,
	},

	// Python
	{
		Language: LanguagePython, Type: TypeCLI,
		Architectures: []Architecture{ArchLayered, ArchClean}, DefaultArchitecture: ArchLayered,
		Frameworks: []Framework{FrameworkNone}, DefaultFramework: FrameworkNone,
	},
	{
		Language: LanguagePython, Type: TypeWebBackend,
		Architectures: []Architecture{ArchLayered, ArchClean}, DefaultArchitecture: ArchLayered,
		Frameworks:       []Framework{FrameworkFastAPI, FrameworkDjango, FrameworkFlask},
		DefaultFramework: FrameworkFastAPI,
		DefaultPort:      8000,
	},
	{
		Language: LanguagePython, Type: TypeFullstack,
		Architectures: []Architecture{ArchMVC, ArchClean}, DefaultArchitecture: ArchMVC,
		Frameworks:       []Framework{FrameworkDjango},
		DefaultFramework: FrameworkDjango,
		DefaultPort:      8000,
	},
	{
		Language: LanguagePython, Type: TypeWorker,
		Architectures: []Architecture{ArchLayered, ArchClean}, DefaultArchitecture: ArchLayered,
		Frameworks:       []Framework{FrameworkNone, FrameworkFastAPI, FrameworkFlask},
		DefaultFramework: FrameworkNone,
	},

	// TypeScript
	{
		Language: LanguageTypeScript, Type: TypeWebFrontend,
		Architectures:       []Architecture{ArchFeatureModular, ArchLayered},
		DefaultArchitecture: ArchFeatureModular,
		Frameworks:          []Framework{FrameworkReact, FrameworkVue, FrameworkSvelte},
		DefaultFramework:    FrameworkReact,
		DefaultPort:         5173,
	},
	{
		Language: LanguageTypeScript, Type: TypeWebBackend,
		Architectures:       []Architecture{ArchFeatureModular, ArchLayered},
		DefaultArchitecture: ArchFeatureModular,
		Frameworks:          []Framework{FrameworkExpress, FrameworkNestJS},
		DefaultFramework:    FrameworkExpress,
		DefaultPort:         3000,
	},
	{
		Language: LanguageTypeScript, Type: TypeFullstack,
		Architectures:       []Architecture{ArchFeatureModular},
		DefaultArchitecture: ArchFeatureModular,
		Frameworks:          []Framework{FrameworkNextJS, FrameworkSvelte},
		DefaultFramework:    FrameworkNextJS,
		DefaultPort:         3000,
	},
	{
		Language: LanguageTypeScript, Type: TypeWorker,
		Architectures:       []Architecture{ArchLayered, ArchFeatureModular},
		DefaultArchitecture: ArchLayered,
		Frameworks:          []Framework{FrameworkNone, FrameworkExpress},
		DefaultFramework:    FrameworkNone,
	},

	// Go
	{
		Language: LanguageGo, Type: TypeCLI,
		Architectures: []Architecture{ArchLayered, ArchClean}, DefaultArchitecture: ArchLayered,
		Frameworks: []Framework{FrameworkNone}, DefaultFramework: FrameworkNone,
	},
	{
		Language: LanguageGo, Type: TypeWebBackend,
		Architectures: []Architecture{ArchLayered, ArchClean}, DefaultArchitecture: ArchLayered,
		Frameworks:       []Framework{FrameworkGin, FrameworkEcho, FrameworkNone},
		DefaultFramework: FrameworkGin,
		DefaultPort:      8080,
	},
	{
		Language: LanguageGo, Type: TypeWorker,
		Architectures: []Architecture{ArchLayered, ArchClean}, DefaultArchitecture: ArchLayered,
		Frameworks: []Framework{FrameworkNone}, DefaultFramework: FrameworkNone,
	},
}

// Matrix is the process-wide compatibility table. Read-only after
// construction; safe for concurrent use.
type Matrix struct {
	byPair      map[[2]string]*Entry
	defaultType map[Language]ProjectType
}

// NewMatrix builds the matrix from the embedded definitions.
func NewMatrix() *Matrix {
	m := &Matrix{
		byPair:      make(map[[2]string]*Entry, len(entries)),
		defaultType: make(map[Language]ProjectType, len(languageDefs)),
	}
	for i := range entries {
		e := &entries[i]
		m.byPair[[2]string{string(e.Language), string(e.Type)}] = e
	}
	for _, d := range languageDefs {
		m.defaultType[d.Language] = d.DefaultType
	}
	return m
}

// Lookup returns the entry for a (language, type) pair, or false when the
// combination is not supported.
func (m *Matrix) Lookup(lang Language, typ ProjectType) (*Entry, bool) {
	e, ok := m.byPair[[2]string{string(lang), string(typ)}]
	return e, ok
}

// DefaultType returns the project type to infer when the caller names a
// language but no type.
func (m *Matrix) DefaultType(lang Language) (ProjectType, bool) {
	t, ok := m.defaultType[lang]
	return t, ok
}

// SupportedTypes returns the project types a language supports, in the
// matrix's declaration order.
func (m *Matrix) SupportedTypes(lang Language) []ProjectType {
	var out []ProjectType
	for i := range entries {
		if entries[i].Language == lang {
			out = append(out, entries[i].Type)
		}
	}
	return out
}

// AllowsArchitecture reports whether the entry admits the architecture.
func (e *Entry) AllowsArchitecture(a Architecture) bool {
	for _, allowed := range e.Architectures {
		if allowed == a {
			return true
		}
	}
	return false
}

// AllowsFramework reports whether the entry admits the framework.
func (e *Entry) AllowsFramework(f Framework) bool {
	for _, allowed := range e.Frameworks {
		if allowed == f {
			return true
		}
	}
	return false
}
