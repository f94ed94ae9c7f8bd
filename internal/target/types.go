// Package target defines the closed vocabulary of scaffolding targets —
// language, project type, architecture, and framework — together with the
// compatibility matrix and the resolver that turns a partial target into a
// fully-specified, validated one.
//
// All four axes are closed enumerations. Unknown strings never cross into
// this package: Parse* functions are the CLI boundary's translation point
// and reject anything outside the vocabulary.
package target

import "fmt"

// Language is a supported programming language.
type Language string

const (
	LanguageRust       Language = "rust"
	LanguagePython     Language = "python"
	LanguageTypeScript Language = "typescript"
	LanguageGo         Language = "go"
)

// Languages lists every supported language in display order.
func Languages() []Language {
	return []Language{LanguageRust, LanguagePython, LanguageTypeScript, LanguageGo}
}

// ParseLanguage translates a user-supplied string into a Language.
// Common aliases (rs, py, ts, golang) are accepted.
func ParseLanguage(s string) (Language, error) {
	switch normalize(s) {
	case "rust", "rs":
		return LanguageRust, nil
	case "python", "py":
		return LanguagePython, nil
	case "typescript", "ts":
		return LanguageTypeScript, nil
	case "go", "golang":
		return LanguageGo, nil
	default:
		return "", &UnknownValueError{Axis: "language", Value: s, Legal: languageStrings()}
	}
}

// FileExtension returns the language's canonical source file extension.
func (l Language) FileExtension() string {
	switch l {
	case LanguageRust:
		return "rs"
	case LanguagePython:
		return "py"
	case LanguageTypeScript:
		return "ts"
	case LanguageGo:
		return "go"
	}
	return ""
}

// ProjectType is the kind of project to scaffold.
type ProjectType string

const (
	TypeCLI         ProjectType = "cli"
	TypeWebBackend  ProjectType = "web-backend"
	TypeWebFrontend ProjectType = "web-frontend"
	TypeFullstack   ProjectType = "fullstack"
	TypeWorker      ProjectType = "worker"
	TypeLibrary     ProjectType = "library"
)

// ParseProjectType translates a user-supplied string into a ProjectType.
func ParseProjectType(s string) (ProjectType, error) {
	switch normalize(s) {
	case "cli":
		return TypeCLI, nil
	case "web-backend", "webbackend", "backend", "api":
		return TypeWebBackend, nil
	case "web-frontend", "webfrontend", "frontend", "spa":
		return TypeWebFrontend, nil
	case "fullstack":
		return TypeFullstack, nil
	case "worker":
		return TypeWorker, nil
	case "library", "lib":
		return TypeLibrary, nil
	default:
		return "", &UnknownValueError{Axis: "type", Value: s, Legal: projectTypeStrings()}
	}
}

// Architecture is a project organisation pattern.
type Architecture string

const (
	ArchLayered        Architecture = "layered"
	ArchMVC            Architecture = "mvc"
	ArchClean          Architecture = "clean"
	ArchFeatureModular Architecture = "feature-modular"
)

// ParseArchitecture translates a user-supplied string into an Architecture.
// hexagonal and onion are accepted as aliases for clean.
func ParseArchitecture(s string) (Architecture, error) {
	switch normalize(s) {
	case "layered":
		return ArchLayered, nil
	case "mvc":
		return ArchMVC, nil
	case "clean", "hexagonal", "onion":
		return ArchClean, nil
	case "feature-modular", "featuremodular", "modular":
		return ArchFeatureModular, nil
	default:
		return "", &UnknownValueError{Axis: "architecture", Value: s, Legal: architectureStrings()}
	}
}

// Framework identifies a web framework, or FrameworkNone for projects
// that use none. "none" is a real member of the enum so that a
// ResolvedTarget is always total.
type Framework string

const (
	FrameworkNone Framework = "none"

	FrameworkAxum   Framework = "axum"
	FrameworkActix  Framework = "actix"
	FrameworkRocket Framework = "rocket"

	FrameworkFastAPI Framework = "fastapi"
	FrameworkDjango  Framework = "django"
	FrameworkFlask   Framework = "flask"

	FrameworkExpress Framework = "express"
	FrameworkNestJS  Framework = "nestjs"
	FrameworkReact   Framework = "react"
	FrameworkVue     Framework = "vue"
	FrameworkNextJS  Framework = "nextjs"
	FrameworkSvelte  Framework = "svelte"

	FrameworkGin  Framework = "gin"
	FrameworkEcho Framework = "echo"
)

// ParseFramework translates a user-supplied string into a Framework.
// The empty string and "none" both map to FrameworkNone.
func ParseFramework(s string) (Framework, error) {
	switch normalize(s) {
	case "", "none":
		return FrameworkNone, nil
	case "axum":
		return FrameworkAxum, nil
	case "actix", "actix-web":
		return FrameworkActix, nil
	case "rocket":
		return FrameworkRocket, nil
	case "fastapi":
		return FrameworkFastAPI, nil
	case "django":
		return FrameworkDjango, nil
	case "flask":
		return FrameworkFlask, nil
	case "express":
		return FrameworkExpress, nil
	case "nestjs", "nest":
		return FrameworkNestJS, nil
	case "react":
		return FrameworkReact, nil
	case "vue":
		return FrameworkVue, nil
	case "nextjs", "next":
		return FrameworkNextJS, nil
	case "svelte", "sveltekit":
		return FrameworkSvelte, nil
	case "gin":
		return FrameworkGin, nil
	case "echo":
		return FrameworkEcho, nil
	default:
		return "", &UnknownValueError{Axis: "framework", Value: s, Legal: frameworkStrings()}
	}
}

// Raw is a possibly partial target as supplied by the caller. Zero values
// mean "unset"; for Framework the caller must distinguish an explicit
// "none" via FrameworkSet.
type Raw struct {
	Language     Language
	Type         ProjectType
	Architecture Architecture
	Framework    Framework
	// FrameworkSet marks Framework as an explicit choice. Without it a
	// zero Framework is treated as "unspecified" and subject to
	// inference, while an explicit "none" must never be overridden.
	FrameworkSet bool
}

// Resolved is a total, matrix-validated target. Construct only through
// Resolve; a Resolved value is guaranteed to name a legal combination.
type Resolved struct {
	Language     Language
	Type         ProjectType
	Architecture Architecture
	Framework    Framework
}

// String renders the tuple as "rust web-backend (layered) + axum".
func (r Resolved) String() string {
	s := fmt.Sprintf("%s %s (%s)", r.Language, r.Type, r.Architecture)
	if r.Framework != FrameworkNone {
		s += " + " + string(r.Framework)
	}
	return s
}

// Slug renders the tuple as a filesystem-friendly identifier, used as the
// template directory naming convention.
func (r Resolved) Slug() string {
	return fmt.Sprintf("%s-%s-%s-%s", r.Language, r.Type, r.Architecture, r.Framework)
}

// Inference records one axis the resolver filled in because the caller
// left it unset. Surfacing these is mandatory: callers always learn
// which parts of a resolved target were inferred rather than chosen.
type Inference struct {
	Field string
	Value string
}

func normalize(s string) string {
	out := make([]byte, 0, len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c >= 'A' && c <= 'Z' {
			c += 'a' - 'A'
		}
		out = append(out, c)
	}
	return string(out)
}

func languageStrings() []string {
	langs := Languages()
	out := make([]string, len(langs))
	for i, l := range langs {
		out[i] = string(l)
	}
	return out
}

func projectTypeStrings() []string {
	return []string{
		string(TypeCLI), string(TypeWebBackend), string(TypeWebFrontend),
		string(TypeFullstack), string(TypeWorker), string(TypeLibrary),
	}
}

func architectureStrings() []string {
	return []string{
		string(ArchLayered), string(ArchMVC), string(ArchClean), string(ArchFeatureModular),
	}
}

func frameworkStrings() []string {
	return []string{
		string(FrameworkNone),
		string(FrameworkAxum), string(FrameworkActix), string(FrameworkRocket),
		string(FrameworkFastAPI), string(FrameworkDjango), string(FrameworkFlask),
		string(FrameworkExpress), string(FrameworkNestJS), string(FrameworkReact),
		string(FrameworkVue), string(FrameworkNextJS), string(FrameworkSvelte),
		string(FrameworkGin), string(FrameworkEcho),
	}
}
