package template

import (
	"strings"
	"time"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/scarff-dev/scarff/internal/target"
)

var titleCaser = cases.Title(language.English, cases.NoLower)

// Context carries everything a template may reference. Built once per
// scaffold invocation; all derivations happen at construction so
// rendering stays a pure lookup.
type Context struct {
	// ProjectName is the name exactly as the user supplied it.
	ProjectName string

	// Casing variants derived deterministically from ProjectName.
	ProjectNameSnake  string
	ProjectNameKebab  string
	ProjectNamePascal string

	// PackageName is a language-neutral identifier derived from the
	// project name: lowercased, disallowed characters replaced with an
	// underscore, leading digits prefixed.
	PackageName string

	Language     string
	Type         string
	Architecture string
	Framework    string

	// Port is the matrix entry's default dev-server port, or 0.
	Port int

	// Year of generation, for license headers and the like.
	Year int

	// Version of the scarff binary that generated the project.
	Version string
}

// NewContext builds the render context for one resolution.
func NewContext(projectName string, res *target.Resolution, version string) *Context {
	return &Context{
		ProjectName:       projectName,
		ProjectNameSnake:  toSnakeCase(projectName),
		ProjectNameKebab:  toKebabCase(projectName),
		ProjectNamePascal: toPascalCase(projectName),
		PackageName:       derivePackageName(projectName),
		Language:          string(res.Target.Language),
		Type:              string(res.Target.Type),
		Architecture:      string(res.Target.Architecture),
		Framework:         string(res.Target.Framework),
		Port:              res.Entry.DefaultPort,
		Year:              time.Now().Year(),
		Version:           version,
	}
}

// vars flattens the context into the lookup map rendering runs against.
// Every key here is part of the contract between scarff and templates.
func (c *Context) vars() map[string]any {
	return map[string]any{
		"ProjectName":       c.ProjectName,
		"ProjectNameSnake":  c.ProjectNameSnake,
		"ProjectNameKebab":  c.ProjectNameKebab,
		"ProjectNamePascal": c.ProjectNamePascal,
		"PackageName":       c.PackageName,
		"Language":          c.Language,
		"Type":              c.Type,
		"Architecture":      c.Architecture,
		"Framework":         c.Framework,
		"Port":              c.Port,
		"Year":              c.Year,
		"Version":           c.Version,
	}
}

func toSnakeCase(s string) string {
	return strings.Join(splitWords(s), "_")
}

func toKebabCase(s string) string {
	return strings.Join(splitWords(s), "-")
}

func toPascalCase(s string) string {
	var b strings.Builder
	for _, w := range splitWords(s) {
		b.WriteString(titleCaser.String(w))
	}
	return b.String()
}

// derivePackageName maps a project name to a conservative identifier
// legal in every target ecosystem.
func derivePackageName(name string) string {
	snake := toSnakeCase(name)
	var b strings.Builder
	for _, r := range snake {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '_':
			b.WriteRune(r)
		default:
			b.WriteRune('_')
		}
	}
	out := b.String()
	if out == "" {
		return "app"
	}
	if out[0] >= '0' && out[0] <= '9' {
		out = "_" + out
	}
	return out
}

// splitWords breaks an identifier on separators, camelCase transitions,
// and acronym boundaries (HTTPServer -> http, server). All words come
// back lowercased.
func splitWords(input string) []string {
	var words []string
	runes := []rune(input)
	var current []rune

	flush := func() {
		if len(current) > 0 {
			words = append(words, strings.ToLower(string(current)))
			current = current[:0]
		}
	}

	for i, r := range runes {
		if r == '_' || r == '-' || unicode.IsSpace(r) {
			flush()
			continue
		}

		if i+1 < len(runes) {
			next := runes[i+1]
			// camelCase transition: myApp -> my, App
			if unicode.IsLower(r) && unicode.IsUpper(next) {
				current = append(current, r)
				flush()
				continue
			}
			// acronym boundary: HTTPServer -> HTTP | Server
			if i+2 < len(runes) && unicode.IsUpper(r) && unicode.IsUpper(next) && unicode.IsLower(runes[i+2]) {
				current = append(current, r)
				flush()
				continue
			}
		}

		current = append(current, r)
	}
	flush()

	return words
}
