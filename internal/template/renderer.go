package template

import (
	"bytes"
	"fmt"
	"io/fs"
	"path"
	"regexp"
	"strings"
	texttemplate "text/template"

	"github.com/scarff-dev/scarff/internal/defs"
)

// markerPattern matches {{ .Name }} references in template sources so
// unknown placeholders can be reported by file and marker before
// execution ever starts.
var markerPattern = regexp.MustCompile(`\{\{-?\s*\.([A-Za-z_][A-Za-z0-9_]*)`)

// leftoverPattern catches unexpanded tokens that survive execution,
// typically from malformed delimiters the parser passed through.
var leftoverPattern = regexp.MustCompile(`\{\{[^}]*\}\}`)

// missingKeyPattern recognizes text/template's missingkey=error
// failures, so markers the pre-scan cannot see (inside if, range, with)
// still surface as unresolved placeholders with the key named.
var missingKeyPattern = regexp.MustCompile(`no entry for key "([^"]+)"`)

// Renderer expands a template against a context. Rendering is total:
// either every file and every path renders cleanly, or nothing is
// produced and the first failure is returned.
type Renderer struct{}

func NewRenderer() *Renderer { return &Renderer{} }

// Render expands all files of tmpl with ctx and returns the rendered
// tree rooted at ctx.ProjectName. The output is fully validated: no
// unresolved placeholders, no duplicate destination paths, no path
// escaping the project root.
func (r *Renderer) Render(tmpl *Template, ctx *Context) (*Rendered, error) {
	vars := ctx.vars()

	out := &Rendered{
		Root:  ctx.ProjectName,
		Files: make([]RenderedFile, 0, len(tmpl.Files)),
	}
	seen := make(map[string]string, len(tmpl.Files))

	for _, f := range tmpl.Files {
		dest, err := r.renderPath(f.Path, vars, f.Source)
		if err != nil {
			return nil, err
		}
		if err := validateDestPath(dest, f.Source); err != nil {
			return nil, err
		}
		if prev, dup := seen[dest]; dup {
			return nil, fmt.Errorf("%w: %q produced by both %q and %q",
				ErrDuplicatePath, dest, prev, f.Source)
		}
		seen[dest] = f.Source

		content := f.Content
		if f.Parameterized {
			content, err = r.renderContent(f.Source, f.Content, vars)
			if err != nil {
				return nil, err
			}
		}

		out.Files = append(out.Files, RenderedFile{
			Path:    dest,
			Content: content,
			Mode:    fileMode(dest),
		})
	}

	return out, nil
}

func (r *Renderer) renderContent(source string, content []byte, vars map[string]any) ([]byte, error) {
	if err := checkMarkers(source, string(content), vars); err != nil {
		return nil, err
	}

	t, err := texttemplate.New(source).Option("missingkey=error").Parse(string(content))
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrRenderFailed, source, err)
	}

	var buf bytes.Buffer
	if err := t.Execute(&buf, vars); err != nil {
		return nil, execError(source, err)
	}

	if m := leftoverPattern.Find(buf.Bytes()); m != nil {
		return nil, &UnresolvedPlaceholderError{File: source, Marker: string(m)}
	}

	return buf.Bytes(), nil
}

func (r *Renderer) renderPath(p string, vars map[string]any, source string) (string, error) {
	if !strings.Contains(p, "{{") {
		return p, nil
	}
	if err := checkMarkers(source, p, vars); err != nil {
		return "", err
	}
	t, err := texttemplate.New(source).Option("missingkey=error").Parse(p)
	if err != nil {
		return "", fmt.Errorf("%w: %s: path %q: %v", ErrRenderFailed, source, p, err)
	}
	var buf bytes.Buffer
	if err := t.Execute(&buf, vars); err != nil {
		return "", execError(source, err)
	}
	return buf.String(), nil
}

// execError classifies an execution failure: missing keys become
// unresolved-placeholder errors, anything else is a render failure.
func execError(source string, err error) error {
	if m := missingKeyPattern.FindStringSubmatch(err.Error()); m != nil {
		return &UnresolvedPlaceholderError{File: source, Marker: m[1]}
	}
	return fmt.Errorf("%w: %s: %v", ErrRenderFailed, source, err)
}

// checkMarkers reports the first placeholder in text that has no
// binding in vars, named by source file and marker.
func checkMarkers(source, text string, vars map[string]any) error {
	for _, m := range markerPattern.FindAllStringSubmatch(text, -1) {
		if _, ok := vars[m[1]]; !ok {
			return &UnresolvedPlaceholderError{File: source, Marker: m[1]}
		}
	}
	return nil
}

// validateDestPath rejects rendered paths that could write outside the
// project root: absolute paths, parent traversal, and empty segments.
func validateDestPath(p, source string) error {
	if p == "" {
		return fmt.Errorf("%w: %s rendered an empty path", ErrPathTraversal, source)
	}
	if strings.HasPrefix(p, "/") || strings.Contains(p, `\`) {
		return fmt.Errorf("%w: %s: %q", ErrPathTraversal, source, p)
	}
	clean := path.Clean(p)
	if clean == ".." || strings.HasPrefix(clean, "../") || path.IsAbs(clean) {
		return fmt.Errorf("%w: %s: %q", ErrPathTraversal, source, p)
	}
	for _, seg := range strings.Split(p, "/") {
		if seg == ".." {
			return fmt.Errorf("%w: %s: %q", ErrPathTraversal, source, p)
		}
	}
	return nil
}

// fileMode marks shell scripts executable; everything else is a plain
// file.
func fileMode(dest string) fs.FileMode {
	if strings.HasSuffix(dest, ".sh") {
		return defs.ExecPerm
	}
	return defs.FilePerm
}
