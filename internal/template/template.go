// Package template holds the embedded template catalog and the renderer
// that turns a template plus a render context into the in-memory file set
// a scaffold transaction commits to disk.
package template

import (
	"io/fs"

	"github.com/scarff-dev/scarff/internal/target"
)

// File is one declared output of a template: a destination path, which
// may itself contain placeholder markers, and the content to put there.
// Content marked parameterized is rendered; otherwise it is copied
// verbatim.
type File struct {
	// Path is the destination path relative to the project root, in
	// slash form, possibly containing placeholders.
	Path string

	// Source is the content-source path inside the template directory,
	// kept for error reporting.
	Source string

	// Content is the raw content source, loaded at store construction.
	Content []byte

	// Parameterized marks Content as containing placeholder markers.
	Parameterized bool
}

// Template is one immutable entry of the store, keyed by its fully
// resolved target tuple.
type Template struct {
	// Target is the resolved tuple this template scaffolds. At most one
	// template exists per tuple.
	Target target.Resolved

	Name        string
	Description string

	// Dependencies names the packages the generated project declares,
	// for display only; the core never installs anything.
	Dependencies []string

	// Files is the ordered list of outputs.
	Files []File
}

// RenderedFile is one fully rendered output: final relative path and
// final bytes.
type RenderedFile struct {
	Path    string
	Content []byte
	Mode    fs.FileMode
}

// Rendered is the ephemeral, in-memory result of rendering one template:
// the destination root plus the ordered file list. It is owned by a
// single scaffold invocation and discarded afterward. Its path set has
// no duplicates and no path escapes the root.
type Rendered struct {
	Root  string
	Files []RenderedFile
}

// Paths returns the relative paths in declaration order.
func (r *Rendered) Paths() []string {
	out := make([]string, len(r.Files))
	for i, f := range r.Files {
		out[i] = f.Path
	}
	return out
}
