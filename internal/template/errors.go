package template

import (
	"errors"
	"fmt"
	"strings"

	"github.com/scarff-dev/scarff/internal/target"
)

// Sentinel errors for the template package.
var (
	// ErrTemplateNotFound indicates the matrix allows the resolved tuple
	// but no template ships for it.
	ErrTemplateNotFound = errors.New("no template for target")

	// ErrStoreIntegrity indicates the embedded template set is invalid
	// (duplicate tuples, bad manifest, missing sources). Never triggered
	// by user input; it means a corrupted build.
	ErrStoreIntegrity = errors.New("template store integrity violation")

	// ErrUnresolvedPlaceholder indicates a template references a value
	// the render context does not carry.
	ErrUnresolvedPlaceholder = errors.New("unresolved placeholder")

	// ErrPathTraversal indicates a rendered file path escapes the
	// project root.
	ErrPathTraversal = errors.New("path escapes project root")

	// ErrDuplicatePath indicates two rendered files share one path.
	ErrDuplicatePath = errors.New("duplicate path in rendered project")

	// ErrRenderFailed wraps template parse and execution failures that
	// are not missing-placeholder errors.
	ErrRenderFailed = errors.New("template render failed")
)

// NotFoundError reports a lookup miss together with the tuples that do
// ship, so callers can surface actionable alternatives.
type NotFoundError struct {
	Target    target.Resolved
	Available []string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("no template for %s (shipped: %s)",
		e.Target, strings.Join(e.Available, "; "))
}

func (e *NotFoundError) Unwrap() error { return ErrTemplateNotFound }

// UnresolvedPlaceholderError names the offending file and marker.
type UnresolvedPlaceholderError struct {
	File   string
	Marker string
}

func (e *UnresolvedPlaceholderError) Error() string {
	return fmt.Sprintf("unresolved placeholder %q in %s", e.Marker, e.File)
}

func (e *UnresolvedPlaceholderError) Unwrap() error { return ErrUnresolvedPlaceholder }
