package project

import (
	"errors"
	"fmt"
)

// ErrInvalidProjectName indicates the requested name cannot be used as
// a directory or package name.
var ErrInvalidProjectName = errors.New("invalid project name")

// InvalidProjectNameError carries the offending name and the first rule
// it broke.
type InvalidProjectNameError struct {
	Name   string
	Reason string
}

func (e *InvalidProjectNameError) Error() string {
	return fmt.Sprintf("invalid project name %q: %s", e.Name, e.Reason)
}

func (e *InvalidProjectNameError) Unwrap() error { return ErrInvalidProjectName }
