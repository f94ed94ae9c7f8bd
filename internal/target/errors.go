package target

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for the target package.
var (
	// ErrMissingField indicates a required axis was neither supplied nor
	// coverable by a default policy.
	ErrMissingField = errors.New("required field missing")

	// ErrUnsupportedCombination indicates the (language, type) pair has no
	// entry in the compatibility matrix.
	ErrUnsupportedCombination = errors.New("unsupported combination")

	// ErrIncompatibleArchitecture indicates an explicit architecture that
	// the matrix entry does not allow.
	ErrIncompatibleArchitecture = errors.New("incompatible architecture")

	// ErrIncompatibleFramework indicates an explicit framework that the
	// matrix entry does not allow.
	ErrIncompatibleFramework = errors.New("incompatible framework")

	// ErrUnknownValue indicates a string outside the closed vocabulary.
	ErrUnknownValue = errors.New("unknown value")
)

// UnknownValueError reports a string that parses to no enum member,
// together with the legal alternatives for that axis.
type UnknownValueError struct {
	Axis  string
	Value string
	Legal []string
}

func (e *UnknownValueError) Error() string {
	return fmt.Sprintf("unknown %s %q (supported: %s)", e.Axis, e.Value, strings.Join(e.Legal, ", "))
}

func (e *UnknownValueError) Unwrap() error { return ErrUnknownValue }

// MissingFieldError reports a required axis with no value and no default.
type MissingFieldError struct {
	Field string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("required field missing: %s", e.Field)
}

func (e *MissingFieldError) Unwrap() error { return ErrMissingField }

// UnsupportedCombinationError reports a (language, type) pair absent from
// the matrix, listing the types the language does support.
type UnsupportedCombinationError struct {
	Language       Language
	Type           ProjectType
	SupportedTypes []ProjectType
}

func (e *UnsupportedCombinationError) Error() string {
	return fmt.Sprintf("%s does not support %s projects (supported: %s)",
		e.Language, e.Type, joinTypes(e.SupportedTypes))
}

func (e *UnsupportedCombinationError) Unwrap() error { return ErrUnsupportedCombination }

// IncompatibleArchitectureError reports an explicit architecture outside
// the matrix entry's allowed set.
type IncompatibleArchitectureError struct {
	Architecture Architecture
	Language     Language
	Type         ProjectType
	Allowed      []Architecture
}

func (e *IncompatibleArchitectureError) Error() string {
	allowed := make([]string, len(e.Allowed))
	for i, a := range e.Allowed {
		allowed[i] = string(a)
	}
	return fmt.Sprintf("architecture %q is incompatible with %s %s (allowed: %s)",
		e.Architecture, e.Language, e.Type, strings.Join(allowed, ", "))
}

func (e *IncompatibleArchitectureError) Unwrap() error { return ErrIncompatibleArchitecture }

// IncompatibleFrameworkError reports an explicit framework outside the
// matrix entry's allowed set.
type IncompatibleFrameworkError struct {
	Framework Framework
	Language  Language
	Type      ProjectType
	Allowed   []Framework
}

func (e *IncompatibleFrameworkError) Error() string {
	allowed := make([]string, len(e.Allowed))
	for i, f := range e.Allowed {
		allowed[i] = string(f)
	}
	return fmt.Sprintf("framework %q is incompatible with %s %s (allowed: %s)",
		e.Framework, e.Language, e.Type, strings.Join(allowed, ", "))
}

func (e *IncompatibleFrameworkError) Unwrap() error { return ErrIncompatibleFramework }

func joinTypes(types []ProjectType) string {
	out := make([]string, len(types))
	for i, t := range types {
		out[i] = string(t)
	}
	return strings.Join(out, ", ")
}
