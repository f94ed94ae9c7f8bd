package scaffold

import (
	"github.com/scarff-dev/scarff/internal/target"
)

// Report is the user-facing summary of one scaffold: the tuple that was
// actually used, which axes were inferred rather than chosen, and what
// landed on disk. Inferred axes are always surfaced so a defaulted
// framework is never mistaken for an explicit choice.
type Report struct {
	// Target is the fully resolved tuple the project was generated from.
	Target target.Resolved

	// Inferred records every axis the resolver filled in.
	Inferred []target.Inference

	// Template is the display name of the template that was used.
	Template string

	// Dependencies the generated project declares.
	Dependencies []string

	// Destination is the project root that was (or would be) created.
	Destination string

	// Files in creation order, relative to Destination.
	Files []string

	// Simulated is true when the run was a dry run.
	Simulated bool

	// NextSteps are per-language commands to get the project running.
	NextSteps []string
}

// InferredField reports whether the named axis was inferred, and the
// value it received.
func (r *Report) InferredField(field string) (string, bool) {
	for _, inf := range r.Inferred {
		if inf.Field == field {
			return inf.Value, true
		}
	}
	return "", false
}
