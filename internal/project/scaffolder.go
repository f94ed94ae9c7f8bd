// Package project orchestrates one scaffold invocation end to end:
// name validation, target resolution, template lookup, rendering, and
// the transactional commit. Validation runs strictly before any disk
// effect, and matrix validity is checked before template availability so
// an unsupported combination is never reported as a missing template.
package project

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/scarff-dev/scarff/internal/scaffold"
	"github.com/scarff-dev/scarff/internal/target"
	"github.com/scarff-dev/scarff/internal/template"
)

// maxNameBytes caps project names at what every mainstream filesystem
// accepts for a single path component.
const maxNameBytes = 255

// windowsReserved are device names that cannot be used as file names on
// Windows; projects named after them would be unportable.
var windowsReserved = map[string]bool{
	"con": true, "prn": true, "aux": true, "nul": true,
	"com1": true, "com2": true, "com3": true, "com4": true, "com5": true,
	"com6": true, "com7": true, "com8": true, "com9": true,
	"lpt1": true, "lpt2": true, "lpt3": true, "lpt4": true, "lpt5": true,
	"lpt6": true, "lpt7": true, "lpt8": true, "lpt9": true,
}

// Request is one scaffold invocation.
type Request struct {
	// Name of the project; becomes the destination directory.
	Name string

	// Target is the possibly partial tuple from flags or the wizard.
	Target target.Raw

	// OutputDir is the parent directory for the new project. Empty
	// means the current directory.
	OutputDir string

	Force  bool
	DryRun bool
}

// Scaffolder wires the resolver, template store, and transaction into
// the one operation the CLI calls.
type Scaffolder struct {
	resolver *target.Resolver
	store    *template.Store
	renderer *template.Renderer
	tx       *scaffold.Transaction
	version  string
	log      *slog.Logger
}

// NewScaffolder builds a scaffolder over the given store.
func NewScaffolder(resolver *target.Resolver, store *template.Store, version string) *Scaffolder {
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	return &Scaffolder{
		resolver: resolver,
		store:    store,
		renderer: template.NewRenderer(),
		tx:       scaffold.NewTransaction(),
		version:  version,
		log:      log,
	}
}

// WithLogger sets the structured logger for the scaffolder and its
// transaction.
func (s *Scaffolder) WithLogger(log *slog.Logger) *Scaffolder {
	if log != nil {
		s.log = log
		s.tx.WithLogger(log)
	}
	return s
}

// Scaffold runs one invocation. The returned report is complete for
// both real and dry runs; on error the filesystem is untouched apart
// from a force replacement that already committed.
func (s *Scaffolder) Scaffold(ctx context.Context, req Request) (*scaffold.Report, error) {
	if err := ValidateName(req.Name); err != nil {
		return nil, err
	}

	res, err := s.resolver.Resolve(req.Target)
	if err != nil {
		return nil, err
	}
	s.log.Info("target resolved", "target", res.Target.String(), "inferred", len(res.Inferred))

	tmpl, err := s.store.Lookup(res.Target)
	if err != nil {
		return nil, err
	}

	tctx := template.NewContext(req.Name, res, s.version)
	rendered, err := s.renderer.Render(tmpl, tctx)
	if err != nil {
		return nil, err
	}

	outputDir := req.OutputDir
	if outputDir == "" {
		outputDir = "."
	}

	result, err := s.tx.Commit(ctx, rendered, outputDir, scaffold.Options{
		Force:  req.Force,
		DryRun: req.DryRun,
	})
	if err != nil {
		return nil, err
	}

	return &scaffold.Report{
		Target:       res.Target,
		Inferred:     res.Inferred,
		Template:     tmpl.Name,
		Dependencies: tmpl.Dependencies,
		Destination:  result.Destination,
		Files:        result.Paths,
		Simulated:    result.Simulated,
		NextSteps:    nextSteps(tctx, res.Target),
	}, nil
}

// ValidateName enforces the project-name rules shared by every entry
// point. The name becomes both a directory and, derived, a package
// identifier, so it must be a single portable path component.
func ValidateName(name string) error {
	fail := func(reason string) error {
		return &InvalidProjectNameError{Name: name, Reason: reason}
	}

	if name == "" {
		return fail("name is empty")
	}
	if len(name) > maxNameBytes {
		return fail(fmt.Sprintf("name exceeds %d bytes", maxNameBytes))
	}
	if name == "." || name == ".." {
		return fail("name is a relative path component")
	}
	if strings.HasPrefix(name, ".") {
		return fail("name starts with a dot")
	}
	if strings.HasPrefix(name, "-") {
		return fail("name starts with a dash")
	}
	if strings.ContainsAny(name, "/\\") {
		return fail("name contains a path separator")
	}
	if strings.ContainsRune(name, 0) {
		return fail("name contains a NUL byte")
	}
	if windowsReserved[strings.ToLower(name)] {
		return fail("name is a reserved device name")
	}
	return nil
}

// nextSteps returns the per-language commands to get the generated
// project running.
func nextSteps(ctx *template.Context, t target.Resolved) []string {
	steps := []string{"cd " + ctx.ProjectName}

	switch t.Language {
	case target.LanguageRust:
		steps = append(steps, "cargo run")
	case target.LanguagePython:
		steps = append(steps, "pip install -e .")
		switch t.Framework {
		case target.FrameworkDjango:
			steps = append(steps, "python manage.py migrate", "python manage.py runserver")
		case target.FrameworkFastAPI:
			steps = append(steps, "python -m "+ctx.ProjectNameSnake+".main")
		}
	case target.LanguageTypeScript:
		steps = append(steps, "npm install", "npm run dev")
	case target.LanguageGo:
		steps = append(steps, "go run .")
	}

	return steps
}
