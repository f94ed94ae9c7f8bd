package cli

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"github.com/scarff-dev/scarff/internal/config"
	"github.com/scarff-dev/scarff/internal/project"
	"github.com/scarff-dev/scarff/internal/scaffold"
	"github.com/scarff-dev/scarff/internal/target"
	"github.com/scarff-dev/scarff/internal/template"
	"github.com/scarff-dev/scarff/pkg/version"
)

var newCmd = &cobra.Command{
	Use:   "new <project-name>",
	Short: "Create a new project from a template",
	Long: `Create a new project directory from a built-in template.

Only the project name is required. Omitted axes are inferred: the
project type falls back to the language's default, and architecture and
framework fall back to the defaults for the resolved pair. Every
inferred value is shown in the summary.

Examples:
  scarff new my-tool --language rust
  scarff new my-api --language python --type web-backend
  scarff new my-app -l typescript -t fullstack --framework nextjs
  scarff new demo -l go --dry-run`,
	Args: cobra.ExactArgs(1),
	RunE: runNew,
}

func init() {
	rootCmd.AddCommand(newCmd)

	newCmd.Flags().StringP("language", "l", "", "Project language (rust, python, typescript, go)")
	newCmd.Flags().StringP("type", "t", "", "Project type (cli, web-backend, web-frontend, fullstack, worker, library)")
	newCmd.Flags().StringP("arch", "a", "", "Architecture (layered, mvc, clean, feature-modular)")
	newCmd.Flags().StringP("framework", "f", "", "Framework, or \"none\" for a frameworkless project")
	newCmd.Flags().StringP("output", "o", "", "Parent directory for the new project (default: current directory)")
	newCmd.Flags().Bool("force", false, "Replace the destination if it already exists")
	newCmd.Flags().Bool("dry-run", false, "Validate and show what would be created without writing")
	newCmd.Flags().BoolP("yes", "y", false, "Skip prompts; fail instead of asking")
	newCmd.Flags().BoolP("quiet", "q", false, "Only print the destination path")
}

func runNew(cmd *cobra.Command, args []string) error {
	log := newLogger(cmd)
	cfg := config.Load(log)

	name := args[0]
	yes, _ := cmd.Flags().GetBool("yes")
	quiet, _ := cmd.Flags().GetBool("quiet")
	force, _ := cmd.Flags().GetBool("force")
	dryRun, _ := cmd.Flags().GetBool("dry-run")
	output, _ := cmd.Flags().GetString("output")

	raw, err := rawTargetFromFlags(cmd)
	if err != nil {
		return err
	}

	interactive := !yes && stdinIsTTY()

	// No language from flags or config in a non-interactive run is a
	// hard error; interactively it becomes a prompt.
	if raw.Language == "" && cfg.DefaultLanguage == "" {
		if !interactive {
			return &target.MissingFieldError{Field: "language"}
		}
		lang, err := promptLanguage()
		if err != nil {
			return err
		}
		raw.Language = lang
	}

	resolver := target.NewResolver(target.NewMatrix())
	if cfg.DefaultLanguage != "" {
		lang, err := target.ParseLanguage(cfg.DefaultLanguage)
		if err == nil {
			resolver = resolver.WithDefaultLanguage(lang)
		}
	}

	store, err := template.Embedded()
	if err != nil {
		return err
	}

	if interactive && !dryRun {
		ok, err := confirmScaffold(name)
		if err != nil {
			return err
		}
		if !ok {
			fmt.Fprintln(cmd.OutOrStdout(), "Aborted.")
			return nil
		}
	}

	scaffolder := project.NewScaffolder(resolver, store, version.GetVersion()).WithLogger(log)

	report, err := scaffolder.Scaffold(cmd.Context(), project.Request{
		Name:      name,
		Target:    raw,
		OutputDir: output,
		Force:     force,
		DryRun:    dryRun,
	})
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if quiet {
		fmt.Fprintln(out, report.Destination)
		return nil
	}

	printReport(out, report, useColor(cfg.Color))
	return nil
}

// rawTargetFromFlags parses the axis flags. Unknown values are rejected
// here, before any resolution, with the legal alternatives.
func rawTargetFromFlags(cmd *cobra.Command) (target.Raw, error) {
	var raw target.Raw

	if v, _ := cmd.Flags().GetString("language"); v != "" {
		lang, err := target.ParseLanguage(v)
		if err != nil {
			return raw, err
		}
		raw.Language = lang
	}
	if v, _ := cmd.Flags().GetString("type"); v != "" {
		typ, err := target.ParseProjectType(v)
		if err != nil {
			return raw, err
		}
		raw.Type = typ
	}
	if v, _ := cmd.Flags().GetString("arch"); v != "" {
		arch, err := target.ParseArchitecture(v)
		if err != nil {
			return raw, err
		}
		raw.Architecture = arch
	}
	if cmd.Flags().Changed("framework") {
		v, _ := cmd.Flags().GetString("framework")
		fw, err := target.ParseFramework(v)
		if err != nil {
			return raw, err
		}
		raw.Framework = fw
		raw.FrameworkSet = true
	}

	return raw, nil
}

// promptLanguage asks for the one axis that cannot be defaulted.
func promptLanguage() (target.Language, error) {
	var choice string
	form := huh.NewForm(huh.NewGroup(
		huh.NewSelect[string]().
			Title("Select a language").
			Options(
				huh.NewOption("Rust", "rust"),
				huh.NewOption("Python", "python"),
				huh.NewOption("TypeScript", "typescript"),
				huh.NewOption("Go", "go"),
			).
			Value(&choice),
	))

	if err := form.Run(); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return "", fmt.Errorf("cancelled")
		}
		return "", err
	}
	return target.ParseLanguage(choice)
}

// confirmScaffold asks before writing. Only reached when stdin is a
// TTY and --yes was not passed.
func confirmScaffold(name string) (bool, error) {
	ok := true
	form := huh.NewForm(huh.NewGroup(
		huh.NewConfirm().
			Title(fmt.Sprintf("Create project %q?", name)).
			Value(&ok),
	))
	if err := form.Run(); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return false, nil
		}
		return false, err
	}
	return ok, nil
}

// printReport renders the scaffold summary: the resolved tuple with
// inferred axes marked, the created files, and next steps.
func printReport(out io.Writer, report *scaffold.Report, color bool) {
	style := func(s func(string) string, text string) string {
		if color {
			return s(text)
		}
		return text
	}
	primary := func(s string) string { return cliPrimary.Render(s) }
	success := func(s string) string { return cliSuccess.Render(s) }
	warn := func(s string) string { return cliWarn.Render(s) }
	muted := func(s string) string { return cliMuted.Render(s) }
	bold := func(s string) string { return cliBold.Render(s) }

	var b strings.Builder

	axis := func(label, value, field string) {
		line := fmt.Sprintf("%-14s %s", label, style(bold, value))
		if _, inferred := report.InferredField(field); inferred {
			line += " " + style(warn, "(inferred)")
		}
		b.WriteString(line + "\n")
	}

	axis("Language", string(report.Target.Language), "language")
	axis("Type", string(report.Target.Type), "type")
	axis("Architecture", string(report.Target.Architecture), "architecture")
	axis("Framework", string(report.Target.Framework), "framework")
	b.WriteString(fmt.Sprintf("%-14s %s\n", "Template", report.Template))
	if len(report.Dependencies) > 0 {
		b.WriteString(fmt.Sprintf("%-14s %s\n", "Dependencies", strings.Join(report.Dependencies, ", ")))
	}
	b.WriteString(fmt.Sprintf("%-14s %s", "Destination", report.Destination))

	panel := b.String()
	if color {
		panel = cardStyle().Render(panel)
	}
	fmt.Fprintln(out, panel)

	if report.Simulated {
		fmt.Fprintln(out, style(warn, "Dry run: nothing was written."))
	} else {
		fmt.Fprintln(out, style(success, fmt.Sprintf("Created %d files.", len(report.Files))))
	}

	for _, f := range report.Files {
		fmt.Fprintln(out, "  "+style(muted, f))
	}

	if !report.Simulated && len(report.NextSteps) > 0 {
		fmt.Fprintln(out, style(primary, "Next steps:"))
		for _, s := range report.NextSteps {
			fmt.Fprintln(out, "  "+s)
		}
	}
}
