package commands

import (
	"context"
	"fmt"
	"os"

	"github.com/arenaworks/menugen/internal/generator"
	"github.com/arenaworks/menugen/internal/generators/menu"
	"github.com/arenaworks/menugen/internal/naming"
	"github.com/arenaworks/menugen/internal/output"
	"github.com/arenaworks/menugen/internal/patch"
	"github.com/arenaworks/menugen/internal/project"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// MenuCmd creates and returns the 'menu' command
func MenuCmd() *cobra.Command {
	var dryRun, showDiff bool
	var optionsFile, projectDir string

	cmd := &cobra.Command{
		Use:   "menu [name]",
		Short: "Generate a new menu state and wire it into the application",
		Long: `Generate a new menu state and wire it into the application.

The name is lowercased and used as the file stem, state field, and
function-name fragment; its capitalized form names the state type and
enum variant. Names already claimed by the coordinator files (help,
main_menu, quit) are rejected.

Examples:
  menugen menu battle
  menugen menu shop --options shop_options.yml
  menugen menu battle --diff`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMenu(cmd.Context(), args[0], projectDir, optionsFile, dryRun, showDiff)
		},
	}

	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Show what would be done without writing files")
	cmd.Flags().BoolVar(&showDiff, "diff", false, "Preview pending coordinator edits as diffs (implies --dry-run)")
	cmd.Flags().StringVar(&optionsFile, "options", "", "YAML file with custom option labels")
	cmd.Flags().StringVar(&projectDir, "project", ".", "Path to the target project root")

	return cmd
}

func runMenu(ctx context.Context, rawName, projectDir, optionsFile string, dryRun, showDiff bool) error {
	name, err := naming.Derive(rawName)
	if err != nil {
		return err
	}

	proj, err := project.Detect(projectDir)
	if err != nil {
		return err
	}

	labels, err := loadOptionLabels(optionsFile)
	if err != nil {
		return err
	}

	if proj.Crate != "" {
		output.Info(fmt.Sprintf("Generating menu '%s' for crate %s", name.Ident, proj.Crate))
	} else {
		output.Info(fmt.Sprintf("Generating menu '%s'", name.Ident))
		output.Verbose("no Cargo.toml found; assuming default project layout")
	}

	gen := menu.New(proj, name, menu.Options{OptionLabels: labels})
	ops, err := gen.Generate()
	if err != nil {
		return err
	}

	if showDiff {
		if err := previewOps(ctx, ops); err != nil {
			return err
		}
	} else {
		if err := generator.Execute(ctx, ops, generator.ExecuteOptions{DryRun: dryRun}); err != nil {
			return err
		}
	}

	summarize(gen.Report())

	if dryRun || showDiff {
		output.Info("Dry run: no files were written")
		return nil
	}

	output.Success(fmt.Sprintf("Menu '%s' generated and wired into the application", name.Ident))
	output.Info("Next steps:")
	output.Step(fmt.Sprintf("Review %s", proj.StateFile(name.Ident)))
	output.Step("Customize the menu options and functionality")
	output.Step("Run the application and try the new menu")
	output.Step(fmt.Sprintf("See %s for the manual procedure", proj.DocsFile()))

	return nil
}

// previewOps validates every operation, then shows pending coordinator
// edits as diffs. Nothing is written.
func previewOps(ctx context.Context, ops []generator.Operation) error {
	for _, op := range ops {
		if err := op.Validate(ctx, false); err != nil {
			return fmt.Errorf("validation failed: %w", err)
		}
	}

	for _, op := range ops {
		fo, ok := op.(*patch.FileOp)
		if !ok {
			fmt.Printf("✓ [DRY RUN] %s\n", op.Description())
			continue
		}

		old, newer, err := fo.Preview(ctx)
		if err != nil {
			return err
		}

		diff := generator.GenerateDiff(fo.Path, old, newer)
		if diff == "" {
			fmt.Printf("✓ [DRY RUN] %s (no changes)\n", fo.Description())
			continue
		}
		if err := generator.ShowDiff(fo.Path, diff); err != nil {
			return err
		}
	}

	return nil
}

// summarize surfaces skipped edits and anchor misses at the end of the
// run so the user knows what to apply by hand.
func summarize(report *patch.Report) {
	for _, w := range report.Warnings() {
		output.Warn(w)
	}
	if n := len(report.Warnings()); n > 0 {
		output.Warn(fmt.Sprintf("%d edit(s) could not be applied automatically", n))
	}
	if report.Skipped() > 0 {
		output.Verbose(fmt.Sprintf("%d edit(s) already present, skipped", report.Skipped()))
	}
}

// loadOptionLabels reads custom option labels from a YAML file.
func loadOptionLabels(path string) ([]string, error) {
	if path == "" {
		return nil, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading options file: %w", err)
	}

	var file struct {
		Options []string `yaml:"options"`
	}
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parsing options file %s: %w", path, err)
	}

	return file.Options, nil
}
