package commands

import (
	"github.com/arenaworks/menugen"
	"github.com/arenaworks/menugen/internal/output"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

// RootCmd creates and returns the root command for the menugen CLI
func RootCmd() *cobra.Command {
	var verbose bool

	cmd := &cobra.Command{
		Use:   "menugen",
		Short: "Scaffold new menu screens into a menu-driven arena app",
		Long: `menugen adds new selectable menu states to an arena-style terminal
application without hand-editing its coordinator files.

Given a menu name, menugen:
• Generates the menu's state module from a template
• Wires it into the state registry, renderer, and input dispatcher
• Adds it to the main menu and renumbers the trailing options

Every coordinator edit is guarded by a probe, so re-running with the
same name is safe: edits already present are skipped.`,
		Version:       menugen.Version,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// Cobra validates arguments before this hook runs, so bad
			// arguments still get the usage message while runtime
			// failures stay quiet.
			cmd.Root().SilenceUsage = true

			output.SetVerbose(verbose)
			if verbose {
				log.SetLevel(log.DebugLevel)
			}
		},
	}

	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output for debugging")

	return cmd
}
