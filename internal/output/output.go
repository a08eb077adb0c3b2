// Package output provides styled terminal output for menugen.
//
// All user-facing status lines go through this package so the CLI keeps a
// consistent look. Functions use lipgloss for styling but abstract away the
// details from callers.
package output

import (
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
)

var (
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("green")).Bold(true)
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("red")).Bold(true)
	warnStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("yellow")).Bold(true)
	infoStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("cyan"))
	stepStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))

	verboseMode bool
)

// SetVerbose enables or disables verbose output for debugging.
// This should be called by the CLI when the --verbose flag is set.
func SetVerbose(v bool) {
	verboseMode = v
}

// Success prints a completed-operation message in green.
//
// Example:
//
//	output.Success("Menu 'battle' generated")
func Success(msg string) {
	fmt.Println(successStyle.Render("✓ " + msg))
}

// Error prints a failure message in red to stderr.
func Error(msg string) {
	fmt.Fprintln(os.Stderr, errorStyle.Render("✗ " + msg))
}

// Warn prints a recoverable-problem message in yellow. Used for skipped
// edits the user may need to apply by hand.
func Warn(msg string) {
	fmt.Println(warnStyle.Render("! " + msg))
}

// Info prints an informational message in cyan. Use this for status
// updates or explanations.
func Info(msg string) {
	fmt.Println(infoStyle.Render("• " + msg))
}

// Step prints an indented step message in gray. Use this for actionable
// next steps or sub-items.
//
// Example:
//
//	output.Step("cargo run")
func Step(msg string) {
	fmt.Println(stepStyle.Render("   " + msg))
}

// Verbose prints a debug message only if verbose mode is enabled.
func Verbose(msg string) {
	if verboseMode {
		fmt.Println(stepStyle.Render("· " + msg))
	}
}
