// Package cli wires the trialhex commands: run, reviewers, history,
// version. Commands stay thin; the pipeline lives in run.go and the
// domain packages.
package cli

import (
	"github.com/spf13/cobra"
)

// App represents the CLI application with all wired dependencies
type App struct {
	rootCmd *cobra.Command

	// Runtime state
	verbose bool

	// Version information
	version string
	commit  string
	date    string
}

// New creates a new CLI application
func New() *App {
	app := &App{}
	app.setupRootCmd()
	return app
}

// Execute runs the CLI application
func (a *App) Execute() error {
	return a.rootCmd.Execute()
}

// SetVersion sets the version strings for the version command
func (a *App) SetVersion(version, commit, date string) {
	a.version = version
	a.commit = commit
	a.date = date
}

// setupRootCmd configures the root Cobra command
func (a *App) setupRootCmd() {
	a.rootCmd = &cobra.Command{
		Use:   "trialhex",
		Short: "Multi-model blind peer review",
		Long: `Trial by Hex strips identity from a document, fans it out to a
panel of AI reviewers with distinct critical personas, and synthesizes
their blind reviews into a consensus report with a verdict.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	a.rootCmd.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false,
		"Verbose output")

	a.rootCmd.AddCommand(NewRunCmd(a))
	a.rootCmd.AddCommand(NewReviewersCmd(a))
	a.rootCmd.AddCommand(NewHistoryCmd(a))
	a.rootCmd.AddCommand(NewVersionCmd(a))
}
