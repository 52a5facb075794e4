package commands

import (
	"github.com/spf13/cobra"

	gherkin2robotframework "github.com/fabioluissilva/gherkin2robotframework"
	"github.com/fabioluissilva/gherkin2robotframework/internal/output"
)

// RootCmd creates and returns the root command for the CLI.
func RootCmd() *cobra.Command {
	var verbose bool

	cmd := &cobra.Command{
		Use:   "gherkin2robotframework",
		Short: "Transpile Gherkin feature files into Robot Framework scripts",
		Long: `gherkin2robotframework turns Cucumber feature files into Robot Framework
test scripts plus a companion step-definition resource.

The resource file is only created when it does not exist: regeneration
never touches your hand-written keyword implementations, it only reports
which keywords are still missing.`,
		Version: gherkin2robotframework.Version,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			output.SetVerbose(verbose)
		},
	}

	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output for debugging")

	return cmd
}
