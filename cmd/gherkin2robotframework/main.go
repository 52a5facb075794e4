package main

import (
	"os"

	"github.com/fabioluissilva/gherkin2robotframework/internal/commands"
)

func main() {
	rootCmd := commands.RootCmd()
	rootCmd.AddCommand(commands.GenerateCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
