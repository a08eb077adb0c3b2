package main

import (
	"os"

	"github.com/arenaworks/menugen/internal/commands"
	"github.com/arenaworks/menugen/internal/output"
)

func main() {
	rootCmd := commands.RootCmd()

	rootCmd.AddCommand(commands.MenuCmd())

	if err := rootCmd.Execute(); err != nil {
		output.Error(err.Error())
		os.Exit(1)
	}
}
