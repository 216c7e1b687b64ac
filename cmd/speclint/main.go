package main

import (
	"os"

	"github.com/harrison/speclint/internal/cmd"
)

func main() {
	rootCmd := cmd.NewRootCommand()

	if err := rootCmd.Execute(); err != nil {
		os.Exit(cmd.ExitCode(err))
	}
}
