package cmd

import (
	"errors"

	"github.com/spf13/cobra"
)

// Version is injected at build time via -ldflags
var Version = "dev"

// NewRootCommand creates and returns the root cobra command for speclint
func NewRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "speclint <path-to-spec.md>",
		Short: "Validate spec documents against the required format",
		Long: `Speclint checks that a specification document follows the required
format: a SPEC-ID in the title, a valid Status marker, all required
sections, and recommended content conventions (requirement tables, a
coverage percentage, file location tables).

The argument may be a single spec file or a directory, in which case
every .md file in it is validated independently.

Exit code: 0 if valid, 1 if errors found, 2 for usage or read errors`,
		Version: Version,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			// Missing-argument errors above still print usage;
			// validation and I/O errors should not
			cmd.SilenceUsage = true
			return runValidate(args[0], cmd.OutOrStdout())
		},
	}

	return cmd
}

// ExitCode maps an Execute error to the process exit code: 0 when nil,
// 1 when validation found errors, 2 for usage errors and unreadable input.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	var failErr *ValidationFailedError
	if errors.As(err, &failErr) {
		return 1
	}
	return 2
}
