package commands

import (
	"ragflowctl/internal/version"

	"github.com/spf13/cobra"
)

// NewVersionCmd creates and returns the version command.
// The command prints the build-stamped version information.
func NewVersionCmd() *cobra.Command {
	var short bool

	cmd := &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return version.Get().Write(cmd.OutOrStdout(), short)
		},
	}

	cmd.Flags().BoolVarP(&short, "short", "s", false, "Show only the version number")

	return cmd
}
