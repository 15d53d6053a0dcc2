package version

import (
	"fmt"

	"github.com/spf13/cobra"
)

// Version is the release of the ahuff command.
const Version = "0.1.0"

// NewCmd returns the "version" command.
func NewCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the ahuff version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintf(cmd.OutOrStdout(), "ahuff version %s\n", Version)
			return nil
		},
	}
}
