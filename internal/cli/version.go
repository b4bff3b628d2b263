package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

const modulePath = "github.com/vladislavmarkov/data-registry"

// Version is the statics release, overridden at link time.
var Version = "0.1.0"

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the statics version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintf(cmd.OutOrStdout(), "statics v%s\nmodule: %s\n", Version, modulePath)
			return nil
		},
	}
}
