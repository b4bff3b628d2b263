package cli

import (
	"github.com/spf13/cobra"

	"github.com/vladislavmarkov/data-registry/internal/demo"
)

func newDemoCmd(a *app) *cobra.Command {
	var persist bool
	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Declare sample entries, set them and print their values",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := cmd.OutOrStdout()
			colored, err := a.colored(out)
			if err != nil {
				return err
			}
			opts := demo.Options{Colored: colored, Logger: a.log.Named("demo")}
			if persist {
				s, err := a.openStore()
				if err != nil {
					return err
				}
				defer s.Close()
				opts.Store = s
			}
			if err := demo.Run(out, opts); err != nil {
				return sysError(err)
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&persist, "persist", false, "keep the state entry in the data directory")
	return cmd
}
