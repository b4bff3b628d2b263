package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vladislavmarkov/data-registry/internal/elfsize"
)

func newSizeCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "size A B",
		Short: "Compare the text, data and bss sizes of two ELF binaries",
		Long:  "Print both binaries in size(1) layout and the difference of their totals.\nA positive delta means A is larger.",
		Args:  cobra.ExactArgs(2),
		RunE:  a.runSize,
	}
}

func (a *app) runSize(cmd *cobra.Command, args []string) error {
	c, err := elfsize.Compare(args[0], args[1])
	if err != nil {
		if errors.Is(err, elfsize.ErrNotELF) {
			return userError(err)
		}
		return sysError(err)
	}

	out := cmd.OutOrStdout()
	colored, err := a.colored(out)
	if err != nil {
		return err
	}
	if err := c.Write(out, colored); err != nil {
		return sysError(fmt.Errorf("write sizes: %w", err))
	}
	return nil
}
