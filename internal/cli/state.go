package cli

import (
	"encoding/json"
	"fmt"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/vladislavmarkov/data-registry/internal/cell"
	"github.com/vladislavmarkov/data-registry/internal/demo"
	"github.com/vladislavmarkov/data-registry/pkg/reg"
)

func newStateCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "state",
		Short: "Show the persisted state entry",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.withState(func(*cell.SQLite[demo.State]) error {
				fmt.Fprintln(cmd.OutOrStdout(), reg.Get(demo.CurrentState))
				return nil
			})
		},
	}
	cmd.AddCommand(newStateSetCmd(a), newStateHistoryCmd(a))
	return cmd
}

func newStateSetCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:       "set <state>",
		Short:     "Write the state entry",
		Args:      cobra.ExactArgs(1),
		ValidArgs: stateNames(),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := demo.ParseState(args[0])
			if err != nil {
				return userError(err)
			}
			return a.withState(func(c *cell.SQLite[demo.State]) error {
				reg.Set(demo.CurrentState, s)
				if err := c.Err(); err != nil {
					return sysError(fmt.Errorf("write state: %w", err))
				}
				a.log.Info("state written", zap.Stringer("state", s))
				fmt.Fprintln(cmd.OutOrStdout(), reg.Get(demo.CurrentState))
				return nil
			})
		},
	}
}

func newStateHistoryCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "history",
		Short: "List recorded writes of the state entry",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := cmd.OutOrStdout()
			return a.withState(func(c *cell.SQLite[demo.State]) error {
				records, err := c.History()
				if err != nil {
					return sysError(fmt.Errorf("read history: %w", err))
				}
				if len(records) == 0 {
					fmt.Fprintln(out, "no writes recorded")
					return nil
				}
				tw := tabwriter.NewWriter(out, 0, 8, 2, ' ', 0)
				fmt.Fprintln(tw, "VERSION\tVALUE\tCREATED\tID")
				for _, r := range records {
					var v demo.State
					if err := json.Unmarshal(r.Value, &v); err != nil {
						return sysError(fmt.Errorf("decode history %s: %w", r.HistoryID, err))
					}
					fmt.Fprintf(tw, "%d\t%s\t%s\t%s\n", r.Version, v, r.CreatedAt.Format(time.RFC3339), r.HistoryID)
				}
				return tw.Flush()
			})
		},
	}
}

// withState opens the store, routes demo.CurrentState through it for the
// duration of fn and closes it again.
func (a *app) withState(fn func(*cell.SQLite[demo.State]) error) error {
	s, err := a.openStore()
	if err != nil {
		return err
	}
	defer s.Close()

	c, err := demo.Persist(s)
	if err != nil {
		return sysError(fmt.Errorf("open state: %w", err))
	}
	defer demo.Detach()
	return fn(c)
}

func stateNames() []string {
	var names []string
	for _, s := range demo.States() {
		names = append(names, s.String())
	}
	return names
}
