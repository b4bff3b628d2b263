// Package demo declares a set of sample registry entries, one per accessor
// shape, and walks through reading and writing them.
package demo

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"go.uber.org/zap"

	"github.com/vladislavmarkov/data-registry/internal/cell"
	"github.com/vladislavmarkov/data-registry/pkg/reg"
)

// Options controls Run.
type Options struct {
	// Store, when set, persists CurrentState in this cell store.
	Store   *cell.Store
	Colored bool
	Logger  *zap.Logger
}

// Run sets the sample entries and prints each value to w.
func Run(w io.Writer, opts Options) error {
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}

	heading := color.New(color.Bold, color.FgCyan)
	name := color.New(color.FgYellow)
	if opts.Colored {
		heading.EnableColor()
		name.EnableColor()
	} else {
		heading.DisableColor()
		name.DisableColor()
	}
	line := func(label string, v any) {
		fmt.Fprintf(w, "%s %v\n", name.Sprintf("%-10s", label+":"), v)
	}

	var persisted *cell.SQLite[State]
	if opts.Store != nil {
		c, err := Persist(opts.Store)
		if err != nil {
			return fmt.Errorf("persist state: %w", err)
		}
		defer Detach()
		log.Debug("state persisted", zap.String("cell", c.Name()), zap.String("db", opts.Store.Path()))
		persisted = c
	}

	fmt.Fprintln(w, heading.Sprint("statics"))
	reg.Set(Number, 42)
	reg.Set(Text, "hello registry")
	line("number", reg.Get(Number))
	line("text", reg.Get(Text))
	line("location", reg.Get(Where))

	fmt.Fprintln(w, heading.Sprint("updates"))
	reg.Set(Speed, 88)
	reg.Set(Temp, 36.6)
	line("speed", reg.Get(Speed))
	line("temp", reg.Get(Temp))

	fmt.Fprintln(w, heading.Sprint("accessors"))
	line("heartbeat", reg.Get(Heartbeat))
	line("heartbeat", reg.Get(Heartbeat))

	line("state", reg.Get(CurrentState))
	next := OperationCycle
	if reg.Get(CurrentState) == OperationCycle {
		next = ShuttingDown
	}
	reg.Set(CurrentState, next)
	// Load resets the cell error, so check the write before reading back.
	if persisted != nil {
		if err := persisted.Err(); err != nil {
			return fmt.Errorf("write state: %w", err)
		}
	}
	line("state", reg.Get(CurrentState))
	log.Info("demo finished", zap.Stringer("state", next))
	return nil
}
