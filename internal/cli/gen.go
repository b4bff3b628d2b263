package cli

import (
	"errors"
	"fmt"
	"path/filepath"
	"strconv"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/vladislavmarkov/data-registry/internal/gen"
)

func newGenCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "gen",
		Short: "Generate large sets of entries or raw statics",
	}
	cmd.AddCommand(
		newGenKindCmd(a, "entries", "Generate N registry entries and a test checking them", false),
		newGenKindCmd(a, "raw", "Generate N plain package variables and a test checking them", true),
	)
	return cmd
}

func newGenKindCmd(a *app, use, short string, raw bool) *cobra.Command {
	var (
		prefix string
		check  bool
	)
	cmd := &cobra.Command{
		Use:   use + " N",
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := strconv.Atoi(args[0])
			if err != nil {
				return userError(fmt.Errorf("%w: %q", gen.ErrCountInvalid, args[0]))
			}
			for flag, key := range map[string]string{
				"package":    cfgKeyGenPackage,
				"value-type": cfgKeyGenValueType,
				"out-dir":    cfgKeyGenOutDir,
			} {
				if err := a.cfg.BindPFlag(key, cmd.Flags().Lookup(flag)); err != nil {
					return sysError(err)
				}
			}

			opts := gen.Options{
				Count:     n,
				Package:   a.cfg.GetString(cfgKeyGenPackage),
				ValueType: a.cfg.GetString(cfgKeyGenValueType),
				Prefix:    prefix,
				Raw:       raw,
			}
			files, err := gen.Generate(opts)
			if err != nil {
				return userError(err)
			}

			dir := a.cfg.GetString(cfgKeyGenOutDir)
			out := cmd.OutOrStdout()
			if check {
				if err := gen.Check(dir, files); err != nil {
					if errors.Is(err, gen.ErrStale) {
						return userError(err)
					}
					return sysError(err)
				}
				fmt.Fprintf(out, "%s is up to date\n", dir)
				return nil
			}

			if err := gen.Write(dir, files); err != nil {
				return sysError(err)
			}
			colored, err := a.colored(out)
			if err != nil {
				return err
			}
			ok := painter(colored, color.FgGreen)
			for _, f := range files {
				fmt.Fprintf(out, "%s %s\n", ok.Sprint("wrote"), filepath.Join(dir, f.Name))
			}
			return nil
		},
	}

	f := cmd.Flags()
	f.String("out-dir", "", "directory receiving the generated files (default from config, then .)")
	f.String("package", "", "package name of the generated files (default "+gen.DefaultPackage+")")
	f.String("value-type", "", "unsigned integer type of each value (default "+gen.DefaultValueType+")")
	f.StringVar(&prefix, "prefix", "",
		"identifier prefix of generated variables (default "+gen.DefaultPrefix+", "+gen.DefaultRawPrefix+" for raw statics)")
	f.BoolVar(&check, "check", false, "compare with the files on disk instead of writing them")
	return cmd
}
