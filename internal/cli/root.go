// Package cli implements the statics command-line interface.
package cli

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/vladislavmarkov/data-registry/internal/cell"
	"github.com/vladislavmarkov/data-registry/internal/gen"
	"github.com/vladislavmarkov/data-registry/internal/paths"
)

// Exit codes.
const (
	exitSuccess   = 0
	exitUserError = 1
	exitSysError  = 2
)

// rootFlags holds global flag values accessible to all subcommands.
type rootFlags struct {
	configDir string
	dataDir   string
	verbose   bool
	color     string
}

// app is the state shared by the commands of one root command.
type app struct {
	flags     rootFlags
	cfg       *viper.Viper
	log       *zap.Logger
	configDir string
	dataDir   string
}

// NewRootCmd creates the top-level "statics" command with global flags
// and all subcommands registered.
func NewRootCmd() *cobra.Command {
	a := &app{log: zap.NewNop()}
	root := &cobra.Command{
		Use:   "statics",
		Short: "Exercise the typed static data registry",
		Long: "statics runs the registry demo, keeps a persisted state entry,\n" +
			"generates large entry sets and compares binary sizes.",
		Version: Version,
		// Do not print usage on errors returned by subcommands.
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
		PersistentPostRun: func(*cobra.Command, []string) { _ = a.log.Sync() },
	}

	pf := root.PersistentFlags()
	pf.StringVar(&a.flags.configDir, "config-dir", "", "configuration directory (default: $(CWD)/.statics)")
	pf.StringVar(&a.flags.dataDir, "data-dir", "", "data directory (default: $(CWD)/.statics-db)")
	pf.BoolVarP(&a.flags.verbose, "verbose", "v", false, "log debug output to stderr")
	pf.StringVar(&a.flags.color, "color", "auto", "colorize output: auto, always or never")

	root.AddCommand(newVersionCmd())
	root.AddCommand(newInitCmd(a))
	root.AddCommand(newDemoCmd(a))
	root.AddCommand(newStateCmd(a))
	root.AddCommand(newGenCmd(a))
	root.AddCommand(newSizeCmd(a))

	return root
}

// Execute runs the root command and returns the process exit code.
func Execute() int {
	return run(NewRootCmd(), os.Args[1:], os.Stderr)
}

func run(root *cobra.Command, args []string, stderr io.Writer) int {
	root.SetArgs(args)
	err := root.Execute()
	if err == nil {
		return exitSuccess
	}
	fmt.Fprintf(stderr, "statics: %s\n", err)

	var ce *codeError
	if errors.As(err, &ce) {
		return ce.code
	}
	return exitUserError
}

// setup resolves directories, loads the configuration and installs the
// logger before any subcommand runs.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	a.log = newLogger(a.flags.verbose, cmd.ErrOrStderr())
	cell.SetLogger(a.log.Named("cell"))
	gen.SetLogger(a.log.Named("gen"))

	configDir, err := paths.ResolveConfigDir(a.flags.configDir)
	if err != nil {
		return sysError(fmt.Errorf("resolve config dir: %w", err))
	}
	cfg, err := loadConfig(configDir)
	if err != nil {
		return sysError(err)
	}
	if err := cfg.BindPFlag(cfgKeyColor, cmd.Root().PersistentFlags().Lookup("color")); err != nil {
		return sysError(err)
	}

	dataDir, err := paths.ResolveDataDir(a.flags.dataDir, cfg.GetString(cfgKeyDataDir))
	if err != nil {
		return sysError(fmt.Errorf("resolve data dir: %w", err))
	}

	a.cfg, a.configDir, a.dataDir = cfg, configDir, dataDir
	a.log.Debug("configuration loaded",
		zap.String("config_dir", configDir),
		zap.String("data_dir", dataDir),
		zap.String("config_file", cfg.ConfigFileUsed()))
	return nil
}

// colored reports whether output written to w should carry color.
func (a *app) colored(w io.Writer) (bool, error) {
	on, err := useColor(a.cfg.GetString(cfgKeyColor), w)
	if err != nil {
		return false, userError(err)
	}
	return on, nil
}

// openStore opens the cell store in the resolved data directory.
func (a *app) openStore() (*cell.Store, error) {
	s, err := cell.Open(a.dataDir)
	if err != nil {
		return nil, sysError(fmt.Errorf("open data dir: %w", err))
	}
	return s, nil
}

// codeError carries the exit code an error maps to.
type codeError struct {
	code int
	err  error
}

func (e *codeError) Error() string { return e.err.Error() }
func (e *codeError) Unwrap() error { return e.err }

func userError(err error) error { return &codeError{code: exitUserError, err: err} }
func sysError(err error) error  { return &codeError{code: exitSysError, err: err} }
