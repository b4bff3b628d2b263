package cli

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/vladislavmarkov/data-registry/internal/paths"
)

func newInitCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Initialize statics configuration and storage",
		Long:  "Create the configuration and data directories, write a default config.yaml\nand create the state database.",
		Args:  cobra.NoArgs,
		RunE:  a.runInit,
	}
}

func (a *app) runInit(cmd *cobra.Command, _ []string) error {
	if err := os.MkdirAll(a.configDir, 0o755); err != nil {
		return sysError(fmt.Errorf("create config directory: %w", err))
	}

	configPath := paths.ConfigFile(a.configDir)
	written, err := writeConfigIfMissing(configPath, a.flags.dataDir)
	if err != nil {
		return sysError(fmt.Errorf("write config: %w", err))
	}
	if written {
		a.log.Debug("default config written", zap.String("path", configPath))
	}

	s, err := a.openStore()
	if err != nil {
		return err
	}
	if err := s.Close(); err != nil {
		return sysError(fmt.Errorf("close data dir: %w", err))
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, "statics initialized")
	fmt.Fprintf(out, "config: %s\n", configPath)
	fmt.Fprintf(out, "data:   %s\n", s.Path())
	return nil
}

// writeConfigIfMissing creates config.yaml with default values when the file
// does not exist. A data directory given on the command line is recorded.
func writeConfigIfMissing(path, dataDir string) (bool, error) {
	_, err := os.Stat(path)
	if err == nil {
		return false, nil
	}
	if !errors.Is(err, fs.ErrNotExist) {
		return false, fmt.Errorf("stat config file: %w", err)
	}

	cfg := defaultConfig()
	if dataDir != "" {
		if cfg.DataDir, err = filepath.Abs(dataDir); err != nil {
			return false, err
		}
	}

	data, err := yaml.Marshal(&cfg)
	if err != nil {
		return false, fmt.Errorf("marshal config: %w", err)
	}
	return true, os.WriteFile(path, data, 0o644)
}
