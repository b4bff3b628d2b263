// Package paths resolves the configuration and data directories of the
// statics command.
package paths

import (
	"os"
	"path/filepath"
)

// CWD-relative directory names used when nothing overrides them.
const (
	DefaultConfigDirName = ".statics"
	DefaultDataDirName   = ".statics-db"
)

// Environment variable names for directory overrides.
const (
	EnvConfigDir = "STATICS_CONFIG_DIR"
	EnvDataDir   = "STATICS_DATA_DIR"
)

// ConfigFileName is the configuration file kept in the config directory.
const ConfigFileName = "config.yaml"

// getwd is overridden in tests.
var getwd = os.Getwd

// ResolveConfigDir returns the configuration directory following the
// precedence chain: flag > STATICS_CONFIG_DIR env > $(CWD)/.statics.
// The result is always absolute.
func ResolveConfigDir(flag string) (string, error) {
	if flag != "" {
		return filepath.Abs(flag)
	}
	if env := os.Getenv(EnvConfigDir); env != "" {
		return filepath.Abs(env)
	}
	return cwdJoin(DefaultConfigDirName)
}

// ResolveDataDir returns the data directory following the precedence chain:
// flag > data_dir from config.yaml > STATICS_DATA_DIR env > $(CWD)/.statics-db.
// The result is always absolute.
func ResolveDataDir(flag, configValue string) (string, error) {
	if flag != "" {
		return filepath.Abs(flag)
	}
	if configValue != "" {
		return filepath.Abs(configValue)
	}
	if env := os.Getenv(EnvDataDir); env != "" {
		return filepath.Abs(env)
	}
	return cwdJoin(DefaultDataDirName)
}

// ConfigFile returns the path of the configuration file in configDir.
func ConfigFile(configDir string) string {
	return filepath.Join(configDir, ConfigFileName)
}

func cwdJoin(name string) (string, error) {
	cwd, err := getwd()
	if err != nil {
		return "", err
	}
	return filepath.Join(cwd, name), nil
}
