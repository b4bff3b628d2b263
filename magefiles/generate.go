//go:build mage

package main

import (
	"os"
	"path/filepath"
	"strconv"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

const (
	benchDir = "bench"
	// benchCount is the number of values generated into each benchmark package.
	benchCount = 1000
)

// benchKinds maps each gen subcommand to its benchmark directory.
var benchKinds = map[string]string{
	"entries": filepath.Join(benchDir, "entries"),
	"raw":     filepath.Join(benchDir, "raw"),
}

// Generate writes the entry and raw-static benchmark packages under bench/.
func Generate() error {
	mg.Deps(Build)
	bin := filepath.Join(binaryDir, binaryName)
	for kind, dir := range benchKinds {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
		err := sh.RunV(bin, "gen", kind, strconv.Itoa(benchCount),
			"--out-dir", dir, "--package", "main")
		if err != nil {
			return err
		}
		mainFile := filepath.Join(dir, "main.go")
		if err := os.WriteFile(mainFile, []byte("package main\n\nfunc main() {}\n"), 0o644); err != nil {
			return err
		}
	}
	return nil
}
