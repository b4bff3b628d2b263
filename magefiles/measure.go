//go:build mage

package main

import (
	"path/filepath"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

// Size builds the benchmark packages and compares the binaries with
// statics size. A positive delta is the cost of the registry.
func Size() error {
	mg.Deps(Generate)
	bins := map[string]string{}
	for kind, dir := range benchKinds {
		bin := filepath.Join(binaryDir, "bench-"+kind)
		if err := sh.RunV(binGo, "build", "-o", bin, "./"+dir); err != nil {
			return err
		}
		bins[kind] = bin
	}
	return sh.RunV(filepath.Join(binaryDir, binaryName), "size", bins["entries"], bins["raw"])
}
