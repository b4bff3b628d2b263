//go:build mage

package main

import (
	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

// Test groups test targets (all, unit).
type Test mg.Namespace

// All runs every test, including binary and compile-failure tests.
func (Test) All() error {
	return sh.RunV(binGo, "test", "-v", "./...")
}

// Unit runs the tests in short mode.
func (Test) Unit() error {
	return sh.RunV(binGo, "test", "-short", "./...")
}
