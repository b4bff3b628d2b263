//go:build mage

// Package main provides build targets for the statics project using Mage.
//
// Usage:
//
//	mage build        Compile statics and regvet to bin/
//	mage test:all     Run all tests
//	mage test:unit    Run tests in short mode (no binary or compile fixtures)
//	mage lint         Run golangci-lint
//	mage vet          Run go vet and regvet
//	mage generate     Generate entry and raw-static benchmark packages
//	mage size         Build the benchmark packages and compare their sizes
//	mage stats        Print Go lines of code
//	mage clean        Remove build artifacts
//	mage install      Install statics to GOPATH/bin
package main

import (
	"os"
	"path/filepath"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

const (
	binGo      = "go"
	binaryName = "statics"
	binaryDir  = "bin"
	cmdDir     = "./cmd/statics"
	vetName    = "regvet"
	vetDir     = "./cmd/regvet"
)

// Build compiles the statics and regvet binaries to bin/.
func Build() error {
	if err := os.MkdirAll(binaryDir, 0o755); err != nil {
		return err
	}
	if err := sh.RunV(binGo, "build", "-v", "-o", filepath.Join(binaryDir, binaryName), cmdDir); err != nil {
		return err
	}
	return sh.RunV(binGo, "build", "-o", filepath.Join(binaryDir, vetName), vetDir)
}

// Clean removes build artifacts.
func Clean() error {
	for _, dir := range []string{binaryDir, benchDir} {
		if err := os.RemoveAll(dir); err != nil {
			return err
		}
	}
	return sh.RunV(binGo, "clean")
}

// Install builds and copies the binary to GOPATH/bin.
func Install() error {
	mg.Deps(Build)
	gopath, err := sh.Output(binGo, "env", "GOPATH")
	if err != nil {
		return err
	}
	src := filepath.Join(binaryDir, binaryName)
	dst := filepath.Join(gopath, "bin", binaryName)
	return sh.Copy(dst, src)
}
