//go:build mage

// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

// Package main provides build targets for the sierra project using Mage.
//
// Usage:
//
//	mage build             Compile sierra binary to bin/
//	mage test:all          Run all tests (unit + integration)
//	mage test:unit         Run only unit tests (exclude tests/)
//	mage test:integration  Build, then run only integration tests
//	mage grammar           Compile the built-in grammar to sierra.dtd
//	mage lint              Run golangci-lint
//	mage clean             Remove build artifacts
//	mage install           Install sierra to GOPATH/bin
//	mage stats             Print Go LOC and documentation word counts
package main

import (
	"os"
	"path/filepath"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

const (
	binGo      = "go"
	binaryName = "sierra"
	binaryDir  = "bin"
	cmdDir     = "./cmd/sierra"
)

// Build compiles the sierra binary to bin/.
func Build() error {
	if err := os.MkdirAll(binaryDir, 0o755); err != nil {
		return err
	}
	return sh.RunV(binGo, "build", "-v", "-o", filepath.Join(binaryDir, binaryName), cmdDir)
}

// Grammar builds the binary and compiles the built-in grammar to sierra.dtd.
func Grammar() error {
	mg.Deps(Build)
	return sh.RunV(filepath.Join(binaryDir, binaryName), "compile")
}

// Clean removes build artifacts.
func Clean() error {
	if err := os.RemoveAll(binaryDir); err != nil {
		return err
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
