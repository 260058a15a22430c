//go:build mage

package main

import (
	"os"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

const binary = "flashy"

// Default target to run when none is specified
var Default = Build

// Build compiles the flashy binary
func Build() error {
	return sh.RunV("go", "build", "-o", binary, "./cmd/flashy")
}

// Test runs all unit tests
func Test() error {
	return sh.RunV("go", "test", "./...")
}

// Vet runs go vet over the module
func Vet() error {
	return sh.RunV("go", "vet", "./...")
}

// Install builds and installs flashy into $GOPATH/bin
func Install() error {
	mg.Deps(Test)
	return sh.RunV("go", "install", "./cmd/flashy")
}

// Clean removes build artifacts
func Clean() error {
	return os.RemoveAll(binary)
}
