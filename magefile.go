//go:build mage

package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

const binaryName = "wordlearner"

// Build compiles the wordlearner binary into ./bin.
func Build() error {
	fmt.Println("Building", binaryName, "...")
	if err := os.MkdirAll("bin", 0755); err != nil {
		return err
	}
	return sh.RunV("go", "build", "-o", filepath.Join("bin", binaryName), "./cmd/wordlearner")
}

// Test runs the unit tests.
func Test() error {
	return sh.RunV("go", "test", "./...")
}

// Vet runs go vet over the module.
func Vet() error {
	return sh.RunV("go", "vet", "./...")
}

// Install builds and installs the binary with go install.
func Install() error {
	mg.Deps(Test)
	return sh.RunV("go", "install", "./cmd/wordlearner")
}

// Clean removes build artifacts.
func Clean() error {
	return sh.Rm("bin")
}
