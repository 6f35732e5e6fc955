//go:build mage

// Package main contains Mage build targets for oft2eml developer tooling.
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

const (
	binDir  = "bin"
	binName = "oft2eml"
	cmdPkg  = "./cmd/oft2eml"
)

// Build compiles the CLI binary into bin/.
func Build() error {
	if err := os.MkdirAll(binDir, 0o755); err != nil {
		return fmt.Errorf("creating %s: %w", binDir, err)
	}
	out := filepath.Join(binDir, binName)
	if err := sh.RunV("go", "build", "-o", out, cmdPkg); err != nil {
		return fmt.Errorf("go build: %w", err)
	}
	fmt.Printf("Built %s\n", out)
	return nil
}

// Test runs the full test suite.
func Test() error {
	return sh.RunV("go", "test", "./...")
}

// Package builds the binary and stages the conversion entry point next to
// it, matching the layout the default entry-point path expects at install
// time.
func Package() error {
	mg.Deps(Build)

	scriptsDir := filepath.Join(binDir, "scripts")
	if err := os.MkdirAll(scriptsDir, 0o755); err != nil {
		return fmt.Errorf("creating %s: %w", scriptsDir, err)
	}
	src := filepath.Join("scripts", "oft_to_eml.py")
	dst := filepath.Join(scriptsDir, "oft_to_eml.py")
	if err := copyFile(src, dst); err != nil {
		return err
	}
	fmt.Printf("Staged %s\n", dst)
	return nil
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return fmt.Errorf("opening %s: %w", src, err)
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return fmt.Errorf("creating %s: %w", dst, err)
	}
	defer out.Close()

	if _, err := io.Copy(out, in); err != nil {
		return fmt.Errorf("copying %s: %w", src, err)
	}
	return nil
}
