// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package engine invokes the external conversion entry point and folds
// the child-process result into a structured Outcome. The OFT/MSG bytes
// stay opaque here; parsing and MIME generation belong to the entry point.
// See docs/ARCHITECTURE § Components, § Error model.
package engine

import (
	"bytes"
	"errors"
	"os/exec"

	"github.com/pdiddy/oft2eml/pkg/types"
)

// Engine transforms one OFT/MSG file into an EML file. The subprocess
// implementation delegates to a Python entry point; a future native
// parser could satisfy the same interface without touching orchestration.
type Engine interface {
	Convert(req types.Request) types.Outcome
}

// processResult records one child-process invocation: exit code and the
// fully captured standard streams. It never leaves this package except
// folded into an Outcome diagnostic.
type processResult struct {
	exitCode int
	stdout   string
	stderr   string
}

// executor abstracts process spawning for testing.
type executor interface {
	// RunCapture runs name with args in dir, capturing both streams fully
	// until exit. A non-zero exit status is reported in the result, not as
	// an error; the error return is reserved for spawn failures.
	RunCapture(dir, name string, args ...string) (processResult, error)
}

// osExecutor is the production executor backed by os/exec.
type osExecutor struct{}

func (osExecutor) RunCapture(dir, name string, args ...string) (processResult, error) {
	cmd := exec.Command(name, args...)
	cmd.Dir = dir

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	res := processResult{stdout: stdout.String(), stderr: stderr.String()}
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			res.exitCode = exitErr.ExitCode()
			return res, nil
		}
		// Spawn itself failed: missing binary, not executable, permissions.
		return res, err
	}
	return res, nil
}
