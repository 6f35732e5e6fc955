// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package engine

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pdiddy/oft2eml/pkg/types"
)

// Subprocess runs the conversion entry point under a resolved interpreter
// as `<runtime> <entryPoint> <input> <output>`. One attempt per request,
// no retries, no timeout: a hung entry point hangs its background task.
type Subprocess struct {
	runtime    string
	entryPoint string
	exec       executor
}

// NewSubprocess builds an engine around the interpreter at runtimePath
// and the given entry-point script.
func NewSubprocess(runtimePath, entryPoint string) *Subprocess {
	return newSubprocess(runtimePath, entryPoint, osExecutor{})
}

func newSubprocess(runtimePath, entryPoint string, exec executor) *Subprocess {
	return &Subprocess{runtime: runtimePath, entryPoint: entryPoint, exec: exec}
}

// Convert invokes the entry point and maps its exit status onto an
// Outcome. The input is re-checked here because resolution and invocation
// can be separated in time and the file may have been removed. The working
// directory is the directory the interpreter was resolved from, not the
// ambient CWD, so co-located packages stay importable.
func (s *Subprocess) Convert(req types.Request) types.Outcome {
	if _, err := os.Stat(req.Input); err != nil {
		return types.Failure(req, types.InputNotFound,
			fmt.Sprintf("input %s: %v", req.Input, err))
	}

	workDir := filepath.Dir(s.runtime)
	res, err := s.exec.RunCapture(workDir, s.runtime, s.entryPoint, req.Input, req.Output)
	if err != nil {
		return types.Failure(req, types.ConversionFailed,
			fmt.Sprintf("spawning %s: %v", s.runtime, err))
	}
	if res.exitCode != 0 {
		return types.Failure(req, types.ConversionFailed, s.diagnostic(req, workDir, res))
	}

	// Exit zero and a written output file are independent facts; verify
	// the file before reporting success.
	info, err := os.Stat(req.Output)
	if err != nil {
		return types.Failure(req, types.OutputMissing,
			fmt.Sprintf("entry point exited 0 but no output at %s: %v", req.Output, err))
	}
	return types.Success(req, req.Output, info.Size())
}

// diagnostic assembles enough context to reproduce the failed run from a
// terminal: the request ID, captured streams (stderr first, verbatim),
// interpreter, entry point, working directory, and the full argument list.
// Arguments are quoted so paths with spaces paste back into a shell intact.
func (s *Subprocess) diagnostic(req types.Request, workDir string, res processResult) string {
	var b strings.Builder
	fmt.Fprintf(&b, "entry point exited %d\n", res.exitCode)
	if res.stderr != "" {
		fmt.Fprintf(&b, "stderr:\n%s\n", res.stderr)
	}
	if res.stdout != "" {
		fmt.Fprintf(&b, "stdout:\n%s\n", res.stdout)
	}
	fmt.Fprintf(&b, "request: %s\n", req.ID)
	fmt.Fprintf(&b, "runtime: %s\n", s.runtime)
	fmt.Fprintf(&b, "entry point: %s\n", s.entryPoint)
	fmt.Fprintf(&b, "workdir: %s\n", workDir)
	fmt.Fprintf(&b, "args: %q %q %q %q\n", s.runtime, s.entryPoint, req.Input, req.Output)
	return b.String()
}
