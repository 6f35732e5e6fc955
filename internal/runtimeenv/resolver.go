// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package runtimeenv locates a Python interpreter able to run the OFT
// conversion entry point. Candidates are probed in rank order and the
// first path that exists on disk wins; capability validation (importing
// the extract-msg parsing library) is a separate, optional step that
// callers may skip.
// See docs/ARCHITECTURE § Components.
package runtimeenv

import (
	"fmt"
	"os"
	"os/exec"
	"sort"
	"strings"
)

// capabilitySentinel is printed by the probe when the parsing library
// imports cleanly.
const capabilitySentinel = "extract-msg-ok"

// probeScript is the one-liner handed to the interpreter's -c flag.
const probeScript = `import extract_msg; print("extract-msg-ok")`

// Candidate is one filesystem location that may hold a usable interpreter.
type Candidate struct {
	// Path is the absolute interpreter path.
	Path string

	// Rank orders probing; lower is tried first.
	Rank int

	// Source labels where the candidate came from ("bundled", "system",
	// "config", "flag") for doctor output.
	Source string
}

// executor abstracts probe execution for testing.
type executor interface {
	// RunOutput runs name with args and returns its combined stdout.
	RunOutput(name string, args ...string) (string, error)
}

// osExecutor is the production executor backed by os/exec.
type osExecutor struct{}

func (osExecutor) RunOutput(name string, args ...string) (string, error) {
	out, err := exec.Command(name, args...).Output()
	return string(out), err
}

// Resolver probes an ordered candidate list. The list is injected at
// construction so tests and callers can substitute their own fixtures;
// there is no package-level mutable configuration.
type Resolver struct {
	candidates []Candidate
	exec       executor
}

// New returns a Resolver over the given candidates, sorted by rank.
// Sorting is stable, so equal ranks keep their given order.
func New(candidates []Candidate) *Resolver {
	return newResolver(candidates, osExecutor{})
}

func newResolver(candidates []Candidate, exec executor) *Resolver {
	sorted := make([]Candidate, len(candidates))
	copy(sorted, candidates)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Rank < sorted[j].Rank })
	return &Resolver{candidates: sorted, exec: exec}
}

// Candidates returns the probe order. The slice is a copy.
func (r *Resolver) Candidates() []Candidate {
	out := make([]Candidate, len(r.candidates))
	copy(out, r.candidates)
	return out
}

// Resolve returns the first candidate whose path exists as a regular file.
// Existence alone selects; capability is checked separately via Validate.
// The boolean is false when no candidate exists, which is an expected
// outcome communicated as data, not an error.
func (r *Resolver) Resolve() (Candidate, bool) {
	for _, c := range r.candidates {
		if info, err := os.Stat(c.Path); err == nil && !info.IsDir() {
			return c, true
		}
	}
	return Candidate{}, false
}

// Exists reports whether a single candidate path exists as a regular file.
func Exists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}

// Validate spawns the interpreter at path with a probe that imports the
// parsing library and prints a sentinel. Exit status zero plus the
// sentinel on stdout signals the capability is present.
func (r *Resolver) Validate(path string) error {
	out, err := r.exec.RunOutput(path, "-c", probeScript)
	if err != nil {
		return fmt.Errorf("capability probe failed for %s: %w", path, err)
	}
	if !strings.Contains(out, capabilitySentinel) {
		return fmt.Errorf("capability probe for %s exited cleanly but printed %q, want %q",
			path, strings.TrimSpace(out), capabilitySentinel)
	}
	return nil
}
