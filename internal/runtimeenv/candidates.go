// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package runtimeenv

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"go.yaml.in/yaml/v3"
)

// DefaultCandidates returns the built-in candidate list. The bundled
// virtual environment next to the executable ranks first so a packaged
// app prefers its own interpreter over system installs; well-known
// per-OS install locations follow.
func DefaultCandidates(exeDir string) []Candidate {
	var cands []Candidate
	for _, p := range bundledPaths(exeDir) {
		cands = append(cands, Candidate{Path: p, Rank: len(cands), Source: "bundled"})
	}
	for _, p := range systemPaths() {
		cands = append(cands, Candidate{Path: p, Rank: len(cands), Source: "system"})
	}
	return cands
}

// FromPaths turns an ordered path list into candidates with ranks
// assigned from position.
func FromPaths(paths []string, source string) []Candidate {
	cands := make([]Candidate, len(paths))
	for i, p := range paths {
		cands[i] = Candidate{Path: p, Rank: i, Source: source}
	}
	return cands
}

// bundledPaths lists virtual-environment interpreters relative to the
// install location: a venv sibling of the binary, and the Resources
// layout used inside a macOS app bundle.
func bundledPaths(exeDir string) []string {
	bin, py := "bin", "python3"
	if runtime.GOOS == "windows" {
		bin, py = "Scripts", "python.exe"
	}
	return []string{
		filepath.Join(exeDir, "venv", bin, py),
		filepath.Join(exeDir, "..", "Resources", "venv", bin, py),
	}
}

// systemPaths lists well-known interpreter install locations for the
// current OS, most likely first. Homebrew uses /opt/homebrew/bin on
// Apple Silicon and /usr/local/bin on Intel Macs; MacPorts uses
// /opt/local/bin.
func systemPaths() []string {
	switch runtime.GOOS {
	case "darwin":
		return []string{
			"/opt/homebrew/bin/python3",
			"/usr/local/bin/python3",
			"/opt/local/bin/python3",
			"/usr/bin/python3",
		}
	case "linux":
		return []string{
			"/usr/local/bin/python3",
			"/usr/bin/python3",
			"/snap/bin/python3",
		}
	case "windows":
		pf := os.Getenv("ProgramFiles")
		if pf == "" {
			pf = `C:\Program Files`
		}
		return []string{
			filepath.Join(pf, "Python312", "python.exe"),
			filepath.Join(pf, "Python311", "python.exe"),
			filepath.Join(os.Getenv("LOCALAPPDATA"), "Programs", "Python", "Python312", "python.exe"),
		}
	default:
		return nil
	}
}

// CandidatesFile is the on-disk YAML override for the candidate list.
// When supplied it replaces the built-in defaults entirely.
type CandidatesFile struct {
	// Candidates are interpreter paths, highest priority first.
	Candidates []string `yaml:"candidates"`
}

// ReadCandidatesFile loads a candidate list override from a YAML file.
func ReadCandidatesFile(path string) ([]Candidate, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading candidates file: %w", err)
	}
	var cf CandidatesFile
	if err := yaml.Unmarshal(data, &cf); err != nil {
		return nil, fmt.Errorf("parsing candidates file %s: %w", path, err)
	}
	if len(cf.Candidates) == 0 {
		return nil, fmt.Errorf("candidates file %s lists no interpreter paths", path)
	}
	return FromPaths(cf.Candidates, "config"), nil
}
