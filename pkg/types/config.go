// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// ResolverConfig holds settings for interpreter discovery.
type ResolverConfig struct {
	// Runtime pins an explicit interpreter path, skipping candidate probing.
	Runtime string `json:"runtime,omitempty" yaml:"runtime,omitempty"`

	// Candidates overrides the built-in candidate list, highest priority first.
	Candidates []string `json:"candidates,omitempty" yaml:"candidates,omitempty"`

	// CandidatesFile points at a YAML file listing candidate paths.
	CandidatesFile string `json:"candidates_file,omitempty" yaml:"candidates_file,omitempty"`

	// RequireCapability gates the resolved interpreter on a successful
	// extract-msg import probe. Off by default: existence alone selects.
	RequireCapability bool `json:"require_capability" yaml:"require_capability"`
}

// EngineConfig holds settings for the subprocess conversion engine.
type EngineConfig struct {
	// EntryPoint is the conversion script handed to the interpreter
	// (default: scripts/oft_to_eml.py next to the executable).
	EntryPoint string `json:"entry_point" yaml:"entry_point"`
}

// ConvertConfig groups the settings for one conversion run.
type ConvertConfig struct {
	Resolver ResolverConfig `json:"resolver" yaml:"resolver"`
	Engine   EngineConfig   `json:"engine" yaml:"engine"`

	// OutDir redirects converted files; empty writes next to each input.
	OutDir string `json:"out_dir,omitempty" yaml:"out_dir,omitempty"`

	// Jobs bounds concurrent conversions in batch mode (default 4).
	Jobs int `json:"jobs" yaml:"jobs"`
}
