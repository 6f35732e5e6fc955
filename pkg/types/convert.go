// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines the value types and configuration shared across
// the oft2eml packages.
package types

import "github.com/google/uuid"

// FailureKind classifies why a conversion did not produce an EML file.
type FailureKind string

const (
	// FailureNone marks a successful outcome.
	FailureNone FailureKind = ""

	// RuntimeNotFound means no interpreter candidate exists. User-actionable:
	// install Python with extract-msg or point oft2eml at one.
	RuntimeNotFound FailureKind = "runtime-not-found"

	// InputNotFound means the input file vanished or was never a convertible file.
	InputNotFound FailureKind = "input-not-found"

	// ConversionFailed means the entry point ran and reported failure, or
	// could not be launched at all.
	ConversionFailed FailureKind = "conversion-failed"

	// OutputMissing means the entry point exited zero but no output file is
	// observable on disk. Exit status and a written file are independent
	// facts; both are verified.
	OutputMissing FailureKind = "output-missing-after-success"
)

// Request holds the input and output paths for one conversion. It is
// created per drop/invocation, consumed by exactly one orchestration call,
// and discarded once the Outcome is delivered. Never persisted or reused.
type Request struct {
	// ID identifies the request in status output and diagnostics.
	ID string

	// Input is the OFT/MSG file to convert.
	Input string

	// Output is the EML path the entry point must write.
	Output string
}

// NewRequest builds a Request with a fresh ID.
func NewRequest(input, output string) Request {
	return Request{ID: uuid.NewString(), Input: input, Output: output}
}

// Outcome is the tagged result of one conversion: either a written EML
// file with its on-disk size, or a failure kind with diagnostic text.
// Produced exactly once per Request, never partially populated.
type Outcome struct {
	Request Request

	// OutputPath and Size describe the written file. Set only on success;
	// Size is measured by an independent stat, not inferred from exit status.
	OutputPath string
	Size       int64

	// Kind and Diagnostic describe a failure. Diagnostic preserves captured
	// process output verbatim so the run can be reproduced from a terminal.
	Kind       FailureKind
	Diagnostic string
}

// OK reports whether the conversion produced an output file.
func (o Outcome) OK() bool { return o.Kind == FailureNone }

// Success builds the outcome for a verified output file.
func Success(req Request, path string, size int64) Outcome {
	return Outcome{Request: req, OutputPath: path, Size: size}
}

// Failure builds the outcome for a failed conversion.
func Failure(req Request, kind FailureKind, diagnostic string) Outcome {
	return Outcome{Request: req, Kind: kind, Diagnostic: diagnostic}
}
