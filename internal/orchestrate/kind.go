// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package orchestrate

import (
	"path/filepath"
	"strings"
)

// Kind classifies an input file at the orchestration boundary.
type Kind int

const (
	KindUnknown Kind = iota
	KindOFT
	KindMSG
)

func (k Kind) String() string {
	switch k {
	case KindOFT:
		return "oft"
	case KindMSG:
		return "msg"
	default:
		return "unknown"
	}
}

// Classify maps a filename onto a Kind. Only the extension is consulted;
// the file bytes stay opaque to this layer. OFT templates share the MSG
// compound-document format, so both kinds route to the same engine.
func Classify(path string) Kind {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".oft":
		return KindOFT
	case ".msg":
		return KindMSG
	default:
		return KindUnknown
	}
}
