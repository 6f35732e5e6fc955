// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "testing"

func TestNewRequest(t *testing.T) {
	a := NewRequest("in.oft", "out.eml")
	b := NewRequest("in.oft", "out.eml")

	if a.Input != "in.oft" || a.Output != "out.eml" {
		t.Errorf("unexpected request fields: %+v", a)
	}
	if a.ID == "" || a.ID == b.ID {
		t.Error("request IDs must be unique and non-empty")
	}
}

func TestOutcomeTagging(t *testing.T) {
	req := NewRequest("in.oft", "out.eml")

	s := Success(req, "out.eml", 128)
	if !s.OK() || s.Kind != FailureNone || s.Size != 128 {
		t.Errorf("unexpected success outcome: %+v", s)
	}

	f := Failure(req, ConversionFailed, "boom")
	if f.OK() || f.Kind != ConversionFailed || f.Diagnostic != "boom" {
		t.Errorf("unexpected failure outcome: %+v", f)
	}
	if f.OutputPath != "" || f.Size != 0 {
		t.Error("failure outcome must not carry success fields")
	}
}
