// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package orchestrate

import "testing"

func TestClassify(t *testing.T) {
	tests := []struct {
		path string
		want Kind
	}{
		{"template.oft", KindOFT},
		{"TEMPLATE.OFT", KindOFT},
		{"/some/dir/message.msg", KindMSG},
		{"message.Msg", KindMSG},
		{"document.eml", KindUnknown},
		{"archive.oft.zip", KindUnknown},
		{"noextension", KindUnknown},
		{"", KindUnknown},
	}
	for _, tt := range tests {
		if got := Classify(tt.path); got != tt.want {
			t.Errorf("Classify(%q) = %v, want %v", tt.path, got, tt.want)
		}
	}
}

func TestKindString(t *testing.T) {
	if KindOFT.String() != "oft" || KindMSG.String() != "msg" || KindUnknown.String() != "unknown" {
		t.Error("unexpected Kind string values")
	}
}
