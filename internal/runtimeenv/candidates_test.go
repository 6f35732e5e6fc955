// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package runtimeenv

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultCandidates(t *testing.T) {
	cands := DefaultCandidates("/Applications/oft2eml.app/Contents/MacOS")
	require.NotEmpty(t, cands)

	// Bundled virtual-environment interpreters rank ahead of system installs.
	assert.Equal(t, "bundled", cands[0].Source)
	sawSystem := false
	for _, c := range cands {
		if c.Source == "system" {
			sawSystem = true
		}
		if sawSystem {
			assert.Equal(t, "system", c.Source, "bundled candidate ranked after a system one")
		}
	}
	assert.True(t, sawSystem, "expected system install locations in the defaults")

	// Ranks are strictly increasing, so probing order is stable.
	for i := 1; i < len(cands); i++ {
		assert.Greater(t, cands[i].Rank, cands[i-1].Rank)
	}

	// The list is fixed configuration data: two calls agree.
	assert.Equal(t, cands, DefaultCandidates("/Applications/oft2eml.app/Contents/MacOS"))
}

func TestFromPaths(t *testing.T) {
	cands := FromPaths([]string{"/x/python3", "/y/python3"}, "config")
	require.Len(t, cands, 2)
	assert.Equal(t, Candidate{Path: "/x/python3", Rank: 0, Source: "config"}, cands[0])
	assert.Equal(t, Candidate{Path: "/y/python3", Rank: 1, Source: "config"}, cands[1])
}

func TestReadCandidatesFile(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    []string
		errMsg  string
	}{
		{
			name: "ordered path list",
			content: "candidates:\n" +
				"  - /opt/custom/bin/python3\n" +
				"  - /usr/bin/python3\n",
			want: []string{"/opt/custom/bin/python3", "/usr/bin/python3"},
		},
		{
			name:    "empty list rejected",
			content: "candidates: []\n",
			errMsg:  "no interpreter paths",
		},
		{
			name:    "malformed yaml rejected",
			content: "candidates: [unclosed\n",
			errMsg:  "parsing candidates file",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "candidates.yaml")
			require.NoError(t, os.WriteFile(path, []byte(tt.content), 0o644))

			cands, err := ReadCandidatesFile(path)
			if tt.errMsg != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errMsg)
				return
			}
			require.NoError(t, err)
			require.Len(t, cands, len(tt.want))
			for i, p := range tt.want {
				assert.Equal(t, p, cands[i].Path)
				assert.Equal(t, i, cands[i].Rank)
				assert.Equal(t, "config", cands[i].Source)
			}
		})
	}
}

func TestReadCandidatesFileMissing(t *testing.T) {
	_, err := ReadCandidatesFile(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "reading candidates file")
}
