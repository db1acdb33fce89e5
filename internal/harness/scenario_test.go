package harness

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/rfn/internal/repr"
)

func TestParseScenario_Defaults(t *testing.T) {
	s, err := ParseScenario([]byte(`
name: defaults
description: ownership and args default
fixture: const42
calls:
  - expect: 42
`))
	require.NoError(t, err)

	assert.Equal(t, repr.Owned, s.Ownership)
	require.Len(t, s.Calls, 1)
	assert.Equal(t, []any{}, s.Calls[0].Args)
	assert.Equal(t, 42, s.Calls[0].Expect)
	assert.Nil(t, s.ExpectReleases)
}

func TestParseScenario_ExpectReleases(t *testing.T) {
	s, err := ParseScenario([]byte(`
name: releases
description: explicit release count
fixture: counter
expect_releases: 0
`))
	require.NoError(t, err)
	require.NotNil(t, s.ExpectReleases)
	assert.Equal(t, int64(0), *s.ExpectReleases)
}

func TestParseScenario_Rejects(t *testing.T) {
	tests := []struct {
		name    string
		yaml    string
		wantErr string
	}{
		{
			name:    "unknown key",
			yaml:    "name: x\ndescription: d\nfixture: const42\nflow: []\n",
			wantErr: "field flow not found",
		},
		{
			name:    "missing name",
			yaml:    "description: d\nfixture: const42\n",
			wantErr: "name is required",
		},
		{
			name:    "missing description",
			yaml:    "name: x\nfixture: const42\n",
			wantErr: "description is required",
		},
		{
			name:    "missing fixture",
			yaml:    "name: x\ndescription: d\n",
			wantErr: "fixture is required",
		},
		{
			name:    "bad ownership",
			yaml:    "name: x\ndescription: d\nfixture: const42\nownership: leased\n",
			wantErr: `ownership "leased"`,
		},
		{
			name:    "negative releases",
			yaml:    "name: x\ndescription: d\nfixture: const42\nexpect_releases: -1\n",
			wantErr: "expect_releases must not be negative",
		},
		{
			name:    "malformed",
			yaml:    "name: [",
			wantErr: "failed to parse YAML",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseScenario([]byte(tt.yaml))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestLoadScenario_MissingFile(t *testing.T) {
	_, err := LoadScenario(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read scenario file")
}

func TestLoadScenarios_SortedByFileName(t *testing.T) {
	scenarios, err := LoadScenarios("testdata/scenarios")
	require.NoError(t, err)

	names := make([]string, len(scenarios))
	for i, s := range scenarios {
		names[i] = s.Name
	}
	assert.Equal(t, []string{
		"mut_append_borrowed",
		"mut_counter",
		"once_strlen",
		"read_const42",
		"read_describe",
	}, names)
}

func TestLoadScenarios_Empty(t *testing.T) {
	_, err := LoadScenarios(t.TempDir())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no scenario files found")
}

func TestLoadScenarios_ReportsFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "bad.yml"), []byte("name: x\n"), 0o644))

	_, err := LoadScenarios(dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "bad.yml")
}
