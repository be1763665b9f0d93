/*
Copyright © 2025 windows-snapshot authors
SPDX-License-Identifier: Apache-2.0
*/
package oci

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseOutputTarget_LocalPath(t *testing.T) {
	ref, err := ParseOutputTarget("/tmp/snapshot.json")
	require.NoError(t, err)
	assert.False(t, ref.IsOCI)
	assert.Equal(t, "/tmp/snapshot.json", ref.LocalPath)
	assert.Equal(t, "/tmp/snapshot.json", ref.String())
	assert.Empty(t, ref.ImageReference())
}

func TestParseOutputTarget_OCI(t *testing.T) {
	tests := []struct {
		name       string
		target     string
		registry   string
		repository string
		tag        string
	}{
		{
			name:       "with tag",
			target:     "oci://ghcr.io/org/snapshots:v1.0.0",
			registry:   "ghcr.io",
			repository: "org/snapshots",
			tag:        "v1.0.0",
		},
		{
			name:       "without tag",
			target:     "oci://ghcr.io/org/snapshots",
			registry:   "ghcr.io",
			repository: "org/snapshots",
			tag:        "",
		},
		{
			name:       "localhost with port",
			target:     "oci://localhost:5000/snapshots:latest",
			registry:   "localhost:5000",
			repository: "snapshots",
			tag:        "latest",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ref, err := ParseOutputTarget(tt.target)
			require.NoError(t, err)
			assert.True(t, ref.IsOCI)
			assert.Equal(t, tt.registry, ref.Registry)
			assert.Equal(t, tt.repository, ref.Repository)
			assert.Equal(t, tt.tag, ref.Tag)
		})
	}
}

func TestParseOutputTarget_Invalid(t *testing.T) {
	_, err := ParseOutputTarget("oci://not a valid ref!!")
	require.Error(t, err)
}

func TestReference_WithTag(t *testing.T) {
	ref, err := ParseOutputTarget("oci://ghcr.io/org/snapshots")
	require.NoError(t, err)

	tagged := ref.WithTag("v2.0.0")
	assert.Equal(t, "v2.0.0", tagged.Tag)
	assert.Equal(t, "", ref.Tag)
	assert.Equal(t, "oci://ghcr.io/org/snapshots:v2.0.0", tagged.String())
	assert.Equal(t, "ghcr.io/org/snapshots:v2.0.0", tagged.ImageReference())
}

func TestPush_RequiresTag(t *testing.T) {
	_, err := Push(context.Background(), PushOptions{
		SourceDir:  t.TempDir(),
		Registry:   "localhost:5000",
		Repository: "snapshots",
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "tag is required")
}

func TestStripProtocol(t *testing.T) {
	assert.Equal(t, "ghcr.io", stripProtocol("https://ghcr.io"))
	assert.Equal(t, "localhost:5000", stripProtocol("http://localhost:5000"))
	assert.Equal(t, "ghcr.io", stripProtocol("ghcr.io"))
}
