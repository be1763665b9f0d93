/*
Copyright © 2025 windows-snapshot authors
SPDX-License-Identifier: Apache-2.0
*/
package cli

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/NidhiHemanth/windows-snapshot/pkg/serializer"
)

func TestInspectConvertsBetweenFormats(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "state.json")
	out := filepath.Join(dir, "state.yaml")

	require.NoError(t, os.WriteFile(in,
		[]byte(`{"kind":"Snapshot","apiVersion":"winsnap/v1","sections":{"services":{"class":"Win32_Service"}}}`),
		0o600))

	cmd := inspectCmd()
	require.NoError(t, cmd.Run(context.Background(), []string{"inspect", in, "-f", "yaml", "-o", out}))

	r, err := serializer.NewFileReader(out)
	require.NoError(t, err)
	defer r.Close()

	var got map[string]any
	require.NoError(t, r.Deserialize(&got))
	assert.Equal(t, "Snapshot", got["kind"])
	assert.Equal(t, "winsnap/v1", got["apiVersion"])

	sections, ok := got["sections"].(map[string]any)
	require.True(t, ok)
	assert.Contains(t, sections, "services")
}

func TestInspectRequiresFileArgument(t *testing.T) {
	cmd := inspectCmd()
	err := cmd.Run(context.Background(), []string{"inspect"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "exactly one snapshot file")
}

func TestInspectMissingFile(t *testing.T) {
	cmd := inspectCmd()
	err := cmd.Run(context.Background(), []string{"inspect", filepath.Join(t.TempDir(), "nope.json")})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to open file")
}
