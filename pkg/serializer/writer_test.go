/*
Copyright © 2025 windows-snapshot authors
SPDX-License-Identifier: Apache-2.0
*/
package serializer

import (
	"bytes"
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sample struct {
	Name  string            `json:"name" yaml:"name"`
	Count int               `json:"count" yaml:"count"`
	Tags  map[string]string `json:"tags,omitempty" yaml:"tags,omitempty"`
}

func TestWriter_JSON(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(FormatJSON, &buf)

	err := w.Serialize(context.Background(), sample{Name: "routes", Count: 2})
	require.NoError(t, err)

	var got sample
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, "routes", got.Name)
	assert.Equal(t, 2, got.Count)
}

func TestWriter_YAML(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(FormatYAML, &buf)

	err := w.Serialize(context.Background(), sample{Name: "routes", Count: 2})
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "name: routes")
	assert.Contains(t, out, "count: 2")
}

func TestWriter_Table(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(FormatTable, &buf)

	err := w.Serialize(context.Background(), sample{
		Name:  "routes",
		Count: 2,
		Tags:  map[string]string{"host": "win-1"},
	})
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "FIELD")
	assert.Contains(t, out, "Name")
	assert.Contains(t, out, "routes")
	assert.Contains(t, out, "Tags.host")
	assert.Contains(t, out, "win-1")
}

func TestWriter_UnknownFormatDefaultsToJSON(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(Format("xml"), &buf)

	err := w.Serialize(context.Background(), sample{Name: "x"})
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(strings.TrimSpace(buf.String()), "{"))
}

func TestNewFileWriterOrStdout_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.json")

	s := NewFileWriterOrStdout(FormatJSON, path)
	require.NoError(t, s.Serialize(context.Background(), sample{Name: "file"}))

	if c, ok := s.(Closer); ok {
		require.NoError(t, c.Close())
	}

	r, err := NewFileReader(path)
	require.NoError(t, err)
	defer r.Close()

	var got sample
	require.NoError(t, r.Deserialize(&got))
	assert.Equal(t, "file", got.Name)
}

func TestNewFileWriterOrStdout_EmptyPathIsStdout(t *testing.T) {
	s := NewFileWriterOrStdout(FormatYAML, "  ")
	_, ok := s.(*Writer)
	assert.True(t, ok)
}

func TestNewFileWriterOrStdout_OCITarget(t *testing.T) {
	s := NewFileWriterOrStdout(FormatJSON, "oci://ghcr.io/org/snapshots:v1")
	_, ok := s.(*OCIWriter)
	assert.True(t, ok)
}

func TestSupportedFormats(t *testing.T) {
	assert.ElementsMatch(t, []string{"json", "yaml", "table"}, SupportedFormats())
}

func TestFormatFromPath(t *testing.T) {
	tests := []struct {
		path string
		want Format
	}{
		{"snapshot.json", FormatJSON},
		{"snapshot.YAML", FormatYAML},
		{"snapshot.yml", FormatYAML},
		{"snapshot.txt", FormatTable},
		{"snapshot.bin", FormatJSON},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatFromPath(tt.path), tt.path)
	}
}
