/*
Copyright © 2025 windows-snapshot authors
SPDX-License-Identifier: Apache-2.0
*/
package serializer

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// FormatFromPath determines the serialization format based on file extension.
// Supported extensions:
//   - .json → FormatJSON
//   - .yaml, .yml → FormatYAML
//   - .table, .txt → FormatTable
//
// Returns FormatJSON as default for unknown extensions.
// Extension matching is case-insensitive.
func FormatFromPath(filePath string) Format {
	lowerPath := strings.ToLower(filePath)
	switch {
	case strings.HasSuffix(lowerPath, ".json"):
		return FormatJSON
	case strings.HasSuffix(lowerPath, ".yaml"), strings.HasSuffix(lowerPath, ".yml"):
		return FormatYAML
	case strings.HasSuffix(lowerPath, ".table"), strings.HasSuffix(lowerPath, ".txt"):
		return FormatTable
	default:
		slog.Warn("unknown file extension, defaulting to JSON", "filePath", filePath)
		return FormatJSON
	}
}

// Reader handles deserialization of structured data from JSON or YAML
// sources. Close must be called for readers created with NewFileReader;
// it is idempotent and a no-op for non-closeable sources.
type Reader struct {
	format Format
	input  io.Reader
	closer io.Closer
}

// NewReader creates a new Reader for deserializing data from an
// io.Reader source. Table format is write-only and rejected at
// Deserialize time.
func NewReader(format Format, input io.Reader) *Reader {
	return &Reader{
		format: format,
		input:  input,
	}
}

// NewFileReader opens the file at path and creates a Reader using the
// format implied by its extension.
func NewFileReader(path string) (*Reader, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	return &Reader{
		format: FormatFromPath(path),
		input:  file,
		closer: file,
	}, nil
}

// Deserialize reads and decodes the input into out.
func (r *Reader) Deserialize(out any) error {
	switch r.format {
	case FormatJSON:
		if err := json.NewDecoder(r.input).Decode(out); err != nil {
			return fmt.Errorf("failed to deserialize JSON: %w", err)
		}
		return nil
	case FormatYAML:
		if err := yaml.NewDecoder(r.input).Decode(out); err != nil {
			return fmt.Errorf("failed to deserialize YAML: %w", err)
		}
		return nil
	default:
		return fmt.Errorf("unsupported read format: %s", r.format)
	}
}

// Close releases the underlying source if it is closeable.
func (r *Reader) Close() error {
	if r.closer != nil {
		err := r.closer.Close()
		r.closer = nil
		return err
	}
	return nil
}
