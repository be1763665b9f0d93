/*
Copyright © 2025 windows-snapshot authors
SPDX-License-Identifier: Apache-2.0
*/
package serializer

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	apperrors "github.com/NidhiHemanth/windows-snapshot/pkg/errors"
	"github.com/NidhiHemanth/windows-snapshot/pkg/oci"
)

// OCIWriter serializes snapshot data to a temporary directory and
// publishes it to an OCI registry as a snapshot artifact.
type OCIWriter struct {
	ref    *oci.Reference
	format Format

	// push is swappable for tests.
	push func(ctx context.Context, opts oci.PushOptions) (*oci.PushResult, error)
}

// NewOCIWriter creates a Serializer that publishes the serialized
// snapshot to the given OCI reference. Table format is not supported
// for registry artifacts and is coerced to JSON.
func NewOCIWriter(ref *oci.Reference, format Format) *OCIWriter {
	if format.IsUnknown() || format == FormatTable {
		format = FormatJSON
	}
	return &OCIWriter{
		ref:    ref,
		format: format,
		push:   oci.Push,
	}
}

// Serialize implements the Serializer interface.
func (w *OCIWriter) Serialize(ctx context.Context, snapshot any) error {
	if w.ref == nil || !w.ref.IsOCI {
		return apperrors.New(apperrors.ErrCodeInvalidRequest, "OCI writer requires an oci:// reference")
	}
	if w.ref.Tag == "" {
		return apperrors.New(apperrors.ErrCodeInvalidRequest,
			fmt.Sprintf("OCI reference %q is missing a tag", w.ref.String()))
	}

	dir, err := os.MkdirTemp("", "winsnap-oci-*")
	if err != nil {
		return fmt.Errorf("failed to create staging directory: %w", err)
	}
	defer os.RemoveAll(dir)

	name := "snapshot." + string(w.format)
	file, err := os.Create(filepath.Join(dir, name))
	if err != nil {
		return fmt.Errorf("failed to create staging file: %w", err)
	}

	fw := NewWriter(w.format, file)
	if serr := fw.Serialize(ctx, snapshot); serr != nil {
		file.Close()
		return serr
	}
	if cerr := file.Close(); cerr != nil {
		return fmt.Errorf("failed to close staging file: %w", cerr)
	}

	result, err := w.push(ctx, oci.PushOptions{
		SourceDir:  dir,
		Registry:   w.ref.Registry,
		Repository: w.ref.Repository,
		Tag:        w.ref.Tag,
	})
	if err != nil {
		return fmt.Errorf("failed to publish snapshot: %w", err)
	}

	slog.Info("snapshot published",
		slog.String("reference", result.Reference),
		slog.String("digest", result.Digest))
	return nil
}
