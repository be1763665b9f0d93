/*
Copyright © 2025 windows-snapshot authors
SPDX-License-Identifier: Apache-2.0
*/
package header

import (
	"testing"
	"time"
)

func TestInit(t *testing.T) {
	var h Header
	h.Init(KindSnapshot, "winsnap/v1", "v1.2.3")

	if h.Kind != KindSnapshot {
		t.Errorf("Kind = %q, want %q", h.Kind, KindSnapshot)
	}
	if h.APIVersion != "winsnap/v1" {
		t.Errorf("APIVersion = %q, want winsnap/v1", h.APIVersion)
	}
	if h.Metadata["id"] == "" {
		t.Error("expected generated id")
	}
	if h.Metadata["version"] != "v1.2.3" {
		t.Errorf("version = %q, want v1.2.3", h.Metadata["version"])
	}
	ts, err := time.Parse(time.RFC3339, h.Metadata["timestamp"])
	if err != nil {
		t.Fatalf("timestamp not RFC3339: %v", err)
	}
	if time.Since(ts) > time.Minute {
		t.Errorf("timestamp too old: %v", ts)
	}
}

func TestInit_NoVersion(t *testing.T) {
	var h Header
	h.Init(KindClassList, "winsnap/v1", "")

	if _, ok := h.Metadata["version"]; ok {
		t.Error("expected no version key")
	}
}

func TestKindIsValid(t *testing.T) {
	for _, k := range []Kind{KindSnapshot, KindClassList} {
		if !k.IsValid() {
			t.Errorf("%q should be valid", k)
		}
	}

	bad := Kind("Nope")
	if bad.IsValid() {
		t.Error("unknown kind should be invalid")
	}
}

func TestNewWithOptions(t *testing.T) {
	h := New(
		WithKind(KindSnapshot),
		WithAPIVersion("winsnap/v1"),
		WithMetadata("source-host", "host-1"),
	)

	if h.Kind != KindSnapshot || h.APIVersion != "winsnap/v1" {
		t.Errorf("unexpected header: %+v", h)
	}
	if h.Metadata["source-host"] != "host-1" {
		t.Errorf("metadata = %v", h.Metadata)
	}
}
