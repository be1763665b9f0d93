/*
Copyright © 2025 windows-snapshot authors
SPDX-License-Identifier: Apache-2.0
*/
package wmi

import (
	"context"
	"errors"
	"runtime"
	"testing"
)

func TestNewConnectionProvider_Defaults(t *testing.T) {
	p := NewConnectionProvider()
	if p.Namespace() != DefaultNamespace {
		t.Errorf("Namespace() = %q, want %q", p.Namespace(), DefaultNamespace)
	}
}

func TestNewConnectionProvider_Options(t *testing.T) {
	p := NewConnectionProvider(WithNamespace(`ROOT\WMI`), WithLocale("MS_409"))
	if p.Namespace() != `ROOT\WMI` {
		t.Errorf("Namespace() = %q, want ROOT\\WMI", p.Namespace())
	}
	if p.locale != "MS_409" {
		t.Errorf("locale = %q, want MS_409", p.locale)
	}

	// Empty namespace override keeps the default.
	p = NewConnectionProvider(WithNamespace(""))
	if p.Namespace() != DefaultNamespace {
		t.Errorf("Namespace() = %q, want %q", p.Namespace(), DefaultNamespace)
	}
}

func TestConnect_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewConnectionProvider().Connect(ctx)
	if err == nil {
		t.Fatal("expected error")
	}

	var ce *ConnectionError
	if !errors.As(err, &ce) {
		t.Fatalf("expected *ConnectionError, got %T", err)
	}
	if !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled in chain, got %v", err)
	}
}

func TestConnect_UnsupportedPlatform(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("stub only exists off windows")
	}

	_, err := NewConnectionProvider().Connect(context.Background())
	if err == nil {
		t.Fatal("expected error")
	}
	if !errors.Is(err, ErrUnsupportedPlatform) {
		t.Errorf("expected ErrUnsupportedPlatform, got %v", err)
	}

	var ce *ConnectionError
	if !errors.As(err, &ce) {
		t.Fatalf("expected *ConnectionError, got %T", err)
	}
	if ce.Namespace != DefaultNamespace {
		t.Errorf("Namespace = %q, want %q", ce.Namespace, DefaultNamespace)
	}
}
