/*
Copyright © 2025 windows-snapshot authors
SPDX-License-Identifier: Apache-2.0
*/

//go:build windows

package wmi

import (
	"errors"
	"fmt"
	"testing"

	ole "github.com/go-ole/go-ole"
)

func TestClassifyQueryError(t *testing.T) {
	tests := []struct {
		name         string
		err          error
		wantRejected bool
	}{
		{
			name:         "invalid class",
			err:          ole.NewError(uintptr(wbemErrInvalidClass)),
			wantRejected: true,
		},
		{
			name:         "invalid query",
			err:          ole.NewError(uintptr(wbemErrInvalidQuery)),
			wantRejected: true,
		},
		{
			name:         "invalid namespace",
			err:          ole.NewError(uintptr(wbemErrInvalidNamespace)),
			wantRejected: true,
		},
		{
			// errors surfaced mid-enumeration arrive wrapped by oleutil
			name:         "wrapped enumeration error",
			err:          fmt.Errorf("enumerating: %w", ole.NewError(uintptr(wbemErrInvalidClass))),
			wantRejected: true,
		},
		{
			name:         "access denied",
			err:          ole.NewError(uintptr(wbemErrAccessDenied)),
			wantRejected: false,
		},
		{
			name:         "plain error passes through",
			err:          errors.New("rpc unavailable"),
			wantRejected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := classifyQueryError(tt.err)
			if got == nil {
				t.Fatal("expected an error")
			}
			if rejected := errors.Is(got, ErrServiceRejected); rejected != tt.wantRejected {
				t.Errorf("errors.Is(ErrServiceRejected) = %v, want %v (err: %v)", rejected, tt.wantRejected, got)
			}
		})
	}
}
