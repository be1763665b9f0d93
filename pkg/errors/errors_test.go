/*
Copyright © 2025 windows-snapshot authors
SPDX-License-Identifier: Apache-2.0
*/
package errors

import (
	stderrors "errors"
	"fmt"
	"testing"
)

func TestStructuredError_Error(t *testing.T) {
	tests := []struct {
		name string
		err  *StructuredError
		want string
	}{
		{
			name: "without cause",
			err:  New(ErrCodeQueryRejected, "class not served"),
			want: "[QUERY_REJECTED] class not served",
		},
		{
			name: "with cause",
			err:  Wrap(ErrCodeConnectionFailed, "connect", fmt.Errorf("rpc unavailable")),
			want: "[CONNECTION_FAILED] connect: rpc unavailable",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestStructuredError_Unwrap(t *testing.T) {
	cause := fmt.Errorf("boom")
	err := Wrap(ErrCodeInternal, "wrapped", cause)

	if !stderrors.Is(err, cause) {
		t.Error("expected errors.Is to find the cause")
	}

	var se *StructuredError
	if !stderrors.As(err, &se) {
		t.Fatal("expected errors.As to match")
	}
	if se.Code != ErrCodeInternal {
		t.Errorf("Code = %q, want %q", se.Code, ErrCodeInternal)
	}
}

func TestStructuredError_Context(t *testing.T) {
	err := NewWithContext(ErrCodeTypeMismatch, "bad value", map[string]any{
		"class": "Win32_IP4RouteTable",
		"attr":  "Metric1",
	})

	if err.Context["attr"] != "Metric1" {
		t.Errorf("Context = %v", err.Context)
	}
}
