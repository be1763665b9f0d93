/*
Copyright © 2025 windows-snapshot authors
SPDX-License-Identifier: Apache-2.0
*/
package wmi

import (
	"testing"
	"time"
)

func TestParseCIMDatetime(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    time.Time
		wantErr bool
	}{
		{
			name:  "utc",
			input: "20230415103000.000000+000",
			want:  time.Date(2023, 4, 15, 10, 30, 0, 0, time.FixedZone("", 0)),
		},
		{
			name:  "positive offset",
			input: "20230415103000.500000+060",
			want:  time.Date(2023, 4, 15, 10, 30, 0, 500000*1000, time.FixedZone("", 3600)),
		},
		{
			name:  "negative offset",
			input: "19991231235959.999999-300",
			want:  time.Date(1999, 12, 31, 23, 59, 59, 999999*1000, time.FixedZone("", -300*60)),
		},
		{name: "too short", input: "20230415", wantErr: true},
		{name: "missing dot", input: "20230415103000X000000+000", wantErr: true},
		{name: "bad sign", input: "20230415103000.000000x000", wantErr: true},
		{name: "bad digits", input: "2023041510300a.000000+000", wantErr: true},
		{name: "empty", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseCIMDatetime(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseCIMDatetime(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if !tt.wantErr && !got.Equal(tt.want) {
				t.Errorf("ParseCIMDatetime(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestCoerceInt64(t *testing.T) {
	tests := []struct {
		name   string
		input  any
		want   int64
		wantOk bool
	}{
		{"int32", int32(5), 5, true},
		{"int64", int64(-9), -9, true},
		{"uint16", uint16(65535), 65535, true},
		{"numeric string", "42", 42, true},
		{"padded string", " 7 ", 7, true},
		{"whole float", float64(12), 12, true},
		{"fractional float", 12.5, 0, false},
		{"text", "route", 0, false},
		{"bool", true, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := coerceInt64(tt.input)
			if ok != tt.wantOk || (ok && got != tt.want) {
				t.Errorf("coerceInt64(%v) = (%v, %v), want (%v, %v)", tt.input, got, ok, tt.want, tt.wantOk)
			}
		})
	}
}

func TestCoerceBool(t *testing.T) {
	tests := []struct {
		name   string
		input  any
		want   bool
		wantOk bool
	}{
		{"bool true", true, true, true},
		{"bool false", false, false, true},
		{"string true", "True", true, true},
		{"string false", "false", false, true},
		{"int", 1, false, false},
		{"text", "yes", false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := coerceBool(tt.input)
			if ok != tt.wantOk || (ok && got != tt.want) {
				t.Errorf("coerceBool(%v) = (%v, %v), want (%v, %v)", tt.input, got, ok, tt.want, tt.wantOk)
			}
		})
	}
}

func TestCoerceStringSlice(t *testing.T) {
	got, ok := coerceStringSlice([]any{"a", "b"})
	if !ok || len(got) != 2 || got[0] != "a" {
		t.Errorf("coerceStringSlice([]any) = (%v, %v)", got, ok)
	}

	if _, ok := coerceStringSlice([]any{"a", 1}); ok {
		t.Error("mixed slice must not coerce")
	}

	if _, ok := coerceStringSlice("a"); ok {
		t.Error("scalar must not coerce to slice")
	}
}

func TestCoerceTime(t *testing.T) {
	now := time.Now()
	if got, ok := coerceTime(now); !ok || !got.Equal(now) {
		t.Errorf("coerceTime(time.Time) = (%v, %v)", got, ok)
	}

	if _, ok := coerceTime("20230415103000.000000+000"); !ok {
		t.Error("CIM datetime string must coerce")
	}

	if _, ok := coerceTime("2023-04-15T10:30:00Z"); !ok {
		t.Error("RFC3339 string must coerce")
	}

	if _, ok := coerceTime(42); ok {
		t.Error("integer must not coerce to time")
	}
}
