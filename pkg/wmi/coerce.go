/*
Copyright © 2025 windows-snapshot authors
SPDX-License-Identifier: Apache-2.0
*/
package wmi

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

// cimDatetimeLen is the fixed width of a CIM_DATETIME value, for
// example "20230415103000.000000+060".
const cimDatetimeLen = 25

// ParseCIMDatetime parses a CIM_DATETIME string (the wire format WMI
// uses for date-time attributes) into a time.Time. The trailing
// three-digit field is the UTC offset in minutes.
func ParseCIMDatetime(s string) (time.Time, error) {
	if len(s) != cimDatetimeLen || s[14] != '.' {
		return time.Time{}, fmt.Errorf("invalid CIM datetime %q", s)
	}

	base, err := time.Parse("20060102150405", s[:14])
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid CIM datetime %q: %w", s, err)
	}

	micros, err := strconv.Atoi(s[15:21])
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid CIM datetime %q: %w", s, err)
	}

	var sign int
	switch s[21] {
	case '+':
		sign = 1
	case '-':
		sign = -1
	default:
		return time.Time{}, fmt.Errorf("invalid CIM datetime %q: bad offset sign", s)
	}

	offMin, err := strconv.Atoi(s[22:])
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid CIM datetime %q: %w", s, err)
	}

	loc := time.FixedZone("", sign*offMin*60)
	return time.Date(base.Year(), base.Month(), base.Day(),
		base.Hour(), base.Minute(), base.Second(), micros*1000, loc), nil
}

func coerceString(v any) (string, bool) {
	s, ok := v.(string)
	return s, ok
}

func coerceBool(v any) (bool, bool) {
	switch val := v.(type) {
	case bool:
		return val, true
	case string:
		switch strings.ToLower(strings.TrimSpace(val)) {
		case "true":
			return true, true
		case "false":
			return false, true
		}
	}
	return false, false
}

// coerceInt64 accepts every integer shape a WMI variant can decode to,
// plus numeric strings and whole floats. Numeric strings matter: WMI
// reports several numeric class attributes as strings (e.g. Metric1 on
// the persisted route table).
func coerceInt64(v any) (int64, bool) {
	switch val := v.(type) {
	case int:
		return int64(val), true
	case int8:
		return int64(val), true
	case int16:
		return int64(val), true
	case int32:
		return int64(val), true
	case int64:
		return val, true
	case uint:
		return int64(val), val <= math.MaxInt64
	case uint8:
		return int64(val), true
	case uint16:
		return int64(val), true
	case uint32:
		return int64(val), true
	case uint64:
		return int64(val), val <= math.MaxInt64
	case float64:
		return int64(val), val == math.Trunc(val)
	case float32:
		return int64(val), float64(val) == math.Trunc(float64(val))
	case string:
		n, err := strconv.ParseInt(strings.TrimSpace(val), 10, 64)
		return n, err == nil
	}
	return 0, false
}

func coerceUint64(v any) (uint64, bool) {
	switch val := v.(type) {
	case uint:
		return uint64(val), true
	case uint8:
		return uint64(val), true
	case uint16:
		return uint64(val), true
	case uint32:
		return uint64(val), true
	case uint64:
		return val, true
	case string:
		n, err := strconv.ParseUint(strings.TrimSpace(val), 10, 64)
		return n, err == nil
	}
	if n, ok := coerceInt64(v); ok && n >= 0 {
		return uint64(n), true
	}
	return 0, false
}

func coerceFloat64(v any) (float64, bool) {
	switch val := v.(type) {
	case float32:
		return float64(val), true
	case float64:
		return val, true
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(val), 64)
		return f, err == nil
	}
	if n, ok := coerceInt64(v); ok {
		return float64(n), true
	}
	return 0, false
}

func coerceTime(v any) (time.Time, bool) {
	switch val := v.(type) {
	case time.Time:
		return val, true
	case string:
		if t, err := ParseCIMDatetime(val); err == nil {
			return t, true
		}
		if t, err := time.Parse(time.RFC3339, val); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

func coerceUint16Slice(v any) ([]uint16, bool) {
	switch val := v.(type) {
	case []uint16:
		return val, true
	case []any:
		out := make([]uint16, 0, len(val))
		for _, item := range val {
			n, ok := coerceUint64(item)
			if !ok || n > math.MaxUint16 {
				return nil, false
			}
			out = append(out, uint16(n))
		}
		return out, true
	}
	return nil, false
}

func coerceStringSlice(v any) ([]string, bool) {
	switch val := v.(type) {
	case []string:
		return val, true
	case []any:
		out := make([]string, 0, len(val))
		for _, item := range val {
			s, ok := item.(string)
			if !ok {
				return nil, false
			}
			out = append(out, s)
		}
		return out, true
	}
	return nil, false
}
