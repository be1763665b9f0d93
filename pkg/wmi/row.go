/*
Copyright © 2025 windows-snapshot authors
SPDX-License-Identifier: Apache-2.0
*/
package wmi

import (
	"fmt"
	"math"
	"time"
)

// Row is one result row of a class query: a mapping from attribute
// name to a dynamically typed value. Absent attributes are simply
// missing from the map; null attributes are present with a nil value.
// Both decode to a nil record field.
type Row map[string]any

// FieldBinder binds one declared record field to its row attribute by
// name. The typed constructors below (Str, I32, Bool, ...) form the
// conversion table used by every record's DecodeRow method.
type FieldBinder struct {
	// Name is the WMI attribute name, which matches the record field name.
	Name string

	bind func(v any) *QueryError
}

// DecodeFields populates a record's fields from a row. Attributes that
// are missing or null leave the field nil; attributes present in the
// row but not declared by the record are ignored. The first attribute
// that fails to coerce aborts the decode with a type-mismatch error.
func DecodeFields(row Row, fields ...FieldBinder) error {
	for _, f := range fields {
		v, ok := row[f.Name]
		if !ok || v == nil {
			continue
		}
		if err := f.bind(v); err != nil {
			return err
		}
	}
	return nil
}

func mismatch(name string, v any, want string) *QueryError {
	return &QueryError{
		Attr: name,
		Err:  fmt.Errorf("%w: %T value %v into %s", ErrTypeMismatch, v, v, want),
	}
}

// Str binds a string attribute.
func Str(name string, dst **string) FieldBinder {
	return FieldBinder{Name: name, bind: func(v any) *QueryError {
		s, ok := coerceString(v)
		if !ok {
			return mismatch(name, v, "string")
		}
		*dst = &s
		return nil
	}}
}

// Bool binds a boolean attribute.
func Bool(name string, dst **bool) FieldBinder {
	return FieldBinder{Name: name, bind: func(v any) *QueryError {
		b, ok := coerceBool(v)
		if !ok {
			return mismatch(name, v, "bool")
		}
		*dst = &b
		return nil
	}}
}

// I16 binds a signed 16-bit integer attribute.
func I16(name string, dst **int16) FieldBinder {
	return FieldBinder{Name: name, bind: func(v any) *QueryError {
		n, ok := coerceInt64(v)
		if !ok || n < math.MinInt16 || n > math.MaxInt16 {
			return mismatch(name, v, "int16")
		}
		val := int16(n)
		*dst = &val
		return nil
	}}
}

// I32 binds a signed 32-bit integer attribute.
func I32(name string, dst **int32) FieldBinder {
	return FieldBinder{Name: name, bind: func(v any) *QueryError {
		n, ok := coerceInt64(v)
		if !ok || n < math.MinInt32 || n > math.MaxInt32 {
			return mismatch(name, v, "int32")
		}
		val := int32(n)
		*dst = &val
		return nil
	}}
}

// I64 binds a signed 64-bit integer attribute.
func I64(name string, dst **int64) FieldBinder {
	return FieldBinder{Name: name, bind: func(v any) *QueryError {
		n, ok := coerceInt64(v)
		if !ok {
			return mismatch(name, v, "int64")
		}
		*dst = &n
		return nil
	}}
}

// U8 binds an unsigned 8-bit integer attribute.
func U8(name string, dst **uint8) FieldBinder {
	return FieldBinder{Name: name, bind: func(v any) *QueryError {
		n, ok := coerceUint64(v)
		if !ok || n > math.MaxUint8 {
			return mismatch(name, v, "uint8")
		}
		val := uint8(n)
		*dst = &val
		return nil
	}}
}

// U16 binds an unsigned 16-bit integer attribute.
func U16(name string, dst **uint16) FieldBinder {
	return FieldBinder{Name: name, bind: func(v any) *QueryError {
		n, ok := coerceUint64(v)
		if !ok || n > math.MaxUint16 {
			return mismatch(name, v, "uint16")
		}
		val := uint16(n)
		*dst = &val
		return nil
	}}
}

// U32 binds an unsigned 32-bit integer attribute.
func U32(name string, dst **uint32) FieldBinder {
	return FieldBinder{Name: name, bind: func(v any) *QueryError {
		n, ok := coerceUint64(v)
		if !ok || n > math.MaxUint32 {
			return mismatch(name, v, "uint32")
		}
		val := uint32(n)
		*dst = &val
		return nil
	}}
}

// U64 binds an unsigned 64-bit integer attribute.
func U64(name string, dst **uint64) FieldBinder {
	return FieldBinder{Name: name, bind: func(v any) *QueryError {
		n, ok := coerceUint64(v)
		if !ok {
			return mismatch(name, v, "uint64")
		}
		*dst = &n
		return nil
	}}
}

// F64 binds a floating point attribute.
func F64(name string, dst **float64) FieldBinder {
	return FieldBinder{Name: name, bind: func(v any) *QueryError {
		f, ok := coerceFloat64(v)
		if !ok {
			return mismatch(name, v, "float64")
		}
		*dst = &f
		return nil
	}}
}

// Time binds a date-time attribute. WMI reports these as CIM_DATETIME
// strings; already-parsed time.Time values are accepted as well.
func Time(name string, dst **time.Time) FieldBinder {
	return FieldBinder{Name: name, bind: func(v any) *QueryError {
		t, ok := coerceTime(v)
		if !ok {
			return mismatch(name, v, "time.Time")
		}
		*dst = &t
		return nil
	}}
}

// U16Slice binds an unsigned 16-bit integer array attribute.
func U16Slice(name string, dst **[]uint16) FieldBinder {
	return FieldBinder{Name: name, bind: func(v any) *QueryError {
		s, ok := coerceUint16Slice(v)
		if !ok {
			return mismatch(name, v, "[]uint16")
		}
		*dst = &s
		return nil
	}}
}

// StrSlice binds a string array attribute.
func StrSlice(name string, dst **[]string) FieldBinder {
	return FieldBinder{Name: name, bind: func(v any) *QueryError {
		s, ok := coerceStringSlice(v)
		if !ok {
			return mismatch(name, v, "[]string")
		}
		*dst = &s
		return nil
	}}
}
