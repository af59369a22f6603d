// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) 2023-2026 Nicholas R. Perez

// Package value defines goout runtime value types.
//
// A goout value is dynamically one of: 64-bit integer, float, string,
// boolean, or array. Truthiness is defined here, once, and used everywhere
// a condition or logical operator needs it.
package value

import (
	"strconv"
	"strings"

	"nickandperla.net/goout/internal/fault"
)

// Value is the interface all goout value types implement.
type Value interface {
	// String returns the display form of the value, as printed by 출력.
	String() string
	// Truthy returns the boolean coercion of the value.
	Truthy() bool

	value() // sealed marker
}

// Int is a 64-bit integer value.
type Int struct {
	V int64
}

func (i Int) String() string { return strconv.FormatInt(i.V, 10) }
func (i Int) Truthy() bool   { return i.V != 0 }
func (Int) value()           {}

// Float is a floating point value.
type Float struct {
	V float64
}

func (f Float) String() string { return strconv.FormatFloat(f.V, 'g', -1, 64) }
func (f Float) Truthy() bool   { return f.V != 0 }
func (Float) value()           {}

// Str is a string value.
type Str struct {
	V string
}

func (s Str) String() string { return s.V }
func (s Str) Truthy() bool   { return s.V != "" }
func (Str) value()           {}

// Bool is a boolean value.
type Bool struct {
	V bool
}

func (b Bool) String() string { return strconv.FormatBool(b.V) }
func (b Bool) Truthy() bool   { return b.V }
func (Bool) value()           {}

// Array is an ordered, possibly heterogeneous sequence of values.
type Array struct {
	Items []Value
}

func (a Array) String() string {
	var sb strings.Builder
	sb.WriteByte('[')
	for i, item := range a.Items {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(item.String())
	}
	sb.WriteByte(']')
	return sb.String()
}
func (a Array) Truthy() bool { return len(a.Items) > 0 }
func (Array) value()         {}

// TypeName returns the Korean name of a value's type, used in error messages.
func TypeName(v Value) string {
	switch v.(type) {
	case Int:
		return "정수"
	case Float:
		return "실수"
	case Str:
		return "문자열"
	case Bool:
		return "불리언"
	case Array:
		return "배열"
	}
	return "값"
}

// IsNumeric reports whether v is an Int or a Float.
func IsNumeric(v Value) bool {
	switch v.(type) {
	case Int, Float:
		return true
	}
	return false
}

// AsFloat returns the numeric value of an Int or Float as a float64.
// The caller must have checked IsNumeric.
func AsFloat(v Value) float64 {
	switch n := v.(type) {
	case Int:
		return float64(n.V)
	case Float:
		return n.V
	}
	return 0
}

// Equal reports whether two values are equal. Ints and floats compare
// numerically, arrays compare structurally; values of incompatible types
// are unequal rather than an error.
func Equal(a, b Value) bool {
	if IsNumeric(a) && IsNumeric(b) {
		return AsFloat(a) == AsFloat(b)
	}
	switch av := a.(type) {
	case Str:
		bv, ok := b.(Str)
		return ok && av.V == bv.V
	case Bool:
		bv, ok := b.(Bool)
		return ok && av.V == bv.V
	case Array:
		bv, ok := b.(Array)
		if !ok || len(av.Items) != len(bv.Items) {
			return false
		}
		for i := range av.Items {
			if !Equal(av.Items[i], bv.Items[i]) {
				return false
			}
		}
		return true
	}
	return false
}

// Compare orders two values, returning a negative, zero, or positive int.
// Only numbers order against numbers and strings against strings; anything
// else is a runtime error.
func Compare(a, b Value) (int, error) {
	if IsNumeric(a) && IsNumeric(b) {
		af, bf := AsFloat(a), AsFloat(b)
		switch {
		case af < bf:
			return -1, nil
		case af > bf:
			return 1, nil
		}
		return 0, nil
	}
	as, aok := a.(Str)
	bs, bok := b.(Str)
	if aok && bok {
		return strings.Compare(as.V, bs.V), nil
	}
	return 0, fault.Runtimef("%s와 %s는 크기를 비교할 수 없습니다.", TypeName(a), TypeName(b))
}
