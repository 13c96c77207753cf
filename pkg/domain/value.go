package domain

import (
	"fmt"
	"math/big"

	"github.com/shopspring/decimal"
)

// Kind identifies the typed interpretation requested for one line of input.
type Kind string

const (
	KindText    Kind = "text"
	KindInt     Kind = "int"
	KindInt64   Kind = "int64"
	KindInt16   Kind = "int16"
	KindBigInt  Kind = "bigint"  // arbitrary-precision integer (math/big)
	KindFloat64 Kind = "float64" // double precision
	KindFloat32 Kind = "float32" // single precision
	KindDecimal Kind = "decimal" // arbitrary-precision decimal
	KindBool    Kind = "bool"
	KindByte    Kind = "byte"

	// KindNone marks a parse failure or an unsupported requested kind.
	// It is a result tag only; requesting it from a reader yields None.
	KindNone Kind = "none"
)

// Value is the tagged result of converting one raw input line to a requested
// Kind. The none value means "no value obtained" and is distinguishable from
// a legitimately empty text value: None().IsNone() is true while
// TextValue("").IsNone() is false.
type Value struct {
	kind Kind
	raw  any
}

// None returns the value representing a failed or unsupported conversion.
func None() Value {
	return Value{kind: KindNone}
}

// TextValue wraps a raw text line.
func TextValue(s string) Value { return Value{kind: KindText, raw: s} }

// IntValue wraps a parsed int.
func IntValue(v int) Value { return Value{kind: KindInt, raw: v} }

// Int64Value wraps a parsed int64.
func Int64Value(v int64) Value { return Value{kind: KindInt64, raw: v} }

// Int16Value wraps a parsed int16.
func Int16Value(v int16) Value { return Value{kind: KindInt16, raw: v} }

// BigIntValue wraps an arbitrary-precision integer. The value is copied;
// a nil pointer yields None.
func BigIntValue(v *big.Int) Value {
	if v == nil {
		return None()
	}
	return Value{kind: KindBigInt, raw: new(big.Int).Set(v)}
}

// Float64Value wraps a parsed float64.
func Float64Value(v float64) Value { return Value{kind: KindFloat64, raw: v} }

// Float32Value wraps a parsed float32.
func Float32Value(v float32) Value { return Value{kind: KindFloat32, raw: v} }

// DecimalValue wraps an arbitrary-precision decimal.
func DecimalValue(v decimal.Decimal) Value { return Value{kind: KindDecimal, raw: v} }

// BoolValue wraps a parsed bool.
func BoolValue(v bool) Value { return Value{kind: KindBool, raw: v} }

// ByteValue wraps a parsed byte.
func ByteValue(v byte) Value { return Value{kind: KindByte, raw: v} }

// Kind reports the tag of the value.
func (v Value) Kind() Kind { return v.kind }

// IsNone reports whether the value carries no result.
func (v Value) IsNone() bool { return v.kind == KindNone || v.kind == "" }

// Text returns the text payload. The bool is false when the value holds a
// different kind.
func (v Value) Text() (string, bool) {
	s, ok := v.raw.(string)
	return s, ok && v.kind == KindText
}

// Int returns the int payload.
func (v Value) Int() (int, bool) {
	n, ok := v.raw.(int)
	return n, ok && v.kind == KindInt
}

// Int64 returns the int64 payload.
func (v Value) Int64() (int64, bool) {
	n, ok := v.raw.(int64)
	return n, ok && v.kind == KindInt64
}

// Int16 returns the int16 payload.
func (v Value) Int16() (int16, bool) {
	n, ok := v.raw.(int16)
	return n, ok && v.kind == KindInt16
}

// BigInt returns a copy of the arbitrary-precision integer payload.
func (v Value) BigInt() (*big.Int, bool) {
	n, ok := v.raw.(*big.Int)
	if !ok || v.kind != KindBigInt {
		return nil, false
	}
	return new(big.Int).Set(n), true
}

// Float64 returns the float64 payload.
func (v Value) Float64() (float64, bool) {
	f, ok := v.raw.(float64)
	return f, ok && v.kind == KindFloat64
}

// Float32 returns the float32 payload.
func (v Value) Float32() (float32, bool) {
	f, ok := v.raw.(float32)
	return f, ok && v.kind == KindFloat32
}

// Decimal returns the arbitrary-precision decimal payload.
func (v Value) Decimal() (decimal.Decimal, bool) {
	d, ok := v.raw.(decimal.Decimal)
	return d, ok && v.kind == KindDecimal
}

// Bool returns the bool payload.
func (v Value) Bool() (bool, bool) {
	b, ok := v.raw.(bool)
	return b, ok && v.kind == KindBool
}

// Byte returns the byte payload.
func (v Value) Byte() (byte, bool) {
	b, ok := v.raw.(byte)
	return b, ok && v.kind == KindByte
}

// String renders the value for logs and debugging.
func (v Value) String() string {
	if v.IsNone() {
		return "none"
	}
	return fmt.Sprintf("%s(%v)", v.kind, v.raw)
}
