package domain

import (
	"math/big"
	"testing"

	"github.com/shopspring/decimal"
)

func TestValueNone(t *testing.T) {
	if !None().IsNone() {
		t.Error("None().IsNone() = false")
	}
	var zero Value
	if !zero.IsNone() {
		t.Error("zero Value should read as none")
	}
	if TextValue("").IsNone() {
		t.Error("empty text is a legitimate value, not none")
	}
	if None().String() != "none" {
		t.Errorf("None().String() = %q, want %q", None().String(), "none")
	}
}

func TestValueAccessors(t *testing.T) {
	t.Run("matching kind", func(t *testing.T) {
		if s, ok := TextValue("hello").Text(); !ok || s != "hello" {
			t.Errorf("Text() = %q, %v", s, ok)
		}
		if n, ok := IntValue(42).Int(); !ok || n != 42 {
			t.Errorf("Int() = %d, %v", n, ok)
		}
		if n, ok := Int64Value(-7).Int64(); !ok || n != -7 {
			t.Errorf("Int64() = %d, %v", n, ok)
		}
		if n, ok := Int16Value(300).Int16(); !ok || n != 300 {
			t.Errorf("Int16() = %d, %v", n, ok)
		}
		if f, ok := Float64Value(2.5).Float64(); !ok || f != 2.5 {
			t.Errorf("Float64() = %v, %v", f, ok)
		}
		if f, ok := Float32Value(1.5).Float32(); !ok || f != 1.5 {
			t.Errorf("Float32() = %v, %v", f, ok)
		}
		if b, ok := BoolValue(true).Bool(); !ok || !b {
			t.Errorf("Bool() = %v, %v", b, ok)
		}
		if b, ok := ByteValue(200).Byte(); !ok || b != 200 {
			t.Errorf("Byte() = %d, %v", b, ok)
		}
		d := decimal.RequireFromString("3.1415926535897932384626433832795028841971")
		if got, ok := DecimalValue(d).Decimal(); !ok || !got.Equal(d) {
			t.Errorf("Decimal() = %v, %v", got, ok)
		}
	})

	t.Run("mismatched kind", func(t *testing.T) {
		if _, ok := TextValue("42").Int(); ok {
			t.Error("Int() on a text value should not be ok")
		}
		if _, ok := IntValue(1).Bool(); ok {
			t.Error("Bool() on an int value should not be ok")
		}
		if _, ok := None().Text(); ok {
			t.Error("Text() on none should not be ok")
		}
	})
}

func TestBigIntValueCopies(t *testing.T) {
	orig := big.NewInt(1000)
	v := BigIntValue(orig)

	orig.SetInt64(0)
	got, ok := v.BigInt()
	if !ok {
		t.Fatal("BigInt() not ok")
	}
	if got.Int64() != 1000 {
		t.Errorf("stored big int mutated through the constructor argument: %v", got)
	}

	got.SetInt64(0)
	again, _ := v.BigInt()
	if again.Int64() != 1000 {
		t.Errorf("stored big int mutated through an accessor result: %v", again)
	}

	if !BigIntValue(nil).IsNone() {
		t.Error("BigIntValue(nil) should be none")
	}
}
