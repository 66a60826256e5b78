package engine

import (
	"fmt"
	"math"

	"github.com/bitlens/bitlens/schema"
)

// Value is a decoded field value: a closed tagged union over the kinds a
// field can carry, dispatched by the tag in every consumer. The payload is
// held in a single 64-bit word whatever the tag.
type Value struct {
	label string
	bits  uint64
	kind  schema.Kind
	width uint8 // float payload width, 32 or 64
}

// Uint makes an unsigned integer value.
func Uint(v uint64) Value {
	return Value{kind: schema.KindUint, bits: v}
}

// Int makes a signed integer value.
func Int(v int64) Value {
	return Value{kind: schema.KindInt, bits: uint64(v)}
}

// Bool makes a boolean value.
func Bool(v bool) Value {
	var bits uint64
	if v {
		bits = 1
	}
	return Value{kind: schema.KindBool, bits: bits}
}

// Float32 makes a 32-bit floating point value.
func Float32(v float32) Value {
	return Value{kind: schema.KindFloat, bits: uint64(math.Float32bits(v)), width: 32}
}

// Float64 makes a 64-bit floating point value.
func Float64(v float64) Value {
	return Value{kind: schema.KindFloat, bits: math.Float64bits(v), width: 64}
}

func enumValue(raw uint64, label string) Value {
	return Value{kind: schema.KindEnum, bits: raw, label: label}
}

// Kind returns the value's tag.
func (v Value) Kind() schema.Kind { return v.kind }

// Uint returns the unsigned integer payload. Valid for KindUint and KindEnum.
func (v Value) Uint() uint64 { return v.bits }

// Int returns the signed integer payload. Valid for KindInt.
func (v Value) Int() int64 { return int64(v.bits) }

// Bool returns the boolean payload. Valid for KindBool.
func (v Value) Bool() bool { return v.bits != 0 }

// Float32 returns the 32-bit float payload. Valid for KindFloat of width 32.
func (v Value) Float32() float32 { return math.Float32frombits(uint32(v.bits)) }

// Float64 returns the 64-bit float payload. Valid for KindFloat of width 64.
func (v Value) Float64() float64 { return math.Float64frombits(v.bits) }

// FloatWidth returns 32 or 64 for KindFloat values, 0 otherwise.
func (v Value) FloatWidth() uint { return uint(v.width) }

// Label returns the enum label resolved at read time, empty when the raw
// value had no mapping or the value is not an enum.
func (v Value) Label() string { return v.label }

// Any returns the payload as the natural Go type for the tag.
func (v Value) Any() any {
	switch v.kind {
	case schema.KindInt:
		return v.Int()
	case schema.KindBool:
		return v.Bool()
	case schema.KindFloat:
		if v.width == 32 {
			return v.Float32()
		}
		return v.Float64()
	default:
		return v.Uint()
	}
}

func (v Value) String() string {
	switch v.kind {
	case schema.KindInt:
		return fmt.Sprintf("%d", v.Int())
	case schema.KindBool:
		return fmt.Sprintf("%t", v.Bool())
	case schema.KindFloat:
		if v.width == 32 {
			return fmt.Sprintf("%g", v.Float32())
		}
		return fmt.Sprintf("%g", v.Float64())
	case schema.KindEnum:
		if v.label != "" {
			return fmt.Sprintf("%s(%d)", v.label, v.bits)
		}
		return fmt.Sprintf("%d", v.bits)
	default:
		return fmt.Sprintf("%d", v.bits)
	}
}
