package bitlens

import (
	"github.com/bitlens/bitlens/engine"
	"github.com/bitlens/bitlens/schema"
)

// Re-exported core types, so simple callers need a single import.
type (
	Layout     = schema.Layout
	Field      = schema.Field
	Kind       = schema.Kind
	BitOrder   = schema.BitOrder
	ByteOrder  = schema.ByteOrder
	Value      = engine.Value
	FieldValue = engine.FieldValue
)

const (
	KindUint  = schema.KindUint
	KindInt   = schema.KindInt
	KindBool  = schema.KindBool
	KindFloat = schema.KindFloat
	KindEnum  = schema.KindEnum

	MSBFirst = schema.MSBFirst
	LSBFirst = schema.LSBFirst

	BigEndian    = schema.BigEndian
	LittleEndian = schema.LittleEndian
)

// Value constructors and descriptor options, re-exported alongside the types.
var (
	Uint    = engine.Uint
	Int     = engine.Int
	Bool    = engine.Bool
	Float32 = engine.Float32
	Float64 = engine.Float64

	WithBitOrder   = schema.WithBitOrder
	WithByteOrder  = schema.WithByteOrder
	WithEnumValues = schema.WithEnumValues
)

// NewLayout builds a validated layout from explicit descriptors.
func NewLayout(totalBits uint, fields []Field) (*Layout, error) {
	return schema.New(totalBits, fields)
}

// NewField constructs a validated field descriptor.
func NewField(name string, offset, width uint, kind Kind, opts ...schema.FieldOption) (Field, error) {
	return schema.NewField(name, offset, width, kind, opts...)
}

// NewBuilder starts a sequential layout declaration.
func NewBuilder(name string, opts ...schema.BuilderOption) *schema.Builder {
	return schema.NewBuilder(name, opts...)
}

// Read extracts the named field from buf as a typed value.
func Read(l *Layout, name string, buf []byte) (Value, error) {
	return engine.Read(l, name, buf)
}

// Write stores v into the named field's bit range in buf.
func Write(l *Layout, name string, v Value, buf []byte) error {
	return engine.Write(l, name, v, buf)
}

// ReadAll decodes every field of the layout in declaration order.
func ReadAll(l *Layout, buf []byte) ([]FieldValue, error) {
	return engine.ReadAll(l, buf)
}
