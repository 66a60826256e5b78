package schema

import (
	"fmt"

	"github.com/bitlens/bitlens/errors"
)

// MaxFieldBits is the widest field a descriptor may describe. Values are
// carried in a 64-bit accumulator; wider fields would need an
// arbitrary-precision representation.
const MaxFieldBits = 64

// Field describes a single named bit range: where it starts, how wide it
// is, how its bits and bytes are ordered, and how the raw bits are
// interpreted. A Field is immutable once constructed.
type Field struct {
	name      string
	bitOffset uint
	bitWidth  uint
	kind      Kind
	bitOrder  BitOrder
	byteOrder ByteOrder
	enum      map[uint64]string
}

// FieldOption configures optional descriptor attributes.
type FieldOption func(*Field)

// WithBitOrder sets the within-byte bit numbering for the field.
func WithBitOrder(o BitOrder) FieldOption {
	return func(f *Field) { f.bitOrder = o }
}

// WithByteOrder sets the multi-byte combination order for the field.
// It has no effect on fields of eight bits or fewer.
func WithByteOrder(o ByteOrder) FieldOption {
	return func(f *Field) { f.byteOrder = o }
}

// WithEnumValues attaches a value-to-label map to a KindEnum field.
// The map is copied; later mutation of the argument does not affect the field.
func WithEnumValues(values map[uint64]string) FieldOption {
	return func(f *Field) {
		f.enum = make(map[uint64]string, len(values))
		for v, label := range values {
			f.enum[v] = label
		}
	}
}

// NewField constructs a validated field descriptor. offset and width are
// in bits from the start of the structure. Construction fails if the
// width is zero, exceeds MaxFieldBits, or is incompatible with the kind:
// KindBool requires width 1 and KindFloat requires width 32 or 64.
func NewField(name string, offset, width uint, kind Kind, opts ...FieldOption) (Field, error) {
	f := Field{
		name:      name,
		bitOffset: offset,
		bitWidth:  width,
		kind:      kind,
		bitOrder:  MSBFirst,
		byteOrder: BigEndian,
	}
	for _, opt := range opts {
		opt(&f)
	}

	if name == "" {
		return Field{}, errors.InvalidField(name, "field name must not be empty")
	}
	if width == 0 {
		return Field{}, errors.InvalidField(name, "bit width must be positive")
	}
	if width > MaxFieldBits {
		return Field{}, errors.InvalidField(name,
			fmt.Sprintf("bit width %d exceeds maximum %d", width, MaxFieldBits))
	}
	switch kind {
	case KindBool:
		if width != 1 {
			return Field{}, errors.InvalidField(name,
				fmt.Sprintf("bool fields are 1 bit wide, got %d", width))
		}
	case KindFloat:
		if width != 32 && width != 64 {
			return Field{}, errors.InvalidField(name,
				fmt.Sprintf("float fields are 32 or 64 bits wide, got %d", width))
		}
	case KindUint, KindInt, KindEnum:
	default:
		return Field{}, errors.InvalidField(name, fmt.Sprintf("unknown kind %d", kind))
	}
	if f.enum != nil && kind != KindEnum {
		return Field{}, errors.InvalidField(name,
			fmt.Sprintf("enum values given for %s field", kind))
	}

	return f, nil
}

// Name returns the field's identifier, unique within its layout.
func (f Field) Name() string { return f.name }

// BitOffset returns the field's offset from the start of the structure, in bits.
func (f Field) BitOffset() uint { return f.bitOffset }

// BitWidth returns the field's width in bits.
func (f Field) BitWidth() uint { return f.bitWidth }

// Kind returns how the field's raw bits are interpreted.
func (f Field) Kind() Kind { return f.kind }

// BitOrder returns the field's within-byte bit numbering.
func (f Field) BitOrder() BitOrder { return f.bitOrder }

// ByteOrder returns the field's multi-byte combination order.
func (f Field) ByteOrder() ByteOrder { return f.byteOrder }

// EnumLabel returns the label for an enum value, if one was registered.
func (f Field) EnumLabel(v uint64) (string, bool) {
	label, ok := f.enum[v]
	return label, ok
}

// EnumValue returns the value registered for an enum label, if any.
func (f Field) EnumValue(label string) (uint64, bool) {
	for v, l := range f.enum {
		if l == label {
			return v, true
		}
	}
	return 0, false
}

// end returns the first bit past the field's range.
func (f Field) end() uint { return f.bitOffset + f.bitWidth }

func (f Field) String() string {
	return fmt.Sprintf("%s %s[%d:%d)", f.name, f.kind, f.bitOffset, f.end())
}
