package engine

import (
	"github.com/bitlens/bitlens/errors"
	"github.com/bitlens/bitlens/schema"
)

// Read extracts the named field from buf and interprets it per the
// field's kind. The buffer must cover the whole layout; it is borrowed
// for the duration of the call and never retained.
func Read(l *schema.Layout, name string, buf []byte) (Value, error) {
	f, err := l.Field(name)
	if err != nil {
		return Value{}, errors.NotFound(errors.PhaseRead, name)
	}
	if len(buf) < l.SizeBytes() {
		return Value{}, errors.BufferTooShort(errors.PhaseRead, len(buf), l.SizeBytes())
	}
	return decode(f, buf), nil
}

// decode extracts and interprets one resolved field. The buffer is
// assumed to cover the field's range.
func decode(f schema.Field, buf []byte) Value {
	raw := extract(f, buf)
	debugf("read %s raw=%#x", f, raw)

	switch f.Kind() {
	case schema.KindInt:
		return Int(signExtend(raw, f.BitWidth()))
	case schema.KindBool:
		return Bool(raw != 0)
	case schema.KindFloat:
		if f.BitWidth() == 32 {
			return Value{kind: schema.KindFloat, bits: raw, width: 32}
		}
		return Value{kind: schema.KindFloat, bits: raw, width: 64}
	case schema.KindEnum:
		label, _ := f.EnumLabel(raw)
		return enumValue(raw, label)
	default:
		return Uint(raw)
	}
}

// Write validates v against the named field and scatters its bit pattern
// into buf, preserving every bit outside the field's range. Validation
// precedes any mutation: on error the buffer is untouched.
func Write(l *schema.Layout, name string, v Value, buf []byte) error {
	f, err := l.Field(name)
	if err != nil {
		return errors.NotFound(errors.PhaseWrite, name)
	}
	if len(buf) < l.SizeBytes() {
		return errors.BufferTooShort(errors.PhaseWrite, len(buf), l.SizeBytes())
	}

	raw, err := encode(f, v)
	if err != nil {
		return err
	}

	debugf("write %s raw=%#x", f, raw)
	scatter(f, buf, raw)
	return nil
}

// encode checks v's kind and range against f and returns the raw bit
// pattern to store, exactly BitWidth significant bits.
func encode(f schema.Field, v Value) (uint64, error) {
	w := f.BitWidth()

	switch f.Kind() {
	case schema.KindUint, schema.KindEnum:
		// Enum fields take plain unsigned values too; labels are a
		// read-side concern.
		if v.Kind() != schema.KindUint && v.Kind() != f.Kind() {
			return 0, errors.TypeMismatch(f.Name(), v.Kind().String(), f.Kind().String())
		}
		u := v.Uint()
		if w < 64 && u > mask(w) {
			return 0, errors.OutOfRange(f.Name(), u, w)
		}
		return u, nil

	case schema.KindInt:
		if v.Kind() != schema.KindInt {
			return 0, errors.TypeMismatch(f.Name(), v.Kind().String(), f.Kind().String())
		}
		i := v.Int()
		if w < 64 {
			min := -(int64(1) << (w - 1))
			max := int64(1)<<(w-1) - 1
			if i < min || i > max {
				return 0, errors.OutOfRange(f.Name(), i, w)
			}
		}
		return uint64(i) & mask(w), nil

	case schema.KindBool:
		if v.Kind() != schema.KindBool {
			return 0, errors.TypeMismatch(f.Name(), v.Kind().String(), f.Kind().String())
		}
		return v.bits, nil

	case schema.KindFloat:
		if v.Kind() != schema.KindFloat {
			return 0, errors.TypeMismatch(f.Name(), v.Kind().String(), f.Kind().String())
		}
		if uint(v.width) != w {
			return 0, errors.New(errors.PhaseWrite, errors.KindTypeMismatch).
				Field(f.Name()).
				Detail("float%d value for float%d field", v.width, w).
				Build()
		}
		return v.bits, nil

	default:
		return 0, errors.TypeMismatch(f.Name(), v.Kind().String(), f.Kind().String())
	}
}

// FieldValue pairs a descriptor with its decoded value, in layout order.
type FieldValue struct {
	Field schema.Field
	Value Value
}

// ReadAll decodes every field of the layout in insertion order. It fails
// the same way Read does; a short buffer fails before any field decodes.
func ReadAll(l *schema.Layout, buf []byte) ([]FieldValue, error) {
	if len(buf) < l.SizeBytes() {
		return nil, errors.BufferTooShort(errors.PhaseRead, len(buf), l.SizeBytes())
	}
	fields := l.Fields()
	out := make([]FieldValue, 0, len(fields))
	for _, f := range fields {
		out = append(out, FieldValue{Field: f, Value: decode(f, buf)})
	}
	return out, nil
}
