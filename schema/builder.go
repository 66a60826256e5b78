package schema

// Builder assembles a Layout from fields declared in order, most
// significant bits first, computing each offset from the running total.
// This mirrors how register maps and packet headers are written down in
// data sheets: top bit first, padding called out explicitly.
//
// Methods record the first construction error and make the remaining
// calls no-ops, so a declaration chain can be written without
// per-field error checks:
//
//	layout, err := schema.NewBuilder("status").
//		Bool("ready").
//		Reserved(3).
//		Uint("channel", 4).
//		Int("offset", 8).
//		Build()
type Builder struct {
	name      string
	fields    []Field
	pos       uint
	total     uint // explicit override, 0 = sum of widths
	bitOrder  BitOrder
	byteOrder ByteOrder
	err       error
}

// BuilderOption configures defaults applied to every appended field.
type BuilderOption func(*Builder)

// WithDefaultBitOrder sets the bit order given to appended fields.
func WithDefaultBitOrder(o BitOrder) BuilderOption {
	return func(b *Builder) { b.bitOrder = o }
}

// WithDefaultByteOrder sets the byte order given to appended fields.
func WithDefaultByteOrder(o ByteOrder) BuilderOption {
	return func(b *Builder) { b.byteOrder = o }
}

// WithTotalBits fixes the structure size instead of deriving it from the
// sum of declared widths. Fields extending past it fail at Build.
func WithTotalBits(total uint) BuilderOption {
	return func(b *Builder) { b.total = total }
}

// NewBuilder starts an empty layout declaration. The name is attached to
// the resulting Layout for presentation.
func NewBuilder(name string, opts ...BuilderOption) *Builder {
	b := &Builder{name: name}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

func (b *Builder) append(name string, width uint, kind Kind, opts ...FieldOption) *Builder {
	if b.err != nil {
		return b
	}
	base := []FieldOption{WithBitOrder(b.bitOrder), WithByteOrder(b.byteOrder)}
	f, err := NewField(name, b.pos, width, kind, append(base, opts...)...)
	if err != nil {
		b.err = err
		return b
	}
	b.fields = append(b.fields, f)
	b.pos += width
	return b
}

// Uint appends an unsigned integer field of the given width.
func (b *Builder) Uint(name string, width uint) *Builder {
	return b.append(name, width, KindUint)
}

// Int appends a two's-complement signed integer field of the given width.
func (b *Builder) Int(name string, width uint) *Builder {
	return b.append(name, width, KindInt)
}

// Bool appends a single-bit boolean field.
func (b *Builder) Bool(name string) *Builder {
	return b.append(name, 1, KindBool)
}

// Float appends an IEEE-754 field; width must be 32 or 64.
func (b *Builder) Float(name string, width uint) *Builder {
	return b.append(name, width, KindFloat)
}

// Enum appends an unsigned field carrying a value-to-label map.
func (b *Builder) Enum(name string, width uint, values map[uint64]string) *Builder {
	return b.append(name, width, KindEnum, WithEnumValues(values))
}

// Field appends a field with explicit options, overriding the builder
// defaults for this field only.
func (b *Builder) Field(name string, width uint, kind Kind, opts ...FieldOption) *Builder {
	return b.append(name, width, kind, opts...)
}

// Reserved skips width bits without declaring a field. The skipped range
// is not addressable and is left untouched by writes to other fields.
func (b *Builder) Reserved(width uint) *Builder {
	if b.err == nil {
		b.pos += width
	}
	return b
}

// Size returns the number of bits declared so far, reserved ranges included.
func (b *Builder) Size() uint { return b.pos }

// Build validates the declaration and produces the Layout. The total size
// is the sum of declared widths unless WithTotalBits fixed it.
func (b *Builder) Build() (*Layout, error) {
	if b.err != nil {
		return nil, b.err
	}
	total := b.total
	if total == 0 {
		total = b.pos
	}
	l, err := New(total, b.fields)
	if err != nil {
		return nil, err
	}
	return l.WithName(b.name), nil
}
