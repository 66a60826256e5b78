package schema

import (
	"sort"

	"github.com/bitlens/bitlens/errors"
)

// Layout is a validated, ordered collection of field descriptors plus the
// total structure size in bits. A Layout, once built, is immutable and may
// be shared across any number of concurrent readers and writers of
// distinct buffers without synchronization.
type Layout struct {
	name      string
	totalBits uint
	fields    []Field
	index     map[string]int
}

// New builds a Layout over totalBits bits from the given descriptors,
// validating that no two fields overlap, every field lies inside the
// structure, and names are unique. On violation it reports which field
// (or field pair) is at fault and no Layout is produced.
//
// Field order is preserved for iteration and reporting; it does not
// affect addressing, which each descriptor carries in its offset.
func New(totalBits uint, fields []Field) (*Layout, error) {
	l := &Layout{
		totalBits: totalBits,
		fields:    make([]Field, len(fields)),
		index:     make(map[string]int, len(fields)),
	}
	copy(l.fields, fields)

	for i, f := range l.fields {
		if _, dup := l.index[f.name]; dup {
			return nil, errors.DuplicateName(f.name)
		}
		l.index[f.name] = i

		// Checked in two steps so that offset+width cannot wrap around
		// uint and sneak a far-out-of-range field past validation.
		if f.bitOffset >= totalBits {
			return nil, errors.OutOfBounds(f.name, f.bitOffset, totalBits)
		}
		if f.bitWidth > totalBits-f.bitOffset {
			return nil, errors.OutOfBounds(f.name, f.end(), totalBits)
		}
	}

	if a, b, ok := findOverlap(l.fields); ok {
		return nil, errors.Overlapping(a, b)
	}

	return l, nil
}

// findOverlap reports the first pair of intersecting bit ranges, by way of
// a sort-and-sweep over range starts. Sub-quadratic so that layouts with
// hundreds of fields stay cheap to validate.
func findOverlap(fields []Field) (a, b string, found bool) {
	if len(fields) < 2 {
		return "", "", false
	}

	byStart := make([]Field, len(fields))
	copy(byStart, fields)
	sort.SliceStable(byStart, func(i, j int) bool {
		return byStart[i].bitOffset < byStart[j].bitOffset
	})

	for i := 1; i < len(byStart); i++ {
		prev, cur := byStart[i-1], byStart[i]
		if cur.bitOffset < prev.end() {
			return prev.name, cur.name, true
		}
	}
	return "", "", false
}

// WithName returns a copy of the layout carrying a human-readable name,
// used only for presentation.
func (l *Layout) WithName(name string) *Layout {
	dup := *l
	dup.name = name
	return &dup
}

// Name returns the layout's presentation name, possibly empty.
func (l *Layout) Name() string { return l.name }

// TotalBits returns the structure size in bits.
func (l *Layout) TotalBits() uint { return l.totalBits }

// SizeBytes returns the minimum buffer length in bytes able to hold the
// structure: ceil(TotalBits/8).
func (l *Layout) SizeBytes() int {
	return int((l.totalBits + 7) / 8)
}

// NumFields returns the number of descriptors in the layout.
func (l *Layout) NumFields() int { return len(l.fields) }

// Field looks a descriptor up by name.
func (l *Layout) Field(name string) (Field, error) {
	i, ok := l.index[name]
	if !ok {
		return Field{}, errors.NotFound(errors.PhaseLayout, name)
	}
	return l.fields[i], nil
}

// Fields returns the descriptors in insertion order. The slice is a fresh
// copy on every call; callers may not mutate the layout through it.
func (l *Layout) Fields() []Field {
	out := make([]Field, len(l.fields))
	copy(out, l.fields)
	return out
}
