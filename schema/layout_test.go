package schema

import (
	"errors"
	"testing"

	bterrors "github.com/bitlens/bitlens/errors"
)

func mustField(t *testing.T, name string, offset, width uint, kind Kind, opts ...FieldOption) Field {
	t.Helper()
	f, err := NewField(name, offset, width, kind, opts...)
	if err != nil {
		t.Fatalf("NewField(%s): %v", name, err)
	}
	return f
}

func TestNew(t *testing.T) {
	fields := []Field{
		mustField(t, "version", 0, 4, KindUint),
		mustField(t, "ihl", 4, 4, KindUint),
		mustField(t, "length", 8, 16, KindUint),
	}
	l, err := New(24, fields)
	if err != nil {
		t.Fatal(err)
	}
	if l.TotalBits() != 24 {
		t.Errorf("TotalBits: got %d, want 24", l.TotalBits())
	}
	if l.SizeBytes() != 3 {
		t.Errorf("SizeBytes: got %d, want 3", l.SizeBytes())
	}
	if l.NumFields() != 3 {
		t.Errorf("NumFields: got %d, want 3", l.NumFields())
	}
}

func TestSizeBytesRoundsUp(t *testing.T) {
	tests := []struct {
		bits uint
		want int
	}{
		{1, 1}, {7, 1}, {8, 1}, {9, 2}, {16, 2}, {17, 3}, {64, 8}, {65, 9},
	}
	for _, tc := range tests {
		l, err := New(tc.bits, []Field{mustField(t, "x", 0, 1, KindBool)})
		if err != nil {
			t.Fatal(err)
		}
		if got := l.SizeBytes(); got != tc.want {
			t.Errorf("SizeBytes(%d bits): got %d, want %d", tc.bits, got, tc.want)
		}
	}
}

func TestOverlapRejected(t *testing.T) {
	fields := []Field{
		mustField(t, "a", 0, 8, KindUint),
		mustField(t, "b", 4, 8, KindUint),
	}
	_, err := New(16, fields)
	if err == nil {
		t.Fatal("overlapping fields accepted")
	}
	if !errors.Is(err, &bterrors.Error{Phase: bterrors.PhaseLayout, Kind: bterrors.KindOverlap}) {
		t.Fatalf("wrong error: %v", err)
	}

	var structured *bterrors.Error
	if !errors.As(err, &structured) {
		t.Fatal("not a structured error")
	}
	got := map[string]bool{structured.Field: true, structured.Other: true}
	if !got["a"] || !got["b"] {
		t.Errorf("overlap error should name both fields, got %q and %q", structured.Field, structured.Other)
	}
}

func TestOverlapNonAdjacentPair(t *testing.T) {
	// The colliding pair is not adjacent in declaration order; the sweep
	// must still find it.
	fields := []Field{
		mustField(t, "tail", 56, 8, KindUint),
		mustField(t, "head", 0, 8, KindUint),
		mustField(t, "mid", 60, 4, KindUint),
	}
	_, err := New(64, fields)
	if err == nil {
		t.Fatal("overlapping fields accepted")
	}
}

func TestTouchingRangesAllowed(t *testing.T) {
	// [0,8) and [8,16) share a boundary but no bits.
	fields := []Field{
		mustField(t, "a", 0, 8, KindUint),
		mustField(t, "b", 8, 8, KindUint),
	}
	if _, err := New(16, fields); err != nil {
		t.Fatalf("adjacent fields rejected: %v", err)
	}
}

func TestOutOfBoundsRejected(t *testing.T) {
	fields := []Field{mustField(t, "a", 60, 8, KindUint)}
	_, err := New(64, fields)
	if err == nil {
		t.Fatal("out-of-bounds field accepted")
	}
	if !errors.Is(err, &bterrors.Error{Phase: bterrors.PhaseLayout, Kind: bterrors.KindOutOfBounds}) {
		t.Fatalf("wrong error: %v", err)
	}
}

func TestOutOfBoundsOffsetOverflowRejected(t *testing.T) {
	// offset+width wraps around uint; the field must still be rejected
	// rather than slipping past validation and addressing past the buffer.
	tests := []struct {
		name   string
		offset uint
		width  uint
	}{
		{"max offset", ^uint(0), 1},
		{"wrap to zero", ^uint(0) - 3, 4},
		{"offset at size", 8, 1},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			fields := []Field{mustField(t, "x", tc.offset, tc.width, KindUint)}
			_, err := New(8, fields)
			if err == nil {
				t.Fatal("field outside the structure accepted")
			}
			if !errors.Is(err, &bterrors.Error{Phase: bterrors.PhaseLayout, Kind: bterrors.KindOutOfBounds}) {
				t.Fatalf("wrong error: %v", err)
			}
		})
	}
}

func TestDuplicateNameRejected(t *testing.T) {
	fields := []Field{
		mustField(t, "a", 0, 8, KindUint),
		mustField(t, "a", 8, 8, KindUint),
	}
	_, err := New(16, fields)
	if err == nil {
		t.Fatal("duplicate names accepted")
	}
	if !errors.Is(err, &bterrors.Error{Phase: bterrors.PhaseLayout, Kind: bterrors.KindDuplicateName}) {
		t.Fatalf("wrong error: %v", err)
	}
}

func TestFieldLookup(t *testing.T) {
	l, err := New(16, []Field{
		mustField(t, "a", 0, 8, KindUint),
		mustField(t, "b", 8, 8, KindInt),
	})
	if err != nil {
		t.Fatal(err)
	}

	f, err := l.Field("b")
	if err != nil {
		t.Fatal(err)
	}
	if f.Kind() != KindInt || f.BitOffset() != 8 {
		t.Errorf("lookup returned wrong descriptor: %v", f)
	}

	_, err = l.Field("missing")
	if !errors.Is(err, &bterrors.Error{Phase: bterrors.PhaseLayout, Kind: bterrors.KindNotFound}) {
		t.Fatalf("wrong error for missing field: %v", err)
	}
}

func TestFieldsPreservesInsertionOrder(t *testing.T) {
	// Declaration order differs from offset order.
	l, err := New(24, []Field{
		mustField(t, "last", 16, 8, KindUint),
		mustField(t, "first", 0, 8, KindUint),
		mustField(t, "mid", 8, 8, KindUint),
	})
	if err != nil {
		t.Fatal(err)
	}

	want := []string{"last", "first", "mid"}
	got := l.Fields()
	if len(got) != len(want) {
		t.Fatalf("got %d fields, want %d", len(got), len(want))
	}
	for i, name := range want {
		if got[i].Name() != name {
			t.Errorf("fields[%d]: got %s, want %s", i, got[i].Name(), name)
		}
	}
}

func TestFieldsReturnsFreshCopy(t *testing.T) {
	l, err := New(8, []Field{mustField(t, "a", 0, 8, KindUint)})
	if err != nil {
		t.Fatal(err)
	}

	first := l.Fields()
	first[0] = Field{}
	second := l.Fields()
	if second[0].Name() != "a" {
		t.Error("mutating the returned slice reached the layout")
	}
}

func TestEmptyLayout(t *testing.T) {
	l, err := New(32, nil)
	if err != nil {
		t.Fatal(err)
	}
	if l.NumFields() != 0 || l.SizeBytes() != 4 {
		t.Errorf("empty layout: fields=%d size=%d", l.NumFields(), l.SizeBytes())
	}
}
