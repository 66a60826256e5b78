package errors

import (
	"errors"
	"strings"
	"testing"
)

func TestError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *Error
		contains []string
	}{
		{
			name: "full error",
			err: &Error{
				Phase:  PhaseWrite,
				Kind:   KindValueOutOfRange,
				Field:  "sequence",
				Detail: "value 300 does not fit in 8 bits",
			},
			contains: []string{"[write]", "value_out_of_range", "sequence", "300", "8 bits"},
		},
		{
			name: "two fields",
			err: &Error{
				Phase: PhaseLayout,
				Kind:  KindOverlap,
				Field: "flags",
				Other: "sequence",
			},
			contains: []string{"[layout]", "overlap", "flags", "sequence"},
		},
		{
			name: "minimal error",
			err: &Error{
				Phase: PhaseRead,
				Kind:  KindBufferTooShort,
			},
			contains: []string{"[read]", "buffer_too_short"},
		},
		{
			name: "error with cause",
			err: &Error{
				Phase:  PhaseSchema,
				Kind:   KindInvalidSchema,
				Detail: "malformed document",
				Cause:  errors.New("yaml: line 3"),
			},
			contains: []string{"[schema]", "invalid_schema", "malformed document", "caused by", "yaml: line 3"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg := tt.err.Error()
			for _, s := range tt.contains {
				if !strings.Contains(msg, s) {
					t.Errorf("error message %q does not contain %q", msg, s)
				}
			}
		})
	}
}

func TestError_Unwrap(t *testing.T) {
	cause := errors.New("root cause")
	err := &Error{
		Phase: PhaseSchema,
		Kind:  KindInvalidSchema,
		Cause: cause,
	}

	if !errors.Is(err.Unwrap(), cause) {
		t.Error("Unwrap did not return cause")
	}
	if !errors.Is(err, cause) {
		t.Error("errors.Is did not reach the cause through the chain")
	}
}

func TestError_Is(t *testing.T) {
	err := &Error{
		Phase: PhaseRead,
		Kind:  KindNotFound,
		Field: "checksum",
	}

	if !err.Is(&Error{Phase: PhaseRead, Kind: KindNotFound}) {
		t.Error("Is should match same phase and kind")
	}
	if err.Is(&Error{Phase: PhaseWrite, Kind: KindNotFound}) {
		t.Error("Is should not match different phase")
	}
	if err.Is(&Error{Phase: PhaseRead, Kind: KindBufferTooShort}) {
		t.Error("Is should not match different kind")
	}
	if err.Is(errors.New("plain")) {
		t.Error("Is should not match a non-structured error")
	}
}

func TestBuilder(t *testing.T) {
	cause := errors.New("inner")
	err := New(PhaseWrite, KindTypeMismatch).
		Field("temperature").
		Value(42).
		Detail("%s value for %s field", "uint", "float").
		Cause(cause).
		Build()

	if err.Phase != PhaseWrite || err.Kind != KindTypeMismatch {
		t.Errorf("phase/kind: got %s/%s", err.Phase, err.Kind)
	}
	if err.Field != "temperature" {
		t.Errorf("field: got %q", err.Field)
	}
	if err.Value != 42 {
		t.Errorf("value: got %v", err.Value)
	}
	if err.Detail != "uint value for float field" {
		t.Errorf("detail: got %q", err.Detail)
	}
	if !errors.Is(err, cause) {
		t.Error("cause not reachable")
	}
}

func TestConvenienceConstructors(t *testing.T) {
	tests := []struct {
		name  string
		err   *Error
		phase Phase
		kind  Kind
	}{
		{"invalid field", InvalidField("x", "bad width"), PhaseField, KindInvalidField},
		{"overlap", Overlapping("a", "b"), PhaseLayout, KindOverlap},
		{"out of bounds", OutOfBounds("x", 70, 64), PhaseLayout, KindOutOfBounds},
		{"duplicate", DuplicateName("x"), PhaseLayout, KindDuplicateName},
		{"not found", NotFound(PhaseRead, "x"), PhaseRead, KindNotFound},
		{"too short", BufferTooShort(PhaseWrite, 2, 4), PhaseWrite, KindBufferTooShort},
		{"mismatch", TypeMismatch("x", "bool", "uint"), PhaseWrite, KindTypeMismatch},
		{"out of range", OutOfRange("x", 300, 8), PhaseWrite, KindValueOutOfRange},
		{"bad schema", InvalidSchema("no fields", nil), PhaseSchema, KindInvalidSchema},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.err.Phase != tt.phase {
				t.Errorf("phase: got %s, want %s", tt.err.Phase, tt.phase)
			}
			if tt.err.Kind != tt.kind {
				t.Errorf("kind: got %s, want %s", tt.err.Kind, tt.kind)
			}
			if tt.err.Error() == "" {
				t.Error("empty message")
			}
		})
	}
}

func TestOverlappingNamesBoth(t *testing.T) {
	err := Overlapping("flags", "sequence")
	msg := err.Error()
	if !strings.Contains(msg, "flags") || !strings.Contains(msg, "sequence") {
		t.Errorf("overlap error must name both fields, got %q", msg)
	}
}
