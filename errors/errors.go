package errors

import (
	"fmt"
	"strings"
)

// Phase indicates where in processing the error occurred
type Phase string

const (
	PhaseField  Phase = "field"  // descriptor construction
	PhaseLayout Phase = "layout" // layout validation
	PhaseRead   Phase = "read"   // buffer extraction
	PhaseWrite  Phase = "write"  // buffer assignment
	PhaseSchema Phase = "schema" // schema document loading
)

// Kind categorizes the error
type Kind string

const (
	KindInvalidField    Kind = "invalid_field"
	KindOverlap         Kind = "overlap"
	KindOutOfBounds     Kind = "out_of_bounds"
	KindDuplicateName   Kind = "duplicate_name"
	KindNotFound        Kind = "not_found"
	KindBufferTooShort  Kind = "buffer_too_short"
	KindTypeMismatch    Kind = "type_mismatch"
	KindValueOutOfRange Kind = "value_out_of_range"
	KindInvalidSchema   Kind = "invalid_schema"
)

// Error is the structured error type used throughout the library
type Error struct {
	Value  any
	Cause  error
	Phase  Phase
	Kind   Kind
	Field  string
	Other  string // second field involved, e.g. the other half of an overlap
	Detail string
}

// Error implements the error interface
func (e *Error) Error() string {
	var b strings.Builder

	b.WriteByte('[')
	b.WriteString(string(e.Phase))
	b.WriteString("] ")
	b.WriteString(string(e.Kind))

	if e.Field != "" {
		b.WriteString(" at ")
		b.WriteString(e.Field)
		if e.Other != "" {
			b.WriteString(" / ")
			b.WriteString(e.Other)
		}
	}

	if e.Detail != "" {
		b.WriteString(": ")
		b.WriteString(e.Detail)
	}

	if e.Cause != nil {
		b.WriteString(" (caused by: ")
		b.WriteString(e.Cause.Error())
		b.WriteByte(')')
	}

	return b.String()
}

// Unwrap returns the underlying error
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error
func (e *Error) Is(target error) bool {
	if t, ok := target.(*Error); ok {
		return e.Phase == t.Phase && e.Kind == t.Kind
	}
	return false
}

// Builder provides structured error construction
type Builder struct {
	err Error
}

// New creates a new error builder
func New(phase Phase, kind Kind) *Builder {
	return &Builder{
		err: Error{
			Phase: phase,
			Kind:  kind,
		},
	}
}

// Field sets the field name the error refers to
func (b *Builder) Field(name string) *Builder {
	b.err.Field = name
	return b
}

// Other sets the second field involved in the error
func (b *Builder) Other(name string) *Builder {
	b.err.Other = name
	return b
}

// Value sets the offending value
func (b *Builder) Value(v any) *Builder {
	b.err.Value = v
	return b
}

// Cause sets the underlying error
func (b *Builder) Cause(err error) *Builder {
	b.err.Cause = err
	return b
}

// Detail sets the human-readable detail message
func (b *Builder) Detail(msg string, args ...any) *Builder {
	if len(args) > 0 {
		b.err.Detail = fmt.Sprintf(msg, args...)
	} else {
		b.err.Detail = msg
	}
	return b
}

// Build returns the constructed error
func (b *Builder) Build() *Error {
	return &b.err
}

// Convenience constructors for common error patterns

// InvalidField creates a malformed-descriptor error
func InvalidField(name, detail string) *Error {
	return &Error{
		Phase:  PhaseField,
		Kind:   KindInvalidField,
		Field:  name,
		Detail: detail,
	}
}

// Overlapping creates an overlapping-fields error naming both descriptors
func Overlapping(a, b string) *Error {
	return &Error{
		Phase:  PhaseLayout,
		Kind:   KindOverlap,
		Field:  a,
		Other:  b,
		Detail: "bit ranges intersect",
	}
}

// OutOfBounds creates an error for a field extending past the structure
func OutOfBounds(name string, end, total uint) *Error {
	return &Error{
		Phase:  PhaseLayout,
		Kind:   KindOutOfBounds,
		Field:  name,
		Detail: fmt.Sprintf("field ends at bit %d, structure is %d bits", end, total),
		Value:  end,
	}
}

// DuplicateName creates a duplicate field name error
func DuplicateName(name string) *Error {
	return &Error{
		Phase:  PhaseLayout,
		Kind:   KindDuplicateName,
		Field:  name,
		Detail: "field name already used",
	}
}

// NotFound creates an unknown field name error
func NotFound(phase Phase, name string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindNotFound,
		Field:  name,
		Detail: "no such field in layout",
	}
}

// BufferTooShort creates an undersized buffer error
func BufferTooShort(phase Phase, got, want int) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindBufferTooShort,
		Detail: fmt.Sprintf("buffer is %d bytes, layout needs %d", got, want),
		Value:  got,
	}
}

// TypeMismatch creates a value/field kind mismatch error
func TypeMismatch(name, valueKind, fieldKind string) *Error {
	return &Error{
		Phase:  PhaseWrite,
		Kind:   KindTypeMismatch,
		Field:  name,
		Detail: fmt.Sprintf("%s value for %s field", valueKind, fieldKind),
	}
}

// OutOfRange creates an unrepresentable value error
func OutOfRange(name string, value any, width uint) *Error {
	return &Error{
		Phase:  PhaseWrite,
		Kind:   KindValueOutOfRange,
		Field:  name,
		Detail: fmt.Sprintf("value %v does not fit in %d bits", value, width),
		Value:  value,
	}
}

// InvalidSchema creates a malformed schema document error
func InvalidSchema(detail string, cause error) *Error {
	return &Error{
		Phase:  PhaseSchema,
		Kind:   KindInvalidSchema,
		Detail: detail,
		Cause:  cause,
	}
}

// Wrap wraps an existing error with additional context
func Wrap(phase Phase, kind Kind, cause error, detail string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   kind,
		Detail: detail,
		Cause:  cause,
	}
}
