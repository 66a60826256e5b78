// Package errors provides structured error types for the bitlens library.
//
// Errors are categorized by Phase (where the error occurred) and Kind (error category).
// The Error type includes rich context: the field name involved, the offending value,
// and a cause chain.
//
// Use the Builder for structured error construction:
//
//	err := errors.New(errors.PhaseWrite, errors.KindValueOutOfRange).
//		Field("sequence").
//		Value(300).
//		Detail("value 300 does not fit in 8 bits").
//		Build()
//
// Or use convenience constructors for common patterns:
//
//	err := errors.Overlapping("flags", "sequence")
//	err := errors.NotFound(errors.PhaseRead, "checksum")
//
// All errors implement the standard error interface and support errors.Is/As.
// Matching with errors.Is compares Phase and Kind only, so callers can test
// for a category without reproducing the full context:
//
//	if errors.Is(err, &Error{Phase: PhaseRead, Kind: KindBufferTooShort}) { ... }
package errors
