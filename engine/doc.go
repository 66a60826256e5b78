// Package engine extracts and assigns typed field values against byte buffers.
//
// The engine is the read/write half of the library: given a validated
// schema.Layout and a caller-owned buffer, Read gathers a field's bits into
// a typed Value and Write scatters a Value's bit pattern back, leaving
// every other bit of the buffer untouched.
//
// # Bit addressing
//
// A field occupies global bits [offset, offset+width). Global bit g lives
// in byte g/8; the field's bit order says where inside that byte:
//
//	MSBFirst:  bit g at byte position 7-(g%8)   (wire protocols)
//	LSBFirst:  bit g at byte position g%8       (register maps)
//
// For fields spanning several bytes, the byte order says which end of the
// span is most significant:
//
//	BigEndian:     first byte in address order is most significant
//	LittleEndian:  last byte in address order is most significant
//
// So a 32-bit BigEndian field at offset 0 over [0x01 0x02 0x03 0x04]
// reads 0x01020304, and the same field LittleEndian reads 0x04030201.
//
// # Statelessness
//
// Read and Write are pure, synchronous transformations: no state survives
// a call, no reference to the buffer is retained, and nothing blocks or
// retries. Both validate fully before touching the buffer, so a failed
// Write never leaves a partial pattern behind. Concurrent calls against a
// shared Layout need no synchronization; concurrent access to the same
// buffer is the caller's to sequence.
package engine
