// Package bitlens reads and writes bitfield structures described at run time.
//
// A caller declares the layout of a binary structure as data, an ordered
// set of named bit ranges with types and byte/bit ordering, and then
// extracts or assigns typed values for those ranges against concrete byte
// buffers. No per-protocol code is generated or compiled, which suits
// protocol analysis and reverse engineering: a new wire format, register
// map, or packet layout becomes queryable the moment it is written down.
//
// # Architecture Overview
//
// The library is organized into packages with distinct responsibilities:
//
//	bitlens/            Root package: facade over schema and engine
//	├── schema/         Field descriptors, layout validation, sequential builder
//	├── engine/         Bit-level extraction and assignment against buffers
//	├── schemafile/     YAML/JSON layout documents
//	├── errors/         Structured error types
//	└── cmd/inspect/    CLI and interactive buffer inspector
//
// # Quick Start
//
// Describe a structure, then query buffers against it:
//
//	layout, err := bitlens.NewBuilder("ipv4").
//		Uint("version", 4).
//		Uint("ihl", 4).
//		Uint("tos", 8).
//		Uint("length", 16).
//		Build()
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	v, err := bitlens.Read(layout, "version", packet)
//	fmt.Println(v.Uint()) // 4
//
//	err = bitlens.Write(layout, "tos", bitlens.Uint(0x10), packet)
//
// # Value Kinds
//
// Fields carry one of a closed set of kinds: unsigned and signed integers
// up to 64 bits, single-bit booleans, IEEE-754 floats of 32 or 64 bits,
// and enums (unsigned values with a label map). Signed fields are two's
// complement at any width; a 3-bit int spans -4..3.
//
// # Ordering
//
// Each field carries its own conventions: bit order (most- or
// least-significant-first numbering within a byte) and byte order (which
// end of a multi-byte span is most significant). Mixed-order layouts are
// routine when reverse engineering, so these are per-field, not global.
//
// # Validation
//
// Layouts validate at construction and fail fast: overlapping ranges,
// out-of-bounds fields, and duplicate names never produce a Layout.
// Engine calls validate before mutating, so a failed write leaves the
// buffer exactly as it was.
//
// # Concurrency
//
// Layouts are immutable and freely shared. Buffers belong to the caller;
// the engine borrows one per call and keeps no reference, so synchronizing
// concurrent access to a buffer, and sequencing multi-field updates that
// must appear atomic, is the caller's responsibility.
package bitlens
