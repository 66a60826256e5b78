// Package schema models runtime-described binary structures.
//
// A structure is an ordered set of named bit ranges. Each range is a
// Field: offset and width in bits, a Kind saying how the raw bits are
// interpreted, and the bit- and byte-ordering conventions the range
// follows. A validated collection of fields is a Layout.
//
// # Construction
//
// Layouts can be built two ways. With explicit offsets:
//
//	ver, _ := schema.NewField("version", 0, 4, schema.KindUint)
//	ihl, _ := schema.NewField("ihl", 4, 4, schema.KindUint)
//	layout, err := schema.New(8, []schema.Field{ver, ihl})
//
// Or sequentially, most significant bits first, with the Builder:
//
//	layout, err := schema.NewBuilder("ipv4").
//		Uint("version", 4).
//		Uint("ihl", 4).
//		Build()
//
// Validation happens at construction and fails fast: overlapping ranges,
// fields outside the structure, and duplicate names are all rejected,
// and no partially valid Layout is ever produced.
//
// # Immutability
//
// Field and Layout are immutable after construction. A Layout may be
// shared read-only across arbitrarily many goroutines; all mutable state
// (the byte buffers) stays with the caller.
package schema
