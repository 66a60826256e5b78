package engine

import (
	"github.com/bitlens/bitlens/schema"
)

// mask returns a uint64 with the low n bits set.
func mask(n uint) uint64 {
	if n >= 64 {
		return ^uint64(0)
	}
	return 1<<n - 1
}

// byteRun is one byte's worth of a field: the byte index and the global
// bit range [lo, hi) the field occupies inside it.
type byteRun struct {
	idx    uint
	lo, hi uint
}

// runs yields the byte span of f most significant byte first, per the
// field's byte order. BigEndian walks the span in ascending address
// order, LittleEndian in descending.
func runs(f schema.Field, visit func(byteRun)) {
	off, w := f.BitOffset(), f.BitWidth()
	first := off / 8
	last := (off + w - 1) / 8

	run := func(k uint) byteRun {
		lo, hi := off, off+w
		if start := k * 8; start > lo {
			lo = start
		}
		if end := (k + 1) * 8; end < hi {
			hi = end
		}
		return byteRun{idx: k, lo: lo, hi: hi}
	}

	if f.ByteOrder() == schema.BigEndian {
		for k := first; k <= last; k++ {
			visit(run(k))
		}
		return
	}
	for k := last; ; k-- {
		visit(run(k))
		if k == first {
			break
		}
	}
}

// chunkShift returns how far a run's bits sit above bit 0 of its byte.
// MSBFirst places global bit g at byte position 7-(g%8), so the run ends
// hi-k*8 bits down from the top of the byte; LSBFirst places bit g at
// position g%8, so the run starts at lo's in-byte offset.
func chunkShift(f schema.Field, r byteRun) uint {
	if f.BitOrder() == schema.MSBFirst {
		return 8 - (r.hi - r.idx*8)
	}
	return r.lo - r.idx*8
}

// extract gathers a field's bits from buf into an unsigned accumulator of
// exactly BitWidth significant bits. Each visited byte contributes a
// contiguous chunk; chunks are concatenated most significant first, so
// the byte order of the walk decides which end of the span dominates.
func extract(f schema.Field, buf []byte) uint64 {
	var acc uint64
	runs(f, func(r byteRun) {
		n := r.hi - r.lo
		chunk := uint64(buf[r.idx]>>chunkShift(f, r)) & mask(n)
		acc = acc<<n | chunk
	})
	return acc
}

// scatter is the inverse of extract: it peels chunks off raw most
// significant first and lands each in its byte, clearing exactly the
// field's bits there and leaving every other bit of the byte intact.
func scatter(f schema.Field, buf []byte, raw uint64) {
	remaining := f.BitWidth()
	runs(f, func(r byteRun) {
		n := r.hi - r.lo
		remaining -= n
		chunk := byte(raw >> remaining & mask(n))
		shift := chunkShift(f, r)
		buf[r.idx] = buf[r.idx]&^(byte(mask(n))<<shift) | chunk<<shift
	})
}

// signExtend reinterprets the low width bits of raw as a two's-complement
// signed integer.
func signExtend(raw uint64, width uint) int64 {
	if width < 64 && raw&(1<<(width-1)) != 0 {
		return int64(raw | ^mask(width))
	}
	return int64(raw)
}
