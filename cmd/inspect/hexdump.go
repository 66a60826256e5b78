package main

import (
	"fmt"
	"io"
	"strings"
)

// hexDump prints buf 16 bytes per line with offsets, the usual layout for
// eyeballing packed structures.
func hexDump(w io.Writer, buf []byte) {
	for offset := 0; offset < len(buf); offset += 16 {
		fmt.Fprint(w, dumpLine(buf, offset))
		fmt.Fprintln(w)
	}
}

func dumpLine(buf []byte, offset int) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%08x: ", offset)
	for i := 0; i < 16; i++ {
		if offset+i < len(buf) {
			fmt.Fprintf(&b, "%02x ", buf[offset+i])
		} else {
			b.WriteString("-- ")
		}
	}
	return b.String()
}
