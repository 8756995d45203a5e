package util

import (
	"bufio"
	"fmt"
	"io"
)

// HexDump writes b as two-byte groups, sixteen bytes to a line, each line
// prefixed with its offset. The dump ends with a blank line.
func HexDump(w io.Writer, b []byte) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "0x%04x:\t", 0)
	for i := 0; i < len(b); i += 2 {
		if i+1 < len(b) {
			fmt.Fprintf(bw, "%02x%02x ", b[i], b[i+1])
		} else {
			fmt.Fprintf(bw, "%02x ", b[i])
		}
		if (i+2)%16 == 0 {
			fmt.Fprintf(bw, "\n0x%04x:\t", i+2)
		}
	}
	fmt.Fprint(bw, "\n\n")
	return bw.Flush()
}
