package hack

import (
	"bufio"
	"fmt"
	"io"
	"iter"
)

// Program is an assembled instruction stream in program order.
type Program struct {
	Codes []Code
}

// Words iterates (instruction address, word) pairs.
func (prog *Program) Words() iter.Seq2[int, Code] {
	return func(yield func(address int, code Code) bool) {
		for n, code := range prog.Codes {
			if !yield(n, code) {
				return
			}
		}
	}
}

// WriteTo writes the .hack text format, one 16-character binary line per
// word, newline terminated. Implements io.WriterTo.
func (prog *Program) WriteTo(w io.Writer) (n int64, err error) {
	bw := bufio.NewWriter(w)

	for _, code := range prog.Codes {
		var written int
		written, err = fmt.Fprintf(bw, "%016b\n", uint16(code))
		n += int64(written)
		if err != nil {
			return
		}
	}

	err = bw.Flush()
	return
}
