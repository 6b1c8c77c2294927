package graph

import (
	"bufio"
	"errors"
	"io"
)

// ErrLineTooLong marks a line over the reader's size cap; the line is skipped, the read goes on
var ErrLineTooLong = errors.New("line exceeds maximum size")

// lineReader splits a stream on \n, dropping a trailing \r
// lines over max are consumed to their end but only a diagnostic prefix is kept
type lineReader struct {
	br  *bufio.Reader
	max int
	buf []byte
}

func newLineReader(src io.Reader, max int) *lineReader {
	return &lineReader{br: bufio.NewReaderSize(src, min(initialBufSize, max)), max: max}
}

// next returns the next line without its terminator; io.EOF only once the stream is drained
// the slice is reused by the following call
func (lr *lineReader) next() (line []byte, tooLong bool, err error) {
	lr.buf = lr.buf[:0]
	read := 0
	for {
		frag, ferr := lr.br.ReadSlice('\n')
		read += len(frag)
		if !tooLong {
			lr.buf = append(lr.buf, frag...)
			// \r\n is the most a terminator adds
			if len(lr.buf) > lr.max+2 {
				tooLong = true
				lr.buf = lr.buf[:min(len(lr.buf), diagRawMax)]
			}
		}

		switch {
		case errors.Is(ferr, bufio.ErrBufferFull):
			continue
		case ferr == nil:
		case errors.Is(ferr, io.EOF):
			if read == 0 {
				return nil, false, io.EOF
			}
		default:
			return nil, false, ferr
		}

		if tooLong {
			return trimEOL(lr.buf), true, nil
		}
		line = trimEOL(lr.buf)
		if len(line) > lr.max {
			return line[:min(len(line), diagRawMax)], true, nil
		}
		return line, false, nil
	}
}

func trimEOL(b []byte) []byte {
	if n := len(b); n > 0 && b[n-1] == '\n' {
		b = b[:n-1]
	}
	if n := len(b); n > 0 && b[n-1] == '\r' {
		b = b[:n-1]
	}
	return b
}
