// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package convert

import (
	"bufio"
	"io"
	"strconv"

	"github.com/pdiddy/bin2csv/internal/window"
)

const (
	columnsPlain   = "prime, next_value\n"
	columnsChecked = "prime, next_value, is_prime\n"
)

// csvWriter emits the CSV form of a window. The column header separates
// with ", " and data lines with "," and no space.
type csvWriter struct {
	w     *bufio.Writer
	check bool
	line  []byte
}

func newCSVWriter(w io.Writer, size int, check bool) *csvWriter {
	return &csvWriter{
		w:     bufio.NewWriterSize(w, size),
		check: check,
		line:  make([]byte, 0, 64),
	}
}

// WriteHeader writes the range comment and the column header.
func (c *csvWriter) WriteHeader(h window.Header) error {
	b := append(c.line[:0], "# Range: "...)
	b = strconv.AppendUint(b, h.RangeStart, 10)
	b = append(b, " to "...)
	b = strconv.AppendUint(b, h.RangeEnd, 10)
	b = append(b, '\n')
	if c.check {
		b = append(b, columnsChecked...)
	} else {
		b = append(b, columnsPlain...)
	}
	c.line = b
	_, err := c.w.Write(b)
	return err
}

// WriteRecord writes one data line. isPrime is ignored unless check mode
// is on.
func (c *csvWriter) WriteRecord(r window.Record, isPrime bool) error {
	b := strconv.AppendUint(c.line[:0], r.Prime, 10)
	b = append(b, ',')
	b = strconv.AppendUint(b, r.NextValue, 10)
	if c.check {
		b = append(b, ',')
		b = strconv.AppendBool(b, isPrime)
	}
	b = append(b, '\n')
	c.line = b
	_, err := c.w.Write(b)
	return err
}

func (c *csvWriter) Flush() error {
	return c.w.Flush()
}
