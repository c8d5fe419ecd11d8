// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package window

import (
	"bufio"
	"fmt"
	"io"
	"os"
)

// Writer encodes a window file. It is the inverse of Reader and is used to
// produce fixtures and sample windows.
type Writer struct {
	w   io.Writer
	buf [RecordSize]byte
}

// NewWriter writes h to w and returns a Writer for the records that follow.
func NewWriter(w io.Writer, h Header) (*Writer, error) {
	wr := &Writer{w: w}
	PutHeader(wr.buf[:], h)
	if _, err := w.Write(wr.buf[:HeaderSize]); err != nil {
		return nil, fmt.Errorf("writing header: %w", err)
	}
	return wr, nil
}

// Write encodes one record.
func (w *Writer) Write(r Record) error {
	PutRecord(w.buf[:], r)
	if _, err := w.w.Write(w.buf[:]); err != nil {
		return fmt.Errorf("writing record: %w", err)
	}
	return nil
}

// WriteFile creates path and writes a complete window file to it.
func WriteFile(path string, h Header, records []Record) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	bw := bufio.NewWriter(f)
	w, err := NewWriter(bw, h)
	if err != nil {
		f.Close()
		return err
	}
	for _, r := range records {
		if err := w.Write(r); err != nil {
			f.Close()
			return err
		}
	}
	if err := bw.Flush(); err != nil {
		f.Close()
		return fmt.Errorf("flushing %s: %w", path, err)
	}
	return f.Close()
}
