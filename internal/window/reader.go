// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package window

import (
	"errors"
	"fmt"
	"io"
)

// Outcome classifies one fixed-width read attempt.
type Outcome int

const (
	// Complete means the buffer was filled.
	Complete Outcome = iota
	// CleanEnd means the stream ended before any byte of the unit.
	CleanEnd
	// Truncated means the stream ended partway through the unit.
	Truncated
)

func (o Outcome) String() string {
	switch o {
	case Complete:
		return "complete"
	case CleanEnd:
		return "clean end"
	case Truncated:
		return "truncated"
	}
	return fmt.Sprintf("Outcome(%d)", int(o))
}

// FixedReader reads fixed-width units from an underlying stream.
type FixedReader struct {
	r io.Reader
}

// NewFixedReader returns a FixedReader over r. Callers reading large files
// should pass a buffered reader.
func NewFixedReader(r io.Reader) *FixedReader {
	return &FixedReader{r: r}
}

// Read tries to fill buf completely. It returns the outcome and the number
// of bytes read. A non-nil error is returned only for failures other than
// reaching the end of the stream.
func (f *FixedReader) Read(buf []byte) (Outcome, int, error) {
	n, err := io.ReadFull(f.r, buf)
	switch {
	case err == nil:
		return Complete, n, nil
	case errors.Is(err, io.EOF):
		return CleanEnd, 0, nil
	case errors.Is(err, io.ErrUnexpectedEOF):
		return Truncated, n, nil
	default:
		return Truncated, n, err
	}
}

// Reader decodes a window file from a stream: first the header, then
// records until the stream ends.
type Reader struct {
	fr    *FixedReader
	buf   [RecordSize]byte
	count uint64
}

// NewReader returns a Reader over r.
func NewReader(r io.Reader) *Reader {
	return &Reader{fr: NewFixedReader(r)}
}

// ReadHeader reads the 16-byte range header. It must be called once,
// before Next. A stream shorter than HeaderSize yields ErrTruncatedHeader.
func (r *Reader) ReadHeader() (Header, error) {
	var b [HeaderSize]byte
	outcome, n, err := r.fr.Read(b[:])
	if err != nil {
		return Header{}, fmt.Errorf("reading header: %w", err)
	}
	if outcome != Complete {
		return Header{}, fmt.Errorf("%w: got %d of %d bytes", ErrTruncatedHeader, n, HeaderSize)
	}
	return DecodeHeader(b[:]), nil
}

// Next returns the next record. It returns io.EOF when the stream ends on a
// record boundary and a *TruncatedError when it ends inside a record.
func (r *Reader) Next() (Record, error) {
	outcome, n, err := r.fr.Read(r.buf[:])
	if err != nil {
		return Record{}, fmt.Errorf("reading record %d: %w", r.count, err)
	}
	switch outcome {
	case CleanEnd:
		return Record{}, io.EOF
	case Truncated:
		return Record{}, &TruncatedError{Index: r.count, Partial: n}
	}
	r.count++
	return DecodeRecord(r.buf[:]), nil
}

// Count returns the number of complete records read so far.
func (r *Reader) Count() uint64 {
	return r.count
}
