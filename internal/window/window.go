// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package window decodes and encodes the binary window files written by the
// sieve. A window file is a 16-byte header followed by zero or more 16-byte
// prime records, all little-endian, with no count field and no terminator.
//
//	bytes 0-7    range_start  uint64
//	bytes 8-15   range_end    uint64
//	bytes 16..   {prime uint64, next_value uint64} repeated
package window

import (
	"encoding/binary"
	"errors"
	"fmt"
)

const (
	// HeaderSize is the length of the range header at the start of every file.
	HeaderSize = 16
	// RecordSize is the length of one prime record.
	RecordSize = 16
)

var (
	ErrTruncatedHeader = errors.New("truncated window header")
	ErrTruncatedRecord = errors.New("truncated prime record")
)

// Header is the numeric range a window file covers.
type Header struct {
	RangeStart uint64 `json:"range_start" yaml:"range_start"`
	RangeEnd   uint64 `json:"range_end" yaml:"range_end"`
}

// Record is one prime found by the sieve and the value stored next to it.
type Record struct {
	Prime     uint64
	NextValue uint64
}

// DecodeHeader decodes a header from the first HeaderSize bytes of b.
func DecodeHeader(b []byte) Header {
	return Header{
		RangeStart: binary.LittleEndian.Uint64(b[0:8]),
		RangeEnd:   binary.LittleEndian.Uint64(b[8:16]),
	}
}

// PutHeader encodes h into the first HeaderSize bytes of b.
func PutHeader(b []byte, h Header) {
	binary.LittleEndian.PutUint64(b[0:8], h.RangeStart)
	binary.LittleEndian.PutUint64(b[8:16], h.RangeEnd)
}

// DecodeRecord decodes a record from the first RecordSize bytes of b.
func DecodeRecord(b []byte) Record {
	return Record{
		Prime:     binary.LittleEndian.Uint64(b[0:8]),
		NextValue: binary.LittleEndian.Uint64(b[8:16]),
	}
}

// PutRecord encodes r into the first RecordSize bytes of b.
func PutRecord(b []byte, r Record) {
	binary.LittleEndian.PutUint64(b[0:8], r.Prime)
	binary.LittleEndian.PutUint64(b[8:16], r.NextValue)
}

// TruncatedError reports a record cut short by the end of the stream.
type TruncatedError struct {
	// Index is the zero-based position of the incomplete record.
	Index uint64
	// Partial is the number of bytes that were available (1..RecordSize-1).
	Partial int
}

func (e *TruncatedError) Error() string {
	return fmt.Sprintf("%v: record %d has %d of %d bytes", ErrTruncatedRecord, e.Index, e.Partial, RecordSize)
}

func (e *TruncatedError) Is(target error) bool {
	return target == ErrTruncatedRecord
}
