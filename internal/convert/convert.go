// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package convert turns binary sieve window files into CSV, one file at a
// time or for every window file in a directory.
package convert

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/pdiddy/bin2csv/internal/primality"
	"github.com/pdiddy/bin2csv/internal/window"
	"github.com/pdiddy/bin2csv/pkg/types"
)

// Result describes one converted window file.
type Result struct {
	Input   string
	Output  string
	Header  window.Header
	Records uint64
	// Checked is true when every record's prime was re-tested.
	Checked bool
	// Composites counts records whose prime failed the check.
	Composites uint64
}

// Converter converts window files. The zero value converts without
// checking, using default buffer sizes and extensions, and prints nothing.
type Converter struct {
	cfg types.ConversionConfig

	// Progress receives advisory per-file lines. Nil disables them.
	Progress io.Writer
	// Warnings receives directory entries skipped during a batch.
	// Nil means os.Stderr.
	Warnings io.Writer
	// OnConverted, if set, is called after each file of a batch converts.
	// An error aborts the batch.
	OnConverted func(Result) error
}

// New returns a Converter for cfg. Progress lines go to progress when
// cfg.Verbose is set.
func New(cfg types.ConversionConfig, progress io.Writer) *Converter {
	c := &Converter{cfg: cfg.WithDefaults()}
	if cfg.Verbose {
		c.Progress = progress
	}
	return c
}

// ConvertFile converts the window at inputPath to CSV at outputPath and
// returns the number of records written.
func ConvertFile(inputPath, outputPath string, check bool) (uint64, error) {
	c := New(types.ConversionConfig{Check: check}, nil)
	res, err := c.ConvertFile(inputPath, outputPath)
	return res.Records, err
}

// ConvertFile converts one window file. The output is created or
// truncated; it is flushed and closed before a nil error is returned.
func (c *Converter) ConvertFile(inputPath, outputPath string) (Result, error) {
	cfg := c.cfg.WithDefaults()
	res := Result{Input: inputPath, Output: outputPath, Checked: cfg.Check}

	in, err := os.Open(inputPath)
	if err != nil {
		return res, newError("opening", inputPath, openKind(err), err)
	}
	defer in.Close()

	info, err := in.Stat()
	if err != nil {
		return res, newError("opening", inputPath, ErrIO, err)
	}
	if info.IsDir() {
		return res, newError("opening", inputPath, ErrIO, errors.New("is a directory"))
	}
	adviseSequential(in)

	r := window.NewReader(bufio.NewReaderSize(in, cfg.BufferSize))
	h, err := r.ReadHeader()
	if err != nil {
		return res, newError("reading", inputPath, readKind(err), err)
	}
	res.Header = h
	c.progressf("Converting %s (range: %d to %d)\n", filepath.Base(inputPath), h.RangeStart, h.RangeEnd)

	out, err := os.Create(outputPath)
	if err != nil {
		return res, newError("creating", outputPath, ErrOutputWrite, err)
	}

	if err := writeCSV(r, newCSVWriter(out, cfg.BufferSize, cfg.Check), &res, inputPath, outputPath); err != nil {
		out.Close()
		return res, err
	}
	if err := out.Close(); err != nil {
		return res, newError("closing", outputPath, ErrOutputWrite, err)
	}

	c.progressf("Wrote %d prime records to %s\n", res.Records, filepath.Base(outputPath))
	return res, nil
}

// writeCSV streams every record from r to w, counting into res.
func writeCSV(r *window.Reader, w *csvWriter, res *Result, inputPath, outputPath string) error {
	if err := w.WriteHeader(res.Header); err != nil {
		return newError("writing", outputPath, ErrOutputWrite, err)
	}
	for {
		rec, err := r.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return newError("reading", inputPath, readKind(err), err)
		}

		isPrime := false
		if res.Checked {
			isPrime = primality.IsPrime(rec.Prime)
			if !isPrime {
				res.Composites++
			}
		}
		if err := w.WriteRecord(rec, isPrime); err != nil {
			return newError("writing", outputPath, ErrOutputWrite, err)
		}
		res.Records++
	}
	if err := w.Flush(); err != nil {
		return newError("flushing", outputPath, ErrOutputWrite, err)
	}
	return nil
}

func (c *Converter) progressf(format string, args ...any) {
	if c.Progress != nil {
		fmt.Fprintf(c.Progress, format, args...)
	}
}

func (c *Converter) warnf(format string, args ...any) {
	w := c.Warnings
	if w == nil {
		w = os.Stderr
	}
	fmt.Fprintf(w, "warning: "+format, args...)
}
