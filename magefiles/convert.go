//go:build mage

package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"

	"github.com/pdiddy/bin2csv/internal/primality"
	"github.com/pdiddy/bin2csv/internal/window"
)

const (
	samplesDir     = "testdata/windows"
	sampleWindows  = 4
	sampleSpan     = 10_000
	sampleFirstMin = 1_000_000
)

// Samples writes small window files to testdata/windows, the same layout the
// sieve produces: window_<n>.bin covering consecutive ranges.
func Samples() error {
	if err := os.MkdirAll(samplesDir, 0o755); err != nil {
		return fmt.Errorf("creating %s: %w", samplesDir, err)
	}
	for n := 0; n < sampleWindows; n++ {
		h := window.Header{
			RangeStart: sampleFirstMin + uint64(n)*sampleSpan,
			RangeEnd:   sampleFirstMin + uint64(n+1)*sampleSpan,
		}
		records := primesIn(h)
		path := filepath.Join(samplesDir, fmt.Sprintf("window_%d.bin", n))
		if err := window.WriteFile(path, h, records); err != nil {
			return err
		}
		fmt.Printf("  %s (%d records)\n", path, len(records))
	}
	return nil
}

// primesIn pairs each prime in [h.RangeStart, h.RangeEnd) with the prime
// that follows it.
func primesIn(h window.Header) []window.Record {
	var records []window.Record
	for p := h.RangeStart; p < h.RangeEnd; p++ {
		if !primality.IsPrime(p) {
			continue
		}
		next := p + 1
		for !primality.IsPrime(next) {
			next++
		}
		records = append(records, window.Record{Prime: p, NextValue: next})
	}
	return records
}

// Convert builds the CLI and converts the sample windows in check mode.
func Convert() error {
	mg.Deps(Build, Samples)
	return sh.RunV(filepath.Join(binDir, binName), "-i", samplesDir, "-c", "-v")
}
