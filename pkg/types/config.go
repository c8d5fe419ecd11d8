// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines configuration shared between the bin2csv CLI and
// its internal packages.
package types

const (
	// DefaultBufferSize is the read and write buffer capacity for one
	// conversion. Window files routinely hold millions of records.
	DefaultBufferSize = 2 * 1024 * 1024

	// DefaultInputExt marks sieve window files in a directory batch.
	DefaultInputExt = ".bin"

	// DefaultOutputExt replaces DefaultInputExt on converted files.
	DefaultOutputExt = ".csv"
)

// ConversionConfig holds settings for converting window files.
type ConversionConfig struct {
	// Check re-tests every record's prime and adds an is_prime column.
	Check bool `json:"check" yaml:"check"`

	// Verbose prints per-file progress lines.
	Verbose bool `json:"verbose" yaml:"verbose"`

	// BufferSize is the I/O buffer capacity in bytes (default 2 MiB).
	BufferSize int `json:"buffer_size" yaml:"buffer_size"`

	// InputExt is the extension of window files in a directory (default ".bin").
	InputExt string `json:"input_ext" yaml:"input_ext"`

	// OutputExt is the extension given to CSV output (default ".csv").
	OutputExt string `json:"output_ext" yaml:"output_ext"`

	// CatalogPath, when set, records every converted window in a SQLite catalog.
	CatalogPath string `json:"catalog,omitempty" yaml:"catalog,omitempty"`

	// ReportPath, when set, writes a YAML summary of the run.
	ReportPath string `json:"report,omitempty" yaml:"report,omitempty"`
}

// WithDefaults returns a copy of c with zero fields replaced by defaults.
func (c ConversionConfig) WithDefaults() ConversionConfig {
	if c.BufferSize <= 0 {
		c.BufferSize = DefaultBufferSize
	}
	if c.InputExt == "" {
		c.InputExt = DefaultInputExt
	}
	if c.OutputExt == "" {
		c.OutputExt = DefaultOutputExt
	}
	return c
}
