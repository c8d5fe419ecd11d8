// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package report writes a YAML summary of a conversion run.
package report

import (
	"fmt"
	"os"
	"time"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/bin2csv/internal/convert"
)

// Report is the on-disk summary of one bin2csv invocation.
type Report struct {
	Source  string      `yaml:"source"`
	Check   bool        `yaml:"check"`
	Files   []FileEntry `yaml:"files"`
	Summary Summary     `yaml:"summary"`
}

// FileEntry describes one converted window.
type FileEntry struct {
	Input      string `yaml:"input"`
	Output     string `yaml:"output"`
	RangeStart uint64 `yaml:"range_start"`
	RangeEnd   uint64 `yaml:"range_end"`
	Records    uint64 `yaml:"records"`
	Composites uint64 `yaml:"composites,omitempty"`
}

// Summary totals a run. Error is set when the run stopped on a failure.
type Summary struct {
	Files      int           `yaml:"files"`
	Records    uint64        `yaml:"records"`
	Composites uint64        `yaml:"composites"`
	Warnings   int           `yaml:"warnings"`
	Elapsed    time.Duration `yaml:"elapsed"`
	Error      string        `yaml:"error,omitempty"`
	Timestamp  time.Time     `yaml:"timestamp"`
}

// New builds a report for a run over source. runErr is the error the run
// ended with, if any.
func New(source string, check bool, result convert.BatchResult, elapsed time.Duration, runErr error) Report {
	r := Report{
		Source: source,
		Check:  check,
		Files:  make([]FileEntry, 0, len(result.Files)),
		Summary: Summary{
			Files:      result.Converted(),
			Records:    result.Records(),
			Composites: result.Composites(),
			Warnings:   result.Warnings,
			Elapsed:    elapsed,
			Timestamp:  time.Now().UTC(),
		},
	}
	for _, f := range result.Files {
		r.Files = append(r.Files, FileEntry{
			Input:      f.Input,
			Output:     f.Output,
			RangeStart: f.Header.RangeStart,
			RangeEnd:   f.Header.RangeEnd,
			Records:    f.Records,
			Composites: f.Composites,
		})
	}
	if runErr != nil {
		r.Summary.Error = runErr.Error()
	}
	return r
}

// Write saves r to path as YAML.
func Write(path string, r Report) error {
	data, err := yaml.Marshal(&r)
	if err != nil {
		return fmt.Errorf("marshaling report: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing report %s: %w", path, err)
	}
	return nil
}

// Read loads a report written by Write.
func Read(path string) (*Report, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading report: %w", err)
	}
	var r Report
	if err := yaml.Unmarshal(data, &r); err != nil {
		return nil, fmt.Errorf("parsing report: %w", err)
	}
	return &r, nil
}
