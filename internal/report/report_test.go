// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package report

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/bin2csv/internal/convert"
	"github.com/pdiddy/bin2csv/internal/window"
)

func sampleBatch() convert.BatchResult {
	return convert.BatchResult{
		Files: []convert.Result{
			{Input: "w/a.bin", Output: "w/a.csv", Header: window.Header{RangeStart: 0, RangeEnd: 100}, Records: 25, Checked: true},
			{Input: "w/b.bin", Output: "w/b.csv", Header: window.Header{RangeStart: 100, RangeEnd: ^uint64(0)}, Records: 21, Checked: true, Composites: 2},
		},
		Warnings: 1,
	}
}

func TestNew(t *testing.T) {
	r := New("w", true, sampleBatch(), 3*time.Second, nil)

	assert.Equal(t, "w", r.Source)
	assert.True(t, r.Check)
	require.Len(t, r.Files, 2)
	assert.Equal(t, ^uint64(0), r.Files[1].RangeEnd)
	assert.Equal(t, 2, r.Summary.Files)
	assert.Equal(t, uint64(46), r.Summary.Records)
	assert.Equal(t, uint64(2), r.Summary.Composites)
	assert.Equal(t, 1, r.Summary.Warnings)
	assert.Empty(t, r.Summary.Error)
}

func TestWriteRead(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.yaml")
	runErr := errors.New("reading w/c.bin: truncated prime record")

	require.NoError(t, Write(path, New("w", true, sampleBatch(), 1500*time.Millisecond, runErr)))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, strings.Contains(string(data), "range_end: 18446744073709551615"))

	got, err := Read(path)
	require.NoError(t, err)
	assert.Equal(t, "w", got.Source)
	assert.Len(t, got.Files, 2)
	assert.Equal(t, 1500*time.Millisecond, got.Summary.Elapsed)
	assert.Equal(t, runErr.Error(), got.Summary.Error)
}

func TestRead_Missing(t *testing.T) {
	_, err := Read(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}
