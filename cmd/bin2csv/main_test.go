// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/bin2csv/internal/catalog"
	"github.com/pdiddy/bin2csv/internal/convert"
	"github.com/pdiddy/bin2csv/internal/report"
	"github.com/pdiddy/bin2csv/internal/window"
)

// execute runs the root command with args and returns what it printed to
// stdout. Flags are reset afterwards so tests do not leak into each other.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Cleanup(func() {
		for _, fs := range []*pflag.FlagSet{rootCmd.Flags(), rootCmd.PersistentFlags()} {
			fs.VisitAll(func(f *pflag.Flag) {
				_ = f.Value.Set(f.DefValue)
				f.Changed = false
			})
		}
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
	})

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(io.Discard)
	if args == nil {
		args = []string{}
	}
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func TestOutputPath(t *testing.T) {
	tests := []struct {
		path, ext, want string
	}{
		{"windows/window_3.bin", ".csv", "windows/window_3.csv"},
		{"a.b.bin", ".csv", "a.b.csv"},
		{"noext", ".csv", "noext.csv"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, outputPath(tt.path, tt.ext))
	}
}

func TestNormalizeExt(t *testing.T) {
	assert.Equal(t, ".bin", normalizeExt("bin"))
	assert.Equal(t, ".bin", normalizeExt(".bin"))
	assert.Equal(t, "", normalizeExt(""))
}

func TestRootCommand_Directory(t *testing.T) {
	dir := t.TempDir()
	for i, name := range []string{"window_0.bin", "window_1.bin"} {
		h := window.Header{RangeStart: uint64(i * 100), RangeEnd: uint64(i*100 + 100)}
		require.NoError(t, window.WriteFile(filepath.Join(dir, name), h, []window.Record{{Prime: 97, NextValue: 101}, {Prime: 91, NextValue: 97}}))
	}
	dbPath := filepath.Join(dir, "catalog.db")
	reportPath := filepath.Join(dir, "run.yaml")

	out, err := execute(t, "-i", dir, "-c", "--catalog", dbPath, "--report", reportPath)
	require.NoError(t, err)

	assert.Contains(t, out, "conversion of")
	assert.Contains(t, out, "converted 2 file(s), 4 records, 2 failed the primality check")

	data, err := os.ReadFile(filepath.Join(dir, "window_1.csv"))
	require.NoError(t, err)
	assert.Equal(t, "# Range: 100 to 200\nprime, next_value, is_prime\n97,101,true\n91,97,false\n", string(data))

	r, err := report.Read(reportPath)
	require.NoError(t, err)
	assert.Equal(t, 2, r.Summary.Files)
	assert.Empty(t, r.Summary.Error)

	cat, err := catalog.Open(dbPath)
	require.NoError(t, err)
	defer cat.Close()
	entries, err := cat.List(context.Background())
	require.NoError(t, err)
	assert.Len(t, entries, 2)
}

func TestRootCommand_File(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "window_4.bin")
	require.NoError(t, window.WriteFile(in, window.Header{RangeStart: 400, RangeEnd: 500}, []window.Record{{Prime: 401, NextValue: 409}}))
	dbPath := filepath.Join(dir, "catalog.db")

	out, err := execute(t, "-f", in, "--catalog", dbPath)
	require.NoError(t, err)
	assert.Contains(t, out, `conversion of "`+filepath.Join(dir, "window_4.csv")+`" took`)
	assert.Contains(t, out, "converted 1 file(s), 1 records")

	data, err := os.ReadFile(filepath.Join(dir, "window_4.csv"))
	require.NoError(t, err)
	assert.Equal(t, "# Range: 400 to 500\nprime, next_value\n401,409\n", string(data))

	cat, err := catalog.Open(dbPath)
	require.NoError(t, err)
	defer cat.Close()
	entries, err := cat.List(context.Background())
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, in, entries[0].Input)
	assert.Equal(t, uint64(400), entries[0].RangeStart)
}

func TestRootCommand_FileFailure(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "window_5.bin")
	require.NoError(t, window.WriteFile(in, window.Header{}, []window.Record{{Prime: 2, NextValue: 3}}))
	f, err := os.OpenFile(in, os.O_APPEND|os.O_WRONLY, 0o644)
	require.NoError(t, err)
	_, err = f.Write([]byte{1, 2, 3})
	require.NoError(t, err)
	require.NoError(t, f.Close())
	reportPath := filepath.Join(dir, "run.yaml")

	out, err := execute(t, "-f", in, "--report", reportPath)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "processing file:")
	assert.ErrorIs(t, err, convert.ErrTruncatedRecord)
	assert.NotContains(t, out, "conversion of")

	r, err := report.Read(reportPath)
	require.NoError(t, err)
	assert.Zero(t, r.Summary.Files)
	assert.Contains(t, r.Summary.Error, "truncated prime record")
}

func TestRootCommand_RequiresOneInput(t *testing.T) {
	_, err := execute(t)
	assert.Error(t, err)

	_, err = execute(t, "-f", "a.bin", "-i", "dir")
	assert.Error(t, err)
}
