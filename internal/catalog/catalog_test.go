// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package catalog

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestCatalog(t *testing.T) *Catalog {
	t.Helper()
	c, err := Open(filepath.Join(t.TempDir(), "index", "windows.db"))
	require.NoError(t, err)
	t.Cleanup(func() { c.Close() })
	return c
}

func TestRecordAndList(t *testing.T) {
	c := openTestCatalog(t)
	ctx := context.Background()
	at := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	entries := []Entry{
		{Input: "w/window_2.bin", Output: "w/window_2.csv", RangeStart: 1 << 63, RangeEnd: ^uint64(0), Records: 10, ConvertedAt: at},
		{Input: "w/window_1.bin", Output: "w/window_1.csv", RangeStart: 9, RangeEnd: 1 << 63, Records: 4, Checked: true, Composites: 1, ConvertedAt: at},
		{Input: "w/window_0.bin", Output: "w/window_0.csv", RangeStart: 9, RangeEnd: 100, ConvertedAt: at},
	}
	for _, e := range entries {
		require.NoError(t, c.Record(ctx, e))
	}

	got, err := c.List(ctx)
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, "w/window_0.bin", got[0].Input)
	assert.Equal(t, "w/window_1.bin", got[1].Input)
	assert.Equal(t, uint64(1<<63), got[2].RangeStart)
	assert.Equal(t, ^uint64(0), got[2].RangeEnd)
	assert.Equal(t, uint64(10), got[2].Records)
	assert.True(t, at.Equal(got[2].ConvertedAt))
	assert.True(t, got[1].Checked)
	assert.Equal(t, uint64(1), got[1].Composites)
}

func TestRecord_ReplacesExisting(t *testing.T) {
	c := openTestCatalog(t)
	ctx := context.Background()

	require.NoError(t, c.Record(ctx, Entry{Input: "a.bin", Output: "a.csv", Records: 1}))
	require.NoError(t, c.Record(ctx, Entry{Input: "a.bin", Output: "a.csv", Records: 7, Checked: true}))

	got, err := c.List(ctx)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, uint64(7), got[0].Records)
	assert.True(t, got[0].Checked)
	assert.False(t, got[0].ConvertedAt.IsZero())
}

func TestOpen_Reopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "windows.db")
	ctx := context.Background()

	c, err := Open(path)
	require.NoError(t, err)
	require.NoError(t, c.Record(ctx, Entry{Input: "a.bin", Output: "a.csv"}))
	require.NoError(t, c.Close())

	c, err = Open(path)
	require.NoError(t, err)
	defer c.Close()
	got, err := c.List(ctx)
	require.NoError(t, err)
	assert.Len(t, got, 1)
}
