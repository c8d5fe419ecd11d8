// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package convert

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/pdiddy/bin2csv/pkg/types"
)

// readEntries lists an open directory. On failure it returns the entries
// read before the error along with the error.
var readEntries = func(d *os.File) ([]fs.DirEntry, error) {
	return d.ReadDir(-1)
}

// BatchResult holds the outcome of a directory conversion.
type BatchResult struct {
	// Files lists the converted files in the order they were processed.
	Files []Result
	// Warnings counts directory entries that could not be read and were skipped.
	Warnings int
}

// Converted returns the number of files converted.
func (r BatchResult) Converted() int {
	return len(r.Files)
}

// Records returns the number of records written across all files.
func (r BatchResult) Records() uint64 {
	var n uint64
	for _, f := range r.Files {
		n += f.Records
	}
	return n
}

// Composites returns the number of records that failed the primality check
// across all files.
func (r BatchResult) Composites() uint64 {
	var n uint64
	for _, f := range r.Files {
		n += f.Composites
	}
	return n
}

// ConvertDirectory converts every window file directly inside dirPath.
func ConvertDirectory(dirPath string, check bool) error {
	_, err := New(types.ConversionConfig{Check: check}, nil).ConvertDirectory(dirPath)
	return err
}

// ConvertDirectory converts every file directly inside dirPath whose
// extension is the input extension, writing each CSV next to its source.
// Files are processed one at a time in lexical name order.
//
// Entries that cannot be read are reported as warnings and skipped. A
// conversion failure stops the batch: the error is returned along with
// the files completed so far, which remain on disk.
func (c *Converter) ConvertDirectory(dirPath string) (BatchResult, error) {
	cfg := c.cfg.WithDefaults()
	var result BatchResult

	info, err := os.Stat(dirPath)
	if err != nil {
		return result, newError("listing", dirPath, ErrNotADirectory, err)
	}
	if !info.IsDir() {
		return result, newError("listing", dirPath, ErrNotADirectory, errors.New("not a directory"))
	}

	d, err := os.Open(dirPath)
	if err != nil {
		return result, newError("listing", dirPath, openKind(err), err)
	}
	entries, err := readEntries(d)
	d.Close()
	if err != nil {
		c.warnf("reading directory %s: %v\n", dirPath, err)
		result.Warnings++
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Name() < entries[j].Name() })

	for _, entry := range entries {
		name := entry.Name()
		ext := filepath.Ext(name)
		if ext != cfg.InputExt || ext == name {
			continue
		}
		fi, err := entry.Info()
		if err != nil {
			c.warnf("reading directory entry %s: %v\n", name, err)
			result.Warnings++
			continue
		}
		if fi.IsDir() {
			continue
		}

		inputPath := filepath.Join(dirPath, name)
		outputPath := filepath.Join(dirPath, strings.TrimSuffix(name, ext)+cfg.OutputExt)
		c.progressf("converting from %s to %s.\n", inputPath, outputPath)

		res, err := c.ConvertFile(inputPath, outputPath)
		if err != nil {
			return result, err
		}
		result.Files = append(result.Files, res)

		if c.OnConverted != nil {
			if err := c.OnConverted(res); err != nil {
				return result, fmt.Errorf("after converting %s: %w", inputPath, err)
			}
		}
	}
	return result, nil
}
