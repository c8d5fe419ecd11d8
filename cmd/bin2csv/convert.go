// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/bin2csv/internal/catalog"
	"github.com/pdiddy/bin2csv/internal/convert"
	"github.com/pdiddy/bin2csv/internal/report"
	"github.com/pdiddy/bin2csv/pkg/types"
)

const (
	minBufferSize = 64
	maxBufferSize = 1 << 30
)

func runConvert(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	inputFile, _ := cmd.Flags().GetString("input-file")
	inputDir, _ := cmd.Flags().GetString("input-directory")

	conv := convert.New(cfg, cmd.OutOrStdout())

	if cfg.CatalogPath != "" {
		cat, err := catalog.Open(cfg.CatalogPath)
		if err != nil {
			return err
		}
		defer cat.Close()
		conv.OnConverted = func(r convert.Result) error {
			return cat.Record(cmd.Context(), catalogEntry(r))
		}
	}

	var (
		result convert.BatchResult
		runErr error
		target string
	)
	start := time.Now()
	if inputFile != "" {
		target = outputPath(inputFile, cfg.OutputExt)
		var res convert.Result
		res, runErr = conv.ConvertFile(inputFile, target)
		if runErr == nil {
			result.Files = append(result.Files, res)
			if conv.OnConverted != nil {
				runErr = conv.OnConverted(res)
			}
		}
	} else {
		target = inputDir
		result, runErr = conv.ConvertDirectory(inputDir)
	}
	elapsed := time.Since(start)

	if cfg.ReportPath != "" {
		source := inputFile
		if source == "" {
			source = inputDir
		}
		if err := report.Write(cfg.ReportPath, report.New(source, cfg.Check, result, elapsed, runErr)); err != nil {
			fmt.Fprintf(os.Stderr, "warning: %v\n", err)
		}
	}

	if runErr != nil {
		if inputFile != "" {
			return fmt.Errorf("processing file: %w", runErr)
		}
		return fmt.Errorf("processing directory: %w", runErr)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "conversion of %q took %s.\n", target, elapsed)
	fmt.Fprintf(out, "converted %d file(s), %s records", result.Converted(), humanize.Comma(int64(result.Records())))
	if cfg.Check {
		fmt.Fprintf(out, ", %s failed the primality check", humanize.Comma(int64(result.Composites())))
	}
	fmt.Fprintln(out)
	return nil
}

// loadConfig assembles the conversion settings from flags, environment and
// config file.
func loadConfig() (types.ConversionConfig, error) {
	raw := viper.GetString("buffer_size")
	size, err := humanize.ParseBytes(raw)
	if err != nil {
		return types.ConversionConfig{}, fmt.Errorf("invalid buffer size %q: %w", raw, err)
	}
	if size < minBufferSize || size > maxBufferSize {
		return types.ConversionConfig{}, fmt.Errorf("buffer size %s out of range (%s to %s)",
			humanize.IBytes(size), humanize.IBytes(minBufferSize), humanize.IBytes(maxBufferSize))
	}

	cfg := types.ConversionConfig{
		Check:       viper.GetBool("check"),
		Verbose:     viper.GetBool("verbose"),
		BufferSize:  int(size),
		InputExt:    normalizeExt(viper.GetString("input_ext")),
		OutputExt:   normalizeExt(viper.GetString("output_ext")),
		CatalogPath: viper.GetString("catalog"),
		ReportPath:  viper.GetString("report"),
	}
	return cfg.WithDefaults(), nil
}

// normalizeExt accepts extensions with or without the leading dot.
func normalizeExt(ext string) string {
	if ext == "" || strings.HasPrefix(ext, ".") {
		return ext
	}
	return "." + ext
}

// outputPath replaces the final extension of path with ext, or appends ext
// when path has none.
func outputPath(path, ext string) string {
	return strings.TrimSuffix(path, filepath.Ext(path)) + ext
}

func catalogEntry(r convert.Result) catalog.Entry {
	return catalog.Entry{
		Input:      r.Input,
		Output:     r.Output,
		RangeStart: r.Header.RangeStart,
		RangeEnd:   r.Header.RangeEnd,
		Records:    r.Records,
		Checked:    r.Checked,
		Composites: r.Composites,
	}
}
