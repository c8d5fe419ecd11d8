// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the bin2csv CLI, which converts
// binary sieve window files to CSV.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/bin2csv/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

// rootCmd converts a single window file or a directory of them.
var rootCmd = &cobra.Command{
	Use:   "bin2csv (-f FILE | -i DIRECTORY)",
	Short: "Convert binary sieve window files to CSV",
	Long: `bin2csv converts the binary window files written by the prime sieve into
CSV. Each window holds a 16-byte range header followed by 16-byte
(prime, next_value) records.

Pass a single file with -f, or a directory with -i to convert every .bin
file directly inside it. With --check every prime is re-tested and an
is_prime column is added.`,
	Args:         cobra.NoArgs,
	SilenceUsage: true,
	RunE:         runConvert,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./bin2csv.yaml or ~/.config/bin2csv/bin2csv.yaml)")
	rootCmd.PersistentFlags().String("catalog", "", "SQLite catalog recording every converted window")

	rootCmd.Flags().StringP("input-file", "f", "", "window file to convert")
	rootCmd.Flags().StringP("input-directory", "i", "", "directory whose window files are converted")
	rootCmd.Flags().BoolP("check", "c", false, "re-test each prime and add an is_prime column")
	rootCmd.Flags().BoolP("verbose", "v", false, "print per-file progress")
	rootCmd.Flags().String("buffer-size", "2MiB", "read and write buffer size")
	rootCmd.Flags().String("input-ext", types.DefaultInputExt, "extension of window files in a directory")
	rootCmd.Flags().String("output-ext", types.DefaultOutputExt, "extension of CSV output files")
	rootCmd.Flags().String("report", "", "write a YAML summary of the run to this file")

	rootCmd.MarkFlagsMutuallyExclusive("input-file", "input-directory")
	rootCmd.MarkFlagsOneRequired("input-file", "input-directory")

	for key, flag := range map[string]string{
		"check":       "check",
		"verbose":     "verbose",
		"buffer_size": "buffer-size",
		"input_ext":   "input-ext",
		"output_ext":  "output-ext",
		"report":      "report",
	} {
		_ = viper.BindPFlag(key, rootCmd.Flags().Lookup(flag))
	}
	_ = viper.BindPFlag("catalog", rootCmd.PersistentFlags().Lookup("catalog"))
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("bin2csv")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "bin2csv"))
		}
	}

	viper.SetEnvPrefix("BIN2CSV")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
