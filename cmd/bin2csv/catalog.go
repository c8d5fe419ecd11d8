// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/bin2csv/internal/catalog"
)

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "List windows recorded in the catalog",
	Long: `Catalog prints every window recorded by earlier conversions run with
--catalog, ordered by range start.`,
	Args: cobra.NoArgs,
	RunE: runCatalog,
}

func init() {
	rootCmd.AddCommand(catalogCmd)
}

func runCatalog(cmd *cobra.Command, args []string) error {
	path := viper.GetString("catalog")
	if path == "" {
		return fmt.Errorf("provide the catalog database with --catalog")
	}

	cat, err := catalog.Open(path)
	if err != nil {
		return err
	}
	defer cat.Close()

	entries, err := cat.List(cmd.Context())
	if err != nil {
		return err
	}

	tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "INPUT\tRANGE\tRECORDS\tCHECKED\tCOMPOSITES\tCONVERTED")
	for _, e := range entries {
		composites := "-"
		if e.Checked {
			composites = humanize.Comma(int64(e.Composites))
		}
		fmt.Fprintf(tw, "%s\t%d-%d\t%s\t%t\t%s\t%s\n",
			e.Input, e.RangeStart, e.RangeEnd, humanize.Comma(int64(e.Records)),
			e.Checked, composites, humanize.Time(e.ConvertedAt))
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "\n%d window(s)\n", len(entries))
	return nil
}
