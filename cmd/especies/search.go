package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/biotupe/especies/internal/report"
)

var searchCmd = &cobra.Command{
	Use:   "search <genus> <epithet>",
	Short: "Search the biodiversity services for a species",
	Long: `Search queries the GBIF backbone, the NCBI taxonomy, Wikipedia, the
FiveFilters term extractor, and PubMed for a binomial species name and
writes the combined report to stdout or a file.

Only binomial names are accepted; genera, families, and other ranks are
rejected before any request is made.`,
	Args: cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		name, err := report.NormalizeBinomial(strings.Join(args, " "))
		if err != nil {
			return err
		}

		format, _ := cmd.Flags().GetString("format")
		if format != "html" && format != "yaml" {
			return fmt.Errorf("unknown format %q: want html or yaml", format)
		}

		cfg := reportConfig()
		if v, _ := cmd.Flags().GetDuration("timeout"); v > 0 {
			cfg.Timeout = v
		}
		if v, _ := cmd.Flags().GetInt("images"); v > 0 {
			cfg.MaxImages = v
		}
		if v, _ := cmd.Flags().GetInt("terms"); v > 0 {
			cfg.MaxTerms = v
		}
		if v, _ := cmd.Flags().GetInt("articles"); v > 0 {
			cfg.MaxArticles = v
		}

		out := os.Stdout
		if path, _ := cmd.Flags().GetString("out"); path != "" {
			f, err := os.Create(path)
			if err != nil {
				return fmt.Errorf("create output file: %w", err)
			}
			defer f.Close()
			out = f
		}

		clients := report.NewClients(cfg)
		rep := report.Build(cmd.Context(), clients, name, cfg)

		if !rep.TaxonFound {
			fmt.Fprintf(os.Stderr, "warning: no backbone match for %q\n", name)
		}
		if !rep.RegistryFound {
			fmt.Fprintf(os.Stderr, "warning: no registry entry for %q\n", name)
		}

		if format == "yaml" {
			return report.WriteYAML(out, rep)
		}
		return report.WriteHTML(out, rep)
	},
}

func init() {
	searchCmd.Flags().String("format", "html", "output format: html or yaml")
	searchCmd.Flags().String("out", "", "write the report to this file instead of stdout")
	searchCmd.Flags().Int("images", 0, "maximum image candidates to list")
	searchCmd.Flags().Int("terms", 0, "maximum extracted terms to list")
	searchCmd.Flags().Int("articles", 0, "maximum bibliography entries to list")
	searchCmd.Flags().Duration("timeout", 0, "per-request HTTP timeout")

	rootCmd.AddCommand(searchCmd)
}
