// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the especies CLI, a taxonomically
// intelligent biodiversity search engine. One search fans out to the GBIF
// backbone, the NCBI taxonomy, Wikipedia, a term extractor, and PubMed,
// and assembles the answers into a single species report.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/biotupe/especies/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

// rootCmd is the base command for the especies CLI.
var rootCmd = &cobra.Command{
	Use:   "especies",
	Short: "A taxonomically intelligent biodiversity search engine",
	Long: `especies aggregates what the major public biodiversity services know
about a species. Given a binomial name it queries the GBIF taxonomic
backbone, the NCBI taxonomy via Entrez, Wikipedia, the FiveFilters term
extractor, and PubMed, and renders the combined answers as a single
report in HTML or YAML.

Providers that are down or return nothing leave their report section
empty; a search never fails because one service did.`,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./especies.yaml or ~/.config/especies/config.yaml)")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("especies")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "especies"))
		}
	}

	viper.SetEnvPrefix("ESPECIES")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// reportConfig merges defaults, config file, and environment into the
// report configuration. Keys mirror the struct yaml tags.
func reportConfig() types.ReportConfig {
	cfg := types.DefaultReportConfig()

	if v := viper.GetDuration("http.timeout"); v > 0 {
		cfg.Timeout = v
	}
	if v := viper.GetString("http.user_agent"); v != "" {
		cfg.UserAgent = v
	}
	if v := viper.GetInt("max_images"); v > 0 {
		cfg.MaxImages = v
	}
	if v := viper.GetInt("max_terms"); v > 0 {
		cfg.MaxTerms = v
	}
	if v := viper.GetInt("max_articles"); v > 0 {
		cfg.MaxArticles = v
	}

	cfg.Endpoints.GBIF = viper.GetString("endpoints.gbif")
	cfg.Endpoints.Entrez = viper.GetString("endpoints.entrez")
	cfg.Endpoints.WikipediaAPI = viper.GetString("endpoints.wikipedia_api")
	cfg.Endpoints.WikipediaREST = viper.GetString("endpoints.wikipedia_rest")
	cfg.Endpoints.FiveFilters = viper.GetString("endpoints.fivefilters")
	cfg.Endpoints.PubMed = viper.GetString("endpoints.pubmed")

	return cfg
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
