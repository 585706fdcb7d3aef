// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package report composes the five provider clients into one species
// report and renders it as HTML or YAML. A provider that fails or returns
// nothing leaves its section empty; composition never aborts.
package report

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"unicode"

	"github.com/biotupe/especies/internal/providers"
	"github.com/biotupe/especies/pkg/types"
)

// Clients bundles the provider clients the report composes.
type Clients struct {
	Backbone     *providers.GBIFClient
	Registry     *providers.EntrezClient
	Encyclopedia *providers.WikipediaClient
	Terms        *providers.FiveFiltersClient
	Bibliography *providers.PubMedClient
}

// NewClients builds the provider set from the report configuration. All
// clients share one HTTP client carrying the configured timeout; endpoint
// overrides from the config are applied where set.
func NewClients(cfg types.ReportConfig) Clients {
	httpClient := &http.Client{Timeout: cfg.Timeout}
	ep := cfg.Endpoints
	return Clients{
		Backbone: &providers.GBIFClient{
			Client: httpClient, BaseURL: ep.GBIF, UserAgent: cfg.UserAgent,
		},
		Registry: &providers.EntrezClient{
			Client: httpClient, BaseURL: ep.Entrez, UserAgent: cfg.UserAgent,
		},
		Encyclopedia: &providers.WikipediaClient{
			Client: httpClient, APIBase: ep.WikipediaAPI, RESTBase: ep.WikipediaREST,
			UserAgent: cfg.UserAgent,
		},
		Terms: &providers.FiveFiltersClient{
			Client: httpClient, BaseURL: ep.FiveFilters, UserAgent: cfg.UserAgent,
		},
		Bibliography: &providers.PubMedClient{
			Client: httpClient, BaseURL: ep.PubMed, UserAgent: cfg.UserAgent,
		},
	}
}

// Build queries every provider for name and assembles the report in the
// presentation order of the original search engine: backbone
// classification, encyclopedia snippet, extracted tags, registry summary
// with external links, occurrence count, image candidates, bibliography.
// Stages run strictly sequentially; requests within one provider chain
// consume values extracted from earlier responses.
func Build(ctx context.Context, c Clients, name string, cfg types.ReportConfig) types.SpeciesReport {
	rep := types.SpeciesReport{Query: name, Occurrences: -1}

	rep.Taxon, rep.TaxonFound = c.Backbone.Search(ctx, name)

	rep.Snippet = c.Encyclopedia.Snippet(ctx, name)
	rep.Terms = c.Terms.ExtractTerms(ctx, rep.Snippet, cfg.MaxTerms)

	rep.Summary, rep.RegistryFound = c.Registry.Search(ctx, name)
	if rep.RegistryFound {
		rep.Links = c.Registry.Links(ctx, rep.Summary.ID)
	}

	if rep.TaxonFound {
		rep.Occurrences = c.Backbone.OccurrenceCount(ctx, rep.Taxon.Key)
	}

	rep.Images = c.Encyclopedia.Images(ctx, name, cfg.MaxImages)
	rep.Articles = c.Bibliography.Search(ctx, name, cfg.MaxArticles)

	return rep
}

// NormalizeBinomial validates that raw is a two-word binomial name and
// returns it in canonical capitalization (genus capitalized, epithet
// lowercased). Only species are true natural entities; anything else is
// rejected.
func NormalizeBinomial(raw string) (string, error) {
	words := strings.Fields(raw)
	if len(words) != 2 {
		return "", fmt.Errorf("%q is not a binomial name: enter a genus and a specific epithet", raw)
	}

	genus := strings.ToLower(words[0])
	r := []rune(genus)
	r[0] = unicode.ToUpper(r[0])

	return string(r) + " " + strings.ToLower(words[1]), nil
}
