package types

import "time"

// HTTPConfig holds shared HTTP settings used by every provider client.
type HTTPConfig struct {
	// Timeout is the HTTP request timeout.
	Timeout time.Duration `json:"timeout" yaml:"timeout"`

	// UserAgent is the User-Agent header sent with HTTP requests
	// (e.g. "especies/0.1").
	UserAgent string `json:"user_agent" yaml:"user_agent"`
}

// EndpointConfig holds per-provider base URL overrides. An empty field
// keeps the production endpoint; tests and alternate deployments point
// these at their own servers.
type EndpointConfig struct {
	// GBIF is the taxonomic backbone API root (default https://api.gbif.org/v1).
	GBIF string `json:"gbif,omitempty" yaml:"gbif,omitempty"`

	// Entrez is the E-utilities root for taxonomy and sequence queries
	// (default https://eutils.ncbi.nlm.nih.gov/entrez/eutils).
	Entrez string `json:"entrez,omitempty" yaml:"entrez,omitempty"`

	// WikipediaAPI is the MediaWiki action API endpoint used for redirect
	// resolution (default https://en.wikipedia.org/w/api.php).
	WikipediaAPI string `json:"wikipedia_api,omitempty" yaml:"wikipedia_api,omitempty"`

	// WikipediaREST is the REST root for summary and media-list requests
	// (default https://en.wikipedia.org/api/rest_v1).
	WikipediaREST string `json:"wikipedia_rest,omitempty" yaml:"wikipedia_rest,omitempty"`

	// FiveFilters is the term extraction service root
	// (default http://termextract.fivefilters.org).
	FiveFilters string `json:"fivefilters,omitempty" yaml:"fivefilters,omitempty"`

	// PubMed is the E-utilities root for bibliographic queries
	// (default https://eutils.ncbi.nlm.nih.gov/entrez/eutils).
	PubMed string `json:"pubmed,omitempty" yaml:"pubmed,omitempty"`
}

// ReportConfig holds settings for report composition.
type ReportConfig struct {
	HTTPConfig `yaml:",inline"`

	// MaxImages caps the encyclopedia image candidate list (default 5).
	MaxImages int `json:"max_images" yaml:"max_images"`

	// MaxTerms caps the extracted keyword list (default 10).
	MaxTerms int `json:"max_terms" yaml:"max_terms"`

	// MaxArticles caps the bibliography result list (default 10).
	MaxArticles int `json:"max_articles" yaml:"max_articles"`

	// Endpoints carries the provider base URL overrides.
	Endpoints EndpointConfig `json:"endpoints" yaml:"endpoints"`
}

// DefaultReportConfig returns the report settings the CLI starts from.
func DefaultReportConfig() ReportConfig {
	return ReportConfig{
		HTTPConfig: HTTPConfig{
			Timeout:   30 * time.Second,
			UserAgent: "especies/0.1",
		},
		MaxImages:   5,
		MaxTerms:    10,
		MaxArticles: 10,
	}
}
