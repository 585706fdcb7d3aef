// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// SpeciesReport aggregates the normalized results of every provider for one
// species query. Sections left empty by a failed or empty provider response
// render as "not found" in the output; a missing section never aborts the
// report.
type SpeciesReport struct {
	// Query is the normalized binomial name that was searched.
	Query string `json:"query" yaml:"query"`

	// Taxon is the backbone checklist record; TaxonFound reports whether
	// the backbone matched the name at all.
	Taxon      TaxonRecord `json:"taxon" yaml:"taxon"`
	TaxonFound bool        `json:"taxon_found" yaml:"taxon_found"`

	// Occurrences is the number of occurrence records for the matched
	// taxon, or -1 when unknown.
	Occurrences int `json:"occurrences" yaml:"occurrences"`

	// Summary is the species registry record; RegistryFound reports whether
	// an accession id was resolved.
	Summary       SpeciesSummary `json:"summary" yaml:"summary"`
	RegistryFound bool           `json:"registry_found" yaml:"registry_found"`

	// Links lists the registry's external information resources.
	Links []LinkEntry `json:"links,omitempty" yaml:"links,omitempty"`

	// Snippet is the encyclopedia extract for the query term.
	Snippet string `json:"snippet,omitempty" yaml:"snippet,omitempty"`

	// Terms are the keywords extracted from the snippet, in service order.
	Terms []string `json:"terms,omitempty" yaml:"terms,omitempty"`

	// Images are the encyclopedia media titles kept by the .jpg filter.
	Images []string `json:"images,omitempty" yaml:"images,omitempty"`

	// Articles are the bibliographic references for the query term.
	Articles []ArticleReference `json:"articles,omitempty" yaml:"articles,omitempty"`
}
