// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "fmt"

// SpeciesSummary is the normalized result of a species registry query:
// the resolved taxonomy id, summary attributes, and the number of sequence
// records held for the taxon. ID 0 signals "not found"; all other fields
// stay at their zero value until their stage succeeds.
type SpeciesSummary struct {
	// ID is the registry accession id of the taxon (0 when unresolved).
	ID int `json:"id" yaml:"id"`

	// ScientificName is the registry's scientific name for the taxon.
	ScientificName string `json:"scientific_name" yaml:"scientific_name"`

	// CommonName is the registry's common name, when one is recorded.
	CommonName string `json:"common_name,omitempty" yaml:"common_name,omitempty"`

	// Division is the registry division the taxon belongs to.
	Division string `json:"division" yaml:"division"`

	// NucleotideCount is the number of nucleotide sequence records.
	NucleotideCount int `json:"nucleotide_count" yaml:"nucleotide_count"`

	// ProteinCount is the number of protein sequence records.
	ProteinCount int `json:"protein_count" yaml:"protein_count"`
}

// Found reports whether the registry resolved an id for the search term.
func (s SpeciesSummary) Found() bool { return s.ID != 0 }

// BrowserURL returns the registry's taxonomy browser page for the taxon.
func (s SpeciesSummary) BrowserURL() string {
	return fmt.Sprintf("http://www.ncbi.nlm.nih.gov/Taxonomy/Browser/wwwtax.cgi?mode=Info&id=%d", s.ID)
}

// NucleotideQueryURL returns the txid-scoped nucleotide database query page.
func (s SpeciesSummary) NucleotideQueryURL() string {
	return fmt.Sprintf("http://www.ncbi.nlm.nih.gov/entrez/query.fcgi?db=Nucleotide&cmd=Search&dopt=DocSum&term=txid%d[Organism:exp]", s.ID)
}

// ProteinQueryURL returns the txid-scoped protein database query page.
func (s SpeciesSummary) ProteinQueryURL() string {
	return fmt.Sprintf("http://www.ncbi.nlm.nih.gov/entrez/query.fcgi?db=Protein&cmd=Search&dopt=DocSum&term=txid%d[Organism:exp]", s.ID)
}

// LinkEntry is one external information resource associated with a taxon.
type LinkEntry struct {
	// URL is the resource location.
	URL string `json:"url" yaml:"url"`

	// Provider is the display name of the resource provider.
	Provider string `json:"provider" yaml:"provider"`
}
