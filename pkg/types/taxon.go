// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines the normalized, provider-agnostic records produced
// by the provider clients, and the configuration structures shared by the
// CLI and the report layer.
package types

import "strings"

// TaxonStatus is the normalized taxonomic status of a name in the backbone
// checklist. Raw provider tokens ("ACCEPTED", "HOMOTYPIC_SYNONYM", ...) are
// mapped through ParseTaxonStatus; unknown tokens map to StatusUnrecognized
// rather than being stored as free text.
type TaxonStatus string

const (
	StatusAccepted           TaxonStatus = "accepted"
	StatusDoubtful           TaxonStatus = "doubtful"
	StatusSynonym            TaxonStatus = "synonym"
	StatusHomotypicSynonym   TaxonStatus = "homotypic synonym"
	StatusHeterotypicSynonym TaxonStatus = "heterotypic synonym"
	StatusProparteSynonym    TaxonStatus = "proparte synonym"
	StatusMisapplied         TaxonStatus = "misapplied"
	StatusUnrecognized       TaxonStatus = "unrecognized"
)

// statusTokens maps normalized provider tokens to their status variant.
var statusTokens = map[string]TaxonStatus{
	"accepted":            StatusAccepted,
	"doubtful":            StatusDoubtful,
	"synonym":             StatusSynonym,
	"homotypic synonym":   StatusHomotypicSynonym,
	"heterotypic synonym": StatusHeterotypicSynonym,
	"proparte synonym":    StatusProparteSynonym,
	"misapplied":          StatusMisapplied,
}

// ParseTaxonStatus normalizes a raw provider status token (lowercased,
// underscores replaced with spaces) and maps it to a TaxonStatus.
func ParseTaxonStatus(raw string) TaxonStatus {
	norm := strings.ReplaceAll(strings.ToLower(raw), "_", " ")
	if s, ok := statusTokens[norm]; ok {
		return s
	}
	return StatusUnrecognized
}

// IsSynonym reports whether the status denotes anything other than an
// accepted name, in which case TaxonRecord.ValidName carries the name the
// checklist accepts instead.
func (s TaxonStatus) IsSynonym() bool {
	return s != StatusAccepted && s != ""
}

// TaxonRecord is the normalized result of a taxonomic backbone name search.
// A fresh record is returned per search call; records are never merged
// across calls.
type TaxonRecord struct {
	// Key is the backbone identifier of the matched name usage.
	Key int `json:"key" yaml:"key"`

	// ScientificName is the full scientific name as matched.
	ScientificName string `json:"scientific_name" yaml:"scientific_name"`

	// Authorship is the name's author citation.
	Authorship string `json:"authorship" yaml:"authorship"`

	// Status is the normalized taxonomic status of the matched name.
	Status TaxonStatus `json:"status" yaml:"status"`

	// ValidName is the accepted species name when Status is not "accepted";
	// empty otherwise.
	ValidName string `json:"valid_name,omitempty" yaml:"valid_name,omitempty"`

	// Higher classification of the matched name.
	Kingdom string `json:"kingdom" yaml:"kingdom"`
	Phylum  string `json:"phylum" yaml:"phylum"`
	Class   string `json:"class" yaml:"class"`
	Order   string `json:"order" yaml:"order"`
	Family  string `json:"family" yaml:"family"`
}

// Classification returns the higher taxa as an ordered list
// (kingdom → family), skipping ranks the backbone did not report.
func (r TaxonRecord) Classification() []string {
	var taxa []string
	for _, t := range []string{r.Kingdom, r.Phylum, r.Class, r.Order, r.Family} {
		if t != "" {
			taxa = append(taxa, t)
		}
	}
	return taxa
}
