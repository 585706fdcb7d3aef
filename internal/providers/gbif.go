// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package providers implements the five provider clients that query the
// public biodiversity and bibliographic services and normalize their
// heterogeneous JSON/XML payloads into the records in pkg/types.
//
// Every client is stateless per call: operations return fresh values and
// keep no result fields on the client, so a client instance can be reused
// across sequential queries. Failures — transport errors and missing
// fields alike — degrade each operation to its "not found" form (false,
// -1, empty string or list); no operation returns an error to the caller.
package providers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/biotupe/especies/internal/httputil"
	"github.com/biotupe/especies/pkg/types"
)

// defaultGBIFBase is the production taxonomic backbone API root.
const defaultGBIFBase = "https://api.gbif.org/v1"

// GBIFClient queries the GBIF species and occurrence APIs.
type GBIFClient struct {
	Client *http.Client

	// BaseURL overrides the production API root; tests point it at a stub
	// server.
	BaseURL string

	// UserAgent is sent with every request.
	UserAgent string
}

func (c *GBIFClient) base() string {
	if c.BaseURL != "" {
		return c.BaseURL
	}
	return defaultGBIFBase
}

// Search looks the name up in the backbone checklist and projects the first
// match into a TaxonRecord. The status token is normalized through
// ParseTaxonStatus; for any status other than "accepted" the record's
// ValidName is taken from the match's species field. Returns a zero record
// and false when the request fails or the match list is empty.
//
// Spaces in the name are substituted explicitly; other characters pass
// through unescaped, matching the request shape the service expects.
func (c *GBIFClient) Search(ctx context.Context, name string) (types.TaxonRecord, bool) {
	reqURL := c.base() + "/species/?name=" + strings.ReplaceAll(name, " ", "%20")

	body, err := httputil.GetBody(ctx, c.Client, reqURL, c.UserAgent)
	if err != nil {
		return types.TaxonRecord{}, false
	}

	var sr gbifSpeciesResponse
	if err := json.Unmarshal(body, &sr); err != nil || len(sr.Results) == 0 {
		return types.TaxonRecord{}, false
	}

	first := sr.Results[0]
	rec := types.TaxonRecord{
		Key:            first.Key,
		ScientificName: first.ScientificName,
		Authorship:     first.Authorship,
		Status:         types.ParseTaxonStatus(first.TaxonomicStatus),
		Kingdom:        first.Kingdom,
		Phylum:         first.Phylum,
		Class:          first.Class,
		Order:          first.Order,
		Family:         first.Family,
	}
	if rec.Status != types.StatusAccepted {
		rec.ValidName = first.Species
	}
	return rec, true
}

// OccurrenceCount returns the number of occurrence records for the given
// backbone key, or -1 when the request fails or the response carries no
// count field.
func (c *GBIFClient) OccurrenceCount(ctx context.Context, key int) int {
	reqURL := fmt.Sprintf("%s/occurrence/search?taxonKey=%d", c.base(), key)

	body, err := httputil.GetBody(ctx, c.Client, reqURL, c.UserAgent)
	if err != nil {
		return -1
	}

	var cr gbifCountResponse
	if err := json.Unmarshal(body, &cr); err != nil || cr.Count == nil {
		return -1
	}
	return *cr.Count
}

// GBIF API JSON structures.
type gbifSpeciesResponse struct {
	Results []gbifSpecies `json:"results"`
}

type gbifSpecies struct {
	Key             int    `json:"key"`
	ScientificName  string `json:"scientificName"`
	Authorship      string `json:"authorship"`
	TaxonomicStatus string `json:"taxonomicStatus"`
	Species         string `json:"species"`
	Kingdom         string `json:"kingdom"`
	Phylum          string `json:"phylum"`
	Class           string `json:"class"`
	Order           string `json:"order"`
	Family          string `json:"family"`
}

type gbifCountResponse struct {
	// Pointer so a response without a count field is distinguishable from
	// a genuine zero.
	Count *int `json:"count"`
}
