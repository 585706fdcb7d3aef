// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package providers

import (
	"context"
	"encoding/xml"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/biotupe/especies/internal/httputil"
	"github.com/biotupe/especies/pkg/types"
)

// defaultEntrezBase is the production E-utilities root.
const defaultEntrezBase = "https://eutils.ncbi.nlm.nih.gov/entrez/eutils"

// EntrezClient queries the NCBI Entrez taxonomy and sequence databases
// through the E-utilities endpoints (esearch, esummary, elink).
type EntrezClient struct {
	Client *http.Client

	// BaseURL overrides the production E-utilities root; tests point it at
	// a stub server.
	BaseURL string

	// UserAgent is sent with every request.
	UserAgent string
}

func (c *EntrezClient) base() string {
	if c.BaseURL != "" {
		return c.BaseURL
	}
	return defaultEntrezBase
}

// Search resolves the term to a taxonomy id and fills a SpeciesSummary
// through up to four sequential requests:
//
//  1. taxonomy esearch — first id of the id list; failure ends the call
//     with a zero summary and false.
//  2. taxonomy esummary — division, scientific name, common name looked up
//     by item attribute name; a missing item leaves its field empty.
//  3. nucleotide esearch scoped to the original term — total count.
//  4. protein esearch scoped to the original term — total count.
//
// Stages 2-4 are independent of one another: a failed stage leaves its
// fields at their zero value and the remaining stages still run.
func (c *EntrezClient) Search(ctx context.Context, term string) (types.SpeciesSummary, bool) {
	id := c.searchID(ctx, "taxonomy", term)
	if id == 0 {
		return types.SpeciesSummary{}, false
	}

	summary := types.SpeciesSummary{ID: id}

	if items, ok := c.fetchSummary(ctx, id); ok {
		summary.Division = items.value("Division")
		summary.ScientificName = items.value("ScientificName")
		summary.CommonName = items.value("CommonName")
	}

	summary.NucleotideCount = c.searchCount(ctx, "nucleotide", term)
	summary.ProteinCount = c.searchCount(ctx, "protein", term)

	return summary, true
}

// Links returns the external information resources registered for the
// taxonomy id. Each entry's URL and provider name are read from the same
// ObjUrl node, so the two can never desynchronize. Returns nil when the
// request fails or yields no links.
func (c *EntrezClient) Links(ctx context.Context, id int) []types.LinkEntry {
	reqURL := fmt.Sprintf("%s/elink.fcgi?dbfrom=taxonomy&id=%d&cmd=llinkslib", c.base(), id)

	body, err := httputil.GetBody(ctx, c.Client, reqURL, c.UserAgent)
	if err != nil {
		return nil
	}

	var lr entrezLinkResult
	if err := xml.Unmarshal(body, &lr); err != nil {
		return nil
	}

	var links []types.LinkEntry
	for _, obj := range lr.ObjUrls {
		if obj.URL == "" {
			continue
		}
		links = append(links, types.LinkEntry{URL: obj.URL, Provider: obj.Provider})
	}
	return links
}

// searchID returns the first id of an esearch id list, or 0 when the
// request fails or the list is empty.
func (c *EntrezClient) searchID(ctx context.Context, db, term string) int {
	sr, ok := c.search(ctx, db, term)
	if !ok || len(sr.IDs) == 0 {
		return 0
	}
	id, err := strconv.Atoi(sr.IDs[0])
	if err != nil {
		return 0
	}
	return id
}

// searchCount returns an esearch total count, or 0 when the request fails.
func (c *EntrezClient) searchCount(ctx context.Context, db, term string) int {
	sr, ok := c.search(ctx, db, term)
	if !ok {
		return 0
	}
	return sr.Count
}

func (c *EntrezClient) search(ctx context.Context, db, term string) (entrezSearchResult, bool) {
	reqURL := fmt.Sprintf("%s/esearch.fcgi?db=%s&term=%s", c.base(), db, url.QueryEscape(term))

	body, err := httputil.GetBody(ctx, c.Client, reqURL, c.UserAgent)
	if err != nil {
		return entrezSearchResult{}, false
	}

	var sr entrezSearchResult
	if err := xml.Unmarshal(body, &sr); err != nil {
		return entrezSearchResult{}, false
	}
	return sr, true
}

func (c *EntrezClient) fetchSummary(ctx context.Context, id int) (entrezItems, bool) {
	reqURL := fmt.Sprintf("%s/esummary.fcgi?db=taxonomy&id=%d&retmode=xml", c.base(), id)

	body, err := httputil.GetBody(ctx, c.Client, reqURL, c.UserAgent)
	if err != nil {
		return nil, false
	}

	var er entrezSummaryResult
	if err := xml.Unmarshal(body, &er); err != nil {
		return nil, false
	}
	return er.Items, true
}

// E-utilities XML structures.
type entrezSearchResult struct {
	Count int      `xml:"Count"`
	IDs   []string `xml:"IdList>Id"`
}

type entrezSummaryResult struct {
	Items entrezItems `xml:"DocSum>Item"`
}

// entrezItems is a DocSum item list keyed by the Name attribute
// (e.g. <Item Name="Division" Type="String">mammals</Item>).
type entrezItems []entrezItem

type entrezItem struct {
	Name  string `xml:"Name,attr"`
	Value string `xml:",chardata"`
}

// value returns the item with the given Name attribute, or "" when no such
// item exists.
func (items entrezItems) value(name string) string {
	for _, it := range items {
		if it.Name == name {
			return it.Value
		}
	}
	return ""
}

type entrezLinkResult struct {
	ObjUrls []entrezObjURL `xml:"LinkSet>IdUrlList>IdUrlSet>ObjUrl"`
}

type entrezObjURL struct {
	URL      string `xml:"Url"`
	Provider string `xml:"Provider>Name"`
}
