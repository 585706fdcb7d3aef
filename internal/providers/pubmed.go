// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package providers

import (
	"context"
	"encoding/json"
	"encoding/xml"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/biotupe/especies/internal/httputil"
	"github.com/biotupe/especies/pkg/types"
)

// defaultPubMedBase is the production E-utilities root for the
// bibliographic index.
const defaultPubMedBase = "https://eutils.ncbi.nlm.nih.gov/entrez/eutils"

// defaultArticleLimit caps the bibliography result list when the caller
// passes no limit.
const defaultArticleLimit = 10

// PubMedClient queries the PubMed bibliographic index: an id search
// ordered by relevance, then a full-record fetch for the id set.
type PubMedClient struct {
	Client *http.Client

	// BaseURL overrides the production E-utilities root; tests point it at
	// a stub server.
	BaseURL string

	// UserAgent is sent with every request.
	UserAgent string
}

func (c *PubMedClient) base() string {
	if c.BaseURL != "" {
		return c.BaseURL
	}
	return defaultPubMedBase
}

// Search returns up to limit (default 10) article references for the term.
// Title and DOI are read from the same article node, so the two can never
// pair up across different articles; an article that declares no DOI-typed
// identifier is skipped rather than aborting the result. Returns an empty
// list when no ids were found or either stage failed.
func (c *PubMedClient) Search(ctx context.Context, term string, limit int) []types.ArticleReference {
	if limit <= 0 {
		limit = defaultArticleLimit
	}

	ids := c.searchIDs(ctx, term, limit)
	if len(ids) == 0 {
		return nil
	}

	reqURL := c.base() + "/efetch.fcgi?db=pubmed&retmode=xml&id=" + strings.Join(ids, ",")

	body, err := httputil.GetBody(ctx, c.Client, reqURL, c.UserAgent)
	if err != nil {
		return nil
	}

	var set pubmedArticleSet
	if err := xml.Unmarshal(body, &set); err != nil {
		return nil
	}

	var refs []types.ArticleReference
	for _, article := range set.Articles {
		doi := article.doi()
		if article.Title == "" || doi == "" {
			continue
		}
		refs = append(refs, types.ArticleReference{Title: article.Title, DOI: doi})
	}
	return refs
}

// searchIDs runs the relevance-ordered id search and returns the id list.
func (c *PubMedClient) searchIDs(ctx context.Context, term string, limit int) []string {
	reqURL := c.base() + "/esearch.fcgi?db=pubmed&retmode=json&retmax=" + strconv.Itoa(limit) +
		"&sort=relevance&term=" + url.QueryEscape(term)

	body, err := httputil.GetBody(ctx, c.Client, reqURL, c.UserAgent)
	if err != nil {
		return nil
	}

	var sr pubmedSearchResponse
	if err := json.Unmarshal(body, &sr); err != nil {
		return nil
	}
	return sr.ESearchResult.IDList
}

// PubMed API structures. The id search answers JSON; the record fetch
// answers XML.
type pubmedSearchResponse struct {
	ESearchResult struct {
		IDList []string `json:"idlist"`
	} `json:"esearchresult"`
}

type pubmedArticleSet struct {
	Articles []pubmedArticle `xml:"PubmedArticle"`
}

type pubmedArticle struct {
	Title      string            `xml:"MedlineCitation>Article>ArticleTitle"`
	ArticleIDs []pubmedArticleID `xml:"PubmedData>ArticleIdList>ArticleId"`
}

type pubmedArticleID struct {
	IDType string `xml:"IdType,attr"`
	Value  string `xml:",chardata"`
}

// doi returns the article's DOI-typed identifier, or "" when none is
// declared.
func (a pubmedArticle) doi() string {
	for _, id := range a.ArticleIDs {
		if id.IDType == "doi" {
			return strings.TrimSpace(id.Value)
		}
	}
	return ""
}
