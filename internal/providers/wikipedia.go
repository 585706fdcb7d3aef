// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package providers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"strings"

	"github.com/biotupe/especies/internal/httputil"
)

const (
	// defaultWikipediaAPIBase is the MediaWiki action API endpoint used
	// for redirect resolution.
	defaultWikipediaAPIBase = "https://en.wikipedia.org/w/api.php"

	// defaultWikipediaRESTBase is the REST root serving page summaries
	// and media lists.
	defaultWikipediaRESTBase = "https://en.wikipedia.org/api/rest_v1"
)

// defaultImageLimit caps the image candidate list when the caller passes
// no limit.
const defaultImageLimit = 10

// WikipediaClient queries the encyclopedia: redirect resolution through the
// action API, then summaries and media lists through the REST API.
type WikipediaClient struct {
	Client *http.Client

	// APIBase overrides the action API endpoint; tests point it at a stub
	// server.
	APIBase string

	// RESTBase overrides the REST root; tests point it at a stub server.
	RESTBase string

	// UserAgent is sent with every request.
	UserAgent string
}

func (c *WikipediaClient) apiBase() string {
	if c.APIBase != "" {
		return c.APIBase
	}
	return defaultWikipediaAPIBase
}

func (c *WikipediaClient) restBase() string {
	if c.RESTBase != "" {
		return c.RESTBase
	}
	return defaultWikipediaRESTBase
}

// Snippet resolves the term to its canonical title and returns the page
// summary extract, or "" when either request fails or the extract is
// absent.
func (c *WikipediaClient) Snippet(ctx context.Context, term string) string {
	title := c.resolveTitle(ctx, term)
	reqURL := c.restBase() + "/page/summary/" + url.PathEscape(title)

	body, err := httputil.GetBody(ctx, c.Client, reqURL, c.UserAgent)
	if err != nil {
		return ""
	}

	var sr wikiSummaryResponse
	if err := json.Unmarshal(body, &sr); err != nil {
		return ""
	}
	return sr.Extract
}

// Images resolves the term to its canonical title and returns the titles of
// the page's media items whose file extension is .jpg (case-insensitive),
// in response order, capped at limit (default 10). Returns an empty list,
// never an error, on any failure.
func (c *WikipediaClient) Images(ctx context.Context, term string, limit int) []string {
	if limit <= 0 {
		limit = defaultImageLimit
	}

	title := c.resolveTitle(ctx, term)
	reqURL := c.restBase() + "/page/media-list/" + url.PathEscape(title)

	body, err := httputil.GetBody(ctx, c.Client, reqURL, c.UserAgent)
	if err != nil {
		return nil
	}

	var mr wikiMediaListResponse
	if err := json.Unmarshal(body, &mr); err != nil {
		return nil
	}

	var candidates []string
	for _, item := range mr.Items {
		if !strings.HasSuffix(strings.ToLower(item.Title), ".jpg") {
			continue
		}
		candidates = append(candidates, item.Title)
		if len(candidates) >= limit {
			break
		}
	}
	return candidates
}

// resolveTitle asks the action API whether the term redirects to another
// page. The redirect target becomes the canonical title for the following
// request; without one the term itself is used, spaces replaced with
// underscores for the path segment.
func (c *WikipediaClient) resolveTitle(ctx context.Context, term string) string {
	params := url.Values{
		"action":    {"query"},
		"titles":    {term},
		"redirects": {""},
		"format":    {"json"},
	}
	reqURL := c.apiBase() + "?" + params.Encode()

	fallback := strings.ReplaceAll(term, " ", "_")

	body, err := httputil.GetBody(ctx, c.Client, reqURL, c.UserAgent)
	if err != nil {
		return fallback
	}

	var rr wikiRedirectResponse
	if err := json.Unmarshal(body, &rr); err != nil || len(rr.Query.Redirects) == 0 {
		return fallback
	}
	return rr.Query.Redirects[0].To
}

// MediaWiki / REST API JSON structures.
type wikiRedirectResponse struct {
	Query struct {
		Redirects []struct {
			From string `json:"from"`
			To   string `json:"to"`
		} `json:"redirects"`
	} `json:"query"`
}

type wikiSummaryResponse struct {
	Extract string `json:"extract"`
}

type wikiMediaListResponse struct {
	Items []wikiMediaItem `json:"items"`
}

type wikiMediaItem struct {
	Title string `json:"title"`
	Type  string `json:"type"`
}
