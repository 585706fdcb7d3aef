// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package providers

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/biotupe/especies/internal/httputil"
)

// defaultFiveFiltersBase is the production term extraction service root.
const defaultFiveFiltersBase = "http://termextract.fivefilters.org"

// defaultTermLimit caps the extracted term list when the caller passes no
// limit.
const defaultTermLimit = 10

// FiveFiltersClient queries the FiveFilters term extraction service, which
// distills a larger text into significant words and phrases.
type FiveFiltersClient struct {
	Client *http.Client

	// BaseURL overrides the production service root; tests point it at a
	// stub server.
	BaseURL string

	// UserAgent is sent with every request.
	UserAgent string
}

func (c *FiveFiltersClient) base() string {
	if c.BaseURL != "" {
		return c.BaseURL
	}
	return defaultFiveFiltersBase
}

// ExtractTerms submits the text and returns the extracted phrases in
// service order, capped at limit (default 10). The service's txt output
// separates phrases with the literal two-character sequence backslash-n,
// not a newline; the payload is split on that token. Returns an empty list
// when the request fails or the payload is empty.
func (c *FiveFiltersClient) ExtractTerms(ctx context.Context, text string, limit int) []string {
	if limit <= 0 {
		limit = defaultTermLimit
	}

	reqURL := c.base() + "/extract.php?text=" + url.QueryEscape(text) +
		"&output=txt&max=" + strconv.Itoa(limit)

	payload, err := httputil.GetText(ctx, c.Client, reqURL, c.UserAgent)
	if err != nil || payload == "" {
		return nil
	}

	var terms []string
	for _, line := range strings.Split(payload, `\n`) {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		terms = append(terms, line)
		if len(terms) >= limit {
			break
		}
	}
	return terms
}
