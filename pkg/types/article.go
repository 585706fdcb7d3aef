// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// ArticleReference is one bibliographic record: the article title and the
// DOI declared on the same article entry. Articles without a DOI-typed
// identifier never become references.
type ArticleReference struct {
	// Title is the article title.
	Title string `json:"title" yaml:"title"`

	// DOI is the bare DOI (e.g. "10.1000/xyz123").
	DOI string `json:"doi" yaml:"doi"`
}

// URL returns the DOI resolver link for the reference.
func (a ArticleReference) URL() string {
	return "http://dx.doi.org/doi:" + a.DOI
}
