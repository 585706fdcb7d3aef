// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package report

import (
	"fmt"
	"html/template"
	"io"
	"strings"

	"github.com/biotupe/especies/pkg/types"
)

// WriteHTML renders the report as the HTML results page, section for
// section as the original search engine presented them.
func WriteHTML(w io.Writer, rep types.SpeciesReport) error {
	return reportTemplate.Execute(w, rep)
}

var reportTemplate = template.Must(template.New("report").Funcs(template.FuncMap{
	"join":       strings.Join,
	"wikiURL":    wikiArticleURL,
	"commonsURL": commonsPageURL,
	"speciesURL": backboneSpeciesURL,
}).Parse(reportHTML))

// wikiArticleURL returns the encyclopedia article page for the query term.
func wikiArticleURL(term string) string {
	return "http://en.wikipedia.org/wiki/" + strings.ReplaceAll(term, " ", "_")
}

// commonsPageURL returns the Wikimedia Commons page for a media title.
func commonsPageURL(title string) string {
	return "https://commons.wikimedia.org/wiki/" + strings.ReplaceAll(title, " ", "_")
}

// backboneSpeciesURL returns the backbone species page for a taxon key.
func backboneSpeciesURL(key int) string {
	return fmt.Sprintf("http://gbif.org/species/%d", key)
}

const reportHTML = `<html>
<head>
<title>e-Species search results for {{.Query}}</title>
</head>
<body>
<h1>e-Species</h1>
<h3>A taxonomically intelligent biodiversity search engine</h3>

<h2><i>{{.Query}}</i> {{.Taxon.Authorship}}{{if .TaxonFound}} ({{.Taxon.Status}}{{if .Taxon.ValidName}} of <i>{{.Taxon.ValidName}}</i>{{end}}){{end}}</h2>

<h3>Classification</h3>
{{if .TaxonFound}}<p>{{join .Taxon.Classification "; "}}</p>{{else}}<p>No names found</p>{{end}}

<h3>Text tags</h3>
{{if .Terms}}<p>{{range .Terms}}<span class="tag">{{.}}</span> {{end}}</p>{{else}}<p>No tags found</p>{{end}}

<h3>Wikipedia</h3>
{{if .Snippet}}<p>{{.Snippet}}</p>
<p><a href="{{wikiURL .Query}}">Original article</a></p>{{else}}<p>No article title matches</p>{{end}}

<h3>Genomics from NCBI</h3>
{{if .RegistryFound}}<p>TaxId: <a href="{{.Summary.BrowserURL}}">{{.Summary.ID}}</a>
<i>{{.Summary.ScientificName}}</i> [{{.Summary.Division}}]
Sequences: <a href="{{.Summary.NucleotideQueryURL}}">{{.Summary.NucleotideCount}}</a> nucleotide,
<a href="{{.Summary.ProteinQueryURL}}">{{.Summary.ProteinCount}}</a> protein</p>
<ul type="circle">
{{range .Links}}<li><a href="{{.URL}}">{{.Provider}}</a></li>
{{end}}</ul>{{else}}<p>No items found for <i>{{.Query}}</i></p>{{end}}

<h3>Map from GBIF</h3>
{{if .TaxonFound}}<p><a href="{{speciesURL .Taxon.Key}}">{{if ge .Occurrences 0}}{{.Occurrences}} record(s){{else}}record count unavailable{{end}}</a></p>{{else}}<p>No species found</p>{{end}}

<h3>Images from Wikimedia Commons</h3>
{{if .Images}}<ul>
{{range .Images}}<li><a href="{{commonsURL .}}">{{.}}</a></li>
{{end}}</ul>{{else}}<p>No images found</p>{{end}}

<h3>Articles from PubMed</h3>
{{if .Articles}}{{range .Articles}}<hr noshade>
<p><b><a href="{{.URL}}">{{.Title}}</a></b></p>
{{end}}{{else}}<p>No articles found</p>{{end}}
</body>
</html>
`
