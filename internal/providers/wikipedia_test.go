// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package providers

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"reflect"
	"strings"
	"testing"
)

// wikiStub serves the action API (redirect resolution) and the REST API
// (summary, media-list) from one server, recording REST paths.
type wikiStub struct {
	redirectBody string // action API body ("" → HTTP 500)
	summaryBody  string
	mediaBody    string

	restPaths []string
}

func (s *wikiStub) start() (*httptest.Server, *WikipediaClient) {
	mux := http.NewServeMux()
	mux.HandleFunc("/w/api.php", func(w http.ResponseWriter, _ *http.Request) {
		serveOr500(w, s.redirectBody)
	})
	mux.HandleFunc("/api/rest_v1/page/summary/", func(w http.ResponseWriter, r *http.Request) {
		s.restPaths = append(s.restPaths, r.URL.Path)
		serveOr500(w, s.summaryBody)
	})
	mux.HandleFunc("/api/rest_v1/page/media-list/", func(w http.ResponseWriter, r *http.Request) {
		s.restPaths = append(s.restPaths, r.URL.Path)
		serveOr500(w, s.mediaBody)
	})
	ts := httptest.NewServer(mux)
	c := &WikipediaClient{
		Client:    ts.Client(),
		APIBase:   ts.URL + "/w/api.php",
		RESTBase:  ts.URL + "/api/rest_v1",
		UserAgent: testUserAgent,
	}
	return ts, c
}

const noRedirect = `{"query":{"pages":{"1":{"title":"Puma concolor"}}}}`

// --- Redirect resolution ---

func TestWikipediaSnippetUsesRedirectTarget(t *testing.T) {
	stub := &wikiStub{
		redirectBody: `{"query":{"redirects":[{"from":"Felis concolor","to":"Puma concolor"}]}}`,
		summaryBody:  `{"extract":"The cougar is a large cat."}`,
	}
	ts, c := stub.start()
	defer ts.Close()

	got := c.Snippet(context.Background(), "Felis concolor")
	if got != "The cougar is a large cat." {
		t.Errorf("Snippet() = %q", got)
	}

	// The follow-up request must target the redirect target, not the
	// original term.
	if len(stub.restPaths) != 1 {
		t.Fatalf("rest requests = %d, want 1", len(stub.restPaths))
	}
	if !strings.Contains(stub.restPaths[0], "Puma concolor") {
		t.Errorf("summary path = %q, want redirect target in path", stub.restPaths[0])
	}
	if strings.Contains(stub.restPaths[0], "Felis") {
		t.Errorf("summary path = %q, must not contain the original term", stub.restPaths[0])
	}
}

func TestWikipediaSnippetFallbackUnderscores(t *testing.T) {
	stub := &wikiStub{
		redirectBody: noRedirect,
		summaryBody:  `{"extract":"..."}`,
	}
	ts, c := stub.start()
	defer ts.Close()

	c.Snippet(context.Background(), "Puma concolor")
	if len(stub.restPaths) != 1 {
		t.Fatalf("rest requests = %d, want 1", len(stub.restPaths))
	}
	if !strings.HasSuffix(stub.restPaths[0], "/Puma_concolor") {
		t.Errorf("summary path = %q, want space replaced with underscore", stub.restPaths[0])
	}
}

func TestWikipediaSnippetRedirectLookupFailure(t *testing.T) {
	stub := &wikiStub{
		redirectBody: "", // HTTP 500; falls back to underscored term
		summaryBody:  `{"extract":"still works"}`,
	}
	ts, c := stub.start()
	defer ts.Close()

	if got := c.Snippet(context.Background(), "Puma concolor"); got != "still works" {
		t.Errorf("Snippet() = %q, want fallback title to be used", got)
	}
}

// --- Summary ---

func TestWikipediaSnippetMissingExtract(t *testing.T) {
	stub := &wikiStub{
		redirectBody: noRedirect,
		summaryBody:  `{"title":"Puma concolor"}`,
	}
	ts, c := stub.start()
	defer ts.Close()

	if got := c.Snippet(context.Background(), "Puma concolor"); got != "" {
		t.Errorf("Snippet() = %q, want empty for absent extract", got)
	}
}

func TestWikipediaSnippetSummaryFailure(t *testing.T) {
	stub := &wikiStub{redirectBody: noRedirect, summaryBody: ""}
	ts, c := stub.start()
	defer ts.Close()

	if got := c.Snippet(context.Background(), "Puma concolor"); got != "" {
		t.Errorf("Snippet() = %q, want empty on failure", got)
	}
}

// --- Media list ---

// mediaList builds a media-list body with the given item titles.
func mediaList(titles ...string) string {
	var items []string
	for _, title := range titles {
		items = append(items, fmt.Sprintf(`{"title":%q,"type":"image"}`, title))
	}
	return `{"items":[` + strings.Join(items, ",") + `]}`
}

func TestWikipediaImagesFilterAndLimit(t *testing.T) {
	// 15 items, 7 of them .jpg (one upper-case), limit 5.
	stub := &wikiStub{
		redirectBody: noRedirect,
		mediaBody: mediaList(
			"File:A1.jpg", "File:B.svg", "File:A2.jpg", "File:C.png",
			"File:A3.JPG", "File:D.gif", "File:A4.jpg", "File:E.webm",
			"File:A5.jpg", "File:F.tif", "File:A6.jpg", "File:G.png",
			"File:A7.jpg", "File:H.svg", "File:I.ogg",
		),
	}
	ts, c := stub.start()
	defer ts.Close()

	got := c.Images(context.Background(), "Puma concolor", 5)
	want := []string{"File:A1.jpg", "File:A2.jpg", "File:A3.JPG", "File:A4.jpg", "File:A5.jpg"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Images() = %v, want first five .jpg titles in order %v", got, want)
	}
}

func TestWikipediaImagesNoJpgItems(t *testing.T) {
	stub := &wikiStub{
		redirectBody: noRedirect,
		mediaBody:    mediaList("File:B.svg", "File:C.png"),
	}
	ts, c := stub.start()
	defer ts.Close()

	if got := c.Images(context.Background(), "Puma concolor", 5); len(got) != 0 {
		t.Errorf("Images() = %v, want empty", got)
	}
}

func TestWikipediaImagesDefaultLimit(t *testing.T) {
	titles := make([]string, 0, 20)
	for i := 0; i < 20; i++ {
		titles = append(titles, fmt.Sprintf("File:P%02d.jpg", i))
	}
	stub := &wikiStub{redirectBody: noRedirect, mediaBody: mediaList(titles...)}
	ts, c := stub.start()
	defer ts.Close()

	if got := c.Images(context.Background(), "Puma concolor", 0); len(got) != 10 {
		t.Errorf("len(Images()) = %d, want default limit 10", len(got))
	}
}

func TestWikipediaImagesFailure(t *testing.T) {
	stub := &wikiStub{redirectBody: noRedirect, mediaBody: ""}
	ts, c := stub.start()
	defer ts.Close()

	if got := c.Images(context.Background(), "Puma concolor", 5); len(got) != 0 {
		t.Errorf("Images() = %v, want empty on failure", got)
	}
}

func TestWikipediaImagesUseRedirectTarget(t *testing.T) {
	stub := &wikiStub{
		redirectBody: `{"query":{"redirects":[{"from":"Cougar","to":"Puma concolor"}]}}`,
		mediaBody:    mediaList("File:A.jpg"),
	}
	ts, c := stub.start()
	defer ts.Close()

	c.Images(context.Background(), "Cougar", 5)
	if len(stub.restPaths) != 1 || !strings.Contains(stub.restPaths[0], "Puma concolor") {
		t.Errorf("media-list paths = %v, want redirect target", stub.restPaths)
	}
}
