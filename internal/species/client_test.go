package species

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestSearchShortQuerySkipsUpstream(t *testing.T) {
	called := false
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))
	defer srv.Close()

	c := NewClient(srv.URL, srv.URL, srv.URL)
	got, err := c.Search(context.Background(), "e", 10)
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("got=%v, want empty", got)
	}
	if called {
		t.Fatal("upstream called for short query")
	}
}

func TestSearchMapsAutoCompleteList(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/search/auto" {
			t.Fatalf("path=%s", r.URL.Path)
		}
		if q := r.URL.Query(); q.Get("q") != "euca" || q.Get("idxType") != "TAXON" {
			t.Fatalf("query=%v", q)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"autoCompleteList":[
			{"name":"Eucalyptus","guid":"urn:lsid:1","commonName":"Gum Tree","rankString":"genus","matchedNames":["Eucalyptus"]},
			{"name":"Eucalyptus regnans"}
		]}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, srv.URL, srv.URL)
	got, err := c.Search(context.Background(), "euca", 10)
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("got %d suggestions", len(got))
	}
	if got[0].ScientificName != "Eucalyptus" || got[0].GUID == nil || *got[0].GUID != "urn:lsid:1" {
		t.Fatalf("first=%+v", got[0])
	}
	if got[1].CommonName != nil || got[1].GUID != nil {
		t.Fatalf("missing fields should be nil: %+v", got[1])
	}
	if got[1].MatchedNames == nil {
		t.Fatal("matchedNames should be an empty slice, not nil")
	}
}

func TestGetBuildsImageURLs(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"taxonConcept":{"nameString":"Eucalyptus regnans"},
			"commonNames":[{"nameString":"Mountain Ash"}],
			"imageIdentifier":"img-123"
		}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, srv.URL, "https://images.example/image")
	got, err := c.Get(context.Background(), "urn:lsid:2")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.ScientificName != "Eucalyptus regnans" {
		t.Fatalf("scientificName=%q", got.ScientificName)
	}
	if got.CommonName == nil || *got.CommonName != "Mountain Ash" {
		t.Fatalf("commonName=%v", got.CommonName)
	}
	if got.ImageURL == nil || *got.ImageURL != "https://images.example/image/img-123" {
		t.Fatalf("imageUrl=%v", got.ImageURL)
	}
	if got.ThumbnailURL == nil || *got.ThumbnailURL != "https://images.example/image/proxyImageThumbnail?imageId=img-123" {
		t.Fatalf("thumbnailUrl=%v", got.ThumbnailURL)
	}
}

func TestGetNotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, srv.URL, srv.URL)
	if _, err := c.Get(context.Background(), "ghost"); err != ErrNotFound {
		t.Fatalf("err=%v, want ErrNotFound", err)
	}
}
